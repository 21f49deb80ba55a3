package evalctx

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/kernel"
	"github.com/dshills/geocad/internal/kernel/refkernel"
)

// Property 4: cache determinism — evaluate(n) called concurrently K times
// invokes the kernel for n exactly once, and every caller observes the
// same result.
func TestCachedIsComputedAtMostOnce(t *testing.T) {
	c := newHashCache[int]()
	h := ir.Hash{}
	var calls int64

	const k = 32
	var wg sync.WaitGroup
	results := make([]int, k)
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Get(h, func() (int, error) {
				atomic.AddInt64(&calls, 1)
				return 42, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = v
		}(i)
	}
	wg.Wait()

	if calls != 1 {
		t.Fatalf("expected exactly 1 compute call, got %d", calls)
	}
	for i, v := range results {
		if v != 42 {
			t.Fatalf("result[%d] = %d, want 42", i, v)
		}
	}
}

func TestMaterializedFactoryInvokedAtMostOnce(t *testing.T) {
	k := refkernel.New()
	ec := New(k, k)
	key := ir.CacheKey{Namespace: "import", ID: "widget.stl"}
	var calls int64
	ec.RegisterFactory3D(key, func() (kernel.Manifold3D, error) {
		atomic.AddInt64(&calls, 1)
		return k.Box(1, 1, 1), nil
	})

	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ec.ResolveMaterialized3D(key); err != nil {
				t.Errorf("resolve failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Fatalf("expected the Materialized factory to run exactly once, got %d", calls)
	}
}
