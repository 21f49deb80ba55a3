package evalctx

import (
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dshills/geocad/internal/ir"
)

// hashCache memoizes a computation keyed on ir.Hash, guaranteeing each key
// is computed at most once even under concurrent callers (spec §5's
// evaluation-context cache). golang.org/x/sync/singleflight supplies the
// "in-flight calls for the same key share one result" guarantee; the
// backing sync.Map supplies the permanent memo once a key has resolved.
//
// Grounded on the teacher's synchronization idiom in pkg/synthesis and
// pkg/themes/adapter.go (both reach for sync.* to memoize expensive
// generation steps), generalized from sync.Once to singleflight because
// here the cache has an unbounded, runtime-discovered key set rather than
// one fixed slot.
type hashCache[V any] struct {
	group singleflight.Group
	memo  sync.Map // ir.Hash -> V
}

func newHashCache[V any]() *hashCache[V] {
	return &hashCache[V]{}
}

// Get returns the memoized value for h, computing it via compute on first
// request. Concurrent callers for the same h block on the same computation
// and observe the same result and error.
func (c *hashCache[V]) Get(h ir.Hash, compute func() (V, error)) (V, error) {
	if v, ok := c.memo.Load(h); ok {
		return v.(V), nil
	}
	key := hashKey(h)
	v, err, _ := c.group.Do(key, func() (any, error) {
		// A call that finished between the Load above and this Do has
		// already stored its value; reuse it instead of computing again.
		if v, ok := c.memo.Load(h); ok {
			return v, nil
		}
		result, err := compute()
		if err != nil {
			return result, err
		}
		c.memo.Store(h, result)
		return result, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Len reports how many entries have resolved.
func (c *hashCache[V]) Len() int {
	n := 0
	c.memo.Range(func(_, _ any) bool { n++; return true })
	return n
}

func hashKey(h ir.Hash) string {
	return hex.EncodeToString(h[:])
}
