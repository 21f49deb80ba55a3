package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/dshills/geocad/geom"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/kernel"
)

// S5. Two Models in one Project that both reference the same Materialized
// import key invoke its factory exactly once, since they share a Builder's
// EvaluationContext.
func TestScenarioS5SharedMaterializedFactory(t *testing.T) {
	dir := t.TempDir()
	var calls int64
	key := ir.CacheKey{Namespace: "import", ID: "shared.stl"}

	content := func(b *Builder) {
		b.Context().RegisterFactory3D(key, func() (kernel.Manifold3D, error) {
			atomic.AddInt64(&calls, 1)
			return b.Context().Kernel3D().Box(2, 2, 2), nil
		})
		b.Model("first", func(context.Context) (geom.Solid, error) {
			return geom.Materialized(key).Adding(geom.Box(1, 1, 1)), nil
		})
		b.Model("second", func(context.Context) (geom.Solid, error) {
			return geom.Materialized(key), nil
		})
	}

	opts := DefaultOptions()
	opts.Formats = []Format{FormatSTL}
	if err := Project(context.Background(), dir, opts, content); err != nil {
		t.Fatalf("Project: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected the shared factory to run exactly once across both models, got %d", calls)
	}
	for _, name := range []string{"first.stl", "second.stl"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
	}
}

// A model that fails to build is logged and does not prevent a sibling
// model from being written (spec §6.4).
func TestProjectIsolatesPerModelFailures(t *testing.T) {
	dir := t.TempDir()
	content := func(b *Builder) {
		b.Model("broken", func(context.Context) (geom.Solid, error) {
			return geom.Solid{}, errors.New("deliberately broken")
		})
		b.Model("fine", func(context.Context) (geom.Solid, error) {
			return geom.Box(1, 1, 1), nil
		})
	}

	opts := DefaultOptions()
	opts.Formats = []Format{FormatSTL}
	if err := Project(context.Background(), dir, opts, content); err != nil {
		t.Fatalf("Project should not return an error for a per-model failure, got: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "broken.stl")); err == nil {
		t.Fatalf("broken.stl should not have been written")
	}
	if _, err := os.Stat(filepath.Join(dir, "fine.stl")); err != nil {
		t.Fatalf("expected fine.stl to be written despite the sibling's failure: %v", err)
	}
}
