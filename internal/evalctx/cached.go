package evalctx

import (
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/kernel"
)

// Cached2D returns the memoized CrossSection2D for h, invoking compute at
// most once across the lifetime of this Context even if called
// concurrently from sibling goroutines evaluating a shared subtree (spec
// §3 CachedNode, §5 at-most-once evaluation).
func (c *Context) Cached2D(h ir.Hash, compute func() (kernel.CrossSection2D, error)) (kernel.CrossSection2D, error) {
	return c.cache2D.Get(h, compute)
}

// Cached3D is Cached2D's 3D counterpart.
func (c *Context) Cached3D(h ir.Hash, compute func() (kernel.Manifold3D, error)) (kernel.Manifold3D, error) {
	return c.cache3D.Get(h, compute)
}
