// Package evalctx implements the EvaluationContext (spec §5): the
// per-evaluation-run object that owns the concrete kernel, memoizes
// kernel-computed results per IR Hash so repeated references to the same
// subtree are computed at most once, and accumulates the material
// registry populated by Tagged nodes.
//
// One Context is created per top-level evaluation (one per exported
// Model, typically) and threaded through internal/build's lowering
// templates alongside env.Environment.
package evalctx

import (
	"github.com/dshills/geocad/internal/kernel"
)

// Context is the evaluation-time companion to env.Environment: where
// Environment carries build-time configuration, Context carries
// evaluation-time state (the kernel, memoization, materials). Safe for
// concurrent use by multiple goroutines evaluating sibling subtrees.
type Context struct {
	kernel2D kernel.Kernel2D
	kernel3D kernel.Kernel3D

	cache2D *hashCache[kernel.CrossSection2D]
	cache3D *hashCache[kernel.Manifold3D]

	ext2D *externalRegistry[kernel.CrossSection2D]
	ext3D *externalRegistry[kernel.Manifold3D]

	materials *MaterialRegistry
}

// New creates an EvaluationContext backed by the given kernel
// implementations. Most callers pass refkernel.New() for both.
func New(k2 kernel.Kernel2D, k3 kernel.Kernel3D) *Context {
	return &Context{
		kernel2D:  k2,
		kernel3D:  k3,
		cache2D:   newHashCache[kernel.CrossSection2D](),
		cache3D:   newHashCache[kernel.Manifold3D](),
		ext2D:     newExternalRegistry[kernel.CrossSection2D](),
		ext3D:     newExternalRegistry[kernel.Manifold3D](),
		materials: newMaterialRegistry(),
	}
}

func (c *Context) external2D() *externalRegistry[kernel.CrossSection2D] { return c.ext2D }
func (c *Context) external3D() *externalRegistry[kernel.Manifold3D]     { return c.ext3D }

// Kernel2D returns the concrete 2D kernel this context evaluates against.
func (c *Context) Kernel2D() kernel.Kernel2D { return c.kernel2D }

// Kernel3D returns the concrete 3D kernel this context evaluates against.
func (c *Context) Kernel3D() kernel.Kernel3D { return c.kernel3D }

// Materials returns the material registry accumulated so far. Exporters
// call this after evaluation completes; it continues to accept writes
// until the whole build finishes, so callers should not read it
// concurrently with an in-flight evaluation of the same Context.
func (c *Context) Materials() *MaterialRegistry { return c.materials }

// Bake waits for no additional work: this reference kernel computes every
// result eagerly inside compute, so by the time a cache hit or miss
// returns from Cached2D/Cached3D the result is already fully realized.
// Bake exists as the named hook spec §5 describes for kernels that defer
// work (e.g. a lazy SDF kernel); it is a no-op here, and no code in this
// module calls it.
func (c *Context) Bake() {}
