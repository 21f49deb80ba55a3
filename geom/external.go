// Imported/Warped realize spec §3's documented use of Materialized/Raw
// nodes: "opaque handle[s] whose concrete is already stored in the
// cache... used to inject kernel-computed results back into the IR (e.g.
// imports, SDF isosurface extraction, warped meshes)." A per-vertex warp
// function is not representable in the IR's canonicalizable data, so it
// cannot be a pure lowering template the way Transformed or Offset are;
// instead the caller evaluates the child concretely, asks the kernel to
// warp it, and reinjects the result as a Raw node under a cache key so the
// rest of the declarative tree can still reference it normally.
package geom

import (
	"context"

	"github.com/dshills/geocad/internal/build"
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/env"
	"github.com/dshills/geocad/internal/evalctx"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/result"
)

// Imported wraps an already-registered Raw value (e.g. an STL/3MF import
// resolved by the caller before the build starts) as a Solid. Callers must
// call ec.RegisterRaw3D(key, ...) before the tree containing this node is
// evaluated.
func Imported(key ir.CacheKey) Solid {
	return rawSolid(key)
}

// Materialized wraps a Materialized(cacheKey) node as a Solid: unlike
// Imported, the concrete value is computed lazily (at most once) by a
// factory registered via ec.RegisterFactory3D(key, ...), the mechanism
// surface-layer code (e.g. SDF isosurface extraction) uses.
func Materialized(key ir.CacheKey) Solid {
	return newSolid(build.Func[dim.Dim3](func(env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
		return ir.Materialized[dim.Dim3](key), result.Empty[dim.Dim3]()
	}))
}

// Warped evaluates child, applies fn to every vertex via the kernel
// (spec §6.2 "warp via per-vertex function"), and returns a new Solid
// referencing the warped result through a Raw node keyed off child's own
// IR hash plus namespace, so repeating the same warp on the same input
// reuses the cached result instead of recomputing it.
func Warped(ctx context.Context, ec *evalctx.Context, e env.Environment, child Solid, namespace string, fn func(dim.Vector3) dim.Vector3) (Solid, error) {
	n, _ := child.Build(e)
	mv, err := build.Evaluate3D(ctx, ec, n)
	if err != nil {
		return Solid{}, err
	}
	warped := ec.Kernel3D().Warp(mv, fn)
	key := ir.CacheKey{Namespace: "warp:" + namespace, ID: componentID(n.Hash(), 0)}
	ec.RegisterRaw3D(key, warped)
	return rawSolid(key), nil
}

// Refined evaluates child and subdivides triangles whose longest edge
// exceeds maxEdgeLength (spec §6.2 "refine(edgeLength)"), returning the
// result the same way Warped does.
func Refined(ctx context.Context, ec *evalctx.Context, e env.Environment, child Solid, maxEdgeLength float64) (Solid, error) {
	n, _ := child.Build(e)
	mv, err := build.Evaluate3D(ctx, ec, n)
	if err != nil {
		return Solid{}, err
	}
	refined := ec.Kernel3D().Refine(mv, maxEdgeLength)
	key := ir.CacheKey{Namespace: "refine", ID: componentID(n.Hash(), 0)}
	ec.RegisterRaw3D(key, refined)
	return rawSolid(key), nil
}
