package geom

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/dshills/geocad/internal/build"
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/env"
	"github.com/dshills/geocad/internal/evalctx"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/measure"
	"github.com/dshills/geocad/internal/result"
)

// Measuring3D evaluates child concretely under e/ec, passes its bounding
// box to rebuild, and returns whatever Solid rebuild constructs. This is
// one of the only two sanctioned ways user code observes concrete geometry
// mid-build (spec §4.5) — the build stays deterministic for a fixed input
// even though it now depends on the kernel's output.
func Measuring3D(ctx context.Context, ec *evalctx.Context, e env.Environment, child Solid, rebuild func(bounds dim.Box3) Solid) (Solid, error) {
	n, _ := child.Build(e)
	mv, err := build.Evaluate3D(ctx, ec, n)
	if err != nil {
		return Solid{}, err
	}
	return rebuild(measure.Bounds3D(mv)), nil
}

// Measuring2D is Measuring3D's 2D counterpart.
func Measuring2D(ctx context.Context, ec *evalctx.Context, e env.Environment, child Plane, rebuild func(bounds dim.Box2) Plane) (Plane, error) {
	n, _ := child.Build(e)
	cv, err := build.Evaluate2D(ctx, ec, n)
	if err != nil {
		return Plane{}, err
	}
	return rebuild(measure.Bounds2D(cv)), nil
}

// Separated evaluates child, decomposes it into connected components
// (spec §4.5), and returns one independently placeable Solid per
// component, each reinjected into the IR via a Raw node so it can still be
// composed further (spec §3's documented Raw/Materialized injection use).
func Separated(ctx context.Context, ec *evalctx.Context, e env.Environment, child Solid) ([]Solid, error) {
	n, _ := child.Build(e)
	mv, err := build.Evaluate3D(ctx, ec, n)
	if err != nil {
		return nil, err
	}
	parts := measure.Separated3D(ec.Kernel3D(), mv)
	out := make([]Solid, len(parts))
	for i, part := range parts {
		key := ir.CacheKey{Namespace: "separated", ID: componentID(n.Hash(), i)}
		ec.RegisterRaw3D(key, part)
		out[i] = rawSolid(key)
	}
	return out, nil
}

func rawSolid(key ir.CacheKey) Solid {
	return newSolid(build.Func[dim.Dim3](func(env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
		return ir.Raw[dim.Dim3](key), result.Empty[dim.Dim3]()
	}))
}

func componentID(h ir.Hash, index int) string {
	return fmt.Sprintf("%s#%d", hex.EncodeToString(h[:]), index)
}
