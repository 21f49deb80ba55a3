package build

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/evalctx"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/kernel"
)

// Evaluate2D walks a 2D IR tree into a concrete kernel.CrossSection2D,
// memoizing every subtree by Hash in ctx so a node referenced more than
// once (directly, or because two different declarative trees canonicalize
// to the same IR) is computed at most once per Context (spec §5).
func Evaluate2D(ctx context.Context, ec *evalctx.Context, n ir.Node[dim.Dim2]) (kernel.CrossSection2D, error) {
	return ec.Cached2D(n.Hash(), func() (kernel.CrossSection2D, error) {
		return evaluate2D(ctx, ec, n)
	})
}

func evaluate2D(ctx context.Context, ec *evalctx.Context, n ir.Node[dim.Dim2]) (kernel.CrossSection2D, error) {
	k := ec.Kernel2D()
	switch n.Kind() {
	case ir.KindEmpty:
		return k.Rectangle(0, 0), nil

	case ir.KindShape:
		kind, rect, circ, poly, hull := ir.Shape2D(n)
		switch kind {
		case ir.PrimRectangle:
			return k.Rectangle(rect.Width, rect.Height), nil
		case ir.PrimCircle:
			return k.Circle(circ.Radius, circ.Segments), nil
		case ir.PrimPolygon:
			return k.Polygon(poly.Points, poly.FillRule), nil
		case ir.PrimConvexHull2:
			return k.ConvexHull2D(hull.Points), nil
		}

	case ir.KindBoolean:
		return evaluateBoolean2D(ctx, ec, n, k)

	case ir.KindTransform:
		child := n.Child()
		t := ir.TransformOf2D(n)
		cv, err := Evaluate2D(ctx, ec, child)
		if err != nil {
			return nil, err
		}
		return k.Transform2D(cv, t), nil

	case ir.KindConvexHull:
		cv, err := Evaluate2D(ctx, ec, n.Child())
		if err != nil {
			return nil, err
		}
		return k.ConvexHullOf2D(cv), nil

	case ir.KindOffset:
		amount, join, miterLimit, segments := ir.OffsetParams(n)
		cv, err := Evaluate2D(ctx, ec, n.Child())
		if err != nil {
			return nil, err
		}
		return k.Offset(cv, amount, kernel.JoinType(join), miterLimit, segments), nil

	case ir.KindProjection:
		child3, mode := ir.ProjectionOf(n)
		mv, err := Evaluate3D(ctx, ec, child3)
		if err != nil {
			return nil, err
		}
		if mode.Slice {
			z := mode.Z
			return k.Project(mv, &z), nil
		}
		return k.Project(mv, nil), nil

	case ir.KindTagged:
		// A Tagged node at a 2D leaf has no kernel-level original-ID
		// concept (that belongs to 3D faces); the child is passed through
		// unchanged and nothing is recorded in the material registry.
		return Evaluate2D(ctx, ec, n.Child())

	case ir.KindMaterialized:
		return ec.ResolveMaterialized2D(n.CacheKey())

	case ir.KindRaw:
		return ec.ResolveRaw2D(n.CacheKey())
	}
	return nil, geomerrUnsupported2D(n)
}

func evaluateBoolean2D(ctx context.Context, ec *evalctx.Context, n ir.Node[dim.Dim2], k kernel.Kernel2D) (kernel.CrossSection2D, error) {
	children := n.Children()
	values := make([]kernel.CrossSection2D, len(children))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range children {
		i, c := i, c
		g.Go(func() error {
			v, err := Evaluate2D(gctx, ec, c)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	switch n.BooleanKind() {
	case ir.Union:
		return k.Union2D(values), nil
	case ir.Difference:
		return k.Difference2D(values[0], values[1:]), nil
	case ir.Intersection:
		return k.Intersection2D(values), nil
	}
	return nil, geomerrUnsupported2D(n)
}
