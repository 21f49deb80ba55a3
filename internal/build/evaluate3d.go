package build

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/evalctx"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/kernel"
)

// Evaluate3D is Evaluate2D's 3D counterpart.
func Evaluate3D(ctx context.Context, ec *evalctx.Context, n ir.Node[dim.Dim3]) (kernel.Manifold3D, error) {
	return ec.Cached3D(n.Hash(), func() (kernel.Manifold3D, error) {
		return evaluate3D(ctx, ec, n)
	})
}

func evaluate3D(ctx context.Context, ec *evalctx.Context, n ir.Node[dim.Dim3]) (kernel.Manifold3D, error) {
	k := ec.Kernel3D()
	switch n.Kind() {
	case ir.KindEmpty:
		return k.Box(0, 0, 0), nil

	case ir.KindShape:
		kind, box, sphere, cyl, hull, mesh := ir.Shape3D(n)
		switch kind {
		case ir.PrimBox:
			return k.Box(box.X, box.Y, box.Z), nil
		case ir.PrimSphere:
			return k.Sphere(sphere.Radius, sphere.Segments), nil
		case ir.PrimCylinder:
			return k.Cylinder(cyl.BottomRadius, cyl.TopRadius, cyl.Height, cyl.Segments), nil
		case ir.PrimConvexHull3:
			return k.ConvexHull3D(hull.Points), nil
		case ir.PrimMesh:
			return k.MeshFrom(mesh.Vertices, mesh.Faces)
		}

	case ir.KindBoolean:
		return evaluateBoolean3D(ctx, ec, n, k)

	case ir.KindTransform:
		t := ir.TransformOf3D(n)
		mv, err := Evaluate3D(ctx, ec, n.Child())
		if err != nil {
			return nil, err
		}
		return k.Transform3D(mv, t), nil

	case ir.KindConvexHull:
		mv, err := Evaluate3D(ctx, ec, n.Child())
		if err != nil {
			return nil, err
		}
		return k.ConvexHullOf3D(mv), nil

	case ir.KindExtrusion:
		child2, mode := ir.ExtrusionOf(n)
		cv, err := Evaluate2D(ctx, ec, child2)
		if err != nil {
			return nil, err
		}
		switch mode.Style {
		case ir.ExtrusionLinear:
			return k.LinearExtrude(cv, mode.Height, mode.TwistDeg, mode.Divisions, mode.TopScaleX, mode.TopScaleY), nil
		case ir.ExtrusionRotational:
			return k.RotationalExtrude(cv, mode.AngleDeg, mode.Segments), nil
		}

	case ir.KindTagged:
		mv, err := Evaluate3D(ctx, ec, n.Child())
		if err != nil {
			return nil, err
		}
		tagged, id := k.AssignOriginalID(mv)
		ec.Materials().Record(n.TagKey(), id)
		return tagged, nil

	case ir.KindMaterialized:
		return ec.ResolveMaterialized3D(n.CacheKey())

	case ir.KindRaw:
		return ec.ResolveRaw3D(n.CacheKey())
	}
	return nil, geomerrUnsupported3D(n)
}

func evaluateBoolean3D(ctx context.Context, ec *evalctx.Context, n ir.Node[dim.Dim3], k kernel.Kernel3D) (kernel.Manifold3D, error) {
	children := n.Children()
	values := make([]kernel.Manifold3D, len(children))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range children {
		i, c := i, c
		g.Go(func() error {
			v, err := Evaluate3D(gctx, ec, c)
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
		return k.Union3D(values), nil
	case ir.Difference:
		return k.Difference3D(values[0], values[1:]), nil
	case ir.Intersection:
		return k.Intersection3D(values), nil
	}
	return nil, geomerrUnsupported3D(n)
}
