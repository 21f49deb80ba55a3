package geom

import (
	"math"

	"github.com/dshills/geocad/internal/build"
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/env"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/result"
)

// Plane is a 2D declarative geometry value (a CrossSection-to-be).
type Plane struct {
	impl build.Geometry2D
}

func newPlane(g build.Geometry2D) Plane { return Plane{impl: g} }

// Build satisfies build.Geometry2D so a Plane can itself be nested as a
// Composite/Transformed/... operand without unwrapping.
func (p Plane) Build(e env.Environment) (ir.Node[dim.Dim2], result.Elements[dim.Dim2]) {
	return p.impl.Build(e)
}

// Rectangle builds a width x height rectangle with its minimum corner at
// the origin.
func Rectangle(width, height float64) Plane {
	return newPlane(build.Func[dim.Dim2](func(env.Environment) (ir.Node[dim.Dim2], result.Elements[dim.Dim2]) {
		return ir.Rectangle(width, height), result.Empty[dim.Dim2]()
	}))
}

// Square is Rectangle(size, size).
func Square(size float64) Plane {
	return Rectangle(size, size)
}

// Circle builds a circle of the given radius, with segment count resolved
// from the ambient Environment's Segmentation at build time.
func Circle(radius float64) Plane {
	return newPlane(build.Func[dim.Dim2](func(e env.Environment) (ir.Node[dim.Dim2], result.Elements[dim.Dim2]) {
		segs := e.Segmentation().ResolveSegments(radius)
		return ir.Circle(radius, segs), result.Empty[dim.Dim2]()
	}))
}

// FillRule mirrors env.FillRule for Polygon callers that don't otherwise
// need to import internal/env.
type FillRule = env.FillRule

const (
	FillNonZero  = env.FillNonZero
	FillEvenOdd  = env.FillEvenOdd
	FillPositive = env.FillPositive
	FillNegative = env.FillNegative
)

// Polygon builds a node from an explicit, possibly self-intersecting point
// list, resolved under fillRule.
func Polygon(points []dim.Vector2, fillRule FillRule) Plane {
	return newPlane(build.Func[dim.Dim2](func(env.Environment) (ir.Node[dim.Dim2], result.Elements[dim.Dim2]) {
		return ir.Polygon(points, int(fillRule)), result.Empty[dim.Dim2]()
	}))
}

// ConvexHullOfPoints builds the convex hull of an explicit 2D point set.
func ConvexHullOfPoints(points []dim.Vector2) Plane {
	return newPlane(build.Func[dim.Dim2](func(env.Environment) (ir.Node[dim.Dim2], result.Elements[dim.Dim2]) {
		return ir.ConvexHullOfPoints2D(points), result.Empty[dim.Dim2]()
	}))
}

func planesToGeometry(planes []Plane) []build.Geometry2D {
	out := make([]build.Geometry2D, len(planes))
	for i, p := range planes {
		out[i] = p.impl
	}
	return out
}

// Adding unions p with others (spec §4.2 Boolean union).
func (p Plane) Adding(others ...Plane) Plane {
	operands := append([]build.Geometry2D{p.impl}, planesToGeometry(others)...)
	return newPlane(build.Composite[dim.Dim2]{Kind: ir.Union, Operands: operands})
}

// Subtracting subtracts others from p (spec §4.2 Boolean difference); p is
// the positive operand, others are the subtrahends.
func (p Plane) Subtracting(others ...Plane) Plane {
	operands := append([]build.Geometry2D{p.impl}, planesToGeometry(others)...)
	return newPlane(build.Composite[dim.Dim2]{Kind: ir.Difference, Operands: operands})
}

// Intersecting intersects p with others.
func (p Plane) Intersecting(others ...Plane) Plane {
	operands := append([]build.Geometry2D{p.impl}, planesToGeometry(others)...)
	return newPlane(build.Composite[dim.Dim2]{Kind: ir.Intersection, Operands: operands})
}

// Hull wraps p in a ConvexHull node.
func (p Plane) Hull() Plane {
	return newPlane(build.ConvexHullOf[dim.Dim2]{Child: p.impl})
}

// Transformed applies an arbitrary affine transform.
func (p Plane) Transformed(t dim.Affine2) Plane {
	asWorld := dim.Affine3{A: t.A, B: t.B, Tx: t.Tx, D: t.C, E: t.D, Ty: t.Ty, I: 1}
	return newPlane(build.Transform2D(p.impl, t, asWorld))
}

// Translated moves p by (dx, dy).
func (p Plane) Translated(dx, dy float64) Plane {
	return p.Transformed(dim.Translate2(dx, dy))
}

// Scaled scales p about the origin.
func (p Plane) Scaled(sx, sy float64) Plane {
	return p.Transformed(dim.Scale2(sx, sy))
}

// Rotated rotates p about the origin by degrees.
func (p Plane) Rotated(degrees float64) Plane {
	return p.Transformed(dim.Rotate2(degrees * math.Pi / 180))
}

// JoinType mirrors env.JoinType for Offset callers.
type JoinType = env.JoinType

const (
	JoinMiter  = env.JoinMiter
	JoinRound  = env.JoinRound
	JoinBevel  = env.JoinBevel
	JoinSquare = env.JoinSquare
)

// OffsetOptions overrides Offset's join/miterLimit/segments; the zero
// value uses a miter join, the ambient Environment's miter limit, and a
// segment count resolved from the Environment's Segmentation.
type OffsetOptions struct {
	Join       *JoinType
	MiterLimit *float64
	Segments   int
}

// Offset grows (amount > 0) or shrinks (amount < 0) p's boundary.
func (p Plane) Offset(amount float64, opts OffsetOptions) Plane {
	return newPlane(build.Offset{
		Child:      p.impl,
		Amount:     amount,
		Join:       opts.Join,
		MiterLimit: opts.MiterLimit,
		Segments:   opts.Segments,
	})
}

// InPart assigns p's geometry to a named Part (spec §4.6).
func (p Plane) InPart(part result.Part) Plane {
	return newPlane(build.InPart[dim.Dim2]{Child: p.impl, Part: part})
}

// Material wraps p in a Tagged node under key and records key and def in
// p's ResultElements. 2D evaluation passes a Tagged node through without
// assigning an original-ID, and Extruded drops p's Elements, so a
// material set on a Plane does not reach per-face 3D material export.
func (p Plane) Material(key string, def Material) Plane {
	return newPlane(build.Material[dim.Dim2]{Child: p.impl, Key: key, Def: def})
}

// WithMetadata attaches a key/value pair to p's ResultElements.
func (p Plane) WithMetadata(key, value string) Plane {
	return newPlane(build.WithMetadata[dim.Dim2]{Child: p.impl, Key: key, Value: value})
}
