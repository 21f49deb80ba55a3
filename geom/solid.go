package geom

import (
	"math"

	"github.com/dshills/geocad/internal/build"
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/env"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/result"
)

// Solid is a 3D declarative geometry value (a Manifold-to-be).
type Solid struct {
	impl build.Geometry3D
}

func newSolid(g build.Geometry3D) Solid { return Solid{impl: g} }

func (s Solid) Build(e env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
	return s.impl.Build(e)
}

// Box builds a box with its minimum corner at the origin.
func Box(x, y, z float64) Solid {
	return newSolid(build.Func[dim.Dim3](func(env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
		return ir.Box(x, y, z), result.Empty[dim.Dim3]()
	}))
}

// Cube is Box(size, size, size).
func Cube(size float64) Solid {
	return Box(size, size, size)
}

// Sphere builds a sphere, resolving its segment count from the ambient
// Environment's Segmentation at build time.
func Sphere(radius float64) Solid {
	return newSolid(build.Func[dim.Dim3](func(e env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
		segs := e.Segmentation().ResolveSegments(radius)
		return ir.Sphere(radius, segs), result.Empty[dim.Dim3]()
	}))
}

// Cylinder builds a (possibly frustum) cylinder; equal radii give a true
// cylinder, a zero topR gives a cone.
func Cylinder(bottomR, topR, height float64) Solid {
	return newSolid(build.Func[dim.Dim3](func(e env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
		maxR := math.Max(bottomR, topR)
		segs := e.Segmentation().ResolveSegments(maxR)
		return ir.Cylinder(bottomR, topR, height, segs), result.Empty[dim.Dim3]()
	}))
}

// ConvexHullOfPoints3D builds the convex hull of an explicit 3D point set.
func ConvexHullOfPoints3D(points []dim.Vector3) Solid {
	return newSolid(build.Func[dim.Dim3](func(env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
		return ir.ConvexHullOfPoints3D(points), result.Empty[dim.Dim3]()
	}))
}

// Mesh builds a node from explicit vertex/face data; manifoldness is
// validated by the kernel at evaluation time, not here.
func Mesh(vertices []dim.Vector3, faces [][3]int) Solid {
	return newSolid(build.Func[dim.Dim3](func(env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
		return ir.MeshFrom(vertices, faces), result.Empty[dim.Dim3]()
	}))
}

func solidsToGeometry(solids []Solid) []build.Geometry3D {
	out := make([]build.Geometry3D, len(solids))
	for i, s := range solids {
		out[i] = s.impl
	}
	return out
}

// Adding unions s with others.
func (s Solid) Adding(others ...Solid) Solid {
	operands := append([]build.Geometry3D{s.impl}, solidsToGeometry(others)...)
	return newSolid(build.Composite[dim.Dim3]{Kind: ir.Union, Operands: operands})
}

// Subtracting subtracts others from s; s is the positive operand.
func (s Solid) Subtracting(others ...Solid) Solid {
	operands := append([]build.Geometry3D{s.impl}, solidsToGeometry(others)...)
	return newSolid(build.Composite[dim.Dim3]{Kind: ir.Difference, Operands: operands})
}

// Intersecting intersects s with others.
func (s Solid) Intersecting(others ...Solid) Solid {
	operands := append([]build.Geometry3D{s.impl}, solidsToGeometry(others)...)
	return newSolid(build.Composite[dim.Dim3]{Kind: ir.Intersection, Operands: operands})
}

// Hull wraps s in a ConvexHull node.
func (s Solid) Hull() Solid {
	return newSolid(build.ConvexHullOf[dim.Dim3]{Child: s.impl})
}

// Transformed applies an arbitrary affine transform.
func (s Solid) Transformed(t dim.Affine3) Solid {
	return newSolid(build.Transform3D(s.impl, t))
}

// Translated moves s by (dx, dy, dz).
func (s Solid) Translated(dx, dy, dz float64) Solid {
	return s.Transformed(dim.Translate3(dx, dy, dz))
}

// Scaled scales s about the origin.
func (s Solid) Scaled(sx, sy, sz float64) Solid {
	return s.Transformed(dim.Scale3(sx, sy, sz))
}

// RotatedZ rotates s about the Z axis by degrees.
func (s Solid) RotatedZ(degrees float64) Solid {
	return s.Transformed(dim.RotateZ3(degrees * math.Pi / 180))
}

// InPart assigns s's geometry to a named Part (spec §4.6).
func (s Solid) InPart(part result.Part) Solid {
	return newSolid(build.InPart[dim.Dim3]{Child: s.impl, Part: part})
}

// Material assigns s a material key bound to def, securing it a single
// original-ID at evaluation time so every face descending from s shares
// one material reference after CSG (spec §4.4), with def rendered as the
// corresponding 3MF property group at export time (spec §6.3).
func (s Solid) Material(key string, def Material) Solid {
	return newSolid(build.Material[dim.Dim3]{Child: s.impl, Key: key, Def: def})
}

// WithMetadata attaches a key/value pair to s's ResultElements.
func (s Solid) WithMetadata(key, value string) Solid {
	return newSolid(build.WithMetadata[dim.Dim3]{Child: s.impl, Key: key, Value: value})
}
