package ir

import "github.com/dshills/geocad/internal/dim"

// PrimitiveKind2D discriminates the 2D primitive shapes (spec §3).
type PrimitiveKind2D int

const (
	PrimRectangle PrimitiveKind2D = iota
	PrimCircle
	PrimPolygon
	PrimConvexHull2
)

// Rectangle2D is a width x height axis-aligned rectangle with its minimum
// corner at the origin.
type Rectangle2D struct {
	Width, Height float64
}

// Circle2D is a circle of the given radius, pre-resolved to a fixed segment
// count at IR construction time (resolution happens during build, using the
// Environment's Segmentation — see internal/build).
type Circle2D struct {
	Radius   float64
	Segments int
}

// Polygon2D is an explicit point list with a fill rule for self-intersection.
type Polygon2D struct {
	Points   []dim.Vector2
	FillRule int // mirrors env.FillRule; duplicated here to keep ir free of env's import
}

// ConvexHullPoints2D computes the hull of an explicit point set directly,
// distinct from the ConvexHull node (which wraps an arbitrary child node).
type ConvexHullPoints2D struct {
	Points []dim.Vector2
}

// shape2 is the sum of all 2D primitive payloads; exactly one constructor
// below ever populates Node[dim.Dim2]{primitive: shape2{...}}.
type shape2 struct {
	kind PrimitiveKind2D
	rect Rectangle2D
	circ Circle2D
	poly Polygon2D
	hull ConvexHullPoints2D
}

func (s shape2) hash() Hash {
	x := newHasher('S').int(int(s.kind))
	switch s.kind {
	case PrimRectangle:
		x.float(s.rect.Width).float(s.rect.Height)
	case PrimCircle:
		x.float(s.circ.Radius).int(s.circ.Segments)
	case PrimPolygon:
		x.int(len(s.poly.Points))
		for _, p := range s.poly.Points {
			x.float(p.X).float(p.Y)
		}
		x.int(s.poly.FillRule)
	case PrimConvexHull2:
		x.int(len(s.hull.Points))
		for _, p := range s.hull.Points {
			x.float(p.X).float(p.Y)
		}
	}
	return x.sum()
}

// Rectangle builds a rectangle node, canonicalizing non-positive dimensions
// to Empty (spec §3 canonicalization invariant).
func Rectangle(width, height float64) Node[dim.Dim2] {
	if width <= 0 || height <= 0 {
		return Empty[dim.Dim2]()
	}
	s := shape2{kind: PrimRectangle, rect: Rectangle2D{Width: width, Height: height}}
	return Node[dim.Dim2]{kind: KindShape, primitive: s, h: s.hash()}
}

// Circle builds a circle node. segments must already be resolved by the
// caller (internal/build resolves it from the Environment's Segmentation).
func Circle(radius float64, segments int) Node[dim.Dim2] {
	if radius <= 0 {
		return Empty[dim.Dim2]()
	}
	if segments < 3 {
		segments = 3
	}
	s := shape2{kind: PrimCircle, circ: Circle2D{Radius: radius, Segments: segments}}
	return Node[dim.Dim2]{kind: KindShape, primitive: s, h: s.hash()}
}

// Polygon builds a polygon node from an explicit point list. Fewer than 3
// points cannot enclose any area and canonicalizes to Empty.
func Polygon(points []dim.Vector2, fillRule int) Node[dim.Dim2] {
	if len(points) < 3 {
		return Empty[dim.Dim2]()
	}
	pts := append([]dim.Vector2(nil), points...)
	s := shape2{kind: PrimPolygon, poly: Polygon2D{Points: pts, FillRule: fillRule}}
	return Node[dim.Dim2]{kind: KindShape, primitive: s, h: s.hash()}
}

// ConvexHullOfPoints2D builds a node that is the convex hull of an explicit
// 2D point set, distinct from the ConvexHull(child) wrapper below.
func ConvexHullOfPoints2D(points []dim.Vector2) Node[dim.Dim2] {
	if len(points) < 3 {
		return Empty[dim.Dim2]()
	}
	pts := append([]dim.Vector2(nil), points...)
	s := shape2{kind: PrimConvexHull2, hull: ConvexHullPoints2D{Points: pts}}
	return Node[dim.Dim2]{kind: KindShape, primitive: s, h: s.hash()}
}

// Shape2D returns the 2D primitive payload and its kind for kernel dispatch
// (internal/evalctx). Panics if n is not a KindShape node.
func Shape2D(n Node[dim.Dim2]) (PrimitiveKind2D, Rectangle2D, Circle2D, Polygon2D, ConvexHullPoints2D) {
	mustKind(n, KindShape)
	s := n.primitive.(shape2)
	return s.kind, s.rect, s.circ, s.poly, s.hull
}

// --- 3D primitives ---

type PrimitiveKind3D int

const (
	PrimBox PrimitiveKind3D = iota
	PrimSphere
	PrimCylinder
	PrimConvexHull3
	PrimMesh
)

type Box3D struct {
	X, Y, Z float64
}

type Sphere3D struct {
	Radius   float64
	Segments int
}

// Cylinder3D is a frustum: equal bottom/top radii give a true cylinder, a
// zero top radius gives a cone.
type Cylinder3D struct {
	BottomRadius, TopRadius, Height float64
	Segments                       int
}

type ConvexHullPoints3D struct {
	Points []dim.Vector3
}

// Mesh3D is an explicit triangle mesh supplied by an importer or by
// surface-layer code (e.g. SDF isosurface extraction); the kernel validates
// manifoldness at evaluation time (spec §6.1, geomerr.MeshNotManifold).
type Mesh3D struct {
	Vertices []dim.Vector3
	Faces    [][3]int
}

type shape3 struct {
	kind   PrimitiveKind3D
	box    Box3D
	sphere Sphere3D
	cyl    Cylinder3D
	hull   ConvexHullPoints3D
	mesh   Mesh3D
}

func (s shape3) hash() Hash {
	x := newHasher('S').int(int(s.kind))
	switch s.kind {
	case PrimBox:
		x.float(s.box.X).float(s.box.Y).float(s.box.Z)
	case PrimSphere:
		x.float(s.sphere.Radius).int(s.sphere.Segments)
	case PrimCylinder:
		x.float(s.cyl.BottomRadius).float(s.cyl.TopRadius).float(s.cyl.Height).int(s.cyl.Segments)
	case PrimConvexHull3:
		x.int(len(s.hull.Points))
		for _, p := range s.hull.Points {
			x.float(p.X).float(p.Y).float(p.Z)
		}
	case PrimMesh:
		x.int(len(s.mesh.Vertices))
		for _, p := range s.mesh.Vertices {
			x.float(p.X).float(p.Y).float(p.Z)
		}
		x.int(len(s.mesh.Faces))
		for _, f := range s.mesh.Faces {
			x.int(f[0]).int(f[1]).int(f[2])
		}
	}
	return x.sum()
}

// Box builds a box node with its minimum corner at the origin.
func Box(x, y, z float64) Node[dim.Dim3] {
	if x <= 0 || y <= 0 || z <= 0 {
		return Empty[dim.Dim3]()
	}
	s := shape3{kind: PrimBox, box: Box3D{X: x, Y: y, Z: z}}
	return Node[dim.Dim3]{kind: KindShape, primitive: s, h: s.hash()}
}

func Sphere(radius float64, segments int) Node[dim.Dim3] {
	if radius <= 0 {
		return Empty[dim.Dim3]()
	}
	if segments < 3 {
		segments = 3
	}
	s := shape3{kind: PrimSphere, sphere: Sphere3D{Radius: radius, Segments: segments}}
	return Node[dim.Dim3]{kind: KindShape, primitive: s, h: s.hash()}
}

// Cylinder builds a (possibly frustum) cylinder node. Both radii zero or
// non-positive height canonicalize to Empty.
func Cylinder(bottomR, topR, height float64, segments int) Node[dim.Dim3] {
	if height <= 0 || (bottomR <= 0 && topR <= 0) {
		return Empty[dim.Dim3]()
	}
	if segments < 3 {
		segments = 3
	}
	s := shape3{kind: PrimCylinder, cyl: Cylinder3D{BottomRadius: bottomR, TopRadius: topR, Height: height, Segments: segments}}
	return Node[dim.Dim3]{kind: KindShape, primitive: s, h: s.hash()}
}

func ConvexHullOfPoints3D(points []dim.Vector3) Node[dim.Dim3] {
	if len(points) < 4 {
		return Empty[dim.Dim3]()
	}
	pts := append([]dim.Vector3(nil), points...)
	s := shape3{kind: PrimConvexHull3, hull: ConvexHullPoints3D{Points: pts}}
	return Node[dim.Dim3]{kind: KindShape, primitive: s, h: s.hash()}
}

// MeshFrom builds a mesh node from explicit vertex/face data. Manifoldness
// is validated by the kernel at evaluation time, not here (construction is
// pure and must not fail; spec §4.1).
func MeshFrom(vertices []dim.Vector3, faces [][3]int) Node[dim.Dim3] {
	if len(vertices) == 0 || len(faces) == 0 {
		return Empty[dim.Dim3]()
	}
	v := append([]dim.Vector3(nil), vertices...)
	f := append([][3]int(nil), faces...)
	s := shape3{kind: PrimMesh, mesh: Mesh3D{Vertices: v, Faces: f}}
	return Node[dim.Dim3]{kind: KindShape, primitive: s, h: s.hash()}
}

func Shape3D(n Node[dim.Dim3]) (PrimitiveKind3D, Box3D, Sphere3D, Cylinder3D, ConvexHullPoints3D, Mesh3D) {
	mustKind(n, KindShape)
	s := n.primitive.(shape3)
	return s.kind, s.box, s.sphere, s.cyl, s.hull, s.mesh
}
