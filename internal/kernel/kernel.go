// Package kernel defines the narrow interface boundary between the core
// geometry evaluation pipeline and the concrete CSG kernel that actually
// computes meshes and cross-sections (spec §6.1). The core never depends
// on a specific kernel implementation; internal/evalctx dispatches against
// these interfaces only. internal/kernel/refkernel provides the one
// in-process implementation this repo ships.
//
// The interface-boundary idiom (a small Kernel-shaped interface, a
// compile-time `var _ Kernel = (*impl)(nil)` check, and a wrap/unwrap pair
// bridging to the concrete library type) is grounded on
// other_examples/931a3c5d_chazu-lignin__pkg-kernel-sdfx-sdfx.go.go, which
// adapts github.com/deadsy/sdfx behind exactly this shape.
package kernel

import "github.com/dshills/geocad/internal/dim"

// CrossSection2D is the kernel-level 2D primitive (spec §6.1 "CrossSection").
type CrossSection2D interface {
	Bounds() dim.Box2
	// Polygons returns the outer and hole contours making up this
	// cross-section, in winding order, for export and further processing.
	Polygons() [][]dim.Vector2
	// Area returns the signed total area (outer contours minus holes).
	Area() float64
}

// Manifold3D is the kernel-level 3D primitive (spec §6.1 "Manifold").
type Manifold3D interface {
	Bounds() dim.Box3
	// Mesh returns the triangle soup plus, for each triangle, the
	// original ID of the leaf primitive it descends from (spec §4.4).
	Mesh() (vertices []dim.Vector3, faces [][3]int, faceOriginalIDs []int)
	Volume() float64
}

// Kernel2D is the narrow contract the core depends on for 2D evaluation
// (spec §6.1's CrossSection operation list).
type Kernel2D interface {
	Rectangle(width, height float64) CrossSection2D
	Circle(radius float64, segments int) CrossSection2D
	Polygon(points []dim.Vector2, fillRule int) CrossSection2D
	ConvexHull2D(points []dim.Vector2) CrossSection2D

	Union2D(parts []CrossSection2D) CrossSection2D
	Difference2D(positive CrossSection2D, negatives []CrossSection2D) CrossSection2D
	Intersection2D(parts []CrossSection2D) CrossSection2D

	Transform2D(c CrossSection2D, t dim.Affine2) CrossSection2D
	ConvexHullOf2D(c CrossSection2D) CrossSection2D
	Offset(c CrossSection2D, amount float64, join JoinType, miterLimit float64, segments int) CrossSection2D

	Project(m Manifold3D, slice *float64) CrossSection2D
}

// Kernel3D is the narrow contract the core depends on for 3D evaluation
// (spec §6.1's Manifold operation list).
type Kernel3D interface {
	Box(x, y, z float64) Manifold3D
	Sphere(radius float64, segments int) Manifold3D
	Cylinder(bottomR, topR, height float64, segments int) Manifold3D
	ConvexHull3D(points []dim.Vector3) Manifold3D
	MeshFrom(vertices []dim.Vector3, faces [][3]int) (Manifold3D, error)

	Union3D(parts []Manifold3D) Manifold3D
	Difference3D(positive Manifold3D, negatives []Manifold3D) Manifold3D
	Intersection3D(parts []Manifold3D) Manifold3D

	Transform3D(m Manifold3D, t dim.Affine3) Manifold3D
	ConvexHullOf3D(m Manifold3D) Manifold3D

	LinearExtrude(c CrossSection2D, height, twistDeg float64, divisions int, topScaleX, topScaleY float64) Manifold3D
	RotationalExtrude(c CrossSection2D, angleDeg float64, segments int) Manifold3D

	// AssignOriginalID stamps a fresh original ID onto every face of m,
	// returning the new Manifold3D and the ID assigned (spec §4.4).
	AssignOriginalID(m Manifold3D) (Manifold3D, int)

	// Decompose splits m into its connected components (spec §4.5).
	Decompose(m Manifold3D) []Manifold3D

	// Warp applies fn to every vertex of m, preserving each face's
	// original-ID (spec §6.2 "warp via per-vertex function"). Since fn is
	// not representable in the IR's canonicalizable data, callers evaluate
	// m concretely first and reinject the warped result via a Materialized
	// or Raw node (spec §3's documented use of those variants).
	Warp(m Manifold3D, fn func(dim.Vector3) dim.Vector3) Manifold3D

	// Refine subdivides triangles whose longest edge exceeds
	// maxEdgeLength (spec §6.2 "refine(edgeLength)"), preserving
	// original-IDs on every resulting sub-triangle.
	Refine(m Manifold3D, maxEdgeLength float64) Manifold3D
}

// JoinType mirrors env.JoinType and ir.JoinType; duplicated as an int here
// so kernel stays free of a dependency on either package (it sits below
// both in the dependency graph, per spec §6.1 treating the kernel as an
// external collaborator with a narrow, self-contained contract).
type JoinType int

const (
	JoinMiter JoinType = iota
	JoinRound
	JoinBevel
	JoinSquare
)
