package ir

import "github.com/dshills/geocad/internal/dim"

// ProjectionMode selects whether Projection flattens the whole solid or
// slices it at a fixed Z (spec §3).
type ProjectionMode struct {
	Slice   bool
	Z       float64
}

// ProjectionFull flattens a 3D solid onto the XY plane (its silhouette).
func ProjectionFull() ProjectionMode { return ProjectionMode{} }

// ProjectionSlice intersects a 3D solid with the z=Z plane.
func ProjectionSlice(z float64) ProjectionMode { return ProjectionMode{Slice: true, Z: z} }

// Projection builds a 2D node from a 3D child (spec §3). Empty 3D input
// projects to Empty 2D output.
func Projection(child Node[dim.Dim3], mode ProjectionMode) Node[dim.Dim2] {
	if child.IsEmpty() {
		return Empty[dim.Dim2]()
	}
	c := child
	x := newHasher('P').hash(child.h).int(boolInt(mode.Slice)).float(mode.Z)
	return Node[dim.Dim2]{kind: KindProjection, projChild: &c, projMode: mode, h: x.sum()}
}

func ProjectionOf(n Node[dim.Dim2]) (Node[dim.Dim3], ProjectionMode) {
	mustKind(n, KindProjection)
	return *n.projChild, n.projMode
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
