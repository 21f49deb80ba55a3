package ir

import "github.com/dshills/geocad/internal/dim"

// ExtrusionStyle discriminates the two Extrusion modes (spec §3).
type ExtrusionStyle int

const (
	ExtrusionLinear ExtrusionStyle = iota
	ExtrusionRotational
)

// ExtrusionMode carries the parameters for either extrusion style. Only the
// fields relevant to Style are meaningful.
type ExtrusionMode struct {
	Style ExtrusionStyle

	// Linear
	Height    float64
	TwistDeg  float64
	Divisions int
	TopScaleX float64
	TopScaleY float64

	// Rotational
	AngleDeg float64
	Segments int
}

// LinearExtrusion builds the parameters for a linear extrusion.
func LinearExtrusion(height, twistDeg float64, divisions int, topScaleX, topScaleY float64) ExtrusionMode {
	return ExtrusionMode{
		Style: ExtrusionLinear, Height: height, TwistDeg: twistDeg, Divisions: divisions,
		TopScaleX: topScaleX, TopScaleY: topScaleY,
	}
}

// RotationalExtrusion builds the parameters for a rotational (revolve)
// extrusion.
func RotationalExtrusion(angleDeg float64, segments int) ExtrusionMode {
	return ExtrusionMode{Style: ExtrusionRotational, AngleDeg: angleDeg, Segments: segments}
}

// Extrusion builds a 3D node from a 2D child (spec §3). Empty 2D input
// extrudes to Empty 3D output; a non-positive linear height or non-positive
// rotational angle is degenerate and also canonicalizes to Empty.
func Extrusion(child Node[dim.Dim2], mode ExtrusionMode) Node[dim.Dim3] {
	if child.IsEmpty() {
		return Empty[dim.Dim3]()
	}
	if mode.Style == ExtrusionLinear && mode.Height <= 0 {
		return Empty[dim.Dim3]()
	}
	if mode.Style == ExtrusionRotational && mode.AngleDeg <= 0 {
		return Empty[dim.Dim3]()
	}
	c := child
	x := newHasher('X').hash(child.h).int(int(mode.Style))
	switch mode.Style {
	case ExtrusionLinear:
		x.float(mode.Height).float(mode.TwistDeg).int(mode.Divisions).float(mode.TopScaleX).float(mode.TopScaleY)
	case ExtrusionRotational:
		x.float(mode.AngleDeg).int(mode.Segments)
	}
	return Node[dim.Dim3]{kind: KindExtrusion, extChild: &c, extMode: mode, h: x.sum()}
}

func ExtrusionOf(n Node[dim.Dim3]) (Node[dim.Dim2], ExtrusionMode) {
	mustKind(n, KindExtrusion)
	return *n.extChild, n.extMode
}
