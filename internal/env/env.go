// Package env provides the immutable ambient configuration map threaded
// downward through Geometry.build (spec §3 "Environment"). Environment
// values are never mutated in place; every "setter" returns a derived copy,
// so a child's build cannot observe or affect a sibling's view of the
// environment (spec property 5, environment purity).
package env

import (
	"math"

	"github.com/dshills/geocad/internal/dim"
)

// Operation reflects whether the current subtree sits beneath the negative
// (subtrahend) branch of a difference. It flips inside difference's
// children 2..N and is restored for sibling subtrees (spec §4.2, property 6).
type Operation int

const (
	OperationAddition Operation = iota
	OperationSubtraction
)

// FillRule selects how self-intersecting 2D polygons are filled.
type FillRule int

const (
	FillNonZero FillRule = iota
	FillEvenOdd
	FillPositive
	FillNegative
)

// JoinType selects the corner style used by 2D offset.
type JoinType int

const (
	JoinMiter JoinType = iota
	JoinRound
	JoinBevel
	JoinSquare
)

// Segmentation controls how many discrete segments approximate a curve.
// Exactly one of the two constructors below should be used; the zero value
// is not a valid Segmentation (use DefaultSegmentation()).
type Segmentation struct {
	fixed     bool
	n         int
	minAngle  float64 // degrees
	minSize   float64
}

// FixedSegmentation always uses n segments regardless of shape size.
func FixedSegmentation(n int) Segmentation {
	return Segmentation{fixed: true, n: n}
}

// AdaptiveSegmentation picks a segment count from two bounds: segments
// spanning minAngle (degrees) each, and a chord deviation of minSize (model
// units); see ResolveSegments for how they combine.
func AdaptiveSegmentation(minAngle, minSize float64) Segmentation {
	return Segmentation{fixed: false, minAngle: minAngle, minSize: minSize}
}

// DefaultSegmentation is Adaptive(2°, 0.15), the spec's documented default.
func DefaultSegmentation() Segmentation {
	return AdaptiveSegmentation(2, 0.15)
}

// ResolveSegments computes the concrete segment count for a curve of the
// given radius, implementing the Adaptive formula the distilled spec leaves
// opaque to the core (SPEC_FULL §9). The formula mirrors OpenSCAD-style
// $fa/$fs resolution: it takes the smaller of the count at which each
// segment spans minAngle and the count at which the chord deviation reaches
// minSize, so only the looser of the two bounds is met, and clamps the
// result to [3, 720].
func (s Segmentation) ResolveSegments(radius float64) int {
	if s.fixed {
		if s.n < 3 {
			return 3
		}
		return s.n
	}
	if radius <= 0 {
		return 3
	}
	byAngle := 360.0 / s.minAngle
	// Chord-error bound: radius*(1-cos(pi/n)) <= minSize  =>  n >= pi/acos(1-minSize/radius)
	bySize := 3.0
	if s.minSize < radius {
		bySize = 180.0 / degAcos(1-s.minSize/radius)
	}
	n := byAngle
	if bySize < n {
		n = bySize
	}
	if n < 3 {
		n = 3
	}
	if n > 720 {
		n = 720
	}
	return int(n + 0.5)
}

func degAcos(x float64) float64 {
	if x > 1 {
		x = 1
	}
	if x < -1 {
		x = -1
	}
	return math.Acos(x) * 180 / math.Pi
}

// Environment is an immutable map from typed key to value, threaded
// downward through Geometry.build. Every With* method returns a derived
// copy; the receiver is never mutated.
type Environment struct {
	segmentation        Segmentation
	fillRule             FillRule
	miterLimit           float64
	operation            Operation
	overhangAngle        float64
	naturalUpDirection   dim.Vector3
	circularOverhangOnly bool
	accumulatedTransform dim.Affine3
}

// Default returns the environment a root build starts from.
func Default() Environment {
	return Environment{
		segmentation:       DefaultSegmentation(),
		fillRule:           FillNonZero,
		miterLimit:         2.0,
		operation:          OperationAddition,
		overhangAngle:      45,
		naturalUpDirection: dim.Vector3{Z: 1},
		accumulatedTransform: dim.IdentityAffine3(),
	}
}

func (e Environment) Segmentation() Segmentation { return e.segmentation }
func (e Environment) FillRule() FillRule         { return e.fillRule }
func (e Environment) MiterLimit() float64        { return e.miterLimit }
func (e Environment) Operation() Operation       { return e.operation }
func (e Environment) OverhangAngle() float64     { return e.overhangAngle }
func (e Environment) NaturalUpDirection() dim.Vector3 { return e.naturalUpDirection }
func (e Environment) CircularOverhangOnly() bool { return e.circularOverhangOnly }
func (e Environment) AccumulatedTransform() dim.Affine3 { return e.accumulatedTransform }

func (e Environment) WithSegmentation(s Segmentation) Environment {
	c := e
	c.segmentation = s
	return c
}

func (e Environment) WithFillRule(f FillRule) Environment {
	c := e
	c.fillRule = f
	return c
}

// WithMiterLimit returns a derived environment with the given miter limit.
// Values below 2.0 are clamped, matching spec §3's "miterLimit: Double (≥
// 2.0, default 2.0)" invariant.
func (e Environment) WithMiterLimit(limit float64) Environment {
	c := e
	if limit < 2.0 {
		limit = 2.0
	}
	c.miterLimit = limit
	return c
}

// WithOperation returns a derived environment with operation flipped or set
// explicitly; used by the Boolean lowering template to mark subtrahend
// subtrees (spec §4.2).
func (e Environment) WithOperation(op Operation) Environment {
	c := e
	c.operation = op
	return c
}

// Flipped returns the environment with Operation toggled.
func (e Environment) Flipped() Environment {
	if e.operation == OperationAddition {
		return e.WithOperation(OperationSubtraction)
	}
	return e.WithOperation(OperationAddition)
}

func (e Environment) WithOverhangAngle(deg float64) Environment {
	c := e
	c.overhangAngle = deg
	return c
}

func (e Environment) WithNaturalUpDirection(v dim.Vector3) Environment {
	c := e
	c.naturalUpDirection = v
	return c
}

func (e Environment) WithCircularOverhangOnly(b bool) Environment {
	c := e
	c.circularOverhangOnly = b
	return c
}

// ApplyingTransform returns a derived environment whose accumulated 3D
// transform has t composed onto it. This is independent of IR Transform
// nodes (spec §3): it tracks the subtree's absolute orientation for
// geometry that needs it directly, such as overhang-aware teardrops.
func (e Environment) ApplyingTransform(t dim.Affine3) Environment {
	c := e
	c.accumulatedTransform = c.accumulatedTransform.Compose(t)
	return c
}
