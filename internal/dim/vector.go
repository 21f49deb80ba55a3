package dim

import "math"

// HashEpsilon is the fixed-point scale floating-point components are
// quantized to before participating in an IR hash. Two shapes that are
// equal up to rounding error at this precision must hash identically
// (spec property: hash-stability across floats).
const HashEpsilon = 1e-9

// Quantize rounds v to the nearest multiple of HashEpsilon and returns the
// integer lattice coordinate. Using an integer (rather than a re-rounded
// float) for hashing sidesteps any remaining float formatting ambiguity.
func Quantize(v float64) int64 {
	return int64(math.Round(v / HashEpsilon))
}

// Vector2 is a 2D point or direction.
type Vector2 struct {
	X, Y float64
}

// Vector3 is a 3D point or direction.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }
func (v Vector2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vector2) Coords() []float64 { return []float64{v.X, v.Y} }

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vector3) Coords() []float64 { return []float64{v.X, v.Y, v.Z} }

// Box2 is an axis-aligned bounding rectangle. The empty box is EmptyBox2(),
// not the zero value: the zero value is a degenerate single-point box at the
// origin, which is a legitimate non-empty bound. Use IsEmpty to test.
type Box2 struct {
	Min, Max Vector2
	empty    bool
}

// EmptyBox2 returns the canonical empty 2D bound.
func EmptyBox2() Box2 { return Box2{empty: true} }

func (b Box2) IsEmpty() bool { return b.empty }

// Union returns the smallest box containing both b and o.
func (b Box2) Union(o Box2) Box2 {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box2{
		Min: Vector2{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Vector2{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Box3 is an axis-aligned bounding box in 3D.
type Box3 struct {
	Min, Max Vector3
	empty    bool
}

func EmptyBox3() Box3 { return Box3{empty: true} }

func (b Box3) IsEmpty() bool { return b.empty }

func (b Box3) Union(o Box3) Box3 {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box3{
		Min: Vector3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Vector3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

func BoxFromPoints2(pts []Vector2) Box2 {
	if len(pts) == 0 {
		return EmptyBox2()
	}
	b := Box2{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

func BoxFromPoints3(pts []Vector3) Box3 {
	if len(pts) == 0 {
		return EmptyBox3()
	}
	b := Box3{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}
