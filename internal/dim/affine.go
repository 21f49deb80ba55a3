package dim

// Affine2 is a 2D affine transform stored as a 3x2 row-major matrix
// (2 rows of linear coefficients plus a translation column):
//
//	[ A B Tx ]
//	[ C D Ty ]
type Affine2 struct {
	A, B, Tx float64
	C, D, Ty float64
}

// IdentityAffine2 returns the 2D identity transform.
func IdentityAffine2() Affine2 {
	return Affine2{A: 1, D: 1}
}

func Translate2(tx, ty float64) Affine2 {
	return Affine2{A: 1, D: 1, Tx: tx, Ty: ty}
}

func Scale2(sx, sy float64) Affine2 {
	return Affine2{A: sx, D: sy}
}

func Rotate2(radians float64) Affine2 {
	c, s := cos(radians), sin(radians)
	return Affine2{A: c, B: -s, C: s, D: c}
}

// Apply transforms a point by the affine map.
func (t Affine2) Apply(v Vector2) Vector2 {
	return Vector2{
		X: t.A*v.X + t.B*v.Y + t.Tx,
		Y: t.C*v.X + t.D*v.Y + t.Ty,
	}
}

// Compose returns the transform equivalent to applying o first, then t
// (t.Compose(o) == t ∘ o). This ordering matches Transform node folding in
// internal/ir: Transform(Transform(a, o), t) canonicalizes to
// Transform(a, t.Compose(o)).
func (t Affine2) Compose(o Affine2) Affine2 {
	return Affine2{
		A:  t.A*o.A + t.B*o.C,
		B:  t.A*o.B + t.B*o.D,
		Tx: t.A*o.Tx + t.B*o.Ty + t.Tx,
		C:  t.C*o.A + t.D*o.C,
		D:  t.C*o.B + t.D*o.D,
		Ty: t.C*o.Tx + t.D*o.Ty + t.Ty,
	}
}

// Invert returns the inverse transform. Callers must not invert a singular
// transform (determinant 0); smart constructors reject zero-scale inputs
// before they reach here.
func (t Affine2) Invert() Affine2 {
	det := t.A*t.D - t.B*t.C
	ia, ib := t.D/det, -t.B/det
	ic, id := -t.C/det, t.A/det
	itx := -(ia*t.Tx + ib*t.Ty)
	ity := -(ic*t.Tx + id*t.Ty)
	return Affine2{A: ia, B: ib, Tx: itx, C: ic, D: id, Ty: ity}
}

// Fields returns the matrix coefficients in declaration order, used by
// internal/ir's deterministic cache-key serialization.
func (t Affine2) Fields() [6]float64 {
	return [6]float64{t.A, t.B, t.Tx, t.C, t.D, t.Ty}
}

// Affine3 is a 3D affine transform stored as a 3x4 row-major matrix.
type Affine3 struct {
	A, B, C, Tx float64
	D, E, F, Ty float64
	G, H, I, Tz float64
}

func IdentityAffine3() Affine3 {
	return Affine3{A: 1, E: 1, I: 1}
}

func Translate3(tx, ty, tz float64) Affine3 {
	return Affine3{A: 1, E: 1, I: 1, Tx: tx, Ty: ty, Tz: tz}
}

func Scale3(sx, sy, sz float64) Affine3 {
	return Affine3{A: sx, E: sy, I: sz}
}

// RotateZ3 returns a rotation of radians about the Z axis.
func RotateZ3(radians float64) Affine3 {
	c, s := cos(radians), sin(radians)
	return Affine3{A: c, B: -s, D: s, E: c, I: 1}
}

func (t Affine3) Apply(v Vector3) Vector3 {
	return Vector3{
		X: t.A*v.X + t.B*v.Y + t.C*v.Z + t.Tx,
		Y: t.D*v.X + t.E*v.Y + t.F*v.Z + t.Ty,
		Z: t.G*v.X + t.H*v.Y + t.I*v.Z + t.Tz,
	}
}

// Compose returns t ∘ o: apply o first, then t.
func (t Affine3) Compose(o Affine3) Affine3 {
	return Affine3{
		A: t.A*o.A + t.B*o.D + t.C*o.G,
		B: t.A*o.B + t.B*o.E + t.C*o.H,
		C: t.A*o.C + t.B*o.F + t.C*o.I,
		Tx: t.A*o.Tx + t.B*o.Ty + t.C*o.Tz + t.Tx,

		D: t.D*o.A + t.E*o.D + t.F*o.G,
		E: t.D*o.B + t.E*o.E + t.F*o.H,
		F: t.D*o.C + t.E*o.F + t.F*o.I,
		Ty: t.D*o.Tx + t.E*o.Ty + t.F*o.Tz + t.Ty,

		G: t.G*o.A + t.H*o.D + t.I*o.G,
		H: t.G*o.B + t.H*o.E + t.I*o.H,
		I: t.G*o.C + t.H*o.F + t.I*o.I,
		Tz: t.G*o.Tx + t.H*o.Ty + t.I*o.Tz + t.Tz,
	}
}

// Invert returns the inverse of a 3x4 affine transform via the adjugate of
// the linear 3x3 block.
func (t Affine3) Invert() Affine3 {
	det := t.A*(t.E*t.I-t.F*t.H) - t.B*(t.D*t.I-t.F*t.G) + t.C*(t.D*t.H-t.E*t.G)

	ia := (t.E*t.I - t.F*t.H) / det
	ib := (t.C*t.H - t.B*t.I) / det
	ic := (t.B*t.F - t.C*t.E) / det
	id := (t.F*t.G - t.D*t.I) / det
	ie := (t.A*t.I - t.C*t.G) / det
	iF := (t.C*t.D - t.A*t.F) / det
	ig := (t.D*t.H - t.E*t.G) / det
	ih := (t.B*t.G - t.A*t.H) / det
	ii := (t.A*t.E - t.B*t.D) / det

	itx := -(ia*t.Tx + ib*t.Ty + ic*t.Tz)
	ity := -(id*t.Tx + ie*t.Ty + iF*t.Tz)
	itz := -(ig*t.Tx + ih*t.Ty + ii*t.Tz)

	return Affine3{A: ia, B: ib, C: ic, Tx: itx, D: id, E: ie, F: iF, Ty: ity, G: ig, H: ih, I: ii, Tz: itz}
}

func (t Affine3) Fields() [12]float64 {
	return [12]float64{t.A, t.B, t.C, t.Tx, t.D, t.E, t.F, t.Ty, t.G, t.H, t.I, t.Tz}
}
