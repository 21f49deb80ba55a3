package ir

import "github.com/dshills/geocad/internal/dim"

// Transform wraps child in an affine transform, folding nested Transform
// nodes into a single composition (spec §3, property 3):
// Transform(Transform(a,T2),T1) canonicalizes identically to
// Transform(a, T1∘T2). Empty stays Empty: there is nothing to move.
func Transform2D(child Node[dim.Dim2], t dim.Affine2) Node[dim.Dim2] {
	if child.IsEmpty() {
		return child
	}
	if child.kind == KindTransform {
		inner := child.transform.(dim.Affine2)
		composed := t.Compose(inner)
		return makeTransform2D(*child.child, composed)
	}
	return makeTransform2D(child, t)
}

func makeTransform2D(child Node[dim.Dim2], t dim.Affine2) Node[dim.Dim2] {
	c := child
	f := t.Fields()
	x := newHasher('T').hash(child.h)
	for _, v := range f {
		x.float(v)
	}
	return Node[dim.Dim2]{kind: KindTransform, child: &c, transform: t, h: x.sum()}
}

func Transform3D(child Node[dim.Dim3], t dim.Affine3) Node[dim.Dim3] {
	if child.IsEmpty() {
		return child
	}
	if child.kind == KindTransform {
		inner := child.transform.(dim.Affine3)
		composed := t.Compose(inner)
		return makeTransform3D(*child.child, composed)
	}
	return makeTransform3D(child, t)
}

func makeTransform3D(child Node[dim.Dim3], t dim.Affine3) Node[dim.Dim3] {
	c := child
	f := t.Fields()
	x := newHasher('T').hash(child.h)
	for _, v := range f {
		x.float(v)
	}
	return Node[dim.Dim3]{kind: KindTransform, child: &c, transform: t, h: x.sum()}
}

// TransformOf2D returns the affine transform attached to a Transform node.
func TransformOf2D(n Node[dim.Dim2]) dim.Affine2 {
	mustKind(n, KindTransform)
	return n.transform.(dim.Affine2)
}

func TransformOf3D(n Node[dim.Dim3]) dim.Affine3 {
	mustKind(n, KindTransform)
	return n.transform.(dim.Affine3)
}
