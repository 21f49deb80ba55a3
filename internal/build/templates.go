package build

import (
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/env"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/result"
)

// Transformed applies an affine transform to Child, threading the
// accumulated transform forward into the child's environment so
// downstream analyses (overhang detection, future measuring) see the net
// transform on that path (spec §3 Environment.accumulatedTransform).
type Transformed[T dim.D] struct {
	Child     Geometry[T]
	Transform func(e env.Environment) dim.Affine3 // world-space 4x4-as-3x4 used for env bookkeeping
	Apply     func(n ir.Node[T], e env.Environment) ir.Node[T]
}

func (t Transformed[T]) Build(e env.Environment) (ir.Node[T], result.Elements[T]) {
	childEnv := e
	if t.Transform != nil {
		childEnv = e.ApplyingTransform(t.Transform(e))
	}
	childNode, elems := t.Child.Build(childEnv)
	return t.Apply(childNode, e), elems
}

// Transform2D and Transform3D build a Transformed template for the
// dimension-appropriate affine type, keeping geom's call sites terse.
func Transform2D(child Geometry2D, t dim.Affine2, asWorld dim.Affine3) Transformed[dim.Dim2] {
	return Transformed[dim.Dim2]{
		Child:     child,
		Transform: func(env.Environment) dim.Affine3 { return asWorld },
		Apply: func(n ir.Node[dim.Dim2], _ env.Environment) ir.Node[dim.Dim2] {
			return ir.Transform2D(n, t)
		},
	}
}

func Transform3D(child Geometry3D, t dim.Affine3) Transformed[dim.Dim3] {
	return Transformed[dim.Dim3]{
		Child:     child,
		Transform: func(env.Environment) dim.Affine3 { return t },
		Apply: func(n ir.Node[dim.Dim3], _ env.Environment) ir.Node[dim.Dim3] {
			return ir.Transform3D(n, t)
		},
	}
}

// Composite builds a Boolean node from an ordered list of operand
// geometries. Per spec §4.2, Difference flips Environment.Operation for
// every operand after the first (the "negative"/subtrahend operands), and
// per spec §4.6 only the first operand (and, for Union/Intersection, every
// operand) contributes its PartCatalog — negative operands' PartCatalog
// contributions are dropped since subtracted material is not itself part
// of the model.
type Composite[T dim.D] struct {
	Kind     ir.BooleanKind
	Operands []Geometry[T]
}

func (c Composite[T]) Build(e env.Environment) (ir.Node[T], result.Elements[T]) {
	nodes := make([]ir.Node[T], len(c.Operands))
	elemsList := make([]result.Elements[T], 0, len(c.Operands))
	for i, operand := range c.Operands {
		childEnv := e
		excludePartCatalog := false
		if c.Kind == ir.Difference && i > 0 {
			childEnv = e.Flipped()
			excludePartCatalog = true
		}
		n, el := operand.Build(childEnv)
		nodes[i] = n
		if excludePartCatalog {
			el = el.Without(result.KindPartCatalog)
		}
		elemsList = append(elemsList, el)
	}
	return ir.Boolean(c.Kind, nodes), result.Combine(elemsList)
}

// ConvexHullOf wraps Child in a ConvexHull node.
type ConvexHullOf[T dim.D] struct {
	Child Geometry[T]
}

func (h ConvexHullOf[T]) Build(e env.Environment) (ir.Node[T], result.Elements[T]) {
	n, el := h.Child.Build(e)
	return ir.ConvexHull(n), el
}

// Offset wraps Child in a 2D Offset node. A nil Join defaults to a miter
// join, a nil MiterLimit to the Environment's miter limit, and Segments <= 0
// to the Environment's Segmentation resolved at radius |Amount|.
type Offset struct {
	Child      Geometry2D
	Amount     float64
	Join       *env.JoinType
	MiterLimit *float64
	Segments   int
}

func (o Offset) Build(e env.Environment) (ir.Node[dim.Dim2], result.Elements[dim.Dim2]) {
	n, el := o.Child.Build(e)
	resolvedJoin := ir.JoinType(0)
	if o.Join != nil {
		resolvedJoin = ir.JoinType(*o.Join)
	}
	miter := e.MiterLimit()
	if o.MiterLimit != nil {
		miter = *o.MiterLimit
	}
	segments := o.Segments
	if segments <= 0 {
		segments = e.Segmentation().ResolveSegments(absFloat(o.Amount))
	}
	return ir.Offset(n, o.Amount, resolvedJoin, miter, segments), el
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Project builds a 2D node from a 3D child (spec §3 Projection).
type Project struct {
	Child Geometry3D
	Mode  ir.ProjectionMode
}

func (p Project) Build(e env.Environment) (ir.Node[dim.Dim2], result.Elements[dim.Dim2]) {
	n, _ := p.Child.Build(e)
	return ir.Projection(n, p.Mode), result.Empty[dim.Dim2]()
}

// Extrude builds a 3D node from a 2D child (spec §3 Extrusion). Like
// Project, it crosses dimensionality, so the child's Elements (typed on
// Dim2) cannot carry forward into the Dim3 result; reapply inPart/material
// /withMetadata on the extruded geometry if needed.
type Extrude struct {
	Child Geometry2D
	Mode  ir.ExtrusionMode
}

func (x Extrude) Build(e env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
	n, _ := x.Child.Build(e)
	return ir.Extrusion(n, x.Mode), result.Empty[dim.Dim3]()
}
