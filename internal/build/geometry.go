// Package build implements the lowering templates that turn the public,
// declarative geom tree into the canonicalizing IR (internal/ir) plus its
// ResultElements side-channel (internal/result), and then the Evaluate
// step that walks IR into concrete kernel values (internal/kernel),
// memoizing per Hash via internal/evalctx so no subtree is computed twice
// within one evaluation run (spec §5).
//
// The split mirrors the teacher's synthesis pipeline
// (github.com/dshills/dungo pkg/synthesis/synthesizer.go +
// pkg/synthesis/template.go): a small set of composable "template" types,
// each a pure function of (input, Environment) to (output, diagnostics),
// assembled by the caller into a tree instead of one monolithic recursive
// function.
package build

import (
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/env"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/result"
)

// Geometry is the lowering contract every declarative geom node satisfies.
// Build is pure: it must not retain or mutate e, and must not observe any
// state beyond e and the receiver's own fields (spec property 5,
// environment purity — a sibling's Build call must never see a change a
// prior sibling made).
type Geometry[T dim.D] interface {
	Build(e env.Environment) (ir.Node[T], result.Elements[T])
}

// Geometry2D and Geometry3D name the two instantiations the public geom
// package works with; spelled out because Go cannot infer T from a bare
// interface literal at the call sites in geom's exported function
// signatures.
type Geometry2D = Geometry[dim.Dim2]
type Geometry3D = Geometry[dim.Dim3]

// Func adapts a plain function into a Geometry, the simplest possible
// lowering template — used for leaf primitives whose IR construction is a
// one-line call into internal/ir.
type Func[T dim.D] func(e env.Environment) (ir.Node[T], result.Elements[T])

func (f Func[T]) Build(e env.Environment) (ir.Node[T], result.Elements[T]) {
	return f(e)
}
