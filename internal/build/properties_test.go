package build

import (
	"testing"

	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/env"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/result"
)

// recorder collects the Operation of every Environment its leaves are
// built with, so a test can assert purity/flipping without a kernel.
type recorder struct {
	ops []env.Operation
}

func (r *recorder) leaf(n ir.Node[dim.Dim3]) Geometry3D {
	return Func[dim.Dim3](func(e env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
		r.ops = append(r.ops, e.Operation())
		return n, result.Empty[dim.Dim3]()
	})
}

// Property 6: operation flipping — A.subtracting{B} observes B under
// OperationSubtraction while A stays under OperationAddition.
func TestOperationFlipping(t *testing.T) {
	var recA, recB recorder
	comp := Composite[dim.Dim3]{
		Kind: ir.Difference,
		Operands: []Geometry3D{
			recA.leaf(ir.Box(10, 10, 10)),
			recB.leaf(ir.Box(5, 5, 5)),
		},
	}
	_, _ = comp.Build(env.Default())

	if len(recA.ops) != 1 || recA.ops[0] != env.OperationAddition {
		t.Fatalf("positive operand should observe addition, got %v", recA.ops)
	}
	if len(recB.ops) != 1 || recB.ops[0] != env.OperationSubtraction {
		t.Fatalf("subtrahend should observe subtraction, got %v", recB.ops)
	}
}

// Property 6: the second operand of a Difference observes subtraction,
// whatever leaf stands first.
func TestSecondDifferenceOperandObservesSubtraction(t *testing.T) {
	var recB, recC recorder
	comp := Composite[dim.Dim3]{
		Kind: ir.Difference,
		Operands: []Geometry3D{
			recB.leaf(ir.Box(5, 5, 5)),
			recC.leaf(ir.Box(1, 1, 1)),
		},
	}
	_, _ = comp.Build(env.Default())
	if recC.ops[0] != env.OperationSubtraction {
		t.Fatalf("second operand of Difference should flip, got %v", recC.ops)
	}
}

// Property 5: environment purity — building the same Geometry/Environment
// pair repeatedly, and building two siblings in sequence, never lets one
// build observe a change caused by another.
func TestEnvironmentPurity(t *testing.T) {
	var recA, recB recorder
	sibling1 := recA.leaf(ir.Box(1, 1, 1))
	sibling2 := recB.leaf(ir.Box(2, 2, 2))

	e := env.Default().WithOverhangAngle(30)
	n1, _ := sibling1.Build(e)
	n2, _ := sibling2.Build(e)
	n1b, _ := sibling1.Build(e)

	if n1.Hash() != n1b.Hash() {
		t.Fatalf("repeated build of the same Geometry/Environment must be deterministic")
	}
	if recA.ops[0] != env.OperationAddition || recB.ops[0] != env.OperationAddition {
		t.Fatalf("unrelated sibling builds should not observe each other's environment")
	}
	_ = n2
}

// PartCatalog contributions from subtracted operands after the first must
// not leak into the combined ResultElements (spec §4.6).
func TestDifferenceExcludesNegativePartCatalog(t *testing.T) {
	a := Func[dim.Dim3](func(env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
		elems := result.Empty[dim.Dim3]()
		cat := result.NewPartCatalog[dim.Dim3]().Put(result.Part{Name: "a", Semantic: result.SemanticSolid}, ir.Box(1, 1, 1))
		elems = elems.With(cat)
		return ir.Box(10, 10, 10), elems
	})
	b := Func[dim.Dim3](func(env.Environment) (ir.Node[dim.Dim3], result.Elements[dim.Dim3]) {
		elems := result.Empty[dim.Dim3]()
		cat := result.NewPartCatalog[dim.Dim3]().Put(result.Part{Name: "b", Semantic: result.SemanticSolid}, ir.Box(1, 1, 1))
		elems = elems.With(cat)
		return ir.Box(2, 2, 2), elems
	})
	comp := Composite[dim.Dim3]{Kind: ir.Difference, Operands: []Geometry3D{a, b}}
	_, elems := comp.Build(env.Default())

	el, ok := elems.Get(result.KindPartCatalog)
	if !ok {
		t.Fatalf("expected a PartCatalog in the combined elements")
	}
	cat := el.(*result.PartCatalog[dim.Dim3])
	parts := cat.Parts()
	for _, p := range parts {
		if p.Name == "b" {
			t.Fatalf("subtrahend's PartCatalog entry must not survive into the combined result")
		}
	}
}
