package ir

import "github.com/dshills/geocad/internal/dim"

// Boolean builds a CSG node, applying the canonicalization invariants from
// spec §3:
//
//   - Empty children are pruned from Union.
//   - Difference with an empty subtrahend returns the positive child
//     unchanged; difference with an empty positive child is Empty.
//   - Intersection containing an Empty child is Empty.
//   - A boolean left with a single surviving child collapses to that child.
//
// children[0] is always the "positive" operand for Difference; the rest are
// subtracted from it. Child order is otherwise preserved (spec §5 ordering
// guarantee) since Difference's (positive, negatives...) tuple and
// non-commutative ResultElements combines depend on it.
func Boolean[T dim.D](kind BooleanKind, children []Node[T]) Node[T] {
	switch kind {
	case Union:
		return buildUnion(children)
	case Difference:
		return buildDifference(children)
	case Intersection:
		return buildIntersection(children)
	default:
		panic("ir: unknown boolean kind")
	}
}

func buildUnion[T dim.D](children []Node[T]) Node[T] {
	survivors := make([]Node[T], 0, len(children))
	for _, c := range children {
		if c.IsEmpty() {
			continue
		}
		// Flatten nested unions so repeated `.adding` chains don't grow
		// the tree depth or create distinguishable-but-equivalent shapes.
		if c.kind == KindBoolean && c.booleanKind == Union {
			survivors = append(survivors, c.children...)
			continue
		}
		survivors = append(survivors, c)
	}
	if len(survivors) == 0 {
		return Empty[T]()
	}
	if len(survivors) == 1 {
		return survivors[0]
	}
	return makeBoolean(Union, survivors)
}

func buildDifference[T dim.D](children []Node[T]) Node[T] {
	if len(children) == 0 {
		return Empty[T]()
	}
	positive := children[0]
	if positive.IsEmpty() {
		return Empty[T]()
	}
	negatives := make([]Node[T], 0, len(children)-1)
	for _, c := range children[1:] {
		if c.IsEmpty() {
			continue
		}
		negatives = append(negatives, c)
	}
	if len(negatives) == 0 {
		return positive
	}
	all := append([]Node[T]{positive}, negatives...)
	return makeBoolean(Difference, all)
}

func buildIntersection[T dim.D](children []Node[T]) Node[T] {
	survivors := make([]Node[T], 0, len(children))
	for _, c := range children {
		if c.IsEmpty() {
			return Empty[T]()
		}
		if c.kind == KindBoolean && c.booleanKind == Intersection {
			survivors = append(survivors, c.children...)
			continue
		}
		survivors = append(survivors, c)
	}
	if len(survivors) == 0 {
		return Empty[T]()
	}
	if len(survivors) == 1 {
		return survivors[0]
	}
	return makeBoolean(Intersection, survivors)
}

func makeBoolean[T dim.D](kind BooleanKind, children []Node[T]) Node[T] {
	x := newHasher('B').int(int(kind)).int(len(children))
	for _, c := range children {
		x.hash(c.h)
	}
	return Node[T]{kind: KindBoolean, booleanKind: kind, children: children, h: x.sum()}
}
