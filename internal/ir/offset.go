package ir

import "github.com/dshills/geocad/internal/dim"

// JoinType mirrors env.JoinType; duplicated here (as an int) to keep the ir
// package free of a dependency on env, matching the same pattern used for
// Polygon2D's FillRule field.
type JoinType int

const (
	JoinMiter JoinType = iota
	JoinRound
	JoinBevel
	JoinSquare
)

type offsetParams struct {
	amount     float64
	join       JoinType
	miterLimit float64
	segments   int
}

// Offset builds a 2D-only Offset node (spec §3). Empty stays Empty: there
// is no boundary to grow or shrink.
func Offset(child Node[dim.Dim2], amount float64, join JoinType, miterLimit float64, segments int) Node[dim.Dim2] {
	if child.IsEmpty() {
		return child
	}
	c := child
	p := offsetParams{amount: amount, join: join, miterLimit: miterLimit, segments: segments}
	x := newHasher('O').hash(child.h).float(amount).int(int(join)).float(miterLimit).int(segments)
	return Node[dim.Dim2]{kind: KindOffset, child: &c, offset: p, h: x.sum()}
}

// OffsetParams returns the parameters attached to an Offset node.
func OffsetParams(n Node[dim.Dim2]) (amount float64, join JoinType, miterLimit float64, segments int) {
	mustKind(n, KindOffset)
	return n.offset.amount, n.offset.join, n.offset.miterLimit, n.offset.segments
}
