package ir

import "github.com/dshills/geocad/internal/dim"

// ConvexHull wraps child in a ConvexHull node (spec §3). Empty stays Empty.
func ConvexHull[T dim.D](child Node[T]) Node[T] {
	if child.IsEmpty() {
		return child
	}
	c := child
	return Node[T]{kind: KindConvexHull, child: &c, h: newHasher('H').hash(child.h).sum()}
}
