// Package ir implements the dimensionality-polymorphic Intermediate
// Representation (spec §3): a tagged, immutable sum type with smart
// constructors that enforce the canonicalization invariants (empty
// absorption, transform folding, degenerate-primitive pruning) so that two
// trees differing only in that folded/pruned structure are Hash-equal.
//
// Node[T] is generic over a dim.D tag (dim.Dim2 or dim.Dim3). Go has no
// value-indexed sum types, so each variant's dimension-specific payload is
// carried in an unexported `any` field and only ever populated by the
// dimension-appropriate smart constructors in this package (Rectangle,
// Circle, Box, Sphere, ... below) — callers outside this package can only
// ever produce well-typed nodes because no other constructor is exported.
package ir

import "github.com/dshills/geocad/internal/dim"

// Kind discriminates the Node sum type's variants (spec §3).
type Kind int

const (
	KindEmpty Kind = iota
	KindShape
	KindBoolean
	KindTransform
	KindConvexHull
	KindOffset
	KindProjection
	KindExtrusion
	KindMaterialized
	KindRaw
	KindTagged
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindShape:
		return "Shape"
	case KindBoolean:
		return "Boolean"
	case KindTransform:
		return "Transform"
	case KindConvexHull:
		return "ConvexHull"
	case KindOffset:
		return "Offset"
	case KindProjection:
		return "Projection"
	case KindExtrusion:
		return "Extrusion"
	case KindMaterialized:
		return "Materialized"
	case KindRaw:
		return "Raw"
	case KindTagged:
		return "Tagged"
	default:
		return "Unknown"
	}
}

// BooleanKind selects which CSG operation a Boolean node performs.
type BooleanKind int

const (
	Union BooleanKind = iota
	Difference
	Intersection
)

func (k BooleanKind) String() string {
	switch k {
	case Union:
		return "union"
	case Difference:
		return "difference"
	case Intersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// CacheKey identifies an out-of-band, kernel-computed concrete result
// stored in an EvaluationContext (spec §4.2 CachedNode, §3 Materialized).
// It must serialize deterministically (spec §6.2): two equal values produce
// the same Hash.
type CacheKey struct {
	Namespace string // caller-chosen partition, e.g. "import", "isosurface", "warp"
	ID        string // caller-chosen identifier within the namespace, e.g. a file path
}

func (k CacheKey) hash() Hash {
	return newHasher('K').str(k.Namespace).str(k.ID).sum()
}

// Hash exposes CacheKey's content-addressed identity so external
// resolvers (internal/evalctx) can memoize Materialized factories by key
// rather than by the referencing node's Hash.
func (k CacheKey) Hash() Hash {
	return k.hash()
}

// Node is the immutable IR sum type, indexed by dimensionality T. The zero
// value is not meaningful; always obtain a Node through a smart constructor
// in this package.
type Node[T dim.D] struct {
	kind Kind
	h    Hash

	// KindShape
	primitive any

	// KindBoolean
	booleanKind BooleanKind
	children    []Node[T]

	// KindTransform
	child     *Node[T]
	transform any // dim.Affine2 or dim.Affine3, matching T

	// KindConvexHull reuses `child`.

	// KindOffset
	offset offsetParams

	// KindProjection (only valid when T = dim.Dim2)
	projChild *Node[dim.Dim3]
	projMode  ProjectionMode

	// KindExtrusion (only valid when T = dim.Dim3)
	extChild *Node[dim.Dim2]
	extMode  ExtrusionMode

	// KindMaterialized, KindRaw
	cacheKey CacheKey

	// KindTagged reuses `child`; tagKey is the material registry key.
	tagKey string
}

// Empty returns the canonical empty node for dimensionality T. All smart
// constructors collapse to this value under the conditions spec §3 lists
// (non-positive primitive dimensions, boolean absorption, etc).
func Empty[T dim.D]() Node[T] {
	return Node[T]{kind: KindEmpty, h: newHasher('E').sum()}
}

func (n Node[T]) Kind() Kind { return n.kind }

// Hash returns the node's content-addressed identity (spec §3, §6.2).
func (n Node[T]) Hash() Hash { return n.h }

// Equal reports whether two nodes are Hash-equal. Per spec property 1, this
// is true for any two trees that canonicalize to the same shape, even if
// they were constructed through different call sequences.
func (n Node[T]) Equal(o Node[T]) bool { return n.h == o.h }

func (n Node[T]) IsEmpty() bool { return n.kind == KindEmpty }

// Children returns the Boolean node's operands in declaration order
// (preserved per spec §5 ordering guarantee). Panics if Kind() != KindBoolean.
func (n Node[T]) Children() []Node[T] {
	mustKind(n, KindBoolean)
	return n.children
}

func (n Node[T]) BooleanKind() BooleanKind {
	mustKind(n, KindBoolean)
	return n.booleanKind
}

// Child returns the single child of Transform/ConvexHull/Tagged nodes.
func (n Node[T]) Child() Node[T] {
	if n.kind != KindTransform && n.kind != KindConvexHull && n.kind != KindTagged && n.kind != KindOffset {
		panic("ir: Child called on node kind " + n.kind.String())
	}
	return *n.child
}

func (n Node[T]) TagKey() string {
	mustKind(n, KindTagged)
	return n.tagKey
}

func (n Node[T]) CacheKey() CacheKey {
	if n.kind != KindMaterialized && n.kind != KindRaw {
		panic("ir: CacheKey called on node kind " + n.kind.String())
	}
	return n.cacheKey
}

func mustKind[T dim.D](n Node[T], k Kind) {
	if n.kind != k {
		panic("ir: expected kind " + k.String() + ", got " + n.kind.String())
	}
}

// Materialized wraps a cache key as an IR placeholder referring to a
// concrete result computed out-of-band and stored in the EvaluationContext
// (spec §3, §4.2 CachedNode).
func Materialized[T dim.D](key CacheKey) Node[T] {
	return Node[T]{kind: KindMaterialized, cacheKey: key, h: newHasher('M').hash(key.hash()).sum()}
}

// Raw wraps a cache key for a concrete result that is injected directly
// without going through CachedNode's "compute once" protocol (spec §3).
func Raw[T dim.D](key CacheKey) Node[T] {
	return Node[T]{kind: KindRaw, cacheKey: key, h: newHasher('R').hash(key.hash()).sum()}
}

// Tagged assigns a fresh original-ID to child at evaluation time and
// records it under key in the material registry (spec §4.4). Empty
// children stay Empty: tagging nothing has nothing to track.
func Tagged[T dim.D](child Node[T], key string) Node[T] {
	if child.IsEmpty() {
		return child
	}
	c := child
	return Node[T]{
		kind:   KindTagged,
		child:  &c,
		tagKey: key,
		h:      newHasher('G').hash(child.h).str(key).sum(),
	}
}
