// Package result implements ResultElements (spec §3, §4.6): the typed
// auxiliary metadata channel that flows back up the build alongside every
// IR node. Each element kind defines its own Combine rule, used whenever a
// composite node merges the results of multiple children; internal/build
// is the only caller that decides *which* children's elements participate
// in a given combine (e.g. a Boolean's negative children are excluded from
// the PartCatalog combine — see spec §4.2, §4.6).
//
// The registry pattern (kind -> factory/behavior) mirrors the teacher's
// synthesis.Registry (github.com/dshills/dungo pkg/synthesis/synthesizer.go
// Register/Get/List over a package-level map guarded by sync.RWMutex).
package result

import "github.com/dshills/geocad/internal/dim"

// Kind identifies one of the recognized ResultElement kinds (spec §3).
type Kind int

const (
	KindPartCatalog Kind = iota
	KindMaterialRecord
	KindMaterialDefs
	KindMetadata
	KindReferenceState
	KindHasOnly
)

func (k Kind) String() string {
	switch k {
	case KindPartCatalog:
		return "PartCatalog"
	case KindMaterialRecord:
		return "MaterialRecord"
	case KindMaterialDefs:
		return "MaterialDefRegistry"
	case KindMetadata:
		return "MetadataContainer"
	case KindReferenceState:
		return "ReferenceState"
	case KindHasOnly:
		return "HasOnlyFlag"
	default:
		return "Unknown"
	}
}

// Element is any value that can live in a ResultElements map. Combine must
// be commutative-associative enough that the result of combining a
// composite's children does not depend on the order concurrent child
// builds complete in (spec §5); it MAY still depend on the declared child
// order passed to Combine, which callers control explicitly.
type Element[T dim.D] interface {
	Kind() Kind
	// Combine merges peer (a sibling's contribution of the same Kind)
	// into a new Element; the receiver and peer are never mutated.
	Combine(peer Element[T]) Element[T]
}

// Elements is the typed map from element-kind to element-value, generic
// over the dimensionality of the Nodes it may reference (PartCatalog and
// MaterialRecord store Node[T] values).
type Elements[T dim.D] struct {
	m map[Kind]Element[T]
}

// Empty returns a ResultElements with no entries, the value every leaf
// lowering template starts from.
func Empty[T dim.D]() Elements[T] {
	return Elements[T]{}
}

// Get returns the element of the given kind, or ok=false if absent.
func (e Elements[T]) Get(k Kind) (Element[T], bool) {
	if e.m == nil {
		return nil, false
	}
	v, ok := e.m[k]
	return v, ok
}

// With returns a derived Elements with el set (overwriting any existing
// entry of the same kind), leaving the receiver untouched.
func (e Elements[T]) With(el Element[T]) Elements[T] {
	c := Elements[T]{m: make(map[Kind]Element[T], len(e.m)+1)}
	for k, v := range e.m {
		c.m[k] = v
	}
	c.m[el.Kind()] = el
	return c
}

// Without returns a derived Elements with the given kind removed.
func (e Elements[T]) Without(k Kind) Elements[T] {
	if _, ok := e.m[k]; !ok {
		return e
	}
	c := Elements[T]{m: make(map[Kind]Element[T], len(e.m))}
	for kk, v := range e.m {
		if kk != k {
			c.m[kk] = v
		}
	}
	return c
}

// Kinds returns the set of kinds present.
func (e Elements[T]) Kinds() []Kind {
	ks := make([]Kind, 0, len(e.m))
	for k := range e.m {
		ks = append(ks, k)
	}
	return ks
}

// Combine merges a slice of sibling Elements, one per kind present in any
// of them, preserving the slice's order (spec §5 ordering guarantee: a
// combine may be non-commutative, e.g. PartCatalog list-merge, so caller
// order matters even though wall-clock completion order of concurrent
// child builds does not).
func Combine[T dim.D](all []Elements[T]) Elements[T] {
	seen := make(map[Kind]Element[T])
	order := make([]Kind, 0, 4)
	for _, e := range all {
		for _, k := range orderedKinds() {
			v, ok := e.Get(k)
			if !ok {
				continue
			}
			if existing, ok := seen[k]; ok {
				seen[k] = existing.Combine(v)
			} else {
				seen[k] = v
				order = append(order, k)
			}
		}
	}
	out := Empty[T]()
	for _, k := range order {
		out = out.With(seen[k])
	}
	return out
}

func orderedKinds() []Kind {
	return []Kind{KindPartCatalog, KindMaterialRecord, KindMaterialDefs, KindMetadata, KindReferenceState, KindHasOnly}
}
