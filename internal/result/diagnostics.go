package result

import "github.com/dshills/geocad/internal/dim"

// ReferenceState tracks named anchors/tags a subtree referenced but never
// defined, surfaced as export-time diagnostics (spec §3, §7
// "undefinedAnchors, undefinedTags").
type ReferenceState[T dim.D] struct {
	undefinedAnchors map[string]struct{}
	undefinedTags    map[string]struct{}
}

func NewReferenceState[T dim.D]() *ReferenceState[T] {
	return &ReferenceState[T]{undefinedAnchors: map[string]struct{}{}, undefinedTags: map[string]struct{}{}}
}

func (r *ReferenceState[T]) Kind() Kind { return KindReferenceState }

func (r *ReferenceState[T]) WithUndefinedAnchor(name string) *ReferenceState[T] {
	out := r.clone()
	out.undefinedAnchors[name] = struct{}{}
	return out
}

func (r *ReferenceState[T]) WithUndefinedTag(name string) *ReferenceState[T] {
	out := r.clone()
	out.undefinedTags[name] = struct{}{}
	return out
}

func (r *ReferenceState[T]) UndefinedAnchors() []string { return keysOf(r.undefinedAnchors) }
func (r *ReferenceState[T]) UndefinedTags() []string    { return keysOf(r.undefinedTags) }

func keysOf(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func (r *ReferenceState[T]) clone() *ReferenceState[T] {
	c := &ReferenceState[T]{undefinedAnchors: map[string]struct{}{}, undefinedTags: map[string]struct{}{}}
	for k := range r.undefinedAnchors {
		c.undefinedAnchors[k] = struct{}{}
	}
	for k := range r.undefinedTags {
		c.undefinedTags[k] = struct{}{}
	}
	return c
}

func (r *ReferenceState[T]) Combine(peer Element[T]) Element[T] {
	other, ok := peer.(*ReferenceState[T])
	if !ok || other == nil {
		return r
	}
	out := r.clone()
	for k := range other.undefinedAnchors {
		out.undefinedAnchors[k] = struct{}{}
	}
	for k := range other.undefinedTags {
		out.undefinedTags[k] = struct{}{}
	}
	return out
}

// HasOnlyFlag is a sticky boolean indicating a debugging "only this
// subtree" selector was used somewhere in the build (spec §3, §7
// "onlyModifier"). It combines via logical OR: once any subtree sets it,
// it stays set all the way to the root.
type HasOnlyFlag[T dim.D] struct {
	set bool
}

func NewHasOnlyFlag[T dim.D](set bool) *HasOnlyFlag[T] { return &HasOnlyFlag[T]{set: set} }

func (h *HasOnlyFlag[T]) Kind() Kind { return KindHasOnly }
func (h *HasOnlyFlag[T]) Value() bool { return h.set }

func (h *HasOnlyFlag[T]) Combine(peer Element[T]) Element[T] {
	other, ok := peer.(*HasOnlyFlag[T])
	if !ok || other == nil {
		return h
	}
	return &HasOnlyFlag[T]{set: h.set || other.set}
}
