package result

import (
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/ir"
)

// Semantic classifies a Part's role in the exported model (spec §3).
type Semantic int

const (
	SemanticSolid Semantic = iota
	SemanticVisual
	SemanticContext
)

func (s Semantic) String() string {
	switch s {
	case SemanticSolid:
		return "solid"
	case SemanticVisual:
		return "visual"
	case SemanticContext:
		return "context"
	default:
		return "unknown"
	}
}

// Part identifies a named, independently-exportable subset of the model
// (spec §3, §4.6).
type Part struct {
	Name     string
	Semantic Semantic
}

// MainPart is the implicit part every geometry not placed inside .inPart
// accumulates into (spec §4.6).
var MainPart = Part{Name: "main", Semantic: SemanticSolid}

// PartCatalog accumulates, for every Part key, the list of node subtrees
// assigned to it (spec §3: "Combine is per-key list merge with later union
// reduction" — the actual unioning into one sub-mesh happens at export
// time in internal/export, not here, so the catalog stays purely
// structural and cheap to combine).
type PartCatalog[T dim.D] struct {
	entries map[Part][]ir.Node[T]
}

// NewPartCatalog creates an empty catalog.
func NewPartCatalog[T dim.D]() *PartCatalog[T] {
	return &PartCatalog[T]{entries: make(map[Part][]ir.Node[T])}
}

func (p *PartCatalog[T]) Kind() Kind { return KindPartCatalog }

// Put appends node to part's entry list, returning a new catalog (the
// receiver is not mutated).
func (p *PartCatalog[T]) Put(part Part, node ir.Node[T]) *PartCatalog[T] {
	out := p.clone()
	out.entries[part] = append(append([]ir.Node[T]{}, out.entries[part]...), node)
	return out
}

func (p *PartCatalog[T]) clone() *PartCatalog[T] {
	c := &PartCatalog[T]{entries: make(map[Part][]ir.Node[T], len(p.entries))}
	for k, v := range p.entries {
		c.entries[k] = append([]ir.Node[T]{}, v...)
	}
	return c
}

// Entries returns the nodes registered under part, in insertion order.
func (p *PartCatalog[T]) Entries(part Part) []ir.Node[T] {
	return p.entries[part]
}

// Parts returns every Part key present in the catalog.
func (p *PartCatalog[T]) Parts() []Part {
	out := make([]Part, 0, len(p.entries))
	for k := range p.entries {
		out = append(out, k)
	}
	return out
}

// Combine implements Element.Combine: a key-wise list merge, preserving
// each side's internal order and appending peer's entries after the
// receiver's for any key present in both (spec §3 "per-key list merge with
// later union reduction").
func (p *PartCatalog[T]) Combine(peer Element[T]) Element[T] {
	other, ok := peer.(*PartCatalog[T])
	if !ok || other == nil {
		return p
	}
	out := p.clone()
	for k, v := range other.entries {
		out.entries[k] = append(out.entries[k], v...)
	}
	return out
}
