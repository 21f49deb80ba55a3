// Package shared resolves a built geometry tree's ResultElements into the
// format-independent data every exporter in internal/export needs: one
// unioned Manifold3D/CrossSection2D per Part, the metadata key/value pairs,
// and the original-ID -> material-key mapping recorded during evaluation.
// Each concrete exporter (threemf, stl, svgexport) turns this into its own
// wire format.
package shared

import (
	"context"

	"github.com/dshills/geocad/internal/build"
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/evalctx"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/kernel"
	"github.com/dshills/geocad/internal/result"
)

// ResolvedModel3D is the exporter-agnostic resolution of a 3D build.
type ResolvedModel3D struct {
	Parts       map[result.Part]kernel.Manifold3D
	Metadata    []result.KV
	MaterialIDs map[string][]int              // tag key -> kernel original-IDs
	MaterialDefs map[string]result.MaterialDef // tag key -> its declared material value

	// Diagnostics surfaced from the build (spec §7): no geom operation
	// currently constructs a ReferenceState or HasOnlyFlag (there is no
	// anchor/tag-reference or debug "only" selector in this library's
	// operation set - see DESIGN.md), so these are always empty/false
	// today. They are resolved here, rather than left as dead registry
	// kinds, so an exporter has somewhere to emit them the day a producer
	// exists.
	UndefinedAnchors []string
	UndefinedTags    []string
	OnlyModifierUsed bool
}

// Resolve3D evaluates every node a PartCatalog references, unioning each
// Part's accumulated nodes into a single Manifold3D (spec §4.6: "the actual
// unioning into one sub-mesh happens at export time"). If root itself is
// not empty and carries no explicit inPart assignment it is folded into
// result.MainPart, matching the "every geometry not placed inside inPart
// accumulates into MainPart" rule.
func Resolve3D(ctx context.Context, ec *evalctx.Context, root ir.Node[dim.Dim3], elems result.Elements[dim.Dim3]) (ResolvedModel3D, error) {
	out := ResolvedModel3D{Parts: make(map[result.Part]kernel.Manifold3D)}

	catalog := partCatalog3D(elems)
	assigned := make(map[result.Part][]ir.Node[dim.Dim3])
	for _, p := range catalog.Parts() {
		assigned[p] = append(assigned[p], catalog.Entries(p)...)
	}
	if _, ok := assigned[result.MainPart]; !ok && !root.IsEmpty() {
		assigned[result.MainPart] = []ir.Node[dim.Dim3]{root}
	}

	for part, nodes := range assigned {
		merged := ir.Boolean(ir.Union, nodes)
		mv, err := build.Evaluate3D(ctx, ec, merged)
		if err != nil {
			return ResolvedModel3D{}, err
		}
		out.Parts[part] = mv
	}

	if meta, ok := elems.Get(result.KindMetadata); ok {
		out.Metadata = meta.(*result.MetadataContainer[dim.Dim3]).Pairs()
	}

	matKeys := make(map[string][]int)
	matDefs := make(map[string]result.MaterialDef)
	defReg, hasDefs := elems.Get(result.KindMaterialDefs)
	if mr, ok := elems.Get(result.KindMaterialRecord); ok {
		for _, key := range mr.(*result.MaterialRecord[dim.Dim3]).Keys() {
			matKeys[key] = ec.Materials().IDsForKey(key)
			if hasDefs {
				if def, ok := defReg.(*result.MaterialDefRegistry[dim.Dim3]).Get(key); ok {
					matDefs[key] = def
				}
			}
		}
	}
	out.MaterialIDs = matKeys
	out.MaterialDefs = matDefs

	if rs, ok := elems.Get(result.KindReferenceState); ok {
		state := rs.(*result.ReferenceState[dim.Dim3])
		out.UndefinedAnchors = state.UndefinedAnchors()
		out.UndefinedTags = state.UndefinedTags()
	}
	if ho, ok := elems.Get(result.KindHasOnly); ok {
		out.OnlyModifierUsed = ho.(*result.HasOnlyFlag[dim.Dim3]).Value()
	}

	return out, nil
}

func partCatalog3D(elems result.Elements[dim.Dim3]) *result.PartCatalog[dim.Dim3] {
	if pc, ok := elems.Get(result.KindPartCatalog); ok {
		return pc.(*result.PartCatalog[dim.Dim3])
	}
	return result.NewPartCatalog[dim.Dim3]()
}

// ResolvedModel2D is Resolve3D's 2D counterpart, used by the SVG exporter.
type ResolvedModel2D struct {
	Parts       map[result.Part]kernel.CrossSection2D
	Metadata    []result.KV
	MaterialIDs map[string][]int

	UndefinedAnchors []string
	UndefinedTags    []string
	OnlyModifierUsed bool
}

func Resolve2D(ctx context.Context, ec *evalctx.Context, root ir.Node[dim.Dim2], elems result.Elements[dim.Dim2]) (ResolvedModel2D, error) {
	out := ResolvedModel2D{Parts: make(map[result.Part]kernel.CrossSection2D)}

	catalog := partCatalog2D(elems)
	assigned := make(map[result.Part][]ir.Node[dim.Dim2])
	for _, p := range catalog.Parts() {
		assigned[p] = append(assigned[p], catalog.Entries(p)...)
	}
	if _, ok := assigned[result.MainPart]; !ok && !root.IsEmpty() {
		assigned[result.MainPart] = []ir.Node[dim.Dim2]{root}
	}

	for part, nodes := range assigned {
		merged := ir.Boolean(ir.Union, nodes)
		cv, err := build.Evaluate2D(ctx, ec, merged)
		if err != nil {
			return ResolvedModel2D{}, err
		}
		out.Parts[part] = cv
	}

	if meta, ok := elems.Get(result.KindMetadata); ok {
		out.Metadata = meta.(*result.MetadataContainer[dim.Dim2]).Pairs()
	}

	matKeys := make(map[string][]int)
	if mr, ok := elems.Get(result.KindMaterialRecord); ok {
		for _, key := range mr.(*result.MaterialRecord[dim.Dim2]).Keys() {
			matKeys[key] = ec.Materials().IDsForKey(key)
		}
	}
	out.MaterialIDs = matKeys

	if rs, ok := elems.Get(result.KindReferenceState); ok {
		state := rs.(*result.ReferenceState[dim.Dim2])
		out.UndefinedAnchors = state.UndefinedAnchors()
		out.UndefinedTags = state.UndefinedTags()
	}
	if ho, ok := elems.Get(result.KindHasOnly); ok {
		out.OnlyModifierUsed = ho.(*result.HasOnlyFlag[dim.Dim2]).Value()
	}

	return out, nil
}

func partCatalog2D(elems result.Elements[dim.Dim2]) *result.PartCatalog[dim.Dim2] {
	if pc, ok := elems.Get(result.KindPartCatalog); ok {
		return pc.(*result.PartCatalog[dim.Dim2])
	}
	return result.NewPartCatalog[dim.Dim2]()
}
