package result

import "github.com/dshills/geocad/internal/dim"

// PropertyGroupKind selects which of 3MF's material property-group shapes
// a MaterialDef renders as (spec §6.3: "color / metallic+color /
// specular+color").
type PropertyGroupKind int

const (
	PropertyGroupColor PropertyGroupKind = iota
	PropertyGroupMetallic
	PropertyGroupSpecular
)

// MaterialDef is the material *value* half of spec §4.4's "key →
// (originalID, material)" binding — a key on its own is only an opaque
// grouping token; this carries what the exporter actually renders for it.
// Color is required for every Kind (3MF's basematerials element always
// carries a displaycolor); Metallicness/Roughness apply only to
// PropertyGroupMetallic, SpecularColor/Glossiness only to
// PropertyGroupSpecular.
type MaterialDef struct {
	Kind          PropertyGroupKind
	Color         string // "#RRGGBBAA"
	Metallicness  float64
	Roughness     float64
	SpecularColor string // "#RRGGBB"
	Glossiness    float64
}

// MaterialDefRegistry maps a material-registry key to the MaterialDef
// first declared under it, mirroring MetadataContainer's
// first-declaration-sticks merge policy: a key's definition is fixed by
// whichever Material() call introduces it first.
type MaterialDefRegistry[T dim.D] struct {
	defs map[string]MaterialDef
}

func NewMaterialDefRegistry[T dim.D]() *MaterialDefRegistry[T] {
	return &MaterialDefRegistry[T]{defs: make(map[string]MaterialDef)}
}

func (r *MaterialDefRegistry[T]) Kind() Kind { return KindMaterialDefs }

// With returns a derived registry with key bound to def, unless key is
// already bound.
func (r *MaterialDefRegistry[T]) With(key string, def MaterialDef) *MaterialDefRegistry[T] {
	if _, ok := r.defs[key]; ok {
		return r
	}
	out := &MaterialDefRegistry[T]{defs: make(map[string]MaterialDef, len(r.defs)+1)}
	for k, v := range r.defs {
		out.defs[k] = v
	}
	out.defs[key] = def
	return out
}

func (r *MaterialDefRegistry[T]) Get(key string) (MaterialDef, bool) {
	d, ok := r.defs[key]
	return d, ok
}

func (r *MaterialDefRegistry[T]) Combine(peer Element[T]) Element[T] {
	other, ok := peer.(*MaterialDefRegistry[T])
	if !ok || other == nil {
		return r
	}
	out := &MaterialDefRegistry[T]{defs: make(map[string]MaterialDef, len(r.defs)+len(other.defs))}
	for k, v := range r.defs {
		out.defs[k] = v
	}
	for k, v := range other.defs {
		if _, ok := out.defs[k]; !ok {
			out.defs[k] = v
		}
	}
	return out
}

// MaterialRecord accumulates the set of material-registry keys a subtree
// has tagged (spec §4.4): "ResultElements.MaterialRecord accumulates
// {key} up the tree via set union." The actual (originalID, material)
// binding lives in the EvaluationContext's material registry
// (internal/evalctx); this element only tracks *which* keys are reachable
// from a given node, so export can enumerate them.
type MaterialRecord[T dim.D] struct {
	keys map[string]struct{}
}

func NewMaterialRecord[T dim.D](keys ...string) *MaterialRecord[T] {
	m := &MaterialRecord[T]{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		m.keys[k] = struct{}{}
	}
	return m
}

func (m *MaterialRecord[T]) Kind() Kind { return KindMaterialRecord }

// With returns a derived MaterialRecord with key added to the set.
func (m *MaterialRecord[T]) With(key string) *MaterialRecord[T] {
	out := &MaterialRecord[T]{keys: make(map[string]struct{}, len(m.keys)+1)}
	for k := range m.keys {
		out.keys[k] = struct{}{}
	}
	out.keys[key] = struct{}{}
	return out
}

func (m *MaterialRecord[T]) Keys() []string {
	out := make([]string, 0, len(m.keys))
	for k := range m.keys {
		out = append(out, k)
	}
	return out
}

func (m *MaterialRecord[T]) Combine(peer Element[T]) Element[T] {
	other, ok := peer.(*MaterialRecord[T])
	if !ok || other == nil {
		return m
	}
	out := &MaterialRecord[T]{keys: make(map[string]struct{}, len(m.keys)+len(other.keys))}
	for k := range m.keys {
		out.keys[k] = struct{}{}
	}
	for k := range other.keys {
		out.keys[k] = struct{}{}
	}
	return out
}
