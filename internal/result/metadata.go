package result

import "github.com/dshills/geocad/internal/dim"

// MetadataContainer holds ordered name->value pairs (title, designer,
// description, license, ...) destined for the exported file's metadata
// block (spec §3, §6.3). Field names are free-form library extensions
// except for the 3MF-supported set the export layer recognizes by name
// (see internal/export); the open question in spec §9 about which fields
// are canonical is resolved here by treating MetadataContainer as an
// ordered map and letting the exporter pick out what it understands.
type MetadataContainer[T dim.D] struct {
	order  []string
	values map[string]string
}

func NewMetadataContainer[T dim.D]() *MetadataContainer[T] {
	return &MetadataContainer[T]{values: make(map[string]string)}
}

func (m *MetadataContainer[T]) Kind() Kind { return KindMetadata }

// Set returns a derived container with key=value recorded, preserving the
// first-seen insertion order for keys set more than once.
func (m *MetadataContainer[T]) Set(key, value string) *MetadataContainer[T] {
	out := m.clone()
	if _, exists := out.values[key]; !exists {
		out.order = append(out.order, key)
	}
	out.values[key] = value
	return out
}

func (m *MetadataContainer[T]) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Pairs returns the name/value pairs in insertion order.
func (m *MetadataContainer[T]) Pairs() []KV {
	out := make([]KV, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, KV{Key: k, Value: m.values[k]})
	}
	return out
}

type KV struct{ Key, Value string }

func (m *MetadataContainer[T]) clone() *MetadataContainer[T] {
	c := &MetadataContainer[T]{
		order:  append([]string{}, m.order...),
		values: make(map[string]string, len(m.values)),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}

// Combine merges peer's entries after the receiver's, keeping the
// receiver's value for any key present in both (the earlier-built subtree
// wins, matching a "first declaration sticks" convention typical of
// metadata merge in declarative scene-graph builders).
func (m *MetadataContainer[T]) Combine(peer Element[T]) Element[T] {
	other, ok := peer.(*MetadataContainer[T])
	if !ok || other == nil {
		return m
	}
	out := m.clone()
	for _, k := range other.order {
		if _, exists := out.values[k]; exists {
			continue
		}
		out.order = append(out.order, k)
		out.values[k] = other.values[k]
	}
	return out
}
