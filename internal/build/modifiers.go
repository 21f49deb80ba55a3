package build

import (
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/env"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/result"
)

// InPart assigns Child's geometry to a named Part in the PartCatalog
// (spec §4.6 inPart). The child's node is stored in the catalog entry and
// the returned node is Empty, so the geometry no longer appears on the
// main build path.
type InPart[T dim.D] struct {
	Child Geometry[T]
	Part  result.Part
}

func (m InPart[T]) Build(e env.Environment) (ir.Node[T], result.Elements[T]) {
	n, el := m.Child.Build(e)
	if n.IsEmpty() {
		return n, el
	}
	catalog, ok := el.Get(result.KindPartCatalog)
	var pc *result.PartCatalog[T]
	if ok {
		pc = catalog.(*result.PartCatalog[T])
	} else {
		pc = result.NewPartCatalog[T]()
	}
	pc = pc.Put(m.Part, n)
	// n now lives only in the catalog entry above; the main build path
	// sees Empty (spec §4.6/property 7: inPart's main geometry is empty).
	return ir.Empty[T](), el.With(pc)
}

// Material assigns Child a fresh original-ID range tagged under Key at
// evaluate time (spec §4.4 material), wrapping the IR in a Tagged node,
// recording Key in a MaterialRecord so exporters can discover every
// material key used without walking the whole tree, and binding Key to
// Def in a MaterialDefRegistry so exporters know what to render for it
// (spec §6.3's color / metallic+color / specular+color property groups).
type Material[T dim.D] struct {
	Child Geometry[T]
	Key   string
	Def   result.MaterialDef
}

func (m Material[T]) Build(e env.Environment) (ir.Node[T], result.Elements[T]) {
	n, el := m.Child.Build(e)
	tagged := ir.Tagged(n, m.Key)
	if tagged.IsEmpty() {
		return tagged, el
	}
	rec, ok := el.Get(result.KindMaterialRecord)
	var mr *result.MaterialRecord[T]
	if ok {
		mr = rec.(*result.MaterialRecord[T])
	} else {
		mr = result.NewMaterialRecord[T]()
	}
	mr = mr.With(m.Key)
	el = el.With(mr)

	defs, ok := el.Get(result.KindMaterialDefs)
	var dr *result.MaterialDefRegistry[T]
	if ok {
		dr = defs.(*result.MaterialDefRegistry[T])
	} else {
		dr = result.NewMaterialDefRegistry[T]()
	}
	dr = dr.With(m.Key, m.Def)
	return tagged, el.With(dr)
}

// WithMetadata attaches a key/value pair to Child's Elements (spec §4.6
// metadata), first-declaration-sticks on key collision.
type WithMetadata[T dim.D] struct {
	Child Geometry[T]
	Key   string
	Value string
}

func (m WithMetadata[T]) Build(e env.Environment) (ir.Node[T], result.Elements[T]) {
	n, el := m.Child.Build(e)
	meta, ok := el.Get(result.KindMetadata)
	var mc *result.MetadataContainer[T]
	if ok {
		mc = meta.(*result.MetadataContainer[T])
	} else {
		mc = result.NewMetadataContainer[T]()
	}
	if _, exists := mc.Get(m.Key); !exists {
		mc = mc.Set(m.Key, m.Value)
	}
	return n, el.With(mc)
}
