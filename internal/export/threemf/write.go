package threemf

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dshills/geocad/internal/export/shared"
	"github.com/dshills/geocad/internal/result"
)

const defaultDisplayColor = "#CCCCCCFF"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="model" ContentType="application/vnd.ms-package.3dmanufacturing-3dmodel+xml"/>
</Types>
`

const relsXML = `<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Target="/3D/3dmodel.model" Id="rel0" Type="http://schemas.microsoft.com/3dmanufacturing/2013/01/3dmodel"/>
</Relationships>
`

// Write packages model as a 3MF file, one 3MF object per Part and one
// build item referencing each. Parts are written sorted by name, then by
// semantic, so
// repeated exports of the same model produce byte-identical output.
func Write(w io.Writer, model shared.ResolvedModel3D) error {
	doc, err := buildModelXML(model)
	if err != nil {
		return err
	}
	payload, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	if err := writeZipEntry(zw, "[Content_Types].xml", []byte(contentTypesXML)); err != nil {
		return err
	}
	if err := writeZipEntry(zw, "_rels/.rels", []byte(relsXML)); err != nil {
		return err
	}
	modelBytes := append([]byte(xml.Header), payload...)
	if err := writeZipEntry(zw, "3D/3dmodel.model", modelBytes); err != nil {
		return err
	}
	return zw.Close()
}

func writeZipEntry(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}

func buildModelXML(model shared.ResolvedModel3D) (modelXML, error) {
	doc := modelXML{Xmlns: modelNamespace, Unit: "millimeter"}

	for _, kv := range model.Metadata {
		doc.Metadata = append(doc.Metadata, metadataXML{Name: kv.Key, Value: kv.Value})
	}
	for _, name := range diagnosticsMetadata(model) {
		doc.Metadata = append(doc.Metadata, name)
	}

	pindexByOriginalID, basematerials, pbMetallic, pbSpecular := buildBaseMaterials(model.MaterialIDs, model.MaterialDefs)
	if len(basematerials.Bases) > 0 {
		doc.Resources.BaseMaterials = []baseMaterialsXML{basematerials}
	}
	if len(pbMetallic.Metallics) > 0 || len(pbSpecular.Speculars) > 0 {
		doc.XmlnsM = materialsExtNamespace
	}
	if len(pbMetallic.Metallics) > 0 {
		doc.Resources.PBMetallics = []pbMetallicGroupXML{pbMetallic}
	}
	if len(pbSpecular.Speculars) > 0 {
		doc.Resources.PBSpeculars = []pbSpecularGroupXML{pbSpecular}
	}

	parts := make([]result.Part, 0, len(model.Parts))
	for p := range model.Parts {
		parts = append(parts, p)
	}
	sort.Slice(parts, func(i, j int) bool {
		if parts[i].Name != parts[j].Name {
			return parts[i].Name < parts[j].Name
		}
		return parts[i].Semantic < parts[j].Semantic
	})

	nextID := 1
	if len(basematerials.Bases) > 0 {
		nextID = 4 // reserve 1-3 for basematerials/pbmetallic/pbspecular groups
	}
	for _, part := range parts {
		manifold := model.Parts[part]
		vertices, faces, faceOriginalIDs := manifold.Mesh()

		obj := objectXML{ID: nextID, Type: "model", Name: part.Name}
		obj.Mesh.Vertices = make([]vertexXML, len(vertices))
		for i, v := range vertices {
			obj.Mesh.Vertices[i] = vertexXML{X: v.X, Y: v.Y, Z: v.Z}
		}
		obj.Mesh.Triangles = make([]triangleXML, len(faces))
		for i, f := range faces {
			tri := triangleXML{V1: f[0], V2: f[1], V3: f[2]}
			if pidx, ok := pindexByOriginalID[faceOriginalIDs[i]]; ok {
				tri.PID = basematerials.ID
				tri.P1 = pidx
			}
			obj.Mesh.Triangles[i] = tri
		}
		doc.Resources.Objects = append(doc.Resources.Objects, obj)
		doc.Build.Items = append(doc.Build.Items, itemXML{ObjectID: nextID})
		nextID++
	}

	if len(doc.Resources.Objects) == 0 {
		return modelXML{}, fmt.Errorf("threemf: model has no parts to export")
	}
	return doc, nil
}

// diagnosticsMetadata surfaces spec §7's export-time diagnostics
// (undefinedAnchors, undefinedTags, onlyModifier) as ordinary 3MF
// <metadata> entries. 3MF is the only export format here with a metadata
// element at all (STL is a bare mesh, SVG has no equivalent channel), so
// this is currently the sole place these reach the written file.
func diagnosticsMetadata(model shared.ResolvedModel3D) []metadataXML {
	var out []metadataXML
	if len(model.UndefinedAnchors) > 0 {
		out = append(out, metadataXML{Name: "undefinedAnchors", Value: strings.Join(model.UndefinedAnchors, ",")})
	}
	if len(model.UndefinedTags) > 0 {
		out = append(out, metadataXML{Name: "undefinedTags", Value: strings.Join(model.UndefinedTags, ",")})
	}
	if model.OnlyModifierUsed {
		out = append(out, metadataXML{Name: "onlyModifier", Value: "true"})
	}
	return out
}

// buildBaseMaterials assigns one basematerial entry per material key,
// rendering each key's declared MaterialDef as its displaycolor and, for
// Metallic/Specular kinds, a reference into the matching pb*
// display-properties group (spec §6.3). It returns the per-original-ID
// property index into the basematerials group, so each triangle can be
// stamped with (pid, p1) pointing at its material.
func buildBaseMaterials(materialIDs map[string][]int, materialDefs map[string]result.MaterialDef) (map[int]int, baseMaterialsXML, pbMetallicGroupXML, pbSpecularGroupXML) {
	keys := make([]string, 0, len(materialIDs))
	for k := range materialIDs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	const (
		baseGroupID = 1
		metallicGroupID = 2
		specularGroupID = 3
	)
	group := baseMaterialsXML{ID: baseGroupID}
	pbMetallic := pbMetallicGroupXML{ID: metallicGroupID}
	pbSpecular := pbSpecularGroupXML{ID: specularGroupID}
	byOriginalID := make(map[int]int)

	for i, key := range keys {
		def, ok := materialDefs[key]
		if !ok {
			def = result.MaterialDef{Kind: result.PropertyGroupColor, Color: defaultDisplayColor}
		}
		base := baseXML{Name: key, DisplayColor: def.Color}
		switch def.Kind {
		case result.PropertyGroupMetallic:
			base.DisplayPropID = metallicGroupID
			base.DisplayPropIndex = len(pbMetallic.Metallics)
			pbMetallic.Metallics = append(pbMetallic.Metallics, pbMetallicXML{
				Name: key, Metallicness: def.Metallicness, Roughness: def.Roughness,
			})
		case result.PropertyGroupSpecular:
			base.DisplayPropID = specularGroupID
			base.DisplayPropIndex = len(pbSpecular.Speculars)
			pbSpecular.Speculars = append(pbSpecular.Speculars, pbSpecularXML{
				Name: key, SpecularColor: def.SpecularColor, Glossiness: def.Glossiness,
			})
		}
		group.Bases = append(group.Bases, base)
		for _, id := range materialIDs[key] {
			byOriginalID[id] = i
		}
	}
	return byOriginalID, group, pbMetallic, pbSpecular
}
