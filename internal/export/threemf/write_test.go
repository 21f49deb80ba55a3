package threemf

import (
	"bytes"
	"testing"

	"github.com/dshills/geocad/internal/export/shared"
	"github.com/dshills/geocad/internal/kernel"
	"github.com/dshills/geocad/internal/kernel/refkernel"
	"github.com/dshills/geocad/internal/result"
)

func TestBuildBaseMaterialsRendersDeclaredColor(t *testing.T) {
	ids, group, pbMetallic, pbSpecular := buildBaseMaterials(
		map[string][]int{"brass": {1}},
		map[string]result.MaterialDef{"brass": {Kind: result.PropertyGroupColor, Color: "#B5A642FF"}},
	)
	if len(group.Bases) != 1 || group.Bases[0].DisplayColor != "#B5A642FF" {
		t.Fatalf("expected a single base with the declared color, got %+v", group.Bases)
	}
	if group.Bases[0].DisplayPropID != 0 {
		t.Fatalf("a plain color material should not reference a display-properties group")
	}
	if len(pbMetallic.Metallics) != 0 || len(pbSpecular.Speculars) != 0 {
		t.Fatalf("expected no pb groups for a color-only material")
	}
	if ids[1] != 0 {
		t.Fatalf("expected original-ID 1 to map to base index 0, got %d", ids[1])
	}
}

func TestBuildBaseMaterialsUntaggedKeyFallsBackToDefaultColor(t *testing.T) {
	_, group, _, _ := buildBaseMaterials(map[string][]int{"unknown": {1}}, nil)
	if group.Bases[0].DisplayColor != defaultDisplayColor {
		t.Fatalf("expected the default grey fallback for a key with no declared def, got %q", group.Bases[0].DisplayColor)
	}
}

func TestBuildBaseMaterialsMetallicReferencesPBGroup(t *testing.T) {
	_, group, pbMetallic, _ := buildBaseMaterials(
		map[string][]int{"aluminum": {1}},
		map[string]result.MaterialDef{"aluminum": {Kind: result.PropertyGroupMetallic, Color: "#C8C9CBFF", Metallicness: 0.9, Roughness: 0.35}},
	)
	base := group.Bases[0]
	if base.DisplayPropID != 2 || base.DisplayPropIndex != 0 {
		t.Fatalf("expected the base to reference pbmetallic group 2 index 0, got id=%d index=%d", base.DisplayPropID, base.DisplayPropIndex)
	}
	if len(pbMetallic.Metallics) != 1 || pbMetallic.Metallics[0].Metallicness != 0.9 {
		t.Fatalf("expected one pbmetallic entry with metallicness 0.9, got %+v", pbMetallic.Metallics)
	}
}

func TestBuildBaseMaterialsSpecularReferencesPBGroup(t *testing.T) {
	_, group, _, pbSpecular := buildBaseMaterials(
		map[string][]int{"steel": {1}},
		map[string]result.MaterialDef{"steel": {Kind: result.PropertyGroupSpecular, Color: "#71797EFF", SpecularColor: "#D9D9D9", Glossiness: 0.6}},
	)
	base := group.Bases[0]
	if base.DisplayPropID != 3 || base.DisplayPropIndex != 0 {
		t.Fatalf("expected the base to reference pbspecular group 3 index 0, got id=%d index=%d", base.DisplayPropID, base.DisplayPropIndex)
	}
	if len(pbSpecular.Speculars) != 1 || pbSpecular.Speculars[0].SpecularColor != "#D9D9D9" {
		t.Fatalf("expected one pbspecular entry, got %+v", pbSpecular.Speculars)
	}
}

func TestDiagnosticsMetadataSurfacesUndefinedReferencesAndOnlyFlag(t *testing.T) {
	model := shared.ResolvedModel3D{
		UndefinedAnchors: []string{"top", "bottom"},
		UndefinedTags:    []string{"brass"},
		OnlyModifierUsed: true,
	}
	meta := diagnosticsMetadata(model)
	if len(meta) != 3 {
		t.Fatalf("expected 3 diagnostics metadata entries, got %d: %+v", len(meta), meta)
	}
	if meta[0].Name != "undefinedAnchors" || meta[0].Value != "top,bottom" {
		t.Fatalf("unexpected undefinedAnchors entry: %+v", meta[0])
	}
	if meta[1].Name != "undefinedTags" || meta[1].Value != "brass" {
		t.Fatalf("unexpected undefinedTags entry: %+v", meta[1])
	}
	if meta[2].Name != "onlyModifier" || meta[2].Value != "true" {
		t.Fatalf("unexpected onlyModifier entry: %+v", meta[2])
	}
}

func TestDiagnosticsMetadataEmptyWhenNothingToReport(t *testing.T) {
	if meta := diagnosticsMetadata(shared.ResolvedModel3D{}); len(meta) != 0 {
		t.Fatalf("expected no diagnostics metadata for a clean model, got %+v", meta)
	}
}

func TestWriteProducesNonEmptyZipWithMaterials(t *testing.T) {
	k := refkernel.New()
	model := shared.ResolvedModel3D{
		Parts:        map[result.Part]kernel.Manifold3D{result.MainPart: k.Box(1, 1, 1)},
		MaterialIDs:  map[string][]int{"brass": {1}},
		MaterialDefs: map[string]result.MaterialDef{"brass": {Kind: result.PropertyGroupColor, Color: "#B5A642FF"}},
	}
	var buf bytes.Buffer
	if err := Write(&buf, model); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty zip output")
	}
}
