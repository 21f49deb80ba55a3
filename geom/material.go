package geom

import "github.com/dshills/geocad/internal/result"

// Material is the value half of spec §4.4's "key → (originalID,
// material)" binding: what a material key actually renders as at export
// time. Every Kind carries a Color; Metallic and Specular additionally
// carry the extra channel spec §6.3's property groups require.
type Material = result.MaterialDef

// ColorMaterial is a plain color property group (spec §6.3).
func ColorMaterial(hexColor string) Material {
	return Material{Kind: result.PropertyGroupColor, Color: hexColor}
}

// MetallicMaterial is a metallic+color property group: metallicness and
// roughness are expected in [0,1].
func MetallicMaterial(hexColor string, metallicness, roughness float64) Material {
	return Material{
		Kind:         result.PropertyGroupMetallic,
		Color:        hexColor,
		Metallicness: metallicness,
		Roughness:    roughness,
	}
}

// SpecularMaterial is a specular+color property group: glossiness is
// expected in [0,1].
func SpecularMaterial(hexColor, specularHexColor string, glossiness float64) Material {
	return Material{
		Kind:          result.PropertyGroupSpecular,
		Color:         hexColor,
		SpecularColor: specularHexColor,
		Glossiness:    glossiness,
	}
}
