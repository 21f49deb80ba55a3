// Package samples provides the small built-in model set cmd/geocad builds
// when no external project declarations are wired in, demonstrating the
// geom API the way dungo's cmd/dungeongen demonstrated a single dungeon
// generation end to end.
package samples

import (
	"context"

	"github.com/dshills/geocad/geom"
	"github.com/dshills/geocad/internal/project"
	"github.com/dshills/geocad/internal/result"
)

// Content registers every sample model.
func Content(b *project.Builder) {
	b.Model("bracket", bracket)
	b.Model("washer", washer)
}

// Only returns a ContentFunc registering a single named sample model, or
// an empty project if name matches none.
func Only(name string) project.ContentFunc {
	return func(b *project.Builder) {
		switch name {
		case "bracket":
			b.Model("bracket", bracket)
		case "washer":
			b.Model("washer", washer)
		}
	}
}

// bracket is an L-bracket with two mounting holes, demonstrating
// Subtracting, InPart and Material together.
func bracket(_ context.Context) (geom.Solid, error) {
	hole := func(x, y float64) geom.Solid {
		return geom.Cylinder(2.5, 2.5, 5).Translated(x, y, -0.5)
	}

	aluminum := geom.MetallicMaterial("#C8C9CBFF", 0.9, 0.35)
	plate := geom.Box(40, 20, 4).Subtracting(hole(8, 5), hole(32, 5)).
		Material("aluminum", aluminum).
		InPart(result.Part{Name: "plate", Semantic: result.SemanticSolid})
	upright := geom.Box(4, 20, 30).Translated(0, 0, 4).
		Material("aluminum", aluminum).
		InPart(result.Part{Name: "upright", Semantic: result.SemanticSolid})
	return plate.Adding(upright), nil
}

// washer is a flat ring produced by extruding a 2D annulus, demonstrating
// the 2D-to-3D lift.
func washer(_ context.Context) (geom.Solid, error) {
	ring := geom.Circle(10).Subtracting(geom.Circle(5))
	steel := geom.SpecularMaterial("#71797EFF", "#D9D9D9", 0.6)
	return ring.Extruded(3, geom.ExtrudeOptions{}).Material("steel", steel), nil
}
