// Package measure implements the read-only geometric queries backing the
// public `measuring`/`separated` operators (spec §4.5): bounding box and
// connected-component decomposition derived from an already-evaluated
// kernel value. Neither query mutates the IR or the Environment; both are
// pure functions of a concrete kernel.CrossSection2D/Manifold3D.
//
// Grounded on the teacher's pkg/validation/metrics.go, which computes
// read-only structural metrics (room counts, connectivity) from an already
// generated dungeon graph in exactly this "derive, don't mutate" shape.
package measure

import (
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/kernel"
)

// Bounds2D returns c's axis-aligned bounding rectangle.
func Bounds2D(c kernel.CrossSection2D) dim.Box2 {
	return c.Bounds()
}

// Bounds3D returns m's axis-aligned bounding box.
func Bounds3D(m kernel.Manifold3D) dim.Box3 {
	return m.Bounds()
}

// Separated3D splits m into its connected components (spec §4.5), used by
// geom.Separated to turn one solid into several independently placeable
// ones. The kernel decides connectivity (shared-vertex adjacency); this
// function only forwards the call, documented here as the spec-level name
// callers look for.
func Separated3D(k kernel.Kernel3D, m kernel.Manifold3D) []kernel.Manifold3D {
	return k.Decompose(m)
}

// Volume3D returns m's volume, exposed alongside Bounds3D since both are
// read-only derivations over an evaluated Manifold3D that geom's measuring
// operator can report without re-running any kernel computation.
func Volume3D(m kernel.Manifold3D) float64 {
	return m.Volume()
}

// Area2D is Volume3D's 2D counterpart.
func Area2D(c kernel.CrossSection2D) float64 {
	return c.Area()
}
