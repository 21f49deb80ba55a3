package geom

import (
	"github.com/dshills/geocad/internal/build"
	"github.com/dshills/geocad/internal/ir"
)

// ExtrudeOptions configures LinearExtrusion; the zero value is a straight
// extrusion with no twist and unit top scale.
type ExtrudeOptions struct {
	TwistDeg          float64
	Divisions         int
	TopScaleX         float64
	TopScaleY         float64
	topScaleSpecified bool
}

// WithTopScale overrides the top face's XY scale (default 1,1 — a prism).
func (o ExtrudeOptions) WithTopScale(x, y float64) ExtrudeOptions {
	o.TopScaleX, o.TopScaleY, o.topScaleSpecified = x, y, true
	return o
}

func (o ExtrudeOptions) resolvedTopScale() (float64, float64) {
	if o.topScaleSpecified {
		return o.TopScaleX, o.TopScaleY
	}
	return 1, 1
}

// Extruded lifts p into 3D via a straight (optionally twisted/tapered)
// linear extrusion of the given height (spec §3 Extrusion, Linear mode).
// Per build.Extrude, p's Elements do not carry forward into the result;
// reapply InPart/Material/WithMetadata on the returned Solid if needed.
func (p Plane) Extruded(height float64, opts ExtrudeOptions) Solid {
	topX, topY := opts.resolvedTopScale()
	mode := ir.LinearExtrusion(height, opts.TwistDeg, opts.Divisions, topX, topY)
	return newSolid(build.Extrude{Child: p.impl, Mode: mode})
}

// Revolved lifts p into 3D via a rotational extrusion (revolve) of
// angleDeg around the Z axis (spec §3 Extrusion, Rotational mode).
func (p Plane) Revolved(angleDeg float64, segments int) Solid {
	mode := ir.RotationalExtrusion(angleDeg, segments)
	return newSolid(build.Extrude{Child: p.impl, Mode: mode})
}

// Projected flattens s onto the XY plane (its silhouette). Like Extruded
// in reverse, s's Elements do not carry forward.
func (s Solid) Projected() Plane {
	return newPlane(build.Project{Child: s.impl, Mode: ir.ProjectionFull()})
}

// Sliced intersects s with the z=height plane, producing its 2D
// cross-section at that height.
func (s Solid) Sliced(height float64) Plane {
	return newPlane(build.Project{Child: s.impl, Mode: ir.ProjectionSlice(height)})
}
