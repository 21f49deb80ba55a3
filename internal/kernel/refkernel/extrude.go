package refkernel

import (
	"math"

	"github.com/dshills/geocad/internal/dim"
)

// linearExtrudePolys sweeps each ring of a 2D cross-section from z=0 to
// z=height, optionally twisting (degrees, applied linearly over the
// sweep) and scaling the top ring by (topScaleX, topScaleY). divisions
// controls how many intermediate rings are emitted for the twist to
// interpolate smoothly; 0 or 1 means a single straight side face per edge.
func linearExtrudePolys(rings []poly2, height, twistDeg float64, divisions int, topScaleX, topScaleY float64, id int) []poly3 {
	if divisions < 1 {
		divisions = 1
	}
	var out []poly3
	for _, ring := range rings {
		n := len(ring.verts)
		layers := make([][]dim.Vector3, divisions+1)
		for L := 0; L <= divisions; L++ {
			t := float64(L) / float64(divisions)
			z := height * t
			twist := dim.DegToRad(twistDeg) * t
			sx := 1 + (topScaleX-1)*t
			sy := 1 + (topScaleY-1)*t
			c, s := math.Cos(twist), math.Sin(twist)
			layer := make([]dim.Vector3, n)
			for i, v := range ring.verts {
				x, y := v.X*sx, v.Y*sy
				rx := x*c - y*s
				ry := x*s + y*c
				layer[i] = dim.Vector3{X: rx, Y: ry, Z: z}
			}
			layers[L] = layer
		}
		for L := 0; L < divisions; L++ {
			bottom, top := layers[L], layers[L+1]
			for i := 0; i < n; i++ {
				j := (i + 1) % n
				out = append(out, quad(bottom[i], bottom[j], top[j], top[i], id))
			}
		}
		bottomCap := make([]dim.Vector3, n)
		for i, v := range ring.verts {
			bottomCap[n-1-i] = dim.Vector3{X: v.X, Y: v.Y, Z: 0}
		}
		if p, ok := newPoly3(bottomCap, id); ok {
			out = append(out, p)
		}
		top := layers[divisions]
		if p, ok := newPoly3(append([]dim.Vector3{}, top...), id); ok {
			out = append(out, p)
		}
	}
	return out
}

// rotationalExtrudePolys revolves a 2D cross-section (assumed to lie in
// the X>=0 half-plane, per the spec's rotational-extrusion convention)
// around the Z axis: each profile point (x, y) sweeps to
// (x*cos(a), x*sin(a), y) for a in [0, angleDeg].
func rotationalExtrudePolys(rings []poly2, angleDeg float64, segments int, id int) []poly3 {
	if segments < 3 {
		segments = 3
	}
	full := angleDeg >= 359.999
	steps := segments
	var out []poly3
	for _, ring := range rings {
		n := len(ring.verts)
		layers := make([][]dim.Vector3, steps+1)
		for L := 0; L <= steps; L++ {
			a := dim.DegToRad(angleDeg) * float64(L) / float64(steps)
			c, s := math.Cos(a), math.Sin(a)
			layer := make([]dim.Vector3, n)
			for i, v := range ring.verts {
				layer[i] = dim.Vector3{X: v.X * c, Y: v.X * s, Z: v.Y}
			}
			layers[L] = layer
		}
		limit := steps
		if full {
			limit = steps // layers[steps] == layers[0] geometrically; still fine to close the loop explicitly
		}
		for L := 0; L < limit; L++ {
			bottom, top := layers[L], layers[(L+1)%(steps+1)]
			if full && L == steps-1 {
				top = layers[0]
			}
			for i := 0; i < n; i++ {
				j := (i + 1) % n
				out = append(out, quad(bottom[i], bottom[j], top[j], top[i], id))
			}
		}
		if !full {
			startCap := make([]dim.Vector3, n)
			for i, v := range ring.verts {
				startCap[n-1-i] = dim.Vector3{X: v.X, Y: 0, Z: v.Y}
			}
			if p, ok := newPoly3(startCap, id); ok {
				out = append(out, p)
			}
			endA := dim.DegToRad(angleDeg)
			c, s := math.Cos(endA), math.Sin(endA)
			endCap := make([]dim.Vector3, n)
			for i, v := range ring.verts {
				endCap[i] = dim.Vector3{X: v.X * c, Y: v.X * s, Z: v.Y}
			}
			if p, ok := newPoly3(endCap, id); ok {
				out = append(out, p)
			}
		}
	}
	return out
}
