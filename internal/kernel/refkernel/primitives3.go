package refkernel

import (
	"math"

	"github.com/dshills/geocad/internal/dim"
)

func quad(a, b, c, d dim.Vector3, id int) poly3 {
	p, _ := newPoly3([]dim.Vector3{a, b, c, d}, id)
	return p
}

func tri(a, b, c dim.Vector3, id int) (poly3, bool) {
	return newPoly3([]dim.Vector3{a, b, c}, id)
}

// boxPolys builds an axis-aligned box with minimum corner at the origin,
// matching spec S2's placement convention (min corner, not centered).
func boxPolys(x, y, z float64, id int) []poly3 {
	v := [8]dim.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: x, Y: 0, Z: 0}, {X: x, Y: y, Z: 0}, {X: 0, Y: y, Z: 0},
		{X: 0, Y: 0, Z: z}, {X: x, Y: 0, Z: z}, {X: x, Y: y, Z: z}, {X: 0, Y: y, Z: z},
	}
	faces := [][4]int{
		{0, 3, 2, 1}, // bottom (-Z)
		{4, 5, 6, 7}, // top (+Z)
		{0, 1, 5, 4}, // -Y
		{1, 2, 6, 5}, // +X
		{2, 3, 7, 6}, // +Y
		{3, 0, 4, 7}, // -X
	}
	out := make([]poly3, 0, 6)
	for _, f := range faces {
		out = append(out, quad(v[f[0]], v[f[1]], v[f[2]], v[f[3]], id))
	}
	return out
}

// spherePolys builds a UV-sphere centered at the origin with `segments`
// longitude divisions and segments/2 latitude divisions (minimum 2).
func spherePolys(radius float64, segments, id int) []poly3 {
	lat := segments / 2
	if lat < 2 {
		lat = 2
	}
	lon := segments
	pt := func(i, j int) dim.Vector3 {
		theta := math.Pi * float64(i) / float64(lat)
		phi := 2 * math.Pi * float64(j) / float64(lon)
		return dim.Vector3{
			X: radius * math.Sin(theta) * math.Cos(phi),
			Y: radius * math.Sin(theta) * math.Sin(phi),
			Z: radius * math.Cos(theta),
		}
	}
	var out []poly3
	for i := 0; i < lat; i++ {
		for j := 0; j < lon; j++ {
			a := pt(i, j)
			b := pt(i+1, j)
			c := pt(i+1, (j+1)%lon)
			d := pt(i, (j+1)%lon)
			if i == 0 {
				if p, ok := tri(a, b, c, id); ok {
					out = append(out, p)
				}
			} else if i == lat-1 {
				if p, ok := tri(a, b, d, id); ok {
					out = append(out, p)
				}
			} else {
				out = append(out, quad(a, b, c, d, id))
			}
		}
	}
	return out
}

// cylinderPolys builds a (possibly frustum) cylinder/cone from z=0 to z=height.
func cylinderPolys(bottomR, topR, height float64, segments, id int) []poly3 {
	ring := func(r, z float64) []dim.Vector3 {
		pts := make([]dim.Vector3, segments)
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			pts[i] = dim.Vector3{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
		}
		return pts
	}
	bottom := ring(bottomR, 0)
	top := ring(topR, height)
	var out []poly3
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		// Side quad; degenerates gracefully to a triangle when a radius is 0
		// because newPoly3 rejects collinear/zero-area vertex sets, handled
		// by falling back to a triangle fan explicitly below.
		if bottomR <= 0 {
			if p, ok := tri(bottom[i], top[i], top[j], id); ok {
				out = append(out, p)
			}
			continue
		}
		if topR <= 0 {
			if p, ok := tri(bottom[i], bottom[j], top[i], id); ok {
				out = append(out, p)
			}
			continue
		}
		out = append(out, quad(bottom[i], top[i], top[j], bottom[j], id))
	}
	if bottomR > 0 {
		capBottom := make([]dim.Vector3, segments)
		for i := range bottom {
			capBottom[segments-1-i] = bottom[i]
		}
		if p, ok := newPoly3(capBottom, id); ok {
			out = append(out, p)
		}
	}
	if topR > 0 {
		if p, ok := newPoly3(append([]dim.Vector3{}, top...), id); ok {
			out = append(out, p)
		}
	}
	return out
}

// meshFromPolys builds a polygon soup directly from explicit vertex/face
// data, used both for imported meshes and for Materialized injections.
func meshFromPolys(vertices []dim.Vector3, faces [][3]int, id int) []poly3 {
	out := make([]poly3, 0, len(faces))
	for _, f := range faces {
		if p, ok := tri(vertices[f[0]], vertices[f[1]], vertices[f[2]], id); ok {
			out = append(out, p)
		}
	}
	return out
}
