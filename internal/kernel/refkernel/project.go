package refkernel

import "github.com/dshills/geocad/internal/dim"

// projectFull flattens every face onto the XY plane and unions the
// results, giving the solid's silhouette.
func projectFull(polys []poly3) []poly2 {
	var acc []poly2
	for _, p := range polys {
		ring := make([]dim.Vector2, len(p.verts))
		for i, v := range p.verts {
			ring[i] = dim.Vector2{X: v.X, Y: v.Y}
		}
		if poly, ok := newPoly2(ring); ok {
			if len(acc) == 0 {
				acc = []poly2{poly}
			} else {
				acc = union2(acc, []poly2{poly})
			}
		}
	}
	return acc
}

// projectSlice intersects every face with the plane z=Z, collecting the
// resulting segments and chaining them into closed rings by matching
// shared endpoints. Faces lying exactly in the slice plane contribute
// their own outline directly.
func projectSlice(polys []poly3, z float64) []poly2 {
	type segment struct{ a, b dim.Vector2 }
	var segments []struct{ a, b dim.Vector2 }
	for _, p := range polys {
		n := len(p.verts)
		var pts []dim.Vector2
		coplanarCount := 0
		for _, v := range p.verts {
			if abs(v.Z-z) < planeEpsilon {
				coplanarCount++
			}
		}
		if coplanarCount == n {
			ring := make([]dim.Vector2, n)
			for i, v := range p.verts {
				ring[i] = dim.Vector2{X: v.X, Y: v.Y}
			}
			if poly, ok := newPoly2(ring); ok {
				segs := ringToSegments(poly)
				segments = append(segments, segs...)
			}
			continue
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			a, b := p.verts[i], p.verts[j]
			if (a.Z-z)*(b.Z-z) > 0 {
				continue
			}
			if a.Z == b.Z {
				continue
			}
			t := (z - a.Z) / (b.Z - a.Z)
			pt := dim.Vector2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			pts = append(pts, pt)
		}
		if len(pts) >= 2 {
			segments = append(segments, segment{pts[0], pts[1]})
		}
	}
	return chainSegmentsToRings(segments)
}

func ringToSegments(p poly2) []struct{ a, b dim.Vector2 } {
	type segment struct{ a, b dim.Vector2 }
	n := len(p.verts)
	out := make([]struct{ a, b dim.Vector2 }, n)
	for i := 0; i < n; i++ {
		out[i] = struct{ a, b dim.Vector2 }{p.verts[i], p.verts[(i+1)%n]}
	}
	return out
}

func chainSegmentsToRings(segments []struct{ a, b dim.Vector2 }) []poly2 {
	const eps = 1e-6
	used := make([]bool, len(segments))
	var rings []poly2
	eq := func(a, b dim.Vector2) bool { return abs(a.X-b.X) < eps && abs(a.Y-b.Y) < eps }
	for i := range segments {
		if used[i] {
			continue
		}
		used[i] = true
		ring := []dim.Vector2{segments[i].a, segments[i].b}
		extended := true
		for extended {
			extended = false
			tail := ring[len(ring)-1]
			for j := range segments {
				if used[j] {
					continue
				}
				if eq(segments[j].a, tail) {
					ring = append(ring, segments[j].b)
					used[j] = true
					extended = true
					break
				}
				if eq(segments[j].b, tail) {
					ring = append(ring, segments[j].a)
					used[j] = true
					extended = true
					break
				}
			}
		}
		if len(ring) >= 3 {
			if p, ok := newPoly2(ring); ok {
				rings = append(rings, p)
			}
		}
	}
	return rings
}
