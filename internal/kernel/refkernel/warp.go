package refkernel

import "github.com/dshills/geocad/internal/dim"

func warpPolys(polys []poly3, fn func(dim.Vector3) dim.Vector3) []poly3 {
	out := make([]poly3, 0, len(polys))
	for _, p := range polys {
		verts := make([]dim.Vector3, len(p.verts))
		for i, v := range p.verts {
			verts[i] = fn(v)
		}
		if np, ok := newPoly3(verts, p.originalID); ok {
			out = append(out, np)
		}
	}
	return out
}

// refinePolys triangulates every poly and recursively splits any triangle
// whose longest edge exceeds maxEdgeLength via its edge midpoints, to a
// bounded depth so a degenerate maxEdgeLength can't loop forever.
func refinePolys(polys []poly3, maxEdgeLength float64) []poly3 {
	if maxEdgeLength <= 0 {
		return polys
	}
	const maxDepth = 6
	out := make([]poly3, 0, len(polys))
	for _, p := range polys {
		for _, tri := range triangulatePoly3(p) {
			a, b, c := p.verts[tri[0]], p.verts[tri[1]], p.verts[tri[2]]
			out = append(out, subdivideTriangle(a, b, c, p.originalID, maxEdgeLength, maxDepth)...)
		}
	}
	return out
}

func subdivideTriangle(a, b, c dim.Vector3, id int, maxEdgeLength float64, depth int) []poly3 {
	longest := maxFloat3(a.Sub(b).Len(), b.Sub(c).Len(), c.Sub(a).Len())
	if depth <= 0 || longest <= maxEdgeLength {
		if np, ok := newPoly3([]dim.Vector3{a, b, c}, id); ok {
			return []poly3{np}
		}
		return nil
	}
	ab := a.Add(b).Scale(0.5)
	bc := b.Add(c).Scale(0.5)
	ca := c.Add(a).Scale(0.5)
	var out []poly3
	out = append(out, subdivideTriangle(a, ab, ca, id, maxEdgeLength, depth-1)...)
	out = append(out, subdivideTriangle(ab, b, bc, id, maxEdgeLength, depth-1)...)
	out = append(out, subdivideTriangle(ca, bc, c, id, maxEdgeLength, depth-1)...)
	out = append(out, subdivideTriangle(ab, bc, ca, id, maxEdgeLength, depth-1)...)
	return out
}

func maxFloat3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
