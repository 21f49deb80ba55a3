package refkernel

import "github.com/dshills/geocad/internal/dim"

func transformPolys3(polys []poly3, t dim.Affine3) []poly3 {
	out := make([]poly3, 0, len(polys))
	for _, p := range polys {
		verts := make([]dim.Vector3, len(p.verts))
		for i, v := range p.verts {
			verts[i] = t.Apply(v)
		}
		if np, ok := newPoly3(verts, p.originalID); ok {
			out = append(out, np)
		}
	}
	return out
}

func transformPolys2(polys []poly2, t dim.Affine2) []poly2 {
	out := make([]poly2, 0, len(polys))
	for _, p := range polys {
		verts := make([]dim.Vector2, len(p.verts))
		for i, v := range p.verts {
			verts[i] = t.Apply(v)
		}
		if np, ok := newPoly2(verts); ok {
			out = append(out, np)
		}
	}
	return out
}

func withOriginalID(polys []poly3, id int) []poly3 {
	out := make([]poly3, len(polys))
	for i, p := range polys {
		p.originalID = id
		out[i] = p
	}
	return out
}
