package refkernel

import (
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/kernel"
)

// mesh3 is refkernel's concrete Manifold3D: a polygon soup (post-CSG
// polygons may have more than 3 vertices; Mesh() triangulates on export).
type mesh3 struct {
	polys []poly3
}

var _ kernel.Manifold3D = mesh3{}

func (m mesh3) Bounds() dim.Box3 {
	var pts []dim.Vector3
	for _, p := range m.polys {
		pts = append(pts, p.verts...)
	}
	return dim.BoxFromPoints3(pts)
}

func (m mesh3) Volume() float64 {
	// Divergence-theorem volume: sum of signed tetrahedra from the origin
	// to each triangle, which is exact regardless of mesh convexity.
	var vol float64
	for _, p := range m.polys {
		for _, tri := range triangulatePoly3(p) {
			a, b, c := p.verts[tri[0]], p.verts[tri[1]], p.verts[tri[2]]
			vol += dot3(a, cross3(b, c)) / 6
		}
	}
	return abs(vol)
}

func (m mesh3) Mesh() (vertices []dim.Vector3, faces [][3]int, faceOriginalIDs []int) {
	idx := make(map[dim.Vector3]int)
	get := func(v dim.Vector3) int {
		if i, ok := idx[v]; ok {
			return i
		}
		i := len(vertices)
		idx[v] = i
		vertices = append(vertices, v)
		return i
	}
	for _, p := range m.polys {
		ids := make([]int, len(p.verts))
		for i, v := range p.verts {
			ids[i] = get(v)
		}
		for _, tri := range triangulatePoly3(p) {
			faces = append(faces, [3]int{ids[tri[0]], ids[tri[1]], ids[tri[2]]})
			faceOriginalIDs = append(faceOriginalIDs, p.originalID)
		}
	}
	return vertices, faces, faceOriginalIDs
}
