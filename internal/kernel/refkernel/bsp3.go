package refkernel

import (
	"math"

	"github.com/dshills/geocad/internal/dim"
)

// plane3 is an oriented plane in Hessian normal form: normal·p = w.
type plane3 struct {
	normal dim.Vector3
	w      float64
}

const planeEpsilon = 1e-7

func planeFromPoints(a, b, c dim.Vector3) (plane3, bool) {
	n := cross3(b.Sub(a), c.Sub(a))
	l := n.Len()
	if l < planeEpsilon {
		return plane3{}, false
	}
	n = n.Scale(1 / l)
	return plane3{normal: n, w: dot3(n, a)}, true
}

func cross3(a, b dim.Vector3) dim.Vector3 {
	return dim.Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func dot3(a, b dim.Vector3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (p plane3) flip() plane3 { return plane3{normal: p.normal.Scale(-1), w: -p.w} }

// poly3 is a planar polygon (triangle or coplanar fan) tagged with the
// original-ID of the leaf primitive it descends from (spec §4.4).
type poly3 struct {
	verts      []dim.Vector3
	plane      plane3
	originalID int
}

func newPoly3(verts []dim.Vector3, originalID int) (poly3, bool) {
	if len(verts) < 3 {
		return poly3{}, false
	}
	pl, ok := planeFromPoints(verts[0], verts[1], verts[2])
	if !ok {
		return poly3{}, false
	}
	return poly3{verts: verts, plane: pl, originalID: originalID}, true
}

func (p poly3) flip() poly3 {
	rev := make([]dim.Vector3, len(p.verts))
	for i, v := range p.verts {
		rev[len(p.verts)-1-i] = v
	}
	return poly3{verts: rev, plane: p.plane.flip(), originalID: p.originalID}
}

const (
	coplanar = 0
	front    = 1
	back     = 2
	spanning = 3
)

// splitPoly3 classifies and, if necessary, clips p against the splitting
// plane, appending results to the four output slices. This is the core
// step of the classic BSP-tree CSG algorithm (planar-polygon clipping;
// no third-party CSG library appeared in the retrieval pack to wire this
// against, so it is implemented directly against dim's vector types — see
// DESIGN.md's stdlib-justification entry for internal/kernel/refkernel).
func splitPoly3(plane plane3, p poly3, coplanarFront, coplanarBack, fronts, backs *[]poly3) {
	types := make([]int, len(p.verts))
	var polyType int
	for i, v := range p.verts {
		t := dot3(plane.normal, v) - plane.w
		ty := coplanar
		if t < -planeEpsilon {
			ty = back
		} else if t > planeEpsilon {
			ty = front
		}
		types[i] = ty
		polyType |= ty
	}
	switch polyType {
	case coplanar:
		if dot3(plane.normal, p.plane.normal) > 0 {
			*coplanarFront = append(*coplanarFront, p)
		} else {
			*coplanarBack = append(*coplanarBack, p)
		}
	case front:
		*fronts = append(*fronts, p)
	case back:
		*backs = append(*backs, p)
	case spanning:
		var f, b []dim.Vector3
		n := len(p.verts)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ti, tj := types[i], types[j]
			vi, vj := p.verts[i], p.verts[j]
			if ti != back {
				f = append(f, vi)
			}
			if ti != front {
				b = append(b, vi)
			}
			if (ti | tj) == spanning {
				denom := dot3(plane.normal, vj.Sub(vi))
				t := (plane.w - dot3(plane.normal, vi)) / denom
				v := lerp3(vi, vj, t)
				f = append(f, v)
				b = append(b, v)
			}
		}
		if fp, ok := newPoly3(f, p.originalID); ok {
			*fronts = append(*fronts, fp)
		}
		if bp, ok := newPoly3(b, p.originalID); ok {
			*backs = append(*backs, bp)
		}
	}
}

func lerp3(a, b dim.Vector3, t float64) dim.Vector3 {
	return dim.Vector3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// bspNode is one node of a BSP tree built from a polygon soup.
type bspNode struct {
	plane    *plane3
	front    *bspNode
	back     *bspNode
	polygons []poly3
}

func buildBSP(polys []poly3) *bspNode {
	if len(polys) == 0 {
		return nil
	}
	n := &bspNode{}
	n.build(polys)
	return n
}

func (n *bspNode) build(polys []poly3) {
	if len(polys) == 0 {
		return
	}
	if n.plane == nil {
		p := polys[0].plane
		n.plane = &p
	}
	var coF, coB, fr, bk []poly3
	for _, p := range polys {
		splitPoly3(*n.plane, p, &coF, &coB, &fr, &bk)
	}
	n.polygons = append(n.polygons, coF...)
	n.polygons = append(n.polygons, coB...)
	if len(fr) > 0 {
		if n.front == nil {
			n.front = &bspNode{}
		}
		n.front.build(fr)
	}
	if len(bk) > 0 {
		if n.back == nil {
			n.back = &bspNode{}
		}
		n.back.build(bk)
	}
}

func (n *bspNode) invert() {
	if n == nil {
		return
	}
	for i := range n.polygons {
		n.polygons[i] = n.polygons[i].flip()
	}
	if n.plane != nil {
		fl := n.plane.flip()
		n.plane = &fl
	}
	n.front.invert()
	n.back.invert()
	n.front, n.back = n.back, n.front
}

func (n *bspNode) clipPolygons(polys []poly3) []poly3 {
	if n == nil || n.plane == nil {
		return append([]poly3{}, polys...)
	}
	var fr, bk []poly3
	for _, p := range polys {
		var coF, coB []poly3
		splitPoly3(*n.plane, p, &coF, &coB, &fr, &bk)
		fr = append(fr, coF...)
		bk = append(bk, coB...)
	}
	if n.front != nil {
		fr = n.front.clipPolygons(fr)
	}
	if n.back != nil {
		bk = n.back.clipPolygons(bk)
	} else {
		bk = nil
	}
	return append(fr, bk...)
}

func (n *bspNode) clipTo(other *bspNode) {
	if n == nil {
		return
	}
	n.polygons = other.clipPolygons(n.polygons)
	n.front.clipTo(other)
	n.back.clipTo(other)
}

func (n *bspNode) allPolygons() []poly3 {
	if n == nil {
		return nil
	}
	out := append([]poly3{}, n.polygons...)
	out = append(out, n.front.allPolygons()...)
	out = append(out, n.back.allPolygons()...)
	return out
}

func cloneBSP(n *bspNode) *bspNode {
	if n == nil {
		return nil
	}
	c := &bspNode{polygons: append([]poly3{}, n.polygons...)}
	if n.plane != nil {
		p := *n.plane
		c.plane = &p
	}
	c.front = cloneBSP(n.front)
	c.back = cloneBSP(n.back)
	return c
}

// union3 computes the CSG union of two polygon soups via the classic
// "clip each against the other, invert, clip again" BSP recipe.
func union3(a, b []poly3) []poly3 {
	na, nb := buildBSP(a), buildBSP(b)
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	return na.allPolygons()
}

func subtract3(a, b []poly3) []poly3 {
	na, nb := buildBSP(a), buildBSP(b)
	na.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	na.invert()
	return na.allPolygons()
}

func intersect3(a, b []poly3) []poly3 {
	na, nb := buildBSP(a), buildBSP(b)
	na.invert()
	nb.clipTo(na)
	nb.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	na.build(nb.allPolygons())
	na.invert()
	return na.allPolygons()
}

// triangulate fans out a convex/planar polygon into triangles (used after
// clipping, since splits can yield polygons with more than 3 vertices).
func triangulatePoly3(p poly3) [][3]int {
	n := len(p.verts)
	tris := make([][3]int, 0, n-2)
	for i := 1; i < n-1; i++ {
		tris = append(tris, [3]int{0, i, i + 1})
	}
	return tris
}

func abs(x float64) float64 { return math.Abs(x) }
