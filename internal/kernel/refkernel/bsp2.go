package refkernel

import "github.com/dshills/geocad/internal/dim"

// line2 is an oriented line in Hessian normal form: normal·p = w. The 2D
// analogue of plane3, used to build a 2D BSP over polygon edges — the same
// "clip against the other, invert, clip again" CSG recipe as bsp3.go, one
// dimension down.
type line2 struct {
	normal dim.Vector2
	w      float64
}

func lineFromPoints2(a, b dim.Vector2) (line2, bool) {
	d := b.Sub(a)
	l := d.Len()
	if l < planeEpsilon {
		return line2{}, false
	}
	n := dim.Vector2{X: -d.Y / l, Y: d.X / l}
	return line2{normal: n, w: dot2(n, a)}, true
}

func dot2(a, b dim.Vector2) float64 { return a.X*b.X + a.Y*b.Y }

func (l line2) flip() line2 { return line2{normal: l.normal.Scale(-1), w: -l.w} }

// poly2 is a simple (non-self-intersecting) 2D polygon ring.
type poly2 struct {
	verts []dim.Vector2
	line  line2
}

func newPoly2(verts []dim.Vector2) (poly2, bool) {
	if len(verts) < 3 {
		return poly2{}, false
	}
	l, ok := lineFromPoints2(verts[0], verts[1])
	if !ok {
		return poly2{}, false
	}
	return poly2{verts: verts, line: l}, true
}

func (p poly2) flip() poly2 {
	rev := make([]dim.Vector2, len(p.verts))
	for i, v := range p.verts {
		rev[len(p.verts)-1-i] = v
	}
	return poly2{verts: rev, line: p.line.flip()}
}

func splitPoly2(splitLine line2, p poly2, coplanarFront, coplanarBack, fronts, backs *[]poly2) {
	types := make([]int, len(p.verts))
	var polyType int
	for i, v := range p.verts {
		t := dot2(splitLine.normal, v) - splitLine.w
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
		if dot2(splitLine.normal, p.line.normal) > 0 {
			*coplanarFront = append(*coplanarFront, p)
		} else {
			*coplanarBack = append(*coplanarBack, p)
		}
	case front:
		*fronts = append(*fronts, p)
	case back:
		*backs = append(*backs, p)
	case spanning:
		var f, b []dim.Vector2
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
				denom := dot2(splitLine.normal, vj.Sub(vi))
				t := (splitLine.w - dot2(splitLine.normal, vi)) / denom
				v := lerp2(vi, vj, t)
				f = append(f, v)
				b = append(b, v)
			}
		}
		if fp, ok := newPoly2(f); ok {
			*fronts = append(*fronts, fp)
		}
		if bp, ok := newPoly2(b); ok {
			*backs = append(*backs, bp)
		}
	}
}

func lerp2(a, b dim.Vector2, t float64) dim.Vector2 {
	return dim.Vector2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

type bspNode2 struct {
	line     *line2
	front    *bspNode2
	back     *bspNode2
	polygons []poly2
}

func buildBSP2(polys []poly2) *bspNode2 {
	if len(polys) == 0 {
		return nil
	}
	n := &bspNode2{}
	n.build(polys)
	return n
}

func (n *bspNode2) build(polys []poly2) {
	if len(polys) == 0 {
		return
	}
	if n.line == nil {
		l := polys[0].line
		n.line = &l
	}
	var coF, coB, fr, bk []poly2
	for _, p := range polys {
		splitPoly2(*n.line, p, &coF, &coB, &fr, &bk)
	}
	n.polygons = append(n.polygons, coF...)
	n.polygons = append(n.polygons, coB...)
	if len(fr) > 0 {
		if n.front == nil {
			n.front = &bspNode2{}
		}
		n.front.build(fr)
	}
	if len(bk) > 0 {
		if n.back == nil {
			n.back = &bspNode2{}
		}
		n.back.build(bk)
	}
}

func (n *bspNode2) invert() {
	if n == nil {
		return
	}
	for i := range n.polygons {
		n.polygons[i] = n.polygons[i].flip()
	}
	if n.line != nil {
		fl := n.line.flip()
		n.line = &fl
	}
	n.front.invert()
	n.back.invert()
	n.front, n.back = n.back, n.front
}

func (n *bspNode2) clipPolygons(polys []poly2) []poly2 {
	if n == nil || n.line == nil {
		return append([]poly2{}, polys...)
	}
	var fr, bk []poly2
	for _, p := range polys {
		var coF, coB []poly2
		splitPoly2(*n.line, p, &coF, &coB, &fr, &bk)
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

func (n *bspNode2) clipTo(other *bspNode2) {
	if n == nil {
		return
	}
	n.polygons = other.clipPolygons(n.polygons)
	n.front.clipTo(other)
	n.back.clipTo(other)
}

func (n *bspNode2) allPolygons() []poly2 {
	if n == nil {
		return nil
	}
	out := append([]poly2{}, n.polygons...)
	out = append(out, n.front.allPolygons()...)
	out = append(out, n.back.allPolygons()...)
	return out
}

func union2(a, b []poly2) []poly2 {
	na, nb := buildBSP2(a), buildBSP2(b)
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	return na.allPolygons()
}

func subtract2(a, b []poly2) []poly2 {
	na, nb := buildBSP2(a), buildBSP2(b)
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

func intersect2(a, b []poly2) []poly2 {
	na, nb := buildBSP2(a), buildBSP2(b)
	na.invert()
	nb.clipTo(na)
	nb.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	na.build(nb.allPolygons())
	na.invert()
	return na.allPolygons()
}

func triangulatePoly2Area(p poly2) float64 {
	var area float64
	n := len(p.verts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.verts[i].X*p.verts[j].Y - p.verts[j].X*p.verts[i].Y
	}
	return area / 2
}
