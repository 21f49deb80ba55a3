package refkernel

import (
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/kernel"
)

// section2 is refkernel's concrete CrossSection2D: a soup of simple
// polygon rings (outer contours wind one way, holes the other, matching
// the convention newPoly2/flip already establish via signed area).
type section2 struct {
	polys []poly2
}

var _ kernel.CrossSection2D = section2{}

func (s section2) Bounds() dim.Box2 {
	var pts []dim.Vector2
	for _, p := range s.polys {
		pts = append(pts, p.verts...)
	}
	return dim.BoxFromPoints2(pts)
}

func (s section2) Polygons() [][]dim.Vector2 {
	out := make([][]dim.Vector2, len(s.polys))
	for i, p := range s.polys {
		out[i] = append([]dim.Vector2{}, p.verts...)
	}
	return out
}

func (s section2) Area() float64 {
	var total float64
	for _, p := range s.polys {
		a := triangulatePoly2Area(p)
		if a < 0 {
			a = -a
			// Outer contours wind positive by convention; a ring that
			// winds the opposite way from its neighbors is a hole and
			// subtracts from the total.
			if isHoleOf(p, s.polys) {
				total -= a
				continue
			}
		}
		total += a
	}
	return total
}

// isHoleOf is a coarse "this ring's signed area is negative relative to
// the rest of the soup" check used only by Area(); it treats the first
// polygon in the soup as the reference winding and anything with opposite
// winding as a hole. Good enough for the rectangle/circle/boolean-result
// shapes this kernel produces; a general nested-polygon classifier is out
// of scope for the reference kernel.
func isHoleOf(p poly2, all []poly2) bool {
	if len(all) == 0 {
		return false
	}
	ref := triangulatePoly2Area(all[0])
	cur := triangulatePoly2Area(p)
	return (ref > 0) != (cur > 0)
}
