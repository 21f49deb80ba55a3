package refkernel

import (
	"math"

	"github.com/dshills/geocad/internal/dim"
)

func rectanglePolys(width, height float64) []poly2 {
	p, _ := newPoly2([]dim.Vector2{
		{X: 0, Y: 0}, {X: width, Y: 0}, {X: width, Y: height}, {X: 0, Y: height},
	})
	return []poly2{p}
}

func circlePolys(radius float64, segments int) []poly2 {
	pts := make([]dim.Vector2, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = dim.Vector2{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	p, ok := newPoly2(pts)
	if !ok {
		return nil
	}
	return []poly2{p}
}

func polygonPolys(points []dim.Vector2) []poly2 {
	p, ok := newPoly2(points)
	if !ok {
		return nil
	}
	return []poly2{p}
}

func convexHull2Polys(points []dim.Vector2) []poly2 {
	hull := grahamScan(points)
	if len(hull) < 3 {
		return nil
	}
	p, ok := newPoly2(hull)
	if !ok {
		return nil
	}
	return []poly2{p}
}

// grahamScan computes the 2D convex hull via the standard Graham scan:
// sort by angle around the lowest point, then maintain a stack dropping
// any point that would make a clockwise (non-left) turn.
func grahamScan(points []dim.Vector2) []dim.Vector2 {
	pts := append([]dim.Vector2{}, points...)
	if len(pts) < 3 {
		return pts
	}
	// Lowest (then leftmost) point as pivot.
	pivot := 0
	for i, p := range pts {
		if p.Y < pts[pivot].Y || (p.Y == pts[pivot].Y && p.X < pts[pivot].X) {
			pivot = i
		}
	}
	pts[0], pts[pivot] = pts[pivot], pts[0]
	origin := pts[0]
	rest := pts[1:]
	sortByPolarAngle(rest, origin)

	stack := []dim.Vector2{pts[0], rest[0]}
	for i := 1; i < len(rest); i++ {
		p := rest[i]
		for len(stack) > 1 && cross2(stack[len(stack)-1].Sub(stack[len(stack)-2]), p.Sub(stack[len(stack)-1])) <= 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}
	return stack
}

func cross2(a, b dim.Vector2) float64 { return a.X*b.Y - a.Y*b.X }

func sortByPolarAngle(pts []dim.Vector2, origin dim.Vector2) {
	less := func(i, j int) bool {
		ai := math.Atan2(pts[i].Y-origin.Y, pts[i].X-origin.X)
		aj := math.Atan2(pts[j].Y-origin.Y, pts[j].X-origin.X)
		if ai != aj {
			return ai < aj
		}
		return pts[i].Sub(origin).Len() < pts[j].Sub(origin).Len()
	}
	insertionSort(pts, less)
}

func insertionSort(pts []dim.Vector2, less func(i, j int) bool) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}
