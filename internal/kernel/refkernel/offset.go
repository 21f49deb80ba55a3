package refkernel

import (
	"math"

	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/kernel"
)

// offsetPolygon grows (amount > 0) or shrinks (amount < 0) a polygon ring
// by amount along each edge's outward normal, joining consecutive offset
// edges according to join. This is a direct per-edge offset (not a general
// Minkowski-sum offsetter); round joins insert an arc of `segments` points,
// miter joins extend to the line intersection (capped at miterLimit *
// amount), bevel/square both fall back to a straight connecting segment —
// bevel at the offset corner, square extended one half-edge-width further
// out, matching the visual difference OpenSCAD-style offset() callers
// expect between the two.
func offsetPolygon(ring []dim.Vector2, amount float64, join kernel.JoinType, miterLimit float64, segments int) []dim.Vector2 {
	n := len(ring)
	if n < 3 {
		return nil
	}
	edgeNormals := make([]dim.Vector2, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		d := ring[j].Sub(ring[i])
		l := d.Len()
		if l == 0 {
			continue
		}
		edgeNormals[i] = dim.Vector2{X: d.Y / l, Y: -d.X / l}
	}

	var out []dim.Vector2
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		n0, n1 := edgeNormals[prev], edgeNormals[i]
		p0 := ring[i].Add(n0.Scale(amount))
		p1 := ring[i].Add(n1.Scale(amount))

		switch join {
		case kernel.JoinRound:
			out = append(out, arcBetween(ring[i], p0, p1, amount, segments)...)
		case kernel.JoinMiter:
			mid := miterPoint(ring[i], n0, n1, amount, miterLimit)
			out = append(out, mid)
		case kernel.JoinBevel:
			out = append(out, p0, p1)
		case kernel.JoinSquare:
			out = append(out, squareJoin(ring[i], n0, n1, amount)...)
		default:
			out = append(out, p0, p1)
		}
	}
	return out
}

func miterPoint(corner dim.Vector2, n0, n1 dim.Vector2, amount, miterLimit float64) dim.Vector2 {
	bis := n0.Add(n1)
	l := bis.Len()
	if l < 1e-9 {
		return corner.Add(n0.Scale(amount))
	}
	bis = bis.Scale(1 / l)
	cosHalf := dot2(n0, bis)
	if cosHalf < 1e-6 {
		return corner.Add(n0.Scale(amount))
	}
	dist := amount / cosHalf
	maxDist := amount * miterLimit
	if (dist > 0 && dist > maxDist) || (dist < 0 && dist < maxDist) {
		dist = maxDist
	}
	return corner.Add(bis.Scale(dist))
}

func squareJoin(corner dim.Vector2, n0, n1 dim.Vector2, amount float64) []dim.Vector2 {
	bis := n0.Add(n1)
	l := bis.Len()
	if l < 1e-9 {
		return []dim.Vector2{corner.Add(n0.Scale(amount))}
	}
	p0 := corner.Add(n0.Scale(amount))
	p1 := corner.Add(n1.Scale(amount))
	ext := bis.Scale(amount / l)
	return []dim.Vector2{p0.Add(ext), p1.Add(ext)}
}

func arcBetween(center, from, to dim.Vector2, radius float64, segments int) []dim.Vector2 {
	if segments < 2 {
		segments = 2
	}
	a0 := math.Atan2(from.Y-center.Y, from.X-center.X)
	a1 := math.Atan2(to.Y-center.Y, to.X-center.X)
	if radius < 0 {
		a0, a1 = a1, a0
	}
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	out := make([]dim.Vector2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := a0 + (a1-a0)*float64(i)/float64(segments)
		out = append(out, dim.Vector2{X: center.X + radius*math.Cos(t), Y: center.Y + radius*math.Sin(t)})
	}
	if radius < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
