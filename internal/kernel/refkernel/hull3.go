package refkernel

import "github.com/dshills/geocad/internal/dim"

// hullFace is one triangular face of an incremental 3D convex hull.
type hullFace struct {
	a, b, c int
	normal  dim.Vector3
}

// convexHull3 computes the 3D convex hull of pts via the classic
// incremental algorithm: start from a non-degenerate tetrahedron, then for
// each remaining point remove every face it sees ("visible" faces) and
// re-triangulate the resulting hole from the horizon edges. This is the
// standard introductory incremental hull construction; no third-party
// computational-geometry library appeared in the retrieval pack to wire
// against (see DESIGN.md).
func convexHull3(pts []dim.Vector3, id int) []poly3 {
	if len(pts) < 4 {
		return nil
	}
	faces, ok := seedTetrahedron(pts)
	if !ok {
		return nil
	}
	used := map[int]bool{faces[0].a: true, faces[0].b: true, faces[0].c: true, faces[1].c: true}
	for i, p := range pts {
		if used[i] {
			continue
		}
		faces = addPointToHull(faces, pts, p, i)
	}
	out := make([]poly3, 0, len(faces))
	for _, f := range faces {
		if pp, ok := tri(pts[f.a], pts[f.b], pts[f.c], id); ok {
			out = append(out, pp)
		}
	}
	return out
}

func seedTetrahedron(pts []dim.Vector3) ([]hullFace, bool) {
	n := len(pts)
	// Find 4 points that are not all coplanar.
	a, b := 0, 1
	c := -1
	for i := 2; i < n; i++ {
		if cross3(pts[b].Sub(pts[a]), pts[i].Sub(pts[a])).Len() > planeEpsilon {
			c = i
			break
		}
	}
	if c < 0 {
		return nil, false
	}
	d := -1
	base, _ := planeFromPoints(pts[a], pts[b], pts[c])
	for i := 0; i < n; i++ {
		if i == a || i == b || i == c {
			continue
		}
		if abs(dot3(base.normal, pts[i])-base.w) > planeEpsilon {
			d = i
			break
		}
	}
	if d < 0 {
		return nil, false
	}
	faces := []hullFace{
		mkFace(pts, a, b, c, pts[d]),
		mkFace(pts, a, c, d, pts[b]),
		mkFace(pts, a, d, b, pts[c]),
		mkFace(pts, b, d, c, pts[a]),
	}
	return faces, true
}

// mkFace builds a face oriented so that `away` (a point known to be on the
// tetrahedron's interior side) is behind it.
func mkFace(pts []dim.Vector3, a, b, c int, away dim.Vector3) hullFace {
	pl, _ := planeFromPoints(pts[a], pts[b], pts[c])
	if dot3(pl.normal, away)-pl.w > 0 {
		a, b = b, a
		pl, _ = planeFromPoints(pts[a], pts[b], pts[c])
	}
	return hullFace{a: a, b: b, c: c, normal: pl.normal}
}

func addPointToHull(faces []hullFace, pts []dim.Vector3, p dim.Vector3, pi int) []hullFace {
	type edge struct{ u, v int }
	visible := make([]bool, len(faces))
	anyVisible := false
	for i, f := range faces {
		w := dot3(f.normal, pts[f.a])
		if dot3(f.normal, p) > w+planeEpsilon {
			visible[i] = true
			anyVisible = true
		}
	}
	if !anyVisible {
		return faces
	}
	edgeCount := map[edge]int{}
	addEdge := func(u, v int) { edgeCount[edge{u, v}]++ }
	kept := make([]hullFace, 0, len(faces))
	for i, f := range faces {
		if !visible[i] {
			kept = append(kept, f)
			continue
		}
		addEdge(f.a, f.b)
		addEdge(f.b, f.c)
		addEdge(f.c, f.a)
	}
	// Horizon edges are those belonging to exactly one visible face whose
	// reverse does not belong to another visible face's boundary.
	for e := range edgeCount {
		rev := edge{e.v, e.u}
		if _, has := edgeCount[rev]; has {
			continue // interior edge shared by two visible faces
		}
		kept = append(kept, mkFace(pts, e.u, e.v, pi, pts[e.u]))
	}
	return kept
}
