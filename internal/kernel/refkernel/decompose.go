package refkernel

// decompose3 splits a polygon soup into connected components using
// union-find over shared vertex positions: two faces are connected if they
// share a vertex (spec §4.5).
func decompose3(polys []poly3) [][]poly3 {
	n := len(polys)
	if n == 0 {
		return nil
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	vertOwner := make(map[[3]int64]int)
	key := func(v [3]float64) [3]int64 {
		return [3]int64{int64(v[0] * 1e6), int64(v[1] * 1e6), int64(v[2] * 1e6)}
	}
	for i, p := range polys {
		for _, v := range p.verts {
			k := key([3]float64{v.X, v.Y, v.Z})
			if owner, ok := vertOwner[k]; ok {
				union(owner, i)
			} else {
				vertOwner[k] = i
			}
		}
	}

	groups := make(map[int][]poly3)
	for i, p := range polys {
		r := find(i)
		groups[r] = append(groups[r], p)
	}
	out := make([][]poly3, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	return out
}
