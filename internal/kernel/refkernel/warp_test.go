package refkernel

import (
	"math"
	"testing"

	"github.com/dshills/geocad/internal/dim"
)

func TestWarpTranslatesEveryVertex(t *testing.T) {
	k := New()
	box := k.Box(2, 2, 2)
	warped := k.Warp(box, func(v dim.Vector3) dim.Vector3 {
		return v.Add(dim.Vector3{X: 10})
	})

	origBounds := box.Bounds()
	warpedBounds := warped.Bounds()
	if math.Abs(warpedBounds.Min.X-(origBounds.Min.X+10)) > 1e-9 {
		t.Fatalf("warped min X = %v, want %v", warpedBounds.Min.X, origBounds.Min.X+10)
	}
	if math.Abs(warpedBounds.Max.X-(origBounds.Max.X+10)) > 1e-9 {
		t.Fatalf("warped max X = %v, want %v", warpedBounds.Max.X, origBounds.Max.X+10)
	}
	if math.Abs(warpedBounds.Min.Y-origBounds.Min.Y) > 1e-9 || math.Abs(warpedBounds.Max.Y-origBounds.Max.Y) > 1e-9 {
		t.Fatalf("Y bounds should be unaffected by a pure X translation: got %+v", warpedBounds)
	}
}

func TestRefineSplitsLongEdges(t *testing.T) {
	k := New()
	box := k.Box(10, 10, 10)
	refined := k.Refine(box, 2)

	_, faces, _ := refined.Mesh()
	_, origFaces, _ := box.Mesh()
	if len(faces) <= len(origFaces) {
		t.Fatalf("expected refine to increase triangle count, got %d from %d", len(faces), len(origFaces))
	}

	verts, _, _ := refined.Mesh()
	for _, f := range faces {
		a, b, c := verts[f[0]], verts[f[1]], verts[f[2]]
		longest := math.Max(a.Sub(b).Len(), math.Max(b.Sub(c).Len(), c.Sub(a).Len()))
		if longest > 2+1e-6 {
			t.Fatalf("found a refined triangle edge of length %v, want <= 2", longest)
		}
	}
}

func TestRefineZeroMaxEdgeLengthIsNoop(t *testing.T) {
	k := New()
	box := k.Box(5, 5, 5)
	refined := k.Refine(box, 0)
	_, faces, _ := refined.Mesh()
	_, origFaces, _ := box.Mesh()
	if len(faces) != len(origFaces) {
		t.Fatalf("maxEdgeLength<=0 should be a no-op, got %d faces vs %d", len(faces), len(origFaces))
	}
}
