// Package svgexport renders a 2D cross-section (spec §6.3 SVG export) to
// SVG using github.com/ajstarks/svgo, the same library and Start/Polygon
// drawing idiom the teacher's pkg/export/svg.go uses for its dungeon-graph
// visualization — only the thing being drawn changes, from rooms/edges to
// polygon rings.
package svgexport

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/kernel"
)

// Options configures SVG rendering. Width/Height are in pixels; the
// cross-section's own bounding box is fit into that canvas with Margin
// pixels of padding, matching the teacher's margin-then-scale layout
// approach in calculateLayout.
type Options struct {
	Width, Height int
	Margin        int
	FillColor     string
	StrokeColor   string
	StrokeWidth   int
}

// DefaultOptions mirrors the teacher's DefaultSVGOptions sizing choices.
func DefaultOptions() Options {
	return Options{
		Width: 1200, Height: 900, Margin: 60,
		FillColor: "#4a5568", StrokeColor: "#1a1a2e", StrokeWidth: 2,
	}
}

// Write renders c to SVG and returns the document bytes.
func Write(c kernel.CrossSection2D, opts Options) ([]byte, error) {
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 2
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#ffffff")

	bounds := c.Bounds()
	project := fitTransform(bounds, opts)

	style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d;fill-rule:evenodd",
		opts.FillColor, opts.StrokeColor, opts.StrokeWidth)

	for _, ring := range c.Polygons() {
		xs := make([]int, len(ring))
		ys := make([]int, len(ring))
		for i, p := range ring {
			px, py := project(p)
			xs[i], ys[i] = px, py
		}
		canvas.Polygon(xs, ys, style)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// fitTransform returns a function mapping model-space points into
// opts.Margin-padded canvas pixels, preserving aspect ratio and flipping Y
// (SVG's origin is top-left; model space is conventionally Y-up).
func fitTransform(bounds dim.Box2, opts Options) func(dim.Vector2) (int, int) {
	if bounds.IsEmpty() {
		return func(dim.Vector2) (int, int) { return opts.Width / 2, opts.Height / 2 }
	}
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	drawW := float64(opts.Width - 2*opts.Margin)
	drawH := float64(opts.Height - 2*opts.Margin)
	scale := 1.0
	if w > 0 && h > 0 {
		scale = minFloat(drawW/w, drawH/h)
	}
	return func(p dim.Vector2) (int, int) {
		x := float64(opts.Margin) + (p.X-bounds.Min.X)*scale
		y := float64(opts.Height-opts.Margin) - (p.Y-bounds.Min.Y)*scale
		return int(x), int(y)
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
