package geom

import (
	"context"
	"io"

	"github.com/dshills/geocad/internal/env"
	"github.com/dshills/geocad/internal/evalctx"
	"github.com/dshills/geocad/internal/export/shared"
	"github.com/dshills/geocad/internal/export/stl"
	"github.com/dshills/geocad/internal/export/svgexport"
	"github.com/dshills/geocad/internal/export/threemf"
	"github.com/dshills/geocad/internal/kernel"
	"github.com/dshills/geocad/internal/kernel/refkernel"
	"github.com/dshills/geocad/internal/result"
)

// Model bundles a root Solid with the Environment it builds under and the
// EvaluationContext (kernel + per-dimensionality caches) it evaluates
// through — the unit internal/project's directory walker and cmd/geocad's
// CLI both construct one of per model file.
type Model struct {
	Root Solid
	Env  env.Environment
	Ctx  *evalctx.Context
}

// NewModel returns a Model with the default Environment and a fresh
// reference kernel + EvaluationContext.
func NewModel(root Solid) *Model {
	k := refkernel.New()
	return &Model{Root: root, Env: env.Default(), Ctx: evalctx.New(k, k)}
}

func (m *Model) resolve(ctx context.Context) (shared.ResolvedModel3D, error) {
	n, elems := m.Root.Build(m.Env)
	return shared.Resolve3D(ctx, m.Ctx, n, elems)
}

// WriteSTL unions every Part's mesh into one and writes it as binary STL
// (spec §6.4: STL carries no part/material information).
func (m *Model) WriteSTL(ctx context.Context, w io.Writer) error {
	resolved, err := m.resolve(ctx)
	if err != nil {
		return err
	}
	whole := unionManifolds(m.Ctx.Kernel3D(), resolved.Parts)
	return stl.Write(w, whole)
}

// WriteThreeMF writes every Part as its own 3MF object, with per-triangle
// material references where a Tagged leaf's original-ID was recorded.
func (m *Model) WriteThreeMF(ctx context.Context, w io.Writer) error {
	resolved, err := m.resolve(ctx)
	if err != nil {
		return err
	}
	return threemf.Write(w, resolved)
}

func unionManifolds(k kernel.Kernel3D, parts map[result.Part]kernel.Manifold3D) kernel.Manifold3D {
	manifolds := make([]kernel.Manifold3D, 0, len(parts))
	for _, mv := range parts {
		manifolds = append(manifolds, mv)
	}
	switch len(manifolds) {
	case 0:
		return k.Box(0, 0, 0)
	case 1:
		return manifolds[0]
	default:
		return k.Union3D(manifolds)
	}
}

// Sheet is Model's 2D counterpart, used for SVG export of a single
// cross-section (spec §6.4: "SVG (single path)" — parts are unioned the
// same way STL unions every Part into one mesh).
type Sheet struct {
	Root Plane
	Env  env.Environment
	Ctx  *evalctx.Context
}

// NewSheet returns a Sheet with the default Environment and a fresh
// reference kernel + EvaluationContext.
func NewSheet(root Plane) *Sheet {
	k := refkernel.New()
	return &Sheet{Root: root, Env: env.Default(), Ctx: evalctx.New(k, k)}
}

// WriteSVG unions every Part's cross-section into one and renders it.
func (s *Sheet) WriteSVG(ctx context.Context, w io.Writer, opts svgexport.Options) error {
	n, elems := s.Root.Build(s.Env)
	resolved, err := shared.Resolve2D(ctx, s.Ctx, n, elems)
	if err != nil {
		return err
	}
	whole := unionCrossSections(s.Ctx.Kernel2D(), resolved.Parts)
	data, err := svgexport.Write(whole, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func unionCrossSections(k kernel.Kernel2D, parts map[result.Part]kernel.CrossSection2D) kernel.CrossSection2D {
	sections := make([]kernel.CrossSection2D, 0, len(parts))
	for _, cv := range parts {
		sections = append(sections, cv)
	}
	switch len(sections) {
	case 0:
		return k.Rectangle(0, 0)
	case 1:
		return sections[0]
	default:
		return k.Union2D(sections)
	}
}
