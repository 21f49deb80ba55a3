package project

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dshills/geocad/geom"
	"github.com/dshills/geocad/internal/env"
	"github.com/dshills/geocad/internal/evalctx"
	"github.com/dshills/geocad/internal/export/svgexport"
	"github.com/dshills/geocad/internal/kernel/refkernel"
	"github.com/dshills/geocad/internal/taskenv"
)

// ModelFunc declares one Model's geometry. It receives the context carrying
// the current task environment (internal/taskenv) so nested free functions
// can resolve relative import paths and the ambient Environment without
// every call threading them explicitly.
type ModelFunc func(ctx context.Context) (geom.Solid, error)

// ContentFunc declares a Project's models by calling Builder.Model one or
// more times.
type ContentFunc func(b *Builder)

// Builder is passed to a Project's content closure. All Models registered
// through one Builder share a single EvaluationContext, so a
// Materialized/Raw value (e.g. an Import) registered against one Model's
// key is resolved at most once across every Model in the project (spec
// scenario S5).
type Builder struct {
	root   string
	opts   Options
	env    env.Environment
	ec     *evalctx.Context
	logger *slog.Logger
	models []namedModel
}

type namedModel struct {
	name string
	fn   ModelFunc
}

// Model registers a named model to be built and written when Project
// returns. name becomes the output file's base name (sans extension).
func (b *Builder) Model(name string, fn ModelFunc) {
	b.models = append(b.models, namedModel{name: name, fn: fn})
}

// Context returns the Builder's shared EvaluationContext, for content
// closures that need to pre-register an Import's factory with
// RegisterFactory3D/RegisterRaw3D before any Model referencing it builds.
func (b *Builder) Context() *evalctx.Context { return b.ec }

// Project walks a directory of user-declared models: content registers
// models via the Builder it receives, then every registered model is built
// and written to root/options.OutputDir in every requested format. A
// per-model build or write failure is logged and does not prevent the
// remaining models from running (spec §6.4).
func Project(ctx context.Context, root string, opts Options, content ContentFunc) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	outDir := filepath.Join(root, opts.OutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	k := refkernel.New()
	b := &Builder{
		root:   root,
		opts:   opts,
		env:    opts.baseEnvironment(),
		ec:     evalctx.New(k, k),
		logger: slog.Default().With("project", root),
	}
	content(b)

	for _, m := range b.models {
		if err := b.buildAndWrite(ctx, outDir, m); err != nil {
			b.logger.Error("model build failed", "model", m.name, "error", err)
		}
	}
	return nil
}

// Model runs a single named model outside of any Project, sharing nothing
// with other models. cmd/geocad does not call it: its -model flag selects
// one model from a Project instead.
func Model(ctx context.Context, root, name string, opts Options, fn ModelFunc) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	outDir := filepath.Join(root, opts.OutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	k := refkernel.New()
	b := &Builder{root: root, opts: opts, env: opts.baseEnvironment(), ec: evalctx.New(k, k)}
	return b.buildAndWrite(ctx, outDir, namedModel{name: name, fn: fn})
}

func (b *Builder) buildAndWrite(ctx context.Context, outDir string, m namedModel) error {
	modelCtx := taskenv.WithCurrent(ctx, taskenv.Current{Env: b.env, BaseDir: b.root})

	solid, err := m.fn(modelCtx)
	if err != nil {
		return fmt.Errorf("building %s: %w", m.name, err)
	}
	gm := &geom.Model{Root: solid, Env: b.env, Ctx: b.ec}

	for _, f := range b.opts.Formats {
		path := filepath.Join(outDir, m.name+"."+string(f))
		if err := writeFormat(modelCtx, gm, f, path); err != nil {
			return fmt.Errorf("writing %s (%s): %w", m.name, f, err)
		}
	}
	return nil
}

func writeFormat(ctx context.Context, gm *geom.Model, f Format, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	switch f {
	case FormatSTL:
		return gm.WriteSTL(ctx, out)
	case FormatThreeMF:
		return gm.WriteThreeMF(ctx, out)
	case FormatSVG:
		sheet := &geom.Sheet{Root: gm.Root.Projected(), Env: gm.Env, Ctx: gm.Ctx}
		return sheet.WriteSVG(ctx, out, svgexport.DefaultOptions())
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}
