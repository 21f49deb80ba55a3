// Package taskenv provides the one sanctioned task-local in this repo: the
// "current task environment" spec §9 calls out as the source's only
// module-level global, used so free functions (Project, Model, nested
// groups) can thread directory/environment context without every call site
// passing it explicitly. Go has no goroutine-local storage, so this is
// realized as a value carried on context.Context rather than a package
// global — set once per model build by internal/project and readable by
// nested free functions through FromContext.
package taskenv

import (
	"context"

	"github.com/dshills/geocad/internal/env"
)

type taskEnvKey struct{}

// Current holds the ambient state a project/model walk threads through
// free-function helpers: the base Environment for the current model and
// the directory it should resolve relative import paths against.
type Current struct {
	Env     env.Environment
	BaseDir string
}

// WithCurrent returns a derived context carrying c as the current task
// environment. internal/project calls it once per model build, in
// Builder.buildAndWrite.
func WithCurrent(ctx context.Context, c Current) context.Context {
	return context.WithValue(ctx, taskEnvKey{}, c)
}

// FromContext retrieves the current task environment, or ok=false if none
// was set (e.g. a Geometry built directly via internal/build without going
// through internal/project).
func FromContext(ctx context.Context) (Current, bool) {
	c, ok := ctx.Value(taskEnvKey{}).(Current)
	return c, ok
}
