// Package geomerr defines the error taxonomy shared across the build,
// evaluation, and export layers (spec §7). Every error a Geometry.build or
// kernel call can surface is one of the four kinds here; all other
// conditions (empty results, zero-sized shapes) collapse to an Empty node
// rather than an error, per spec §4.1.
package geomerr

import "fmt"

// Kind classifies an error for callers that want to branch on it with
// errors.Is/errors.As rather than string matching.
type Kind int

const (
	// InvalidConfiguration marks a precondition failure, e.g. a Materialized
	// or Raw node whose key has no registered value. Recovery: programmer
	// bug in the caller; not expected to be handled at runtime.
	InvalidConfiguration Kind = iota
	// ImportFailed marks a failure reading an STL/3MF/SVG/font source
	// file inside a CachedNode factory.
	ImportFailed
	// MeshNotManifold marks a kernel rejection of a user-supplied mesh.
	MeshNotManifold
	// KernelInternal marks an unrecoverable fault inside the geometry
	// kernel itself.
	KernelInternal
)

func (k Kind) String() string {
	switch k {
	case InvalidConfiguration:
		return "invalid configuration"
	case ImportFailed:
		return "import failed"
	case MeshNotManifold:
		return "mesh not manifold"
	case KernelInternal:
		return "kernel internal error"
	default:
		return "unknown geometry error"
	}
}

// Error is the concrete error type returned for every Kind above.
type Error struct {
	Kind    Kind
	Source  string // path or node description, when applicable
	Message string
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Source, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, geomerr.ErrKernelInternal) style checks via the
// sentinels below instead of comparing Kind fields directly.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// InvalidConfigurationf builds an InvalidConfiguration error.
func InvalidConfigurationf(format string, args ...any) error {
	return &Error{Kind: InvalidConfiguration, Message: fmt.Sprintf(format, args...)}
}

// ImportFailedf builds an ImportFailed error for the given source path.
func ImportFailedf(source string, cause error, format string, args ...any) error {
	return &Error{Kind: ImportFailed, Source: source, Message: fmt.Sprintf(format, args...), Err: cause}
}

// NotManifold builds a MeshNotManifold error.
func NotManifold(source string) error {
	return &Error{Kind: MeshNotManifold, Source: source, Message: "mesh is not a closed 2-manifold"}
}

// KernelInternalf builds a KernelInternal error.
func KernelInternalf(cause error, format string, args ...any) error {
	return &Error{Kind: KernelInternal, Message: fmt.Sprintf(format, args...), Err: cause}
}

// sentinels usable with errors.Is(err, geomerr.ErrKernelInternal) etc; each
// shares a Kind with the constructors above but carries no message, so the
// Is method above (Kind-only comparison) is what makes errors.Is succeed.
var (
	ErrInvalidConfiguration = &Error{Kind: InvalidConfiguration}
	ErrImportFailed         = &Error{Kind: ImportFailed}
	ErrMeshNotManifold      = &Error{Kind: MeshNotManifold}
	ErrKernelInternal       = &Error{Kind: KernelInternal}
)
