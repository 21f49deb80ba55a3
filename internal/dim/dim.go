// Package dim provides the dimensionality tag used to parameterize every
// vector, transform, bounding box, and IR node in geocad. Geometry in this
// library is either flat (2D cross-sections) or solid (3D manifolds); rather
// than maintain two parallel type hierarchies, every generic type in the
// core is indexed by one of the two marker types defined here.
package dim

// D is the type-set constraint satisfied by the two dimensionality markers.
// It is a phantom parameter: neither Dim2 nor Dim3 carries data, but binding
// a generic type to D lets the compiler keep 2D and 3D trees from mixing
// (e.g. a Projection node's child must be Node[Dim3], its result Node[Dim2]).
type D interface {
	Dim2 | Dim3
}

// Dim2 tags a type as operating on 2D cross-sections.
type Dim2 struct{}

// Dim3 tags a type as operating on 3D manifolds.
type Dim3 struct{}

// Name returns a human-readable dimensionality label, used in error messages
// and cache-key serialization so 2D and 3D cache keys never collide.
func Name[T D]() string {
	var zero T
	switch any(zero).(type) {
	case Dim2:
		return "2D"
	case Dim3:
		return "3D"
	default:
		return "unknown"
	}
}
