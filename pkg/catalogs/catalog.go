// Package catalogs supplies ordered collections of runner type definitions.
// A catalog is the canonical, in-memory source the reconciler consumes; it
// performs no validation of its own so that catalog authors get precise,
// per-definition errors from the reconciler instead.
package catalogs

import (
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// Catalog provides the canonical, ordered list of runner type definitions.
// Definitions must be pure and side-effect-free: repeated calls return the
// same sequence and callers never observe mutation.
type Catalog interface {
	Definitions() []runnertypes.Definition
}

// memory is an immutable in-memory catalog.
type memory struct {
	definitions []runnertypes.Definition
}

// New creates an in-memory catalog from the given definitions, preserving
// their order. The definitions are deep-copied so later changes by the
// caller do not leak into the catalog.
func New(definitions ...runnertypes.Definition) Catalog {
	return &memory{definitions: copyDefinitions(definitions)}
}

// Definitions returns a fresh deep copy of the catalog's ordered
// definitions.
func (m *memory) Definitions() []runnertypes.Definition {
	return copyDefinitions(m.definitions)
}

func copyDefinitions(definitions []runnertypes.Definition) []runnertypes.Definition {
	out := make([]runnertypes.Definition, len(definitions))
	for i, def := range definitions {
		out[i] = def.Copy()
	}
	return out
}
