package analyze

import (
	"go/types"
	"sort"

	"object-synth/typedesc"
)

// TypeInfo describes one exported named type of a loaded package.
type TypeInfo struct {
	ID     typedesc.ID     // Unique identifier
	Type   types.Type      // The declared type (generic origin for generic declarations)
	Kind   typedesc.Kind   // Structural classification
	Params []string        // Type parameter names, empty for non-generic types
	Obj    *types.TypeName // The declaring object
}

// IsGeneric returns true if the type declares type parameters.
func (t *TypeInfo) IsGeneric() bool {
	return len(t.Params) > 0
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps ID to TypeInfo for all named types.
	Types map[typedesc.ID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[typedesc.ID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given ID, or nil if not found.
func (g *TypeGraph) GetType(id typedesc.ID) *TypeInfo {
	return g.Types[id]
}

// IDs returns every indexed ID in a stable order.
func (g *TypeGraph) IDs() []typedesc.ID {
	ids := make([]typedesc.ID, 0, len(g.Types))
	for id := range g.Types {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	return ids
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string         // Import path
	Name  string         // Package name
	Types []typedesc.ID  // Named types defined in this package
	Pkg   *types.Package // Type-checked package
}
