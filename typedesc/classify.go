package typedesc

import (
	"go/types"
	"maps"
)

// leafKeys are struct or array types treated as opaque values.
var leafKeys = map[string]struct{}{
	"time.Time":                   {},
	"time.Location":               {},
	"math/big.Int":                {},
	"math/big.Float":              {},
	"math/big.Rat":                {},
	"github.com/google/uuid.UUID": {},
	"net/netip.Addr":              {},
}

// Classifier maps descriptors to a structural Kind.
type Classifier struct {
	leaves map[string]struct{}
}

// NewClassifier creates a Classifier that also treats the types with the
// given Keys as leaves.
func NewClassifier(extraLeaves ...string) *Classifier {
	c := &Classifier{leaves: maps.Clone(leafKeys)}
	for _, k := range extraLeaves {
		c.leaves[k] = struct{}{}
	}

	return c
}

// DefaultClassifier knows the built-in leaf types only.
var DefaultClassifier = NewClassifier()

// IsLeafType reports whether the (dereferenced) type is a registered leaf.
func (c *Classifier) IsLeafType(t types.Type) bool {
	_, ok := c.leaves[Key(Deref(t))]
	return ok
}

// Classify returns the Kind of t. Pointers are looked through; type
// parameters classify by their constraint, which is always a leaf.
func (c *Classifier) Classify(t types.Type) Kind {
	if t == nil {
		return KindInvalid
	}

	base := Deref(t)
	if c.IsLeafType(base) {
		return KindLeaf
	}

	switch base.Underlying().(type) {
	case *types.Struct:
		return KindObject
	case *types.Slice:
		return KindCollection
	case *types.Map:
		return KindMap
	case *types.Array:
		return KindArray
	default:
		return KindLeaf
	}
}

// Classify uses the DefaultClassifier.
func Classify(t types.Type) Kind {
	return DefaultClassifier.Classify(t)
}
