package typedesc

// Kind is the structural classification of a descriptor.
type Kind int

const (
	KindInvalid    Kind = iota
	KindLeaf            // no structural members: basic, interface, func, chan, registered leaf types
	KindObject          // struct; one child per exported field
	KindCollection      // slice; one synthetic element child
	KindMap             // map; one key child and one value child
	KindArray           // fixed-length array; one synthetic element child

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindObject:
		return "object"
	case KindCollection:
		return "collection"
	case KindMap:
		return "map"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// IsStructural reports whether nodes of this kind have children.
func (k Kind) IsStructural() bool {
	switch k {
	case KindObject, KindCollection, KindMap, KindArray:
		return true
	default:
		return false
	}
}

// IsContainer reports whether children of this kind are synthetic
// (elements, keys, values) rather than named members.
func (k Kind) IsContainer() bool {
	return k == KindCollection || k == KindMap || k == KindArray
}
