package fixtures

// Linked refers to itself through a pointer.
type Linked struct {
	Name string
	Next *Linked
}

// CycleA and CycleB refer to each other.
type CycleA struct {
	Label string
	B     *CycleB
}

// CycleB refers back to CycleA.
type CycleB struct {
	Count int
	A     *CycleA
}

// Tree refers to itself through a slice.
type Tree struct {
	Value    int
	Children []Tree
}

// GenericNode is a generic self-referential type.
type GenericNode[T any] struct {
	Value T
	Next  *GenericNode[T]
}

// Siblings has two members of the same self-referential type.
type Siblings struct {
	First  *Linked
	Second *Linked
}
