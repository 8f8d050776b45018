package fixtures

// Pair holds two values of independent types.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Triplet holds three values of independent types.
type Triplet[L, M, R any] struct {
	Left  L
	Mid   M
	Right R
}

// Item wraps a single value.
type Item[K any] struct {
	Value K
}

// Foo has one bound member and one top-typed member.
type Foo[X any] struct {
	FooValue      X
	OtherFooValue any
}

// List is a generic container.
type List[E any] struct {
	Items []E
}

// Nested nests generic containers several levels deep:
// List[Pair[Item[X], Foo[List[Y]]]].
type Nested[X, Y any] struct {
	Data List[Pair[Item[X], Foo[List[Y]]]]
}

// Holder reaches the same generic container from two members with
// different bindings.
type Holder struct {
	Names   Pair[string, int]
	Flags   Pair[bool, float64]
	Numbers Item[int64]
}

// Base is embedded by Derived.
type Base[E any] struct {
	Elem E
}

// Derived embeds a generic base.
type Derived[V any] struct {
	Base[V]
	Own V
}

// Box exercises every container shape over one slot.
type Box[T any] struct {
	Ptr   *T
	Slice []T
	Array [2]T
	Index map[string]T
}

// Bounded has a slot with a single-term constraint.
type Bounded[N ~int64] struct {
	Value N
}

// Stringer is a method constraint.
type Stringer interface {
	String() string
}

// Labeled has a slot constrained by methods only.
type Labeled[S Stringer] struct {
	Label S
}

// Collection is a generic slice type.
type Collection[E any] []E

// Lookup is a generic map type.
type Lookup[K comparable, V any] map[K]V
