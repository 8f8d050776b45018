// Package schema builds the schema graph of a Go type.
//
// A schema graph is a tree of Nodes, one per structural member reachable
// from a root type: struct fields, collection and array elements, map keys
// and values. Every node carries its declared type, its effective type
// (the declared type with every generic slot substituted) and the Binding
// of slots visible to its children.
//
// # Resolution
//
// The Resolver substitutes generic slots the way the compiler would:
//
//	type Pair[L, R any] struct { Left L; Right R }
//
//	Pair[string, int]        -> Left: string, Right: int
//	List[Pair[Item[X], Y]]   -> every slot resolved level by level
//
// Slots are keyed by their declaring type and name, so the same generic
// container reached from two call sites keeps two isolated bindings.
// An unbound slot falls back to its constraint (see typedesc.UpperBound).
//
// # Cycles
//
// Self-referential types are detected on the ancestor path only. A node
// that re-enters an ancestor with the same effective type and binding
// signature is created without children and marked cyclic; siblings of
// the same type are expanded independently.
//
// # Paths
//
// Node paths follow the member-path grammar used by selectors:
//
//	Address.CountryCode
//	Phones[]           (collection or array element)
//	Attributes[key]    (map key)
//	Attributes[value]  (map value)
package schema
