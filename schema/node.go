package schema

import (
	"go/types"
	"reflect"

	"object-synth/internal/common"
	"object-synth/typedesc"
)

// Role describes how a node relates to its parent.
type Role int

const (
	RoleRoot Role = iota
	RoleMember
	RoleElement
	RoleKey
	RoleValue
)

func (r Role) String() string {
	switch r {
	case RoleRoot:
		return "root"
	case RoleMember:
		return "member"
	case RoleElement:
		return "element"
	case RoleKey:
		return "key"
	case RoleValue:
		return "value"
	default:
		return "unknown"
	}
}

// Node is one element of a schema graph. Nodes are immutable once the
// Factory returns them.
type Node struct {
	kind      typedesc.Kind
	role      Role
	declared  types.Type
	typ       types.Type
	owner     *types.Named
	member    string
	index     int
	tag       reflect.StructTag
	embedded  bool
	binding   *Binding
	parent    *Node
	children  []*Node
	path      TypePath
	rootName  string
	depth     int
	cyclic    bool
	truncated bool
}

// Kind returns the structural kind of the node.
func (n *Node) Kind() typedesc.Kind { return n.kind }

// Role returns how the node relates to its parent.
func (n *Node) Role() Role { return n.role }

// Declared returns the type as written in the owning declaration.
func (n *Node) Declared() types.Type { return n.declared }

// Type returns the effective type, with every slot substituted.
func (n *Node) Type() types.Type { return n.typ }

// Base returns the effective type with pointers stripped.
func (n *Node) Base() types.Type { return typedesc.Deref(n.typ) }

// Key returns the canonical key of the effective type.
func (n *Node) Key() string { return typedesc.Key(n.typ) }

// Owner returns the identity of the type that declares this member.
// Synthetic children (elements, keys, values) inherit their parent's owner.
func (n *Node) Owner() typedesc.ID {
	if n.owner == nil {
		return typedesc.ID{}
	}

	return typedesc.IDOf(n.owner)
}

// Member returns the field name, or "" for roots and synthetic children.
func (n *Node) Member() string { return n.member }

// FieldIndex returns the index of the member within its struct, or -1.
func (n *Node) FieldIndex() int { return n.index }

// Tag returns the struct tag of the member.
func (n *Node) Tag() reflect.StructTag { return n.tag }

// Embedded reports whether the member is an embedded field.
func (n *Node) Embedded() bool { return n.embedded }

// Binding returns the binding the node's children resolve against.
func (n *Node) Binding() *Binding { return n.binding }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in declaration order.
func (n *Node) Children() []*Node { return n.children }

// Depth returns the distance from the root.
func (n *Node) Depth() int { return n.depth }

// Cyclic reports whether the node re-enters an ancestor and was not expanded.
func (n *Node) Cyclic() bool { return n.cyclic }

// Truncated reports whether the node hit the depth limit and was not expanded.
func (n *Node) Truncated() bool { return n.truncated }

// Path returns the member path relative to the root.
func (n *Node) Path() TypePath { return n.path }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Pointer reports whether the effective type is a pointer.
func (n *Node) Pointer() bool {
	_, ok := types.Unalias(n.typ).Underlying().(*types.Pointer)
	return ok
}

// Child returns the member with the given name.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.role == RoleMember && c.member == name {
			return c
		}
	}

	return nil
}

// Element returns the element child of a collection or array node.
func (n *Node) Element() *Node { return n.childByRole(RoleElement) }

// MapKey returns the key child of a map node.
func (n *Node) MapKey() *Node { return n.childByRole(RoleKey) }

// MapValue returns the value child of a map node.
func (n *Node) MapValue() *Node { return n.childByRole(RoleValue) }

func (n *Node) childByRole(r Role) *Node {
	for _, c := range n.children {
		if c.role == r {
			return c
		}
	}

	return nil
}

// Lookup follows a path from n, e.g. "Lines[].SKU".
func (n *Node) Lookup(path string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.path.String() == path {
			found = c
			return false
		}
		return true
	})

	return found
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}

	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Equal reports whether two nodes describe the same member of the same
// owning type with the same effective type. The parent is not compared.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.Owner() == other.Owner() &&
		n.member == other.member &&
		types.Identical(n.typ, other.typ)
}

// String returns the qualified path, e.g. "Person.Address.CountryCode".
func (n *Node) String() string {
	return n.path.Qualified(n.rootName)
}

// displayName is the short name used to qualify paths.
func displayName(t types.Type) string {
	if id := typedesc.IDOf(typedesc.Deref(t)); !id.IsZero() {
		return common.BareName(id.Name)
	}

	return typedesc.Key(t)
}
