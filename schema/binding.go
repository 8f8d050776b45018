package schema

import (
	"go/types"
	"maps"
	"slices"
	"strings"

	"object-synth/typedesc"
)

// Slot identifies a generic parameter by its declaring type and name.
type Slot struct {
	Owner typedesc.ID
	Name  string
}

// String returns a human-readable representation of the Slot.
func (s Slot) String() string {
	return s.Owner.String() + "." + s.Name
}

// Binding is an immutable mapping from slots to effective types. Child
// bindings chain to their parent; lookups go innermost first, so an entry
// shadows an inherited entry of the same slot only.
type Binding struct {
	parent  *Binding
	entries map[Slot]types.Type
	sig     string
}

var emptyBinding = &Binding{}

// EmptyBinding returns the binding with no entries.
func EmptyBinding() *Binding {
	return emptyBinding
}

// NewBinding creates a root binding from the given entries.
func NewBinding(entries map[Slot]types.Type) *Binding {
	return emptyBinding.Extend(entries)
}

// Extend returns a binding that adds entries on top of b. The receiver is
// returned unchanged when there is nothing to add.
func (b *Binding) Extend(entries map[Slot]types.Type) *Binding {
	if len(entries) == 0 {
		return b
	}

	child := &Binding{parent: b, entries: maps.Clone(entries)}
	child.sig = child.signature()

	return child
}

// Lookup returns the type bound to s.
func (b *Binding) Lookup(s Slot) (types.Type, bool) {
	for cur := b; cur != nil; cur = cur.parent {
		if t, ok := cur.entries[s]; ok {
			return t, true
		}
	}

	return nil, false
}

// Own returns the entries introduced by this binding, excluding inherited ones.
func (b *Binding) Own() map[Slot]types.Type {
	if b == nil {
		return nil
	}

	return maps.Clone(b.entries)
}

// Slots returns every visible slot, sorted.
func (b *Binding) Slots() []Slot {
	seen := make(map[Slot]struct{})
	for cur := b; cur != nil; cur = cur.parent {
		for s := range cur.entries {
			seen[s] = struct{}{}
		}
	}

	out := slices.Collect(maps.Keys(seen))
	slices.SortFunc(out, func(a, b Slot) int {
		return strings.Compare(a.String(), b.String())
	})

	return out
}

// Len returns the number of visible slots.
func (b *Binding) Len() int {
	return len(b.Slots())
}

// Signature is a stable string over the visible entries; two bindings with
// the same visible entries share a signature.
func (b *Binding) Signature() string {
	if b == nil {
		return ""
	}

	return b.sig
}

// String returns the signature.
func (b *Binding) String() string {
	return "{" + b.Signature() + "}"
}

func (b *Binding) signature() string {
	var sb strings.Builder
	for i, s := range b.Slots() {
		if i > 0 {
			sb.WriteByte(';')
		}

		t, _ := b.Lookup(s)
		sb.WriteString(s.String())
		sb.WriteByte('=')
		sb.WriteString(typedesc.Key(t))
	}

	return sb.String()
}
