package selector

import (
	"fmt"

	"object-synth/generator"
	"object-synth/schema"
)

// Kind is the action a selector attaches to its target.
type Kind int

const (
	KindSet Kind = iota
	KindSetFunc
	KindSupply
	KindIgnore
)

func (k Kind) String() string {
	switch k {
	case KindSet:
		return "set"
	case KindSetFunc:
		return "set_func"
	case KindSupply:
		return "supply"
	case KindIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

// IsOverride reports whether selectors of this kind replace slot values.
func (k Kind) IsOverride() bool {
	return k != KindSupply
}

// Selector is a target with an action.
type Selector struct {
	Target Target
	Kind   Kind

	value any
	fn    func(r *generator.Random) (any, error)
	gen   generator.Generator
}

// Set overrides every targeted slot with value.
func Set(target Target, value any) Selector {
	return Selector{Target: target, Kind: KindSet, value: value}
}

// SetFunc overrides every targeted slot with the result of fn.
func SetFunc(target Target, fn func(r *generator.Random) (any, error)) Selector {
	return Selector{Target: target, Kind: KindSetFunc, fn: fn}
}

// Supply registers a custom generator for every targeted slot.
func Supply(target Target, g generator.Generator) Selector {
	return Selector{Target: target, Kind: KindSupply, gen: g}
}

// Ignore leaves every targeted slot untouched.
func Ignore(target Target) Selector {
	return Selector{Target: target, Kind: KindIgnore}
}

// Generator returns the custom generator of a Supply selector.
func (s Selector) Generator() generator.Generator {
	return s.gen
}

// String returns a human-readable representation of the Selector.
func (s Selector) String() string {
	return fmt.Sprintf("%s %s", s.Kind, s.Target)
}

// Override is the final say of an override selector over one slot.
type Override struct {
	Selector Selector
}

// Ignore reports whether the slot is to be left untouched.
func (o Override) Ignore() bool {
	return o.Selector.Kind == KindIgnore
}

// Value produces the override value. Each call of a SetFunc selector
// invokes its function again.
func (o Override) Value(r *generator.Random) (any, error) {
	if o.Selector.Kind == KindSetFunc {
		return o.Selector.fn(r)
	}

	return o.Selector.value, nil
}

// Registry is an ordered, immutable collection of selectors.
type Registry struct {
	selectors []Selector
}

// NewRegistry creates a Registry. Later selectors take precedence over earlier ones.
func NewRegistry(selectors ...Selector) *Registry {
	return &Registry{selectors: append([]Selector(nil), selectors...)}
}

// With returns a new Registry with selectors appended.
func (s *Registry) With(selectors ...Selector) *Registry {
	return NewRegistry(append(s.All(), selectors...)...)
}

// All returns the selectors in registration order.
func (s *Registry) All() []Selector {
	if s == nil {
		return nil
	}

	return append([]Selector(nil), s.selectors...)
}

// Len returns the number of selectors.
func (s *Registry) Len() int {
	if s == nil {
		return 0
	}

	return len(s.selectors)
}

// Generators returns the generators of every Supply selector.
func (s *Registry) Generators() []generator.Generator {
	var out []generator.Generator
	for _, sel := range s.All() {
		if sel.Kind == KindSupply {
			out = append(out, sel.gen)
		}
	}

	return out
}

// Matcher starts a run over the registry. Matchers record which selectors
// matched at least one node.
func (s *Registry) Matcher() *Matcher {
	return &Matcher{set: s, used: make([]bool, s.Len())}
}

// Matcher answers per-node selector queries for one run. It is not safe
// for concurrent use.
type Matcher struct {
	set  *Registry
	used []bool
}

// Override returns the last registered override selector matching n.
func (m *Matcher) Override(n *schema.Node) (Override, bool) {
	idx := m.match(n, true)
	if idx < 0 {
		return Override{}, false
	}

	return Override{Selector: m.set.selectors[idx]}, true
}

// Generator returns the generator of the last registered Supply selector
// matching n.
func (m *Matcher) Generator(n *schema.Node) (generator.Generator, bool) {
	idx := m.match(n, false)
	if idx < 0 {
		return nil, false
	}

	return m.set.selectors[idx].gen, true
}

func (m *Matcher) match(n *schema.Node, override bool) int {
	if m.set == nil {
		return -1
	}

	found := -1
	for i, sel := range m.set.selectors {
		if sel.Kind.IsOverride() != override || !sel.Target.Matches(n) {
			continue
		}

		m.used[i] = true
		found = i
	}

	return found
}

// Unused returns the selectors that matched no node.
func (m *Matcher) Unused() []Selector {
	var out []Selector
	for i, used := range m.used {
		if !used {
			out = append(out, m.set.selectors[i])
		}
	}

	return out
}
