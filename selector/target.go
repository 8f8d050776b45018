package selector

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/cases"

	"object-synth/schema"
	"object-synth/typedesc"
)

// Target matches nodes of a schema graph.
type Target interface {
	Matches(n *schema.Node) bool
	String() string
}

// Spelled is implemented by targets written as a member name or path.
// Spelling returns the text as written and whether it is a path.
type Spelled interface {
	Spelling() (text string, path bool)
}

type pathTarget struct {
	path string
}

// FieldPath targets the node at a member path relative to the root, e.g.
// "Address.CountryCode" or "Lines[].SKU".
func FieldPath(path string) (Target, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	return pathTarget{path: p.String()}, nil
}

// MustFieldPath is like FieldPath but panics on an invalid path.
func MustFieldPath(path string) Target {
	t, err := FieldPath(path)
	if err != nil {
		panic(err)
	}

	return t
}

func (t pathTarget) Matches(n *schema.Node) bool {
	return n.Path().String() == t.path
}

func (t pathTarget) Spelling() (string, bool) {
	return t.path, true
}

func (t pathTarget) String() string {
	return "path(" + t.path + ")"
}

type fieldTarget struct {
	name string
	fold bool
}

// Field targets every member named name, by Go field name or by the name
// in its json tag.
func Field(name string) Target {
	return fieldTarget{name: name}
}

// FieldFold is like Field with Unicode case folding, so "countrycode"
// matches CountryCode and country_code matches a json tag "Country_Code".
func FieldFold(name string) Target {
	return fieldTarget{name: cases.Fold().String(name), fold: true}
}

func (t fieldTarget) Matches(n *schema.Node) bool {
	if n.Role() != schema.RoleMember {
		return false
	}

	names := []string{n.Member()}
	if tag := jsonName(n.Tag()); tag != "" {
		names = append(names, tag)
	}

	for _, name := range names {
		if t.fold {
			name = cases.Fold().String(name)
		}
		if name == t.name {
			return true
		}
	}

	return false
}

func (t fieldTarget) Spelling() (string, bool) {
	return t.name, false
}

func (t fieldTarget) String() string {
	if t.fold {
		return "field~(" + t.name + ")"
	}

	return "field(" + t.name + ")"
}

func jsonName(tag reflect.StructTag) string {
	name, _, _ := strings.Cut(tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

type typeTarget struct {
	key string
}

// TypeOf targets every node whose effective type is T, or a pointer to T.
func TypeOf[T any]() Target {
	return typeTarget{key: typedesc.ReflectKey(reflect.TypeFor[T]())}
}

// TypeKey targets every node whose effective type has the given
// canonical key (see typedesc.Key).
func TypeKey(key string) Target {
	return typeTarget{key: key}
}

func (t typeTarget) Matches(n *schema.Node) bool {
	return n.Key() == t.key || typedesc.Key(n.Base()) == t.key
}

func (t typeTarget) String() string {
	return "type(" + t.key + ")"
}

type rootTarget struct{}

// Root targets the root node.
func Root() Target {
	return rootTarget{}
}

func (rootTarget) Matches(n *schema.Node) bool { return n.IsRoot() }

func (rootTarget) String() string { return "root" }

type predicateTarget struct {
	desc string
	fn   func(*schema.Node) bool
}

// Predicate targets every node for which fn returns true. desc names the
// predicate in diagnostics.
func Predicate(desc string, fn func(*schema.Node) bool) Target {
	return predicateTarget{desc: desc, fn: fn}
}

func (t predicateTarget) Matches(n *schema.Node) bool { return t.fn(n) }

func (t predicateTarget) String() string { return "predicate(" + t.desc + ")" }

type withinTarget struct {
	scope  Target
	target Target
}

// Within narrows target to nodes below a node matched by scope.
func Within(scope, target Target) Target {
	return withinTarget{scope: scope, target: target}
}

func (t withinTarget) Matches(n *schema.Node) bool {
	if !t.target.Matches(n) {
		return false
	}

	for p := n.Parent(); p != nil; p = p.Parent() {
		if t.scope.Matches(p) {
			return true
		}
	}

	return false
}

func (t withinTarget) String() string {
	return fmt.Sprintf("%s within %s", t.target, t.scope)
}

type anyTarget []Target

// Any targets nodes matched by at least one of targets.
func Any(targets ...Target) Target {
	return anyTarget(targets)
}

func (t anyTarget) Matches(n *schema.Node) bool {
	for _, target := range t {
		if target.Matches(n) {
			return true
		}
	}

	return false
}

func (t anyTarget) String() string {
	parts := make([]string, len(t))
	for i, target := range t {
		parts[i] = target.String()
	}

	return "any(" + strings.Join(parts, ", ") + ")"
}
