package schema

import (
	"strings"
)

// TypePath builds a readable member path relative to a root type.
// Examples:
//   - "" for the root itself
//   - "Address.CountryCode" for a nested field
//   - "Lines[]" for a collection or array element
//   - "Lines[].SKU" for a field within collection elements
//   - "Notes[key]" and "Notes[value]" for map keys and values
type TypePath struct {
	parts []string
}

// RootPath returns the empty path.
func RootPath() TypePath {
	return TypePath{}
}

// Field appends a field name to the path.
func (p TypePath) Field(name string) TypePath {
	return TypePath{parts: append(append([]string{}, p.parts...), name)}
}

// Element appends a collection element indicator "[]" to the path.
func (p TypePath) Element() TypePath {
	return p.suffix("[]")
}

// Key appends a map key indicator "[key]" to the path.
func (p TypePath) Key() TypePath {
	return p.suffix("[key]")
}

// Value appends a map value indicator "[value]" to the path.
func (p TypePath) Value() TypePath {
	return p.suffix("[value]")
}

func (p TypePath) suffix(s string) TypePath {
	if len(p.parts) == 0 {
		return TypePath{parts: []string{s}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] += s

	return TypePath{parts: newParts}
}

// IsRoot reports whether the path is empty.
func (p TypePath) IsRoot() bool {
	return len(p.parts) == 0
}

// Segments returns the dot-separated parts of the path.
func (p TypePath) Segments() []string {
	return append([]string{}, p.parts...)
}

// String returns the full path string.
func (p TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// Qualified prefixes the path with a root type name: "Person.Address".
func (p TypePath) Qualified(root string) string {
	switch {
	case p.IsRoot():
		return root
	case strings.HasPrefix(p.parts[0], "["):
		return root + p.String()
	default:
		return root + "." + p.String()
	}
}
