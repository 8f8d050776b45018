package selector

import (
	"errors"
	"fmt"
	"strings"

	"object-synth/schema"
)

// ParsePath parses a member path string into a schema.TypePath.
// Supports: "Field", "Nested.Field", "Items[]", "Items[].ProductID",
// "Notes[key]", "Notes[value]" and suffix-only roots such as "[].Name".
func ParsePath(path string) (schema.TypePath, error) {
	if path == "" {
		return schema.TypePath{}, errors.New("empty path")
	}

	result := schema.RootPath()

	for i, part := range strings.Split(path, ".") {
		if part == "" {
			return schema.TypePath{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		name, suffixes, err := splitSuffixes(part)
		if err != nil {
			return schema.TypePath{}, fmt.Errorf("invalid path %q: %w", path, err)
		}

		switch {
		case name == "" && i > 0:
			return schema.TypePath{}, fmt.Errorf("invalid path %q: container suffix without field name", path)
		case name != "" && !isValidIdent(name):
			return schema.TypePath{}, fmt.Errorf("invalid path %q: invalid identifier %q", path, name)
		case name != "":
			result = result.Field(name)
		}

		for _, s := range suffixes {
			switch s {
			case "[]":
				result = result.Element()
			case "[key]":
				result = result.Key()
			case "[value]":
				result = result.Value()
			}
		}
	}

	return result, nil
}

// splitSuffixes splits "Items[][key]" into "Items" and ["[]", "[key]"].
func splitSuffixes(part string) (string, []string, error) {
	idx := strings.IndexByte(part, '[')
	if idx < 0 {
		return part, nil, nil
	}

	name, rest := part[:idx], part[idx:]

	var suffixes []string
	for rest != "" {
		end := strings.IndexByte(rest, ']')
		if !strings.HasPrefix(rest, "[") || end < 0 {
			return "", nil, fmt.Errorf("unterminated suffix %q", rest)
		}

		suffix := rest[:end+1]
		switch suffix {
		case "[]", "[key]", "[value]":
		default:
			return "", nil, fmt.Errorf("unknown suffix %q", suffix)
		}

		suffixes = append(suffixes, suffix)
		rest = rest[end+1:]
	}

	return name, suffixes, nil
}

// isValidIdent checks if a string is a valid Go identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			// Subsequent characters can be letter, digit, or underscore
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
