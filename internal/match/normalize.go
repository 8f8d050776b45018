package match

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeIdent normalizes an identifier for fuzzy matching: case is
// folded and the separators _, - and space are removed, so "CountryCode",
// "country_code" and "countryCode" normalize alike.
func NormalizeIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range cases.Fold().String(s) {
		if !isSeparator(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// NormalizePath normalizes every segment of a member path and keeps the
// element suffixes: "lines[].unit_price" -> "lines[].unitprice".
func NormalizePath(p string) string {
	segments := strings.Split(p, ".")
	for i, seg := range segments {
		name, suffix := seg, ""
		if j := strings.IndexByte(seg, '['); j >= 0 {
			name, suffix = seg[:j], seg[j:]
		}
		segments[i] = NormalizeIdent(name) + suffix
	}

	return strings.Join(segments, ".")
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
