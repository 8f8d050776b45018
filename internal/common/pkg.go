package common

import (
	"path"
	"strings"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// BareName strips the type argument list from a type name, so that
// "Pair[string,int]" becomes "Pair".
func BareName(name string) string {
	if i := strings.IndexByte(name, '['); i > 0 {
		return name[:i]
	}

	return name
}
