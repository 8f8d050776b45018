// Package analyze is the static type-descriptor backend.
//
// It uses golang.org/x/tools/go/packages with go/types to load Go
// packages and index their named types, generic declarations included,
// so the schema graph can resolve type parameters the way the compiler
// does.
//
// Key types:
//   - Loader: loads packages, looks up and instantiates types
//   - TypeGraph: index of every exported named type of the loaded packages
//   - PackageInfo: the named types a package declares
package analyze
