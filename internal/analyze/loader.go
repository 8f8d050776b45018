package analyze

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"object-synth/typedesc"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Loader loads Go packages and indexes their named types.
type Loader struct {
	graph *TypeGraph
	fset  *token.FileSet
	ctxt  *types.Context
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{
		graph: NewTypeGraph(),
		fset:  token.NewFileSet(),
		ctxt:  types.NewContext(),
	}
}

// LoadPackages loads the specified packages and indexes their types.
// Patterns are standard Go package patterns (e.g., "./fixtures", "object-synth/fixtures").
func (l *Loader) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Fset: l.fset,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		l.processPackage(pkg.Types)
	}

	return l.graph, nil
}

// Graph returns the current type graph.
func (l *Loader) Graph() *TypeGraph {
	return l.graph
}

// Context returns the instantiation context shared by every type this
// Loader hands out, so equal instantiations are identical.
func (l *Loader) Context() *types.Context {
	return l.ctxt
}

// processPackage indexes the exported named types of a package.
func (l *Loader) processPackage(pkg *types.Package) {
	info := &PackageInfo{
		Path: pkg.Path(),
		Name: pkg.Name(),
		Pkg:  pkg,
	}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		id := typedesc.ID{PkgPath: pkg.Path(), Name: name}
		ti := &TypeInfo{
			ID:   id,
			Type: typeName.Type(),
			Kind: typedesc.Classify(typeName.Type()),
			Obj:  typeName,
		}

		for _, tp := range typedesc.TypeParameters(typeName.Type()) {
			ti.Params = append(ti.Params, tp.Obj().Name())
		}

		l.graph.Types[id] = ti
		info.Types = append(info.Types, id)
	}

	l.graph.Packages[pkg.Path()] = info
}

// Lookup returns the declared type pkgPath.name. Generic declarations are
// returned uninstantiated.
func (l *Loader) Lookup(pkgPath, name string) (types.Type, error) {
	ti := l.graph.GetType(typedesc.ID{PkgPath: pkgPath, Name: name})
	if ti == nil {
		return nil, fmt.Errorf("type %s.%s not found", pkgPath, name)
	}

	return ti.Type, nil
}

// Instantiate binds the type parameters of a generic declaration.
func (l *Loader) Instantiate(generic types.Type, args ...types.Type) (types.Type, error) {
	origin := typedesc.Origin(generic)
	if !typedesc.IsGenericOrigin(origin) {
		return nil, fmt.Errorf("type %s is not generic", typedesc.Key(generic))
	}

	inst, err := types.Instantiate(l.ctxt, origin, args, true)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate %s: %w", typedesc.Key(origin), err)
	}

	return inst, nil
}

// Eval evaluates a type expression in the scope of a loaded package,
// e.g. Eval("object-synth/fixtures", "Pair[string, Item[int]]").
func (l *Loader) Eval(pkgPath, expr string) (types.Type, error) {
	info, ok := l.graph.Packages[pkgPath]
	if !ok {
		return nil, fmt.Errorf("package %s is not loaded", pkgPath)
	}

	tv, err := types.Eval(l.fset, info.Pkg, token.NoPos, expr)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate %q in %s: %w", expr, pkgPath, err)
	}

	if !tv.IsType() {
		return nil, fmt.Errorf("expression %q in %s is not a type", expr, pkgPath)
	}

	return tv.Type, nil
}

// Basic returns a predeclared type by name ("string", "int", "any", ...).
func Basic(name string) (types.Type, error) {
	obj, ok := types.Universe.Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%q is not a predeclared type", name)
	}

	return obj.Type(), nil
}
