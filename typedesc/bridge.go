package typedesc

import (
	"go/token"
	"go/types"
	"reflect"
	"sync"

	"object-synth/internal/common"
)

var basicKinds = map[reflect.Kind]types.BasicKind{
	reflect.Bool:          types.Bool,
	reflect.Int:           types.Int,
	reflect.Int8:          types.Int8,
	reflect.Int16:         types.Int16,
	reflect.Int32:         types.Int32,
	reflect.Int64:         types.Int64,
	reflect.Uint:          types.Uint,
	reflect.Uint8:         types.Uint8,
	reflect.Uint16:        types.Uint16,
	reflect.Uint32:        types.Uint32,
	reflect.Uint64:        types.Uint64,
	reflect.Uintptr:       types.Uintptr,
	reflect.Float32:       types.Float32,
	reflect.Float64:       types.Float64,
	reflect.Complex64:     types.Complex64,
	reflect.Complex128:    types.Complex128,
	reflect.String:        types.String,
	reflect.UnsafePointer: types.UnsafePointer,
}

// Bridge mirrors runtime reflect types into go/types descriptors. The same
// reflect.Type always maps to the same descriptor, so named types compare
// identical and recursive types terminate.
type Bridge struct {
	mu    sync.Mutex
	pkgs  map[string]*types.Package
	cache map[reflect.Type]types.Type
}

// NewBridge creates an empty Bridge.
func NewBridge() *Bridge {
	return &Bridge{
		pkgs:  make(map[string]*types.Package),
		cache: make(map[reflect.Type]types.Type),
	}
}

var defaultBridge = NewBridge()

// FromReflect mirrors rt using the process-wide Bridge.
func FromReflect(rt reflect.Type) types.Type {
	return defaultBridge.FromReflect(rt)
}

// FromReflect returns the descriptor for rt.
func (b *Bridge) FromReflect(rt reflect.Type) types.Type {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.convert(rt)
}

func (b *Bridge) convert(rt reflect.Type) types.Type {
	if t, ok := b.cache[rt]; ok {
		return t
	}

	var t types.Type
	switch {
	case rt.Name() != "" && rt.PkgPath() != "":
		return b.named(rt)
	case rt.Name() == "error":
		t = types.Universe.Lookup("error").Type()
	default:
		t = b.underlying(rt)
	}

	b.cache[rt] = t

	return t
}

// named registers the named type before converting its underlying type,
// which is what lets self-referential types terminate.
func (b *Bridge) named(rt reflect.Type) types.Type {
	obj := types.NewTypeName(token.NoPos, b.pkg(rt.PkgPath()), rt.Name(), nil)
	named := types.NewNamed(obj, nil, nil)
	b.cache[rt] = named
	named.SetUnderlying(b.underlying(rt))

	return named
}

func (b *Bridge) underlying(rt reflect.Type) types.Type {
	if kind, ok := basicKinds[rt.Kind()]; ok {
		return types.Typ[kind]
	}

	switch rt.Kind() {
	case reflect.Pointer:
		return types.NewPointer(b.convert(rt.Elem()))
	case reflect.Slice:
		return types.NewSlice(b.convert(rt.Elem()))
	case reflect.Array:
		return types.NewArray(b.convert(rt.Elem()), int64(rt.Len()))
	case reflect.Map:
		return types.NewMap(b.convert(rt.Key()), b.convert(rt.Elem()))
	case reflect.Chan:
		return types.NewChan(chanDir(rt.ChanDir()), b.convert(rt.Elem()))
	case reflect.Struct:
		return b.structOf(rt)
	case reflect.Func:
		return types.NewSignatureType(nil, nil, nil, types.NewTuple(), types.NewTuple(), false)
	default:
		// interfaces: method sets are irrelevant to the schema graph
		iface := types.NewInterfaceType(nil, nil)
		iface.Complete()
		return iface
	}
}

func (b *Bridge) structOf(rt reflect.Type) *types.Struct {
	fields := make([]*types.Var, 0, rt.NumField())
	tags := make([]string, 0, rt.NumField())

	for i := range rt.NumField() {
		f := rt.Field(i)

		pkgPath := f.PkgPath
		if pkgPath == "" {
			pkgPath = rt.PkgPath()
		}

		fields = append(fields, types.NewField(token.NoPos, b.pkg(pkgPath), f.Name, b.convert(f.Type), f.Anonymous))
		tags = append(tags, string(f.Tag))
	}

	return types.NewStruct(fields, tags)
}

func (b *Bridge) pkg(path string) *types.Package {
	if path == "" {
		return nil
	}

	if p, ok := b.pkgs[path]; ok {
		return p
	}

	p := types.NewPackage(path, common.PkgAlias(path))
	b.pkgs[path] = p

	return p
}

func chanDir(d reflect.ChanDir) types.ChanDir {
	switch d {
	case reflect.SendDir:
		return types.SendOnly
	case reflect.RecvDir:
		return types.RecvOnly
	default:
		return types.SendRecv
	}
}
