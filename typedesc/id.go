package typedesc

import (
	"go/types"
	"reflect"
	"strconv"
	"strings"
)

// ID identifies a declaring type by its package path and name.
type ID struct {
	PkgPath string // e.g., "object-synth/fixtures"
	Name    string // e.g., "Pair"
}

// String returns a human-readable representation of the ID.
func (id ID) String() string {
	if id.PkgPath == "" {
		return id.Name
	}

	return id.PkgPath + "." + id.Name
}

// IsZero reports whether the ID names no type.
func (id ID) IsZero() bool {
	return id.Name == ""
}

// IDOf returns the declaring identity of t. For an instantiated generic
// type this is the identity of its origin. Unnamed types have a zero ID.
func IDOf(t types.Type) ID {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return ID{}
	}

	obj := named.Origin().Obj()
	if obj.Pkg() == nil {
		return ID{Name: obj.Name()}
	}

	return ID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
}

// Key returns the canonical string of a descriptor. It is spelled the way
// the runtime spells type names, so a statically loaded instantiation and
// its reflect mirror share one Key:
//
//	object-synth/fixtures.Pair[string,int]
//	[]*object-synth/fixtures.Item[object-synth/fixtures.Foo]
//	map[string]interface {}
func Key(t types.Type) string {
	var b strings.Builder
	writeKey(&b, t)

	return b.String()
}

func writeKey(b *strings.Builder, t types.Type) {
	switch tt := types.Unalias(t).(type) {
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() != nil {
			b.WriteString(obj.Pkg().Path())
			b.WriteByte('.')
		}

		b.WriteString(obj.Name())

		if args := tt.TypeArgs(); args.Len() > 0 {
			b.WriteByte('[')
			for i := range args.Len() {
				if i > 0 {
					b.WriteByte(',')
				}
				writeKey(b, args.At(i))
			}
			b.WriteByte(']')
		}

	case *types.Basic:
		// byte and rune are spelled by their kind, as reflect does
		b.WriteString(types.Typ[tt.Kind()].Name())

	case *types.Pointer:
		b.WriteByte('*')
		writeKey(b, tt.Elem())

	case *types.Slice:
		b.WriteString("[]")
		writeKey(b, tt.Elem())

	case *types.Array:
		b.WriteByte('[')
		b.WriteString(strconv.FormatInt(tt.Len(), 10))
		b.WriteByte(']')
		writeKey(b, tt.Elem())

	case *types.Map:
		b.WriteString("map[")
		writeKey(b, tt.Key())
		b.WriteByte(']')
		writeKey(b, tt.Elem())

	case *types.Chan:
		switch tt.Dir() {
		case types.SendOnly:
			b.WriteString("chan<- ")
		case types.RecvOnly:
			b.WriteString("<-chan ")
		default:
			b.WriteString("chan ")
		}
		writeKey(b, tt.Elem())

	case *types.Interface:
		if tt.Empty() {
			b.WriteString("interface {}")
			return
		}
		b.WriteString(types.TypeString(tt, qualifyByPath))

	case *types.TypeParam:
		b.WriteString(tt.Obj().Name())

	default:
		b.WriteString(types.TypeString(t, qualifyByPath))
	}
}

func qualifyByPath(p *types.Package) string {
	return p.Path()
}

// ReflectKey returns the canonical string of a runtime type; it equals
// Key of the type's static descriptor.
func ReflectKey(rt reflect.Type) string {
	if rt.Name() != "" {
		if rt.PkgPath() == "" {
			return rt.Name()
		}

		return rt.PkgPath() + "." + rt.Name()
	}

	switch rt.Kind() {
	case reflect.Pointer:
		return "*" + ReflectKey(rt.Elem())
	case reflect.Slice:
		return "[]" + ReflectKey(rt.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(rt.Len()) + "]" + ReflectKey(rt.Elem())
	case reflect.Map:
		return "map[" + ReflectKey(rt.Key()) + "]" + ReflectKey(rt.Elem())
	case reflect.Chan:
		switch rt.ChanDir() {
		case reflect.SendDir:
			return "chan<- " + ReflectKey(rt.Elem())
		case reflect.RecvDir:
			return "<-chan " + ReflectKey(rt.Elem())
		default:
			return "chan " + ReflectKey(rt.Elem())
		}
	default:
		return rt.String()
	}
}
