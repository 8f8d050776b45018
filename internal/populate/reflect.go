package populate

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"object-synth/typedesc"
)

// shapes maps structural kinds to the reflect kind their base value has.
var shapes = map[typedesc.Kind]reflect.Kind{
	typedesc.KindObject:     reflect.Struct,
	typedesc.KindCollection: reflect.Slice,
	typedesc.KindArray:      reflect.Array,
	typedesc.KindMap:        reflect.Map,
}

// ptrDepthAndBase returns the pointer depth and the final base type.
func ptrDepthAndBase(t reflect.Type) (depth int, base reflect.Type) {
	depth, base = 0, t
	for base.Kind() == reflect.Pointer {
		depth++
		base = base.Elem()
	}

	return
}

// deref follows the pointers of v. It reports false at the first nil.
func deref(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}

	return v, true
}

// alloc follows the pointers of v, allocating every nil level.
func alloc(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}

	return v
}

// convert turns x into a value of type t. Untyped nil becomes the zero
// value; a value of the pointer's base type is stored behind a new pointer.
func convert(t reflect.Type, x any) (reflect.Value, bool) {
	rv := reflect.ValueOf(x)
	if !rv.IsValid() {
		return reflect.Zero(t), true
	}

	switch from := rv.Type(); {
	case from.AssignableTo(t):
		return rv, true
	case t.Kind() == reflect.Pointer && from.AssignableTo(t.Elem()):
		p := reflect.New(t.Elem())
		p.Elem().Set(rv)
		return p, true
	case convertible(from, t):
		return rv.Convert(t), true
	default:
		return reflect.Value{}, false
	}
}

// convertible excludes the conversions reflect allows but that would not
// preserve the value: integers to strings and slices to arrays.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}

	if to.Kind() == reflect.String && from.Kind() != reflect.String {
		return false
	}

	_, base := ptrDepthAndBase(to)

	return from.Kind() != reflect.Slice || base.Kind() != reflect.Array
}

// sortedKeys returns the keys of a map in a stable order.
func sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	names := make(map[int]string, len(keys))
	idx := make([]int, len(keys))
	for i, k := range keys {
		idx[i] = i
		names[i] = fmt.Sprintf("%#v", k.Interface())
	}

	slices.SortFunc(idx, func(a, b int) int {
		return strings.Compare(names[a], names[b])
	})

	out := make([]reflect.Value, len(keys))
	for i, j := range idx {
		out[i] = keys[j]
	}

	return out
}
