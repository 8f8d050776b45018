package typedesc

import (
	"go/types"
)

// Top returns the universal top type (any).
func Top() types.Type {
	return types.Universe.Lookup("any").Type()
}

// IsTop reports whether t is the empty interface.
func IsTop(t types.Type) bool {
	iface, ok := types.Unalias(t).Underlying().(*types.Interface)
	return ok && iface.Empty()
}

// IsParameterized reports whether t is an instantiated generic type.
func IsParameterized(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	return ok && named.TypeArgs().Len() > 0
}

// IsGenericOrigin reports whether t is a generic declaration that has not
// been instantiated.
func IsGenericOrigin(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	return ok && named.TypeParams().Len() > 0 && named.TypeArgs().Len() == 0
}

// TypeArguments returns the type arguments of an instantiated type, in
// declaration order of the origin's type parameters.
func TypeArguments(t types.Type) []types.Type {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil
	}

	args := named.TypeArgs()
	out := make([]types.Type, args.Len())
	for i := range args.Len() {
		out[i] = args.At(i)
	}

	return out
}

// TypeParameters returns the slots declared by the origin of t.
func TypeParameters(t types.Type) []*types.TypeParam {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil
	}

	params := named.Origin().TypeParams()
	out := make([]*types.TypeParam, params.Len())
	for i := range params.Len() {
		out[i] = params.At(i)
	}

	return out
}

// Origin returns the raw (uninstantiated) type of t, or t itself when it
// is not a named type.
func Origin(t types.Type) types.Type {
	if named, ok := types.Unalias(t).(*types.Named); ok {
		return named.Origin()
	}

	return t
}

// ComponentType returns the element type of a pointer, slice, array or
// channel, and nil for anything else.
func ComponentType(t types.Type) types.Type {
	switch u := types.Unalias(t).Underlying().(type) {
	case *types.Pointer:
		return u.Elem()
	case *types.Slice:
		return u.Elem()
	case *types.Array:
		return u.Elem()
	case *types.Chan:
		return u.Elem()
	default:
		return nil
	}
}

// Deref strips every pointer level from t.
func Deref(t types.Type) types.Type {
	_, base := PointerDepth(t)

	return base
}

// PointerDepth returns the pointer depth and the final base type.
func PointerDepth(t types.Type) (depth int, base types.Type) {
	base = types.Unalias(t)
	for {
		p, ok := base.Underlying().(*types.Pointer)
		if !ok {
			return depth, base
		}

		depth++
		base = types.Unalias(p.Elem())
	}
}

// UpperBound returns the type an unbound slot defaults to: the single
// term of its constraint's type set when there is exactly one, the
// constraint itself when it carries methods, and Top otherwise.
func UpperBound(tp *types.TypeParam) types.Type {
	constraint := tp.Constraint()
	iface, ok := constraint.Underlying().(*types.Interface)
	if !ok {
		return constraint
	}

	if iface.Empty() {
		return Top()
	}

	if core := singleTerm(iface); core != nil {
		return core
	}

	if iface.NumMethods() > 0 {
		return constraint
	}

	return Top()
}

// singleTerm returns the only type of an interface's type set, or nil.
func singleTerm(iface *types.Interface) types.Type {
	if iface.NumMethods() > 0 || iface.NumEmbeddeds() != 1 {
		return nil
	}

	switch e := iface.EmbeddedType(0).(type) {
	case *types.Union:
		if e.Len() != 1 {
			return nil
		}
		return e.Term(0).Type()
	case *types.Interface:
		return singleTerm(e)
	default:
		if inner, ok := e.Underlying().(*types.Interface); ok {
			return singleTerm(inner)
		}
		return e
	}
}
