package schema

import (
	"fmt"
	"go/types"

	"object-synth/typedesc"
)

// Resolver substitutes generic slots in declared types.
type Resolver struct {
	ctxt *types.Context
}

// NewResolver creates a Resolver. Instantiations are deduplicated through
// ctxt, which may be shared with a loader; nil creates a private context.
func NewResolver(ctxt *types.Context) *Resolver {
	if ctxt == nil {
		ctxt = types.NewContext()
	}

	return &Resolver{ctxt: ctxt}
}

// Resolve returns the effective type of declared in the scope of owner
// (the origin of the type declaring the member, or nil) and the binding
// its children resolve against.
func (r *Resolver) Resolve(declared types.Type, owner *types.Named, enclosing *Binding) (types.Type, *Binding, error) {
	if enclosing == nil {
		enclosing = EmptyBinding()
	}

	effective, err := r.Substitute(declared, owner, enclosing)
	if err != nil {
		return nil, nil, err
	}

	return effective, Bind(effective, enclosing), nil
}

// Bind extends enclosing with the type arguments of t (looking through
// pointers). Non-generic types return enclosing unchanged.
func Bind(t types.Type, enclosing *Binding) *Binding {
	named, ok := typedesc.Deref(t).(*types.Named)
	if !ok || named.TypeArgs().Len() == 0 {
		return enclosing
	}

	id := typedesc.IDOf(named)
	params := named.Origin().TypeParams()
	args := named.TypeArgs()

	entries := make(map[Slot]types.Type, args.Len())
	for i := range args.Len() {
		entries[Slot{Owner: id, Name: params.At(i).Obj().Name()}] = args.At(i)
	}

	return enclosing.Extend(entries)
}

// Substitute replaces every slot in t with its bound type. Slots must be
// declared by owner; unbound ones fall back to their upper bound.
func (r *Resolver) Substitute(t types.Type, owner *types.Named, b *Binding) (types.Type, error) {
	switch tt := types.Unalias(t).(type) {
	case *types.TypeParam:
		return r.lookup(tt, owner, b)

	case *types.Named:
		targs := tt.TypeArgs()
		if targs.Len() == 0 {
			return tt, nil
		}

		args := make([]types.Type, targs.Len())
		changed := false
		for i := range targs.Len() {
			arg, err := r.Substitute(targs.At(i), owner, b)
			if err != nil {
				return nil, err
			}
			args[i] = arg
			changed = changed || arg != targs.At(i)
		}

		if !changed {
			return tt, nil
		}

		inst, err := types.Instantiate(r.ctxt, tt.Origin(), args, false)
		if err != nil {
			return nil, fmt.Errorf("instantiate %s: %w", typedesc.Key(tt.Origin()), err)
		}

		return inst, nil

	case *types.Pointer:
		elem, err := r.Substitute(tt.Elem(), owner, b)
		if err != nil {
			return nil, err
		}
		if elem == tt.Elem() {
			return tt, nil
		}
		return types.NewPointer(elem), nil

	case *types.Slice:
		elem, err := r.Substitute(tt.Elem(), owner, b)
		if err != nil {
			return nil, err
		}
		if elem == tt.Elem() {
			return tt, nil
		}
		return types.NewSlice(elem), nil

	case *types.Array:
		elem, err := r.Substitute(tt.Elem(), owner, b)
		if err != nil {
			return nil, err
		}
		if elem == tt.Elem() {
			return tt, nil
		}
		return types.NewArray(elem, tt.Len()), nil

	case *types.Chan:
		elem, err := r.Substitute(tt.Elem(), owner, b)
		if err != nil {
			return nil, err
		}
		if elem == tt.Elem() {
			return tt, nil
		}
		return types.NewChan(tt.Dir(), elem), nil

	case *types.Map:
		key, err := r.Substitute(tt.Key(), owner, b)
		if err != nil {
			return nil, err
		}
		elem, err := r.Substitute(tt.Elem(), owner, b)
		if err != nil {
			return nil, err
		}
		if key == tt.Key() && elem == tt.Elem() {
			return tt, nil
		}
		return types.NewMap(key, elem), nil

	case *types.Struct:
		return r.substituteStruct(tt, owner, b)

	default:
		// basic types, interfaces and signatures are leaves
		return tt, nil
	}
}

func (r *Resolver) lookup(tp *types.TypeParam, owner *types.Named, b *Binding) (types.Type, error) {
	if !declares(owner, tp) {
		ownerName := "<none>"
		if owner != nil {
			ownerName = typedesc.IDOf(owner).String()
		}
		return nil, fmt.Errorf("%w: %s in %s", ErrForeignSlot, tp.Obj().Name(), ownerName)
	}

	if t, ok := b.Lookup(Slot{Owner: typedesc.IDOf(owner), Name: tp.Obj().Name()}); ok {
		return t, nil
	}

	return typedesc.UpperBound(tp), nil
}

func (r *Resolver) substituteStruct(st *types.Struct, owner *types.Named, b *Binding) (types.Type, error) {
	fields := make([]*types.Var, st.NumFields())
	tags := make([]string, st.NumFields())
	changed := false

	for i := range st.NumFields() {
		f := st.Field(i)
		ft, err := r.Substitute(f.Type(), owner, b)
		if err != nil {
			return nil, err
		}

		fields[i] = f
		if ft != f.Type() {
			fields[i] = types.NewField(f.Pos(), f.Pkg(), f.Name(), ft, f.Embedded())
			changed = true
		}
		tags[i] = st.Tag(i)
	}

	if !changed {
		return st, nil
	}

	return types.NewStruct(fields, tags), nil
}

// declares reports whether tp is one of the slots of owner's declaration.
func declares(owner *types.Named, tp *types.TypeParam) bool {
	if owner == nil {
		return false
	}

	params := owner.Origin().TypeParams()
	for i := range params.Len() {
		if params.At(i) == tp {
			return true
		}
	}

	return false
}
