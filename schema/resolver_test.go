package schema

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-synth/typedesc"
)

func fieldType(t *testing.T, named types.Type, name string) types.Type {
	t.Helper()

	st, ok := typedesc.Origin(named).Underlying().(*types.Struct)
	require.True(t, ok)

	for i := range st.NumFields() {
		if st.Field(i).Name() == name {
			return st.Field(i).Type()
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", typedesc.Key(named), name)

	return nil
}

func TestResolver_SlotFromBinding(t *testing.T) {
	pair := lookupType(t, "Pair").(*types.Named)
	r := NewResolver(loader(t).Context())

	b := Bind(evalType(t, "Pair[string, int]"), EmptyBinding())

	left, _, err := r.Resolve(fieldType(t, pair, "Left"), pair, b)
	require.NoError(t, err)
	assert.True(t, types.Identical(types.Typ[types.String], left))

	right, _, err := r.Resolve(fieldType(t, pair, "Right"), pair, b)
	require.NoError(t, err)
	assert.True(t, types.Identical(types.Typ[types.Int], right))
}

func TestResolver_UnboundSlotUsesUpperBound(t *testing.T) {
	r := NewResolver(nil)

	pair := lookupType(t, "Pair").(*types.Named)
	left, _, err := r.Resolve(fieldType(t, pair, "Left"), pair, EmptyBinding())
	require.NoError(t, err)
	assert.True(t, typedesc.IsTop(left))

	bounded := lookupType(t, "Bounded").(*types.Named)
	value, _, err := r.Resolve(fieldType(t, bounded, "Value"), bounded, nil)
	require.NoError(t, err)
	assert.True(t, types.Identical(types.Typ[types.Int64], value))

	labeled := lookupType(t, "Labeled").(*types.Named)
	label, _, err := r.Resolve(fieldType(t, labeled, "Label"), labeled, nil)
	require.NoError(t, err)
	assert.Equal(t, "object-synth/fixtures.Stringer", typedesc.Key(label))
}

func TestResolver_ForeignSlot(t *testing.T) {
	r := NewResolver(nil)

	pair := lookupType(t, "Pair").(*types.Named)
	item := lookupType(t, "Item").(*types.Named)

	_, _, err := r.Resolve(fieldType(t, pair, "Left"), item, EmptyBinding())
	require.ErrorIs(t, err, ErrForeignSlot)

	_, _, err = r.Resolve(fieldType(t, pair, "Left"), nil, EmptyBinding())
	require.ErrorIs(t, err, ErrForeignSlot)
}

func TestResolver_NestedMatchesCompiler(t *testing.T) {
	nested := lookupType(t, "Nested").(*types.Named)
	r := NewResolver(loader(t).Context())

	b := Bind(evalType(t, "Nested[int, string]"), EmptyBinding())

	data, child, err := r.Resolve(fieldType(t, nested, "Data"), nested, b)
	require.NoError(t, err)

	want := evalType(t, "List[Pair[Item[int], Foo[List[string]]]]")
	assert.True(t, types.Identical(want, data), "got %s", typedesc.Key(data))
	assert.Equal(t, typedesc.Key(want), typedesc.Key(data))

	got, ok := child.Lookup(Slot{Owner: typedesc.ID{PkgPath: fixturesPkg, Name: "List"}, Name: "E"})
	require.True(t, ok)
	assert.Equal(t, "object-synth/fixtures.Pair[object-synth/fixtures.Item[int],object-synth/fixtures.Foo[object-synth/fixtures.List[string]]]", typedesc.Key(got))
}

func TestResolver_CompositesKeepIdentityWhenUnchanged(t *testing.T) {
	r := NewResolver(nil)

	slice := types.NewSlice(types.Typ[types.String])
	got, err := r.Substitute(slice, nil, EmptyBinding())
	require.NoError(t, err)
	assert.Same(t, slice, got)

	box := lookupType(t, "Box").(*types.Named)
	b := Bind(evalType(t, "Box[bool]"), EmptyBinding())

	index, err := r.Substitute(fieldType(t, box, "Index"), box, b)
	require.NoError(t, err)
	assert.Equal(t, "map[string]bool", typedesc.Key(index))

	array, err := r.Substitute(fieldType(t, box, "Array"), box, b)
	require.NoError(t, err)
	assert.Equal(t, "[2]bool", typedesc.Key(array))

	ptr, err := r.Substitute(fieldType(t, box, "Ptr"), box, b)
	require.NoError(t, err)
	assert.Equal(t, "*bool", typedesc.Key(ptr))
}

func TestBind_NonGenericKeepsEnclosing(t *testing.T) {
	b := NewBinding(map[Slot]types.Type{{Owner: pairID, Name: "L"}: types.Typ[types.String]})

	assert.Same(t, b, Bind(lookupType(t, "Person"), b))
	assert.Same(t, b, Bind(types.Typ[types.Int], b))
}
