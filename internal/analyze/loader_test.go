package analyze

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-synth/typedesc"
)

const fixturesPkg = "object-synth/fixtures"

func TestLoader_LoadPackages(t *testing.T) {
	loader := NewLoader()
	graph, err := loader.LoadPackages(fixturesPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	// Check that packages were loaded
	require.Contains(t, graph.Packages, fixturesPkg)
	assert.Equal(t, "fixtures", graph.Packages[fixturesPkg].Name)

	// Check that types were extracted
	assert.Contains(t, graph.Types, typedesc.ID{PkgPath: fixturesPkg, Name: "Person"})
	assert.Contains(t, graph.Types, typedesc.ID{PkgPath: fixturesPkg, Name: "Pair"})
	assert.Same(t, graph, loader.Graph())
}

func TestLoader_TypeInfo(t *testing.T) {
	loader := NewLoader()
	graph, err := loader.LoadPackages(fixturesPkg)
	require.NoError(t, err)

	pair := graph.GetType(typedesc.ID{PkgPath: fixturesPkg, Name: "Pair"})
	require.NotNil(t, pair)
	assert.Equal(t, typedesc.KindObject, pair.Kind)
	assert.True(t, pair.IsGeneric())
	assert.Equal(t, []string{"L", "R"}, pair.Params)

	person := graph.GetType(typedesc.ID{PkgPath: fixturesPkg, Name: "Person"})
	require.NotNil(t, person)
	assert.False(t, person.IsGeneric())
	assert.Empty(t, person.Params)

	collection := graph.GetType(typedesc.ID{PkgPath: fixturesPkg, Name: "Collection"})
	require.NotNil(t, collection)
	assert.Equal(t, typedesc.KindCollection, collection.Kind)

	// interfaces are indexed as leaves
	stringer := graph.GetType(typedesc.ID{PkgPath: fixturesPkg, Name: "Stringer"})
	require.NotNil(t, stringer)
	assert.Equal(t, typedesc.KindLeaf, stringer.Kind)

	assert.Nil(t, graph.GetType(typedesc.ID{PkgPath: fixturesPkg, Name: "missing"}))
}

func TestLoader_IDsSorted(t *testing.T) {
	loader := NewLoader()
	graph, err := loader.LoadPackages(fixturesPkg)
	require.NoError(t, err)

	ids := graph.IDs()
	require.NotEmpty(t, ids)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1].String(), ids[i].String())
	}
}

func TestLoader_LoadErrors(t *testing.T) {
	_, err := NewLoader().LoadPackages("object-synth/does-not-exist")
	require.Error(t, err)
}

func TestLoader_Lookup(t *testing.T) {
	loader := NewLoader()
	_, err := loader.LoadPackages(fixturesPkg)
	require.NoError(t, err)

	pair, err := loader.Lookup(fixturesPkg, "Pair")
	require.NoError(t, err)
	assert.True(t, typedesc.IsGenericOrigin(pair))

	_, err = loader.Lookup(fixturesPkg, "Nope")
	require.Error(t, err)
}

func TestLoader_Instantiate(t *testing.T) {
	loader := NewLoader()
	_, err := loader.LoadPackages(fixturesPkg)
	require.NoError(t, err)

	pair, err := loader.Lookup(fixturesPkg, "Pair")
	require.NoError(t, err)

	inst, err := loader.Instantiate(pair, types.Typ[types.String], types.Typ[types.Int])
	require.NoError(t, err)
	assert.Equal(t, "object-synth/fixtures.Pair[string,int]", typedesc.Key(inst))

	again, err := loader.Instantiate(pair, types.Typ[types.String], types.Typ[types.Int])
	require.NoError(t, err)
	assert.Same(t, inst, again, "instantiations are deduplicated by the shared context")

	_, err = loader.Instantiate(pair, types.Typ[types.String])
	require.Error(t, err)

	person, err := loader.Lookup(fixturesPkg, "Person")
	require.NoError(t, err)
	_, err = loader.Instantiate(person, types.Typ[types.String])
	require.Error(t, err)

	bounded, err := loader.Lookup(fixturesPkg, "Bounded")
	require.NoError(t, err)
	_, err = loader.Instantiate(bounded, types.Typ[types.String])
	require.Error(t, err, "constraint violations are reported")
}

func TestLoader_Eval(t *testing.T) {
	loader := NewLoader()
	_, err := loader.LoadPackages(fixturesPkg)
	require.NoError(t, err)

	tests := []struct {
		expr string
		want string
	}{
		{expr: "Pair[string, int]", want: "object-synth/fixtures.Pair[string,int]"},
		{expr: "[]Item[bool]", want: "[]object-synth/fixtures.Item[bool]"},
		{expr: "map[string]*Phone", want: "map[string]*object-synth/fixtures.Phone"},
		{expr: "Nested[int, Pair[byte, rune]]", want: "object-synth/fixtures.Nested[int,object-synth/fixtures.Pair[uint8,int32]]"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			typ, err := loader.Eval(fixturesPkg, tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typedesc.Key(typ))
		})
	}

	_, err = loader.Eval(fixturesPkg, "1 + 2")
	require.Error(t, err, "values are not types")

	_, err = loader.Eval("object-synth/other", "int")
	require.Error(t, err)
}

func TestBasic(t *testing.T) {
	str, err := Basic("string")
	require.NoError(t, err)
	assert.Equal(t, types.Typ[types.String], str)

	anyType, err := Basic("any")
	require.NoError(t, err)
	assert.True(t, typedesc.IsTop(anyType))

	_, err = Basic("Person")
	require.Error(t, err)
}
