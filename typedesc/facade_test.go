package typedesc_test

import (
	"go/types"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-synth/fixtures"
	"object-synth/internal/analyze"
	"object-synth/typedesc"
)

const fixturesPkg = "object-synth/fixtures"

var loadFixtures = sync.OnceValues(func() (*analyze.Loader, error) {
	l := analyze.NewLoader()
	_, err := l.LoadPackages(fixturesPkg)

	return l, err
})

func evalType(t *testing.T, expr string) types.Type {
	t.Helper()

	l, err := loadFixtures()
	require.NoError(t, err)

	typ, err := l.Eval(fixturesPkg, expr)
	require.NoError(t, err)

	return typ
}

func lookupType(t *testing.T, name string) types.Type {
	t.Helper()

	l, err := loadFixtures()
	require.NoError(t, err)

	typ, err := l.Lookup(fixturesPkg, name)
	require.NoError(t, err)

	return typ
}

func typeParam(t *testing.T, generic string, i int) *types.TypeParam {
	t.Helper()

	params := typedesc.TypeParameters(lookupType(t, generic))
	require.Greater(t, len(params), i)

	return params[i]
}

func TestGenericPredicates(t *testing.T) {
	origin := lookupType(t, "Pair")
	inst := evalType(t, "Pair[string, int]")
	plain := evalType(t, "Person")

	assert.True(t, typedesc.IsGenericOrigin(origin))
	assert.False(t, typedesc.IsParameterized(origin))

	assert.True(t, typedesc.IsParameterized(inst))
	assert.False(t, typedesc.IsGenericOrigin(inst))
	assert.True(t, types.Identical(origin, typedesc.Origin(inst)))

	assert.False(t, typedesc.IsParameterized(plain))
	assert.False(t, typedesc.IsGenericOrigin(plain))
	assert.Same(t, plain, typedesc.Origin(plain))

	args := typedesc.TypeArguments(inst)
	require.Len(t, args, 2)
	assert.Equal(t, "string", typedesc.Key(args[0]))
	assert.Equal(t, "int", typedesc.Key(args[1]))
	assert.Empty(t, typedesc.TypeArguments(plain))
	assert.Empty(t, typedesc.TypeArguments(types.Typ[types.Int]))

	params := typedesc.TypeParameters(inst)
	require.Len(t, params, 2)
	assert.Equal(t, "L", params[0].Obj().Name())
	assert.Equal(t, "R", params[1].Obj().Name())
}

func TestComponentTypeAndDeref(t *testing.T) {
	assert.Equal(t, "string", typedesc.Key(typedesc.ComponentType(evalType(t, "[]string"))))
	assert.Equal(t, "int", typedesc.Key(typedesc.ComponentType(evalType(t, "[3]int"))))
	assert.Equal(t, "object-synth/fixtures.Item[bool]", typedesc.Key(typedesc.ComponentType(evalType(t, "Collection[Item[bool]]"))))
	assert.Nil(t, typedesc.ComponentType(evalType(t, "Person")))

	depth, base := typedesc.PointerDepth(evalType(t, "**Person"))
	assert.Equal(t, 2, depth)
	assert.Equal(t, "object-synth/fixtures.Person", typedesc.Key(base))
	assert.Equal(t, "object-synth/fixtures.Person", typedesc.Key(typedesc.Deref(evalType(t, "*Person"))))
}

func TestUpperBound(t *testing.T) {
	assert.True(t, typedesc.IsTop(typedesc.UpperBound(typeParam(t, "Pair", 0))))
	assert.Equal(t, "int64", typedesc.Key(typedesc.UpperBound(typeParam(t, "Bounded", 0))))
	assert.Equal(t, "object-synth/fixtures.Stringer", typedesc.Key(typedesc.UpperBound(typeParam(t, "Labeled", 0))))
	assert.True(t, typedesc.IsTop(typedesc.UpperBound(typeParam(t, "Lookup", 0))), "comparable has no single term")
}

func TestKey_StaticMatchesReflect(t *testing.T) {
	tests := []struct {
		expr string
		rt   reflect.Type
	}{
		{expr: "Pair[string, int]", rt: reflect.TypeFor[fixtures.Pair[string, int]]()},
		{expr: "Pair[Item[int], []Foo[bool]]", rt: reflect.TypeFor[fixtures.Pair[fixtures.Item[int], []fixtures.Foo[bool]]]()},
		{expr: "map[string]*Phone", rt: reflect.TypeFor[map[string]*fixtures.Phone]()},
		{expr: "[2]Triplet[byte, rune, any]", rt: reflect.TypeFor[[2]fixtures.Triplet[byte, rune, any]]()},
		{expr: "Lookup[int, Collection[string]]", rt: reflect.TypeFor[fixtures.Lookup[int, fixtures.Collection[string]]]()},
		{expr: "Person", rt: reflect.TypeFor[fixtures.Person]()},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			static := evalType(t, tt.expr)

			assert.Equal(t, typedesc.ReflectKey(tt.rt), typedesc.Key(static))
			assert.Equal(t, typedesc.Key(static), typedesc.Key(typedesc.FromReflect(tt.rt)))
		})
	}
}

func TestIDOf(t *testing.T) {
	assert.Equal(t, typedesc.ID{PkgPath: fixturesPkg, Name: "Pair"}, typedesc.IDOf(evalType(t, "Pair[string, int]")))
	assert.Equal(t, "object-synth/fixtures.Pair", typedesc.IDOf(lookupType(t, "Pair")).String())
	assert.True(t, typedesc.IDOf(evalType(t, "[]int")).IsZero())
	assert.Equal(t, "error", typedesc.IDOf(evalType(t, "error")).String())
}

func TestClassifier(t *testing.T) {
	for expr, want := range map[string]typedesc.Kind{
		"Person":            typedesc.KindObject,
		"*Phone":            typedesc.KindObject,
		"Collection[int]":   typedesc.KindCollection,
		"Lookup[int, bool]": typedesc.KindMap,
		"[3]float64":        typedesc.KindArray,
		"Stringer":          typedesc.KindLeaf,
		"string":            typedesc.KindLeaf,
		"any":               typedesc.KindLeaf,
	} {
		assert.Equal(t, want, typedesc.Classify(evalType(t, expr)), expr)
	}

	assert.Equal(t, typedesc.KindInvalid, typedesc.Classify(nil))

	custom := typedesc.NewClassifier("object-synth/fixtures.Phone")
	assert.Equal(t, typedesc.KindLeaf, custom.Classify(evalType(t, "*Phone")))
	assert.True(t, custom.IsLeafType(evalType(t, "Phone")))
	assert.False(t, typedesc.DefaultClassifier.IsLeafType(evalType(t, "Phone")))
}
