package populate

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"object-synth/generator"
	"object-synth/schema"
	"object-synth/selector"
	"object-synth/settings"
)

func graphOf[T any](t *testing.T) *schema.Node {
	t.Helper()

	root, err := schema.NewFactory().BuildReflect(reflect.TypeFor[T]())
	require.NoError(t, err)

	return root
}

func newEngine(s settings.Settings, selectors ...selector.Selector) *Engine {
	return NewEngine(s, selector.NewRegistry(selectors...))
}

func create[T any](t *testing.T, e *Engine, seed uint64) (T, Result) {
	t.Helper()

	v, res, err := e.Create(graphOf[T](t), reflect.TypeFor[T](), generator.NewRandom(seed))
	require.NoError(t, err)

	out, _ := v.Interface().(T)

	return out, res
}

func createErr[T any](t *testing.T, e *Engine) error {
	t.Helper()

	_, _, err := e.Create(graphOf[T](t), reflect.TypeFor[T](), generator.NewRandom(1))

	return err
}

func fill[T any](t *testing.T, e *Engine, target *T) Result {
	t.Helper()

	res, err := e.Populate(graphOf[T](t), reflect.ValueOf(target).Elem(), generator.NewRandom(1))
	require.NoError(t, err)

	return res
}

func ptr[T any](v T) *T {
	return &v
}
