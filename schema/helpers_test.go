package schema

import (
	"go/types"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"object-synth/internal/analyze"
)

const fixturesPkg = "object-synth/fixtures"

var loadFixtures = sync.OnceValues(func() (*analyze.Loader, error) {
	l := analyze.NewLoader()
	_, err := l.LoadPackages(fixturesPkg)

	return l, err
})

func loader(t *testing.T) *analyze.Loader {
	t.Helper()

	l, err := loadFixtures()
	require.NoError(t, err)

	return l
}

func evalType(t *testing.T, expr string) types.Type {
	t.Helper()

	typ, err := loader(t).Eval(fixturesPkg, expr)
	require.NoError(t, err)

	return typ
}

func lookupType(t *testing.T, name string) types.Type {
	t.Helper()

	typ, err := loader(t).Lookup(fixturesPkg, name)
	require.NoError(t, err)

	return typ
}

func newFactory(t *testing.T, opts ...Option) *Factory {
	t.Helper()

	return NewFactory(append([]Option{WithContext(loader(t).Context())}, opts...)...)
}

func build(t *testing.T, expr string, opts ...Option) *Node {
	t.Helper()

	root, err := newFactory(t, opts...).Build(evalType(t, expr))
	require.NoError(t, err)

	return root
}

func mustLookup(t *testing.T, root *Node, path string) *Node {
	t.Helper()

	n := root.Lookup(path)
	require.NotNil(t, n, "no node at %q", path)

	return n
}
