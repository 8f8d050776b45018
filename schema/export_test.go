package schema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func TestExport_Pair(t *testing.T) {
	doc := Export(build(t, "Pair[string, int]"))

	assert.Equal(t, "object", doc.Kind)
	assert.Equal(t, "root", doc.Role)
	assert.Equal(t, "object-synth/fixtures.Pair[string,int]", doc.Type)
	assert.Empty(t, doc.Declared)
	assert.Equal(t, map[string]string{
		"object-synth/fixtures.Pair.L": "string",
		"object-synth/fixtures.Pair.R": "int",
	}, doc.Bindings)

	require.Len(t, doc.Children, 2)
	assert.Equal(t, "Left", doc.Children[0].Path)
	assert.Equal(t, "L", doc.Children[0].Declared)
	assert.Equal(t, "string", doc.Children[0].Type)
	assert.Equal(t, "object-synth/fixtures.Pair", doc.Children[0].Owner)
	assert.Empty(t, doc.Children[0].Bindings, "inherited entries are not repeated")
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(build(t, "Linked"))
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Children, 2)
	assert.Equal(t, "Next", doc.Children[1].Path)
	assert.True(t, doc.Children[1].Cyclic)
	assert.Contains(t, string(data), `"cyclic": true`)
}

func TestMarshalYAML(t *testing.T) {
	data, err := MarshalYAML(build(t, "Box[int]"))
	require.NoError(t, err)

	var doc Document
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, "object-synth/fixtures.Box[int]", doc.Type)
	require.Len(t, doc.Children, 4)
	assert.Equal(t, "map", doc.Children[3].Kind)
	assert.Equal(t, "Index[value]", doc.Children[3].Children[1].Path)
}

func TestMarshalMsgpack(t *testing.T) {
	data, err := MarshalMsgpack(build(t, "Pair[string, int]"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, msgpack.Unmarshal(data, &doc))

	assert.Equal(t, "object-synth/fixtures.Pair[string,int]", doc["type"])
	assert.Equal(t, "object", doc["kind"])
	assert.Len(t, doc["children"], 2)
	assert.NotContains(t, doc, "cyclic", "omitempty is honored")
}
