package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypePath(t *testing.T) {
	tests := []struct {
		name      string
		path      TypePath
		want      string
		qualified string
	}{
		{name: "root", path: RootPath(), want: "", qualified: "Order"},
		{name: "field", path: RootPath().Field("Number"), want: "Number", qualified: "Order.Number"},
		{
			name:      "element field",
			path:      RootPath().Field("Lines").Element().Field("SKU"),
			want:      "Lines[].SKU",
			qualified: "Order.Lines[].SKU",
		},
		{name: "map key", path: RootPath().Field("Notes").Key(), want: "Notes[key]", qualified: "Order.Notes[key]"},
		{name: "map value", path: RootPath().Field("Notes").Value(), want: "Notes[value]", qualified: "Order.Notes[value]"},
		{name: "root element", path: RootPath().Element(), want: "[]", qualified: "Order[]"},
		{name: "nested elements", path: RootPath().Field("M").Element().Element(), want: "M[][]", qualified: "Order.M[][]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.String())
			assert.Equal(t, tt.qualified, tt.path.Qualified("Order"))
		})
	}
}

func TestTypePath_Immutable(t *testing.T) {
	base := RootPath().Field("Lines")
	_ = base.Element()
	_ = base.Field("SKU")

	assert.Equal(t, "Lines", base.String())
	assert.Equal(t, []string{"Lines"}, base.Segments())
	assert.False(t, base.IsRoot())
	assert.True(t, RootPath().IsRoot())
}
