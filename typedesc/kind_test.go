package typedesc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleKind_String() {
	for k := range Kind(KindTotal) {
		fmt.Println(k, k.IsStructural())
	}

	// Output:
	// invalid false
	// leaf false
	// object true
	// collection true
	// map true
	// array true
}

func TestKind_IsContainer(t *testing.T) {
	assert.False(t, KindLeaf.IsContainer())
	assert.False(t, KindObject.IsContainer())
	assert.True(t, KindCollection.IsContainer())
	assert.True(t, KindMap.IsContainer())
	assert.True(t, KindArray.IsContainer())
}
