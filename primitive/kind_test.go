package primitive_test

import (
	"fmt"
	"math/big"
	"net/netip"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"object-synth/primitive"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type FloatEnum float32
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(FloatEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(uuid.UUID{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindString
	// KindPrimitiveEnum
	// KindPrimitiveEnum
	// KindPrimitiveEnum
	// KindDuration
	// KindTime
	// KindUUID
	// KindEnum(0)
}

func TestFromReflectType_Special(t *testing.T) {
	assert.Equal(t, primitive.KindBigInt, primitive.FromReflectType(reflect.TypeOf(big.Int{})))
	assert.Equal(t, primitive.KindBigFloat, primitive.FromReflectType(reflect.TypeOf(big.Float{})))
	assert.Equal(t, primitive.KindBigRat, primitive.FromReflectType(reflect.TypeOf(big.Rat{})))
	assert.Equal(t, primitive.KindAddr, primitive.FromReflectType(reflect.TypeOf(netip.Addr{})))
	assert.Equal(t, primitive.KindEnum(0), primitive.FromReflectType(nil))
	assert.Equal(t, primitive.KindEnum(0), primitive.FromReflectType(reflect.TypeOf([]int{})))
}

func TestUnderlying(t *testing.T) {
	type Level uint8
	type Label string

	assert.Equal(t, primitive.KindUint8, primitive.Underlying(reflect.TypeOf(Level(0))))
	assert.Equal(t, primitive.KindString, primitive.Underlying(reflect.TypeOf(Label(""))))
	assert.Equal(t, primitive.KindInt64, primitive.Underlying(reflect.TypeOf(int64(0))))
	assert.Equal(t, primitive.KindDuration, primitive.Underlying(reflect.TypeOf(time.Second)))
}

func TestKindEnum_Predicates(t *testing.T) {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		if k.IsInteger() || k.IsFloat() {
			assert.True(t, k.IsNumber(), k.String())
		}
		if k.IsSigned() || k.IsUnsigned() {
			assert.True(t, k.IsInteger(), k.String())
		}
	}

	assert.True(t, primitive.KindComplex64.IsComplex())
	assert.True(t, primitive.KindBigRat.IsBig())
	assert.False(t, primitive.KindString.IsNumber())
}

func TestKindEnum_IntRange(t *testing.T) {
	tests := []struct {
		kind   primitive.KindEnum
		lo, hi int64
	}{
		{kind: primitive.KindInt8, lo: -128, hi: 127},
		{kind: primitive.KindUint8, lo: 0, hi: 255},
		{kind: primitive.KindInt16, lo: -32768, hi: 32767},
		{kind: primitive.KindUint32, lo: 0, hi: 4294967295},
		{kind: primitive.KindInt64, lo: -9223372036854775808, hi: 9223372036854775807},
		{kind: primitive.KindUint64, lo: 0, hi: 9223372036854775807},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			lo, hi := tt.kind.IntRange()
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}

	assert.Panics(t, func() { primitive.KindString.IntRange() })
}
