package primitive

import (
	"math"
	"math/big"
	"net/netip"
	"reflect"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	KindString
	KindTime
	KindDuration
	KindUUID
	KindBigInt
	KindBigFloat
	KindBigRat
	KindAddr
	KindPrimitiveEnum // named type over any integer, float, boolean or string kind

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsComplex() bool {
	return k == KindComplex64 || k == KindComplex128
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr:
		return true
	}
}

// IsBig reports whether the kind is one of the math/big value types.
func (k KindEnum) IsBig() bool {
	return k == KindBigInt || k == KindBigFloat || k == KindBigRat
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint, KindUintptr:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// IntRange returns the range of values an integer kind can hold, clamped
// to int64.
func (k KindEnum) IntRange() (lo, hi int64) {
	if !k.IsInteger() {
		panic("only integer kinds have a range, but requested for: " + k.String())
	}

	bits := k.Bits()
	switch {
	case k.IsUnsigned() && bits >= 64:
		return 0, math.MaxInt64
	case k.IsUnsigned():
		return 0, int64(1)<<bits - 1
	case bits >= 64:
		return math.MinInt64, math.MaxInt64
	default:
		return -(int64(1) << (bits - 1)), int64(1)<<(bits-1) - 1
	}
}

var kindsByType = map[reflect.Type]KindEnum{
	reflect.TypeOf(int(0)):           KindInt,
	reflect.TypeOf(int8(0)):          KindInt8,
	reflect.TypeOf(int16(0)):         KindInt16,
	reflect.TypeOf(int32(0)):         KindInt32,
	reflect.TypeOf(int64(0)):         KindInt64,
	reflect.TypeOf(uint(0)):          KindUint,
	reflect.TypeOf(uint8(0)):         KindUint8,
	reflect.TypeOf(uint16(0)):        KindUint16,
	reflect.TypeOf(uint32(0)):        KindUint32,
	reflect.TypeOf(uint64(0)):        KindUint64,
	reflect.TypeOf(uintptr(0)):       KindUintptr,
	reflect.TypeOf(float32(0)):       KindFloat32,
	reflect.TypeOf(float64(0)):       KindFloat64,
	reflect.TypeOf(complex64(0)):     KindComplex64,
	reflect.TypeOf(complex128(0)):    KindComplex128,
	reflect.TypeOf(false):            KindBool,
	reflect.TypeOf(""):               KindString,
	reflect.TypeOf(time.Time{}):      KindTime,
	reflect.TypeOf(time.Duration(0)): KindDuration,
	reflect.TypeOf(uuid.UUID{}):      KindUUID,
	reflect.TypeOf(big.Int{}):        KindBigInt,
	reflect.TypeOf(big.Float{}):      KindBigFloat,
	reflect.TypeOf(big.Rat{}):        KindBigRat,
	reflect.TypeOf(netip.Addr{}):     KindAddr,
}

var kindsByReflectKind = map[reflect.Kind]KindEnum{
	reflect.Int:        KindInt,
	reflect.Int8:       KindInt8,
	reflect.Int16:      KindInt16,
	reflect.Int32:      KindInt32,
	reflect.Int64:      KindInt64,
	reflect.Uint:       KindUint,
	reflect.Uint8:      KindUint8,
	reflect.Uint16:     KindUint16,
	reflect.Uint32:     KindUint32,
	reflect.Uint64:     KindUint64,
	reflect.Uintptr:    KindUintptr,
	reflect.Float32:    KindFloat32,
	reflect.Float64:    KindFloat64,
	reflect.Complex64:  KindComplex64,
	reflect.Complex128: KindComplex128,
	reflect.Bool:       KindBool,
	reflect.String:     KindString,
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// check if true primitive type
	if k, ok := kindsByType[rtype]; ok {
		return k
	}

	// check if it's a primitive enum type
	if _, ok := kindsByReflectKind[rtype.Kind()]; ok {
		return KindPrimitiveEnum
	}

	return 0
}

// Underlying returns the kind of the primitive a type is built on: the
// kind itself for true primitives, the underlying kind for enums.
func Underlying(rtype reflect.Type) KindEnum {
	k := FromReflectType(rtype)
	if k != KindPrimitiveEnum {
		return k
	}

	return kindsByReflectKind[rtype.Kind()]
}
