package generator

import (
	"fmt"
	"math"
	"math/big"
	"net/netip"
	"reflect"
	"time"

	"github.com/google/uuid"

	"object-synth/primitive"
)

// Limits bound the values produced by the Catalog.
type Limits struct {
	StringMin int
	StringMax int
	IntMin    int64
	IntMax    int64
	FloatMin  float64
	FloatMax  float64
}

// DefaultLimits are the limits used when none are configured.
var DefaultLimits = Limits{
	StringMin: 3,
	StringMax: 10,
	IntMin:    1,
	IntMax:    10000,
	FloatMin:  1,
	FloatMax:  10000,
}

var (
	timeMin = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	timeMax = time.Date(2099, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// Catalog generates leaf values by type.
type Catalog struct {
	limits Limits
}

// NewCatalog creates a Catalog.
func NewCatalog(limits Limits) *Catalog {
	return &Catalog{limits: limits}
}

// Supports reports whether the catalog can generate values of rt.
func (c *Catalog) Supports(rt reflect.Type) bool {
	return primitive.FromReflectType(rt) != 0
}

// Generate returns a new value of type rt. The second result is false when
// rt is not a supported leaf type.
func (c *Catalog) Generate(rt reflect.Type, r *Random) (reflect.Value, bool, error) {
	kind := primitive.Underlying(rt)
	if kind == 0 {
		return reflect.Value{}, false, nil
	}

	v := reflect.New(rt).Elem()

	switch {
	case kind.IsSigned() || kind == primitive.KindDuration:
		v.SetInt(c.integer(kind, r))
	case kind.IsUnsigned():
		v.SetUint(uint64(c.integer(kind, r)))
	case kind.IsFloat():
		v.SetFloat(c.float(kind, r))
	case kind.IsComplex():
		v.SetComplex(complex(c.float(primitive.KindFloat32, r), c.float(primitive.KindFloat32, r)))
	}

	switch kind {
	case primitive.KindBool:
		v.SetBool(r.Bool())
	case primitive.KindString:
		v.SetString(r.AlphaString(c.limits.StringMin, c.limits.StringMax))
	case primitive.KindTime:
		v.Set(reflect.ValueOf(time.Unix(r.IntRange(timeMin, timeMax), 0).UTC()))
	case primitive.KindUUID:
		id, err := uuid.NewRandomFromReader(r)
		if err != nil {
			return reflect.Value{}, true, fmt.Errorf("generate uuid: %w", err)
		}
		v.Set(reflect.ValueOf(id))
	case primitive.KindBigInt:
		v.Set(reflect.ValueOf(big.NewInt(r.IntRange(c.limits.IntMin, c.limits.IntMax))).Elem())
	case primitive.KindBigFloat:
		v.Set(reflect.ValueOf(big.NewFloat(r.FloatRange(c.limits.FloatMin, c.limits.FloatMax))).Elem())
	case primitive.KindBigRat:
		v.Set(reflect.ValueOf(big.NewRat(r.IntRange(c.limits.IntMin, c.limits.IntMax), r.IntRange(1, 100))).Elem())
	case primitive.KindAddr:
		v.Set(reflect.ValueOf(netip.AddrFrom4([4]byte{10, byte(r.IntN(256)), byte(r.IntN(256)), byte(1 + r.IntN(254))})))
	}

	return v, true, nil
}

// integer returns a value within the limits, clamped to what kind can hold.
func (c *Catalog) integer(kind primitive.KindEnum, r *Random) int64 {
	if kind == primitive.KindDuration {
		return int64(time.Duration(r.IntRange(c.limits.IntMin, c.limits.IntMax)) * time.Second)
	}

	lo, hi := kind.IntRange()

	return r.IntRange(max(c.limits.IntMin, lo), min(c.limits.IntMax, hi))
}

func (c *Catalog) float(kind primitive.KindEnum, r *Random) float64 {
	lo, hi := c.limits.FloatMin, c.limits.FloatMax
	if kind == primitive.KindFloat32 {
		lo = max(lo, -math.MaxFloat32)
		hi = min(hi, math.MaxFloat32)
	}

	return r.FloatRange(lo, hi)
}
