package hints

import (
	"reflect"
)

// SlotState describes the current value of a slot.
type SlotState int

const (
	// SlotAbsent is a nil reference, an empty string or a zero struct or array.
	SlotAbsent SlotState = iota
	// SlotDefaultPrimitive is a numeric or boolean zero value.
	SlotDefaultPrimitive
	// SlotPresent is any other value.
	SlotPresent
)

func (s SlotState) String() string {
	switch s {
	case SlotAbsent:
		return "absent"
	case SlotDefaultPrimitive:
		return "default_primitive"
	case SlotPresent:
		return "present"
	default:
		return "unknown"
	}
}

// StateOf classifies a value.
func StateOf(v reflect.Value) SlotState {
	if !v.IsValid() {
		return SlotAbsent
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			return SlotAbsent
		}
		return SlotPresent

	case reflect.String, reflect.Struct, reflect.Array:
		if v.IsZero() {
			return SlotAbsent
		}
		return SlotPresent

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		if v.IsZero() {
			return SlotDefaultPrimitive
		}
		return SlotPresent

	default:
		return SlotPresent
	}
}
