package values

import (
	"encoding"
	"reflect"

	"github.com/spf13/pflag"
)

// Value is the interface of all flag values: the pflag one.
type Value = pflag.Value

// BoolFlag is implemented by values that need no argument on the command line.
type BoolFlag interface {
	Value
	IsBoolFlag() bool
}

// NewValue returns a flag value writing into val, or nil if the type of val
// is not supported. Pointers are allocated as needed.
//
// In order: types implementing Value, types implementing
// encoding.TextUnmarshaler, then basic kinds and slices of them.
func NewValue(val reflect.Value) Value {
	if val.Kind() == reflect.Ptr && val.IsNil() && val.CanSet() {
		val.Set(reflect.New(val.Type().Elem()))
	}

	if val.CanInterface() {
		if v, ok := val.Interface().(Value); ok && val.Kind() == reflect.Ptr {
			return v
		}
	}

	if val.CanAddr() && val.Addr().CanInterface() {
		ptr := val.Addr().Interface()
		if v, ok := ptr.(Value); ok {
			return v
		}
		if unmarshaler, ok := ptr.(encoding.TextUnmarshaler); ok {
			return &textValue{target: unmarshaler}
		}
	}

	if val.Kind() == reflect.Ptr {
		return NewValue(val.Elem())
	}

	if !isSupported(val.Type()) || !val.CanSet() {
		return nil
	}

	return &reflectValue{value: val}
}

// IsBool reports whether the value takes no argument on the command line.
func IsBool(val Value) bool {
	if boolFlag, ok := val.(BoolFlag); ok {
		return boolFlag.IsBoolFlag()
	}

	return false
}

// IsSlice reports whether the value accumulates its arguments.
func IsSlice(val Value) bool {
	if reflective, ok := val.(*reflectValue); ok {
		return reflective.value.Kind() == reflect.Slice
	}

	if validated, ok := val.(*Validated); ok {
		return IsSlice(validated.Value)
	}

	return false
}

var (
	valueType     = reflect.TypeOf((*Value)(nil)).Elem()
	unmarshalType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Supports reports whether fields of type typ can be used as flags,
// without allocating anything.
func Supports(typ reflect.Type) bool {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	ptr := reflect.PointerTo(typ)
	if ptr.Implements(valueType) || ptr.Implements(unmarshalType) {
		return true
	}

	return isSupported(typ)
}
