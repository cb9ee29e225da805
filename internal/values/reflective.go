package values

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// reflectValue parses command-line words into basic kinds, and slices of them.
type reflectValue struct {
	value reflect.Value
	set   bool // Slices are reset on the first Set, dropping their defaults.
}

func isSupported(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice:
		return typ.Elem().Kind() != reflect.Slice && isSupported(typ.Elem())
	default:
		return false
	}
}

func (v *reflectValue) Set(s string) error {
	if v.value.Kind() != reflect.Slice {
		return setScalar(v.value, s)
	}

	if !v.set {
		v.value.Set(reflect.MakeSlice(v.value.Type(), 0, 1))
		v.set = true
	}

	for _, word := range strings.Split(s, ",") {
		elem := reflect.New(v.value.Type().Elem()).Elem()
		if err := setScalar(elem, strings.TrimSpace(word)); err != nil {
			return err
		}
		v.value.Set(reflect.Append(v.value, elem))
	}

	return nil
}

func setScalar(val reflect.Value, s string) error {
	switch val.Kind() {
	case reflect.String:
		val.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		val.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if val.Type() == durationType {
			d, err := time.ParseDuration(s)
			if err != nil {
				return err
			}
			val.SetInt(int64(d))

			return nil
		}
		n, err := strconv.ParseInt(s, 0, val.Type().Bits())
		if err != nil {
			return err
		}
		val.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, val.Type().Bits())
		if err != nil {
			return err
		}
		val.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, val.Type().Bits())
		if err != nil {
			return err
		}
		val.SetFloat(n)
	default:
		return fmt.Errorf("unsupported type for conversion: %v", val.Type())
	}

	return nil
}

func (v *reflectValue) String() string {
	if v.value.Kind() != reflect.Slice {
		return fmt.Sprint(v.value.Interface())
	}

	words := make([]string, v.value.Len())
	for i := range v.value.Len() {
		words[i] = fmt.Sprint(v.value.Index(i).Interface())
	}

	return strings.Join(words, ",")
}

func (v *reflectValue) Type() string {
	if v.value.Kind() == reflect.Slice {
		return v.value.Type().Elem().String() + "Slice"
	}

	return v.value.Type().String()
}

// IsBoolFlag makes bool fields usable as --flag, without an argument.
func (v *reflectValue) IsBoolFlag() bool {
	return v.value.Kind() == reflect.Bool
}

// textValue wraps types implementing encoding.TextUnmarshaler.
type textValue struct {
	target encoding.TextUnmarshaler
}

func (v *textValue) Set(s string) error {
	return v.target.UnmarshalText([]byte(s))
}

func (v *textValue) String() string {
	if marshaler, ok := v.target.(encoding.TextMarshaler); ok {
		if text, err := marshaler.MarshalText(); err == nil {
			return string(text)
		}
	}

	if stringer, ok := v.target.(fmt.Stringer); ok {
		return stringer.String()
	}

	return ""
}

func (v *textValue) Type() string {
	return reflect.TypeOf(v.target).Elem().Name()
}
