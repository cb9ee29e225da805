package parser

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/reeflective/interactive/internal/errors"
)

// Handler is a function that can be applied to a struct field.
// It returns true if it consumed the field.
type Handler func(val reflect.Value, field *reflect.StructField) (bool, error)

// Scan calls handler on all exported fields of the struct pointed to by data.
func Scan(data any, handler Handler) error {
	ptrval := reflect.ValueOf(data)

	if !ptrval.IsValid() || ptrval.Kind() != reflect.Ptr || ptrval.IsNil() {
		return errors.ErrNotPointerToStruct
	}

	if ptrval.Elem().Kind() != reflect.Struct {
		return errors.ErrNotPointerToStruct
	}

	return scan(ptrval.Elem(), handler)
}

func scan(val reflect.Value, handler Handler) error {
	typ := val.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)

		if !field.IsExported() {
			if err := checkForDisallowedTags(field); err != nil {
				return err
			}

			continue
		}

		if _, err := handler(val.Field(i), &field); err != nil {
			return err
		}
	}

	return nil
}

var disallowedTags = []string{
	"flag", "short", "long", "command", "cmd", "subcommand", "group", "prompt",
}

func checkForDisallowedTags(field reflect.StructField) error {
	tag, skip, _ := GetFieldTag(field)
	if skip {
		return nil
	}

	var found []string

	for _, key := range disallowedTags {
		if _, ok := tag.Get(key); ok {
			found = append(found, key)
		}
	}

	if len(found) > 0 {
		return fmt.Errorf("%w: field '%s' has tags: %s",
			errors.ErrUnexportedField, field.Name, strings.Join(found, ", "))
	}

	return nil
}

// EnsureAddr returns a pointer to val, allocating nil pointers.
func EnsureAddr(val reflect.Value) reflect.Value {
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}

		return val
	}

	return val.Addr()
}

// IsStruct reports whether val is a struct, or a pointer to one.
func IsStruct(val reflect.Value) bool {
	typ := val.Type()
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct
}
