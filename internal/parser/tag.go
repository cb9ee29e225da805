package parser

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/reeflective/interactive/internal/errors"
)

// Tag holds all values of a struct tag, by key. Unlike reflect.StructTag,
// a key may appear several times, as in `alias:"a" alias:"b"`.
type Tag map[string][]string

// GetFieldTag returns the parsed tag of a field, and whether it is empty.
func GetFieldTag(field reflect.StructField) (*Tag, bool, error) {
	tag := Tag{}
	if err := tag.parse(string(field.Tag)); err != nil {
		return nil, true, fmt.Errorf("field %s: %w", field.Name, err)
	}

	return &tag, len(tag) == 0, nil
}

// Get returns the first value of a key.
func (t *Tag) Get(key string) (string, bool) {
	if val, ok := (*t)[key]; ok {
		return val[0], true
	}

	return "", false
}

// GetMany returns all values of a key.
func (t *Tag) GetMany(key string) []string {
	return (*t)[key]
}

// Lookup returns the value of the first key found among keys.
func (t *Tag) Lookup(keys ...string) (string, bool) {
	for _, key := range keys {
		if val, ok := t.Get(key); ok {
			return val, true
		}
	}

	return "", false
}

// IsSet reports whether a boolean key is present and not falsy,
// as in `hidden:""` or `required:"yes"`.
func (t *Tag) IsSet(key string) bool {
	val, ok := t.Get(key)
	if !ok {
		return false
	}

	return val == "" || !IsStringFalsy(val)
}

func (t *Tag) parse(raw string) error {
	for {
		raw = strings.TrimLeft(raw, " ")
		if raw == "" {
			return nil
		}

		colon := strings.IndexByte(raw, ':')
		if colon <= 0 || colon+1 >= len(raw) || raw[colon+1] != '"' {
			return fmt.Errorf("%w: invalid syntax near %q", errors.ErrInvalidTag, raw)
		}

		key := raw[:colon]
		if strings.ContainsAny(key, " \"\x7f") {
			return fmt.Errorf("%w: invalid key %q", errors.ErrInvalidTag, key)
		}

		quoted := raw[colon+1:]

		end := closingQuote(quoted)
		if end < 0 {
			return fmt.Errorf("%w: unterminated value for %q", errors.ErrInvalidTag, key)
		}

		value, err := strconv.Unquote(quoted[:end+1])
		if err != nil {
			return fmt.Errorf("%w: %w", errors.ErrInvalidTag, err)
		}

		(*t)[key] = append((*t)[key], value)
		raw = quoted[end+1:]
	}
}

// closingQuote returns the index of the quote closing s, which starts with one.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}

	return -1
}

// IsStringFalsy returns true if a string is considered "falsy" (empty, "false", "no", or "0").
func IsStringFalsy(s string) bool {
	return s == "" || s == "false" || s == "no" || s == "0"
}
