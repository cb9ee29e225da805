// Package variant provides explicit, ordered tables for closed choice types,
// and the resolver turning an optional command-line value into exactly one
// variant, prompting the user when the value is absent.
//
// A table is the single source of truth for the order of the variants: the
// items of an interactive selection and the mapping from a selected index back
// to a value are both read from it, so they cannot drift apart.
package variant

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrEmptyTable indicates that a table was declared without variants.
	ErrEmptyTable = errors.New("variant table has no variants")

	// ErrDuplicate indicates that two variants share a value, a name or an alias.
	ErrDuplicate = errors.New("duplicate variant")

	// ErrInvalidName indicates that a variant name cannot be used on a command line.
	ErrInvalidName = errors.New("invalid variant name")

	// ErrUnknownVariant indicates that a value or name is not part of a table.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrIndex indicates that an index does not designate any variant.
	ErrIndex = errors.New("variant index out of range")
)

// Variant is one alternative of a closed choice type T.
type Variant[T comparable] struct {
	Value   T
	Name    string   // Command-line name, also used as the subcommand name.
	Message string   // Human-readable description shown in prompts.
	Aliases []string // Other accepted command-line names.
}

// Of is a shorthand for declaring a variant in a table.
func Of[T comparable](value T, name, message string, aliases ...string) Variant[T] {
	return Variant[T]{
		Value:   value,
		Name:    name,
		Message: message,
		Aliases: aliases,
	}
}

// Display returns the text shown for the variant in an interactive prompt.
func (v Variant[T]) Display() string {
	if v.Message != "" {
		return v.Message
	}

	return v.Name
}

// Info returns the type-erased description of the variant.
func (v Variant[T]) Info() Info {
	return Info{
		Name:    v.Name,
		Message: v.Message,
		Aliases: append([]string(nil), v.Aliases...),
	}
}

// Info describes a variant independently of its Go type.
// It is what command generators see of an enum when scanning structs.
type Info struct {
	Name    string
	Message string
	Aliases []string
}

// Display returns the message of the variant, or its name if it has none.
func (i Info) Display() string {
	if i.Message != "" {
		return i.Message
	}

	return i.Name
}

// Table is an immutable, ordered list of the variants of T.
type Table[T comparable] struct {
	variants []Variant[T]
}

// New returns a table holding the given variants in declaration order.
// Variants must have distinct values, names and aliases, and names must
// be usable as command-line words.
func New[T comparable](variants ...Variant[T]) (Table[T], error) {
	if len(variants) == 0 {
		return Table[T]{}, ErrEmptyTable
	}

	values := make(map[T]string, len(variants))
	names := make(map[string]bool, len(variants))

	for _, v := range variants {
		if prev, found := values[v.Value]; found {
			return Table[T]{}, fmt.Errorf("%w: %q and %q have the same value", ErrDuplicate, prev, v.Name)
		}
		values[v.Value] = v.Name

		for _, name := range append([]string{v.Name}, v.Aliases...) {
			if err := checkName(name); err != nil {
				return Table[T]{}, err
			}
			if names[name] {
				return Table[T]{}, fmt.Errorf("%w: name %q", ErrDuplicate, name)
			}
			names[name] = true
		}
	}

	table := Table[T]{variants: make([]Variant[T], len(variants))}
	copy(table.variants, variants)

	return table, nil
}

// Must is like New but panics if the table is invalid.
// It is meant for package-level table declarations.
func Must[T comparable](variants ...Variant[T]) Table[T] {
	table, err := New(variants...)
	if err != nil {
		panic(err)
	}

	return table
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}

	if strings.HasPrefix(name, "-") || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}

// Len returns the number of variants.
func (t Table[T]) Len() int { return len(t.variants) }

// Variants returns a copy of the variants, in declaration order.
func (t Table[T]) Variants() []Variant[T] {
	return append([]Variant[T](nil), t.variants...)
}

// At returns the value of the variant declared at index.
func (t Table[T]) At(index int) (T, error) {
	if index < 0 || index >= len(t.variants) {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndex, index, len(t.variants))
	}

	return t.variants[index].Value, nil
}

// Index returns the declaration index of value.
func (t Table[T]) Index(value T) (int, bool) {
	for i, v := range t.variants {
		if v.Value == value {
			return i, true
		}
	}

	return -1, false
}

// Variant returns the full variant declared for value.
func (t Table[T]) Variant(value T) (Variant[T], bool) {
	if i, found := t.Index(value); found {
		return t.variants[i], true
	}

	return Variant[T]{}, false
}

// Lookup returns the value whose name or alias matches name.
func (t Table[T]) Lookup(name string) (T, bool) {
	for _, v := range t.variants {
		if v.Name == name {
			return v.Value, true
		}
		for _, alias := range v.Aliases {
			if alias == name {
				return v.Value, true
			}
		}
	}

	var zero T

	return zero, false
}

// Name returns the command-line name of value, or an empty string.
func (t Table[T]) Name(value T) string {
	v, _ := t.Variant(value)
	return v.Name
}

// Names returns the command-line names of all variants.
func (t Table[T]) Names() []string {
	names := make([]string, len(t.variants))
	for i, v := range t.variants {
		names[i] = v.Name
	}

	return names
}

// Messages returns the prompt text of all variants, in declaration order.
func (t Table[T]) Messages() []string {
	messages := make([]string, len(t.variants))
	for i, v := range t.variants {
		messages[i] = v.Display()
	}

	return messages
}

// Infos returns the type-erased descriptions of all variants.
func (t Table[T]) Infos() []Info {
	infos := make([]Info, len(t.variants))
	for i, v := range t.variants {
		infos[i] = v.Info()
	}

	return infos
}

// Set stores in dst the value of the variant declared at index.
// It is the usual body of an Enum's SetVariant method.
func (t Table[T]) Set(dst *T, index int) error {
	value, err := t.At(index)
	if err != nil {
		return err
	}

	*dst = value

	return nil
}
