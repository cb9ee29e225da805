package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/interactive/internal/parser"
)

const validTag = "validate"

// ErrInvalidChoice indicates that the provided flag argument is not among the valid choices.
var ErrInvalidChoice = errors.New("invalid choice")

// NewDefault returns a validation function using a default go-playground validator.
func NewDefault() parser.ValidateFunc {
	return NewWith(validator.New())
}

// NewWith returns a validation function checking values against the
// `validate` tag of their field, with the given validator.
func NewWith(custom *validator.Validate) parser.ValidateFunc {
	return func(val string, field reflect.StructField, _ any) error {
		rules := field.Tag.Get(validTag)
		if rules == "" {
			return nil
		}

		if err := custom.Var(val, rules); err != nil {
			return &invalidVarError{
				fieldName:    field.Name,
				fieldValue:   val,
				validatorErr: err,
			}
		}

		return nil
	}
}

// Build returns the function validating each word set on a flag, combining
// its choices and the user validator. It returns nil if there is nothing to check.
func Build(flag *parser.Flag, value reflect.Value, opts *parser.Opts) func(val string) error {
	if opts.Validator == nil && len(flag.Choices) == 0 {
		return nil
	}

	return func(val string) error {
		if len(flag.Choices) > 0 {
			if err := validateChoice(val, flag.Choices); err != nil {
				return err
			}
		}

		if opts.Validator != nil {
			var data any
			if value.IsValid() && value.CanInterface() {
				data = value.Interface()
			}

			return opts.Validator(val, flag.Field, data)
		}

		return nil
	}
}

// validateChoice checks the given value(s) is among valid choices.
func validateChoice(val string, choices []string) error {
	for _, word := range strings.Split(val, ",") {
		if !slices.Contains(choices, word) {
			return fmt.Errorf("%w: `%s` (valid: %s)", ErrInvalidChoice, word, strings.Join(choices, ", "))
		}
	}

	return nil
}
