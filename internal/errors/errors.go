package errors

import "errors"

var (
	// ErrParse is a general error used to wrap more specific parsing errors.
	ErrParse = errors.New("parse error")

	// ErrNotPointerToStruct indicates that a provided data container is not
	// a pointer to a struct.
	ErrNotPointerToStruct = errors.New("object must be a pointer to struct")

	// ErrInvalidTag indicates an invalid tag or invalid use of an existing tag.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrNotValue indicates that a struct field type for a flag has
	// no supported kind and does not implement pflag.Value.
	ErrNotValue = errors.New("field marked as flag does not implement pflag.Value")

	// ErrNotEnum is returned when a field is tagged as a subcommand
	// but its type does not implement the Enum interface.
	ErrNotEnum = errors.New("field tagged as subcommand does not implement Enum")

	// ErrUnexportedField indicates that an unexported field carries CLI tags.
	ErrUnexportedField = errors.New("unexported field has CLI tags")

	// ErrUnknownSubcommand indicates that the invoked subcommand has not been found.
	ErrUnknownSubcommand = errors.New("unknown subcommand")

	// ErrRequired indicates that a required flag was given no value,
	// neither from the command line, the environment or a prompt.
	ErrRequired = errors.New("required flag not set")
)
