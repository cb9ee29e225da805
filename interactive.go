// Package interactive generates command-line interfaces from Go structs,
// which run either non-interactively from their arguments, or interactively
// by prompting the user for whatever the arguments left out.
//
// Commands, flags and closed choices are declared with struct fields and
// tags, and interactive.Generate() turns them into a *cobra.Command tree with
// shell completions. A field tagged `subcommand` whose type implements Enum
// gets one subcommand per variant: invoking one of them selects the variant,
// and invoking the parent alone asks the user to pick one.
//
// For ordered variant tables and the resolver behind the selection, see the
// "github.com/reeflective/interactive/variant" package. For the prompts
// themselves, see "github.com/reeflective/interactive/prompt".
package interactive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/reeflective/interactive/internal/errors"
	"github.com/reeflective/interactive/internal/gen"
	"github.com/reeflective/interactive/internal/interfaces"
	"github.com/reeflective/interactive/internal/parser"
	"github.com/reeflective/interactive/internal/validation"
	"github.com/reeflective/interactive/internal/values"
	"github.com/reeflective/interactive/prompt"
)

// === Primary Entry Points ===

// Generate parses a struct and creates a new, fully configured *cobra.Command.
// The provided `data` argument must be a pointer to a struct. Struct fields
// tagged with `command:"..."` become subcommands, a field tagged with
// `subcommand:"..."` becomes one subcommand per variant, and other tagged
// fields become flags.
//
// Shell completions are generated and attached automatically.
func Generate(data any, opts ...Option) (*cobra.Command, error) {
	cmd, err := gen.Generate(data, toInternalOpts(opts)...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate command: %w", err)
	}

	return cmd, nil
}

// Bind parses a struct and binds its commands, variants and flags to an
// existing *cobra.Command. This is useful for integrating with a command
// tree that is partially managed manually.
func Bind(cmd *cobra.Command, data any, opts ...Option) error {
	if err := gen.Bind(cmd, data, toInternalOpts(opts)...); err != nil {
		return fmt.Errorf("failed to bind command: %w", err)
	}

	return nil
}

// ContextValue returns the value given with WithContext, from the context
// handed to a Chooser.
func ContextValue[T any](ctx context.Context) (T, bool) {
	val, ok := interfaces.UserContext(ctx).(T)
	return val, ok
}

// CommandLine returns the command line which, given to the same program,
// reaches the values resolved by the last run of cmd without prompting.
// It is empty if cmd has not been run. Use it with cobra's ExecuteC().
func CommandLine(cmd *cobra.Command) string {
	if cmd == nil {
		return ""
	}

	return cmd.Annotations[gen.CommandLineAnnotation]
}

// === Configuration (Functional Options) ===

// Option is a functional option for configuring command generation and prompting.
type Option func(o *parser.Opts)

func toInternalOpts(opts []Option) []parser.OptFunc {
	internalOpts := make([]parser.OptFunc, len(opts))
	for i, opt := range opts {
		internalOpts[i] = parser.OptFunc(opt)
	}

	return internalOpts
}

// WithPrefix sets a prefix that will be applied to all long flag names.
func WithPrefix(prefix string) Option {
	return Option(parser.Prefix(prefix))
}

// WithEnvPrefix sets a prefix for all environment variables.
func WithEnvPrefix(prefix string) Option {
	return Option(parser.EnvPrefix(prefix))
}

// WithFlagDivider sets the character used to separate words in long flag names.
func WithFlagDivider(divider string) Option {
	return Option(parser.FlagDivider(divider))
}

// WithEnvDivider sets the character used to separate words in environment variable names.
func WithEnvDivider(divider string) Option {
	return Option(parser.EnvDivider(divider))
}

// WithParseAll generates flags for all exported fields, tagged or not.
func WithParseAll() Option {
	return Option(parser.ParseAll())
}

// WithSelector sets the prompt used to choose variants and flag choices.
// An explicitly configured selector is used even when the standard input
// is not a terminal, unless WithInteractive(false) is also given.
func WithSelector(sel prompt.Selector) Option {
	return Option(parser.Selector(sel))
}

// WithInputer sets the prompt used to read missing flag values.
func WithInputer(in prompt.Inputer) Option {
	return Option(parser.Inputer(in))
}

// WithInteractive forces prompting on or off, instead of
// detecting it on the standard input and environment.
func WithInteractive(enabled bool) Option {
	return Option(parser.Interactive(enabled))
}

// WithContext sets a value handed to choosers through their context.
// It is shown as the header of prompts, and returned by ContextValue.
func WithContext(val any) Option {
	return Option(parser.Context(val))
}

// WithLogger sets the logger receiving debug records on how
// flags and variants were resolved.
func WithLogger(logger *slog.Logger) Option {
	return Option(parser.Logger(logger))
}

// === Validation ===

// ValidateFunc is the core validation function type.
// It takes the value to validate as a string, its struct field,
// and the current value of the field.
type ValidateFunc = parser.ValidateFunc

// WithValidation adds field validation for fields with the "validate" tag.
// This makes use of go-playground/validator internally, refer to their docs
// for an exhaustive list of valid tag validations.
func WithValidation() Option {
	return Option(parser.Validator(validation.NewDefault()))
}

// WithValidator registers a custom go-playground validator for flags.
func WithValidator(v *validator.Validate) Option {
	return Option(parser.Validator(validation.NewWith(v)))
}

// === Core Interfaces ===

// Commander is the primary interface for a struct to be recognized as an
// executable command.
type Commander = interfaces.Commander

// Runner is a simpler command interface, ignored if the struct also
// implements Commander.
type Runner = interfaces.Runner

// PreRunner is the equivalent of cobra.Command.PreRun.
type PreRunner = interfaces.PreRunner

// PreRunnerE is the equivalent of cobra.Command.PreRunE.
type PreRunnerE = interfaces.PreRunnerE

// PostRunner is the equivalent of cobra.Command.PostRun.
type PostRunner = interfaces.PostRunner

// PostRunnerE is the equivalent of cobra.Command.PostRunE.
type PostRunnerE = interfaces.PostRunnerE

// Enum is the interface of types usable as `subcommand` fields.
type Enum = interfaces.Enum

// Chooser is implemented by enums driving their own interactive selection.
type Chooser = interfaces.Chooser

// Value is the interface for custom flag types.
type Value = values.Value

// Completer is the interface for types that can provide their own shell
// completion suggestions.
type Completer = interfaces.Completer

// === Public Errors ===

var (
	// ErrParse is a general error used to wrap more specific parsing errors.
	ErrParse = errors.ErrParse

	// ErrNotPointerToStruct indicates that a provided data container is not
	// a pointer to a struct.
	ErrNotPointerToStruct = errors.ErrNotPointerToStruct

	// ErrInvalidTag indicates an invalid tag or invalid use of an existing tag.
	ErrInvalidTag = errors.ErrInvalidTag

	// ErrNotValue indicates that a struct field type for a flag is not supported.
	ErrNotValue = errors.ErrNotValue

	// ErrNotEnum indicates that a field tagged as subcommand does not implement Enum.
	ErrNotEnum = errors.ErrNotEnum

	// ErrUnknownSubcommand indicates that the invoked subcommand has not been found.
	ErrUnknownSubcommand = errors.ErrUnknownSubcommand

	// ErrRequired indicates that required flags were left without a value.
	ErrRequired = errors.ErrRequired

	// ErrPromptFailed is the category of all prompting errors.
	ErrPromptFailed = prompt.ErrPromptFailed

	// ErrInvalidChoice indicates that a flag value is not among its choices.
	ErrInvalidChoice = validation.ErrInvalidChoice
)
