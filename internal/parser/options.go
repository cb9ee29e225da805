package parser

import (
	"log/slog"
	"reflect"

	"github.com/reeflective/interactive/prompt"
)

// ValidateFunc describes a validation func, that takes string val for flag from command line,
// field that's associated with this flag in structure cfg.
// Should return error if validation fails.
type ValidateFunc func(val string, field reflect.StructField, data any) error

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies different parsing and prompting options.
type Opts struct {
	// Delimiter for flags.
	FlagDivider string

	// Delimiter for environment variables.
	EnvDivider string

	// Prefix for all flags.
	Prefix string

	// Prefix for all environment variables.
	EnvPrefix string

	// ParseAll specifies either to parse all fields or only tagged ones.
	ParseAll bool

	// Validator is the validation function for flags.
	Validator ValidateFunc

	// Selector asks the user to pick variants and flag choices.
	Selector prompt.Selector

	// Inputer asks the user for missing flag values.
	Inputer prompt.Inputer

	// Interactive forces prompting on or off. When nil,
	// it is detected on the standard input.
	Interactive *bool

	// Context is the user value handed to choosers through their context.
	Context any

	// Logger receives debug records about how values were resolved.
	Logger *slog.Logger

	promptSet bool
}

// DefOpts returns the default parsing options.
func DefOpts() *Opts {
	return &Opts{
		FlagDivider: "-",
		EnvDivider:  "_",
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// Apply applies the given options to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		(f)(o)
	}

	return o
}

// Copy returns a shallow copy of the options.
func (o *Opts) Copy() *Opts {
	cp := *o
	return &cp
}

// IsInteractive reports whether prompts may be shown. Unless forced,
// explicitly configured prompts are always used, and the default
// terminal one only when the standard input is interactive.
func (o *Opts) IsInteractive() bool {
	if o.Interactive != nil {
		return *o.Interactive
	}

	return o.promptSet || prompt.Stdin()
}

// Prefix sets prefix that will be applied for all flags (if they are not marked as ~).
func Prefix(val string) OptFunc { return func(opt *Opts) { opt.Prefix = val } }

// EnvPrefix sets prefix that will be applied for all environment variables (if they are not marked as ~).
func EnvPrefix(val string) OptFunc { return func(opt *Opts) { opt.EnvPrefix = val } }

// FlagDivider sets custom divider for flags. It is dash by default. e.g. "flag-name".
func FlagDivider(val string) OptFunc { return func(opt *Opts) { opt.FlagDivider = val } }

// EnvDivider sets custom divider for environment variables.
func EnvDivider(val string) OptFunc { return func(opt *Opts) { opt.EnvDivider = val } }

// ParseAll orders the parser to generate a flag for all struct fields.
func ParseAll() OptFunc { return func(opt *Opts) { opt.ParseAll = true } }

// Validator sets validator function for flags.
func Validator(val ValidateFunc) OptFunc {
	return func(opt *Opts) { opt.Validator = val }
}

// Selector sets the prompt used for selections.
func Selector(sel prompt.Selector) OptFunc {
	return func(opt *Opts) {
		opt.Selector = sel
		opt.promptSet = sel != nil
	}
}

// Inputer sets the prompt used for text input.
func Inputer(in prompt.Inputer) OptFunc {
	return func(opt *Opts) {
		opt.Inputer = in
		opt.promptSet = opt.promptSet || in != nil
	}
}

// Interactive forces prompting on or off.
func Interactive(enabled bool) OptFunc {
	return func(opt *Opts) { opt.Interactive = &enabled }
}

// Context sets the user value handed to choosers.
func Context(val any) OptFunc {
	return func(opt *Opts) { opt.Context = val }
}

// Logger sets the logger for resolution records.
func Logger(logger *slog.Logger) OptFunc {
	return func(opt *Opts) {
		if logger != nil {
			opt.Logger = logger
		}
	}
}
