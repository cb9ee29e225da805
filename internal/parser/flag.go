package parser

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/reeflective/interactive/internal/errors"
	"github.com/reeflective/interactive/internal/values"
)

// Flag is the description of a flag, as declared by a struct field.
type Flag struct {
	Name     string   // name as it appears on command line
	Short    string   // optional short name
	Usage    string   // help message
	EnvNames []string // environment variables read when the flag is not given
	Default  string   // default value, as text
	Choices  []string // if non empty, only these values are allowed
	Prompt   string   // if non empty, the question asked when no value is found
	Required bool     // if true, a value must be found before running
	Hidden   bool     // hidden from help and completions

	HasDefault bool

	Field reflect.StructField
	Value values.Value
}

// ParseFlag returns the flag declared by a struct field,
// or nil if the field does not declare one.
func ParseFlag(val reflect.Value, fld reflect.StructField, opts *Opts) (*Flag, error) {
	tag, none, err := GetFieldTag(fld)
	if err != nil {
		return nil, err
	}

	if shouldSkipField(tag, none, opts) {
		return nil, nil
	}

	value := values.NewValue(val)
	if value == nil {
		return nil, fmt.Errorf("%w: field %s of type %s", errors.ErrNotValue, fld.Name, fld.Type)
	}

	name, short := flagNames(fld, tag, opts)
	if utf8.RuneCountInString(short) > 1 {
		return nil, fmt.Errorf("%w: short name %q of field %s must be one character",
			errors.ErrInvalidTag, short, fld.Name)
	}

	flag := &Flag{
		Name:     name,
		Short:    short,
		Usage:    flagUsage(tag),
		Choices:  flagChoices(tag),
		Required: tag.IsSet("required"),
		Hidden:   tag.IsSet("hidden"),
		Field:    fld,
		Value:    value,
	}

	flag.Prompt, _ = tag.Get("prompt")
	flag.Default, flag.HasDefault = tag.Get("default")
	flag.EnvNames = envNames(flag.Name, tag, opts)

	return flag, nil
}

// shouldSkipField checks if a field should be ignored based on its tags.
func shouldSkipField(tag *Tag, none bool, opts *Opts) bool {
	if val, isSet := tag.Get("flag"); isSet && val == "-" {
		return true
	}
	if _, isSet := tag.Get("no-flag"); isSet {
		return true
	}

	return none && !opts.ParseAll
}

// flagNames returns the long and short names of a flag.
// The sflags-style `flag:"name n"` is read first, then `long` and `short`
// which take precedence, and the long name defaults to the field name.
func flagNames(field reflect.StructField, tag *Tag, opts *Opts) (long, short string) {
	var ignorePrefix bool

	if names, isSet := tag.Get("flag"); isSet {
		if strings.HasPrefix(names, "~") {
			ignorePrefix = true
			names = names[1:]
		}

		parts := strings.Fields(strings.Split(names, ",")[0])
		if len(parts) > 0 {
			long = parts[0]
		}
		if len(parts) > 1 {
			short = parts[1]
		}
	}

	if l, ok := tag.Get("long"); ok {
		long = l
	}
	if s, ok := tag.Get("short"); ok {
		short = s
	}

	if long == "" {
		long = CamelToFlag(field.Name, opts.FlagDivider)
	}

	if !ignorePrefix && opts.Prefix != "" {
		long = opts.Prefix + long
	}

	return long, short
}

func flagUsage(tag *Tag) string {
	usage, _ := tag.Lookup("description", "desc", "help")
	return usage
}

func flagChoices(tag *Tag) []string {
	var choices []string

	for _, choice := range tag.GetMany("choice") {
		choices = append(choices, strings.Fields(choice)...)
	}

	return choices
}

// envNames returns the environment variables of a flag. Without an `env`
// tag, the name is derived from the flag name; `env:"-"` disables lookups.
func envNames(flagName string, tag *Tag, opts *Opts) []string {
	envTag, isSet := tag.Get("env")
	if !isSet {
		return []string{opts.EnvPrefix + FlagToEnv(flagName, opts.FlagDivider, opts.EnvDivider)}
	}

	if envTag == "-" {
		return nil
	}

	var names []string

	for _, name := range strings.Split(envTag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			name = FlagToEnv(flagName, opts.FlagDivider, opts.EnvDivider)
		}

		if strings.HasPrefix(name, "~") {
			names = append(names, name[1:])
			continue
		}

		names = append(names, opts.EnvPrefix+name)
	}

	return names
}
