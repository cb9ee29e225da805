package gen

import (
	"fmt"
	"reflect"

	"github.com/spf13/pflag"

	"github.com/reeflective/interactive/internal/errors"
	"github.com/reeflective/interactive/internal/parser"
	"github.com/reeflective/interactive/internal/validation"
	"github.com/reeflective/interactive/internal/values"
)

// boundFlag is a flag parsed from a struct field, and registered on a command.
type boundFlag struct {
	spec       *parser.Flag
	flag       *pflag.Flag
	persistent bool
}

// flagsGroup finds if a field is a group of flags (an embedded struct, or a
// struct tagged with `group`), and if so scans its fields into the command.
func flagsGroup(ctx *scope, tag *parser.Tag, none bool, val reflect.Value, fld *reflect.StructField) (bool, error) {
	if !parser.IsStruct(val) || values.Supports(fld.Type) {
		return false, nil
	}

	_, isGroup := tag.Lookup("group", "options")
	if !fld.Anonymous && !isGroup && (!none || !ctx.opts.ParseAll) {
		return false, nil
	}

	parentOpts := ctx.opts
	defer func() { ctx.opts = parentOpts }()

	if prefix, ok := tag.Get("prefix"); ok {
		ctx.opts = parentOpts.Copy()
		ctx.opts.Prefix = parentOpts.Prefix + prefix + parentOpts.FlagDivider
	}

	scanned := len(ctx.flags)

	data := parser.EnsureAddr(val).Interface()
	if err := parser.Scan(data, ctx.scanner()); err != nil {
		return true, fmt.Errorf("group %s: %w", fld.Name, err)
	}

	if tag.IsSet("persistent") {
		for _, flag := range ctx.flags[scanned:] {
			flag.persistent = true
		}
	}

	return true, nil
}

// flags scans a field as a single flag, wrapping its value with validations.
func flags(ctx *scope, val reflect.Value, fld *reflect.StructField) (bool, error) {
	spec, err := parser.ParseFlag(val, *fld, ctx.opts)
	if err != nil {
		return true, err
	}

	if spec == nil {
		return false, nil
	}

	if validate := validation.Build(spec, val, ctx.opts); validate != nil {
		spec.Value = &values.Validated{Value: spec.Value, Validate: validate}
	}

	tag, _, _ := parser.GetFieldTag(*fld)

	ctx.flags = append(ctx.flags, &boundFlag{
		spec:       spec,
		persistent: tag.IsSet("persistent"),
	})

	return true, nil
}

// registerFlags adds all scanned flags to the command. Flags of a command
// holding variants are persistent, so that they can be given after the
// variant name as well.
func (ctx *scope) registerFlags() error {
	for _, bound := range ctx.flags {
		if ctx.enum != nil {
			bound.persistent = true
		}

		dst := ctx.cmd.Flags()
		if bound.persistent {
			dst = ctx.cmd.PersistentFlags()
		}

		if dst.Lookup(bound.spec.Name) != nil {
			return fmt.Errorf("%w: flag --%s declared twice", errors.ErrInvalidTag, bound.spec.Name)
		}

		bound.flag = registerFlag(dst, bound.spec)
	}

	return nil
}

// registerFlag handles the creation and configuration of a single pflag.Flag.
func registerFlag(dst *pflag.FlagSet, src *parser.Flag) *pflag.Flag {
	flag := dst.VarPF(src.Value, src.Name, src.Short, src.Usage)
	flag.Annotations = map[string][]string{}
	flag.Hidden = src.Hidden

	if values.IsBool(src.Value) {
		flag.NoOptDefVal = "true"
	}

	if src.HasDefault {
		flag.DefValue = src.Default
	}

	if src.Required {
		flag.Annotations["flags"] = []string{"required"}
	}

	if len(src.Choices) > 0 {
		flag.Annotations["choices"] = src.Choices
	}

	return flag
}
