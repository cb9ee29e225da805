package gen

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reeflective/interactive/internal/errors"
	"github.com/reeflective/interactive/internal/interfaces"
	"github.com/reeflective/interactive/internal/parser"
	"github.com/reeflective/interactive/prompt"
	"github.com/reeflective/interactive/variant"
)

// noVariant is the variant index of a run where none was given on the command line.
const noVariant = -1

var enumType = reflect.TypeOf((*interfaces.Enum)(nil)).Elem()

// enumField is a struct field holding a closed choice of variants.
// A pointer field is absent until resolved; a value field always
// holds one of its variants.
type enumField struct {
	name   string
	value  reflect.Value
	elem   reflect.Type
	title  string
	prompt string
	table  variant.Table[int]
}

// enum finds if a field is marked as a variant subcommand, and if yes, scans it.
func enum(ctx *scope, tag *parser.Tag, val reflect.Value, fld *reflect.StructField) (bool, error) {
	title, isEnum := tag.Get("subcommand")
	if !isEnum {
		return false, nil
	}

	if ctx.enum != nil {
		return true, fmt.Errorf("%w: field %s is a second subcommand field, after %s",
			errors.ErrInvalidTag, fld.Name, ctx.enum.name)
	}

	elem := fld.Type
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}

	if !reflect.PointerTo(elem).Implements(enumType) {
		return true, fmt.Errorf("%w: field %s of type %s", errors.ErrNotEnum, fld.Name, fld.Type)
	}

	// Read the variants on a scratch value, so that a
	// pointer field stays absent until it is resolved.
	scratch, _ := reflect.New(elem).Interface().(interfaces.Enum)

	table, err := infoTable(scratch.Variants())
	if err != nil {
		return true, fmt.Errorf("%w: field %s: %w", errors.ErrInvalidTag, fld.Name, err)
	}

	field := &enumField{
		name:  fld.Name,
		value: val,
		elem:  elem,
		title: title,
		table: table,
	}
	field.prompt, _ = tag.Get("prompt")

	ctx.enum = field

	return true, nil
}

// infoTable indexes type-erased variants by declaration order,
// so that they go through the same resolver as typed ones.
func infoTable(infos []variant.Info) (variant.Table[int], error) {
	variants := make([]variant.Variant[int], len(infos))
	for i, info := range infos {
		variants[i] = variant.Of(i, info.Name, info.Message, info.Aliases...)
	}

	return variant.New(variants...)
}

// bindVariants adds one subcommand per variant, in declaration order.
func (ctx *scope) bindVariants() {
	var group *cobra.Group
	if ctx.enum.title != "" {
		group = &cobra.Group{ID: ctx.enum.title, Title: ctx.enum.title}
		ctx.cmd.AddGroup(group)
	}

	for index, v := range ctx.enum.table.Variants() {
		subc := &cobra.Command{
			Use:         v.Name,
			Short:       v.Message,
			Aliases:     v.Aliases,
			Args:        cobra.NoArgs,
			Annotations: map[string]string{"variant": ctx.enum.name},
		}

		if group != nil {
			subc.GroupID = group.ID
		}

		subc.RunE = func(cmd *cobra.Command, args []string) error {
			return ctx.execute(cmd, args, index)
		}

		ctx.cmd.AddCommand(subc)
	}
}

// isSet reports whether the field already holds a variant before any
// resolution, which only pointer fields set by the caller can do.
func (e *enumField) isSet() bool {
	return e.value.Kind() == reflect.Ptr && !e.value.IsNil()
}

// set stores the variant at index in the field.
func (e *enumField) set(index int) error {
	target := reflect.New(e.elem)

	choice, _ := target.Interface().(interfaces.Enum)
	if err := choice.SetVariant(index); err != nil {
		return err
	}

	e.store(target)

	return nil
}

// store writes a pointer to a resolved variant into the field.
func (e *enumField) store(target reflect.Value) {
	if e.value.Kind() == reflect.Ptr {
		e.value.Set(target)
	} else {
		e.value.Set(target.Elem())
	}
}

// resolveEnum sets the variant field, either from the variant subcommand
// that was invoked, or by asking the user to choose one.
func (ctx *scope) resolveEnum(runCtx context.Context, index int) error {
	field := ctx.enum
	logger := ctx.opts.Logger.With("command", ctx.cmd.CommandPath(), "field", field.name)

	if index != noVariant {
		logger.Debug("variant given on command line", "variant", field.table.Names()[index])
		return field.set(index)
	}

	if field.isSet() {
		logger.Debug("variant already set")
		return nil
	}

	if !ctx.opts.IsInteractive() {
		return fmt.Errorf("%w: %w: %s requires one of: %s",
			prompt.ErrPromptFailed, prompt.ErrNotInteractive,
			ctx.cmd.CommandPath(), strings.Join(field.table.Names(), ", "))
	}

	target := reflect.New(field.elem)

	if chooser, ok := target.Interface().(interfaces.Chooser); ok {
		logger.Debug("delegating variant choice")

		if err := chooser.ChooseVariant(runCtx, ctx.selector()); err != nil {
			return prompt.Failed(err)
		}

		field.store(target)

		return nil
	}

	resolver := variant.Resolver[int]{
		Table:    field.table,
		Prompt:   field.prompt,
		Selector: ctx.selector(),
	}

	chosen, err := resolver.ChooseVariant(runCtx, ctx.opts.Context)
	if err != nil {
		return err
	}

	logger.Debug("variant chosen interactively", "variant", field.table.Names()[chosen])

	return field.set(chosen)
}
