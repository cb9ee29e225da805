package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/reeflective/interactive/internal/errors"
	"github.com/reeflective/interactive/internal/parser"
)

// scope holds all the necessary information for scanning, building
// and running a command.
type scope struct {
	cmd      *cobra.Command
	group    *cobra.Group
	opts     *parser.Opts
	data     any
	parent   *scope
	children []*scope
	flags    []*boundFlag
	enum     *enumField
}

// Generate returns a root cobra Command to be used directly as an entry-point.
// If any error arises in the scanning process, this function will return a nil
// command and the error.
func Generate(data any, opts ...parser.OptFunc) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:              filepath.Base(os.Args[0]),
		Annotations:      map[string]string{},
		TraverseChildren: true,
	}

	if err := Bind(cmd, data, opts...); err != nil {
		return nil, err
	}

	return cmd, nil
}

// Bind scans the struct and binds all commands, variants and flags to the
// command given in parameter, then attaches completions to the whole tree.
func Bind(cmd *cobra.Command, data any, opts ...parser.OptFunc) error {
	ctx := &scope{
		cmd:  cmd,
		opts: parser.DefOpts().Apply(opts...),
		data: data,
	}

	if err := ctx.bind(); err != nil {
		return err
	}

	ctx.completions()

	return nil
}

// bind scans the command struct recursively, and sets the command runners.
func (ctx *scope) bind() error {
	if err := parser.Scan(ctx.data, ctx.scanner()); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrParse, err)
	}

	if ctx.enum != nil && len(ctx.children) > 0 {
		return fmt.Errorf("%w: %s mixes a subcommand field with command fields",
			errors.ErrInvalidTag, ctx.cmd.Name())
	}

	if err := ctx.registerFlags(); err != nil {
		return err
	}

	if ctx.enum != nil {
		ctx.bindVariants()
	}

	setRuns(ctx)

	return nil
}

// scanner is in charge of building a recursive scanner, working on a given
// struct field at a time, checking for subcommands, variants and flag groups.
func (ctx *scope) scanner() parser.Handler {
	handler := func(val reflect.Value, sfield *reflect.StructField) (bool, error) {
		tag, none, err := parser.GetFieldTag(*sfield)
		if err != nil {
			return true, fmt.Errorf("%w: %w", errors.ErrInvalidTag, err)
		}

		// If the field is marked as a subcommand struct, we either return
		// on a successful scan of it, or with an error doing so.
		if found, err := command(ctx, tag, val); found || err != nil {
			return found, err
		}

		// Else, if the field is a closed choice of variants.
		if found, err := enum(ctx, tag, val, sfield); found || err != nil {
			return found, err
		}

		// Else, if the field is a struct group of options.
		if found, err := flagsGroup(ctx, tag, none, val, sfield); found || err != nil {
			return found, err
		}

		// Else, try scanning the field as a simple option flag.
		return flags(ctx, val, sfield)
	}

	return handler
}
