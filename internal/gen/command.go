package gen

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reeflective/interactive/internal/errors"
	"github.com/reeflective/interactive/internal/interfaces"
	"github.com/reeflective/interactive/internal/parser"
)

// command finds if a field is marked as a subcommand, and if yes, scans it.
func command(parent *scope, tag *parser.Tag, val reflect.Value) (bool, error) {
	name, _ := tag.Lookup("command", "cmd")
	if name == "" {
		return false, nil
	}

	if !parser.IsStruct(val) {
		return true, fmt.Errorf("%w: command %q must be a struct", errors.ErrInvalidTag, name)
	}

	data := parser.EnsureAddr(val).Interface()

	subc := newCommand(name, tag)

	tagged, _ := tag.Get("group")
	setGroup(parent.cmd, subc, parent.group, tagged)

	sub := &scope{
		cmd:    subc,
		group:  parent.group,
		opts:   parent.opts,
		data:   data,
		parent: parent,
	}

	if err := sub.bind(); err != nil {
		return true, fmt.Errorf("failed to scan subcommand %s: %w", name, err)
	}

	parent.children = append(parent.children, sub)
	parent.cmd.AddCommand(subc)

	return true, nil
}

// newCommand builds a quick command template based on what has been specified through tags.
func newCommand(name string, tag *parser.Tag) *cobra.Command {
	subc := &cobra.Command{
		Use:         name,
		Annotations: map[string]string{},
	}

	subc.Short, _ = tag.Lookup("description", "desc")
	subc.Long, _ = tag.Get("long-description")
	subc.Aliases = append(tag.GetMany("alias"), tag.GetMany("aliases")...)
	subc.Hidden = tag.IsSet("hidden")

	return subc
}

// setGroup sets the command group for a subcommand.
func setGroup(parent, subc *cobra.Command, parentGroup *cobra.Group, tagged string) {
	var group *cobra.Group

	// The group tag on the command has priority
	if tagged != "" {
		for _, grp := range parent.Groups() {
			if grp.ID == tagged {
				group = grp
			}
		}

		if group == nil {
			group = &cobra.Group{ID: tagged, Title: tagged}
			parent.AddGroup(group)
		}
	} else if parentGroup != nil {
		group = parentGroup
	}

	if group != nil {
		subc.GroupID = group.ID
	}
}

// unknownSubcommandAction is the action taken when a subcommand is not recognized.
func unknownSubcommandAction(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		//nolint:wrapcheck
		return cmd.Help()
	}

	err := fmt.Sprintf("%q for %q", args[0], cmd.Name())

	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		err += "\n\nDid you mean this?\n"
		for _, s := range suggestions {
			err += fmt.Sprintf("\t%v\n", s)
		}

		err = strings.TrimSuffix(err, "\n")
	}

	return fmt.Errorf("%w %s", errors.ErrUnknownSubcommand, err)
}

// setRuns sets the run function of a command. Commands implementing a runner
// interface, or holding variants, go through the resolution pipeline; other
// commands with subcommands only print help or suggestions.
func setRuns(ctx *scope) {
	if !isRunnable(ctx.data) && ctx.enum == nil {
		if ctx.cmd.HasSubCommands() {
			ctx.cmd.RunE = unknownSubcommandAction
		}

		return
	}

	if ctx.enum != nil {
		ctx.cmd.Args = cobra.NoArgs
	}

	ctx.cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return ctx.execute(cmd, args, noVariant)
	}
}

func isRunnable(data any) bool {
	switch data.(type) {
	case interfaces.Commander, interfaces.Runner:
		return true
	default:
		return false
	}
}

// runHooks calls the pre-run, run and post-run implementations of data.
// As with cobra, the error returning variant of a hook takes precedence.
func runHooks(data any, args []string) error {
	switch runner := data.(type) {
	case interfaces.PreRunnerE:
		if err := runner.PreRunE(args); err != nil {
			return err
		}
	case interfaces.PreRunner:
		runner.PreRun(args)
	}

	switch runner := data.(type) {
	case interfaces.Commander:
		if err := runner.Execute(args); err != nil {
			return err
		}
	case interfaces.Runner:
		runner.Run(args)
	}

	switch runner := data.(type) {
	case interfaces.PostRunnerE:
		return runner.PostRunE(args)
	case interfaces.PostRunner:
		runner.PostRun(args)
	}

	return nil
}
