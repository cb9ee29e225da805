package gen

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reeflective/interactive/internal/errors"
	"github.com/reeflective/interactive/internal/interfaces"
	"github.com/reeflective/interactive/prompt"
)

// execute is the run pipeline of a generated command: flag values missing
// from the command line are resolved, then the variant if the command holds
// one, and finally the command hooks run.
func (ctx *scope) execute(cmd *cobra.Command, args []string, index int) error {
	runCtx := cmd.Context()
	if runCtx == nil {
		runCtx = context.Background()
	}

	runCtx = interfaces.WithUserContext(runCtx, ctx.opts.Context)

	if err := ctx.resolveFlags(runCtx); err != nil {
		return err
	}

	if ctx.enum != nil {
		if err := ctx.resolveEnum(runCtx, index); err != nil {
			return err
		}
	}

	ctx.recordCommandLine(cmd, index)

	return runHooks(ctx.data, args)
}

// resolveFlags fills the flags of the command, and the persistent ones of
// its parents, that were not given on the command line. Values are taken
// from the environment, then from a prompt when interactive, then from
// defaults. Required flags left without a value are reported together.
func (ctx *scope) resolveFlags(runCtx context.Context) error {
	var missing []string

	for owner := ctx; owner != nil; owner = owner.parent {
		for _, bound := range owner.flags {
			if owner != ctx && !bound.persistent {
				continue
			}

			found, err := ctx.resolveFlag(runCtx, bound)
			if err != nil {
				return err
			}

			if !found && bound.spec.Required {
				missing = append(missing, describeMissing(bound))
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w:\n  %s\n\nrun '%s --help' to see all options",
			errors.ErrRequired, strings.Join(missing, "\n  "), ctx.cmd.CommandPath())
	}

	return nil
}

// resolveFlag returns true if the flag has a value when it returns.
func (ctx *scope) resolveFlag(runCtx context.Context, bound *boundFlag) (bool, error) {
	spec := bound.spec
	logger := ctx.opts.Logger.With("flag", spec.Name)

	if bound.flag == nil || bound.flag.Changed {
		return true, nil
	}

	for _, name := range spec.EnvNames {
		val, isSet := os.LookupEnv(name)
		if !isSet {
			continue
		}

		if err := bound.flag.Value.Set(val); err != nil {
			return false, fmt.Errorf("invalid value for --%s from $%s: %w", spec.Name, name, err)
		}

		bound.flag.Changed = true
		logger.Debug("flag resolved from environment", "env", name)

		return true, nil
	}

	if spec.Prompt != "" && ctx.opts.IsInteractive() {
		if err := ctx.promptFlag(runCtx, bound); err != nil {
			return false, err
		}

		bound.flag.Changed = true
		logger.Debug("flag resolved interactively")

		return true, nil
	}

	if spec.HasDefault {
		if err := bound.flag.Value.Set(spec.Default); err != nil {
			return false, fmt.Errorf("invalid default for --%s: %w", spec.Name, err)
		}

		logger.Debug("flag resolved from default")

		return true, nil
	}

	return false, nil
}

// promptFlag asks the user for a flag value: a selection among its choices
// if it has some, or a line of text otherwise. The default value, if any,
// is preselected.
func (ctx *scope) promptFlag(runCtx context.Context, bound *boundFlag) error {
	spec := bound.spec

	req := prompt.Request{
		Prompt:      spec.Prompt,
		Header:      header(ctx.opts.Context),
		DefaultText: spec.Default,
	}

	var answer string

	if len(spec.Choices) > 0 {
		req.Items = spec.Choices
		req.Default = max(slices.Index(spec.Choices, spec.Default), 0)

		index, err := ctx.selector().Select(runCtx, req)
		if err != nil {
			return prompt.Failed(err)
		}

		if index < 0 || index >= len(spec.Choices) {
			return prompt.Failed(fmt.Errorf("choice %d out of range for --%s", index, spec.Name))
		}

		answer = spec.Choices[index]
	} else {
		text, err := ctx.inputer().Input(runCtx, req)
		if err != nil {
			return prompt.Failed(err)
		}

		answer = text
	}

	if err := bound.flag.Value.Set(answer); err != nil {
		return fmt.Errorf("invalid value for --%s: %w", spec.Name, err)
	}

	return nil
}

func describeMissing(bound *boundFlag) string {
	desc := "--" + bound.spec.Name
	if len(bound.spec.EnvNames) > 0 {
		desc += " (or " + strings.Join(bound.spec.EnvNames, ", ") + ")"
	}

	return desc
}

// selector returns the configured selector, or a terminal one.
func (ctx *scope) selector() prompt.Selector {
	if ctx.opts.Selector != nil {
		return ctx.opts.Selector
	}

	return prompt.NewTerminal()
}

// inputer returns the configured inputer, the selector if it can
// also read text, or a terminal one.
func (ctx *scope) inputer() prompt.Inputer {
	if ctx.opts.Inputer != nil {
		return ctx.opts.Inputer
	}

	if inputer, ok := ctx.opts.Selector.(prompt.Inputer); ok {
		return inputer
	}

	return prompt.NewTerminal()
}

// header renders the user context value shown above prompts.
func header(val any) string {
	if val == nil {
		return ""
	}

	return fmt.Sprint(val)
}
