package variant

import (
	"context"
	"fmt"

	"github.com/reeflective/interactive/prompt"
)

// DefaultPrompt is the selection title used when a resolver has none.
const DefaultPrompt = "How would you like to proceed"

// Resolver produces exactly one variant of T, either from a value already
// parsed on the command line, or by asking the user to pick one.
type Resolver[T comparable] struct {
	Table    Table[T]
	Prompt   string
	Selector prompt.Selector
}

// FromCLI returns the variant parsed on the command line when cli is not nil,
// without prompting. Otherwise it prompts the user once with ChooseVariant.
//
// The conf value is the caller's context (a network, a profile...): it does
// not change the mapping, and is only shown as the prompt header.
func (r Resolver[T]) FromCLI(ctx context.Context, cli *T, conf any) (T, error) {
	if cli == nil {
		return r.ChooseVariant(ctx, conf)
	}

	if _, found := r.Table.Index(*cli); !found {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrUnknownVariant, *cli)
	}

	return *cli, nil
}

// ChooseVariant asks the user to select one of the variants, in declaration
// order with the first one preselected, and maps the selected index back to
// its value. Any failure is a prompt.ErrPromptFailed.
func (r Resolver[T]) ChooseVariant(ctx context.Context, conf any) (T, error) {
	var zero T

	if r.Selector == nil {
		return zero, prompt.Failed(prompt.ErrNoSelector)
	}

	index, err := r.Selector.Select(ctx, r.Request(conf))
	if err != nil {
		return zero, prompt.Failed(err)
	}

	value, err := r.Table.At(index)
	if err != nil {
		return zero, prompt.Failed(err)
	}

	return value, nil
}

// Request returns the selection request that ChooseVariant would issue.
func (r Resolver[T]) Request(conf any) prompt.Request {
	title := r.Prompt
	if title == "" {
		title = DefaultPrompt
	}

	var header string
	if conf != nil {
		header = fmt.Sprint(conf)
	}

	return prompt.Request{
		Prompt:  title,
		Header:  header,
		Items:   r.Table.Messages(),
		Default: 0,
	}
}
