// Package prompt provides the interactive side of generated commands: the
// interfaces through which a command asks its user for a selection or a
// value, a terminal implementation built on bubbletea, color themes, the
// detection of interactive environments, and scripted answers.
//
// Prompts are issued only when a value is still missing after the command
// line and the environment have been read, and only when the process runs
// interactively:
//
//   - If stdin is a terminal, prompting is allowed.
//   - If stdin is not a terminal (piped, redirected), prompting is refused.
//   - NO_INTERACTIVE or CI set to a truthy value force non-interactive mode.
package prompt

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrPromptFailed is the category of all errors returned when the
	// user could not be asked, or did not answer. Use errors.Is on it.
	ErrPromptFailed = errors.New("interactive prompt failed")

	// ErrNotInteractive indicates that a prompt was needed in a
	// non-interactive environment.
	ErrNotInteractive = errors.New("not running interactively")

	// ErrAborted indicates that the user cancelled the prompt.
	ErrAborted = errors.New("prompt aborted")

	// ErrNoItems indicates a selection request without items.
	ErrNoItems = errors.New("no items to select from")

	// ErrNoAnswer indicates that scripted answers have been exhausted.
	ErrNoAnswer = errors.New("no answer left")

	// ErrNoSelector indicates that no selector was configured.
	ErrNoSelector = errors.New("no selector configured")
)

// Failed wraps err into the ErrPromptFailed category, unless it already is.
func Failed(err error) error {
	if err == nil || errors.Is(err, ErrPromptFailed) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrPromptFailed, err)
}

// Request describes a single question shown to the user.
type Request struct {
	// Prompt is the question itself.
	Prompt string

	// Header is an optional line of context printed above the question,
	// such as the network or profile the command runs against.
	Header string

	// Items are the alternatives of a selection, in display order.
	Items []string

	// Default is the index of the preselected item.
	Default int

	// DefaultText is returned by an input prompt answered with an empty line.
	DefaultText string
}

// Selector asks the user to pick one of req.Items, returning its index.
type Selector interface {
	Select(ctx context.Context, req Request) (int, error)
}

// Inputer asks the user for a line of free text.
type Inputer interface {
	Input(ctx context.Context, req Request) (string, error)
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(ctx context.Context, req Request) (int, error)

// Select calls f(ctx, req).
func (f SelectorFunc) Select(ctx context.Context, req Request) (int, error) {
	return f(ctx, req)
}

// InputerFunc adapts a function to the Inputer interface.
type InputerFunc func(ctx context.Context, req Request) (string, error)

// Input calls f(ctx, req).
func (f InputerFunc) Input(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// defaultIndex returns the preselected index of req, or 0 if out of range.
func (req Request) defaultIndex() int {
	if req.Default < 0 || req.Default >= len(req.Items) {
		return 0
	}

	return req.Default
}
