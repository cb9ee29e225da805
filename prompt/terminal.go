package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminal prompts the user on a terminal. It implements both Selector
// and Inputer, and blocks until the user answers or the context is done.
type Terminal struct {
	in    io.Reader
	out   io.Writer
	theme *Theme
}

// TerminalOption configures a Terminal.
type TerminalOption func(t *Terminal)

// WithInput sets the reader keys are read from. It is os.Stdin by default.
func WithInput(in io.Reader) TerminalOption {
	return func(t *Terminal) { t.in = in }
}

// WithOutput sets the writer prompts are rendered to. It is os.Stderr by
// default, so that the standard output of a command stays clean.
func WithOutput(out io.Writer) TerminalOption {
	return func(t *Terminal) { t.out = out }
}

// WithTheme sets the rendering theme. A nil theme is ignored.
func WithTheme(theme *Theme) TerminalOption {
	return func(t *Terminal) {
		if theme != nil {
			t.theme = theme
		}
	}
}

// NewTerminal returns a terminal prompt with the ColorfulTheme.
func NewTerminal(opts ...TerminalOption) *Terminal {
	term := &Terminal{
		in:    os.Stdin,
		out:   os.Stderr,
		theme: ColorfulTheme(),
	}

	for _, opt := range opts {
		opt(term)
	}

	return term
}

// Select implements Selector.
func (t *Terminal) Select(ctx context.Context, req Request) (int, error) {
	if len(req.Items) == 0 {
		return 0, Failed(ErrNoItems)
	}

	final, err := t.run(ctx, newSelectModel(req, t.theme.bind(t.out)))
	if err != nil {
		return 0, err
	}

	model, _ := final.(selectModel)
	if !model.done {
		return 0, Failed(ErrAborted)
	}

	return model.cursor, nil
}

// Input implements Inputer.
func (t *Terminal) Input(ctx context.Context, req Request) (string, error) {
	final, err := t.run(ctx, newInputModel(req, t.theme.bind(t.out)))
	if err != nil {
		return "", err
	}

	model, _ := final.(inputModel)
	if !model.done {
		return "", Failed(ErrAborted)
	}

	return model.answer(), nil
}

// run executes the model until it quits. A model left unanswered
// because its input failed is reported as such.
func (t *Terminal) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	input := &watchedInput{reader: t.in}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(input.source()),
		tea.WithOutput(t.out),
	)

	input.quit = program.Quit

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, Failed(ctx.Err())
		}

		return nil, Failed(err)
	}

	if failed := input.failure(); failed != nil {
		if answer, ok := final.(interface{ answered() bool }); ok && !answer.answered() {
			return nil, Failed(fmt.Errorf("%w: reading input: %w", ErrAborted, failed))
		}
	}

	return final, nil
}

// watchedInput quits the program on the first read error of its reader,
// end of file included: bubbletea stops reading then, but keeps running.
type watchedInput struct {
	reader io.Reader
	quit   func()

	mutex sync.Mutex
	err   error
}

// source returns the reader to give to the program. Terminals are given
// as is, so that they can be put in raw mode.
func (w *watchedInput) source() io.Reader {
	if w.reader == nil {
		return nil
	}

	if file, ok := w.reader.(fder); ok && isTerminal(file.Fd()) {
		return w.reader
	}

	return w
}

func (w *watchedInput) Read(buf []byte) (int, error) {
	n, err := w.reader.Read(buf)
	if err == nil {
		return n, nil
	}

	w.mutex.Lock()
	first := w.err == nil
	if first {
		w.err = err
	}
	w.mutex.Unlock()

	if first && w.quit != nil {
		w.quit()
	}

	return n, err
}

func (w *watchedInput) failure() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.err
}
