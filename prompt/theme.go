package prompt

import (
	"io"

	"github.com/muesli/termenv"
)

// Theme controls how prompts are rendered.
type Theme struct {
	PromptColor string // Question text.
	ActiveColor string // Item under the cursor, and the final answer.
	HeaderColor string // Context line above the question.
	HintColor   string // Key bindings help.

	PromptPrefix   string
	ActivePrefix   string
	InactivePrefix string

	plain  bool
	output *termenv.Output
}

// ColorfulTheme returns the default theme, using the color
// profile detected on the output of the prompt.
func ColorfulTheme() *Theme {
	return &Theme{
		PromptColor:    "15",
		ActiveColor:    "6",
		HeaderColor:    "3",
		HintColor:      "8",
		PromptPrefix:   "? ",
		ActivePrefix:   "> ",
		InactivePrefix: "  ",
	}
}

// PlainTheme returns a theme without any escape sequence.
func PlainTheme() *Theme {
	theme := ColorfulTheme()
	theme.plain = true

	return theme
}

// bind returns a copy of the theme rendering for w.
func (t *Theme) bind(w io.Writer) *Theme {
	if t == nil {
		t = ColorfulTheme()
	}

	bound := *t
	if t.plain {
		bound.output = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	} else {
		bound.output = termenv.NewOutput(w)
	}

	return &bound
}

func (t *Theme) style(s, color string) termenv.Style {
	if t.output == nil {
		t.output = termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii))
	}

	return t.output.String(s).Foreground(t.output.Color(color))
}

func (t *Theme) prompt(s string) string {
	return t.PromptPrefix + t.style(s, t.PromptColor).Bold().String()
}

func (t *Theme) header(s string) string {
	return t.style("["+s+"]", t.HeaderColor).String()
}

func (t *Theme) item(s string, active bool) string {
	if active {
		return t.ActivePrefix + t.style(s, t.ActiveColor).Bold().String()
	}

	return t.InactivePrefix + s
}

func (t *Theme) answer(s string) string {
	return t.style(s, t.ActiveColor).String()
}

func (t *Theme) hint(s string) string {
	return t.style(s, t.HintColor).Faint().String()
}
