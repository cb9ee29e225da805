package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is a single-selection list.
type selectModel struct {
	req     Request
	theme   *Theme
	cursor  int
	done    bool
	aborted bool
}

func newSelectModel(req Request, theme *Theme) selectModel {
	return selectModel{
		req:    req,
		theme:  theme,
		cursor: req.defaultIndex(),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.req.Items) == 0 {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up", "k", "shift+tab":
		m.cursor = (m.cursor - 1 + len(m.req.Items)) % len(m.req.Items)
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % len(m.req.Items)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.req.Items) - 1
	}

	return m, nil
}

func (m selectModel) answered() bool { return m.done }

func (m selectModel) View() string {
	var view strings.Builder

	if m.aborted {
		return ""
	}

	if m.req.Header != "" {
		view.WriteString(m.theme.header(m.req.Header) + "\n")
	}

	view.WriteString(m.theme.prompt(m.req.Prompt))

	if m.done {
		view.WriteString(" " + m.theme.answer(m.req.Items[m.cursor]) + "\n")
		return view.String()
	}

	view.WriteString("\n")

	for i, item := range m.req.Items {
		view.WriteString(m.theme.item(item, i == m.cursor) + "\n")
	}

	view.WriteString(m.theme.hint("↑/↓ move, enter select, esc cancel") + "\n")

	return view.String()
}

// inputModel reads a single line of text.
type inputModel struct {
	req     Request
	theme   *Theme
	value   []rune
	done    bool
	aborted bool
}

func newInputModel(req Request, theme *Theme) inputModel {
	return inputModel{req: req, theme: theme}
}

func (m inputModel) Init() tea.Cmd {
	return nil
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.value) > 0 {
			m.value = m.value[:len(m.value)-1]
		}
	case tea.KeySpace:
		m.value = append(m.value, ' ')
	case tea.KeyRunes:
		m.value = append(m.value, key.Runes...)
	}

	return m, nil
}

// answer returns the typed text, or the default one on an empty line.
func (m inputModel) answer() string {
	if len(m.value) == 0 {
		return m.req.DefaultText
	}

	return string(m.value)
}

func (m inputModel) answered() bool { return m.done }

func (m inputModel) View() string {
	var view strings.Builder

	if m.aborted {
		return ""
	}

	if m.req.Header != "" {
		view.WriteString(m.theme.header(m.req.Header) + "\n")
	}

	view.WriteString(m.theme.prompt(m.req.Prompt))

	if m.req.DefaultText != "" && !m.done {
		view.WriteString(" " + m.theme.hint("("+m.req.DefaultText+")"))
	}

	if m.done {
		view.WriteString(" " + m.theme.answer(m.answer()) + "\n")
		return view.String()
	}

	view.WriteString(" " + string(m.value) + "\n")

	return view.String()
}
