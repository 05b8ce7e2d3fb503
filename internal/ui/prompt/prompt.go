// Package prompt asks the user to pick a value for a missing argument.
package prompt

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/footprint-tools/botcmd/internal/domain"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/ui/style"
)

// ErrNotInteractive is returned when the picker is not attached to a terminal.
var ErrNotInteractive = errors.New("prompt requires an interactive terminal")

// Picker is a domain.Prompter that renders a list with Bubble Tea.
type Picker struct {
	in  io.Reader
	out io.Writer
}

// New returns a Picker on stdin and stdout.
func New() *Picker {
	return &Picker{in: os.Stdin, out: os.Stdout}
}

// Interactive reports whether both ends of the picker are terminals.
func (p *Picker) Interactive() bool {
	return isTerminal(p.in) && isTerminal(p.out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Choose shows choices and returns the index picked.
func (p *Picker) Choose(ctx context.Context, title string, choices []domain.Choice, defaultIndex int) (int, bool, error) {
	// Hard guard: Bubble Tea REQUIRES a real terminal
	if !p.Interactive() {
		return -1, false, ErrNotInteractive
	}
	if len(choices) == 0 {
		return -1, false, nil
	}

	prog := tea.NewProgram(
		newModel(title, choices, defaultIndex),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := prog.Run()
	if err != nil {
		return -1, false, errors.Wrap(err, "run prompt")
	}

	m := final.(model)
	if m.cancelled || m.chosen < 0 {
		return -1, false, nil
	}
	return m.chosen, true, nil
}

var _ domain.Prompter = (*Picker)(nil)

//
// Model
//

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("Enter", "choose")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Cancel}
}

type model struct {
	title     string
	choices   []domain.Choice
	cursor    int
	chosen    int
	cancelled bool
	keys      keyMap
	help      help.Model
}

func newModel(title string, choices []domain.Choice, defaultIndex int) model {
	cursor := 0
	if defaultIndex >= 0 && defaultIndex < len(choices) {
		cursor = defaultIndex
	}
	return model{
		title:   title,
		choices: choices,
		cursor:  cursor,
		chosen:  -1,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

//
// Bubble Tea lifecycle
//

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.choices) - 1
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}

	case key.Matches(keyMsg, m.keys.Choose):
		m.chosen = m.cursor
		return m, tea.Quit
	}

	return m, nil
}

//
// View
//

func (m model) View() string {
	if m.chosen >= 0 || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(style.Header(m.title))
	b.WriteString("\n\n")

	nameStyle := lipgloss.NewStyle().Width(maxLabelWidth(m.choices) + 2)
	for i, c := range m.choices {
		cursor := "   "
		label := nameStyle.Render(c.Label)
		if i == m.cursor {
			cursor = " → "
			label = style.Info(label)
		}
		b.WriteString(cursor)
		b.WriteString(label)
		if c.Description != "" {
			b.WriteString(style.Muted(c.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.bindings()))
	b.WriteString("\n")
	return b.String()
}

func maxLabelWidth(choices []domain.Choice) int {
	width := 0
	for _, c := range choices {
		if w := lipgloss.Width(c.Label); w > width {
			width = w
		}
	}
	return width
}
