package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cave-loot/internal/core"
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 3)
	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				MarginBottom(1)
	dialogLineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dialogOptionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dialogSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)

// Dialog shows a game prompt and collects the answer.
type Dialog struct {
	prompt core.Prompt
	cursor int
	keys   MenuKeyMap
}

// NewDialog opens a dialog with the cursor on the prompt's default option.
func NewDialog(p core.Prompt, keys MenuKeyMap) *Dialog {
	cursor := 0
	if p.Valid(p.Default) {
		cursor = p.Default
	}
	return &Dialog{prompt: p, cursor: cursor, keys: keys}
}

// Prompt returns the prompt on display.
func (d *Dialog) Prompt() core.Prompt {
	return d.prompt
}

// Cursor returns the highlighted option index.
func (d *Dialog) Cursor() int {
	return d.cursor
}

// HandleKey moves the cursor or settles the dialog. done is true when the
// player picked an option or dismissed the dialog, in which case answer is
// the option index or core.Dismissed.
func (d *Dialog) HandleKey(msg tea.KeyMsg) (answer int, done bool) {
	n := len(d.prompt.Options)
	switch {
	case key.Matches(msg, d.keys.Back):
		return core.Dismissed, true
	case key.Matches(msg, d.keys.Select):
		if n == 0 {
			return core.Dismissed, true
		}
		return d.cursor, true
	case key.Matches(msg, d.keys.Up):
		if n > 0 {
			d.cursor = (d.cursor - 1 + n) % n
		}
	case key.Matches(msg, d.keys.Down):
		if n > 0 {
			d.cursor = (d.cursor + 1) % n
		}
	default:
		// Number keys pick an option directly.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); d.prompt.Valid(i) {
				return i, true
			}
		}
	}
	return 0, false
}

// View renders the dialog box.
func (d *Dialog) View() string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render(d.prompt.Title))
	b.WriteString("\n")
	for _, line := range d.prompt.Lines {
		b.WriteString(dialogLineStyle.Render(line))
		b.WriteString("\n")
	}
	if len(d.prompt.Lines) > 0 {
		b.WriteString("\n")
	}

	opts := make([]string, len(d.prompt.Options))
	for i, opt := range d.prompt.Options {
		label := fmt.Sprintf(" %d. %s ", i+1, opt)
		if i == d.cursor {
			opts[i] = dialogSelectedStyle.Render(label)
		} else {
			opts[i] = dialogOptionStyle.Render(label)
		}
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, opts...))

	return dialogStyle.Render(b.String())
}
