package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cave-loot/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var testPrompt = core.Prompt{
	Title:   "You found Gold!",
	Lines:   []string{"Value: 20  Weight: 10"},
	Options: []string{"Take All", "Take Part", "Skip"},
}

func TestDialogSelect(t *testing.T) {
	d := NewDialog(testPrompt, DefaultMenuKeyMap())

	if _, done := d.HandleKey(keyMsg("down")); done {
		t.Fatal("moving the cursor should not settle")
	}
	answer, done := d.HandleKey(keyMsg("enter"))
	if !done || answer != 1 {
		t.Errorf("answer = %d, %v; want 1, true", answer, done)
	}
}

func TestDialogCursorWraps(t *testing.T) {
	d := NewDialog(testPrompt, DefaultMenuKeyMap())
	d.HandleKey(keyMsg("up"))
	if d.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", d.Cursor())
	}
	d.HandleKey(keyMsg("down"))
	if d.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", d.Cursor())
	}
}

func TestDialogDefault(t *testing.T) {
	p := testPrompt
	p.Default = 2
	if d := NewDialog(p, DefaultMenuKeyMap()); d.Cursor() != 2 {
		t.Errorf("cursor = %d, want default 2", d.Cursor())
	}
	p.Default = 7
	if d := NewDialog(p, DefaultMenuKeyMap()); d.Cursor() != 0 {
		t.Errorf("out-of-range default should fall back to 0, got %d", d.Cursor())
	}
}

func TestDialogDismissAndNumbers(t *testing.T) {
	tests := []struct {
		key    string
		answer int
		done   bool
	}{
		{"esc", core.Dismissed, true},
		{"3", 2, true},
		{"9", 0, false},
		{"x", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			d := NewDialog(testPrompt, DefaultMenuKeyMap())
			answer, done := d.HandleKey(keyMsg(tt.key))
			if answer != tt.answer || done != tt.done {
				t.Errorf("HandleKey(%q) = %d, %v; want %d, %v", tt.key, answer, done, tt.answer, tt.done)
			}
		})
	}
}

func TestDialogView(t *testing.T) {
	out := NewDialog(testPrompt, DefaultMenuKeyMap()).View()
	for _, want := range []string{"You found Gold!", "Value: 20", "1. Take All", "3. Skip"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
