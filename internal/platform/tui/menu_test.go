package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cave-loot/internal/config"
	_ "github.com/vovakirdan/cave-loot/internal/games/cave"
	_ "github.com/vovakirdan/cave-loot/internal/games/loot"
	"github.com/vovakirdan/cave-loot/internal/storage"
)

func TestMenuPicksGameThenDifficulty(t *testing.T) {
	m := NewMenuModel(nil, testConfig)
	if len(m.items) != 2 {
		t.Fatalf("items = %+v, want cave and loot", m.items)
	}

	send := func(k string) tea.Cmd {
		t.Helper()
		next, cmd := m.Update(keyMsg(k))
		m = next.(MenuModel)
		return cmd
	}

	send("down")
	if cmd := send("enter"); cmd != nil {
		t.Fatal("picking a game should open the difficulty choice")
	}
	if !strings.Contains(m.View(), "choose difficulty") {
		t.Error("difficulty stage not shown")
	}

	send("down") // normal -> hard
	if cmd := send("enter"); cmd == nil {
		t.Fatal("picking a difficulty should exit the menu")
	}
	if sel := m.Selected(); sel == nil || sel.GameID != "loot" {
		t.Errorf("selected = %+v, want loot", sel)
	}
	if m.preset != config.DifficultyHard {
		t.Errorf("preset = %q, want hard", m.preset)
	}
}

func TestMenuBackLeavesDifficulty(t *testing.T) {
	m := NewMenuModel(nil, testConfig)
	next, _ := m.Update(keyMsg("enter"))
	next, _ = next.Update(keyMsg("esc"))
	if next.(MenuModel).stage != stageGames {
		t.Error("esc should return to the game list")
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("cave", 120)

	m := NewMenuModel(store, testConfig)
	if !strings.Contains(m.View(), "best 120") {
		t.Error("menu should show the cave high score")
	}
}

func TestScoreboardToggleRecent(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRound(storage.Round{GameID: "cave", Reason: "hit", Score: 20, Value: 15, Weight: 9, Capacity: 50})

	m := NewScoreboardModel(store, 100, 30)
	if !strings.Contains(m.View(), "HIGH SCORES - Cave Adventure") {
		t.Errorf("view:\n%s", m.View())
	}
	if !strings.Contains(m.View(), "Rounds: 1") {
		t.Error("missing stats line")
	}

	next, _ := m.Update(keyMsg("r"))
	out := next.(ScoreboardModel).View()
	if !strings.Contains(out, "RECENT ROUNDS") || !strings.Contains(out, "9/50") {
		t.Errorf("recent view:\n%s", out)
	}
}
