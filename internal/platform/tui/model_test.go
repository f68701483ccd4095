package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/testcraft/internal/config"
	"github.com/vovakirdan/testcraft/internal/core"
	"github.com/vovakirdan/testcraft/internal/scene"
	"github.com/vovakirdan/testcraft/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Config:     config.Default(),
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		Store:      store,
		Player:     "tester",
		Difficulty: "normal",
	})
}

// send feeds one message and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func TestModelStartsOnMenu(t *testing.T) {
	m := newTestModel(t, nil)

	if m.Flow().State() != scene.StateMenu {
		t.Errorf("initial state = %v, expected Menu", m.Flow().State())
	}
	if !strings.Contains(m.View(), "TESTCRAFT!") {
		t.Error("menu view should show the title")
	}
}

func TestModelEnterStartsRun(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Flow().State() != scene.StatePlaying {
		t.Errorf("state after Enter = %v, expected Playing", m.Flow().State())
	}
}

func TestModelMouseHoverAndClick(t *testing.T) {
	m := newTestModel(t, nil)

	// Cell (40, 12) of an 80x24 terminal maps to world (405, 416), inside the button.
	// All-motion tracking reports plain moves with no button held.
	m = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if !m.Flow().Button().Hovered() {
		t.Error("button should be hovered under the pointer")
	}
	m = send(t, m, tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if m.Flow().Button().Hovered() {
		t.Error("button should not stay hovered after the pointer leaves")
	}

	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Flow().State() != scene.StateMenu {
		t.Error("click outside the button should not start a run")
	}

	m = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Flow().State() != scene.StatePlaying {
		t.Errorf("state after click = %v, expected Playing", m.Flow().State())
	}
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	startX := m.Flow().Game().Player().Rect.X
	m = send(t, m, runeKey('d'))
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	// Vx ramps 1 then 2
	if got := m.Flow().Game().Player().Rect.X; got != startX+3 {
		t.Errorf("player X = %d, expected %d", got, startX+3)
	}

	// Reversing drops Right at once
	m = send(t, m, runeKey('a'))
	m = send(t, m, TickMsg{})
	p := m.Flow().Game().Player()
	if p.Facing.String() != "left" {
		t.Errorf("facing = %v, expected left", p.Facing)
	}
}

func TestModelHoldExpires(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey('d'))

	// 500ms at 60 ticks per second
	for range 30 {
		m = send(t, m, TickMsg{})
	}
	x := m.Flow().Game().Player().Rect.X

	m = send(t, m, TickMsg{})
	if got := m.Flow().Game().Player().Rect.X; got != x {
		t.Errorf("player kept moving after the hold expired: %d -> %d", x, got)
	}
}

func TestModelHoldBridgesRepeatDelay(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey('d'))

	// Terminals wait about 500ms before the first auto-repeat
	for range 29 {
		m = send(t, m, TickMsg{})
	}
	x := m.Flow().Game().Player().Rect.X
	m = send(t, m, TickMsg{})
	if got := m.Flow().Game().Player().Rect.X; got <= x {
		t.Errorf("player stopped before the first repeat could arrive: %d -> %d", x, got)
	}
}

func TestHoldTicks(t *testing.T) {
	tests := []struct {
		d     time.Duration
		rate  int
		ticks int
	}{
		{0, 60, 30},
		{DefaultHoldDuration, 30, 15},
		{700 * time.Millisecond, 60, 42},
	}

	for _, tt := range tests {
		if got := holdTicks(tt.d, tt.rate); got != tt.ticks {
			t.Errorf("holdTicks(%v, %d) = %d, expected %d", tt.d, tt.rate, got, tt.ticks)
		}
	}
}

func TestModelPauseIsOneShot(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})
	if !m.Flow().Game().State().Paused {
		t.Fatal("game should be paused")
	}

	// Later ticks must not toggle it back
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})
	if !m.Flow().Game().State().Paused {
		t.Error("pause should stay on until pressed again")
	}

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})
	if m.Flow().Game().State().Paused {
		t.Error("second press should unpause")
	}
}

func TestModelForfeitAndBackToMenu(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = send(t, m, TickMsg{})
	if m.Flow().State() != scene.StateGameOver {
		t.Fatalf("state after Esc = %v, expected GameOver", m.Flow().State())
	}
	if !m.Flow().LastResult().Forfeited {
		t.Error("run should be marked forfeited")
	}
	if !strings.Contains(m.View(), "Play again") {
		t.Error("game over view should show the Play again button")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.Flow().State() != scene.StateMenu {
		t.Errorf("state after second Esc = %v, expected Menu", m.Flow().State())
	}
}

func TestModelPlayAgainOpensMenu(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = send(t, m, TickMsg{})
	if m.Flow().State() != scene.StateGameOver {
		t.Fatalf("state after Esc = %v, expected GameOver", m.Flow().State())
	}

	m = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Flow().State() != scene.StateMenu {
		t.Fatalf("state after Play again = %v, expected Menu", m.Flow().State())
	}
	if !strings.Contains(m.View(), "Start game!") {
		t.Error("menu view should show the Start button")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Flow().State() != scene.StatePlaying {
		t.Errorf("state after Enter on the menu = %v, expected Playing", m.Flow().State())
	}
}

func TestModelViewShowsShapesWithoutColor(t *testing.T) {
	// Under go test the default renderer has no color profile
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for range 60 {
		m = send(t, m, TickMsg{})
	}

	rect := m.Flow().Game().Player().Rect
	row := rect.Y * 24 / 800
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Fatalf("view has %d lines, expected 24", len(lines))
	}
	if !strings.ContainsRune(lines[row], core.BlockGlyph) {
		t.Errorf("player row %d = %q, expected block glyphs", row, lines[row])
	}
	if strings.TrimSpace(lines[row]) == "" {
		t.Errorf("player row %d is blank", row)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.ShowingScoreboard() {
		t.Fatal("tab should open the scoreboard on the menu")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view should show its title")
	}

	// Ticks are ignored while the board is open
	m = send(t, m, TickMsg{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.ShowingScoreboard() {
		t.Error("esc should close the scoreboard")
	}
	if m.Flow().State() != scene.StateMenu {
		t.Errorf("closing the scoreboard changed state to %v", m.Flow().State())
	}

	// Not available mid-run
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ShowingScoreboard() {
		t.Error("scoreboard should not open during a run")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg{})
	ticks := m.Flow().Game().State().Ticks

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Flow().State() != scene.StatePlaying {
		t.Error("resize should not end the run")
	}
	if got := m.Flow().Game().State().Ticks; got != ticks {
		t.Errorf("resize reset the run: ticks %d -> %d", ticks, got)
	}
	if lines := strings.Count(m.View(), "\n"); lines != 39 {
		t.Errorf("view has %d line breaks, expected 39", lines)
	}
}

func TestModelLoadsBestFromStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.RecordRun("tester", "normal", 12, 600)
	store.RecordRun("tester", "hard", 40, 600)

	m := newTestModel(t, store)
	if got := m.Flow().Best(); got != 12 {
		t.Errorf("Best() = %d, expected 12 from the normal runs", got)
	}
}
