package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/riffrun/internal/core"
	"github.com/vovakirdan/riffrun/internal/metrics"
	"github.com/vovakirdan/riffrun/internal/storage"
)

// scriptedGame ends after a fixed number of steps.
type scriptedGame struct {
	resets  int
	resizes int
	steps   int
	endAt   int
	last    core.InputFrame
}

func (g *scriptedGame) ID() string                 { return "scripted" }
func (g *scriptedGame) Title() string              { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig)   { g.resets++; g.steps = 0 }
func (g *scriptedGame) Resize(int, int)            { g.resizes++ }
func (g *scriptedGame) Render(dst *core.Screen)    { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) Session() core.SessionStats { return core.SessionStats{Notes: 3, Score: 450, Seconds: 2, MaxCombo: 2.5} }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	if g.steps < g.endAt {
		g.steps++
	}
	return core.StepResult{State: g.State(), Ended: g.steps == g.endAt}
}

func (g *scriptedGame) State() core.GameState {
	over := g.steps >= g.endAt
	return core.GameState{Score: 450, GameOver: over}
}

func newTestModel(t *testing.T, g *scriptedGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	m := NewModel(g, cfg, Options{Store: store, Metrics: metrics.NewRecorder()})
	m.Init()
	return m, store
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelSavesSessionOnce(t *testing.T) {
	g := &scriptedGame{endAt: 3}
	m, store := newTestModel(t, g)

	for range 10 {
		m = tick(m)
	}

	if !m.State().GameOver {
		t.Fatal("State().GameOver = false, expected true")
	}

	sessions, err := store.RecentSessions("scripted", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("RecentSessions() returned %d records, expected 1", len(sessions))
	}
	if sessions[0].Outcome != "lost" || sessions[0].Stats.Score != 450 {
		t.Errorf("saved session = %+v", sessions[0])
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &scriptedGame{endAt: 1}
	m, store := newTestModel(t, g)

	m = tick(m)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(next.(Model))

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if m.State().GameOver {
		t.Error("State().GameOver = true after restart")
	}

	m = tick(m)
	sessions, _ := store.RecentSessions("scripted", 10)
	if len(sessions) != 2 {
		t.Errorf("RecentSessions() returned %d records, expected 2", len(sessions))
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m, _ := newTestModel(t, g)

	m = tick(m)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if g.resizes != 1 {
		t.Errorf("resizes = %d, expected 1", g.resizes)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, expected 60x20", m.screen.Width(), m.screen.Height())
	}
}

func TestModelMouseInput(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m, _ := newTestModel(t, g)

	next, _ := m.Update(tea.MouseMsg{X: 12, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(next.(Model))

	if !g.last.HasPointer || g.last.Pointer != (core.Pointer{X: 12, Y: 4}) {
		t.Errorf("pointer = %+v (set %v), expected {12 4}", g.last.Pointer, g.last.HasPointer)
	}
	if !g.last.Has(core.ActionDash) {
		t.Error("left click did not request a dash")
	}

	m = tick(m)
	if g.last.HasPointer || g.last.Has(core.ActionDash) {
		t.Error("input was not cleared after the tick")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &scriptedGame{endAt: 100})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, &scriptedGame{endAt: 100})
	if got := m.View(); len(got) == 0 {
		t.Error("View() returned empty output")
	}
}
