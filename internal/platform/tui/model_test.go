package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-froggr/internal/core"
	"github.com/vovakirdan/tui-froggr/internal/games/froggr"
	"github.com/vovakirdan/tui-froggr/internal/storage"
)

// scriptedGame ends its session after a fixed number of steps.
type scriptedGame struct {
	endAfter  int
	won       bool
	steps     int
	resets    int
	decisions []froggr.Decision
	lastFrame core.InputFrame
	paused    bool
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.lastFrame = in
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) && g.over() {
		g.Decide(froggr.DecisionRestart)
	} else if !g.over() && !g.paused {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) over() bool { return g.steps >= g.endAfter }

func (g *scriptedGame) State() core.GameState {
	return core.GameState{
		Score:    g.steps * 10,
		Lives:    2,
		GameOver: g.over(),
		Won:      g.over() && g.won,
		Paused:   g.paused,
	}
}

func (g *scriptedGame) Outcome() froggr.Outcome {
	return froggr.Outcome{Won: g.won, Score: g.steps * 10, FinalScore: g.steps * 20, Lives: 2, Goals: 3, Ticks: uint64(g.steps)}
}

func (g *scriptedGame) Decide(d froggr.Decision) {
	g.decisions = append(g.decisions, d)
	if d != froggr.DecisionQuit {
		g.steps = 0
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m, _ = update(t, m, TickMsg{})
	}
	return m
}

func newTestModel(t *testing.T, g *scriptedGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60}, "tester")
	m.Init()
	return m
}

func TestModelForwardsHops(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m := newTestModel(t, g, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, runeKey('a'))
	m = tick(t, m, 1)

	if !g.lastFrame.Has(core.ActionUp) || !g.lastFrame.Has(core.ActionLeft) {
		t.Errorf("step should see both hops, got %v", g.lastFrame)
	}

	m = tick(t, m, 1)
	if !g.lastFrame.Empty() {
		t.Errorf("input should be cleared after a tick, got %v", g.lastFrame)
	}
	_ = m
}

func TestModelSavesFinishedSessionOnce(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{endAfter: 3, won: true}
	m := newTestModel(t, g, store)

	m = tick(t, m, 10)
	if !m.State().GameOver {
		t.Fatal("session should be over")
	}
	if err := m.SaveErr(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d stored results, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 60 || got.Outcome != storage.OutcomeWon || got.Goals != 3 || got.Lives != 2 || got.Player != "tester" {
		t.Errorf("stored %+v, want final score 60, won, 3 goals, 2 lives, player tester", got)
	}
}

func TestModelRestartStoresNextSession(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{endAfter: 2}
	m := newTestModel(t, g, store)

	m = tick(t, m, 5)
	m, _ = update(t, m, runeKey('r'))
	m = tick(t, m, 1)
	if m.State().GameOver {
		t.Fatal("restart should start a new session")
	}
	if len(g.decisions) != 1 || g.decisions[0] != froggr.DecisionRestart {
		t.Errorf("decisions = %v, want [restart]", g.decisions)
	}

	m = tick(t, m, 5)
	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("got %d stored results, want 2", len(scores))
	}
	for _, s := range scores {
		if s.Outcome != storage.OutcomeLost {
			t.Errorf("outcome = %q, want lost", s.Outcome)
		}
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m := newTestModel(t, g, nil)

	m = tick(t, m, 3)
	m, _ = update(t, m, runeKey('r'))
	m = tick(t, m, 1)

	if g.lastFrame.Has(core.ActionRestart) {
		t.Error("restart should not reach a running game")
	}
	if g.steps != 4 {
		t.Errorf("steps = %d, want 4", g.steps)
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m := newTestModel(t, g, nil)
	m = tick(t, m, 1)

	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m, 1)
	if !m.State().Paused {
		t.Fatal("game should be paused")
	}

	m, cmd := update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Fatal("back should work while paused")
	}
	if cmd != nil {
		t.Error("an embedded model should not quit the program on back")
	}
	if len(g.decisions) != 1 || g.decisions[0] != froggr.DecisionMenu {
		t.Errorf("decisions = %v, want [menu]", g.decisions)
	}
}

func TestModelQuit(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m := newTestModel(t, g, nil)

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if len(g.decisions) != 1 || g.decisions[0] != froggr.DecisionQuit {
		t.Errorf("decisions = %v, want [quit]", g.decisions)
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m := newTestModel(t, g, nil)
	m = tick(t, m, 5)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.steps != 5 {
		t.Errorf("steps = %d, want 5", g.steps)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelWithFroggr(t *testing.T) {
	g := froggr.New()
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "")
	m.Init()

	m = tick(t, m, 3)
	if m.State().GameOver || m.State().Lives <= 0 {
		t.Fatalf("fresh session state = %+v", m.State())
	}

	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m, 1)
	if !m.State().Paused {
		t.Error("p should pause the game")
	}

	m, _ = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b should leave a paused game")
	}
	if g.Engine().Status() != froggr.StatusPaused {
		t.Errorf("menu decision should leave a paused fresh session, got %v", g.Engine().Status())
	}
}
