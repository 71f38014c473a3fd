package froggr

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-froggr/internal/config"
	"github.com/vovakirdan/tui-froggr/internal/core"
	"github.com/vovakirdan/tui-froggr/internal/registry"
)

// useDefaultConfig points new games at a copy of the built-in config so
// tests never read the user's home directory.
func useDefaultConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "froggr.yaml")
	if err := os.WriteFile(path, config.GetDefaultYAML("froggr"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetSoundPlayer(nil)
	})
}

func newGame(t *testing.T, g *Game) *Game {
	t.Helper()
	g.Reset(core.DefaultConfig())
	if err := g.LoadErr(); err != nil {
		t.Fatalf("config load failed: %v", err)
	}
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"froggr", "froggr_easy", "froggr_hard"} {
		if !registry.Exists(id) {
			t.Errorf("%s is not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%s).ID() = %s", id, g.ID())
		}
	}
}

func TestVariantLives(t *testing.T) {
	useDefaultConfig(t)

	tests := []struct {
		game  *Game
		lives int
	}{
		{New(), 3},
		{NewEasy(), 5},
		{NewHard(), 2},
	}
	for _, tc := range tests {
		g := newGame(t, tc.game)
		if got := g.State().Lives; got != tc.lives {
			t.Errorf("%s: Lives = %d, expected %d", g.ID(), got, tc.lives)
		}
	}
}

func TestGlobalPresetAppliesToStandardVariant(t *testing.T) {
	useDefaultConfig(t)
	SetDifficultyPreset("hard")

	if got := newGame(t, New()).State().Lives; got != 2 {
		t.Errorf("Lives = %d, expected 2 from the hard preset", got)
	}
	if got := newGame(t, NewEasy()).State().Lives; got != 5 {
		t.Errorf("easy variant Lives = %d, expected its own preset", got)
	}
}

func TestBrokenConfigFallsBack(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig())
	if g.LoadErr() == nil {
		t.Error("LoadErr() should report the missing file")
	}
	if got := g.State().Lives; got != 3 {
		t.Errorf("Lives = %d, expected the built-in default", got)
	}
}

func TestStepMovesActor(t *testing.T) {
	useDefaultConfig(t)
	g := newGame(t, New())

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	g.Step(in)

	a := g.Engine().Actor()
	if a.Y != 550 {
		t.Errorf("actor Y = %d, expected 550", a.Y)
	}
	if g.input.Pressed(ButtonUp) {
		t.Error("input should be released after the tick")
	}
	if got := g.State().Score; got != 25 {
		t.Errorf("Score = %d, expected 25", got)
	}
}

func TestStepPause(t *testing.T) {
	useDefaultConfig(t)
	g := newGame(t, New())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("Pause action should pause")
	}

	in.Clear()
	in.Set(core.ActionUp)
	g.Step(in)
	if a := g.Engine().Actor(); a.Y != 600 {
		t.Error("actor moved while paused")
	}

	in.Clear()
	in.Set(core.ActionPause)
	g.Step(in)
	if g.State().Paused {
		t.Error("second Pause action should resume")
	}
}

func TestStepRestartAfterGameOver(t *testing.T) {
	useDefaultConfig(t)
	g := newGame(t, NewHard())

	e := g.Engine()
	for !e.Status().Terminal() {
		e.mu.Lock()
		place(e, 250, 100)
		e.mu.Unlock()
		g.Step(core.NewInputFrame())
	}

	st := g.State()
	if !st.GameOver || st.Won || st.Lives != 0 {
		t.Fatalf("State = %+v, expected lost", st)
	}
	if !strings.Contains(g.message, "Splash") {
		t.Errorf("message = %q, expected the drowning message", g.message)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	if st := g.State(); st.GameOver || st.Lives != 2 {
		t.Errorf("State after restart = %+v", st)
	}
}

func TestStateReportsFinalScore(t *testing.T) {
	useDefaultConfig(t)
	g := newGame(t, New())

	e := g.Engine()
	e.mu.Lock()
	e.session.Score = 700
	e.session.Won = true
	e.mu.Unlock()

	st := g.State()
	if !st.GameOver || !st.Won || st.Score != 2100 {
		t.Errorf("State = %+v, expected won with final score 2100", st)
	}
}

func TestSoundPlayerIsUsed(t *testing.T) {
	useDefaultConfig(t)
	var sounds soundLog
	SetSoundPlayer(&sounds)

	g := newGame(t, New())
	e := g.Engine()
	e.mu.Lock()
	place(e, 250, 100)
	e.mu.Unlock()
	g.Step(core.NewInputFrame())

	if len(sounds) != 1 || sounds[0] != SoundSplash {
		t.Errorf("sounds = %v", sounds)
	}
}

func TestRender(t *testing.T) {
	useDefaultConfig(t)
	g := newGame(t, New())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"Score: 0", "Goals: 0/4", "Froggr", "<@@>", "[  ]", "~~~~"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q", want)
		}
	}

	// The actor sits on the start row, five cells from the left edge.
	fw, _ := g.fieldSize()
	ox := (80 - fw) / 2
	row := []rune(scr.Row(hudRows + 12))
	if got := string(row[ox+5*cellChars : ox+6*cellChars]); got != "<@@>" {
		t.Errorf("start row at actor = %q", got)
	}
}

func TestRenderObjectsAndOverlay(t *testing.T) {
	useDefaultConfig(t)
	g := newGame(t, New())
	e := g.Engine()

	e.mu.Lock()
	e.add(Object{X: 0, Y: 550, Length: 1, Direction: DirRight, Kind: KindCar})
	e.add(Object{X: -100, Y: 50, Length: 3, Direction: DirLeft, Kind: KindLog})
	e.zones[1].Consumed = true
	e.mu.Unlock()

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"▆▆▆▆", "▬▬▬▬", "[@@]"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q", want)
		}
	}
	fw, _ := g.fieldSize()
	if got := scr.GetCell((80-fw)/2, hudRows+11).Color; got != core.ColorBrightRed {
		t.Errorf("car color = %v, expected bright red", got)
	}

	e.mu.Lock()
	e.session.Over = true
	e.mu.Unlock()
	g.Render(scr)
	out = scr.String()
	for _, want := range []string{"GAME OVER", "Final Score: 0", "R restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay is missing %q", want)
		}
	}
}

func TestRenderActorRidesWithPlatform(t *testing.T) {
	useDefaultConfig(t)
	g := newGame(t, New())
	e := g.Engine()

	e.mu.Lock()
	place(e, 100, 100)
	e.carry = 25
	e.mu.Unlock()

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// Half a cell of carry moves the sprite two of its four columns.
	fw, _ := g.fieldSize()
	ox := (80 - fw) / 2
	row := []rune(scr.Row(hudRows + 2))
	if got := string(row[ox+2*cellChars+2 : ox+3*cellChars+2]); got != "<@@>" {
		t.Errorf("water row at actor = %q, expected the sprite shifted by the carry", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	useDefaultConfig(t)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60})

	scr := core.NewScreen(30, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("small screen should show a warning")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	g.Step(in)
	if a := g.Engine().Actor(); a.Y != 600 {
		t.Error("game should not run in a window that is too small")
	}
}
