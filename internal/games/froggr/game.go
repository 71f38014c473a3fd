package froggr

import (
	"sync"

	"github.com/vovakirdan/tui-froggr/internal/config"
	"github.com/vovakirdan/tui-froggr/internal/core"
	"github.com/vovakirdan/tui-froggr/internal/registry"
)

// Game adapts the engine to the arcade platform: it maps platform actions
// onto the directional input, drives one engine tick per Step and draws the
// field onto a screen buffer.
type Game struct {
	id     string
	title  string
	preset config.DifficultyPreset

	cfg     config.FroggrConfig
	loadErr error
	engine  *Engine
	input   *Input

	screenW  int
	screenH  int
	tickRate int
	tooSmall bool

	message      string
	messageTicks int
}

// Package-level settings applied on the next Reset, set from CLI flags.
var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset string
	soundPlayer      SoundPlayer
)

// SetConfigPath sets a custom config file for new sessions.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the preset for variants that do not fix one.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = preset
}

// SetSoundPlayer sets the sound player handed to new engines.
func SetSoundPlayer(p SoundPlayer) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	soundPlayer = p
}

func settings() (path string, preset string, sound SoundPlayer) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return configPath, difficultyPreset, soundPlayer
}

// New creates the standard game.
func New() *Game {
	return &Game{id: "froggr", title: "Froggr"}
}

// NewEasy creates the forgiving variant.
func NewEasy() *Game {
	return &Game{id: "froggr_easy", title: "Froggr (Easy)", preset: config.DifficultyEasy}
}

// NewHard creates the variant with fewer lives and denser traffic.
func NewHard() *Game {
	return &Game{id: "froggr_hard", title: "Froggr (Hard)", preset: config.DifficultyHard}
}

func init() {
	registry.Register("froggr", func() registry.Game {
		return New()
	})
	registry.Register("froggr_easy", func() registry.Game {
		return NewEasy()
	})
	registry.Register("froggr_hard", func() registry.Game {
		return NewHard()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Description summarizes the variant for listings.
func (g *Game) Description() string {
	switch g.preset {
	case config.DifficultyEasy:
		return "Five lives and the classic traffic"
	case config.DifficultyHard:
		return "Two lives and denser traffic"
	default:
		return "Cross the road and the river to fill all four homes"
	}
}

// Reset loads the configuration and starts a fresh session.
// A broken config file falls back to the built-in layout; LoadErr reports it.
func (g *Game) Reset(rc core.RuntimeConfig) {
	path, preset, sound := settings()

	cfg, err := config.LoadFroggr(path)
	if err != nil {
		cfg = config.DefaultFroggrConfig()
	}
	g.loadErr = err

	p := g.preset
	if p == "" {
		p = config.ParsePreset(preset)
	}
	config.ApplyFroggrPreset(&cfg, p)

	g.cfg = cfg
	g.engine = NewEngine(cfg, sound)
	g.input = NewInput()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.message = ""
	g.messageTicks = 0
	g.checkSize()
}

// LoadErr returns the error from the last config load, if any.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// Engine exposes the running simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step advances the game by one tick.
// Terminals report no key releases, so every direction pressed during a
// frame is released again once the tick has seen it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	status := g.engine.Status()

	if in.Has(core.ActionPause) && !status.Terminal() {
		g.engine.TogglePause()
	}
	if in.Has(core.ActionRestart) && status.Terminal() {
		g.Decide(DecisionRestart)
		return core.StepResult{State: g.State()}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, action := range in.Actions() {
		if action.IsHop() {
			g.input.Press(actionButtons[action])
		}
	}
	res := g.engine.Tick(g.input)
	g.input.Clear()

	switch {
	case res.Cause != CauseNone:
		g.flash(res.Cause.Message())
	case res.Goal:
		g.flash("Home safe!")
	case g.messageTicks > 0 && g.engine.Status() == StatusPlaying:
		g.messageTicks--
	}

	return core.StepResult{State: g.State()}
}

var actionButtons = map[core.Action]Button{
	core.ActionLeft:  ButtonLeft,
	core.ActionRight: ButtonRight,
	core.ActionUp:    ButtonUp,
	core.ActionDown:  ButtonDown,
}

// flash shows a message under the field for two seconds of play.
func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = 2 * g.tickRate
}

// Decide applies an end-of-session choice.
func (g *Game) Decide(d Decision) {
	g.engine.Decide(d)
	if d != DecisionQuit {
		g.message = ""
		g.messageTicks = 0
	}
}

// Outcome returns the result of the current session.
func (g *Game) Outcome() Outcome {
	return g.engine.Outcome()
}

// State returns the current game state. Once the session has ended the
// score is the final score.
func (g *Game) State() core.GameState {
	o := g.engine.Outcome()
	status := g.engine.Status()

	score := o.Score
	if status.Terminal() {
		score = o.FinalScore
	}
	return core.GameState{
		Score:    score,
		Lives:    o.Lives,
		GameOver: status.Terminal(),
		Won:      status == StatusWon,
		Paused:   status == StatusPaused,
	}
}
