package froggr

import (
	"sync"

	"github.com/vovakirdan/tui-froggr/internal/config"
	"github.com/vovakirdan/tui-froggr/internal/core"
)

// TickResult is what a tick reports to its caller.
type TickResult struct {
	Alive bool
	Lives int
	Score int
	Over  bool
	Won   bool
	Cause DeathCause // Set on the tick the actor died
	Goal  bool       // Set on the tick a goal was filled
}

// Engine runs the Froggr simulation. Every tick and query holds the engine
// lock, so a renderer on another goroutine always sees a finished tick.
type Engine struct {
	mu sync.Mutex

	cfg   config.FroggrConfig
	grid  Grid
	sound SoundPlayer

	lanes     []Lane
	vehicles  []Object
	platforms []Object
	zones     []WinZone
	actor     Actor
	session   Session
	carry     int // Platform displacement not yet applied to the actor
	tick      uint64
}

// NewEngine builds a session from a validated configuration. A nil sound
// player discards sound events.
func NewEngine(cfg config.FroggrConfig, sound SoundPlayer) *Engine {
	if sound == nil {
		sound = NopSound{}
	}

	e := &Engine{
		cfg:   cfg,
		grid:  newGrid(cfg.Field),
		sound: sound,
		lanes: buildLanes(cfg),
		zones: make([]WinZone, cfg.Goals.Count),
	}
	for i := range e.zones {
		e.zones[i] = WinZone{X: i * cfg.Goals.Spacing, Y: 0}
	}
	e.reset()
	return e
}

// Tick advances the simulation by one step: respawn, spawn, move, actor
// move, resolve, end checks, cleanup. It does nothing while the session is
// paused or has ended. in may be nil.
func (e *Engine) Tick(in *Input) TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session.Paused || e.session.Over || e.session.Won {
		return e.result(CauseNone, false)
	}
	e.tick++

	if !e.actor.Alive && e.actor.Lives > 0 {
		e.respawn(e.actor.Lives)
	}

	for i := range e.lanes {
		e.advance(&e.lanes[i])
	}
	e.move()
	before := e.actor.Box(e.grid.Cell)
	e.control(in)

	goals := e.session.GoalsConsumed
	cause := e.resolve(before)

	if e.actor.Lives == 0 {
		e.session.Over = true
	}
	if e.session.GoalsConsumed >= len(e.zones) {
		e.session.Won = true
	}

	e.compact()
	return e.result(cause, e.session.GoalsConsumed > goals)
}

func (e *Engine) result(cause DeathCause, goal bool) TickResult {
	return TickResult{
		Alive: e.actor.Alive,
		Lives: e.actor.Lives,
		Score: e.session.Score,
		Over:  e.session.Over,
		Won:   e.session.Won,
		Cause: cause,
		Goal:  goal,
	}
}

// Grid returns the field geometry.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Actor returns the current actor.
func (e *Engine) Actor() Actor {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.actor
}

// ActorDrawX is where the actor appears: its cell plus the platform
// displacement not yet applied, kept inside the field.
func (e *Engine) ActorDrawX() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return core.Clamp(e.actor.X+e.carry, 0, e.grid.Width-e.grid.Cell)
}

// Vehicles returns a copy of the live vehicles in creation order.
func (e *Engine) Vehicles() []Object {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Object(nil), e.vehicles...)
}

// Platforms returns a copy of the live platforms in creation order.
func (e *Engine) Platforms() []Object {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Object(nil), e.platforms...)
}

// Lanes returns a copy of the lanes, top to bottom.
func (e *Engine) Lanes() []Lane {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Lane(nil), e.lanes...)
}

// WinZones returns a copy of the goal zones, left to right.
func (e *Engine) WinZones() []WinZone {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]WinZone(nil), e.zones...)
}

// Session returns the current session counters.
func (e *Engine) Session() Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Status returns the state machine position.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.status()
}
