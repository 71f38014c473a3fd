package froggr

import (
	"github.com/vovakirdan/tui-froggr/internal/core"
)

// resolve decides what the actor's new position means: points for forward
// progress, death by traffic, riding a platform, drowning, or filling a goal.
// before is the actor's box ahead of this tick's hop. It returns the cause
// when the actor died this tick.
func (e *Engine) resolve(before core.Rect) DeathCause {
	if !e.actor.Alive {
		return CauseNone
	}
	cell := e.grid.Cell

	if e.actor.Y < e.session.NextScoreRow {
		e.session.Score += e.cfg.Scoring.NewLanePoints
		e.session.NextScoreRow -= cell
	}

	// A vehicle that swept over the actor's old cell ran it over before
	// the hop; the new cell only counts where the vehicle is now.
	box := e.actor.Box(cell)
	for _, v := range e.vehicles {
		if v.Removed {
			continue
		}
		if v.Y == before.Y && v.Swept(cell).Intersects(before) ||
			v.Y == box.Y && v.Span(cell).Intersects(box) {
			return e.kill(CauseVehicle)
		}
	}

	if !e.roleAt(e.actor.Y).Wet() {
		e.carry = 0
		return CauseNone
	}

	if cause, aboard := e.sail(); aboard {
		return cause
	}
	e.carry = 0

	if e.reachGoal() {
		return CauseNone
	}
	if e.actor.Y == 0 {
		return e.kill(CauseGoalSide)
	}
	return e.kill(CauseDrowned)
}

// sail carries the actor with the platform it stands on. Platforms move in
// sub-cell steps, so the displacement accumulates in carry and the actor
// jumps a whole cell whenever the carry reaches one. When several
// platforms qualify the last one in creation order carries the actor.
//
// aboard is false when no platform is under the actor.
func (e *Engine) sail() (cause DeathCause, aboard bool) {
	cell := e.grid.Cell
	exact := core.NewRect(e.actor.X+e.carry, e.actor.Y, cell, cell)

	var carrier *Object
	for i := range e.platforms {
		p := &e.platforms[i]
		if p.Removed || p.Y != e.actor.Y {
			continue
		}
		if p.PrevSpan(cell).Intersects(exact) {
			carrier = p
		}
	}

	if carrier == nil {
		// Just landed on something that moved underneath this tick.
		box := e.actor.Box(cell)
		for _, p := range e.platforms {
			if !p.Removed && p.Y == e.actor.Y && p.Span(cell).Intersects(box) {
				e.carry = 0
				return CauseNone, true
			}
		}
		return CauseNone, false
	}

	e.carry += carrier.DX
	x := e.actor.X
	for e.carry >= cell {
		x += cell
		e.carry -= cell
	}
	for e.carry <= -cell {
		x -= cell
		e.carry += cell
	}

	after := core.NewRect(x+e.carry, e.actor.Y, cell, cell)
	if !e.grid.Allowed(x, e.actor.Y) || !carrier.Span(cell).Intersects(after) {
		return e.kill(CauseDrift), true
	}
	e.actor.X = x
	return CauseNone, true
}

// reachGoal fills the goal zone under the actor, if any, and respawns it.
func (e *Engine) reachGoal() bool {
	if e.actor.Y != 0 {
		return false
	}

	for i := range e.zones {
		z := &e.zones[i]
		if z.Consumed || core.Abs(e.actor.X-z.X) > e.cfg.Goals.Tolerance {
			continue
		}
		z.Consumed = true
		e.session.Score += e.cfg.Scoring.GoalBonus
		e.session.GoalsConsumed++
		e.sound.Play(SoundVictory)
		e.respawn(e.actor.Lives)
		return true
	}
	return false
}

// kill takes a life from a living actor. A dead actor cannot die again.
func (e *Engine) kill(cause DeathCause) DeathCause {
	if !e.actor.Alive {
		return CauseNone
	}

	e.actor.Alive = false
	if e.actor.Lives > 0 {
		e.actor.Lives--
	}
	e.carry = 0
	e.sound.Play(cause.sound())
	return cause
}

// respawn replaces the actor at the start cell.
func (e *Engine) respawn(lives int) {
	e.actor = Actor{
		X:     e.cfg.Player.StartX,
		Y:     e.cfg.Player.StartY,
		Lives: lives,
		Alive: true,
	}
	e.carry = 0
	e.session.NextScoreRow = e.cfg.Scoring.ScoreRowStart
}

// roleAt returns the role of the lane containing y. Rows below the last
// lane are safe ground.
func (e *Engine) roleAt(y int) Role {
	row := e.grid.Row(y)
	if row < 0 || row >= len(e.lanes) {
		return RoleGrass
	}
	return e.lanes[row].Role
}
