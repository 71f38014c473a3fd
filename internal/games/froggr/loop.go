package froggr

import (
	"context"
	"time"
)

// Host is the presentation side of Run.
type Host interface {
	// Input returns the snapshot the next tick consumes.
	Input() *Input
	// Frame is called after every tick that ran.
	Frame(res TickResult)
	// Decide is called once the session has ended. It may block; the engine
	// is not ticking meanwhile.
	Decide(o Outcome) Decision
}

// Run ticks the engine at a fixed interval until the context is cancelled
// or the host answers an ended session with anything but a restart. Paused
// ticks are skipped without touching the session.
func Run(ctx context.Context, e *Engine, interval time.Duration, h Host) (Decision, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return DecisionQuit, ctx.Err()
		case <-ticker.C:
		}

		if e.Status() == StatusPaused {
			continue
		}

		res := e.Tick(h.Input())
		h.Frame(res)
		if !res.Over && !res.Won {
			continue
		}

		d := h.Decide(e.Outcome())
		e.Decide(d)
		if d != DecisionRestart {
			return d, nil
		}
	}
}
