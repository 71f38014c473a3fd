package froggr

// Snapshot captures the complete game state for determinism testing and
// the headless runner.
type Snapshot struct {
	Tick      uint64
	Status    Status
	Score     int
	Goals     int
	Lives     int
	Alive     bool
	ActorX    int
	ActorY    int
	Carry     int
	Vehicles  int
	Platforms int
	Timers    []int // Elapsed ticks per lane
	Consumed  []bool
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	timers := make([]int, len(e.lanes))
	for i, l := range e.lanes {
		timers[i] = l.Elapsed
	}
	consumed := make([]bool, len(e.zones))
	for i, z := range e.zones {
		consumed[i] = z.Consumed
	}

	return Snapshot{
		Tick:      e.tick,
		Status:    e.session.status(),
		Score:     e.session.Score,
		Goals:     e.session.GoalsConsumed,
		Lives:     e.actor.Lives,
		Alive:     e.actor.Alive,
		ActorX:    e.actor.X,
		ActorY:    e.actor.Y,
		Carry:     e.carry,
		Vehicles:  len(e.vehicles),
		Platforms: len(e.platforms),
		Timers:    timers,
		Consumed:  consumed,
	}
}
