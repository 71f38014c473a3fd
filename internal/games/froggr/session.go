package froggr

// Session holds the score and progress of one play-through.
type Session struct {
	Score         int
	GoalsConsumed int
	NextScoreRow  int // Moving above this y awards progress points
	Paused        bool
	Over          bool // Out of lives
	Won           bool // Every goal filled
}

// Status is the state of the session state machine.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

func (s Session) status() Status {
	switch {
	case s.Won:
		return StatusWon
	case s.Over:
		return StatusLost
	case s.Paused:
		return StatusPaused
	default:
		return StatusPlaying
	}
}

// Decision is the host's answer to the end of a session.
type Decision int

const (
	DecisionRestart Decision = iota
	DecisionMenu
	DecisionQuit
)

func (d Decision) String() string {
	switch d {
	case DecisionRestart:
		return "restart"
	case DecisionMenu:
		return "menu"
	case DecisionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome summarizes a finished session for the host.
type Outcome struct {
	Won        bool
	Score      int
	FinalScore int
	Lives      int
	Goals      int
	Ticks      uint64
}

// finalScore multiplies the score by the remaining lives; a lost game keeps
// the raw score.
func finalScore(score, lives int) int {
	if lives > 0 {
		return score * lives
	}
	return score
}

// Restart throws away the session and starts a fresh one. It is the only
// way out of a won or lost session.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

func (e *Engine) reset() {
	e.tick = 0
	e.vehicles = e.vehicles[:0]
	e.platforms = e.platforms[:0]
	for i := range e.lanes {
		e.lanes[i].Elapsed = 0
	}
	for i := range e.zones {
		e.zones[i].Consumed = false
	}
	e.session = Session{}
	e.respawn(e.cfg.Player.Lives)
}

// Pause suspends ticking. Ended sessions cannot be paused.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.session.Over && !e.session.Won {
		e.session.Paused = true
	}
}

// Resume continues a paused session from exactly where it stopped.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Paused = false
}

// TogglePause pauses a running session or resumes a paused one.
func (e *Engine) TogglePause() {
	if e.Status() == StatusPaused {
		e.Resume()
		return
	}
	e.Pause()
}

// Decide applies the host's end-of-session choice. Menu starts a fresh
// session that waits paused behind the title screen; Quit leaves the
// session ended.
func (e *Engine) Decide(d Decision) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch d {
	case DecisionRestart:
		e.reset()
	case DecisionMenu:
		e.reset()
		e.session.Paused = true
	}
}

// Outcome reports the session result so far.
func (e *Engine) Outcome() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.outcome()
}

func (e *Engine) outcome() Outcome {
	return Outcome{
		Won:        e.session.Won,
		Score:      e.session.Score,
		FinalScore: finalScore(e.session.Score, e.actor.Lives),
		Lives:      e.actor.Lives,
		Goals:      e.session.GoalsConsumed,
		Ticks:      e.tick,
	}
}

// FinalScore returns the score the session is worth if it ended now.
func (e *Engine) FinalScore() int {
	return e.Outcome().FinalScore
}
