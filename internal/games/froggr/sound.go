package froggr

// Sound is a gameplay event that has an audible cue.
type Sound int

const (
	SoundNone Sound = iota
	SoundCollision
	SoundSplash
	SoundVictory
)

func (s Sound) String() string {
	switch s {
	case SoundCollision:
		return "collision"
	case SoundSplash:
		return "splash"
	case SoundVictory:
		return "victory"
	default:
		return "none"
	}
}

// SoundPlayer receives sound events from the simulation.
// Play is called while a tick is running and must not block.
type SoundPlayer interface {
	Play(s Sound)
}

// SoundFunc adapts a function to SoundPlayer.
type SoundFunc func(Sound)

// Play calls f(s).
func (f SoundFunc) Play(s Sound) { f(s) }

// NopSound discards every event.
type NopSound struct{}

// Play does nothing.
func (NopSound) Play(Sound) {}

// DeathCause records why the actor lost a life.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseVehicle
	CauseDrowned
	CauseDrift
	CauseGoalSide
)

func (c DeathCause) String() string {
	switch c {
	case CauseVehicle:
		return "vehicle"
	case CauseDrowned:
		return "drowned"
	case CauseDrift:
		return "drift"
	case CauseGoalSide:
		return "goal side"
	default:
		return "none"
	}
}

// Message is the player-facing explanation of the death.
func (c DeathCause) Message() string {
	switch c {
	case CauseVehicle:
		return "Squashed by traffic!"
	case CauseDrowned:
		return "Splash! Frogs can't swim here."
	case CauseDrift:
		return "Carried away by the current!"
	case CauseGoalSide:
		return "Bumped into the bank!"
	default:
		return ""
	}
}

func (c DeathCause) sound() Sound {
	switch c {
	case CauseVehicle, CauseGoalSide:
		return SoundCollision
	case CauseDrowned, CauseDrift:
		return SoundSplash
	default:
		return SoundNone
	}
}
