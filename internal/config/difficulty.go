package config

import "math"

// ApplyFroggrPreset modifies the config based on a difficulty preset.
// Presets are applied once, before the session is built; lane periods stay
// fixed for the whole session.
//
//   - easy: five lives, unscaled traffic
//   - normal: three lives, unscaled traffic; the plain froggr variant
//   - hard: two lives, lanes regenerate in 60% of their period
//   - classic: the config exactly as loaded
func ApplyFroggrPreset(cfg *FroggrConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Difficulty.RegenerationScale = 1.0
	case DifficultyNormal:
		cfg.Player.Lives = 3
		cfg.Difficulty.RegenerationScale = 1.0
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Difficulty.RegenerationScale = 0.6
	}
}

// ScaledRegeneration returns the regeneration threshold of a lane after
// applying the difficulty scale. The result is never below one tick.
func (c FroggrConfig) ScaledRegeneration(base int) int {
	scale := c.Difficulty.RegenerationScale
	if scale <= 0 {
		scale = 1.0
	}
	scaled := int(math.Round(float64(base) * scale))
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}
