package config

import (
	_ "embed"
)

//go:embed defaults/froggr.yaml
var defaultFroggrYAML []byte

// DefaultFroggrConfig returns the canonical 13-lane layout.
// It mirrors defaults/froggr.yaml and is the fallback when the embedded
// YAML cannot be parsed.
func DefaultFroggrConfig() FroggrConfig {
	return FroggrConfig{
		Field: FroggrField{
			Width:    500,
			Height:   700,
			CellSize: 50,
			Step:     5,
		},
		Player: FroggrPlayer{
			StartX: 250,
			StartY: 600,
			Lives:  3,
		},
		Scoring: FroggrScoring{
			NewLanePoints: 25,
			GoalBonus:     100,
			ScoreRowStart: 600,
		},
		Goals: FroggrGoals{
			Count:     4,
			Spacing:   150,
			Tolerance: 15,
		},
		Lanes: []LaneConfig{
			{Role: "goal"},
			{Role: "water", Kind: "log", Length: 3, Direction: "left", Regeneration: 225},
			{Role: "water", Kind: "turtle", Length: 2, Direction: "right", Regeneration: 325},
			{Role: "water", Kind: "log", Length: 3, Direction: "left", Regeneration: 225},
			{Role: "water", Kind: "turtle", Length: 3, Direction: "right", Regeneration: 225},
			{Role: "water", Kind: "lily", Length: 3, Direction: "left", Regeneration: 325},
			{Role: "grass"},
			{Role: "grass"},
			{Role: "road", Kind: "truck", Length: 2, Direction: "left", Regeneration: 250},
			{Role: "road", Kind: "car", Length: 3, Direction: "right", Regeneration: 350},
			{Role: "road", Kind: "car", Length: 2, Direction: "left", Regeneration: 225},
			{Role: "road", Kind: "car", Length: 1, Direction: "right", Regeneration: 175},
			{Role: "start"},
		},
		Difficulty: DifficultyConfig{
			RegenerationScale: 1.0,
		},
		Sound: SoundConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "froggr":
		return defaultFroggrYAML
	default:
		return nil
	}
}
