// Package config provides YAML-based game configuration loading,
// difficulty presets and layout validation for the arcade platform.
package config

// FroggrConfig contains all configuration for the Froggr game.
// Distances are in field pixels; thresholds are in ticks.
type FroggrConfig struct {
	Field      FroggrField      `yaml:"field"`
	Player     FroggrPlayer     `yaml:"player"`
	Scoring    FroggrScoring    `yaml:"scoring"`
	Goals      FroggrGoals      `yaml:"goals"`
	Lanes      []LaneConfig     `yaml:"lanes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Sound      SoundConfig      `yaml:"sound"`
}

// FroggrField defines the playfield geometry.
type FroggrField struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
	Step     int `yaml:"step"` // Distance every vehicle and platform travels per tick
}

// FroggrPlayer defines where the actor starts and how many lives it has.
type FroggrPlayer struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Lives  int `yaml:"lives"`
}

// FroggrScoring defines point awards.
type FroggrScoring struct {
	NewLanePoints int `yaml:"new_lane_points"`
	GoalBonus     int `yaml:"goal_bonus"`
	ScoreRowStart int `yaml:"score_row_start"` // Initial progress-scoring threshold (y)
}

// FroggrGoals defines the win zones on the top row.
type FroggrGoals struct {
	Count     int `yaml:"count"`
	Spacing   int `yaml:"spacing"`
	Tolerance int `yaml:"tolerance"`
}

// LaneConfig defines one row of the field from top to bottom.
// Kind, Length, Direction and Regeneration only matter for lanes that spawn.
type LaneConfig struct {
	Role         string `yaml:"role"`      // start, grass, water, road, goal
	Kind         string `yaml:"kind"`      // car, truck, log, turtle, lily
	Length       int    `yaml:"length"`    // In cells
	Direction    string `yaml:"direction"` // left, right
	Regeneration int    `yaml:"regeneration"`
}

// SoundConfig controls the sound effect player.
type SoundConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// DifficultyConfig defines how a preset reshapes the session at construction.
type DifficultyConfig struct {
	RegenerationScale float64 `yaml:"regeneration_scale"` // Multiplier on every lane's regeneration
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyClassic DifficultyPreset = "classic"
)

// ParsePreset converts a CLI value into a preset.
// Unknown or empty values yield "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyClassic:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
