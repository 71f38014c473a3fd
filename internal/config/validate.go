package config

import (
	"fmt"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

var (
	knownRoles      = map[string]bool{"start": true, "grass": true, "water": true, "road": true, "goal": true}
	knownKinds      = map[string]bool{"car": true, "truck": true, "log": true, "turtle": true, "lily": true}
	knownDirections = map[string]bool{"left": true, "right": true}
)

// Validate checks that a configuration describes a playable grid.
// Checks:
//   - field dimensions are whole cells and the step keeps objects cell-aligned
//   - the lanes fit in the field and the top lane is the goal row
//   - every spawning lane names a known kind, a direction and a positive period
//   - the start position and goals sit on the grid inside the field
//   - progress scoring starts at the start row
//
// A lane with a spawning role but no kind is valid; it simply never spawns.
func Validate(cfg FroggrConfig) error {
	if err := validateField(cfg.Field); err != nil {
		return err
	}
	if err := validateLanes(cfg); err != nil {
		return err
	}
	if err := validatePlayer(cfg); err != nil {
		return err
	}
	return validateGoals(cfg)
}

func validateField(f FroggrField) error {
	if f.CellSize <= 0 {
		return ValidationError{Code: "INVALID_CELL", Message: fmt.Sprintf("cell size must be positive, got %d", f.CellSize)}
	}
	if f.Width <= 0 || f.Width%f.CellSize != 0 || f.Height <= 0 || f.Height%f.CellSize != 0 {
		return ValidationError{
			Code:    "INVALID_FIELD",
			Message: fmt.Sprintf("field %dx%d is not a whole number of %d-pixel cells", f.Width, f.Height, f.CellSize),
		}
	}
	if f.Step <= 0 || (f.CellSize%f.Step != 0 && f.Step%f.CellSize != 0) {
		return ValidationError{
			Code:    "INVALID_STEP",
			Message: fmt.Sprintf("step %d must divide or be a multiple of cell size %d", f.Step, f.CellSize),
		}
	}
	return nil
}

func validateLanes(cfg FroggrConfig) error {
	if len(cfg.Lanes) == 0 {
		return ValidationError{Code: "NO_LANES", Message: "at least one lane is required"}
	}
	if len(cfg.Lanes)*cfg.Field.CellSize > cfg.Field.Height {
		return ValidationError{
			Code:    "LANES_OVERFLOW",
			Message: fmt.Sprintf("%d lanes do not fit in a field %d pixels high", len(cfg.Lanes), cfg.Field.Height),
		}
	}
	if cfg.Lanes[0].Role != "goal" {
		return ValidationError{Code: "GOAL_ROW", Message: fmt.Sprintf("top lane must be the goal row, got %q", cfg.Lanes[0].Role)}
	}

	for i, l := range cfg.Lanes {
		if !knownRoles[l.Role] {
			return ValidationError{Code: "INVALID_ROLE", Message: fmt.Sprintf("lane %d has unknown role %q", i, l.Role)}
		}
		if l.Kind == "" {
			continue
		}
		if !knownKinds[l.Kind] {
			return ValidationError{Code: "INVALID_KIND", Message: fmt.Sprintf("lane %d has unknown kind %q", i, l.Kind)}
		}
		if !knownDirections[l.Direction] {
			return ValidationError{Code: "INVALID_DIRECTION", Message: fmt.Sprintf("lane %d has unknown direction %q", i, l.Direction)}
		}
		if l.Length <= 0 {
			return ValidationError{Code: "INVALID_LENGTH", Message: fmt.Sprintf("lane %d has length %d", i, l.Length)}
		}
		if l.Regeneration <= 0 {
			return ValidationError{Code: "INVALID_REGENERATION", Message: fmt.Sprintf("lane %d has regeneration %d", i, l.Regeneration)}
		}
	}
	return nil
}

func validatePlayer(cfg FroggrConfig) error {
	p, f := cfg.Player, cfg.Field
	if p.Lives <= 0 {
		return ValidationError{Code: "INVALID_LIVES", Message: fmt.Sprintf("lives must be positive, got %d", p.Lives)}
	}
	if p.StartX < 0 || p.StartX > f.Width-f.CellSize || p.StartY < 0 || p.StartY > f.Height-f.CellSize ||
		p.StartX%f.CellSize != 0 || p.StartY%f.CellSize != 0 {
		return ValidationError{
			Code:    "INVALID_START",
			Message: fmt.Sprintf("start (%d, %d) is not a grid cell inside the field", p.StartX, p.StartY),
		}
	}
	// Progress is scored from the start row, otherwise the first tick
	// pays out rows never crossed.
	if s := cfg.Scoring.ScoreRowStart; s != p.StartY {
		return ValidationError{
			Code:    "INVALID_SCORE_ROW",
			Message: fmt.Sprintf("score_row_start %d must equal start_y %d", s, p.StartY),
		}
	}
	return nil
}

func validateGoals(cfg FroggrConfig) error {
	g, f := cfg.Goals, cfg.Field
	if g.Count <= 0 {
		return ValidationError{Code: "INVALID_GOALS", Message: fmt.Sprintf("goal count must be positive, got %d", g.Count)}
	}
	if last := (g.Count - 1) * g.Spacing; g.Spacing < 0 || last > f.Width-f.CellSize {
		return ValidationError{
			Code:    "GOALS_OVERFLOW",
			Message: fmt.Sprintf("%d goals spaced %d apart do not fit in width %d", g.Count, g.Spacing, f.Width),
		}
	}
	if g.Tolerance < 0 {
		return ValidationError{Code: "INVALID_TOLERANCE", Message: fmt.Sprintf("goal tolerance must not be negative, got %d", g.Tolerance)}
	}
	return nil
}
