package froggr

import (
	"github.com/vovakirdan/tui-froggr/internal/config"
)

// Lane is one row of the field. Only Elapsed changes during a session.
type Lane struct {
	Index     int
	Y         int
	Role      Role
	Kind      Kind
	Length    int
	Direction Direction
	Threshold int // Ticks between spawns
	Elapsed   int
}

// Spawns reports whether the lane produces objects at all.
func (l Lane) Spawns() bool {
	return l.Kind != KindNone && l.Length > 0
}

// buildLanes turns the configured layout into lanes, top to bottom.
// Thresholds are scaled by the difficulty once, here.
func buildLanes(cfg config.FroggrConfig) []Lane {
	lanes := make([]Lane, 0, len(cfg.Lanes))
	for i, lc := range cfg.Lanes {
		role, ok := roleNames[lc.Role]
		if !ok {
			role = RoleGrass
		}
		l := Lane{
			Index:     i,
			Y:         i * cfg.Field.CellSize,
			Role:      role,
			Kind:      parseKind(lc.Kind),
			Length:    lc.Length,
			Direction: parseDirection(lc.Direction),
		}
		if l.Spawns() {
			l.Threshold = cfg.ScaledRegeneration(lc.Regeneration)
		}
		lanes = append(lanes, l)
	}
	return lanes
}
