// Package tui runs the game in a terminal with Bubble Tea: the fixed-rate
// tick loop, key mapping, the title menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-froggr/internal/core"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickInterval is the period of rate ticks per second. Rates below one
// fall back to the default.
func tickInterval(rate int) time.Duration {
	if rate < 1 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}
