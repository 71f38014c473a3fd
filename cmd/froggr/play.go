package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-froggr/internal/core"
	"github.com/vovakirdan/tui-froggr/internal/platform/tui"
	"github.com/vovakirdan/tui-froggr/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the specified variant (default: froggr).

Controls:
  Arrows/WASD/hjkl  - Hop
  P/Esc             - Pause
  R                 - Restart (after the game ends)
  B                 - Back (while paused or after the game ends)
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot

Difficulty options:
  easy    - Five lives, default traffic
  normal  - Three lives, default traffic (same as no preset)
  hard    - Two lives, dense traffic
  classic - The config file exactly as written

Examples:
  froggr play
  froggr play froggr_easy
  froggr play --difficulty hard
  froggr play --config ./my-froggr.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "froggr"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'froggr list' to see them", gameID)
	}

	closeAudio := setupGame()
	defer closeAudio()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), playerName()); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}
