package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-froggr/internal/platform/tui"
	"github.com/vovakirdan/tui-froggr/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start Froggr from the title menu.

Pick a variant, read the instructions or browse the high scores. After
a game, B returns here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  froggr menu
  froggr menu --fps 30
  froggr menu --db ./froggr.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	closeAudio := setupGame()
	defer closeAudio()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(res.GameID)
			if err != nil {
				logger.Error("cannot create game", "game", res.GameID, "error", err)
				continue
			}
			backToMenu, err := tui.Run(game, store, cfg, playerName())
			if err != nil {
				logger.Warn("game ended with an error", "game", res.GameID, "error", err)
			}
			if !backToMenu {
				return nil
			}
		}
	}
}
