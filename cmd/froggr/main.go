// froggr is a Frogger-style arcade game for the terminal.
//
// Usage:
//
//	froggr list              - List the game variants
//	froggr play [variant]    - Play a variant (default: froggr)
//	froggr menu              - Start the title menu
//	froggr serve             - Start SSH server for remote play
//	froggr scores [variant]  - Show high scores
//	froggr simulate          - Run a headless session and report the outcome
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.arcade/froggr.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Preset: easy, normal, hard, classic
//	--mute                - Disable sound effects
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-froggr/internal/audio"
	"github.com/vovakirdan/tui-froggr/internal/config"
	"github.com/vovakirdan/tui-froggr/internal/games/froggr"
	"github.com/vovakirdan/tui-froggr/internal/storage"
)

var (
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVerbose    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "froggr",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "froggr",
	Short: "Froggr - get the frogs home across the road and the river",
	Long: `Froggr is a Frogger-style arcade game for the terminal.

Hop across five lanes of traffic and a river of logs, turtles and lily
pads, and fill all four homes at the top. Remaining lives multiply the
final score.

Available commands:
  list      - Show the game variants
  play      - Play a variant directly
  menu      - Title menu with instructions, credits and high scores
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run a headless session

Examples:
  froggr play
  froggr play froggr_hard
  froggr menu --difficulty easy
  froggr serve --ssh :2222
  froggr scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, classic")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setupGame hands the game flags to new sessions and opens the sound
// player. The returned func releases the audio device.
func setupGame() func() {
	froggr.SetConfigPath(flagConfig)
	froggr.SetDifficultyPreset(flagDifficulty)

	cfg, err := config.LoadFroggr(flagConfig)
	if err != nil {
		logger.Warn("could not load config, using built-in layout", "path", flagConfig, "error", err)
		cfg = config.DefaultFroggrConfig()
	}
	if flagMute {
		cfg.Sound.Enabled = false
	}

	sound := audio.Open(cfg.Sound, logger)
	froggr.SetSoundPlayer(sound)
	return func() {
		if p, ok := sound.(*audio.Player); ok {
			p.Close()
		}
	}
}

// openStore opens the score database. A failure is logged and play
// continues without scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// playerName is the local user name recorded with scores.
func playerName() string {
	for _, k := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
