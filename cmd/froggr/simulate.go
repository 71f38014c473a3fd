package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-froggr/internal/core"
	"github.com/vovakirdan/tui-froggr/internal/games/froggr"
	"github.com/vovakirdan/tui-froggr/internal/registry"
	"github.com/vovakirdan/tui-froggr/internal/storage"
)

var (
	flagSimSeed     uint64
	flagSimInterval time.Duration
	flagSimTimeout  time.Duration
	flagSimHopEvery int
	flagSimSessions int
	flagSimSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run headless sessions with a random hopper",
	Long: `Play sessions without a terminal. A seeded random player hops mostly
forward; every session runs until it is won or lost and the outcome is
logged. Useful to check a custom config or difficulty preset.

Examples:
  froggr simulate
  froggr simulate froggr_hard --sessions 20
  froggr simulate --config ./my-froggr.yaml --seed 7 --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagSimSeed, "seed", 1, "Seed for the random player")
	simulateCmd.Flags().DurationVar(&flagSimInterval, "interval", time.Millisecond, "Wall time per tick")
	simulateCmd.Flags().DurationVar(&flagSimTimeout, "timeout", 5*time.Minute, "Stop after this long")
	simulateCmd.Flags().IntVar(&flagSimHopEvery, "hop-every", 12, "Ticks between hops")
	simulateCmd.Flags().IntVar(&flagSimSessions, "sessions", 1, "Sessions to play")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the outcomes as scores")
}

// hopper is a headless host that presses a random direction every few
// ticks, weighted towards the homes.
type hopper struct {
	input    *froggr.Input
	rng      *rand.Rand
	hopEvery int
	ticks    int
	sessions int
	outcomes []froggr.Outcome
}

var hopWeights = []struct {
	button froggr.Button
	weight int
}{
	{froggr.ButtonUp, 6},
	{froggr.ButtonLeft, 2},
	{froggr.ButtonRight, 2},
	{froggr.ButtonDown, 1},
}

func newHopper(seed uint64, hopEvery, sessions int) *hopper {
	return &hopper{
		input:    froggr.NewInput(),
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		hopEvery: max(hopEvery, 1),
		sessions: max(sessions, 1),
	}
}

func (h *hopper) Input() *froggr.Input {
	h.ticks++
	if h.ticks%h.hopEvery == 0 {
		h.input.Clear()
		h.input.Press(h.pick())
	}
	return h.input
}

func (h *hopper) pick() froggr.Button {
	total := 0
	for _, w := range hopWeights {
		total += w.weight
	}
	n := h.rng.IntN(total)
	for _, w := range hopWeights {
		if n < w.weight {
			return w.button
		}
		n -= w.weight
	}
	return froggr.ButtonUp
}

func (h *hopper) Frame(res froggr.TickResult) {
	switch {
	case res.Cause != froggr.CauseNone:
		logger.Debug("frog lost", "cause", res.Cause, "lives", res.Lives, "score", res.Score)
	case res.Goal:
		logger.Debug("frog home", "score", res.Score)
	}
}

func (h *hopper) Decide(o froggr.Outcome) froggr.Decision {
	h.outcomes = append(h.outcomes, o)
	logger.Info("session over",
		"session", len(h.outcomes),
		"won", o.Won,
		"score", o.Score,
		"final", o.FinalScore,
		"goals", o.Goals,
		"lives", o.Lives,
		"ticks", o.Ticks,
	)
	h.input.Clear()
	if len(h.outcomes) < h.sessions {
		return froggr.DecisionRestart
	}
	return froggr.DecisionQuit
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID := "froggr"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'froggr list' to see them", gameID)
	}

	froggr.SetConfigPath(flagConfig)
	froggr.SetDifficultyPreset(flagDifficulty)
	froggr.SetSoundPlayer(nil)

	created, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	game, ok := created.(*froggr.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run headless", gameID)
	}
	game.Reset(core.DefaultConfig())
	if err := game.LoadErr(); err != nil {
		logger.Warn("could not load config, using built-in layout", "error", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagSimTimeout)
	defer cancel()

	h := newHopper(flagSimSeed, flagSimHopEvery, flagSimSessions)
	logger.Info("simulating", "variant", gameID, "sessions", h.sessions, "seed", flagSimSeed)

	_, err = froggr.Run(ctx, game.Engine(), flagSimInterval, h)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("simulation timed out", "finished", len(h.outcomes))
	}

	if flagSimSave {
		saveOutcomes(gameID, h.outcomes)
	}
	return nil
}

func saveOutcomes(gameID string, outcomes []froggr.Outcome) {
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()

	for _, o := range outcomes {
		res := storage.Result{
			GameID:  gameID,
			Player:  "simulate",
			Score:   o.FinalScore,
			Outcome: storage.OutcomeLost,
			Goals:   o.Goals,
			Lives:   o.Lives,
		}
		if o.Won {
			res.Outcome = storage.OutcomeWon
		}
		if _, err := store.SaveResult(res); err != nil {
			logger.Warn("could not save outcome", "error", err)
			return
		}
	}
	logger.Info("outcomes saved", "count", len(outcomes), "db", flagDBPath)
}
