package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-froggr/internal/registry"
	"github.com/vovakirdan/tui-froggr/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the best finished sessions for a variant, or for every variant
when none is given.

Examples:
  froggr scores
  froggr scores froggr_hard
  froggr scores --limit 25
  froggr scores froggr_easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 for all)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the given variant")
}

func runScores(_ *cobra.Command, args []string) error {
	games := registry.List()
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown variant %q, run 'froggr list' to see them", args[0])
		}
		games = nil
		for _, g := range registry.List() {
			if g.ID == args[0] {
				games = append(games, g)
			}
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if len(args) != 1 {
			return fmt.Errorf("--clear needs a variant")
		}
		n, err := store.ClearScores(args[0])
		if err != nil {
			return err
		}
		logger.Info("cleared scores", "variant", args[0], "sessions", n)
		return nil
	}

	if len(args) == 0 {
		if err := printSummary(store, games); err != nil {
			return err
		}
	}

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, g); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, g registry.GameInfo) error {
	scores, err := store.TopScores(g.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", g.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'froggr play %s' to set the first high score!\n", g.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-12s  %s\n", "Rank", "Score", "Result", "Homes", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-12s  %s\n", "----", "-----", "------", "-----", "------", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-6s  %-5d  %-12s  %s\n",
			i+1, e.Score, e.Outcome, e.Goals, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(g.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Played: %d  Won: %d  Avg: %.0f\n", stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
	return nil
}

// printSummary prints one line per played variant.
func printSummary(store *storage.Store, games []registry.GameInfo) error {
	all, err := store.StatsByGame()
	if err != nil {
		return fmt.Errorf("cannot retrieve stats: %w", err)
	}
	if len(all) == 0 {
		return nil
	}

	fmt.Printf("  %-14s  %6s  %4s  %6s  %s\n", "Variant", "Played", "Won", "Best", "Last played")
	for _, g := range games {
		st, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-14s  %6d  %4d  %6d  %s\n",
			g.ID, st.GamesCount, st.Wins, st.HighScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return nil
}
