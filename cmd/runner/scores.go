package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show best runs for a mode",
	Long: `Display the best runs and aggregate stats for the given mode.

Examples:
  runner scores runner
  runner scores runner_zen --limit 25
  runner scores runner --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode := args[0]
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q (run 'runner list' to see available modes)", mode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearRuns(mode); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared runs for %s.\n", mode)
		return nil
	}

	runs, err := store.TopRuns(mode, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve runs: %w", err)
	}

	title := mode
	for _, info := range registry.List() {
		if info.ID == mode {
			title = info.Title
		}
	}

	fmt.Fprintf(out, "Best Runs - %s\n", title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'runner play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-5s  %-8s  %s\n", "Rank", "Score", "Coins", "Phase", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-5s  %-8s  %s\n", "----", "-----", "-----", "-----", "----", "----")
	for i, r := range runs {
		d := time.Duration(r.DurationSecs * float64(time.Second)).Round(time.Second)
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-5d  %-8s  %s\n",
			i+1, r.Score, r.Coins, r.Phase, d, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.ModeStats(mode)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Best: %d  Avg: %.0f  Coins: %d  Max phase: %d\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, stats.TotalCoins, stats.MaxPhase)
	}
	return nil
}
