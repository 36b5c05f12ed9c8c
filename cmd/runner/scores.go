package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, or the most recent ones.

Examples:
  runner scores
  runner scores --recent --limit 20
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	title := "Best Runs"
	runs, err := store.TopRuns(flagLimit)
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("%s - Lane Runner\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %-12s  %s\n", "Rank", "Score", "Coins", "Distance", "Player", "When")
	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %-12s  %s\n", "----", "-----", "-----", "--------", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-6s  %-10s  %-12s  %s\n",
			i+1,
			humanize.Comma(int64(r.Score)),
			humanize.Comma(int64(r.Coins)),
			humanize.Comma(int64(r.Distance))+"m",
			r.Player,
			humanize.Time(r.CreatedAt),
		)
	}

	// Show summary
	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %s  Runs: %s  Coins: %s\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.LifetimeRunCount)),
			humanize.Comma(int64(stats.TotalCoins)))
	}
	return nil
}
