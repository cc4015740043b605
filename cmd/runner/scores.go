package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gesture-runner/internal/platform/tui"
	"github.com/vovakirdan/gesture-runner/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagTable  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the best runs, or the most recent with --recent.

Examples:
  runner scores
  runner scores --recent
  runner scores --limit 25
  runner scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show most recent runs instead of best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagTable, "interactive", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagTable {
		if err := runInteractiveScores(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagRecent {
		fmt.Println("Recent Runs")
	} else {
		fmt.Println("Best Runs")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-6s  %-8s  %s\n", "Rank", "Score", "Dist", "Gems", "Time", "Input", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-6s  %-8s  %s\n", "----", "-----", "----", "----", "----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %-5d  %-6s  %-8s  %s\n",
			i+1, r.Score, r.Distance, r.Gems,
			fmt.Sprintf("%ds", r.Duration), r.InputMode,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetStats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Gems collected: %d\n",
			stats.HighScore, stats.RunsCount, stats.TotalGems)
	}
}

func runInteractiveScores(store *storage.Store) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return tui.RunScoreboard(store, width, height)
}
