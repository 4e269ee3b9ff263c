package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/storage"
)

var flagHistory int

var progressCmd = &cobra.Command{
	Use:   "progress [level]",
	Short: "Show persisted progress",
	Long: `Display unlock and completion state for every level, plus aggregate
statistics. With a level argument, also shows recent runs for it.

Examples:
  blockhop progress
  blockhop progress 03-mind-the-gap
  blockhop progress 03-mind-the-gap --history 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runProgress,
}

func init() {
	progressCmd.Flags().IntVar(&flagHistory, "history", 10, "Number of recent runs to show for a level")
}

func runProgress(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	catalog, err := openCatalog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showLevelHistory(store, args[0])
		return
	}

	all, err := store.AllProgress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading progress: %v\n", err)
		os.Exit(1)
	}

	maxIDLen := 2
	for _, level := range catalog.All() {
		if len(level.ID) > maxIDLen {
			maxIDLen = len(level.ID)
		}
	}

	first, _ := catalog.First()

	fmt.Println("Progress:")
	fmt.Println()
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "State", "Best")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "----")

	for _, level := range catalog.All() {
		p := all[level.ID]
		state := "locked"
		switch {
		case p.Completed:
			state = "done"
		case level.ID == first || p.Unlocked:
			state = "open"
		}
		best := "-"
		if p.BestBlocks > 0 {
			best = fmt.Sprintf("%d blocks", p.BestBlocks)
		}
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, level.ID, state, best)
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d (%d successful)  Completed: %d/%d\n",
		stats.TotalRuns, stats.Successes, stats.Completed, catalog.Len())
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func showLevelHistory(store *storage.Store, levelID string) {
	runs, err := store.RunHistory(levelID, flagHistory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading run history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent runs - %s\n", levelID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-7s  %-8s  %-17s  %s\n", "Blocks", "Result", "Date", "Reason")
	fmt.Printf("  %-7s  %-8s  %-17s  %s\n", "------", "------", "----", "------")
	for _, run := range runs {
		result := "failed"
		if run.Success {
			result = "success"
		}
		fmt.Printf("  %-7d  %-8s  %-17s  %s\n",
			run.Blocks, result, run.CreatedAt.Format("2006-01-02 15:04"), run.Reason)
	}
}
