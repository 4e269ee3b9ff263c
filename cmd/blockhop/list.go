package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels with lock and completion state",
	Long: `Shows the level catalog. Locked levels are unlocked by completing
the level before them; the first level is always open.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
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

	if catalog.Len() == 0 {
		fmt.Println("No levels available.")
		return
	}

	// Progress is optional here: without a database every level past
	// the first just shows as locked.
	progress := map[string]storage.Progress{}
	if store, storeErr := openStore(cfg); storeErr == nil {
		if all, progErr := store.AllProgress(); progErr == nil {
			progress = all
		}
		store.Close()
	}

	first, _ := catalog.First()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, level := range catalog.All() {
		if len(level.ID) > maxIDLen {
			maxIDLen = len(level.ID)
		}
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "State", "Name")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "----")

	for _, level := range catalog.All() {
		p := progress[level.ID]
		state := "locked"
		switch {
		case p.Completed:
			state = "done"
		case level.ID == first || p.Unlocked:
			state = "open"
		}
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, level.ID, state, level.Name)
	}

	fmt.Println()
	fmt.Println("Run 'blockhop play <id>' to play a level.")
}
