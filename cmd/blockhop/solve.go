package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/engine"
)

var solveCmd = &cobra.Command{
	Use:   "solve <level>",
	Short: "Compute a solving program for a level",
	Long: `Print a block program that reaches the level's goal, in the same
comma-separated form 'blockhop run' accepts.

Examples:
  blockhop solve 03-mind-the-gap`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func runSolve(cmd *cobra.Command, args []string) {
	levelID := args[0]

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

	level, ok := catalog.Get(levelID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'blockhop list' to see available levels.")
		os.Exit(1)
	}

	program, ok := engine.Solve(level)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: level %q has no solution\n", levelID)
		os.Exit(1)
	}

	names := make([]string, len(program))
	for i, op := range program {
		names[i] = op.String()
	}
	fmt.Println(strings.Join(names, ","))
}
