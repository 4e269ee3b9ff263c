package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/config"
	"github.com/vovakirdan/blockhop/internal/engine"
	"github.com/vovakirdan/blockhop/internal/levels"
)

var flagNoSave bool

var runCmd = &cobra.Command{
	Use:   "run <level> <program>",
	Short: "Run a block program against a level",
	Long: `Replay a comma-separated block program against a level and print the
step trace. Blocks are "move" and "jump".

Examples:
  blockhop run 01-first-steps move,move,move,move,move
  blockhop run 03-mind-the-gap move,jump,move,move`,
	Args: cobra.ExactArgs(2),
	Run:  runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run or update progress")
}

func runRun(cmd *cobra.Command, args []string) {
	levelID := args[0]

	program, err := parseProgram(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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

	trace := engine.Run(level, program)

	fmt.Printf("%s (%s)\n", level.Name, level.ID)
	fmt.Printf("Track: %d tiles, start %d, goal %d\n", len(level.Track), level.Start, level.Goal)
	fmt.Println()
	printTrace(trace)

	terminal, ok := trace.Terminal()
	if !ok {
		// Only the empty program leaves no terminal step.
		fmt.Println("No blocks to run.")
		return
	}

	if !flagNoSave {
		saveRun(cfg, catalog, levelID, len(program), terminal)
	}

	fmt.Println()
	if terminal.Status == engine.StatusSuccess {
		fmt.Printf("Success! Reached the goal in %d blocks.\n", len(program))
	} else {
		fmt.Printf("Failed: %s\n", terminal.Reason)
		os.Exit(1)
	}
}

// parseProgram parses a comma-separated block list ("move,jump,move").
func parseProgram(s string) (engine.Program, error) {
	var program engine.Program
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		op, ok := engine.ParseInstruction(name)
		if !ok {
			return nil, fmt.Errorf("unknown block %q (blocks are \"move\" and \"jump\")", name)
		}
		program = append(program, op)
	}
	return program, nil
}

func printTrace(trace engine.Trace) {
	for _, step := range trace {
		op := "-"
		if step.Op != engine.OpNone {
			op = step.Op.String()
		}
		line := fmt.Sprintf("  step %-3d %-5s pos %-3d %s", step.Index, op, step.Position, step.Status)
		if step.Reason != "" {
			line += ": " + step.Reason
		}
		fmt.Println(line)
	}
}

// saveRun records the run and, on success, marks the level complete and
// unlocks the next one. Storage failures do not fail the command.
func saveRun(cfg config.Config, catalog *levels.Catalog, levelID string, blocks int, terminal engine.Step) {
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		return
	}
	defer store.Close()

	success := terminal.Status == engine.StatusSuccess
	if _, err := store.RecordRun(levelID, blocks, success, terminal.Reason); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record run: %v\n", err)
	}
	if !success {
		return
	}
	if err := store.Complete(levelID, blocks); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save completion: %v\n", err)
		return
	}
	if next, ok := catalog.Next(levelID); ok {
		if err := store.Unlock(next); err == nil {
			fmt.Printf("Unlocked: %s\n", next)
		}
	}
}
