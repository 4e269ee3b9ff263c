package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockhop/internal/platform/tui"
)

var flagStepMS int

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play BlockHop in the terminal",
	Long: `Start the interactive terminal UI. Pick a level, assemble a block
program, then run it and watch the trace animate.

Controls:
  Up/Down    - Navigate the level picker
  Enter      - Select level / run program
  M          - Add a move block
  J          - Add a jump block
  Backspace  - Remove the last block
  C          - Clear the program
  Esc        - Back to the level picker
  Q/Ctrl+C   - Quit

Examples:
  blockhop play
  blockhop play 03-mind-the-gap
  blockhop play --step-ms 150`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlayCmd,
}

func init() {
	playCmd.Flags().IntVar(&flagStepMS, "step-ms", 0, "Delay between animated steps in milliseconds")
}

func runPlayCmd(cmd *cobra.Command, args []string) {
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

	// The TUI runs fullscreen; bail out early on a non-terminal stdout
	// instead of garbling a pipe.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: 'blockhop play' needs an interactive terminal")
		os.Exit(1)
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	opts := tui.DefaultOptions()
	if cfg.UI.StepIntervalMS > 0 {
		opts.StepInterval = time.Duration(cfg.UI.StepIntervalMS) * time.Millisecond
	}
	if flagStepMS > 0 {
		opts.StepInterval = time.Duration(flagStepMS) * time.Millisecond
	}
	if len(args) == 1 {
		levelID := args[0]
		if _, ok := catalog.Get(levelID); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
			fmt.Fprintln(os.Stderr, "Run 'blockhop list' to see available levels.")
			os.Exit(1)
		}
		opts.StartLevel = levelID
	}

	if err := tui.Run(catalog, store, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}
}
