// blockhop is a block-sequencing puzzle game: assemble move and jump blocks
// into a program and guide the character along a tile track to the goal.
//
// Usage:
//
//	blockhop list               - List the level catalog with progress
//	blockhop play [level]       - Interactive terminal UI
//	blockhop run <level> <prog> - Run a program (e.g. "move,jump,move")
//	blockhop solve <level>      - Print a solving program for a level
//	blockhop serve              - Start the HTTP API for the browser UI
//	blockhop ssh                - Start an SSH server for remote play
//	blockhop progress           - Show persisted unlock progress
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.blockhop/config.yaml)
//	--levels <dir>   - Levels directory (default: built-in campaign)
//	--db <path>      - Progress database path (default: ~/.blockhop/progress.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/config"
	"github.com/vovakirdan/blockhop/internal/levels"
	"github.com/vovakirdan/blockhop/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagLevels string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockhop",
	Short: "BlockHop - a block-sequencing puzzle game",
	Long: `BlockHop is a sequencing puzzle: arrange move and jump blocks into a
program, then watch the character replay it along a tile track. Moves
advance one tile; jumps cross exactly one gap or obstacle. Reach the
goal to unlock the next level.

Available commands:
  list     - Show the level catalog and your progress
  play     - Interactive terminal UI
  run      - Run a block program against a level
  solve    - Print a solving program for a level
  serve    - HTTP API serving level JSON and trace execution
  ssh      - SSH server for remote play
  progress - Show persisted progress

Examples:
  blockhop list
  blockhop play
  blockhop run 03-mind-the-gap move,jump,move,move
  blockhop serve --addr :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Levels directory (empty = built-in campaign)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sshCmd)
	rootCmd.AddCommand(progressCmd)
}

// loadConfig loads the app config, letting flags override file values.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLevels != "" {
		cfg.Levels.Dir = flagLevels
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = config.Default().Storage.DBPath
	}
	return cfg, nil
}

// openCatalog loads the level catalog per the config.
func openCatalog(cfg config.Config) (*levels.Catalog, error) {
	return levels.Open(cfg.Levels.Dir)
}

// openStore opens the progress database per the config.
func openStore(cfg config.Config) (*storage.Store, error) {
	return storage.Open(cfg.Storage.DBPath)
}
