package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockhop/internal/levels"
	"github.com/vovakirdan/blockhop/internal/storage"
)

// Run starts an interactive session in the current terminal and blocks
// until the player quits.
func Run(catalog *levels.Catalog, store *storage.Store, opts Options) error {
	model := NewModel(catalog, store, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
