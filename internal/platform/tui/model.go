// Package tui provides the Bubble Tea integration for BlockHop.
// It drives the level picker, the block program editor and the animated
// trace playback in the terminal.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockhop/internal/engine"
	"github.com/vovakirdan/blockhop/internal/levels"
	"github.com/vovakirdan/blockhop/internal/storage"
)

// phase is the current view of the session.
type phase int

const (
	phasePick phase = iota // Level picker
	phaseEdit              // Block program editor
	phaseRun               // Animated trace playback
	phaseDone              // Run finished, showing the outcome
)

// Options configures a TUI session.
type Options struct {
	// StepInterval is the delay between animated trace steps.
	StepInterval time.Duration

	// StartLevel optionally jumps straight into the editor for a level.
	StartLevel string
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{StepInterval: 350 * time.Millisecond}
}

// stepMsg advances the trace animation by one step.
type stepMsg struct{}

// Model is the Bubble Tea model for a BlockHop session.
type Model struct {
	catalog *levels.Catalog
	store   *storage.Store
	opts    Options
	keys    keyMap
	help    help.Model

	phase    phase
	cursor   int
	unlocked map[string]bool
	complete map[string]bool

	level    engine.Level
	program  engine.Program
	trace    engine.Trace
	stepIdx  int // Steps of the trace already shown
	position int // Character position as of the last shown step

	saved    bool // Outcome persisted for the current run
	unlocks  string
	width    int
	quitting bool
}

// NewModel creates a session model over the given catalog and store.
// The store may be nil; progress is then kept only for the session.
func NewModel(catalog *levels.Catalog, store *storage.Store, opts Options) Model {
	if opts.StepInterval <= 0 {
		opts.StepInterval = DefaultOptions().StepInterval
	}

	m := Model{
		catalog:  catalog,
		store:    store,
		opts:     opts,
		keys:     defaultKeyMap(),
		help:     help.New(),
		unlocked: make(map[string]bool),
		complete: make(map[string]bool),
	}
	m.refreshProgress()

	if opts.StartLevel != "" {
		if level, ok := catalog.Get(opts.StartLevel); ok {
			m.level = level
			m.position = level.Start
			m.phase = phaseEdit
		}
	}

	return m
}

// refreshProgress reloads unlock state from the store. The first catalog
// level is always playable.
func (m *Model) refreshProgress() {
	if first, ok := m.catalog.First(); ok {
		m.unlocked[first] = true
	}
	if m.store == nil {
		return
	}
	progress, err := m.store.AllProgress()
	if err != nil {
		return
	}
	for id, p := range progress {
		if p.Unlocked {
			m.unlocked[id] = true
		}
		if p.Completed {
			m.complete[id] = true
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// stepCmd schedules the next animation step.
func (m Model) stepCmd() tea.Cmd {
	return tea.Tick(m.opts.StepInterval, func(time.Time) tea.Msg {
		return stepMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case stepMsg:
		return m.handleStep()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phasePick:
		return m.handlePickKey(msg)
	case phaseEdit:
		return m.handleEditKey(msg)
	case phaseDone:
		return m.handleDoneKey(msg)
	}

	// Playback ignores input until the trace finishes.
	return m, nil
}

func (m Model) handlePickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.catalog.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		all := m.catalog.All()
		if m.cursor >= len(all) {
			break
		}
		picked := all[m.cursor]
		if !m.unlocked[picked.ID] {
			break
		}
		m.level = picked
		m.program = nil
		m.trace = nil
		m.position = picked.Start
		m.phase = phaseEdit
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Move):
		m.program = append(m.program, engine.OpMove)
	case key.Matches(msg, m.keys.Jump):
		m.program = append(m.program, engine.OpJump)
	case key.Matches(msg, m.keys.Delete):
		if len(m.program) > 0 {
			m.program = m.program[:len(m.program)-1]
		}
	case key.Matches(msg, m.keys.Clear):
		m.program = nil
	case key.Matches(msg, m.keys.Back):
		m.phase = phasePick
	case key.Matches(msg, m.keys.Run):
		if len(m.program) == 0 {
			break
		}
		m.trace = engine.Run(m.level, m.program)
		m.stepIdx = 0
		m.position = m.level.Start
		m.saved = false
		m.unlocks = ""
		m.phase = phaseRun
		return m, m.stepCmd()
	}
	return m, nil
}

func (m Model) handleDoneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.refreshProgress()
		m.phase = phasePick
	case key.Matches(msg, m.keys.Run), key.Matches(msg, m.keys.Select):
		// Back to the editor with the program intact for another try.
		m.position = m.level.Start
		m.trace = nil
		m.phase = phaseEdit
	}
	return m, nil
}

// handleStep reveals the next trace step during playback.
func (m Model) handleStep() (tea.Model, tea.Cmd) {
	if m.phase != phaseRun {
		return m, nil
	}

	if m.stepIdx < len(m.trace) {
		m.position = m.trace[m.stepIdx].Position
		m.stepIdx++
	}

	if m.stepIdx < len(m.trace) {
		return m, m.stepCmd()
	}

	m.finishRun()
	m.phase = phaseDone
	return m, nil
}

// finishRun persists the outcome of the current run once.
func (m *Model) finishRun() {
	if m.saved || m.store == nil || len(m.trace) == 0 {
		return
	}
	m.saved = true

	last, ok := m.trace.Terminal()
	if !ok {
		return
	}
	success := last.Status == engine.StatusSuccess

	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.RecordRun(m.level.ID, len(m.program), success, last.Reason)

	if !success {
		return
	}

	//nolint:errcheck // Best-effort save
	m.store.Complete(m.level.ID, len(m.program))
	m.complete[m.level.ID] = true

	if next, ok := m.catalog.Next(m.level.ID); ok && !m.unlocked[next] {
		//nolint:errcheck // Best-effort save
		m.store.Unlock(next)
		m.unlocked[next] = true
		m.unlocks = next
	}
}
