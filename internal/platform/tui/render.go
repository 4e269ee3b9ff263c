package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockhop/internal/engine"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	groundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("113"))
	gapStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	playerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	goalStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))
	lockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	blockStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	activeBlock   = blockStyle.BorderForeground(lipgloss.Color("226"))
	successStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phasePick:
		return m.viewPicker()
	case phaseEdit:
		return m.viewEditor(false)
	case phaseRun:
		return m.viewEditor(true)
	case phaseDone:
		return m.viewDone()
	}
	return ""
}

func (m Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("BlockHop — pick a level"))
	b.WriteString("\n")

	for i, level := range m.catalog.All() {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}

		line := fmt.Sprintf("%s%-20s %d tiles", marker, level.Name, len(level.Track))
		switch {
		case !m.unlocked[level.ID]:
			line += "  [locked]"
			line = lockedStyle.Render(line)
		case m.complete[level.ID]:
			line += "  [done]"
			if i == m.cursor {
				line = selectedStyle.Render(line)
			}
		case i == m.cursor:
			line = selectedStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m Model) viewEditor(running bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.level.Name))
	b.WriteString("\n")
	b.WriteString(m.renderTrack())
	b.WriteString("\n\n")
	b.WriteString(m.renderProgram(running))
	b.WriteString("\n\n")

	if running {
		b.WriteString(faintStyle.Render("running..."))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.editorHelp()))
	}
	return b.String()
}

func (m Model) viewDone() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.level.Name))
	b.WriteString("\n")
	b.WriteString(m.renderTrack())
	b.WriteString("\n\n")
	b.WriteString(m.renderProgram(false))
	b.WriteString("\n\n")

	if last, ok := m.trace.Terminal(); ok {
		if last.Status == engine.StatusSuccess {
			b.WriteString(successStyle.Render("Level complete!"))
			if m.unlocks != "" {
				b.WriteString("  ")
				b.WriteString(faintStyle.Render("unlocked " + m.unlocks))
			}
		} else {
			b.WriteString(failStyle.Render("Failed: " + last.Reason))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("enter: edit again  esc: level list  q: quit"))
	return b.String()
}

// renderTrack draws the level track with the character and the goal flag.
func (m Model) renderTrack() string {
	var tiles []string
	for i, tile := range m.level.Track {
		glyph := tileGlyph(tile)
		switch {
		case i == m.position:
			glyph = playerStyle.Render("@")
		case i == m.level.Goal:
			glyph = goalStyle.Render("⚑")
		}
		tiles = append(tiles, glyph)
	}
	return " " + strings.Join(tiles, " ")
}

func tileGlyph(tile engine.Tile) string {
	switch tile {
	case engine.Gap:
		return gapStyle.Render("~")
	case engine.Obstacle:
		return obstacleStyle.Render("▲")
	default:
		return groundStyle.Render("▁")
	}
}

// renderProgram draws the block strip; during playback the block currently
// executing is highlighted.
func (m Model) renderProgram(running bool) string {
	if len(m.program) == 0 {
		return faintStyle.Render("(no blocks yet — press m or j)")
	}

	blocks := make([]string, 0, len(m.program))
	for i, op := range m.program {
		style := blockStyle
		if running && m.stepIdx > 0 && i == m.trace[m.stepIdx-1].Index {
			style = activeBlock
		}
		blocks = append(blocks, style.Render(op.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, blocks...)
}
