// Package formats provides pluggable level file format parsers.
// YAML files use a compact one-character-per-tile track string; JSON files,
// aimed at the browser front end, spell tile kinds out by name.
package formats

import (
	"fmt"

	"github.com/vovakirdan/blockhop/internal/engine"
)

// Level is a parsed level file, ready for validation.
type Level struct {
	ID    string
	Name  string
	Track []engine.Tile
	Start int
	Goal  int
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

// ParseTrackString parses a compact track string: '.' or '_' for ground,
// '~' for a gap, '^' for an obstacle.
func ParseTrackString(s string) ([]engine.Tile, error) {
	track := make([]engine.Tile, 0, len(s))
	for i, r := range s {
		switch r {
		case '.', '_':
			track = append(track, engine.Ground)
		case '~':
			track = append(track, engine.Gap)
		case '^':
			track = append(track, engine.Obstacle)
		default:
			return nil, fmt.Errorf("track position %d: unknown tile %q", i, string(r))
		}
	}
	return track, nil
}

// ParseTrackNames parses a track given as a list of tile kind names.
func ParseTrackNames(names []string) ([]engine.Tile, error) {
	track := make([]engine.Tile, 0, len(names))
	for i, name := range names {
		tile, ok := engine.ParseTile(name)
		if !ok {
			return nil, fmt.Errorf("track position %d: unknown tile %q", i, name)
		}
		track = append(track, tile)
	}
	return track, nil
}
