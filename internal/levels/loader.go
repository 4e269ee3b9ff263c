// Package levels provides file-based level loading and validation for
// BlockHop. This package depends on engine but engine does not depend on
// levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/blockhop/internal/engine"
	"github.com/vovakirdan/blockhop/internal/levels/formats"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]engine.Level, error) {
	var loaded []engine.Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		loaded = append(loaded, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].ID < loaded[j].ID
	})

	return loaded, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (engine.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	return parseAndValidate(data, ext, path)
}

// parseAndValidate routes raw bytes through the right parser and checks the
// level invariants.
func parseAndValidate(data []byte, ext, origin string) (engine.Level, error) {
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return engine.Level{}, fmt.Errorf("parsing %s: %w", origin, err)
	}

	level := engine.Level{
		ID:    parsed.ID,
		Name:  parsed.Name,
		Track: parsed.Track,
		Start: parsed.Start,
		Goal:  parsed.Goal,
	}

	if err := Validate(level); err != nil {
		return engine.Level{}, fmt.Errorf("validating %s: %w", origin, err)
	}

	return level, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".json":
		return formats.ParseJSON(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
