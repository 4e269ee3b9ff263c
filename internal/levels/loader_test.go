package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/blockhop/internal/engine"
)

func writeLevel(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing level file: %v", err)
	}
	return path
}

func TestLoadFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeLevel(t, dir, "test.yaml", `
id: "test-gap"
name: "Test Gap"
track: "..~..."
start: 0
goal: 5
`)

	level, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if level.ID != "test-gap" {
		t.Errorf("ID = %q, want %q", level.ID, "test-gap")
	}
	if len(level.Track) != 6 {
		t.Errorf("track length = %d, want 6", len(level.Track))
	}
	if level.Track[2] != engine.Gap {
		t.Errorf("tile 2 = %v, want gap", level.Track[2])
	}
	if level.Start != 0 || level.Goal != 5 {
		t.Errorf("start/goal = %d/%d, want 0/5", level.Start, level.Goal)
	}
}

func TestLoadFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeLevel(t, dir, "test.json", `{
		"id": "test-json",
		"name": "Test JSON",
		"track": ["ground", "obstacle", "ground", "ground"],
		"start": 0,
		"goal": 3
	}`)

	level, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if level.Track[1] != engine.Obstacle {
		t.Errorf("tile 1 = %v, want obstacle", level.Track[1])
	}
}

func TestLoadFileRejectsUnknownTile(t *testing.T) {
	dir := t.TempDir()
	path := writeLevel(t, dir, "bad.yaml", `
id: "bad"
track: "..x.."
start: 0
goal: 4
`)

	if _, err := NewLoader(dir).LoadFile(path); err == nil {
		t.Error("expected error for unknown tile character")
	}
}

func TestLoadAllSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "good.yaml", "id: \"a-good\"\ntrack: \"....\"\nstart: 0\ngoal: 3\n")
	writeLevel(t, dir, "broken.yaml", "id: \"broken\"\ntrack: \"..~\"\nstart: 0\ngoal: 2\n")
	writeLevel(t, dir, "notes.txt", "not a level")

	loaded, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	if len(loaded) != 1 {
		t.Fatalf("loaded %d levels, want 1", len(loaded))
	}
	if loaded[0].ID != "a-good" {
		t.Errorf("loaded level %q, want a-good", loaded[0].ID)
	}
}

func TestLoadAllSortsByID(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "zz.yaml", "id: \"02-second\"\ntrack: \"....\"\nstart: 0\ngoal: 3\n")
	writeLevel(t, dir, "aa.yaml", "id: \"01-first\"\ntrack: \"....\"\nstart: 0\ngoal: 3\n")

	loaded, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	if len(loaded) != 2 || loaded[0].ID != "01-first" || loaded[1].ID != "02-second" {
		t.Errorf("levels not sorted by ID: %v", loaded)
	}
}

func TestBuiltinCampaign(t *testing.T) {
	campaign := Builtin()

	if len(campaign) == 0 {
		t.Fatal("embedded campaign is empty")
	}

	for _, level := range campaign {
		if err := Validate(level); err != nil {
			t.Errorf("builtin level %q is invalid: %v", level.ID, err)
		}
		if _, ok := engine.Solve(level); !ok {
			t.Errorf("builtin level %q is not solvable", level.ID)
		}
	}

	// First level must be plain ground so new players only need Move.
	first := campaign[0]
	for i, tile := range first.Track {
		if tile.Blocking() {
			t.Errorf("first level has a %s at %d; the opener should be all ground", tile, i)
		}
	}
}

func TestCatalogUnlockChain(t *testing.T) {
	catalog := NewCatalog(Builtin())

	first, ok := catalog.First()
	if !ok {
		t.Fatal("catalog has no first level")
	}

	// Walk the chain; every level except the last has a successor.
	seen := 1
	id := first
	for {
		next, ok := catalog.Next(id)
		if !ok {
			break
		}
		if _, found := catalog.Get(next); !found {
			t.Fatalf("Next(%q) = %q which is not in the catalog", id, next)
		}
		id = next
		seen++
	}

	if seen != catalog.Len() {
		t.Errorf("unlock chain reaches %d of %d levels", seen, catalog.Len())
	}

	if _, ok := catalog.Next("no-such-level"); ok {
		t.Error("Next() should report false for unknown IDs")
	}
}
