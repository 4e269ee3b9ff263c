package levels

import (
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/blockhop/internal/engine"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded campaign levels, sorted by ID. The embedded
// files are validated at load time like any other level file; a broken
// builtin is a programming error and panics.
func Builtin() []engine.Level {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic("levels: embedded campaign missing: " + err.Error())
	}

	var loaded []engine.Level
	for _, entry := range entries {
		data, err := fs.ReadFile(builtinFS, "builtin/"+entry.Name())
		if err != nil {
			panic("levels: reading embedded level: " + err.Error())
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		level, err := parseAndValidate(data, ext, entry.Name())
		if err != nil {
			panic("levels: broken embedded level: " + err.Error())
		}
		loaded = append(loaded, level)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].ID < loaded[j].ID
	})

	return loaded
}
