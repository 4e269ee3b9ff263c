package levels

import "github.com/vovakirdan/blockhop/internal/engine"

// Catalog is an ordered, immutable set of loaded levels. Order defines the
// unlock chain: completing a level unlocks the next one in the catalog.
type Catalog struct {
	levels []engine.Level
	index  map[string]int
}

// NewCatalog builds a catalog from already-validated levels, preserving
// their order.
func NewCatalog(list []engine.Level) *Catalog {
	c := &Catalog{
		levels: make([]engine.Level, len(list)),
		index:  make(map[string]int, len(list)),
	}
	copy(c.levels, list)
	for i, lvl := range c.levels {
		c.index[lvl.ID] = i
	}
	return c
}

// Open loads a catalog from a levels directory, or falls back to the
// embedded campaign when dir is empty.
func Open(dir string) (*Catalog, error) {
	if dir == "" {
		return NewCatalog(Builtin()), nil
	}
	list, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	return NewCatalog(list), nil
}

// Get returns a level by ID.
func (c *Catalog) Get(id string) (engine.Level, bool) {
	i, ok := c.index[id]
	if !ok {
		return engine.Level{}, false
	}
	return c.levels[i], true
}

// All returns the levels in catalog order.
func (c *Catalog) All() []engine.Level {
	out := make([]engine.Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// IDs returns the level IDs in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.levels))
	for i, lvl := range c.levels {
		ids[i] = lvl.ID
	}
	return ids
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// First returns the ID of the first level, the one unlocked from the start.
func (c *Catalog) First() (string, bool) {
	if len(c.levels) == 0 {
		return "", false
	}
	return c.levels[0].ID, true
}

// Next returns the ID of the level following the given one in the unlock
// chain. Returns false for the last level and for unknown IDs.
func (c *Catalog) Next(id string) (string, bool) {
	i, ok := c.index[id]
	if !ok || i+1 >= len(c.levels) {
		return "", false
	}
	return c.levels[i+1].ID, true
}
