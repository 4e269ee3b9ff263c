package formats

import (
	"encoding/json"
	"fmt"
)

// JSONLevel represents the JSON structure for a level file.
type JSONLevel struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Track []string `json:"track"`
	Start int      `json:"start"`
	Goal  int      `json:"goal"`
}

// ParseJSON parses a JSON level file.
func ParseJSON(data []byte) (Level, error) {
	var jl JSONLevel
	if err := json.Unmarshal(data, &jl); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}

	track, err := ParseTrackNames(jl.Track)
	if err != nil {
		return Level{}, err
	}

	return Level{
		ID:    jl.ID,
		Name:  jl.Name,
		Track: track,
		Start: jl.Start,
		Goal:  jl.Goal,
	}, nil
}
