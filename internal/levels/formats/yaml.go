package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Track string `yaml:"track"`
	Start int    `yaml:"start"`
	Goal  int    `yaml:"goal"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	track, err := ParseTrackString(yl.Track)
	if err != nil {
		return Level{}, err
	}

	return Level{
		ID:    yl.ID,
		Name:  yl.Name,
		Track: track,
		Start: yl.Start,
		Goal:  yl.Goal,
	}, nil
}
