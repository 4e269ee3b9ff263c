// Package config provides YAML-based configuration for BlockHop.
package config

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	// Addr is the host:port to listen on (e.g., ":8080").
	Addr string `yaml:"addr"`

	// StaticDir is an optional directory of static files for the browser
	// front end. Empty disables static serving.
	StaticDir string `yaml:"static_dir"`
}

// LevelsConfig configures the level catalog.
type LevelsConfig struct {
	// Dir is the directory of level files. Empty uses the embedded
	// campaign.
	Dir string `yaml:"dir"`
}

// StorageConfig configures progress persistence.
type StorageConfig struct {
	// DBPath is the path to the progress database.
	DBPath string `yaml:"db_path"`
}

// UIConfig configures the interactive terminal UI.
type UIConfig struct {
	// StepIntervalMS is the delay between animated trace steps.
	StepIntervalMS int `yaml:"step_interval_ms"`
}
