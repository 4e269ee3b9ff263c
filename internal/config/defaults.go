package config

import (
	_ "embed"
)

//go:embed defaults/blockhop.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Storage: StorageConfig{
			DBPath: "~/.blockhop/progress.db",
		},
		UI: UIConfig{
			StepIntervalMS: 350,
		},
	}
}
