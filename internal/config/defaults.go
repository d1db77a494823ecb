package config

import (
	"github.com/rversteeg/importeer/internal/margin"
)

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *Config {
	return &Config{
		ImportCosts: margin.DefaultImportCosts(),
		Thresholds:  margin.DefaultThresholds(),
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		LogLevel: "info",
	}
}
