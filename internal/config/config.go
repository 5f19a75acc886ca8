// Package config loads rethinkctl's runtime configuration from a YAML
// file, with environment variables taking precedence.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the paths and addresses every command shares.
type Config struct {
	// ContentRoot is the directory holding one subdirectory per slug.
	ContentRoot string `yaml:"content_root"`
	// SourcePath is the default source document for convert.
	SourcePath string `yaml:"source"`
	// IndexPath is where build writes the aggregated lookup table.
	IndexPath string `yaml:"index_output"`
	// ListenAddr is the serve bind address.
	ListenAddr string `yaml:"listen"`
}

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = "rethink.yaml"

func defaults() Config {
	return Config{
		ContentRoot: "content/principles",
		SourcePath:  "docs/ebook.pdf",
		IndexPath:   "principle-content.json",
		ListenAddr:  ":8080",
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. A file that exists but cannot be parsed is an
// error; silently running against defaults would hide a real problem.
func Load(path string) (Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RETHINK_CONTENT_DIR"); v != "" {
		cfg.ContentRoot = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.ListenAddr = ":" + v
	}
}
