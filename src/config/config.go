// Package config loads harness configuration and the project manifest.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".gauntlet.yml"

// Config is the top-level gauntlet configuration.
type Config struct {
	Verify VerifyConfig `yaml:"verify"`
	Badge  BadgeConfig  `yaml:"badge"`
}

// VerifyConfig controls the build verification run.
type VerifyConfig struct {
	TimeoutSeconds int      `yaml:"timeout_seconds"` // per-command bound
	ScratchDir     string   `yaml:"scratch_dir"`     // recreated every run
	Parallel       bool     `yaml:"parallel"`
	Jobs           int      `yaml:"jobs"` // concurrent methods when parallel
	Skip           []string `yaml:"skip"` // method names to disable
}

// BadgeConfig controls SVG status badge generation.
type BadgeConfig struct {
	Output   string  `yaml:"output"`
	Label    string  `yaml:"label"`
	FontFile string  `yaml:"font_file"` // TTF/OTF for exact text metrics
	FontSize float64 `yaml:"font_size"`
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Verify: VerifyConfig{
			TimeoutSeconds: 300,
			ScratchDir:     "test_build",
			Jobs:           2,
		},
		Badge: BadgeConfig{
			Output:   "build-status.svg",
			Label:    "builds",
			FontSize: 11,
		},
	}
}
