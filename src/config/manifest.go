package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const manifestFile = "gauntlet.toml"

// Manifest describes the program under verification: what to compile, what
// artifact each builder is expected to produce, and how to smoke-test it.
// A missing manifest falls back to the gradus project conventions.
type Manifest struct {
	Name         string   `toml:"name"`
	Source       string   `toml:"source"`        // compiled directly by gcc/clang
	Artifact     string   `toml:"artifact"`      // canonical binary name
	SmokeFlag    string   `toml:"smoke_flag"`    // single fixed functional-check flag
	ImageTag     string   `toml:"image_tag"`     // container image tag
	BuildScript  string   `toml:"build_script"`  // in-place build script
	CompileFlags []string `toml:"compile_flags"` // direct-compile flags
	LinkFlags    []string `toml:"link_flags"`    // trailing linker flags
}

// LoadManifest reads gauntlet.toml from rootDir, falling back to defaults
// when the file is absent.
func LoadManifest(rootDir string) (Manifest, error) {
	m := DefaultManifest()

	data, err := os.ReadFile(filepath.Join(rootDir, manifestFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return m, err
	}

	if err := toml.Unmarshal(data, &m); err != nil {
		return m, err
	}
	return m, nil
}

// DefaultManifest returns the fixed gradus project layout.
func DefaultManifest() Manifest {
	return Manifest{
		Name:         "gradus",
		Source:       "gradus_enhanced.c",
		Artifact:     "gradus",
		SmokeFlag:    "-T",
		ImageTag:     "gradus-test",
		BuildScript:  "./build.sh",
		CompileFlags: []string{"-Wall", "-Wextra", "-std=c99"},
		LinkFlags:    []string{"-lm"},
	}
}
