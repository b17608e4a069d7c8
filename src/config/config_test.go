package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Verify.TimeoutSeconds != 300 {
		t.Errorf("timeout = %d, want 300", cfg.Verify.TimeoutSeconds)
	}
	if cfg.Verify.ScratchDir != "test_build" {
		t.Errorf("scratch dir = %q, want test_build", cfg.Verify.ScratchDir)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gauntlet.yml", `
verify:
  timeout_seconds: 60
  parallel: true
  skip: [docker]
badge:
  label: toolchains
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Verify.TimeoutSeconds != 60 {
		t.Errorf("timeout = %d, want 60", cfg.Verify.TimeoutSeconds)
	}
	if !cfg.Verify.Parallel {
		t.Error("parallel not set")
	}
	if len(cfg.Verify.Skip) != 1 || cfg.Verify.Skip[0] != "docker" {
		t.Errorf("skip = %v, want [docker]", cfg.Verify.Skip)
	}
	if cfg.Badge.Label != "toolchains" {
		t.Errorf("badge label = %q, want toolchains", cfg.Badge.Label)
	}
	// Untouched keys keep their defaults.
	if cfg.Verify.ScratchDir != "test_build" {
		t.Errorf("scratch dir = %q, want default", cfg.Verify.ScratchDir)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yml", "verify: [not a map")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	m, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Artifact != "gradus" || m.SmokeFlag != "-T" {
		t.Errorf("defaults = %+v, want gradus conventions", m)
	}
}

func TestLoadManifestOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gauntlet.toml", `
name = "frob"
source = "frob.c"
artifact = "frob"
smoke_flag = "--self-test"
image_tag = "frob-ci"
`)
	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Artifact != "frob" {
		t.Errorf("artifact = %q, want frob", m.Artifact)
	}
	if m.SmokeFlag != "--self-test" {
		t.Errorf("smoke flag = %q, want --self-test", m.SmokeFlag)
	}
	// Keys absent from the file keep defaults.
	if len(m.CompileFlags) == 0 {
		t.Error("compile flags lost their defaults")
	}
}
