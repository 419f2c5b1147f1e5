package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	var cfg Config
	if cfg.Top() != 3 {
		t.Errorf("Top = %d, want 3", cfg.Top())
	}
	if cfg.Clip() != 80 {
		t.Errorf("Clip = %d, want 80", cfg.Clip())
	}
}

func TestCustomValues(t *testing.T) {
	cfg := Config{DefaultTop: 5, ClipLength: 100, SkillsDir: "/custom/path"}
	if cfg.Top() != 5 {
		t.Errorf("Top = %d, want 5", cfg.Top())
	}
	if cfg.Clip() != 100 {
		t.Errorf("Clip = %d, want 100", cfg.Clip())
	}
}

func TestLoadFromPaths_FirstExistingWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")
	if err := os.WriteFile(first, []byte("default_top = 7\nclip_length = 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("default_top = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := loadFromPaths([]string{filepath.Join(dir, "missing.toml"), first, second})
	if cfg.DefaultTop != 7 || cfg.ClipLength != 40 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadFromPaths_InvalidFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.toml")
	valid := filepath.Join(dir, "valid.toml")
	if err := os.WriteFile(broken, []byte("default_top = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(valid, []byte("skills_dir = \"my-skills\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := loadFromPaths([]string{broken, valid})
	if cfg.SkillsDir != "my-skills" {
		t.Errorf("expected fallback to the valid file, got %+v", cfg)
	}
}

func TestLoadFromPaths_NothingFoundYieldsZeroConfig(t *testing.T) {
	cfg := loadFromPaths([]string{filepath.Join(t.TempDir(), "nope.toml"), ""})
	if cfg != (Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}
