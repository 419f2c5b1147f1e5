// Package config loads the optional codex-skills TOML configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable defaults. Zero values mean "use the
// built-in default".
type Config struct {
	DefaultTop int    `toml:"default_top"`
	ClipLength int    `toml:"clip_length"`
	SkillsDir  string `toml:"skills_dir"`
}

const (
	defaultTop  = 3
	defaultClip = 80
)

// Load reads the first config file that exists, searching the current
// directory and then the user config directory. A missing, unreadable, or
// invalid file yields the defaults; configuration is best-effort and
// never fails a command.
func Load() Config {
	return loadFromPaths([]string{
		".codex-skills.toml",
		"codex-skills.toml",
		homeConfigPath(),
	})
}

func loadFromPaths(paths []string) Config {
	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := toml.Unmarshal(data, &cfg); err != nil {
			continue
		}
		return cfg
	}
	return Config{}
}

// Top returns the configured default for pick's result count.
func (c Config) Top() int {
	if c.DefaultTop > 0 {
		return c.DefaultTop
	}
	return defaultTop
}

// Clip returns the configured summary clip length.
func (c Config) Clip() int {
	if c.ClipLength > 0 {
		return c.ClipLength
	}
	return defaultClip
}

// homeConfigPath is ~/.config/codex-skills/config.toml, or empty when the
// home directory cannot be determined.
func homeConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "codex-skills", "config.toml")
}
