package cmd

import (
	"testing"

	"github.com/mosif16/codex-skills/internal/config"
)

func TestResolveSkillsDir(t *testing.T) {
	orig := flagSkillsDir
	defer func() { flagSkillsDir = orig }()

	flagSkillsDir = defaultSkillsDir
	if got := resolveSkillsDir(config.Config{}); got != defaultSkillsDir {
		t.Errorf("default = %q, want %q", got, defaultSkillsDir)
	}
	if got := resolveSkillsDir(config.Config{SkillsDir: "from-config"}); got != "from-config" {
		t.Errorf("config should win over default, got %q", got)
	}

	flagSkillsDir = "explicit"
	if got := resolveSkillsDir(config.Config{SkillsDir: "from-config"}); got != "explicit" {
		t.Errorf("explicit flag should win, got %q", got)
	}
}
