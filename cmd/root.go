package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mosif16/codex-skills/bundled"
	"github.com/mosif16/codex-skills/internal/config"
	"github.com/mosif16/codex-skills/internal/skill"
)

const defaultSkillsDir = "skills"

var flagSkillsDir string

var rootCmd = &cobra.Command{
	Use:          "codex-skills",
	Short:        "Route tasks to the right skill playbook",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `codex-skills matches free-form task descriptions against a collection of
SKILL.md playbooks and suggests the best-ranked candidates.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSkillsDir, "skills-dir", defaultSkillsDir,
		"Directory containing skill folders (each with SKILL.md)")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveSkillsDir picks the skills directory: an explicit --skills-dir
// wins, then the config file, then the built-in default.
func resolveSkillsDir(cfg config.Config) string {
	if flagSkillsDir != defaultSkillsDir {
		return flagSkillsDir
	}
	if cfg.SkillsDir != "" {
		return cfg.SkillsDir
	}
	return flagSkillsDir
}

// environment bundles what every skill-reading command needs.
type environment struct {
	cfg    config.Config
	dir    string
	skills []skill.Skill
}

// loadEnvironment loads config and the skill collection, falling back to
// the embedded bundle when the skills directory is missing or empty.
func loadEnvironment() (*environment, error) {
	cfg := config.Load()
	dir := resolveSkillsDir(cfg)
	skills, err := skill.LoadWithFallback(dir, bundled.Skills())
	if err != nil {
		return nil, err
	}
	return &environment{cfg: cfg, dir: dir, skills: skills}, nil
}

// requireSkills prints the getting-started hint when the collection is
// empty and reports whether the command should continue.
func (e *environment) requireSkills() bool {
	if len(e.skills) == 0 {
		fmt.Printf("No skills found in %s. Add SKILL.md files to get started.\n", e.dir)
		return false
	}
	return true
}
