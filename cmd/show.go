package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mosif16/codex-skills/internal/skill"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Open a specific skill by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	if !env.requireSkills() {
		return nil
	}
	showSkill(os.Stdout, env.skills, args[0])
	return nil
}

func showSkill(w io.Writer, skills []skill.Skill, name string) {
	s := skill.Find(skills, name)
	if s == nil {
		fmt.Fprintf(w, "Skill '%s' not found. Use `codex-skills list` to see available entries.\n", name)
		return
	}
	fmt.Fprintf(w, "%s\n%s\n\n", separator(), strings.TrimSpace(s.Doc))
	for _, extra := range s.ExtraDocs {
		fmt.Fprintf(w, "\n%s %s\n%s\n\n", separator(), extra.Name, strings.TrimSpace(extra.Contents))
	}
}
