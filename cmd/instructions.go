package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var instructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "Print strict agent instructions and the allowed skill list",
	Args:  cobra.NoArgs,
	RunE:  runInstructions,
}

func init() {
	rootCmd.AddCommand(instructionsCmd)
}

func runInstructions(_ *cobra.Command, _ []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	if !env.requireSkills() {
		return nil
	}

	fmt.Printf("STRICT INSTRUCTIONS FOR AGENTS\n%s\nOnly use skill playbooks found in: %s\n", separator(), env.dir)
	fmt.Println("1) The only allowed skills are listed below; do NOT invent new skills.\n" +
		"2) Always pick the best-matching skill before acting; if none fit, say so.\n" +
		"3) When using a skill, follow its playbook text verbatim; do not alter or remove steps.\n" +
		"4) Cite the skill name when responding (e.g., 'Using skill: <name>').\n" +
		"5) Do not read or write files outside the skills directory.")
	fmt.Printf("%s\nALLOWED SKILLS:\n", separator())
	for _, s := range env.skills {
		fmt.Printf("- %s — %s\n", s.Name, s.Summary)
	}
	return nil
}
