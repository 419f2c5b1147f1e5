package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mosif16/codex-skills/internal/skill"
)

var flagValidateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate skill files for correctness",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagValidateStrict, "strict", false, "Fail on warnings (stricter validation)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	if !env.requireSkills() {
		return nil
	}

	errors, warnings := 0, 0
	for i := range env.skills {
		s := &env.skills[i]
		problems, advisories := checkSkill(s)
		if len(problems) == 0 && len(advisories) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", s.Name)
		for _, p := range problems {
			printErr(p)
			errors++
		}
		for _, a := range advisories {
			printWarn(a)
			warnings++
		}
	}

	fmt.Printf("\n%d skills validated\n", len(env.skills))
	fmt.Printf("  %d errors, %d warnings\n", errors, warnings)

	if errors > 0 || (flagValidateStrict && warnings > 0) {
		return fmt.Errorf("validation failed: %d errors, %d warnings", errors, warnings)
	}
	return nil
}

// checkSkill reports hard errors and advisory warnings for one skill.
func checkSkill(s *skill.Skill) (problems, advisories []string) {
	if s.Name == "" {
		problems = append(problems, "missing name")
	} else if strings.Contains(s.Name, " ") {
		advisories = append(advisories, "name contains spaces (consider using kebab-case)")
	}

	if s.Summary == "" {
		problems = append(problems, "missing description")
	} else if len(s.Summary) > 200 {
		advisories = append(advisories, fmt.Sprintf("description is %d chars (recommended: <200)", len(s.Summary)))
	}

	if len(s.Keywords) == 0 {
		advisories = append(advisories, "no tags defined (recommended: 3+)")
	} else if len(s.Keywords) < 3 {
		advisories = append(advisories, fmt.Sprintf("only %d tag(s) (recommended: 3+)", len(s.Keywords)))
	}

	if s.Doc == "" {
		problems = append(problems, "empty skill body")
	} else if len(s.Doc) < 100 {
		advisories = append(advisories, "very short skill body (<100 chars)")
	}
	return problems, advisories
}
