package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mosif16/codex-skills/internal/skill"
)

var (
	flagListBrief   bool
	flagListVerbose bool
	flagListJSON    bool
	flagListClip    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available skills with a short summary",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListBrief, "brief", false, "Output only names")
	listCmd.Flags().BoolVar(&flagListVerbose, "verbose", false, "Output full summaries (no clipping)")
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "Output JSON array of skill names")
	listCmd.Flags().IntVar(&flagListClip, "clip", 80, "Maximum characters for clipped summaries")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	if !env.requireSkills() {
		return nil
	}

	clip := flagListClip
	if !cmd.Flags().Changed("clip") {
		clip = env.cfg.Clip()
	}
	return listSkills(os.Stdout, env.skills, flagListBrief, flagListVerbose, flagListJSON, clip)
}

func listSkills(w io.Writer, skills []skill.Skill, brief, verbose, asJSON bool, clip int) error {
	if asJSON {
		names := make([]string, 0, len(skills))
		for _, s := range skills {
			names = append(names, s.Name)
		}
		data, err := json.Marshal(names)
		if err != nil {
			return fmt.Errorf("cannot encode skill names: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	for _, s := range skills {
		switch {
		case brief:
			fmt.Fprintf(w, "- %s\n", s.Name)
		case verbose:
			fmt.Fprintf(w, "- %s — %s\n", s.Name, s.Summary)
		default:
			fmt.Fprintf(w, "- %s — %s\n", s.Name, clipSummary(s.Summary, clip))
		}
	}
	return nil
}
