package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mosif16/codex-skills/internal/matching"
	"github.com/mosif16/codex-skills/internal/skill"
)

// fallbackShortlistSize bounds the "did you mean" list shown when no
// skill scores above zero.
const fallbackShortlistSize = 5

var (
	flagPickTop  int
	flagPickShow bool
)

var pickCmd = &cobra.Command{
	Use:   "pick <query>",
	Short: "Suggest the best matching skills for a task description",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().IntVarP(&flagPickTop, "top", "t", 3, "Number of candidates to show")
	pickCmd.Flags().BoolVar(&flagPickShow, "show", false, "Immediately print the full playbook for the top result")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	if !env.requireSkills() {
		return nil
	}

	top := flagPickTop
	if !cmd.Flags().Changed("top") {
		top = env.cfg.Top()
	}
	pickSkills(os.Stdout, env.skills, strings.Join(args, " "), top, flagPickShow)
	return nil
}

func pickSkills(w io.Writer, skills []skill.Skill, query string, top int, show bool) {
	ranked := matching.Rank(skills, query)

	if len(ranked) > 0 && ranked[0].Score == 0 {
		shortlist := matching.ClosestNames(skills, query, fallbackShortlistSize)
		suggestion := "(no close names found)"
		if len(shortlist) > 0 {
			suggestion = strings.Join(shortlist, ", ")
		}
		fmt.Fprintf(w, "No good skill match for '%s'. Try a broader or simpler description.\nClosest skill names: %s\n",
			query, suggestion)
		return
	}

	if top > len(ranked) {
		top = len(ranked)
	}
	shown := false
	for i, m := range ranked[:top] {
		fmt.Fprintf(w, "%d. %s (score: %d) — %s\n", i+1, m.Skill.Name, m.Score, m.Skill.Summary)
		if show && i == 0 {
			fmt.Fprintf(w, "\n%s\n%s\n\n", separator(), strings.TrimSpace(m.Skill.Doc))
			sig := m.Signals
			fmt.Fprintf(w, "Top match reasoning: name hits=%d, summary hits=%d, tag hits=%d, body hits=%d, phrase bonus=%d, name similarity=%d, summary similarity=%d\n",
				sig.NameHits, sig.SummaryHits, sig.TagHits, sig.BodyHits, sig.PhraseBonus, sig.NameSimilarity, sig.SummarySimilarity)
			for _, extra := range m.Skill.ExtraDocs {
				fmt.Fprintf(w, "\n%s %s\n%s\n\n", separator(), extra.Name, strings.TrimSpace(extra.Contents))
			}
			shown = true
		}
	}

	if show && !shown {
		fmt.Fprintln(w, "No matches to display; try a broader query.")
	}
}
