package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mosif16/codex-skills/internal/skill"
)

var flagSearchContext int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search within skill content",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&flagSearchContext, "context", "c", 2, "Show context around matches")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	if !env.requireSkills() {
		return nil
	}
	searchSkills(os.Stdout, env.skills, strings.Join(args, " "), flagSearchContext)
	return nil
}

// lineMatch is one matching line inside a skill document.
type lineMatch struct {
	lineNum int
	line    string
	source  string // "doc" or the extra doc name
}

func searchSkills(w io.Writer, skills []skill.Skill, query string, contextLines int) {
	queryLower := strings.ToLower(query)
	totalMatches := 0
	matchedSkills := 0

	for i := range skills {
		s := &skills[i]
		matches := findLineMatches(s, queryLower)
		if len(matches) == 0 {
			continue
		}
		matchedSkills++
		totalMatches += len(matches)

		fmt.Fprintf(w, "\n%s (%d matches)\n", s.Name, len(matches))
		fmt.Fprintln(w, separator())
		for _, m := range matches {
			prefix := ""
			if m.source != "doc" {
				prefix = fmt.Sprintf("[%s] ", m.source)
			}
			fmt.Fprintf(w, "  %sL%d: %s\n", prefix, m.lineNum+1, strings.TrimSpace(m.line))

			if contextLines > 0 {
				printContext(w, sourceContents(s, m.source), m.lineNum, contextLines)
			}
		}
	}

	if totalMatches == 0 {
		fmt.Fprintf(w, "No matches found for '%s'\n", query)
	} else {
		fmt.Fprintf(w, "\n%d total matches across %d skills\n", totalMatches, matchedSkills)
	}
}

func findLineMatches(s *skill.Skill, queryLower string) []lineMatch {
	var matches []lineMatch
	for n, line := range strings.Split(s.Doc, "\n") {
		if strings.Contains(strings.ToLower(line), queryLower) {
			matches = append(matches, lineMatch{lineNum: n, line: line, source: "doc"})
		}
	}
	for _, extra := range s.ExtraDocs {
		for n, line := range strings.Split(extra.Contents, "\n") {
			if strings.Contains(strings.ToLower(line), queryLower) {
				matches = append(matches, lineMatch{lineNum: n, line: line, source: extra.Name})
			}
		}
	}
	return matches
}

func sourceContents(s *skill.Skill, source string) string {
	if source == "doc" {
		return s.Doc
	}
	for _, extra := range s.ExtraDocs {
		if extra.Name == source {
			return extra.Contents
		}
	}
	return s.Doc
}

func printContext(w io.Writer, contents string, lineNum, contextLines int) {
	lines := strings.Split(contents, "\n")
	start := lineNum - contextLines
	if start < 0 {
		start = 0
	}
	end := lineNum + contextLines + 1
	if end > len(lines) {
		end = len(lines)
	}
	for i := start; i < end; i++ {
		if i != lineNum {
			fmt.Fprintf(w, "    L%d: %s\n", i+1, strings.TrimSpace(lines[i]))
		}
	}
}
