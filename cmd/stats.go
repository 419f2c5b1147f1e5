package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about loaded skills",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	if !env.requireSkills() {
		return nil
	}
	skills := env.skills

	largest, smallest := 0, 0
	totalSize, totalExtras, withTags := 0, 0, 0
	tagSet := make(map[string]struct{})
	for i := range skills {
		if len(skills[i].Doc) > len(skills[largest].Doc) {
			largest = i
		}
		if len(skills[i].Doc) < len(skills[smallest].Doc) {
			smallest = i
		}
		totalSize += len(skills[i].Doc)
		totalExtras += len(skills[i].ExtraDocs)
		if len(skills[i].Keywords) > 0 {
			withTags++
		}
		for _, k := range skills[i].Keywords {
			tagSet[k] = struct{}{}
		}
	}

	fmt.Println("Skill Statistics")
	table := tablewriter.NewTable(os.Stdout)
	table.Header("Metric", "Value")
	_ = table.Append("Total skills", strconv.Itoa(len(skills)))
	_ = table.Append("Largest skill", fmt.Sprintf("%s (%d chars, %d extra docs)",
		skills[largest].Name, len(skills[largest].Doc), len(skills[largest].ExtraDocs)))
	_ = table.Append("Smallest skill", fmt.Sprintf("%s (%d chars)",
		skills[smallest].Name, len(skills[smallest].Doc)))
	_ = table.Append("Total extra docs", strconv.Itoa(totalExtras))
	_ = table.Append("Average skill size", fmt.Sprintf("%d chars", totalSize/len(skills)))
	_ = table.Append("Skills with tags", fmt.Sprintf("%d/%d", withTags, len(skills)))
	_ = table.Append("Unique tags", strconv.Itoa(len(tagSet)))
	if err := table.Render(); err != nil {
		return fmt.Errorf("cannot render stats table: %w", err)
	}

	if len(tagSet) > 0 {
		tags := make([]string, 0, len(tagSet))
		for t := range tagSet {
			tags = append(tags, t)
		}
		sort.Strings(tags)
		fmt.Printf("\nTags: %s\n", strings.Join(tags, ", "))
	}
	return nil
}
