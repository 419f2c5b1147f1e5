package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mosif16/codex-skills/internal/skill"
)

func searchCorpus() []skill.Skill {
	return []skill.Skill{
		skill.New("demo", "A demo", nil,
			"line one\nline two mentions widgets\nline three",
			[]skill.ExtraDoc{{Name: "extra.md", Contents: "widgets here too"}}),
		skill.New("other", "No match", nil, "nothing relevant", nil),
	}
}

func TestSearchSkills_FindsMatchesInDocAndExtras(t *testing.T) {
	var buf bytes.Buffer
	searchSkills(&buf, searchCorpus(), "WIDGETS", 0)
	out := buf.String()

	if !strings.Contains(out, "demo (2 matches)") {
		t.Errorf("expected 2 matches in demo:\n%s", out)
	}
	if !strings.Contains(out, "L2: line two mentions widgets") {
		t.Errorf("doc match missing:\n%s", out)
	}
	if !strings.Contains(out, "[extra.md] L1: widgets here too") {
		t.Errorf("extra doc match missing:\n%s", out)
	}
	if !strings.Contains(out, "2 total matches across 1 skills") {
		t.Errorf("summary line missing:\n%s", out)
	}
}

func TestSearchSkills_ContextLines(t *testing.T) {
	var buf bytes.Buffer
	searchSkills(&buf, searchCorpus(), "widgets", 1)
	out := buf.String()

	if !strings.Contains(out, "L1: line one") || !strings.Contains(out, "L3: line three") {
		t.Errorf("context lines missing:\n%s", out)
	}
}

func TestSearchSkills_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	searchSkills(&buf, searchCorpus(), "nonexistent-term", 2)
	if !strings.Contains(buf.String(), "No matches found for 'nonexistent-term'") {
		t.Errorf("expected no-match message:\n%s", buf.String())
	}
}
