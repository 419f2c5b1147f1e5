package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mosif16/codex-skills/internal/skill"
)

func pickCorpus() []skill.Skill {
	return []skill.Skill{
		skill.New("systematic-debugging",
			"Isolate and fix bugs methodically by reproducing and bisecting",
			[]string{"debugging", "troubleshooting", "bisect"},
			"Reproduce the failure before changing anything at all here.",
			[]skill.ExtraDoc{{Name: "checklist.md", Contents: "# Checklist\n- reproduce first\n"}}),
		skill.New("frontend-design",
			"Build clean user interface layouts with consistent spacing",
			[]string{"frontend", "interface", "css"},
			"Design the states before the screens.", nil),
	}
}

func TestPickSkills_RanksAndFormats(t *testing.T) {
	var buf bytes.Buffer
	pickSkills(&buf, pickCorpus(), "debugging a failing test", 3, false)
	out := buf.String()

	if !strings.HasPrefix(out, "1. systematic-debugging (score: ") {
		t.Errorf("unexpected first line:\n%s", out)
	}
	if !strings.Contains(out, "— Isolate and fix bugs methodically") {
		t.Errorf("summary missing from output:\n%s", out)
	}
}

func TestPickSkills_RespectsTop(t *testing.T) {
	var buf bytes.Buffer
	pickSkills(&buf, pickCorpus(), "design", 1, false)
	out := strings.TrimSpace(buf.String())
	if strings.Count(out, "\n") != 0 {
		t.Errorf("expected exactly one result line:\n%s", out)
	}
}

func TestPickSkills_ZeroScoreFallsBackToShortlist(t *testing.T) {
	var buf bytes.Buffer
	pickSkills(&buf, pickCorpus(), "quantum knitting", 3, false)
	out := buf.String()

	if !strings.Contains(out, "No good skill match for 'quantum knitting'") {
		t.Errorf("missing no-match message:\n%s", out)
	}
	if !strings.Contains(out, "Closest skill names: ") {
		t.Errorf("missing shortlist:\n%s", out)
	}
	if strings.Contains(out, "(score:") {
		t.Errorf("fallback should not list ranked results:\n%s", out)
	}
}

func TestPickSkills_ShowPrintsPlaybookAndReasoning(t *testing.T) {
	var buf bytes.Buffer
	pickSkills(&buf, pickCorpus(), "debugging a failing test", 3, true)
	out := buf.String()

	if !strings.Contains(out, "Reproduce the failure before changing anything") {
		t.Errorf("playbook body missing:\n%s", out)
	}
	if !strings.Contains(out, "Top match reasoning: name hits=") {
		t.Errorf("reasoning line missing:\n%s", out)
	}
	if !strings.Contains(out, "checklist.md") {
		t.Errorf("extra doc missing:\n%s", out)
	}
}
