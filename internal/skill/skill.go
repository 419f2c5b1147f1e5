package skill

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skill is one playbook loaded from a SKILL.md file. The token slices are
// derived from their source fields once at construction and are never
// recomputed or mutated afterward.
type Skill struct {
	Name      string
	Summary   string
	Keywords  []string
	Doc       string
	ExtraDocs []ExtraDoc

	NameTokens    []string
	SummaryTokens []string
	TagTokens     []string
	BodyTokens    []string
}

// ExtraDoc is an additional markdown file shipped alongside a SKILL.md.
type ExtraDoc struct {
	Name     string
	Contents string
}

// frontmatter is the YAML header expected at the top of every SKILL.md.
type frontmatter struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// New builds a Skill and derives its token sequences.
func New(name, summary string, keywords []string, doc string, extras []ExtraDoc) Skill {
	tagTokens := make([]string, 0, len(keywords))
	for _, k := range keywords {
		tagTokens = append(tagTokens, Tokenize(k)...)
	}
	return Skill{
		Name:          name,
		Summary:       summary,
		Keywords:      keywords,
		Doc:           doc,
		ExtraDocs:     extras,
		NameTokens:    Tokenize(name),
		SummaryTokens: Tokenize(summary),
		TagTokens:     tagTokens,
		BodyTokens:    Tokenize(doc),
	}
}

// Parse reads a skill from raw markdown with YAML frontmatter. Files
// without a leading frontmatter block are not skills; Parse returns
// (nil, nil) for those so callers can skip them. Invalid YAML inside the
// block is an error carrying the origin path.
func Parse(raw, origin string, extras []ExtraDoc) (*Skill, error) {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return nil, nil
	}

	var fmLines, bodyLines []string
	inBody := false
	for _, line := range lines[1:] {
		if !inBody && strings.TrimSpace(line) == "---" {
			inBody = true
			continue
		}
		if inBody {
			bodyLines = append(bodyLines, line)
		} else {
			fmLines = append(fmLines, line)
		}
	}
	if !inBody {
		return nil, nil
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(strings.Join(fmLines, "\n")), &fm); err != nil {
		return nil, fmt.Errorf("invalid YAML frontmatter in %s (lines 2-%d): %w\n"+
			"Expected format:\n---\nname: skill-name\ndescription: Short description\ntags:\n- tag1\n- tag2\n---",
			origin, len(fmLines)+1, err)
	}

	doc := strings.TrimSpace(strings.Join(bodyLines, "\n"))
	s := New(fm.Name, fm.Description, fm.Tags, doc, extras)
	return &s, nil
}

// Find locates a skill by name: case-insensitive exact match first, then
// substring match.
func Find(skills []Skill, name string) *Skill {
	needle := strings.ToLower(name)
	for i := range skills {
		if strings.ToLower(skills[i].Name) == needle {
			return &skills[i]
		}
	}
	for i := range skills {
		if strings.Contains(strings.ToLower(skills[i].Name), needle) {
			return &skills[i]
		}
	}
	return nil
}
