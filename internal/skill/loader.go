package skill

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads skills from a directory tree on disk. Every SKILL.md
// (case-insensitive filename) found under dir becomes one skill; other
// markdown files in the same folder are attached as extra docs.
func Load(dir string) ([]Skill, error) {
	skills, err := LoadFS(os.DirFS(dir), dir)
	if err != nil {
		return nil, fmt.Errorf("cannot scan skills in %s: %w", dir, err)
	}
	return skills, nil
}

// LoadFS reads skills from any fs.FS tree. The origin label is used in
// error messages so embedded and on-disk sources stay distinguishable.
func LoadFS(fsys fs.FS, origin string) ([]Skill, error) {
	var skillPaths []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), "SKILL.md") {
			skillPaths = append(skillPaths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var skills []Skill
	for _, p := range skillPaths {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("cannot read skill file %s: %w", p, err)
		}
		extras, err := loadExtraDocs(fsys, path.Dir(p))
		if err != nil {
			return nil, err
		}
		s, err := Parse(string(raw), origin+"/"+p, extras)
		if err != nil {
			return nil, err
		}
		if s != nil {
			skills = append(skills, *s)
		}
	}
	return skills, nil
}

// loadExtraDocs collects every non-SKILL.md markdown file under folder,
// recursively. Nested SKILL.md files belong to other skills and are
// excluded. Results are sorted by relative name.
func loadExtraDocs(fsys fs.FS, folder string) ([]ExtraDoc, error) {
	var extras []ExtraDoc
	err := fs.WalkDir(fsys, folder, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.EqualFold(name, "SKILL.md") || !strings.HasSuffix(strings.ToLower(name), ".md") {
			return nil
		}
		contents, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("cannot read extra skill file %s: %w", p, err)
		}
		rel := p
		if folder != "." {
			rel = strings.TrimPrefix(p, folder+"/")
		}
		extras = append(extras, ExtraDoc{Name: rel, Contents: string(contents)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i].Name < extras[j].Name })
	return extras, nil
}

// Dedupe drops later skills whose lowercased name was already seen,
// preserving input order otherwise.
func Dedupe(skills []Skill) []Skill {
	seen := make(map[string]struct{}, len(skills))
	out := skills[:0]
	for _, s := range skills {
		key := strings.ToLower(s.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// LoadWithFallback loads skills from dir, falling back to the embedded
// bundle when the directory is missing or holds no skills. The returned
// collection is deduplicated by case-insensitive name.
func LoadWithFallback(dir string, bundle fs.FS) ([]Skill, error) {
	var skills []Skill
	if _, err := os.Stat(dir); err == nil {
		skills, err = Load(dir)
		if err != nil {
			return nil, err
		}
	}
	if len(skills) == 0 {
		var err error
		skills, err = LoadFS(bundle, "embedded:")
		if err != nil {
			return nil, fmt.Errorf("cannot load embedded skills: %w", err)
		}
	}
	return Dedupe(skills), nil
}

// Materialize writes the bundled skills into dir. Existing files are kept
// unless force is set.
func Materialize(dir string, force bool, bundle fs.FS) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create skills directory %s: %w", dir, err)
	}
	return fs.WalkDir(bundle, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		target := filepath.Join(dir, filepath.FromSlash(p))
		if !force {
			if _, err := os.Stat(target); err == nil {
				return nil
			}
		}
		data, err := fs.ReadFile(bundle, p)
		if err != nil {
			return fmt.Errorf("cannot read bundled file %s: %w", p, err)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", target, err)
		}
		return nil
	})
}
