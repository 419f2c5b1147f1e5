// Package matching ranks skills against a free-text task description.
//
// Ranking combines exact token overlap across the four skill fields with
// a gated Jaro-Winkler similarity on the whole name and summary strings.
// The pipeline is stateless: every call tokenizes the query, scores each
// skill independently, and returns a fully ordered result.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/mosif16/codex-skills/internal/skill"
)

// Scoring weights. Fixed constants; reproduced exactly for scoring parity
// across releases.
const (
	nameWeight       = 8
	summaryWeight    = 5
	tagWeight        = 4
	bodyWeight       = 1
	phraseWeight     = 1
	nameSimWeight    = 2
	summarySimWeight = 1

	// phraseBonus is awarded when the whole query appears verbatim in a
	// skill's name or summary.
	phraseBonus = 10

	// Similarity only contributes when the skill already has token
	// agreement, or the whole-string match is near-identical.
	nameSimGate    = 0.92
	summarySimGate = 0.94
)

// Jaro-Winkler parameters (standard boost threshold and prefix size).
const (
	jwBoostThreshold = 0.7
	jwPrefixSize     = 4
)

// Signals holds the per-field match evidence for one skill/query pair.
type Signals struct {
	NameHits          int
	SummaryHits       int
	TagHits           int
	BodyHits          int
	PhraseBonus       int
	NameSimilarity    int
	SummarySimilarity int
}

// Total reduces the signals to a single weighted score.
func (s Signals) Total() int {
	return nameWeight*s.NameHits +
		summaryWeight*s.SummaryHits +
		tagWeight*s.TagHits +
		bodyWeight*s.BodyHits +
		phraseWeight*s.PhraseBonus +
		nameSimWeight*s.NameSimilarity +
		summarySimWeight*s.SummarySimilarity
}

// Match is one ranked entry: the skill, its signals, and the total score.
type Match struct {
	Score   int
	Skill   *skill.Skill
	Signals Signals
}

// Overlap counts how many query tokens appear in the target tokens. The
// target side is deduplicated into a set; the query side is not, so a
// repeated query token counts once per occurrence. That asymmetry is a
// deliberate weighting lever and must be preserved.
func Overlap(queryTokens, targetTokens []string) int {
	target := make(map[string]struct{}, len(targetTokens))
	for _, t := range targetTokens {
		target[t] = struct{}{}
	}
	hits := 0
	for _, q := range queryTokens {
		if _, ok := target[q]; ok {
			hits++
		}
	}
	return hits
}

// Similarity returns the Jaro-Winkler similarity of two strings in [0, 1].
// An empty comparand yields 0.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return smetrics.JaroWinkler(a, b, jwBoostThreshold, jwPrefixSize)
}

// ComputeSignals scores one skill against a tokenized query. queryPhrase
// must be the lowercased whole query string. Pure function; no side
// effects.
func ComputeSignals(s *skill.Skill, queryTokens []string, queryPhrase string) Signals {
	nameHits := Overlap(queryTokens, s.NameTokens)
	summaryHits := Overlap(queryTokens, s.SummaryTokens)
	tagHits := Overlap(queryTokens, s.TagTokens)
	bodyHits := Overlap(queryTokens, s.BodyTokens)
	baseHits := nameHits + summaryHits + tagHits + bodyHits

	nameLower := strings.ToLower(s.Name)
	summaryLower := strings.ToLower(s.Summary)

	nameSimRaw := Similarity(nameLower, queryPhrase)
	summarySimRaw := Similarity(summaryLower, queryPhrase)

	var nameSim, summarySim int
	if baseHits > 0 || nameSimRaw >= nameSimGate || summarySimRaw >= summarySimGate {
		nameSim = int(math.Round(nameSimRaw * 10))
		summarySim = int(math.Round(summarySimRaw * 8))
	}

	bonus := 0
	if queryPhrase != "" && (strings.Contains(nameLower, queryPhrase) || strings.Contains(summaryLower, queryPhrase)) {
		bonus = phraseBonus
	}

	return Signals{
		NameHits:          nameHits,
		SummaryHits:       summaryHits,
		TagHits:           tagHits,
		BodyHits:          bodyHits,
		PhraseBonus:       bonus,
		NameSimilarity:    nameSim,
		SummarySimilarity: summarySim,
	}
}

// Rank scores every skill against the query and returns the full list
// sorted by score descending. Ties keep the original corpus order, which
// is deterministic because the loader walks directories lexically.
// Callers truncate to their own top-N.
func Rank(skills []skill.Skill, query string) []Match {
	queryTokens := skill.Tokenize(query)
	queryPhrase := strings.ToLower(query)

	ranked := make([]Match, 0, len(skills))
	for i := range skills {
		signals := ComputeSignals(&skills[i], queryTokens, queryPhrase)
		ranked = append(ranked, Match{Score: signals.Total(), Skill: &skills[i], Signals: signals})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

// ClosestNames returns up to limit skill names ordered by Jaro-Winkler
// similarity to the query, most similar first. Names with similarity
// exactly 0 are dropped. Used for the "did you mean" shortlist when no
// skill scores above zero.
func ClosestNames(skills []skill.Skill, query string, limit int) []string {
	queryPhrase := strings.ToLower(query)

	type candidate struct {
		sim  float64
		name string
	}
	closest := make([]candidate, 0, len(skills))
	for i := range skills {
		sim := Similarity(strings.ToLower(skills[i].Name), queryPhrase)
		if sim == 0 {
			continue
		}
		closest = append(closest, candidate{sim: sim, name: skills[i].Name})
	}
	sort.SliceStable(closest, func(i, j int) bool { return closest[i].sim > closest[j].sim })

	if limit < len(closest) {
		closest = closest[:limit]
	}
	names := make([]string, 0, len(closest))
	for _, c := range closest {
		names = append(names, c.name)
	}
	return names
}
