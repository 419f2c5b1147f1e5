package skill

import (
	"strings"
	"unicode"
)

// stopwords are dropped during tokenization. Fixed; not configurable.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "to": {}, "and": {}, "or": {}, "for": {},
	"into": {}, "with": {}, "when": {}, "of": {}, "use": {}, "be": {},
	"is": {}, "are": {}, "on": {}, "in": {}, "at": {}, "this": {}, "that": {},
}

// Tokenize lowercases text, splits on any run of non-alphanumeric runes,
// and drops empty fragments and stopwords. Order follows the input and
// duplicates are kept; callers needing set semantics dedupe themselves.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, w := range fields {
		if _, skip := stopwords[w]; skip {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
