package resumecheck

import (
	"regexp"
	"sort"
	"strings"
)

var (
	rolePattern  = regexp.MustCompile(`(?i)\b(Developer|Engineer|Manager|Tutor|Designer|Analyst)\b`)
	skillPattern = regexp.MustCompile(`(?i)\b(Python|Java|SQL|Teaching|Communication|Leadership|Information Technology)\b`)
)

// KeywordSet is a set of lowercase, trimmed tokens.
type KeywordSet map[string]struct{}

// NewKeywordSet normalizes tokens into a set, dropping empty ones.
func NewKeywordSet(tokens ...string) KeywordSet {
	set := make(KeywordSet, len(tokens))
	for _, tok := range tokens {
		if n := normalizeToken(tok); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Has reports whether tok is in the set after normalization.
func (s KeywordSet) Has(tok string) bool {
	_, ok := s[normalizeToken(tok)]
	return ok
}

// Intersects reports whether the sets share any token.
func (s KeywordSet) Intersects(other KeywordSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for tok := range small {
		if _, ok := large[tok]; ok {
			return true
		}
	}
	return false
}

// Sorted returns the tokens in lexical order.
func (s KeywordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// ExtractKeywords scans text for role titles and skill terms.
func ExtractKeywords(text string) KeywordSet {
	var tokens []string
	tokens = append(tokens, rolePattern.FindAllString(text, -1)...)
	tokens = append(tokens, skillPattern.FindAllString(text, -1)...)
	return NewKeywordSet(tokens...)
}

func normalizeToken(tok string) string {
	return strings.ToLower(strings.Join(strings.Fields(tok), " "))
}
