package search

import (
	"regexp"
	"strings"
)

var tokenRegex = regexp.MustCompile(`(?i)[A-Za-zÀ-ÿ0-9_]+`)

// English and French stopwords; the catalog carries both languages.
var stopWords = map[string]bool{
	"the": true, "and": true, "of": true, "in": true, "to": true,
	"for": true, "on": true, "with": true, "a": true, "an": true,
	"le": true, "la": true, "les": true, "et": true, "de": true,
	"du": true, "des": true, "un": true, "une": true, "au": true,
}

func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	matches := tokenRegex.FindAllString(text, -1)

	out := make([]string, 0, len(matches))
	seen := map[string]struct{}{}
	for _, m := range matches {
		t := strings.ToLower(m)
		if stopWords[t] || len(t) < 2 {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
