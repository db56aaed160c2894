package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// maxKeywords bounds the keyword list on an analysis.
const maxKeywords = 8

var nonWordRe = regexp.MustCompile(`\W+`)

// stopwords excluded from keyword extraction.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true, "was": true,
	"were": true, "and": true, "but": true, "or": true, "to": true, "in": true,
	"of": true, "i": true, "my": true, "me": true, "we": true, "our": true,
	"on": true, "at": true, "with": true, "for": true, "from": true, "by": true,
	"as": true, "it": true, "its": true, "this": true, "that": true,
	"they": true, "them": true, "their": true,
}

// ExtractKeywords returns the up-to-eight most frequent tokens in the text,
// lowercased, stopwords and short tokens excluded. Ties resolve in
// first-seen order so the result is deterministic.
func ExtractKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, token := range nonWordRe.Split(strings.ToLower(text), -1) {
		if len(token) <= 2 || stopwords[token] {
			continue
		}
		if _, ok := counts[token]; !ok {
			firstSeen[token] = order
			order++
		}
		counts[token]++
	}

	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return firstSeen[tokens[i]] < firstSeen[tokens[j]]
	})

	if len(tokens) > maxKeywords {
		tokens = tokens[:maxKeywords]
	}
	return tokens
}
