package analysis

import (
	"sort"
	"strings"
)

const (
	maxKeywords    = 15
	minKeywordLen  = 4
	minOccurrences = 3
)

// ExtractKeywords returns the document's most frequent topical terms, at most
// maxKeywords of them. Tokens are lower-cased; terms of length three or less,
// stopwords, and terms seen fewer than minOccurrences times are dropped.
// Ordering is by descending frequency with the term itself as tie-breaker, so
// identical input always yields identical output.
func ExtractKeywords(text string) []string {
	counts := make(map[string]int)
	for _, tok := range splitWords(text) {
		term := strings.ToLower(tok)
		if len(term) < minKeywordLen {
			continue
		}
		if _, ok := stopwords[term]; ok {
			continue
		}
		counts[term]++
	}

	type entry struct {
		term  string
		count int
	}
	frequent := make([]entry, 0, len(counts))
	for term, count := range counts {
		if count >= minOccurrences {
			frequent = append(frequent, entry{term, count})
		}
	}

	sort.Slice(frequent, func(i, j int) bool {
		if frequent[i].count != frequent[j].count {
			return frequent[i].count > frequent[j].count
		}
		return frequent[i].term < frequent[j].term
	})

	if len(frequent) > maxKeywords {
		frequent = frequent[:maxKeywords]
	}
	out := make([]string, len(frequent))
	for i, e := range frequent {
		out[i] = e.term
	}
	return out
}
