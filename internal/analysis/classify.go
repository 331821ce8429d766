package analysis

import (
	"sort"
	"strings"
)

// Classify assigns a coarse topical label by counting how many of each
// category's indicator terms occur in the concatenated section contents.
// The highest count wins; ties resolve to the earliest category in
// declaration order. Confidence is "high" when at least one algorithm block
// was found, "medium" otherwise. This is lexical co-occurrence, not a
// trained classifier.
func Classify(sections map[string]string, blocks []AlgorithmBlock) Classification {
	var combined strings.Builder
	for _, name := range sortedSectionNames(sections) {
		combined.WriteString(sections[name])
		combined.WriteString("\n")
	}
	lower := strings.ToLower(combined.String())

	scores := make(map[string]int, len(categories))
	primary := categories[0].name
	best := -1
	for _, cat := range categories {
		count := 0
		for _, term := range cat.terms {
			if strings.Contains(lower, term) {
				count++
			}
		}
		scores[cat.name] = count
		if count > best {
			best = count
			primary = cat.name
		}
	}

	confidence := "medium"
	if len(blocks) > 0 {
		confidence = "high"
	}

	return Classification{
		PrimaryType: primary,
		Scores:      scores,
		Confidence:  confidence,
	}
}

// sortedSectionNames keeps map traversal deterministic; scores are
// presence-based so order never changes them, but identical input must
// produce identical output all the way down.
func sortedSectionNames(sections map[string]string) []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
