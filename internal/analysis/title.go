package analysis

import (
	"regexp"
	"strings"
)

// TitleNotFound is the sentinel callers substitute when no strategy succeeds.
// The pipeline may still derive a better fallback from the source file name;
// that responsibility sits outside this package.
const TitleNotFound = "Unknown Paper"

// titleStrategy tries to recover the paper's title from the document lines.
// Strategies are ordered by precision; the first success wins.
type titleStrategy func(lines []string) (string, bool)

var titleStrategies = []titleStrategy{
	patternTitle,
	positionalTitle,
}

// ExtractTitle runs the fallback chain over the document's lines. The second
// return value is false when every strategy declined, in which case the
// caller owns the final fallback.
func ExtractTitle(doc *RawDocument) (string, bool) {
	if doc == nil || len(doc.Lines) == 0 {
		return "", false
	}
	for _, strategy := range titleStrategies {
		if title, ok := strategy(doc.Lines); ok {
			return title, true
		}
	}
	return "", false
}

var (
	pureNumeric     = regexp.MustCompile(`^[\d\s.,:;-]+$`)
	numberedItem    = regexp.MustCompile(`^\d+[.)]\s`)
	numeralPrefixed = regexp.MustCompile(`^\d`)
	authorPair      = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)
	leadingNumbers  = regexp.MustCompile(`^[\d\s.)\][(]+`)
	edgeNonWord     = regexp.MustCompile(`^\W+|\W+$`)
	multiSpace      = regexp.MustCompile(`\s+`)
)

// patternTitle is the strict strategy: scan the first 50 lines, reject
// front-matter noise, and accept only lines shaped like a real title.
func patternTitle(lines []string) (string, bool) {
	limit := min(len(lines), 50)
	for _, line := range lines[:limit] {
		if isBoilerplate(line) {
			continue
		}
		if len(line) < 8 || len(line) > 150 {
			continue
		}
		if pureNumeric.MatchString(line) {
			continue
		}
		if namesSection(line) {
			continue
		}
		if authorPair.MatchString(line) {
			continue
		}
		if isAllUpper(line) {
			continue
		}
		if n := len(strings.Fields(line)); n <= 2 || n >= 20 {
			continue
		}
		if numberedItem.MatchString(line) {
			continue
		}
		if refersToFloat(line, true) {
			continue
		}

		cleaned := cleanTitle(line)
		if len(cleaned) > 10 && len(strings.Fields(cleaned)) >= 3 {
			return cleaned, true
		}
	}
	return "", false
}

// positionalTitle is the relaxed fallback: skip the very first lines (often
// headers and stamps) and accept the first plausibly title-shaped line in the
// 5–30 window.
func positionalTitle(lines []string) (string, bool) {
	limit := min(len(lines), 30)
	for i := 5; i < limit; i++ {
		line := lines[i]
		if len(line) <= 15 || len(line) >= 120 {
			continue
		}
		if n := len(strings.Fields(line)); n < 4 || n > 15 {
			continue
		}
		if isBoilerplate(line) {
			continue
		}
		if numeralPrefixed.MatchString(line) {
			continue
		}
		if refersToFloat(line, false) {
			continue
		}
		return strings.TrimSpace(multiSpace.ReplaceAllString(line, " ")), true
	}
	return "", false
}

func isBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range boilerplateMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func namesSection(line string) bool {
	lower := strings.ToLower(line)
	for _, name := range sectionNames {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

// refersToFloat reports whether the line references a figure or table, or,
// when equations is set, an equation.
func refersToFloat(line string, equations bool) bool {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "figure") || strings.Contains(lower, "fig.") || strings.Contains(lower, "table") {
		return true
	}
	return equations && (strings.Contains(lower, "equation") || strings.Contains(lower, "eq."))
}

// cleanTitle normalizes an accepted candidate: strip leading numbering and
// brackets, collapse whitespace, and trim stray non-word characters from the
// edges.
func cleanTitle(line string) string {
	s := leadingNumbers.ReplaceAllString(line, "")
	s = multiSpace.ReplaceAllString(s, " ")
	s = edgeNonWord.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
