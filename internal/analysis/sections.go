package analysis

import (
	"strings"
	"unicode"
)

// maxHeaderLen bounds how long a line may be and still count as a header.
const maxHeaderLen = 100

// SegmentSections partitions the document into named sections. It walks the
// lines in order, committing the accumulated buffer whenever a header line is
// detected and starting a new buffer under the matched name. Content before
// the first header lands under SectionUnknown.
//
// A later header with the same name overwrites the earlier section's content.
// Last occurrence wins; downstream consumers rely on that, so it is specified
// behavior rather than something to fix here.
//
// An empty document yields an empty map.
func SegmentSections(doc *RawDocument) map[string]string {
	sections := make(map[string]string)
	if doc == nil || len(doc.Lines) == 0 {
		return sections
	}

	current := SectionUnknown
	var buf []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		if content != "" {
			sections[current] = content
		}
		buf = buf[:0]
	}

	for _, line := range doc.Lines {
		if name, ok := matchHeader(line); ok {
			flush()
			current = name
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return sections
}

// matchHeader reports whether line is a section header and returns the
// canonical section name. A header must name a known section term (equality,
// prefix, or substring), stay under maxHeaderLen characters, and look like a
// header: entirely upper-case, or title-cased with a leading numeral, and in
// either case not end with a period.
func matchHeader(line string) (string, bool) {
	if len(line) >= maxHeaderLen {
		return "", false
	}
	if !looksLikeHeader(line) {
		return "", false
	}

	lower := strings.ToLower(line)
	for _, name := range sectionNames {
		if lower == name || strings.HasPrefix(lower, name) || strings.Contains(lower, name) {
			return name, true
		}
	}
	return "", false
}

func looksLikeHeader(line string) bool {
	if strings.HasSuffix(line, ".") {
		return false
	}
	if len(line) > 2 && isAllUpper(line) {
		return true
	}
	return startsWithDigit(line) && isTitleCased(line)
}

// isAllUpper reports whether every letter in s is upper-case. Lines without
// any letters do not qualify.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasLetter
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}

// isTitleCased reports whether every word that begins with a letter begins
// with an upper-case letter. Tokens like "3." or "3.2" are numbering, not
// words, and are skipped.
func isTitleCased(s string) bool {
	hasWord := false
	for _, field := range strings.Fields(s) {
		r := firstRune(field)
		if !unicode.IsLetter(r) {
			continue
		}
		hasWord = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasWord
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
