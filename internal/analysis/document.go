package analysis

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// RawDocument is the ordered sequence of non-empty trimmed lines derived from
// the source text. Treat it as read-only once constructed.
type RawDocument struct {
	Text  string
	Lines []string
}

// NewRawDocument builds a RawDocument from pre-extracted plain text.
func NewRawDocument(text string) *RawDocument {
	return &RawDocument{
		Text:  text,
		Lines: SplitLines(text),
	}
}

// SplitLines returns the trimmed, non-empty lines of text in order.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// SplitSentences segments text into sentences using the UAX #29 boundary
// rules. Segmentation is a primitive here; the interesting heuristics live in
// the extractors built on top of it.
func SplitSentences(text string) []string {
	var out []string
	segs := sentences.FromString(text)
	for segs.Next() {
		s := strings.TrimSpace(segs.Value())
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

var paragraphSplit = regexp.MustCompile(`\n[ \t]*\n`)

// SplitParagraphs splits text on blank-line boundaries.
func SplitParagraphs(text string) []string {
	var out []string
	for _, p := range paragraphSplit.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitWords returns the alphabetic word tokens of text, in order. UAX #29
// emits whitespace and punctuation runs as tokens too, so anything that is
// not purely letters is dropped.
func splitWords(text string) []string {
	var out []string
	toks := words.FromString(text)
	for toks.Next() {
		tok := toks.Value()
		if isAlphabetic(tok) {
			out = append(out, tok)
		}
	}
	return out
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
