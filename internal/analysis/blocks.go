package analysis

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// maxBlocks caps the ranked result list.
	maxBlocks = 10

	// sentenceThreshold is the minimum algorithm confidence for a sentence
	// to seed a block; it doubles as the post-merge floor.
	sentenceThreshold = 0.3

	// paragraphThreshold is the minimum code confidence for a paragraph to
	// become a pseudocode block.
	paragraphThreshold = 0.4

	// Window around a triggering sentence: [i-2, i+5), clamped to bounds.
	windowBefore = 2
	windowAfter  = 5
)

// Signal weights for the algorithm confidence score.
const (
	weightAlgorithmTerm = 0.2
	weightCodeTerm      = 0.15
	weightMathTerm      = 0.1
	weightProcedural    = 0.1
	weightNumberedList  = 0.2
	weightFunctionCall  = 0.15
)

// Signal weights for the code confidence score.
const (
	weightIndentation = 0.3
	weightControlFlow = 0.15
	weightAssignment  = 0.2
	weightCallOrIndex = 0.2
	weightBeginEnd    = 0.3
)

var (
	numberedListPattern = regexp.MustCompile(`\d+[.)]\s`)
	functionCallPattern = regexp.MustCompile(`[a-zA-Z_][a-zA-Z0-9_]*\([^)]*\)`)
	arrayIndexPattern   = regexp.MustCompile(`[a-zA-Z_][a-zA-Z0-9_]*\[[^\]]*\]`)
	controlFlowPatterns = compileControlFlow()
)

func compileControlFlow() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(controlFlowTerms))
	for i, term := range controlFlowTerms {
		out[i] = regexp.MustCompile(`(?i)\b` + term + `\b`)
	}
	return out
}

// ExtractBlocks scans the text for spans that look like algorithm
// descriptions or pseudocode and returns at most maxBlocks of them, sorted
// by descending confidence. Ties keep original scan order.
//
// Two passes feed one result set: a sentence pass that scores each sentence
// and, on a hit, captures the surrounding window for context; and a
// paragraph pass that scores blank-line-delimited paragraphs for code shape.
// A document with no sentences produces an empty list.
func ExtractBlocks(text string) []AlgorithmBlock {
	var blocks []AlgorithmBlock

	sents := SplitSentences(text)
	for i, sent := range sents {
		score, matched := algorithmConfidence(sent)
		if score <= sentenceThreshold {
			continue
		}
		start := max(i-windowBefore, 0)
		end := min(i+windowAfter, len(sents))
		blocks = append(blocks, AlgorithmBlock{
			Type:       BlockAlgorithm,
			Content:    strings.Join(sents[start:end], " "),
			Position:   i,
			Confidence: score,
			Keywords:   matched,
		})
	}

	for i, para := range SplitParagraphs(text) {
		score := codeConfidence(para)
		if score <= paragraphThreshold {
			continue
		}
		blocks = append(blocks, AlgorithmBlock{
			Type:       BlockPseudocode,
			Content:    para,
			Position:   i,
			Confidence: score,
			Keywords:   matchedVocabulary(para),
		})
	}

	kept := blocks[:0]
	for _, b := range blocks {
		if b.Confidence > sentenceThreshold {
			kept = append(kept, b)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Confidence > kept[j].Confidence
	})

	if len(kept) > maxBlocks {
		kept = kept[:maxBlocks]
	}
	return kept
}

// algorithmConfidence scores a sentence as a capped sum of weighted signals
// and returns the deduplicated vocabulary terms that matched. Matches are
// case-insensitive substring tests, so short terms can over-match inside
// longer words; that imprecision is accepted.
func algorithmConfidence(sentence string) (float64, []string) {
	lower := strings.ToLower(sentence)
	score := 0.0
	var matched []string

	for _, term := range algorithmTerms {
		if strings.Contains(lower, term) {
			score += weightAlgorithmTerm
			matched = append(matched, term)
		}
	}
	for _, term := range codeIndicatorTerms {
		if strings.Contains(lower, term) {
			score += weightCodeTerm
			matched = append(matched, term)
		}
	}
	for _, term := range mathTerms {
		if strings.Contains(lower, term) {
			score += weightMathTerm
			matched = append(matched, term)
		}
	}
	for _, marker := range proceduralMarkers {
		if strings.Contains(lower, marker) {
			score += weightProcedural
		}
	}
	if numberedListPattern.MatchString(sentence) {
		score += weightNumberedList
	}
	if functionCallPattern.MatchString(sentence) {
		score += weightFunctionCall
	}

	return capScore(score), dedupe(matched)
}

// codeConfidence scores a paragraph for pseudocode shape: indentation,
// control-flow vocabulary, assignment symbols, call or index expressions,
// and begin/end framing.
func codeConfidence(paragraph string) float64 {
	score := 0.0

	lines := strings.Split(paragraph, "\n")
	indented := 0
	for _, line := range lines {
		if isIndented(line) {
			indented++
		}
	}
	if len(lines) > 0 && float64(indented) > 0.3*float64(len(lines)) {
		score += weightIndentation
	}

	for _, pat := range controlFlowPatterns {
		if pat.MatchString(paragraph) {
			score += weightControlFlow
		}
	}

	if strings.Contains(paragraph, ":=") || strings.Contains(paragraph, "=") || strings.Contains(paragraph, "←") {
		score += weightAssignment
	}
	if functionCallPattern.MatchString(paragraph) || arrayIndexPattern.MatchString(paragraph) {
		score += weightCallOrIndex
	}

	lower := strings.ToLower(paragraph)
	if strings.Contains(lower, "begin") && strings.Contains(lower, "end") {
		score += weightBeginEnd
	}

	return capScore(score)
}

// matchedVocabulary returns the union of algorithmic, code-indicator, and
// mathematical terms found in text.
func matchedVocabulary(text string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, list := range [][]string{algorithmTerms, codeIndicatorTerms, mathTerms} {
		for _, term := range list {
			if strings.Contains(lower, term) {
				matched = append(matched, term)
			}
		}
	}
	return dedupe(matched)
}

func isIndented(line string) bool {
	if strings.HasPrefix(line, "\t") {
		return true
	}
	ws := 0
	for _, r := range line {
		if r == ' ' || r == '\t' {
			ws++
			if ws >= 2 {
				return true
			}
			continue
		}
		break
	}
	return false
}

func capScore(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}

func dedupe(terms []string) []string {
	if len(terms) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(terms))
	out := terms[:0]
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
