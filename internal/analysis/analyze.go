package analysis

import (
	"strings"
	"sync"
)

// Analyze runs the full pipeline over pre-extracted paper text and assembles
// the result into one PaperAnalysis.
//
// Sections, title, algorithm blocks, and keywords have no data dependency on
// each other and run concurrently; classification consumes sections and
// blocks, so it is sequenced after them. The whole pipeline is deterministic.
//
// Empty or whitespace-only input returns a degraded analysis together with
// ErrEmptyInput so the caller can log and keep going.
func Analyze(text string) (*PaperAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		empty := &PaperAnalysis{
			Title:    TitleNotFound,
			Sections: map[string]string{},
			Classification: Classification{
				PrimaryType: categories[0].name,
				Scores:      map[string]int{},
				Confidence:  "medium",
			},
		}
		return empty, ErrEmptyInput
	}

	doc := NewRawDocument(text)

	var (
		sections map[string]string
		title    string
		titleOK  bool
		blocks   []AlgorithmBlock
		keywords []string
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		sections = SegmentSections(doc)
	}()
	go func() {
		defer wg.Done()
		title, titleOK = ExtractTitle(doc)
	}()
	go func() {
		defer wg.Done()
		blocks = ExtractBlocks(text)
	}()
	go func() {
		defer wg.Done()
		keywords = ExtractKeywords(text)
	}()
	wg.Wait()

	if !titleOK {
		title = TitleNotFound
	}

	classification := Classify(sections, blocks)

	return Assemble(title, sections, blocks, keywords, classification)
}

// Assemble validates the component outputs and composes them, with derived
// metrics, into a complete PaperAnalysis. It fails only on structurally
// impossible input from upstream, never on heuristic misses.
func Assemble(title string, sections map[string]string, blocks []AlgorithmBlock, keywords []string, classification Classification) (*PaperAnalysis, error) {
	if sections == nil {
		return nil, &MalformedInputError{Field: "sections", Reason: "nil map"}
	}
	if classification.PrimaryType == "" {
		return nil, &MalformedInputError{Field: "classification", Reason: "missing primary type"}
	}
	for _, b := range blocks {
		if b.Confidence < 0 || b.Confidence > 1 {
			return nil, &MalformedInputError{Field: "algorithm blocks", Reason: "confidence outside [0,1]"}
		}
	}
	if title == "" {
		title = TitleNotFound
	}

	return &PaperAnalysis{
		Title:           title,
		Sections:        sections,
		AlgorithmBlocks: blocks,
		Keywords:        keywords,
		Classification:  classification,
		Metrics:         computeMetrics(sections, blocks),
	}, nil
}

// algorithmSectionOrder ranks section names by how likely they are to hold
// the paper's core algorithm description.
var algorithmSectionOrder = []string{
	"algorithm",
	"methodology",
	"method",
	"approach",
	"implementation",
}

func computeMetrics(sections map[string]string, blocks []AlgorithmBlock) Metrics {
	m := Metrics{
		SectionCount: len(sections),
		BlockCount:   len(blocks),
	}
	_, m.HasAbstract = sections["abstract"]
	_, m.HasConclusion = sections["conclusion"]

	if len(blocks) > 0 {
		sum := 0.0
		for _, b := range blocks {
			sum += b.Confidence
		}
		m.AvgConfidence = sum / float64(len(blocks))
	}

	for _, name := range algorithmSectionOrder {
		if _, ok := sections[name]; ok {
			m.AlgorithmSection = name
			break
		}
	}
	return m
}
