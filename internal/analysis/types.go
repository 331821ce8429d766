// Package analysis turns the extracted plain text of a research paper into a
// structured summary: named sections, ranked candidate algorithm blocks with
// confidence scores, a best-guess title, frequent keywords, and a coarse
// topical classification.
//
// Everything in this package is a deterministic, best-effort heuristic over
// in-memory strings. There is no I/O, no randomness, and no shared mutable
// state; a single process may run many analyses concurrently as long as each
// call owns its input.
package analysis

import "encoding/json"

// BlockType distinguishes how a candidate block was found.
type BlockType string

const (
	// BlockAlgorithm marks a sentence window scored by the algorithm-vocabulary pass.
	BlockAlgorithm BlockType = "algorithm"
	// BlockPseudocode marks a paragraph scored by the code-shape pass.
	BlockPseudocode BlockType = "pseudocode"
)

// AlgorithmBlock is a contiguous span of text believed to describe an
// algorithm or contain code-like structure. Blocks are ranked and truncated
// at creation time and never mutated afterwards.
type AlgorithmBlock struct {
	Type       BlockType `json:"type"`
	Content    string    `json:"content"`
	Position   int       `json:"position"`
	Confidence float64   `json:"confidence"`
	Keywords   []string  `json:"keywords,omitempty"`
}

// Classification is a coarse topical label assigned by keyword co-occurrence
// counting across a fixed set of categories. Confidence is "high" when at
// least one algorithm block was found, "medium" otherwise; it is not a
// calibrated probability.
type Classification struct {
	PrimaryType string         `json:"primary_type"`
	Scores      map[string]int `json:"scores"`
	Confidence  string         `json:"confidence"`
}

// Metrics is a derived read-only summary computed from the other analysis
// fields. It is never an independent source of truth.
type Metrics struct {
	SectionCount     int     `json:"section_count"`
	BlockCount       int     `json:"block_count"`
	HasAbstract      bool    `json:"has_abstract"`
	HasConclusion    bool    `json:"has_conclusion"`
	AvgConfidence    float64 `json:"avg_confidence"`
	AlgorithmSection string  `json:"algorithm_section,omitempty"`
}

// PaperAnalysis is the aggregate result of one analysis run. It is produced
// by exactly one assembly step and is never partially constructed.
type PaperAnalysis struct {
	Title           string            `json:"title"`
	Sections        map[string]string `json:"sections"`
	AlgorithmBlocks []AlgorithmBlock  `json:"algorithm_blocks"`
	Keywords        []string          `json:"keywords"`
	Classification  Classification    `json:"classification"`
	Metrics         Metrics           `json:"metrics"`
}

// String returns a JSON representation of the analysis for debugging.
func (a *PaperAnalysis) String() string {
	b, _ := json.MarshalIndent(a, "", "  ")
	return string(b)
}
