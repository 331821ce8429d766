package codegen

import (
	"fmt"
	"strings"

	"github.com/itsmostafa/papersmith/internal/analysis"
)

const (
	// maxPromptBlocks bounds how many algorithm blocks go into the prompt.
	maxPromptBlocks = 5

	// maxBlockChars truncates each block's content inside the prompt.
	maxBlockChars = 600
)

// generatePrompt frames the truncated analysis view for the model.
const generatePrompt = `Implement the core algorithm of the research paper described below in %s.

Paper title: %s
Topic classification: %s
Keywords: %s

The following passages were identified as the most likely algorithm descriptions, ranked by confidence:

%s
Write a complete, runnable %s implementation of the algorithm. Prefer clarity over micro-optimization. Include a short usage example in a main entry point.`

// BuildPrompt serializes a truncated view of the analysis into the prompt
// for the code-generating model: title, primary classification, up to
// maxPromptBlocks blocks, and the keyword list.
func BuildPrompt(a *analysis.PaperAnalysis, language string) string {
	if language == "" {
		language = "Python"
	}

	blocks := a.AlgorithmBlocks
	if len(blocks) > maxPromptBlocks {
		blocks = blocks[:maxPromptBlocks]
	}

	var sb strings.Builder
	for i, b := range blocks {
		fmt.Fprintf(&sb, "--- Passage %d (%s, confidence %.2f) ---\n%s\n\n",
			i+1, b.Type, b.Confidence, truncate(b.Content, maxBlockChars))
	}
	if sb.Len() == 0 {
		sb.WriteString("(no algorithm passages were detected; implement the paper's method from the title and keywords)\n\n")
	}

	return fmt.Sprintf(generatePrompt,
		language,
		a.Title,
		a.Classification.PrimaryType,
		strings.Join(a.Keywords, ", "),
		sb.String(),
		language,
	)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "\n...[truncated]"
}
