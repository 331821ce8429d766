package codegen

import (
	"strings"
	"testing"

	"github.com/itsmostafa/papersmith/internal/analysis"
)

func sampleAnalysis(blockCount int) *analysis.PaperAnalysis {
	blocks := make([]analysis.AlgorithmBlock, blockCount)
	for i := range blocks {
		blocks[i] = analysis.AlgorithmBlock{
			Type:       analysis.BlockAlgorithm,
			Content:    "the algorithm iterates over the heap",
			Position:   i,
			Confidence: 0.9 - float64(i)*0.05,
		}
	}
	return &analysis.PaperAnalysis{
		Title:           "Efficient Heap Construction",
		Sections:        map[string]string{"abstract": "text"},
		AlgorithmBlocks: blocks,
		Keywords:        []string{"heap", "construction"},
		Classification:  analysis.Classification{PrimaryType: "algorithm", Confidence: "high"},
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Run("includes analysis view", func(t *testing.T) {
		got := BuildPrompt(sampleAnalysis(2), "Go")
		for _, want := range []string{
			"Efficient Heap Construction",
			"algorithm",
			"heap, construction",
			"Passage 1",
			"Passage 2",
			"Go",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("prompt missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("caps blocks at five", func(t *testing.T) {
		got := BuildPrompt(sampleAnalysis(8), "Python")
		if strings.Contains(got, "Passage 6") {
			t.Error("prompt includes more than five passages")
		}
		if !strings.Contains(got, "Passage 5") {
			t.Error("prompt dropped passage five")
		}
	})

	t.Run("defaults language to Python", func(t *testing.T) {
		got := BuildPrompt(sampleAnalysis(1), "")
		if !strings.Contains(got, "Python") {
			t.Error("expected Python default")
		}
	})

	t.Run("no blocks", func(t *testing.T) {
		got := BuildPrompt(sampleAnalysis(0), "Go")
		if !strings.Contains(got, "no algorithm passages") {
			t.Error("expected empty-blocks note")
		}
	})

	t.Run("truncates long block content", func(t *testing.T) {
		a := sampleAnalysis(1)
		a.AlgorithmBlocks[0].Content = strings.Repeat("x", 2000)
		got := BuildPrompt(a, "Go")
		if !strings.Contains(got, "[truncated]") {
			t.Error("expected truncation marker")
		}
	})
}

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			"fenced with language",
			"Here you go:\n```python\nprint('hi')\n```\nEnjoy!",
			"print('hi')",
		},
		{
			"fenced without language",
			"```\nx = 1\n```",
			"x = 1",
		},
		{
			"no fence returns whole response",
			"  def f(): pass  ",
			"def f(): pass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCode(tt.response); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileExtension(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"Python", ".py"},
		{"go", ".go"},
		{"Rust", ".rs"},
		{"brainfuck", ".txt"},
	}
	for _, tt := range tests {
		if got := FileExtension(tt.lang); got != tt.want {
			t.Errorf("FileExtension(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}
