// Package display renders analysis results for a human operator.
package display

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/papersmith/internal/analysis"
)

var (
	// titleStyle for the paper title
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// labelStyle for classification and section labels
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("215"))

	// confidenceHighStyle for strong signals
	confidenceHighStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	// confidenceLowStyle for weak signals
	confidenceLowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("178"))

	// headerBoxStyle frames the run header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	// summaryBoxStyle frames the closing statistics
	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

const previewLen = 160

// FormatHeader renders the analysis header box.
func FormatHeader(w io.Writer, a *analysis.PaperAnalysis, source string) {
	content := fmt.Sprintf("%s %s\n%s %s\n%s %s %s",
		dimStyle.Render("Paper:"), titleStyle.Render(a.Title),
		dimStyle.Render("Source:"), source,
		dimStyle.Render("Type:"), labelStyle.Render(a.Classification.PrimaryType),
		dimStyle.Render("("+a.Classification.Confidence+" confidence)"),
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatSections lists detected sections with their content sizes.
func FormatSections(w io.Writer, a *analysis.PaperAnalysis) {
	fmt.Fprintf(w, "\n%s\n", labelStyle.Render(fmt.Sprintf("Sections (%d)", len(a.Sections))))

	names := make([]string, 0, len(a.Sections))
	for name := range a.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s %s\n", name, dimStyle.Render(fmt.Sprintf("(%d chars)", len(a.Sections[name]))))
	}
}

// FormatBlocks previews the ranked algorithm blocks.
func FormatBlocks(w io.Writer, a *analysis.PaperAnalysis) {
	fmt.Fprintf(w, "\n%s\n", labelStyle.Render(fmt.Sprintf("Algorithm blocks (%d)", len(a.AlgorithmBlocks))))

	for i, b := range a.AlgorithmBlocks {
		conf := fmt.Sprintf("%.2f", b.Confidence)
		style := confidenceLowStyle
		if b.Confidence >= 0.6 {
			style = confidenceHighStyle
		}
		fmt.Fprintf(w, "  %d. [%s] %s\n     %s\n",
			i+1, b.Type, style.Render(conf), dimStyle.Render(preview(b.Content)))
	}
}

// FormatSummary renders the closing statistics box.
func FormatSummary(w io.Writer, a *analysis.PaperAnalysis) {
	line1 := fmt.Sprintf("%s %d  %s %d  %s %.2f",
		dimStyle.Render("Sections:"), a.Metrics.SectionCount,
		dimStyle.Render("Blocks:"), a.Metrics.BlockCount,
		dimStyle.Render("Avg confidence:"), a.Metrics.AvgConfidence,
	)
	line2 := fmt.Sprintf("%s %s", dimStyle.Render("Keywords:"), strings.Join(a.Keywords, ", "))
	if len(a.Keywords) == 0 {
		line2 = dimStyle.Render("Keywords: none")
	}
	if a.Metrics.AlgorithmSection != "" {
		line2 += fmt.Sprintf("\n%s %s", dimStyle.Render("Algorithm section:"), a.Metrics.AlgorithmSection)
	}
	fmt.Fprintln(w, summaryBoxStyle.Render(line1+"\n"+line2))
}

// FormatAnalysis renders the full analysis report.
func FormatAnalysis(w io.Writer, a *analysis.PaperAnalysis, source string) {
	FormatHeader(w, a, source)
	FormatSections(w, a)
	FormatBlocks(w, a)
	fmt.Fprintln(w)
	FormatSummary(w, a)
}

func preview(content string) string {
	flat := strings.Join(strings.Fields(content), " ")
	if len(flat) <= previewLen {
		return flat
	}
	return flat[:previewLen] + "..."
}
