// Package pipeline sequences one papersmith run: extract the paper's text,
// analyze it, render the result, and optionally generate and persist an
// implementation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/itsmostafa/papersmith/internal/analysis"
	"github.com/itsmostafa/papersmith/internal/codegen"
	"github.com/itsmostafa/papersmith/internal/display"
	"github.com/itsmostafa/papersmith/internal/extract"
	"github.com/itsmostafa/papersmith/internal/report"
)

// Config holds one run's settings.
type Config struct {
	// PaperPath is the PDF or plain-text source file.
	PaperPath string

	// Language is the target implementation language for generation.
	Language string

	// OutputDir is the parent directory for run artifacts.
	OutputDir string

	// LayoutExtraction preserves physical layout during PDF extraction.
	LayoutExtraction bool

	// Generate enables the code-generation step.
	Generate bool

	// JSONOnly suppresses the rendered report and prints the analysis
	// JSON to Output instead.
	JSONOnly bool

	// Provider runs completions when Generate is set.
	Provider codegen.Provider

	// Output receives rendered results; defaults to stdout.
	Output io.Writer
}

// Run executes the pipeline.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	extractor := &extract.Extractor{Layout: cfg.LayoutExtraction}
	result, err := extractor.Extract(ctx, cfg.PaperPath)
	if err != nil {
		return fmt.Errorf("extracting paper text: %w", err)
	}

	a, err := analysis.Analyze(result.Text)
	switch {
	case errors.Is(err, analysis.ErrEmptyInput):
		// The analysis degrades to an empty record; keep going so the
		// operator still sees a report for the empty document.
		fmt.Fprintf(os.Stderr, "warning: %s contains no analyzable text\n", cfg.PaperPath)
	case err != nil:
		return fmt.Errorf("analyzing paper: %w", err)
	}

	if a.Title == analysis.TitleNotFound {
		if derived := extract.TitleFromFilename(cfg.PaperPath); derived != "" {
			a.Title = derived
		}
	}

	if cfg.JSONOnly {
		fmt.Fprintln(cfg.Output, a.String())
	} else {
		display.FormatAnalysis(cfg.Output, a, cfg.PaperPath)
	}

	if !cfg.Generate {
		return nil
	}
	if cfg.Provider == nil {
		return fmt.Errorf("code generation requested without a provider")
	}

	writer := &report.Writer{BaseDir: cfg.OutputDir}
	run, err := writer.NewRun(cfg.PaperPath)
	if err != nil {
		return err
	}
	if _, err := run.WriteAnalysis(a); err != nil {
		return err
	}

	prompt := codegen.BuildPrompt(a, cfg.Language)
	response, err := cfg.Provider.Complete(ctx, prompt)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	code := codegen.ExtractCode(response)
	codePath, err := run.WriteCode(code, codegen.FileExtension(cfg.Language))
	if err != nil {
		return err
	}

	fmt.Fprintf(cfg.Output, "\nGenerated %s implementation: %s\n", cfg.Language, codePath)
	fmt.Fprintf(cfg.Output, "Run artifacts: %s\n", run.Dir)
	return nil
}
