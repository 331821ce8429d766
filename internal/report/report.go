// Package report writes run artifacts to disk: the analysis JSON and, when
// code generation ran, the generated implementation.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/itsmostafa/papersmith/internal/analysis"
)

// Writer lays out one run directory per analyzed paper.
type Writer struct {
	// BaseDir is the parent directory for run directories.
	BaseDir string
}

// Run is a handle to one run's output directory.
type Run struct {
	// ID is the short random identifier suffixed to the directory name.
	ID string
	// Dir is the created run directory.
	Dir string
}

// NewRun creates `<BaseDir>/<paper>-<id>` and returns its handle. The paper
// name is derived from the source path; the id suffix keeps repeated runs on
// the same paper from colliding.
func (w *Writer) NewRun(source string) (*Run, error) {
	id := uuid.NewString()[:8]
	name := slug(source) + "-" + id
	dir := filepath.Join(w.BaseDir, name)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating run directory %s: %w", dir, err)
	}
	return &Run{ID: id, Dir: dir}, nil
}

// WriteAnalysis writes the analysis record as indented JSON.
func (r *Run) WriteAnalysis(a *analysis.PaperAnalysis) (string, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling analysis: %w", err)
	}

	path := filepath.Join(r.Dir, "analysis.json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// WriteCode writes the generated implementation with the language's
// file extension.
func (r *Run) WriteCode(code, ext string) (string, error) {
	path := filepath.Join(r.Dir, "main"+ext)
	if !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// slug reduces a source path to a directory-safe base name.
func slug(source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	base = strings.ToLower(base)

	var sb strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '-' || r == '_' || r == ' ' || r == '.':
			sb.WriteRune('-')
		}
	}
	out := strings.Trim(sb.String(), "-")
	if out == "" {
		out = "paper"
	}
	return out
}
