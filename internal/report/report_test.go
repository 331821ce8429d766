package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itsmostafa/papersmith/internal/analysis"
)

func TestNewRun(t *testing.T) {
	w := &Writer{BaseDir: t.TempDir()}

	run, err := w.NewRun("/papers/Fast Paper_v2.pdf")
	if err != nil {
		t.Fatal(err)
	}
	base := filepath.Base(run.Dir)
	if !strings.HasPrefix(base, "fast-paper-v2-") {
		t.Errorf("dir = %q", base)
	}
	if info, err := os.Stat(run.Dir); err != nil || !info.IsDir() {
		t.Errorf("run directory missing: %v", err)
	}

	again, err := w.NewRun("/papers/Fast Paper_v2.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if again.Dir == run.Dir {
		t.Error("repeated runs should not collide")
	}
}

func TestWriteAnalysis(t *testing.T) {
	w := &Writer{BaseDir: t.TempDir()}
	run, err := w.NewRun("paper.txt")
	if err != nil {
		t.Fatal(err)
	}

	a := &analysis.PaperAnalysis{
		Title:    "A Title",
		Sections: map[string]string{"abstract": "body"},
		Classification: analysis.Classification{
			PrimaryType: "algorithm",
			Scores:      map[string]int{"algorithm": 1},
			Confidence:  "medium",
		},
	}

	path, err := run.WriteAnalysis(a)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded analysis.PaperAnalysis
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Title != "A Title" {
		t.Errorf("title = %q", decoded.Title)
	}
}

func TestWriteCode(t *testing.T) {
	w := &Writer{BaseDir: t.TempDir()}
	run, err := w.NewRun("paper.txt")
	if err != nil {
		t.Fatal(err)
	}

	path, err := run.WriteCode("print('hi')", ".py")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "main.py" {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "print('hi')\n" {
		t.Errorf("content = %q", data)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/a/b/Paper Title.pdf", "paper-title"},
		{"UPPER_case-name.txt", "upper-case-name"},
		{"???.pdf", "paper"},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
