package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "hello world", "hello world"},
		{"windows line endings", "a\r\nb", "a\nb"},
		{"form feed becomes paragraph break", "page one\fpage two", "page one\n\npage two"},
		{"control characters dropped", "a\x01b\x02c", "abc"},
		{"private use area dropped", "ab", "ab"},
		{"replacement rune dropped", "a�b", "ab"},
		{"blank runs collapse", "a\n\n\n\nb", "a\n\nb"},
		{"surrounding whitespace trimmed", "\n\n  a  \n\n", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/papers/attention_is_all_you_need.pdf", "Attention Is All You Need"},
		{"fast-fourier-transform.txt", "Fast Fourier Transform"},
		{"paper.pdf", "Paper"},
		{"Already Titled.pdf", "Already Titled"},
	}

	for _, tt := range tests {
		if got := TitleFromFilename(tt.path); got != tt.want {
			t.Errorf("TitleFromFilename(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestExtract(t *testing.T) {
	t.Run("plain text passthrough", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "paper.txt")
		if err := os.WriteFile(path, []byte("some extracted\ftext"), 0644); err != nil {
			t.Fatal(err)
		}

		var e Extractor
		got, err := e.Extract(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(got.Text, "some extracted") {
			t.Errorf("text = %q", got.Text)
		}
		if strings.Contains(got.Text, "\f") {
			t.Error("form feed survived cleanup")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		var e Extractor
		if _, err := e.Extract(context.Background(), "paper.docx"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		var e Extractor
		if _, err := e.Extract(context.Background(), "nope.txt"); err == nil {
			t.Fatal("expected error")
		}
	})
}
