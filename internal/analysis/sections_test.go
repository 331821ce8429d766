package analysis

import (
	"strings"
	"testing"
)

func TestSegmentSections(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		got := SegmentSections(NewRawDocument(""))
		if len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})

	t.Run("no header lines yields single unknown section", func(t *testing.T) {
		text := "this paper describes something.\nit keeps going.\nno headers anywhere."
		got := SegmentSections(NewRawDocument(text))
		if len(got) != 1 {
			t.Fatalf("expected 1 section, got %d: %v", len(got), got)
		}
		content, ok := got[SectionUnknown]
		if !ok {
			t.Fatal("expected unknown section")
		}
		if !strings.Contains(content, "no headers anywhere") {
			t.Errorf("unknown section missing document tail: %q", content)
		}
	})

	t.Run("numbered headers", func(t *testing.T) {
		text := "Some preamble text here.\n1. Introduction\nWe introduce the problem.\n2. Methodology\nWe solve it."
		got := SegmentSections(NewRawDocument(text))

		if got["introduction"] != "We introduce the problem." {
			t.Errorf("introduction = %q", got["introduction"])
		}
		if got["methodology"] != "We solve it." {
			t.Errorf("methodology = %q", got["methodology"])
		}
		if !strings.Contains(got[SectionUnknown], "preamble") {
			t.Errorf("unknown = %q", got[SectionUnknown])
		}
	})

	t.Run("upper-case header", func(t *testing.T) {
		text := "ABSTRACT\nshort summary of the work."
		got := SegmentSections(NewRawDocument(text))
		if got["abstract"] != "short summary of the work." {
			t.Errorf("abstract = %q", got["abstract"])
		}
	})

	t.Run("first line header means no unknown section", func(t *testing.T) {
		text := "1. Introduction\nbody text."
		got := SegmentSections(NewRawDocument(text))
		if _, ok := got[SectionUnknown]; ok {
			t.Error("unexpected unknown section")
		}
	})

	t.Run("duplicate header overwrites earlier content", func(t *testing.T) {
		text := "1. Introduction\nfirst version.\n2. Introduction\nsecond version."
		got := SegmentSections(NewRawDocument(text))
		if got["introduction"] != "second version." {
			t.Errorf("expected last occurrence to win, got %q", got["introduction"])
		}
	})

	t.Run("sentence mentioning a section name is not a header", func(t *testing.T) {
		text := "ABSTRACT\nthe introduction covers prior work in detail."
		got := SegmentSections(NewRawDocument(text))
		if _, ok := got["introduction"]; ok {
			t.Error("lowercase prose line should not open a section")
		}
	})
}

func TestMatchHeader(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantOK   bool
	}{
		{"numbered title case", "1. Introduction", "introduction", true},
		{"all caps", "ABSTRACT", "abstract", true},
		{"numbered with subsection", "3. Methodology", "methodology", true},
		{"title case without numeral", "Introduction", "", false},
		{"trailing period", "1. Introduction.", "", false},
		{"lowercase", "1. introduction", "", false},
		{"unknown term", "1. Zygomorphic Flowers", "", false},
		{"too long", "1. Introduction " + strings.Repeat("x", 100), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotOK := matchHeader(tt.line)
			if gotOK != tt.wantOK || gotName != tt.wantName {
				t.Errorf("matchHeader(%q) = (%q, %v), want (%q, %v)",
					tt.line, gotName, gotOK, tt.wantName, tt.wantOK)
			}
		})
	}
}
