package codegen

import (
	"regexp"
	"strings"
)

var (
	fencedWithLang = regexp.MustCompile("(?s)```[a-zA-Z0-9+-]*\\s*\n(.+?)```")
	fencedPlain    = regexp.MustCompile("(?s)```\\s*(.+?)```")
)

// ExtractCode pulls the implementation out of a model response. Responses
// normally wrap code in a fenced block, possibly with a language tag; when
// no fence is present the whole trimmed response is assumed to be code.
func ExtractCode(response string) string {
	if m := fencedWithLang.FindStringSubmatch(response); len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	if m := fencedPlain.FindStringSubmatch(response); len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(response)
}

// FileExtension maps a target language name to a source file extension.
func FileExtension(language string) string {
	switch strings.ToLower(language) {
	case "python":
		return ".py"
	case "go", "golang":
		return ".go"
	case "rust":
		return ".rs"
	case "javascript":
		return ".js"
	case "typescript":
		return ".ts"
	case "java":
		return ".java"
	case "c":
		return ".c"
	case "c++", "cpp":
		return ".cpp"
	case "swift":
		return ".swift"
	default:
		return ".txt"
	}
}
