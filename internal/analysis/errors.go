package analysis

import (
	"errors"
	"fmt"
)

// ErrEmptyInput reports that the input text was empty or whitespace-only.
// Every extractor still degrades to empty/default output in that case; the
// error exists so callers can log and fall back to a degraded analysis.
var ErrEmptyInput = errors.New("input text is empty")

// MalformedInputError is returned by the assembler when an upstream
// collaborator hands it a structurally invalid partial result. Heuristic
// extraction never produces this; only broken plumbing does.
type MalformedInputError struct {
	Field  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed %s: %s", e.Field, e.Reason)
}
