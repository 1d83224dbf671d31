// Package issues provides the per-position issue record reported by bulk formatting.
package issues

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/identcase/internal/severity"
)

// Issue represents a single problem found at a position in a document.
type Issue struct {
	// Index is the 1-based selection index, or 0 when the issue is not tied to a selection
	Index int `json:"index,omitempty" yaml:"index,omitempty"`
	// Start is the byte offset where the offending text begins
	Start int `json:"start" yaml:"start"`
	// End is the byte offset just past the offending text
	End int `json:"end" yaml:"end"`
	// Text is the offending text as it appeared in the document
	Text string `json:"text" yaml:"text"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Hint suggests how to fix the problem (optional)
	Hint string `json:"hint,omitempty" yaml:"hint,omitempty"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Line is the 1-based line number of Start (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Column is the 1-based column of Start, counted in runes (0 if unknown)
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
	// File is the source file path (empty for stdin or in-memory text)
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	var sb strings.Builder
	sb.WriteString(symbol)
	sb.WriteByte(' ')
	if i.Index > 0 {
		fmt.Fprintf(&sb, "selection %d ", i.Index)
	}
	fmt.Fprintf(&sb, "(%s): %s", i.Location(), i.Message)
	if i.Hint != "" {
		fmt.Fprintf(&sb, "\n    Hint: %s", i.Hint)
	}
	return sb.String()
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is set,
// or "start:end" byte offsets if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return fmt.Sprintf("%d:%d", i.Start, i.End)
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// Locate fills Line and Column from Start against text.
// Offsets outside text leave the issue unchanged.
func (i *Issue) Locate(text string) {
	line, col, ok := LineColumn(text, i.Start)
	if !ok {
		return
	}
	i.Line, i.Column = line, col
}

// LineColumn converts a byte offset in text to a 1-based line and rune column.
func LineColumn(text string, offset int) (line, column int, ok bool) {
	if offset < 0 || offset > len(text) {
		return 0, 0, false
	}
	before := text[:offset]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	column = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, column, true
}

// Count returns how many issues are at least as severe as min.
func Count(list []Issue, min severity.Severity) int {
	n := 0
	for _, i := range list {
		if i.Severity.AtLeast(min) {
			n++
		}
	}
	return n
}
