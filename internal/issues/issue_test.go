package issues

import (
	"testing"

	"github.com/erraggy/identcase/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string // Strings that must be present in output
		notContains []string // Strings that must NOT be present in output
	}{
		{
			name: "error severity with selection",
			issue: Issue{
				Index:    2,
				Start:    10,
				End:      16,
				Message:  `not a valid variable name: "1abc"`,
				Severity: severity.SeverityError,
			},
			contains:    []string{"✗", "selection 2", "(10:16)", "not a valid variable name"},
			notContains: []string{"Hint:"},
		},
		{
			name: "critical severity",
			issue: Issue{
				Message:  "no input",
				Severity: severity.SeverityCritical,
			},
			contains:    []string{"✗", "(0:0)", "no input"},
			notContains: []string{"selection"},
		},
		{
			name: "warning severity with hint",
			issue: Issue{
				Index:    1,
				Message:  "selection is empty",
				Hint:     "select an identifier before formatting",
				Severity: severity.SeverityWarning,
			},
			contains: []string{"⚠", "selection 1", "\n    Hint: select an identifier"},
		},
		{
			name: "info severity with location",
			issue: Issue{
				Message:  "already formatted",
				Severity: severity.SeverityInfo,
				Line:     3,
				Column:   7,
				File:     "app.js",
			},
			contains: []string{"ℹ", "(app.js:3:7)"},
		},
		{
			name: "unknown severity",
			issue: Issue{
				Message:  "odd",
				Severity: severity.Severity(99),
			},
			contains: []string{"?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.issue.String()
			for _, s := range tt.contains {
				assert.Contains(t, result, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, result, s)
			}
		})
	}
}

func TestIssueLocation(t *testing.T) {
	assert.Equal(t, "4:9", Issue{Start: 4, End: 9}.Location())
	assert.Equal(t, "2:5", Issue{Line: 2, Column: 5}.Location())
	assert.Equal(t, "a.ts:2:5", Issue{Line: 2, Column: 5, File: "a.ts"}.Location())
	assert.False(t, Issue{}.HasLocation())
	assert.True(t, Issue{Line: 1}.HasLocation())
}

func TestLineColumn(t *testing.T) {
	text := "const a = 1;\nlet ÜberName = 2;\n"

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
		wantOK   bool
	}{
		{name: "start of text", offset: 0, wantLine: 1, wantCol: 1, wantOK: true},
		{name: "first line", offset: 6, wantLine: 1, wantCol: 7, wantOK: true},
		{name: "start of second line", offset: 13, wantLine: 2, wantCol: 1, wantOK: true},
		// "let " is 4 bytes, "Ü" is 2 bytes
		{name: "after multibyte rune", offset: 13 + 4 + 2, wantLine: 2, wantCol: 6, wantOK: true},
		{name: "end of text", offset: len(text), wantLine: 3, wantCol: 1, wantOK: true},
		{name: "negative", offset: -1},
		{name: "past end", offset: len(text) + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col, ok := LineColumn(text, tt.offset)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestIssueLocate(t *testing.T) {
	i := Issue{Start: 4}
	i.Locate("ab\ncdef")
	assert.Equal(t, 2, i.Line)
	assert.Equal(t, 2, i.Column)

	out := Issue{Start: 100}
	out.Locate("short")
	assert.Zero(t, out.Line)
}

func TestCount(t *testing.T) {
	list := []Issue{
		{Severity: severity.SeverityError},
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityCritical},
		{Severity: severity.SeverityInfo},
	}
	assert.Equal(t, 2, Count(list, severity.SeverityError))
	assert.Equal(t, 3, Count(list, severity.SeverityWarning))
	assert.Equal(t, 4, Count(list, severity.SeverityInfo))
	assert.Zero(t, Count(nil, severity.SeverityInfo))
}
