package commands

import (
	"io"

	"github.com/erraggy/identcase/fixer"
	"github.com/erraggy/identcase/internal/config"
)

// printFixSummary writes issues and a one-line summary of result to w.
func printFixSummary(w io.Writer, result *fixer.FixResult, note string) {
	for _, issue := range result.Issues {
		Writef(w, "%s\n", issue.String())
	}
	if note != "" {
		Writef(w, "note: %s\n", note)
		return
	}
	Writef(w, "✓ Converted %d of %d identifier(s) to %s", result.ChangedCount, result.Candidates, result.Convention)
	if result.Skipped > 0 {
		Writef(w, " (%d reserved skipped)", result.Skipped)
	}
	if result.HasIssues() {
		Writef(w, ", %d selection(s) rejected", len(result.Issues))
	}
	Writef(w, "\n")
}

// printEdits renders the planned edits of a dry run.
func printEdits(w io.Writer, result *fixer.FixResult, format string) error {
	if format != config.FormatText {
		return OutputStructured(w, result.Edits, format)
	}
	if len(result.Edits) == 0 {
		Writef(w, "(no edits)\n")
		return nil
	}
	t := NewTable(w, "START", "END", "ORIGINAL", "REPLACEMENT")
	for _, e := range result.Edits {
		t.AppendRow([]any{e.Start, e.End, e.Original, e.Replacement})
	}
	t.Render()
	return nil
}
