package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/identcase/fixer"
	"github.com/erraggy/identcase/identerrors"
)

type formatAllInput struct {
	Document    documentInput `json:"document"                jsonschema:"The document to format"`
	Convention  string        `json:"convention,omitempty"    jsonschema:"Target convention (aliases accepted). Defaults from language or server config."`
	Language    string        `json:"language,omitempty"      jsonschema:"Language used to pick a convention when convention is omitted"`
	DryRun      bool          `json:"dry_run,omitempty"       jsonschema:"Report edits without writing output"`
	IncludeText bool          `json:"include_text,omitempty"  jsonschema:"Include the rewritten document in output"`
	Output      string        `json:"output,omitempty"        jsonschema:"File path to write the rewritten document"`
	Offset      int           `json:"offset,omitempty"        jsonschema:"Skip the first N edits (for pagination)"`
	Limit       int           `json:"limit,omitempty"         jsonschema:"Maximum number of edits to return (default 100)"`
}

type selectionInput struct {
	Start int `json:"start" jsonschema:"Byte offset where the selection begins"`
	End   int `json:"end"   jsonschema:"Byte offset just past the selection"`
}

type formatSelectionsInput struct {
	Document    documentInput    `json:"document"                jsonschema:"The document containing the selections"`
	Selections  []selectionInput `json:"selections"              jsonschema:"Byte ranges to convert"`
	Convention  string           `json:"convention,omitempty"    jsonschema:"Target convention (aliases accepted). Defaults from language or server config."`
	Language    string           `json:"language,omitempty"      jsonschema:"Language used to pick a convention when convention is omitted"`
	DryRun      bool             `json:"dry_run,omitempty"       jsonschema:"Report edits without writing output"`
	IncludeText bool             `json:"include_text,omitempty"  jsonschema:"Include the rewritten document in output"`
	Output      string           `json:"output,omitempty"        jsonschema:"File path to write the rewritten document"`
	Offset      int              `json:"offset,omitempty"        jsonschema:"Skip the first N edits (for pagination)"`
	Limit       int              `json:"limit,omitempty"         jsonschema:"Maximum number of edits to return (default 100)"`
}

type formatEdit struct {
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
}

type formatIssue struct {
	Index    int    `json:"index"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Text     string `json:"text,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Hint     string `json:"hint,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type formatOutput struct {
	Convention   string        `json:"convention"`
	Candidates   int           `json:"candidates"`
	Skipped      int           `json:"skipped,omitempty"`
	ChangedCount int           `json:"changed_count"`
	Returned     int           `json:"returned"`
	Edits        []formatEdit  `json:"edits,omitempty"`
	IssueCount   int           `json:"issue_count,omitempty"`
	Issues       []formatIssue `json:"issues,omitempty"`
	Message      string        `json:"message,omitempty"`
	WrittenTo    string        `json:"written_to,omitempty"`
	Text         string        `json:"text,omitempty"`
}

// outputOptions controls what happens with the rewritten document.
type outputOptions struct {
	dryRun      bool
	includeText bool
	output      string
	offset      int
	limit       int
}

func handleFormatAll(_ context.Context, _ *mcp.CallToolRequest, input formatAllInput) (*mcp.CallToolResult, formatOutput, error) {
	target, err := resolveConvention(input.Convention, input.Language)
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}
	text, source, err := input.Document.resolve()
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}

	f := newFixer(source)
	result, err := f.FormatAll(text, target)
	var message string
	switch {
	case errors.Is(err, identerrors.ErrNoCandidates):
		message = err.Error()
	case err != nil:
		return errResult(err), formatOutput{}, nil
	}

	return buildFormatOutput(result, message, outputOptions{
		dryRun:      input.DryRun,
		includeText: input.IncludeText,
		output:      input.Output,
		offset:      input.Offset,
		limit:       input.Limit,
	})
}

func handleFormatSelections(_ context.Context, _ *mcp.CallToolRequest, input formatSelectionsInput) (*mcp.CallToolResult, formatOutput, error) {
	target, err := resolveConvention(input.Convention, input.Language)
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}
	text, source, err := input.Document.resolve()
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}

	selections := make([]fixer.Selection, len(input.Selections))
	for i, s := range input.Selections {
		selections[i] = fixer.Selection{Start: s.Start, End: s.End}
	}

	f := newFixer(source)
	result, err := f.FormatSelections(text, selections, target)
	var message string
	switch {
	case identerrors.IsOutcome(err):
		message = err.Error()
	case err != nil:
		return errResult(err), formatOutput{}, nil
	}

	return buildFormatOutput(result, message, outputOptions{
		dryRun:      input.DryRun,
		includeText: input.IncludeText,
		output:      input.Output,
		offset:      input.Offset,
		limit:       input.Limit,
	})
}

func newFixer(source string) *fixer.Fixer {
	f := fixer.New()
	f.Reserved = cfg.Reserved
	f.Concurrency = cfg.Concurrency
	f.Source = source
	f.Logger = cfg.Logger
	return f
}

func buildFormatOutput(result *fixer.FixResult, message string, opts outputOptions) (*mcp.CallToolResult, formatOutput, error) {
	output := formatOutput{
		Convention:   result.Convention.String(),
		Candidates:   result.Candidates,
		Skipped:      result.Skipped,
		ChangedCount: result.ChangedCount,
		IssueCount:   len(result.Issues),
		Message:      message,
	}

	output.Edits = makeSlice[formatEdit](len(result.Edits))
	for _, e := range result.Edits {
		output.Edits = append(output.Edits, formatEdit{
			Start:       e.Start,
			End:         e.End,
			Original:    e.Original,
			Replacement: e.Replacement,
		})
	}
	output.Edits = paginate(output.Edits, opts.offset, opts.limit)
	output.Returned = len(output.Edits)

	output.Issues = makeSlice[formatIssue](len(result.Issues))
	for _, is := range result.Issues {
		output.Issues = append(output.Issues, formatIssue{
			Index:    is.Index,
			Start:    is.Start,
			End:      is.End,
			Text:     is.Text,
			Severity: is.Severity.String(),
			Message:  is.Message,
			Hint:     is.Hint,
			Line:     is.Line,
			Column:   is.Column,
		})
	}

	if !opts.dryRun && result.HasChanges() {
		if opts.output != "" {
			if err := os.WriteFile(opts.output, []byte(result.Text), 0o644); err != nil {
				return errResult(fmt.Errorf("failed to write output file: %w", err)), formatOutput{}, nil
			}
			output.WrittenTo = opts.output
		}
		if opts.includeText {
			output.Text = result.Text
		}
	}

	return nil, output, nil
}
