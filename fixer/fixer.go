package fixer

import (
	"fmt"
	"slices"

	"github.com/erraggy/identcase/convention"
	"github.com/erraggy/identcase/converter"
	"github.com/erraggy/identcase/identerrors"
	"github.com/erraggy/identcase/internal/issues"
	"github.com/erraggy/identcase/internal/severity"
	"github.com/erraggy/identcase/logging"
	"github.com/erraggy/identcase/reserved"
	"github.com/erraggy/identcase/validator"
)

// Issue is a problem found at a position in the document.
type Issue = issues.Issue

// Edit replaces the byte range [Start, End) of a document.
type Edit struct {
	Start       int    `json:"start" yaml:"start"`
	End         int    `json:"end" yaml:"end"`
	Original    string `json:"original" yaml:"original"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// String returns a compact description of the edit.
func (e Edit) String() string {
	return fmt.Sprintf("%d:%d %s -> %s", e.Start, e.End, e.Original, e.Replacement)
}

// Selection is a caller-chosen byte range [Start, End) of a document.
type Selection struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// FixResult contains the outcome of a bulk formatting run.
type FixResult struct {
	// Source names the document, when known
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Convention is the target convention
	Convention convention.Convention `json:"convention" yaml:"convention"`
	// Candidates is the number of identifiers or selections considered
	Candidates int `json:"candidates" yaml:"candidates"`
	// Skipped is the number of reserved words left alone
	Skipped int `json:"skipped" yaml:"skipped"`
	// Edits lists the replacements in descending start order
	Edits []Edit `json:"edits" yaml:"edits"`
	// Issues lists rejected selections
	Issues []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
	// ChangedCount is the number of identifiers that were changed
	ChangedCount int `json:"changed_count" yaml:"changed_count"`
	// Text is the document with every edit applied
	Text string `json:"text" yaml:"text"`
}

// HasChanges returns true if at least one identifier was changed
func (r *FixResult) HasChanges() bool {
	return r.ChangedCount > 0
}

// HasIssues returns true if any selection was rejected
func (r *FixResult) HasIssues() bool {
	return len(r.Issues) > 0
}

// Fixer rewrites identifiers in documents.
type Fixer struct {
	// Reserved holds the words FormatAll never renames (nil uses the built-in set)
	Reserved *reserved.Set
	// Concurrency is the number of goroutines converting candidates (values below 2 run inline)
	Concurrency int
	// Source names the document in errors and issues
	Source string
	// Logger receives debug output (nil disables logging)
	Logger logging.Logger
}

// New creates a new Fixer instance with default settings
func New() *Fixer {
	return &Fixer{
		Reserved:    reserved.Default(),
		Concurrency: 1,
		Logger:      logging.NopLogger{},
	}
}

// FormatAll converts every non-reserved identifier in text to c.
// A document without candidates returns the unchanged text together with an
// error matching identerrors.ErrNoCandidates.
func FormatAll(text string, c convention.Convention, opts ...Option) (*FixResult, error) {
	f, err := newFromOptions(opts...)
	if err != nil {
		return nil, err
	}
	return f.FormatAll(text, c)
}

// FormatSelections converts the selected ranges of text to c.
func FormatSelections(text string, selections []Selection, c convention.Convention, opts ...Option) (*FixResult, error) {
	f, err := newFromOptions(opts...)
	if err != nil {
		return nil, err
	}
	return f.FormatSelections(text, selections, c)
}

// FormatAll converts every non-reserved identifier in text to c.
func (f *Fixer) FormatAll(text string, c convention.Convention) (*FixResult, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("fixer: unsupported convention %q", c)
	}
	log := logging.OrNop(f.Logger)

	set := f.Reserved
	if set == nil {
		set = reserved.Default()
	}

	matches := FindIdentifiers(text)
	candidates := make([]Match, 0, len(matches))
	for _, m := range matches {
		if set.Contains(m.Text) || !validator.IsValidVariableName(m.Text) {
			continue
		}
		candidates = append(candidates, m)
	}

	result := &FixResult{
		Source:     f.Source,
		Convention: c,
		Candidates: len(candidates),
		Skipped:    len(matches) - len(candidates),
		Text:       text,
	}

	if len(candidates) == 0 {
		log.Debug("no candidates", "source", f.Source, "matches", len(matches))
		return result, identerrors.NewNoCandidatesError(f.Source)
	}

	texts := make([]string, len(candidates))
	for i, m := range candidates {
		texts[i] = m.Text
	}
	converted, err := convertAll(texts, c, f.Concurrency)
	if err != nil {
		return nil, err
	}

	// back to front, so earlier offsets stay valid
	edits := make([]Edit, 0, len(candidates))
	for i := len(candidates) - 1; i >= 0; i-- {
		m := candidates[i]
		if converted[i] == m.Text {
			continue
		}
		edits = append(edits, Edit{
			Start:       m.Start,
			End:         m.End,
			Original:    m.Text,
			Replacement: converted[i],
		})
	}

	out, err := ApplyEdits(text, edits)
	if err != nil {
		return nil, err
	}

	result.Edits = edits
	result.ChangedCount = len(edits)
	result.Text = out

	log.Debug("formatted document",
		"source", f.Source,
		"convention", c.String(),
		"candidates", result.Candidates,
		"skipped", result.Skipped,
		"changed", result.ChangedCount,
	)
	return result, nil
}

// FormatSelections converts the selected ranges of text to c.
//
// Zero selections return an error matching identerrors.ErrNoInput. A single
// selection returns validation failures as errors and an unchanged selection as
// a result paired with an error matching identerrors.ErrNoOp. With several
// selections, invalid ones become issues and valid ones are still converted; a
// run that changes nothing and rejects nothing is reported as ErrNoOp.
func (f *Fixer) FormatSelections(text string, selections []Selection, c convention.Convention) (*FixResult, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("fixer: unsupported convention %q", c)
	}
	if len(selections) == 0 {
		return nil, identerrors.NewInputError(f.Source, 0)
	}
	log := logging.OrNop(f.Logger)
	single := len(selections) == 1

	result := &FixResult{
		Source:     f.Source,
		Convention: c,
		Candidates: len(selections),
	}

	edits := make([]Edit, 0, len(selections))
	for i, sel := range selections {
		index := i + 1
		if sel.Start < 0 || sel.End > len(text) || sel.Start > sel.End {
			err := &identerrors.EditError{Start: sel.Start, End: sel.End, Length: len(text), Message: "selection out of range"}
			if single {
				return nil, err
			}
			result.Issues = append(result.Issues, f.newIssue(text, index, sel, "", err, severity.SeverityCritical))
			continue
		}

		selected := text[sel.Start:sel.End]
		if err := validator.ValidateAt(selected, selectionIndex(single, index), sel.Start, sel.End); err != nil {
			if single {
				return nil, err
			}
			result.Issues = append(result.Issues, f.newIssue(text, index, sel, selected, err, severity.SeverityError))
			continue
		}

		converted := converter.Convert(selected, c)
		if converted == selected {
			continue
		}
		edits = append(edits, Edit{
			Start:       sel.Start,
			End:         sel.End,
			Original:    selected,
			Replacement: converted,
		})
	}

	slices.SortStableFunc(edits, func(a, b Edit) int { return b.Start - a.Start })

	out, err := ApplyEdits(text, edits)
	if err != nil {
		return nil, err
	}
	result.Edits = edits
	result.ChangedCount = len(edits)
	result.Text = out

	log.Debug("formatted selections",
		"source", f.Source,
		"convention", c.String(),
		"selections", len(selections),
		"changed", result.ChangedCount,
		"issues", len(result.Issues),
	)

	if result.ChangedCount == 0 && len(result.Issues) == 0 {
		identifier := ""
		if single {
			identifier = text[selections[0].Start:selections[0].End]
		}
		return result, identerrors.NewNoOpError(identifier, c.String())
	}
	return result, nil
}

func selectionIndex(single bool, index int) int {
	if single {
		return 0
	}
	return index
}

func (f *Fixer) newIssue(text string, index int, sel Selection, selected string, err error, sev severity.Severity) Issue {
	issue := Issue{
		Index:    index,
		Start:    sel.Start,
		End:      sel.End,
		Text:     selected,
		Message:  err.Error(),
		Hint:     identerrors.Hint(err),
		Severity: sev,
		File:     f.Source,
	}
	issue.Locate(text)
	return issue
}
