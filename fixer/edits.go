package fixer

import (
	"slices"
	"strings"

	"github.com/erraggy/identcase/identerrors"
)

// ApplyEdits applies edits to text as one unit and returns the new text.
// Edits may be given in any order. Out-of-range or overlapping edits, and edits
// whose Original no longer matches text, return an error matching
// identerrors.ErrInvalidEdit.
func ApplyEdits(text string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return text, nil
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int { return b.Start - a.Start })

	// validate everything before building output
	prevStart := len(text)
	for _, e := range sorted {
		if e.Start < 0 || e.End > len(text) || e.Start > e.End {
			return "", &identerrors.EditError{Start: e.Start, End: e.End, Length: len(text), Message: "out of range"}
		}
		if e.End > prevStart {
			return "", &identerrors.EditError{Start: e.Start, End: e.End, Length: len(text), Message: "overlaps another edit"}
		}
		if e.Original != "" && text[e.Start:e.End] != e.Original {
			return "", &identerrors.EditError{Start: e.Start, End: e.End, Length: len(text), Message: "text does not match original " + e.Original}
		}
		prevStart = e.Start
	}

	var sb strings.Builder
	sb.Grow(len(text))
	cursor := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		e := sorted[i]
		sb.WriteString(text[cursor:e.Start])
		sb.WriteString(e.Replacement)
		cursor = e.End
	}
	sb.WriteString(text[cursor:])
	return sb.String(), nil
}
