package validator

import (
	"regexp"
	"strings"

	"github.com/erraggy/identcase/identerrors"
)

// variableNamePattern is the full-match shape of a variable name.
var variableNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsValidVariableName reports whether the trimmed text is a valid variable name.
func IsValidVariableName(text string) bool {
	return variableNamePattern.MatchString(strings.TrimSpace(text))
}

// Validate returns nil when text is a valid variable name.
// Blank text yields an error matching identerrors.ErrNoInput; any other failure
// yields an error matching identerrors.ErrInvalidIdentifier.
func Validate(text string) error {
	return ValidateAt(text, 0, 0, 0)
}

// ValidateAt is Validate for text taken from a document, recording the 1-based
// selection index and byte offsets in the returned error.
func ValidateAt(text string, index, start, end int) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return identerrors.NewInputError("", index)
	}
	if !variableNamePattern.MatchString(trimmed) {
		return identerrors.NewIdentifierError(trimmed, index, start, end)
	}
	return nil
}
