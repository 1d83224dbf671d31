package identerrors

import "github.com/cockroachdb/errors"

const identifierHint = "identifiers start with a letter, '_' or '$' and contain only letters, digits, '_' or '$'"

// NewInputError returns an [InputError] carrying a hint.
func NewInputError(source string, index int) error {
	return errors.WithHint(&InputError{Source: source, Index: index}, "select a variable name to format")
}

// NewIdentifierError returns an [IdentifierError] carrying a hint that describes
// the accepted identifier shape.
func NewIdentifierError(text string, index, start, end int) error {
	return errors.WithHint(&IdentifierError{Text: text, Index: index, Start: start, End: end}, identifierHint)
}

// NewNoOpError returns a [NoOpError].
func NewNoOpError(identifier, convention string) error {
	return &NoOpError{Identifier: identifier, Convention: convention}
}

// NewNoCandidatesError returns a [NoCandidatesError] carrying a hint.
func NewNoCandidatesError(source string) error {
	return errors.WithHint(&NoCandidatesError{Source: source}, "the document contains no identifier-shaped tokens outside the reserved-word list")
}

// IsOutcome reports whether err is an informational outcome rather than a failure.
// A nil error is not an outcome.
func IsOutcome(err error) bool {
	return errors.Is(err, ErrNoOp)
}

// Hint returns the user-facing hints attached to err, joined by newlines.
// It returns "" when err carries no hint.
func Hint(err error) string {
	if err == nil {
		return ""
	}
	return errors.FlattenHints(err)
}
