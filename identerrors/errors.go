// Package identerrors provides structured outcome types for identcase.
package identerrors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNoInput indicates the selection or source text was empty.
	ErrNoInput = errors.New("no input")

	// ErrInvalidIdentifier indicates text that does not have the shape of an identifier.
	ErrInvalidIdentifier = errors.New("not a valid variable name")

	// ErrNoOp indicates the conversion result equals the original text.
	ErrNoOp = errors.New("no change")

	// ErrNoCandidates indicates a bulk scan found nothing to convert.
	ErrNoCandidates = errors.New("no identifiers found")

	// ErrInvalidEdit indicates an edit that falls outside the text or overlaps another edit.
	ErrInvalidEdit = errors.New("invalid edit")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// InputError reports an empty selection or source.
type InputError struct {
	// Source names where the text came from (file name, "stdin", "selection"); may be empty
	Source string
	// Index is the 1-based selection number in a multi-selection request (0 if not applicable)
	Index int
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "no input"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Index > 0 {
		msg += fmt.Sprintf(" (selection %d)", e.Index)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrNoInput
}

// IdentifierError reports text that fails the identifier-shape check.
type IdentifierError struct {
	// Text is the rejected text
	Text string
	// Index is the 1-based selection number in a multi-selection request (0 if not applicable)
	Index int
	// Start and End are byte offsets of the text in its document (both 0 if unknown)
	Start int
	End   int
}

// Error returns a human-readable error message.
func (e *IdentifierError) Error() string {
	msg := fmt.Sprintf("not a valid variable name: %q", e.Text)
	if e.Index > 0 {
		msg += fmt.Sprintf(" (selection %d)", e.Index)
	}
	if e.End > e.Start {
		msg += fmt.Sprintf(" at %d:%d", e.Start, e.End)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *IdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// NoOpError reports a conversion whose result equals its input.
// It is an outcome, not a failure.
type NoOpError struct {
	// Identifier is the unchanged text; empty when several selections were unchanged
	Identifier string
	Convention string
}

// Error returns a human-readable error message.
func (e *NoOpError) Error() string {
	if e.Identifier == "" {
		if e.Convention == "" {
			return "nothing to change"
		}
		return "all selections are already in " + e.Convention + " format"
	}
	if e.Convention == "" {
		return fmt.Sprintf("%q is unchanged", e.Identifier)
	}
	return fmt.Sprintf("%q is already in %s format", e.Identifier, e.Convention)
}

// Is reports whether target matches this error type.
func (e *NoOpError) Is(target error) bool {
	return target == ErrNoOp
}

// NoCandidatesError reports a bulk scan that found no identifier-shaped tokens.
type NoCandidatesError struct {
	// Source names the scanned document; may be empty
	Source string
}

// Error returns a human-readable error message.
func (e *NoCandidatesError) Error() string {
	if e.Source == "" {
		return "no identifiers found"
	}
	return "no identifiers found in " + e.Source
}

// Is reports whether target matches this error type.
func (e *NoCandidatesError) Is(target error) bool {
	return target == ErrNoCandidates
}

// EditError reports an edit list that cannot be applied.
type EditError struct {
	Start int
	End   int
	// Length is the length of the text the edit was applied to
	Length int
	// Message describes the problem
	Message string
}

// Error returns a human-readable error message.
func (e *EditError) Error() string {
	msg := fmt.Sprintf("invalid edit %d:%d", e.Start, e.End)
	if e.Length > 0 {
		msg += fmt.Sprintf(" (text length %d)", e.Length)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *EditError) Is(target error) bool {
	return target == ErrInvalidEdit
}

// ConfigError represents an invalid configuration or option value.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
