// Package identerrors provides structured outcome types for the identcase library.
//
// Import path: github.com/erraggy/identcase/identerrors
//
// Every outcome that a conversion can report to its caller is an error value that
// works with [errors.Is] and [errors.As]. None of them are fatal: the caller decides
// whether to show a message, skip an edit, or stop.
//
// # Outcome Types
//
//   - [InputError]: the selection or source text is empty
//   - [IdentifierError]: the text does not have the shape of an identifier
//   - [NoOpError]: the conversion produced the original text
//   - [NoCandidatesError]: a bulk scan found no identifier-shaped tokens
//   - [EditError]: an edit list cannot be applied to a text
//   - [ConfigError]: invalid configuration or option values
//
// # Sentinel Errors
//
//   - [ErrNoInput]: matches any [InputError]
//   - [ErrInvalidIdentifier]: matches any [IdentifierError]
//   - [ErrNoOp]: matches any [NoOpError]
//   - [ErrNoCandidates]: matches any [NoCandidatesError]
//   - [ErrInvalidEdit]: matches any [EditError]
//   - [ErrConfig]: matches any [ConfigError]
//
// # Usage Examples
//
// Tell a no-op apart from a failure:
//
//	res, err := converter.ConvertWithOptions(
//	    converter.WithIdentifier(name),
//	    converter.WithConvention(convention.SnakeCase),
//	)
//	switch {
//	case errors.Is(err, identerrors.ErrNoOp):
//	    // nothing to edit
//	case err != nil:
//	    return err
//	}
//
// Extract details:
//
//	var idErr *identerrors.IdentifierError
//	if errors.As(err, &idErr) {
//	    fmt.Printf("selection %d is not an identifier: %q\n", idErr.Index, idErr.Text)
//	}
//
// # Hints
//
// The New* constructors attach a user-facing hint with github.com/cockroachdb/errors.
// [Hint] returns the flattened hint text for display.
package identerrors
