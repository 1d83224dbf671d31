// Package fixer rewrites identifiers inside a document to a naming convention.
//
// The package works on plain text and byte offsets. It never parses source
// code: identifiers are found by pattern, and the caller receives both an edit
// list and the rewritten text.
//
// # Format All
//
// [FormatAll] scans a document for identifier-shaped tokens, skips reserved
// words (keywords such as function, class, return and common built-ins), and
// converts every remaining token:
//
//	result, err := fixer.FormatAll(src, convention.SnakeCase)
//	if errors.Is(err, identerrors.ErrNoCandidates) {
//		// nothing to rename
//	}
//	fmt.Printf("converted %d identifiers\n", result.ChangedCount)
//	os.WriteFile(path, []byte(result.Text), 0o644)
//
// Edits are listed in descending start-offset order, so applying them one by
// one from the front of the list never invalidates a later offset.
//
// # Format Selections
//
// [FormatSelections] converts caller-chosen ranges. Each selection is validated
// on its own; invalid ones are reported as issues by 1-based position while the
// valid ones are still converted. With exactly one selection the call behaves
// like converting a single identifier and returns validation failures as errors.
//
// # Applying Edits
//
// [ApplyEdits] applies an edit list to text as one unit. Edits that overlap,
// fall outside the text, or no longer match their original text are rejected
// with an error matching identerrors.ErrInvalidEdit and the text is not changed.
//
// # Options
//
//   - [WithReserved]: replace the reserved-word set
//   - [WithConcurrency]: convert candidates on several goroutines
//   - [WithSource]: name the document in errors and issues
//   - [WithLogger]: receive debug output
package fixer
