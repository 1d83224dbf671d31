// Package naming provides the case mapping primitives shared by the convention
// renderer and the tokenizer.
//
// Mapping goes through golang.org/x/text/cases with the undetermined language tag,
// so non-ASCII letters are lowered and raised with full Unicode case mappings
// rather than the simple per-rune tables.
//
// A cases.Caser keeps state between calls and must not be shared between
// goroutines, so every function here builds its own Caser.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
