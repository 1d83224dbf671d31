// Package validator checks whether text has the shape of a variable name.
//
// A valid variable name, after trimming surrounding whitespace, starts with an
// ASCII letter, '_' or '$' and continues with ASCII letters, digits, '_' or '$':
//
//	validator.IsValidVariableName("_abc$")  // true
//	validator.IsValidVariableName("123abc") // false
//	validator.IsValidVariableName("my-var") // false
//
// [Validate] reports the same check as an error suitable for callers that need
// to tell empty input apart from a malformed name:
//
//	if err := validator.Validate(text); err != nil {
//	    if errors.Is(err, identerrors.ErrNoInput) {
//	        // nothing selected
//	    }
//	    if errors.Is(err, identerrors.ErrInvalidIdentifier) {
//	        // not a valid variable name
//	    }
//	}
//
// Validation runs before any conversion. The conversion functions themselves
// never fail on well-formed input.
package validator
