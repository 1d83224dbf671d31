// Package converter converts a single identifier to a naming convention.
//
// Conversion is tokenize-then-render: the identifier is split into lowercase
// words by the tokenizer package, then joined by the convention package.
//
// # Quick Start
//
// For plain string conversion with no validation:
//
//	converter.Convert("XMLHttpRequest", convention.SnakeCase) // "xml_http_request"
//
// Use functional options for validation, language defaults and logging:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithIdentifier("myVariable"),
//		converter.WithConvention(convention.PascalCase),
//	)
//	switch {
//	case identerrors.IsOutcome(err):
//		fmt.Println("already formatted")
//	case err != nil:
//		log.Fatal(err)
//	default:
//		fmt.Println(result.Converted) // "MyVariable"
//	}
//
// Or use a reusable Converter instance:
//
//	c := converter.New()
//	c.Convention = convention.SnakeCase
//	r1, _ := c.Convert("userName")
//	r2, _ := c.Convert("HTTPStatus")
//
// # Outcomes
//
// Input is validated before any transformation. Blank input yields an error
// matching identerrors.ErrNoInput and malformed input an error matching
// identerrors.ErrInvalidIdentifier; in both cases no result is returned.
//
// When the converted text equals the input the call returns the result together
// with an error matching identerrors.ErrNoOp. That error is an outcome, not a
// failure: callers skip the edit and may report "already in <convention> format".
//
// # Language Defaults
//
// When no convention is given, [WithLanguage] picks one from a
// [convention.LanguageTable] (python → snake_case, csharp → PascalCase, ...).
// Without either, camelCase is used.
//
// # Preview
//
// [Preview] renders an identifier under every convention at once, flagging
// which renderings differ from the input.
package converter
