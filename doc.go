// Package identcase converts identifiers between naming conventions.
//
// identcase splits an identifier into words and renders the words under one of
// five conventions: camelCase, PascalCase, snake_case, kebab-case and
// SCREAMING_SNAKE_CASE. It can convert a single name, every identifier in a
// document, or a set of selected byte ranges.
//
// # Packages
//
//   - tokenizer: split identifiers into lowercase words
//   - convention: the five conventions, their renderers and the language table
//   - reserved: keywords and built-ins that bulk formatting leaves alone
//   - validator: the variable-name shape check
//   - converter: validate, tokenize and render one identifier
//   - fixer: bulk formatting of documents and selections as offset-ordered edits
//   - identerrors: outcome and error types with user-facing hints
//   - logging: the Logger interface with slog and zap adapters
//
// # Quick Start
//
// Convert one identifier:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithIdentifier("XMLHttpRequest"),
//		converter.WithConvention(convention.SnakeCase),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Converted) // xml_http_request
//
// Convert every identifier in a document:
//
//	result, err := fixer.FormatAll(source, convention.CamelCase)
//	if err != nil && !errors.Is(err, identerrors.ErrNoCandidates) {
//		log.Fatal(err)
//	}
//	fmt.Print(result.Text)
//
// # Outcomes
//
// Converting an identifier that is already in the target convention returns
// the result together with an error matching identerrors.ErrNoOp. Callers that
// only care about the converted text can test it with identerrors.IsOutcome.
//
// # Command Line and MCP
//
// The identcase command in cmd/identcase exposes the same operations as
// subcommands and runs an MCP server over stdio with "identcase mcp".
package identcase
