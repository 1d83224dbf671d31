package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/identcase/converter"
	"github.com/erraggy/identcase/identerrors"
	"github.com/erraggy/identcase/tokenizer"
)

type convertInput struct {
	Identifier string `json:"identifier"           jsonschema:"The identifier to convert"`
	Convention string `json:"convention,omitempty" jsonschema:"Target convention: camelCase, PascalCase, snake_case, kebab-case or SCREAMING_SNAKE_CASE (aliases accepted)"`
	Language   string `json:"language,omitempty"   jsonschema:"Language used to pick a convention when convention is omitted (e.g. python, csharp, css)"`
}

type convertOutput struct {
	Original   string   `json:"original"`
	Converted  string   `json:"converted"`
	Convention string   `json:"convention"`
	Words      []string `json:"words,omitempty"`
	Changed    bool     `json:"changed"`
	Message    string   `json:"message,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	target, err := resolveConvention(input.Convention, input.Language)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	cv := converter.New()
	cv.Convention = target
	cv.Logger = cfg.Logger
	result, err := cv.Convert(input.Identifier)
	if err != nil && !identerrors.IsOutcome(err) {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Original:   result.Original,
		Converted:  result.Converted,
		Convention: result.Convention.String(),
		Words:      result.Words,
		Changed:    result.Changed,
	}
	if err != nil {
		output.Message = err.Error()
	}
	return nil, output, nil
}

type tokenizeInput struct {
	Identifier string `json:"identifier" jsonschema:"The identifier to split into words"`
}

type tokenizeOutput struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}

func handleTokenize(_ context.Context, _ *mcp.CallToolRequest, input tokenizeInput) (*mcp.CallToolResult, tokenizeOutput, error) {
	words := tokenizer.Tokenize(input.Identifier)
	if words == nil {
		words = []string{}
	}
	return nil, tokenizeOutput{Words: words, Count: len(words)}, nil
}

type previewInput struct {
	Identifier string `json:"identifier" jsonschema:"The identifier to render under every convention"`
}

type previewEntry struct {
	Convention string `json:"convention"`
	Converted  string `json:"converted"`
	Changed    bool   `json:"changed"`
}

type previewOutput struct {
	Identifier  string         `json:"identifier"`
	Conventions []previewEntry `json:"conventions"`
}

func handlePreview(_ context.Context, _ *mcp.CallToolRequest, input previewInput) (*mcp.CallToolResult, previewOutput, error) {
	entries, err := converter.Preview(input.Identifier)
	if err != nil {
		return errResult(err), previewOutput{}, nil
	}

	output := previewOutput{
		Identifier:  input.Identifier,
		Conventions: make([]previewEntry, 0, len(entries)),
	}
	for _, e := range entries {
		output.Conventions = append(output.Conventions, previewEntry{
			Convention: e.Convention.String(),
			Converted:  e.Converted,
			Changed:    e.Changed,
		})
	}
	return nil, output, nil
}
