package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/identcase/identerrors"
	"github.com/erraggy/identcase/tokenizer"
	"github.com/erraggy/identcase/validator"
)

type validateInput struct {
	Text string `json:"text" jsonschema:"The text to check"`
}

type validateOutput struct {
	Valid   bool     `json:"valid"`
	Words   []string `json:"words,omitempty"`
	Message string   `json:"message,omitempty"`
	Hint    string   `json:"hint,omitempty"`
}

// handleValidate reports invalid text in the output rather than as a tool error.
func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	if err := validator.Validate(input.Text); err != nil {
		return nil, validateOutput{
			Message: err.Error(),
			Hint:    identerrors.Hint(err),
		}, nil
	}
	return nil, validateOutput{
		Valid: true,
		Words: tokenizer.Tokenize(input.Text),
	}, nil
}
