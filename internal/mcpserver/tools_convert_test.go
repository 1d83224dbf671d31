package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/identcase/internal/config"
)

func TestConvertTool(t *testing.T) {
	withConfig(t, config.Default())

	tests := []struct {
		name        string
		input       convertInput
		wantResult  string
		wantConv    string
		wantChanged bool
		wantMessage string
	}{
		{
			name:        "snake to camel by default",
			input:       convertInput{Identifier: "user_name"},
			wantResult:  "userName",
			wantConv:    "camelCase",
			wantChanged: true,
		},
		{
			name:        "explicit alias",
			input:       convertInput{Identifier: "XMLHttpRequest", Convention: "screaming"},
			wantResult:  "XML_HTTP_REQUEST",
			wantConv:    "SCREAMING_SNAKE_CASE",
			wantChanged: true,
		},
		{
			name:        "language default",
			input:       convertInput{Identifier: "userName", Language: "python"},
			wantResult:  "user_name",
			wantConv:    "snake_case",
			wantChanged: true,
		},
		{
			name:        "already converted",
			input:       convertInput{Identifier: "userName", Convention: "camelCase"},
			wantResult:  "userName",
			wantConv:    "camelCase",
			wantMessage: `"userName" is already in camelCase format`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantResult, output.Converted)
			assert.Equal(t, tt.wantConv, output.Convention)
			assert.Equal(t, tt.wantChanged, output.Changed)
			assert.Equal(t, tt.wantMessage, output.Message)
		})
	}
}

func TestConvertTool_Errors(t *testing.T) {
	withConfig(t, config.Default())

	tests := []struct {
		name  string
		input convertInput
	}{
		{name: "empty identifier", input: convertInput{Identifier: "  "}},
		{name: "invalid identifier", input: convertInput{Identifier: "user name"}},
		{name: "unknown convention", input: convertInput{Identifier: "userName", Convention: "hungarian"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestTokenizeTool(t *testing.T) {
	_, output, err := handleTokenize(context.Background(), &mcp.CallToolRequest{}, tokenizeInput{Identifier: "HTML5Parser"})
	require.NoError(t, err)
	assert.Equal(t, []string{"html", "5", "parser"}, output.Words)
	assert.Equal(t, 3, output.Count)
}

func TestTokenizeTool_Empty(t *testing.T) {
	_, output, err := handleTokenize(context.Background(), &mcp.CallToolRequest{}, tokenizeInput{Identifier: ""})
	require.NoError(t, err)
	assert.NotNil(t, output.Words)
	assert.Zero(t, output.Count)
}

func TestPreviewTool(t *testing.T) {
	result, output, err := handlePreview(context.Background(), &mcp.CallToolRequest{}, previewInput{Identifier: "user_name"})
	require.NoError(t, err)
	assert.Nil(t, result)
	require.Len(t, output.Conventions, 5)

	got := make(map[string]previewEntry, len(output.Conventions))
	for _, e := range output.Conventions {
		got[e.Convention] = e
	}
	assert.Equal(t, "userName", got["camelCase"].Converted)
	assert.Equal(t, "UserName", got["PascalCase"].Converted)
	assert.Equal(t, "user-name", got["kebab-case"].Converted)
	assert.Equal(t, "USER_NAME", got["SCREAMING_SNAKE_CASE"].Converted)
	assert.False(t, got["snake_case"].Changed)
	assert.True(t, got["camelCase"].Changed)
}

func TestPreviewTool_Invalid(t *testing.T) {
	result, _, err := handlePreview(context.Background(), &mcp.CallToolRequest{}, previewInput{Identifier: "9lives"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
