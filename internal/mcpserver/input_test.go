package mcpserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/identcase/internal/config"
)

func TestDocumentInput_Content(t *testing.T) {
	withConfig(t, config.Default())

	text, source, err := documentInput{Content: "let a_b = 1"}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "let a_b = 1", text)
	assert.Empty(t, source)
}

func TestDocumentInput_File(t *testing.T) {
	withConfig(t, config.Default())

	path := filepath.Join(t.TempDir(), "app.js")
	require.NoError(t, os.WriteFile(path, []byte("var my_var;"), 0o600))

	text, source, err := documentInput{File: path}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "var my_var;", text)
	assert.Equal(t, path, source)
}

func TestDocumentInput_Errors(t *testing.T) {
	c := config.Default()
	c.MCP.MaxInputSize = 8
	withConfig(t, c)

	dir := t.TempDir()
	big := filepath.Join(dir, "big.js")
	require.NoError(t, os.WriteFile(big, []byte(strings.Repeat("x", 9)), 0o600))

	tests := []struct {
		name    string
		input   documentInput
		wantErr string
	}{
		{name: "neither", input: documentInput{}, wantErr: "exactly one of file or content"},
		{name: "both", input: documentInput{File: big, Content: "x"}, wantErr: "exactly one of file or content"},
		{name: "content too large", input: documentInput{Content: "123456789"}, wantErr: "exceeds maximum 8 bytes"},
		{name: "file too large", input: documentInput{File: big}, wantErr: "exceeds maximum 8 bytes"},
		{name: "missing file", input: documentInput{File: filepath.Join(dir, "nope.js")}, wantErr: "failed to read file"},
		{name: "directory", input: documentInput{File: dir}, wantErr: "is a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.input.resolve()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
