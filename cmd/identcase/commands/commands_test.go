package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
// Config files are ignored so the working tree does not leak into results.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	var in io.Reader = strings.NewReader(stdin)
	root.SetIn(in)
	root.SetArgs(append(args, "--no-config"))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"convert", "tokenize", "preview", "validate", "fix", "mcp", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommand_InvalidConfigFlag(t *testing.T) {
	_, _, err := execute(t, "", "convert", "user_name", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "identcase "))

	stdout, _, err = execute(t, "", "version", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Go Version:")
	assert.Contains(t, stdout, "Platform:")
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOut    string
		wantStderr string
		wantErr    bool
	}{
		{
			name:    "default camel",
			args:    []string{"convert", "user_name"},
			wantOut: "userName\n",
		},
		{
			name:    "several identifiers",
			args:    []string{"convert", "-c", "snake", "XMLHttpRequest", "HTML5Parser"},
			wantOut: "xml_http_request\nhtml_5_parser\n",
		},
		{
			name:    "language default",
			args:    []string{"convert", "-l", "css", "fontSize"},
			wantOut: "font-size\n",
		},
		{
			name:       "already converted",
			args:       []string{"convert", "-c", "camelCase", "userName"},
			wantOut:    "userName\n",
			wantStderr: `"userName" is already in camelCase format`,
		},
		{
			name:       "invalid identifier continues",
			args:       []string{"convert", "123abc", "user_name"},
			wantOut:    "userName\n",
			wantStderr: "Hint: identifiers start with a letter",
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, "", tt.args...)
			if tt.wantErr {
				require.ErrorIs(t, err, errReported)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOut, stdout)
			if tt.wantStderr != "" {
				assert.Contains(t, stderr, tt.wantStderr)
			}
		})
	}
}

func TestConvertCommand_JSON(t *testing.T) {
	stdout, _, err := execute(t, "", "convert", "-c", "pascal", "-f", "json", "user_id", "$bad name")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stdout, `"converted": "UserId"`)
	assert.Contains(t, stdout, `"error": "not a valid variable name: \"$bad name\""`)
}

func TestConvertCommand_UnknownConvention(t *testing.T) {
	_, _, err := execute(t, "", "convert", "-c", "hungarian", "userName")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "convention")
}

func TestTokenizeCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "tokenize", "XMLHttpRequest")
	require.NoError(t, err)
	assert.Contains(t, stdout, "IDENTIFIER")
	assert.Contains(t, stdout, "xml http request")

	stdout, _, err = execute(t, "", "tokenize", "-f", "yaml", "HTML5Parser")
	require.NoError(t, err)
	assert.Contains(t, stdout, "identifier: HTML5Parser")
	assert.Contains(t, stdout, "- \"5\"")
}

func TestPreviewCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "preview", "getHTTPResponse")
	require.NoError(t, err)
	for _, want := range []string{"getHttpResponse", "GetHttpResponse", "get_http_response", "get-http-response", "GET_HTTP_RESPONSE"} {
		assert.Contains(t, stdout, want)
	}

	_, _, err = execute(t, "", "preview", "not valid")
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "validate", "_abc$", "userName")
	require.NoError(t, err)
	assert.Equal(t, "✓ _abc$\n✓ userName\n", stdout)

	stdout, _, err = execute(t, "", "validate", "123abc")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stdout, "✗ 123abc")
	assert.Contains(t, stdout, "Hint:")
}
