package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/identcase/convention"
	"github.com/erraggy/identcase/identerrors"
)

// clearIdentcaseEnv clears all IDENTCASE_* env vars to isolate tests from the ambient environment.
func clearIdentcaseEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, EnvPrefix) {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("convention", "c", "", "")
	fs.StringP("language", "l", "", "")
	fs.StringP("format", "f", "text", "")
	fs.String("log-level", "warn", "")
	fs.Int("concurrency", 1, "")
	fs.BoolP("write", "w", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	clearIdentcaseEnv(t)

	cfg, err := Load(LoadOptions{Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, cfg.Convention)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Concurrency)
	assert.Equal(t, DefaultEditLimit, cfg.MCP.EditLimit)
	assert.Equal(t, DefaultMaxLimit, cfg.MCP.MaxLimit)
	assert.Equal(t, DefaultMaxInputSize, cfg.MCP.MaxInputSize)
	assert.Empty(t, cfg.File)
	assert.Equal(t, "defaults", cfg.String())

	target, err := cfg.Target()
	require.NoError(t, err)
	assert.Equal(t, convention.CamelCase, target)
}

func TestLoad_File(t *testing.T) {
	clearIdentcaseEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, ".identcase.yaml", `
convention: snake
format: json
concurrency: 4
languages:
  go: PascalCase
reserved:
  add: [myKeyword]
  remove: [console]
mcp:
  edit_limit: 10
`)

	cfg, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "snake", cfg.Convention)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 10, cfg.MCP.EditLimit)
	assert.Equal(t, DefaultMaxLimit, cfg.MCP.MaxLimit)

	target, err := cfg.Target()
	require.NoError(t, err)
	assert.Equal(t, convention.SnakeCase, target)

	table, err := cfg.LanguageTable()
	require.NoError(t, err)
	assert.Equal(t, convention.PascalCase, table.Lookup("go", convention.CamelCase))
	assert.Equal(t, convention.SnakeCase, table.Lookup("python", convention.CamelCase))

	set := cfg.ReservedSet()
	assert.True(t, set.Contains("mykeyword"))
	assert.False(t, set.Contains("console"))
	assert.True(t, set.Contains("function"))
}

func TestLoad_SearchesUpward(t *testing.T) {
	clearIdentcaseEnv(t)
	root := t.TempDir()
	writeFile(t, root, ".identcase.yml", "language: python\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(LoadOptions{Dir: nested})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".identcase.yml"), cfg.File)

	target, err := cfg.Target()
	require.NoError(t, err)
	assert.Equal(t, convention.SnakeCase, target)
}

func TestLoad_NoSearch(t *testing.T) {
	clearIdentcaseEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".identcase.yaml", "format: yaml\n")

	cfg, err := Load(LoadOptions{Dir: dir, NoSearch: true})
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoad_Precedence(t *testing.T) {
	clearIdentcaseEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "convention: kebab\nformat: yaml\nlog_level: info\n")

	t.Setenv("IDENTCASE_CONVENTION", "pascal")
	t.Setenv("IDENTCASE_LOG_LEVEL", "debug")
	t.Setenv("IDENTCASE_MCP__MAX_LIMIT", "50")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--convention", "screaming", "-w"}))

	cfg, err := Load(LoadOptions{File: path, Flags: flags})
	require.NoError(t, err)

	// flag beats env beats file
	assert.Equal(t, "screaming", cfg.Convention)
	// env beats file
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50, cfg.MCP.MaxLimit)
	// file beats defaults; unchanged --format flag does not override
	assert.Equal(t, FormatYAML, cfg.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		env    map[string]string
		option string
	}{
		{name: "bad convention", file: "convention: title\n", option: "convention"},
		{name: "bad format", file: "format: xml\n", option: "format"},
		{name: "bad log level", env: map[string]string{"IDENTCASE_LOG_LEVEL": "loud"}, option: "log_level"},
		{name: "bad concurrency", env: map[string]string{"IDENTCASE_CONCURRENCY": "0"}, option: "concurrency"},
		{name: "bad language entry", file: "languages:\n  go: upper\n", option: "languages.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearIdentcaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			dir := t.TempDir()
			if tt.file != "" {
				writeFile(t, dir, ".identcase.yaml", tt.file)
			}

			_, err := Load(LoadOptions{Dir: dir})
			require.Error(t, err)
			assert.True(t, errors.Is(err, identerrors.ErrConfig))

			var cfgErr *identerrors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.option, cfgErr.Option)
			assert.NotEmpty(t, identerrors.Hint(err))
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearIdentcaseEnv(t)
	_, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, identerrors.ErrConfig))
}

func TestConfig_SlogLevel(t *testing.T) {
	c := Default()
	c.LogLevel = "debug"
	assert.Equal(t, "DEBUG", c.SlogLevel().String())
	c.LogLevel = "bogus"
	assert.Equal(t, "WARN", c.SlogLevel().String())
}

func TestFindFile(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, FindFile(dir))

	// a directory with the config name is ignored
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".identcase.yaml"), 0o755))
	assert.Empty(t, FindFile(dir))

	path := writeFile(t, dir, ".identcase.yml", "format: json\n")
	assert.Equal(t, path, FindFile(dir))
}
