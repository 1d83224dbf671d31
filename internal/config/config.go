// Package config loads identcase settings from defaults, a YAML file, IDENTCASE_*
// environment variables, and command-line flags, in increasing precedence.
package config

import (
	"log/slog"
	"strings"

	"github.com/erraggy/identcase/convention"
	"github.com/erraggy/identcase/identerrors"
	"github.com/erraggy/identcase/reserved"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Defaults.
const (
	DefaultFormat       = FormatText
	DefaultLogLevel     = "warn"
	DefaultConcurrency  = 1
	DefaultEditLimit    = 100
	DefaultMaxLimit     = 1000
	DefaultMaxInputSize = 1 << 20
)

// Config holds all identcase settings.
type Config struct {
	// Convention is the target convention name; empty defers to Language
	Convention string `koanf:"convention"`
	// Language selects a default convention when Convention is empty
	Language string `koanf:"language"`
	// Format is the output format: text, json, or yaml
	Format string `koanf:"format"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `koanf:"log_level"`
	// Concurrency is the number of goroutines used by bulk formatting
	Concurrency int `koanf:"concurrency"`
	// Languages adds or overrides entries of the language table
	Languages map[string]string `koanf:"languages"`
	// Reserved adjusts the reserved-word set used by bulk formatting
	Reserved ReservedConfig `koanf:"reserved"`
	// MCP holds limits for the MCP server
	MCP MCPConfig `koanf:"mcp"`

	// File is the config file that was loaded, if any
	File string `koanf:"-"`
}

// ReservedConfig adjusts the built-in reserved-word set.
type ReservedConfig struct {
	Add    []string `koanf:"add"`
	Remove []string `koanf:"remove"`
}

// MCPConfig holds MCP server limits.
type MCPConfig struct {
	// EditLimit is the default number of edits returned per call
	EditLimit int `koanf:"edit_limit"`
	// MaxLimit caps any caller-supplied limit
	MaxLimit int `koanf:"max_limit"`
	// MaxInputSize is the largest document, in bytes, a tool accepts
	MaxInputSize int `koanf:"max_input_size"`
}

// Default returns a Config holding only default values.
func Default() *Config {
	return &Config{
		Format:      DefaultFormat,
		LogLevel:    DefaultLogLevel,
		Concurrency: DefaultConcurrency,
		MCP: MCPConfig{
			EditLimit:    DefaultEditLimit,
			MaxLimit:     DefaultMaxLimit,
			MaxInputSize: DefaultMaxInputSize,
		},
	}
}

// Validate checks every setting and returns the first problem as an
// *identerrors.ConfigError.
func (c *Config) Validate() error {
	if c.Convention != "" {
		if _, err := convention.Parse(c.Convention); err != nil {
			return configError("convention", c.Convention, "unknown convention", err)
		}
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return configError("format", c.Format, "must be one of text, json, yaml", nil)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return configError("log_level", c.LogLevel, "must be one of debug, info, warn, error", nil)
	}
	if c.Concurrency < 1 {
		return configError("concurrency", c.Concurrency, "must be at least 1", nil)
	}
	for lang, name := range c.Languages {
		if _, err := convention.Parse(name); err != nil {
			return configError("languages."+lang, name, "unknown convention", err)
		}
	}
	return nil
}

// Target resolves the convention: Convention when set, otherwise the language
// table entry for Language, otherwise camelCase.
func (c *Config) Target() (convention.Convention, error) {
	if c.Convention != "" {
		conv, err := convention.Parse(c.Convention)
		if err != nil {
			return "", configError("convention", c.Convention, "unknown convention", err)
		}
		return conv, nil
	}
	table, err := c.LanguageTable()
	if err != nil {
		return "", err
	}
	return table.Lookup(c.Language, convention.CamelCase), nil
}

// LanguageTable returns the built-in language table with Languages merged over it.
func (c *Config) LanguageTable() (convention.LanguageTable, error) {
	overrides := make(map[string]convention.Convention, len(c.Languages))
	for lang, name := range c.Languages {
		conv, err := convention.Parse(name)
		if err != nil {
			return nil, configError("languages."+lang, name, "unknown convention", err)
		}
		overrides[lang] = conv
	}
	return convention.DefaultLanguageTable().Merge(overrides), nil
}

// ReservedSet returns the built-in reserved words adjusted by Reserved.
func (c *Config) ReservedSet() *reserved.Set {
	set := reserved.Default()
	set.Add(c.Reserved.Add...)
	set.Remove(c.Reserved.Remove...)
	return set
}

// SlogLevel returns LogLevel as a slog level, defaulting to warn.
func (c *Config) SlogLevel() slog.Level {
	level, ok := parseLevel(c.LogLevel)
	if !ok {
		return slog.LevelWarn
	}
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

func configError(option string, value any, message string, cause error) error {
	return &identerrors.ConfigError{Option: option, Value: value, Message: message, Cause: cause}
}
