package mcpserver

import (
	"log/slog"

	"github.com/erraggy/identcase/convention"
	"github.com/erraggy/identcase/internal/config"
	"github.com/erraggy/identcase/logging"
	"github.com/erraggy/identcase/reserved"
)

// serverConfig holds all configurable MCP server defaults.
type serverConfig struct {
	// Conversion defaults.
	Convention  convention.Convention
	Languages   convention.LanguageTable
	Reserved    *reserved.Set
	Concurrency int

	// Output limits.
	EditLimit    int
	MaxLimit     int
	MaxInputSize int

	// Logger receives debug output from tool calls.
	Logger logging.Logger
}

// cfg is the active server configuration. Run replaces it before serving.
var cfg = newServerConfig(config.Default(), slog.Default())

// newServerConfig derives server settings from c.
// Invalid values log a warning and fall back to the hardcoded default.
func newServerConfig(c *config.Config, logger *slog.Logger) *serverConfig {
	sc := &serverConfig{
		Convention:   convention.CamelCase,
		Languages:    convention.DefaultLanguageTable(),
		Reserved:     c.ReservedSet(),
		Concurrency:  positive(logger, "concurrency", c.Concurrency, config.DefaultConcurrency),
		EditLimit:    positive(logger, "mcp.edit_limit", c.MCP.EditLimit, config.DefaultEditLimit),
		MaxLimit:     positive(logger, "mcp.max_limit", c.MCP.MaxLimit, config.DefaultMaxLimit),
		MaxInputSize: positive(logger, "mcp.max_input_size", c.MCP.MaxInputSize, config.DefaultMaxInputSize),
		Logger:       logging.NewSlogAdapter(logger),
	}

	if table, err := c.LanguageTable(); err != nil {
		logger.Warn("invalid language table, using defaults", "error", err)
	} else {
		sc.Languages = table
	}

	if target, err := c.Target(); err != nil {
		logger.Warn("invalid convention, using default", "value", c.Convention, "default", sc.Convention.String())
	} else {
		sc.Convention = target
	}

	return sc
}

func positive(logger *slog.Logger, key string, v, fallback int) int {
	if v <= 0 {
		logger.Warn("invalid limit, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return v
}

// resolveConvention picks the target convention for a tool call: an explicit
// name, then the language table, then the server default.
func resolveConvention(name, language string) (convention.Convention, error) {
	if name != "" {
		return convention.Parse(name)
	}
	if language != "" {
		return cfg.Languages.Lookup(language, cfg.Convention), nil
	}
	return cfg.Convention, nil
}
