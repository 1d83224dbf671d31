package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
// A double underscore separates nested keys: IDENTCASE_MCP__EDIT_LIMIT sets mcp.edit_limit.
const EnvPrefix = "IDENTCASE_"

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// fileNames are the config file names searched for, in order.
var fileNames = []string{".identcase.yaml", ".identcase.yml"}

// flagKeys maps flag names to config keys. Flags not listed are not config.
var flagKeys = map[string]string{
	"convention":  "convention",
	"language":    "language",
	"format":      "format",
	"log-level":   "log_level",
	"concurrency": "concurrency",
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// File is an explicit config file; when empty the file is searched for upward from Dir
	File string
	// Dir is the directory the search starts in (default: working directory)
	Dir string
	// Flags supplies command-line overrides; only changed flags are applied
	Flags *pflag.FlagSet
	// NoSearch disables the upward search for a config file
	NoSearch bool
}

// Load builds a Config from defaults, config file, environment, and flags,
// in increasing precedence, then validates it.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. defaults
	d := Default()
	if err := k.Load(confmap.Provider(map[string]any{
		"format":             d.Format,
		"log_level":          d.LogLevel,
		"concurrency":        d.Concurrency,
		"mcp.edit_limit":     d.MCP.EditLimit,
		"mcp.max_limit":      d.MCP.MaxLimit,
		"mcp.max_input_size": d.MCP.MaxInputSize,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. config file
	path := opts.File
	if path == "" && !opts.NoSearch {
		dir := opts.Dir
		if dir == "" {
			dir, _ = os.Getwd()
		}
		path = FindFile(dir)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, configError("config", path, "cannot read config file", err)
		}
	}

	// 3. environment: IDENTCASE_LOG_LEVEL -> log_level, IDENTCASE_MCP__MAX_LIMIT -> mcp.max_limit
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment")
	}

	// 4. flags, only those explicitly set
	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(opts.Flags, f)
		}), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, configError("", nil, "unable to decode config", err)
	}
	cfg.File = path

	if err := cfg.Validate(); err != nil {
		if path != "" {
			return nil, errors.WithHintf(err, "check %s and IDENTCASE_* environment variables", path)
		}
		return nil, errors.WithHint(err, "check flags and IDENTCASE_* environment variables")
	}
	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// FindFile searches dir and its parents for a config file and returns its path,
// or "" when none is found.
func FindFile(dir string) string {
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range fileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// String describes where the configuration came from.
func (c *Config) String() string {
	if c.File == "" {
		return "defaults"
	}
	return fmt.Sprintf("file %s", c.File)
}
