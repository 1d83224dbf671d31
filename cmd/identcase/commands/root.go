// Package commands provides the cobra commands of the identcase CLI.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/erraggy/identcase"
	"github.com/erraggy/identcase/convention"
	"github.com/erraggy/identcase/internal/config"
	"github.com/erraggy/identcase/logging"
)

// configKey stores the loaded *config.Config in the command context.
type configKey struct{}

// loggerKey stores the *logging.ZapAdapter in the command context.
type loggerKey struct{}

// rootFlags holds the persistent flags that are not config keys.
type rootFlags struct {
	configFile string
	noConfig   bool
}

// NewRootCmd creates the identcase root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "identcase",
		Short: "Convert identifiers between naming conventions",
		Long: `identcase converts identifiers between camelCase, PascalCase, snake_case,
kebab-case and SCREAMING_SNAKE_CASE.

Settings are read from .identcase.yaml (searched upward from the working
directory), IDENTCASE_* environment variables, and flags, in increasing
precedence.`,
		Version: identcase.Version(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(config.LoadOptions{
				File:     flags.configFile,
				Flags:    cmd.Root().PersistentFlags(),
				NoSearch: flags.noConfig,
			})
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if cfg.File != "" {
				logger.Debug("loaded config file", "path", cfg.File)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = GetLogger(cmd.Context()).Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default: .identcase.yaml searched upward)")
	pf.BoolVar(&flags.noConfig, "no-config", false, "ignore config files")
	pf.StringP("convention", "c", "", "target convention: camelCase, PascalCase, snake_case, kebab-case, SCREAMING_SNAKE_CASE")
	pf.StringP("language", "l", "", "language whose default convention applies when --convention is not set")
	pf.StringP("format", "f", "", "output format (text|json|yaml)")
	pf.String("log-level", "", "log level (debug|info|warn|error)")
	pf.Int("concurrency", 0, "goroutines used when formatting documents")

	_ = rootCmd.RegisterFlagCompletionFunc("convention", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return convention.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatText, config.FormatJSON, config.FormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewConvertCommand())
	rootCmd.AddCommand(NewTokenizeCommand())
	rootCmd.AddCommand(NewPreviewCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewFixCommand())
	rootCmd.AddCommand(NewMCPCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command and prints any error with its hints.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			PrintError(rootCmd.ErrOrStderr(), err)
		}
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return c
		}
	}
	return config.Default()
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *logging.ZapAdapter {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*logging.ZapAdapter); ok {
			return l
		}
	}
	return logging.NewZapAdapter(zap.NewNop())
}

// newLogger builds a console zap logger writing to w at the given level.
func newLogger(w io.Writer, level string) *logging.ZapAdapter {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), lvl)
	return logging.NewZapAdapter(zap.New(core))
}

// stdinIsTerminal reports whether stdin is an interactive terminal.
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
