package commands

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/erraggy/identcase"
	"github.com/erraggy/identcase/internal/mcpserver"
)

// NewMCPCommand creates the mcp command.
func NewMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
convert, tokenize, preview, validate, format_all and format_selections tools.

Server defaults come from the same config file and IDENTCASE_* variables as the
CLI. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
			logger.Info("serving", "client", identcase.UserAgent())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return mcpserver.Run(ctx, cfg, logger)
		},
	}
}
