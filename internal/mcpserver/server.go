// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes identcase conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/identcase"
	"github.com/erraggy/identcase/identerrors"
	"github.com/erraggy/identcase/internal/config"
)

const serverInstructions = `identcase MCP server: converts identifiers between camelCase, PascalCase, snake_case, kebab-case and SCREAMING_SNAKE_CASE.

Single identifiers: use convert, or preview to see every convention at once. tokenize shows how a name is split into words; validate checks the variable-name shape.

Documents: format_all rewrites every identifier in a document except keywords and common built-ins; format_selections rewrites only the given byte ranges. Both return an edit list in descending offset order plus the rewritten text when include_text is true.

Conventions accept aliases (camel, pascal, snake, kebab, screaming). When convention is omitted, language picks a default (python -> snake_case, csharp -> PascalCase, css -> kebab-case); otherwise the server default applies.

Configuration: defaults come from .identcase.yaml and IDENTCASE_* environment variables set in your MCP client config, e.g. IDENTCASE_CONVENTION, IDENTCASE_MCP__EDIT_LIMIT (default 100), IDENTCASE_MCP__MAX_INPUT_SIZE (default 1 MiB).`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. A nil c uses default settings.
func Run(ctx context.Context, c *config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if c == nil {
		c = config.Default()
	}
	cfg = newServerConfig(c, logger)
	logger.Debug("starting mcp server",
		"convention", cfg.Convention.String(),
		"edit_limit", cfg.EditLimit,
		"max_input_size", cfg.MaxInputSize,
	)

	server := mcp.NewServer(
		&mcp.Implementation{Name: "identcase", Version: identcase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert one identifier to a naming convention (camelCase, PascalCase, snake_case, kebab-case, SCREAMING_SNAKE_CASE). The identifier must be a valid variable name. Returns changed=false with a message when the identifier is already in the requested format.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Split an identifier into lowercase words. Handles camelCase, PascalCase, snake_case, kebab-case, acronym runs (XMLHttpRequest -> xml, http, request) and digits (HTML5Parser -> html, 5, parser).",
	}, handleTokenize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview",
		Description: "Render one identifier under all five naming conventions, flagging which renderings differ from the input. Use this before convert when the target convention is undecided.",
	}, handlePreview)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Check whether text is a valid variable name: a letter, underscore or dollar sign followed by letters, digits, underscores or dollar signs. Surrounding whitespace is ignored.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_all",
		Description: "Convert every identifier in a document to a naming convention, skipping language keywords and common built-ins (function, class, return, console, ...). Provide the document as file or content. Returns edits in descending offset order; use include_text for the rewritten document, output to write it to a file, and offset/limit to page through edits.",
	}, handleFormatAll)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_selections",
		Description: "Convert selected byte ranges of a document to a naming convention. Each selection is validated on its own: invalid selections are reported as issues by 1-based position while valid ones are still converted. Keywords are not skipped.",
	}, handleFormatSelections)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.EditLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.EditLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error, appending any hint.
func errResult(err error) *mcp.CallToolResult {
	text := sanitizeError(err)
	if hint := identerrors.Hint(err); hint != "" {
		text += "\nHint: " + hint
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
