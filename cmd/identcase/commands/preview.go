package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/identcase/converter"
	"github.com/erraggy/identcase/internal/config"
)

type previewRecord struct {
	Identifier  string                   `json:"identifier" yaml:"identifier"`
	Conventions []converter.PreviewEntry `json:"conventions" yaml:"conventions"`
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <identifier>",
		Short: "Show an identifier in every convention",
		Long:  `Render one identifier under all five naming conventions.`,
		Example: `  identcase preview getHTTPResponse
  identcase preview user_id -f json`,
		Args: cobra.ExactArgs(1),
		RunE: runPreview,
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := GetConfig(cmd.Context())
	out := cmd.OutOrStdout()

	entries, err := converter.Preview(args[0])
	if err != nil {
		return err
	}

	if cfg.Format != config.FormatText {
		return OutputStructured(out, previewRecord{Identifier: args[0], Conventions: entries}, cfg.Format)
	}

	t := NewTable(out, "CONVENTION", "RESULT", "CHANGED")
	for _, e := range entries {
		changed := ""
		if e.Changed {
			changed = "✓"
		}
		t.AppendRow([]any{e.Convention.String(), e.Converted, changed})
	}
	t.Render()
	return nil
}
