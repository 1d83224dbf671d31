package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/erraggy/identcase/internal/config"
	"github.com/erraggy/identcase/tokenizer"
)

type tokenizeRecord struct {
	Identifier string   `json:"identifier" yaml:"identifier"`
	Words      []string `json:"words" yaml:"words"`
}

// NewTokenizeCommand creates the tokenize command.
func NewTokenizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <identifier>...",
		Short: "Split identifiers into words",
		Long: `Split each identifier into lowercase words, the way every conversion does.

Case changes, underscores, hyphens and whitespace separate words. An acronym
run gives its last capital to a following lowercase word, and digit runs are
words of their own.`,
		Example: `  identcase tokenize XMLHttpRequest
  identcase tokenize HTML5Parser user_id -f yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTokenize,
	}
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg := GetConfig(cmd.Context())
	out := cmd.OutOrStdout()

	records := make([]tokenizeRecord, 0, len(args))
	for _, arg := range args {
		words := tokenizer.Tokenize(arg)
		if words == nil {
			words = []string{}
		}
		records = append(records, tokenizeRecord{Identifier: arg, Words: words})
	}

	if cfg.Format != config.FormatText {
		return OutputStructured(out, records, cfg.Format)
	}

	t := NewTable(out, "IDENTIFIER", "WORDS", "COUNT")
	for _, rec := range records {
		t.AppendRow([]any{rec.Identifier, strings.Join(rec.Words, " "), len(rec.Words)})
	}
	t.Render()
	return nil
}
