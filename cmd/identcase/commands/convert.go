package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/identcase/converter"
	"github.com/erraggy/identcase/identerrors"
	"github.com/erraggy/identcase/internal/config"
)

// convertRecord is the structured output for one converted identifier.
type convertRecord struct {
	Original   string   `json:"original" yaml:"original"`
	Converted  string   `json:"converted,omitempty" yaml:"converted,omitempty"`
	Convention string   `json:"convention,omitempty" yaml:"convention,omitempty"`
	Words      []string `json:"words,omitempty" yaml:"words,omitempty"`
	Changed    bool     `json:"changed" yaml:"changed"`
	Message    string   `json:"message,omitempty" yaml:"message,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
	Hint       string   `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <identifier>...",
		Short: "Convert identifiers to a naming convention",
		Long: `Convert each identifier to the target convention and print the result.

Identifiers that are already in the target convention are printed unchanged
with a note on stderr. Invalid variable names are reported and make the exit
status 1; the remaining identifiers are still converted.`,
		Example: `  identcase convert user_name
  identcase convert -c snake XMLHttpRequest getUserID
  identcase convert -l python fetchData -f json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runConvert,
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	target, err := cfg.Target()
	if err != nil {
		return err
	}
	table, err := cfg.LanguageTable()
	if err != nil {
		return err
	}

	cv := converter.New()
	cv.Convention = target
	cv.Languages = table
	cv.Logger = logger

	records := make([]convertRecord, 0, len(args))
	failed := false
	for _, arg := range args {
		result, err := cv.Convert(arg)
		switch {
		case err == nil, identerrors.IsOutcome(err):
			rec := convertRecord{
				Original:   result.Original,
				Converted:  result.Converted,
				Convention: result.Convention.String(),
				Words:      result.Words,
				Changed:    result.Changed,
			}
			if err != nil {
				rec.Message = err.Error()
			}
			records = append(records, rec)
		default:
			failed = true
			records = append(records, convertRecord{
				Original: arg,
				Error:    err.Error(),
				Hint:     identerrors.Hint(err),
			})
			if cfg.Format == config.FormatText {
				PrintError(errOut, err)
			}
		}
	}

	if cfg.Format != config.FormatText {
		if err := OutputStructured(out, records, cfg.Format); err != nil {
			return err
		}
	} else {
		for _, rec := range records {
			if rec.Error != "" {
				continue
			}
			Writef(out, "%s\n", rec.Converted)
			if rec.Message != "" {
				Writef(errOut, "note: %s\n", rec.Message)
			}
		}
	}

	if failed {
		return errReported
	}
	return nil
}
