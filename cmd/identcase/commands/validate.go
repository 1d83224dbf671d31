package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/identcase/identerrors"
	"github.com/erraggy/identcase/internal/config"
	"github.com/erraggy/identcase/validator"
)

type validateRecord struct {
	Text    string `json:"text" yaml:"text"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Hint    string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <text>...",
		Short: "Check that text is a valid variable name",
		Long: `Check each argument against the variable-name shape: a letter, '_' or '$'
followed by letters, digits, '_' or '$'. Surrounding whitespace is ignored.

The exit status is 1 when any argument is invalid.`,
		Example: `  identcase validate userName _private $el
  identcase validate "2fast" -f json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig(cmd.Context())
	out := cmd.OutOrStdout()

	records := make([]validateRecord, 0, len(args))
	invalid := 0
	for _, arg := range args {
		rec := validateRecord{Text: arg, Valid: true}
		if err := validator.Validate(arg); err != nil {
			invalid++
			rec.Valid = false
			rec.Message = err.Error()
			rec.Hint = identerrors.Hint(err)
		}
		records = append(records, rec)
	}

	if cfg.Format != config.FormatText {
		if err := OutputStructured(out, records, cfg.Format); err != nil {
			return err
		}
	} else {
		for _, rec := range records {
			if rec.Valid {
				Writef(out, "✓ %s\n", rec.Text)
				continue
			}
			Writef(out, "✗ %s: %s\n", rec.Text, rec.Message)
			if rec.Hint != "" {
				Writef(out, "    Hint: %s\n", rec.Hint)
			}
		}
	}

	if invalid > 0 {
		return errReported
	}
	return nil
}
