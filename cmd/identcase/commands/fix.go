package commands

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/erraggy/identcase/fixer"
	"github.com/erraggy/identcase/identerrors"
	"github.com/erraggy/identcase/internal/config"
)

// FixFlags contains flags for the fix command
type FixFlags struct {
	Write      bool
	Output     string
	DryRun     bool
	Quiet      bool
	Selections []string
}

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	flags := &FixFlags{}

	cmd := &cobra.Command{
		Use:   "fix [file|-]",
		Short: "Convert every identifier in a document",
		Long: `Convert every identifier in a document to the target convention.

Keywords and common built-ins (function, class, return, console, ...) are left
alone; adjust the list with reserved.add and reserved.remove in .identcase.yaml.
With --selection only the given byte ranges are converted, and keywords are not
skipped. Invalid selections are reported while valid ones are still converted;
the exit status is then 1.

The document is read from the file argument or stdin ("-" or no argument) and
written to stdout unless -w or -o is given. Diagnostics go to stderr.`,
		Example: `  identcase fix -c snake app.py
  identcase fix -w -l csharp Program.cs
  identcase fix --dry-run src/app.js
  identcase fix --selection 4:14 --selection 17:26 -o out.js app.js
  cat app.js | identcase fix -q - > fixed.js`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := StdinFilePath
			if len(args) == 1 {
				path = args[0]
			}
			return runFix(cmd, path, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Write, "write", "w", false, "write the result back to the input file")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "print the planned edits without writing anything")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress diagnostics on stderr")
	cmd.Flags().StringArrayVar(&flags.Selections, "selection", nil, "byte range start:end to convert (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("write", "output")
	cmd.MarkFlagsMutuallyExclusive("write", "dry-run")
	cmd.MarkFlagsMutuallyExclusive("output", "dry-run")

	return cmd
}

func runFix(cmd *cobra.Command, path string, flags *FixFlags) error {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if path == StdinFilePath {
		if flags.Write {
			return errors.WithHint(errors.New("cannot use -w with stdin"), "use -o to choose an output file")
		}
		if cmd.InOrStdin() == os.Stdin && stdinIsTerminal() {
			return errors.WithHint(errors.New("no input"), "pass a file or pipe a document on stdin")
		}
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, path); err != nil {
			return err
		}
	}

	selections, err := parseSelections(flags.Selections)
	if err != nil {
		return err
	}
	target, err := cfg.Target()
	if err != nil {
		return err
	}
	text, source, err := readSource(path, cmd.InOrStdin(), cfg.MCP.MaxInputSize)
	if err != nil {
		return err
	}

	opts := []fixer.Option{
		fixer.WithReserved(cfg.ReservedSet()),
		fixer.WithConcurrency(cfg.Concurrency),
		fixer.WithSource(source),
		fixer.WithLogger(logger),
	}
	var result *fixer.FixResult
	if len(selections) > 0 {
		result, err = fixer.FormatSelections(text, selections, target, opts...)
	} else {
		result, err = fixer.FormatAll(text, target, opts...)
	}
	var note string
	switch {
	case err == nil:
	case result != nil && (identerrors.IsOutcome(err) || errors.Is(err, identerrors.ErrNoCandidates)):
		note = err.Error()
	default:
		return err
	}

	newText := text
	if result.HasChanges() {
		newText = result.Text
	}

	if !flags.Quiet {
		printFixSummary(errOut, result, note)
	}

	switch {
	case flags.DryRun:
		if err := printEdits(out, result, cfg.Format); err != nil {
			return err
		}
	case flags.Write:
		if result.HasChanges() {
			if err := writeFile(path, newText); err != nil {
				return err
			}
			if !flags.Quiet {
				Writef(errOut, "Wrote %s\n", path)
			}
		}
	case flags.Output != "":
		if err := writeFile(flags.Output, newText); err != nil {
			return err
		}
		if !flags.Quiet {
			Writef(errOut, "Output written to: %s\n", flags.Output)
		}
	case cfg.Format != config.FormatText:
		result.Text = newText
		if err := OutputStructured(out, result, cfg.Format); err != nil {
			return err
		}
	default:
		Writef(out, "%s", newText)
	}

	if result.HasIssues() {
		return errReported
	}
	return nil
}

// parseSelections parses "start:end" byte ranges.
func parseSelections(ranges []string) ([]fixer.Selection, error) {
	if len(ranges) == 0 {
		return nil, nil
	}
	selections := make([]fixer.Selection, 0, len(ranges))
	for _, r := range ranges {
		startStr, endStr, ok := strings.Cut(r, ":")
		start, startErr := strconv.Atoi(strings.TrimSpace(startStr))
		end, endErr := strconv.Atoi(strings.TrimSpace(endStr))
		if !ok || startErr != nil || endErr != nil {
			return nil, errors.WithHint(
				errors.Newf("invalid selection %q", r),
				"selections are byte offsets written as start:end, e.g. --selection 4:14",
			)
		}
		selections = append(selections, fixer.Selection{Start: start, End: end})
	}
	return selections, nil
}
