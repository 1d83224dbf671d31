package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/identcase/identerrors"
	"github.com/erraggy/identcase/internal/config"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// errReported is returned after per-item failures were already printed.
// The process exits non-zero without printing it again.
var errReported = errors.New("one or more inputs failed")

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case config.FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case config.FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s\n", strings.TrimRight(string(bytes), "\n"))
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// PrintError writes err to w followed by any hints it carries.
func PrintError(w io.Writer, err error) {
	Writef(w, "Error: %v\n", err)
	for _, hint := range strings.Split(identerrors.Hint(err), "\n") {
		if hint != "" {
			Writef(w, "  Hint: %s\n", hint)
		}
	}
}

// NewTable returns a go-pretty table writer that renders to w.
func NewTable(w io.Writer, headers ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(headers))
	return t
}

// readSource reads a document from path, or from stdin when path is "-".
// It returns the text and the name used in messages.
func readSource(path string, stdin io.Reader, maxSize int) (string, string, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(io.LimitReader(stdin, int64(maxSize)+1))
		if err != nil {
			return "", "", errors.Wrap(err, "reading stdin")
		}
		if len(data) > maxSize {
			return "", "", errors.Newf("stdin exceeds maximum size of %d bytes", maxSize)
		}
		return string(data), "<stdin>", nil
	}

	cleaned := filepath.Clean(path)
	info, err := os.Stat(cleaned)
	if err != nil {
		return "", "", errors.Wrapf(err, "reading %s", path)
	}
	if info.IsDir() {
		return "", "", errors.Newf("%s is a directory", path)
	}
	if info.Size() > int64(maxSize) {
		return "", "", errors.WithHint(
			errors.Newf("%s exceeds maximum size of %d bytes", path, maxSize),
			"raise mcp.max_input_size in .identcase.yaml",
		)
	}
	data, err := os.ReadFile(cleaned)
	if err != nil {
		return "", "", errors.Wrapf(err, "reading %s", path)
	}
	return string(data), path, nil
}

// ValidateOutputPath rejects an output path that would overwrite the input
// or that is a symlink.
func ValidateOutputPath(outputPath, inputPath string) error {
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return errors.Wrap(err, "invalid output path")
	}
	if inputPath != "" && inputPath != StdinFilePath {
		absInput, err := filepath.Abs(inputPath)
		if err != nil {
			return errors.Wrapf(err, "invalid input path %s", inputPath)
		}
		if absOutput == absInput {
			return errors.WithHint(
				errors.Newf("output file %s would overwrite input file %s", outputPath, inputPath),
				"use -w to rewrite the input in place",
			)
		}
	}
	return RejectSymlinkOutput(filepath.Clean(outputPath))
}

// RejectSymlinkOutput returns an error if cleanedPath is a symlink.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "checking output path")
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return errors.Newf("refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// writeFile writes data to path, keeping the mode of an existing file.
func writeFile(path string, data string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(data), mode); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
