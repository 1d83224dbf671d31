package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// documentInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a source file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content"`
}

// resolve returns the document text and a name for it. Both inputs are
// bounded by cfg.MaxInputSize.
func (d documentInput) resolve() (text, source string, err error) {
	count := 0
	if d.File != "" {
		count++
	}
	if d.Content != "" {
		count++
	}
	if count != 1 {
		return "", "", fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if d.Content != "" {
		if len(d.Content) > cfg.MaxInputSize {
			return "", "", fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; set IDENTCASE_MCP__MAX_INPUT_SIZE to increase",
				len(d.Content), cfg.MaxInputSize)
		}
		return d.Content, "", nil
	}

	path := filepath.Clean(d.File)
	info, err := os.Stat(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	if info.IsDir() {
		return "", "", fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > int64(cfg.MaxInputSize) {
		return "", "", fmt.Errorf("file size %d bytes exceeds maximum %d bytes; set IDENTCASE_MCP__MAX_INPUT_SIZE to increase",
			info.Size(), cfg.MaxInputSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), path, nil
}
