package converter

import (
	"github.com/erraggy/identcase/convention"
	"github.com/erraggy/identcase/tokenizer"
	"github.com/erraggy/identcase/validator"
)

// PreviewEntry is the rendering of an identifier under one convention.
type PreviewEntry struct {
	Convention convention.Convention `json:"convention" yaml:"convention"`
	Converted  string                `json:"converted" yaml:"converted"`
	Changed    bool                  `json:"changed" yaml:"changed"`
}

// Preview validates identifier and renders it under every convention, in the
// order of convention.All.
func Preview(identifier string) ([]PreviewEntry, error) {
	if err := validator.Validate(identifier); err != nil {
		return nil, err
	}

	words := tokenizer.Tokenize(identifier)
	all := convention.All()
	entries := make([]PreviewEntry, len(all))
	for i, c := range all {
		converted := convention.Render(words, c)
		entries[i] = PreviewEntry{
			Convention: c,
			Converted:  converted,
			Changed:    converted != identifier,
		}
	}
	return entries, nil
}
