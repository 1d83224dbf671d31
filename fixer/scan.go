package fixer

import (
	"regexp"

	"github.com/erraggy/identcase/reserved"
)

// identifierPattern matches identifier-shaped tokens. \b is an ASCII word
// boundary, so '$' does not count as a word character at either edge.
var identifierPattern = regexp.MustCompile(`\b[A-Za-z_$][A-Za-z0-9_$]*\b`)

// Match is an identifier-shaped token found in a document.
type Match struct {
	Text  string `json:"text" yaml:"text"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// FindIdentifiers returns every identifier-shaped token in text, in ascending
// offset order. Reserved words are included.
func FindIdentifiers(text string) []Match {
	locs := identifierPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]Match, len(locs))
	for i, loc := range locs {
		matches[i] = Match{Text: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]}
	}
	return matches
}

// FindCandidates returns the tokens of text that FormatAll would convert:
// identifier-shaped and not in set. A nil set uses the built-in reserved words.
func FindCandidates(text string, set *reserved.Set) []Match {
	if set == nil {
		set = reserved.Default()
	}
	var out []Match
	for _, m := range FindIdentifiers(text) {
		if !set.Contains(m.Text) {
			out = append(out, m)
		}
	}
	return out
}
