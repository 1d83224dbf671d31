package tokenizer

import (
	"strings"
	"unicode"

	"github.com/erraggy/identcase/internal/naming"
)

// Tokenize splits identifier into lowercase words.
// The result never contains an empty string and is empty only when identifier
// consists solely of separators.
func Tokenize(identifier string) []string {
	words := Split(identifier)
	for i, w := range words {
		words[i] = naming.Lower(w)
	}
	return words
}

// Split splits identifier into words, keeping the original casing of each word.
func Split(identifier string) []string {
	fragments := strings.FieldsFunc(identifier, isSeparator)
	if len(fragments) == 0 {
		return nil
	}

	words := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		parts := splitFragment(fragment)
		if len(parts) == 0 {
			words = append(words, fragment)
			continue
		}
		words = append(words, parts...)
	}
	return words
}

// isSeparator reports whether r separates words outright.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

func isUpper(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsTitle(r)
}

// isLower treats caseless letters (CJK and similar) as lowercase so they join
// the word they appear in.
func isLower(r rune) bool {
	return unicode.IsLower(r) || (unicode.IsLetter(r) && !isUpper(r))
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r)
}

// splitFragment cuts a separator-free fragment at case and digit boundaries.
func splitFragment(fragment string) []string {
	runes := []rune(fragment)
	n := len(runes)
	var words []string

	// run returns the end of the run of runes matching class starting at i.
	run := func(i int, class func(rune) bool) int {
		for i < n && class(runes[i]) {
			i++
		}
		return i
	}

	for i := 0; i < n; {
		r := runes[i]
		switch {
		case isUpper(r):
			end := run(i, isUpper)
			if end < n && isLower(runes[end]) {
				// The last capital belongs to the lowercase word that follows.
				if end-i > 1 {
					words = append(words, string(runes[i:end-1]))
					i = end - 1
				}
				end = run(end, isLower)
			}
			words = append(words, string(runes[i:end]))
			i = end
		case isLower(r):
			end := run(i, isLower)
			words = append(words, string(runes[i:end]))
			i = end
		case isDigit(r):
			end := run(i, isDigit)
			words = append(words, string(runes[i:end]))
			i = end
		default:
			i++
		}
	}
	return words
}
