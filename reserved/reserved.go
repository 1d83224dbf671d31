// Package reserved holds the keyword and built-in name set that bulk formatting
// must never rename.
//
// Membership is case-insensitive: "Function", "function", and "FUNCTION" are all
// reserved. Built-in object names such as "Array" and "JSON" are matched the
// same way.
package reserved

import (
	"slices"
	"sync"

	"github.com/erraggy/identcase/internal/naming"
)

// builtinWords are JavaScript/TypeScript keywords, primitive type names, and
// common global objects and functions.
var builtinWords = []string{
	// keywords
	"abstract", "arguments", "await", "boolean", "break", "byte", "case", "catch",
	"char", "class", "const", "continue", "debugger", "default", "delete", "do",
	"double", "else", "enum", "eval", "export", "extends", "false", "final",
	"finally", "float", "for", "function", "goto", "if", "implements", "import",
	"in", "instanceof", "int", "interface", "let", "long", "native", "new",
	"null", "package", "private", "protected", "public", "return", "short",
	"static", "super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "true", "try", "typeof", "var", "void", "volatile", "while",
	"with", "yield", "async", "of", "from", "as", "any", "unknown", "never",
	"object", "string", "number", "bigint", "symbol", "undefined",

	// built-in objects and functions
	"console", "window", "document", "Array", "Object", "String", "Number",
	"Boolean", "Date", "RegExp", "Error", "JSON", "Math", "parseInt", "parseFloat",
	"isNaN", "isFinite", "encodeURI", "decodeURI", "setTimeout", "setInterval",
}

// Set is a case-insensitive word set. The zero value is an empty set ready to use.
// A Set is not safe for concurrent mutation; concurrent Contains calls are safe.
type Set struct {
	words map[string]struct{}
}

// NewSet returns a set holding the built-in words plus extra.
func NewSet(extra ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(builtinWords)+len(extra))}
	s.Add(builtinWords...)
	s.Add(extra...)
	return s
}

// Empty returns a set with no words.
func Empty() *Set {
	return &Set{words: make(map[string]struct{})}
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

func builtin() *Set {
	defaultOnce.Do(func() {
		defaultSet = NewSet()
	})
	return defaultSet
}

// Default returns a copy of the built-in set that the caller may modify.
func Default() *Set {
	return builtin().Clone()
}

// IsReservedWord reports whether word is in the built-in set.
func IsReservedWord(word string) bool {
	return builtin().Contains(word)
}

// Contains reports whether word is in the set, ignoring case.
// A nil set contains nothing.
func (s *Set) Contains(word string) bool {
	if s == nil || s.words == nil {
		return false
	}
	_, ok := s.words[naming.Lower(word)]
	return ok
}

// Add inserts words into the set. Empty strings are ignored.
func (s *Set) Add(words ...string) {
	if s.words == nil {
		s.words = make(map[string]struct{}, len(words))
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		s.words[naming.Lower(w)] = struct{}{}
	}
}

// Remove deletes words from the set.
func (s *Set) Remove(words ...string) {
	for _, w := range words {
		delete(s.words, naming.Lower(w))
	}
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := &Set{words: make(map[string]struct{}, s.Len())}
	if s != nil {
		for w := range s.words {
			c.words[w] = struct{}{}
		}
	}
	return c
}

// Words returns the lowercase words in the set, sorted.
func (s *Set) Words() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}
