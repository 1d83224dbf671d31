package convention

import "strings"

// LanguageTable maps a lowercase language identifier to its default convention.
type LanguageTable map[string]Convention

// DefaultLanguageTable returns a fresh copy of the built-in language defaults.
func DefaultLanguageTable() LanguageTable {
	return LanguageTable{
		"javascript": CamelCase,
		"typescript": CamelCase,
		"java":       CamelCase,
		"csharp":     PascalCase,
		"python":     SnakeCase,
		"rust":       SnakeCase,
		"c":          SnakeCase,
		"cpp":        SnakeCase,
		"css":        KebabCase,
		"scss":       KebabCase,
		"less":       KebabCase,
		"html":       KebabCase,
	}
}

// Lookup returns the convention for lang, or fallback when lang is not in the table.
func (t LanguageTable) Lookup(lang string, fallback Convention) Convention {
	if c, ok := t[strings.ToLower(strings.TrimSpace(lang))]; ok {
		return c
	}
	return fallback
}

// Merge returns a copy of t with the entries of other added or replaced.
// Keys in other are lowercased.
func (t LanguageTable) Merge(other map[string]Convention) LanguageTable {
	merged := make(LanguageTable, len(t)+len(other))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range other {
		merged[strings.ToLower(k)] = v
	}
	return merged
}

// ForLanguage returns the default convention for lang using the built-in table.
// Unknown languages get CamelCase.
func ForLanguage(lang string) Convention {
	return DefaultLanguageTable().Lookup(lang, CamelCase)
}
