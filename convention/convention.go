package convention

import (
	"fmt"
	"strings"
)

// Convention identifies a naming convention.
type Convention string

const (
	// CamelCase joins words with no separator, capitalizing all but the first.
	CamelCase Convention = "camelCase"
	// PascalCase joins capitalized words with no separator.
	PascalCase Convention = "PascalCase"
	// SnakeCase joins lowercase words with underscores.
	SnakeCase Convention = "snake_case"
	// KebabCase joins lowercase words with hyphens.
	KebabCase Convention = "kebab-case"
	// ScreamingSnakeCase joins uppercase words with underscores.
	ScreamingSnakeCase Convention = "SCREAMING_SNAKE_CASE"
)

// All returns every supported convention in a stable order.
func All() []Convention {
	return []Convention{CamelCase, PascalCase, SnakeCase, KebabCase, ScreamingSnakeCase}
}

// String returns the canonical name of the convention.
func (c Convention) String() string {
	return string(c)
}

// Valid reports whether c is one of the supported conventions.
func (c Convention) Valid() bool {
	switch c {
	case CamelCase, PascalCase, SnakeCase, KebabCase, ScreamingSnakeCase:
		return true
	}
	return false
}

// Separator returns the string placed between words, or "" for conventions that
// join words by capitalization alone.
func (c Convention) Separator() string {
	switch c {
	case SnakeCase, ScreamingSnakeCase:
		return "_"
	case KebabCase:
		return "-"
	default:
		return ""
	}
}

var aliases = map[string]Convention{
	"camelcase":            CamelCase,
	"camel":                CamelCase,
	"pascalcase":           PascalCase,
	"pascal":               PascalCase,
	"snake_case":           SnakeCase,
	"snake":                SnakeCase,
	"kebab-case":           KebabCase,
	"kebab":                KebabCase,
	"screaming_snake_case": ScreamingSnakeCase,
	"screaming-snake":      ScreamingSnakeCase,
	"screaming":            ScreamingSnakeCase,
	"constant":             ScreamingSnakeCase,
	"upper-snake":          ScreamingSnakeCase,
}

// Parse returns the convention named by s. Canonical names and short aliases
// ("camel", "snake", "screaming", ...) are accepted case-insensitively.
func Parse(s string) (Convention, error) {
	if c, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("convention: unknown convention %q (valid: %s)", s, strings.Join(Names(), ", "))
}

// Names returns the canonical names of all conventions.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.String()
	}
	return names
}
