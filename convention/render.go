package convention

import (
	"strings"

	"github.com/erraggy/identcase/internal/naming"
)

// Render joins words under convention c.
// Zero words render as "". Words are re-cased by the convention regardless of
// their input casing. An unsupported convention joins the words unchanged.
func Render(words []string, c Convention) string {
	if len(words) == 0 {
		return ""
	}

	switch c {
	case CamelCase:
		var b strings.Builder
		b.WriteString(naming.Lower(words[0]))
		for _, w := range words[1:] {
			b.WriteString(naming.Capitalize(w))
		}
		return b.String()
	case PascalCase:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(naming.Capitalize(w))
		}
		return b.String()
	case SnakeCase, KebabCase:
		return joinMapped(words, c.Separator(), naming.Lower)
	case ScreamingSnakeCase:
		return joinMapped(words, c.Separator(), naming.Upper)
	default:
		return strings.Join(words, "")
	}
}

func joinMapped(words []string, sep string, mapFn func(string) string) string {
	mapped := make([]string, len(words))
	for i, w := range words {
		mapped[i] = mapFn(w)
	}
	return strings.Join(mapped, sep)
}
