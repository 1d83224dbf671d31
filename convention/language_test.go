package convention

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want Convention
	}{
		{lang: "javascript", want: CamelCase},
		{lang: "typescript", want: CamelCase},
		{lang: "java", want: CamelCase},
		{lang: "csharp", want: PascalCase},
		{lang: "python", want: SnakeCase},
		{lang: "rust", want: SnakeCase},
		{lang: "c", want: SnakeCase},
		{lang: "cpp", want: SnakeCase},
		{lang: "css", want: KebabCase},
		{lang: "scss", want: KebabCase},
		{lang: "less", want: KebabCase},
		{lang: "html", want: KebabCase},
		{lang: "Python", want: SnakeCase},
		{lang: "go", want: CamelCase},
		{lang: "", want: CamelCase},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, ForLanguage(tt.lang))
		})
	}
}

func TestLanguageTable_Merge(t *testing.T) {
	base := DefaultLanguageTable()
	merged := base.Merge(map[string]Convention{
		"Go":     PascalCase,
		"python": KebabCase,
	})

	assert.Equal(t, PascalCase, merged.Lookup("go", CamelCase))
	assert.Equal(t, KebabCase, merged.Lookup("python", CamelCase))
	assert.Equal(t, PascalCase, merged.Lookup("csharp", CamelCase))

	// base is untouched
	assert.Equal(t, SnakeCase, base.Lookup("python", CamelCase))
	assert.Equal(t, ScreamingSnakeCase, base.Lookup("go", ScreamingSnakeCase))
}

func TestDefaultLanguageTable_ReturnsCopy(t *testing.T) {
	a := DefaultLanguageTable()
	a["python"] = PascalCase
	assert.Equal(t, SnakeCase, DefaultLanguageTable()["python"])
}
