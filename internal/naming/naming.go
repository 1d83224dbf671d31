package naming

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower returns s with every letter mapped to lowercase.
// Example: "XMLHttp" -> "xmlhttp"
func Lower(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}

// Upper returns s with every letter mapped to uppercase.
// Example: "my_var" -> "MY_VAR"
func Upper(s string) string {
	if s == "" {
		return ""
	}
	return cases.Upper(language.Und).String(s)
}

// Capitalize uppercases the first rune of s and lowercases the remainder.
// All-caps input is not preserved.
// Example: "hello" -> "Hello"
// Example: "XML" -> "Xml"
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return Upper(s[:size]) + Lower(s[size:])
}
