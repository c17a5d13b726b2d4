package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToPascalCase joins the words of name with each word's first letter
// upper-cased. Words are separated by any rune that is not a letter or digit;
// existing humps are kept ("displayName" → "DisplayName", "user-id" → "UserId").
func ToPascalCase(name string) string {
	var b strings.Builder
	for _, word := range splitWords(name) {
		b.WriteString(upperFirst(word))
	}
	return b.String()
}

// ToCamelCase is ToPascalCase with the first letter lower-cased.
func ToCamelCase(name string) string {
	return lowerFirst(ToPascalCase(name))
}

func splitWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
