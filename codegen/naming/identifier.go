// Package naming derives source identifiers from API-level names.
package naming

import (
	"strings"
	"unicode"
)

// C# reserved keywords.
var reservedWords = map[string]bool{
	"abstract":   true,
	"as":         true,
	"base":       true,
	"bool":       true,
	"break":      true,
	"byte":       true,
	"case":       true,
	"catch":      true,
	"char":       true,
	"checked":    true,
	"class":      true,
	"const":      true,
	"continue":   true,
	"decimal":    true,
	"default":    true,
	"delegate":   true,
	"do":         true,
	"double":     true,
	"else":       true,
	"enum":       true,
	"event":      true,
	"explicit":   true,
	"extern":     true,
	"false":      true,
	"finally":    true,
	"fixed":      true,
	"float":      true,
	"for":        true,
	"foreach":    true,
	"goto":       true,
	"if":         true,
	"implicit":   true,
	"in":         true,
	"int":        true,
	"interface":  true,
	"internal":   true,
	"is":         true,
	"lock":       true,
	"long":       true,
	"namespace":  true,
	"new":        true,
	"null":       true,
	"object":     true,
	"operator":   true,
	"out":        true,
	"override":   true,
	"params":     true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"readonly":   true,
	"ref":        true,
	"return":     true,
	"sbyte":      true,
	"sealed":     true,
	"short":      true,
	"sizeof":     true,
	"stackalloc": true,
	"static":     true,
	"string":     true,
	"struct":     true,
	"switch":     true,
	"this":       true,
	"throw":      true,
	"true":       true,
	"try":        true,
	"typeof":     true,
	"uint":       true,
	"ulong":      true,
	"unchecked":  true,
	"unsafe":     true,
	"ushort":     true,
	"using":      true,
	"virtual":    true,
	"void":       true,
	"volatile":   true,
	"while":      true,
}

// IsReserved reports whether name is a reserved keyword.
func IsReserved(name string) bool {
	return reservedWords[name]
}

// EscapeReserved escapes a reserved word by appending an underscore.
func EscapeReserved(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}

// IsValidIdentifier reports whether name can be used as an identifier as-is.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !isIdentRune(r) {
			return false
		}
	}
	return !reservedWords[name]
}

// Sanitize makes name a valid identifier: invalid characters become
// underscores, a leading digit gets an underscore prefix and reserved words
// are escaped.
func Sanitize(name string) string {
	if name == "" {
		return "_"
	}

	var result strings.Builder

	if unicode.IsDigit([]rune(name)[0]) {
		result.WriteRune('_')
	}
	for _, r := range name {
		if isIdentRune(r) {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}

	return EscapeReserved(result.String())
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
