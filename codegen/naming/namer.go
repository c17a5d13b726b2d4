package naming

import (
	"strconv"
	"strings"
	"unicode"
)

// Namer maps an API-level name and its 1-based ordinal among its siblings to
// source identifiers. Implementations must be pure: the same input always
// yields the same identifier.
type Namer interface {
	// ClassName returns a type or public member identifier.
	ClassName(name string, ordinal int) string

	// FieldName returns a private storage field identifier.
	FieldName(name string, ordinal int) string
}

// Standard is the default Namer. Class names are PascalCase and field names
// camelCase. When a name contains no letters at all, the identifier falls
// back to Fallback followed by the ordinal ("Resource2" / "resource2"), which
// keeps siblings distinct.
//
// A field name never equals the class name derived from the same input.
// Where casing cannot tell them apart (a leading digit, or letters without
// case such as "活动") the field gets an extra "_" prefix: "_2fa" / "__2fa",
// "活动" / "_活动". Casing never yields a leading underscore before a
// letter or a double underscore, so the prefixed form cannot collide with a
// sibling.
type Standard struct {
	// Fallback is the prefix for ordinal-based names. Defaults to "Member".
	Fallback string
}

var _ Namer = Standard{}

// ClassName implements Namer.
func (s Standard) ClassName(name string, ordinal int) string {
	id := ToPascalCase(name)
	if !hasLetter(id) {
		return upperFirst(s.fallback()) + strconv.Itoa(ordinal)
	}
	return finish(id)
}

// FieldName implements Namer.
func (s Standard) FieldName(name string, ordinal int) string {
	id := ToCamelCase(name)
	if !hasLetter(id) {
		return lowerFirst(s.fallback()) + strconv.Itoa(ordinal)
	}
	field := finish(id)
	if field == s.ClassName(name, ordinal) {
		return "_" + field
	}
	return field
}

func (s Standard) fallback() string {
	if s.Fallback == "" {
		return "Member"
	}
	return s.Fallback
}

func finish(id string) string {
	if unicode.IsDigit([]rune(id)[0]) {
		id = "_" + id
	}
	return EscapeReserved(id)
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
