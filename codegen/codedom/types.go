// Package codedom defines the in-memory code model produced by the generator:
// namespaces, classes and their members. Emitters turn it into source text.
package codedom

import "strings"

// TypeRef names a type in generated code.
type TypeRef struct {
	// Name is the type name (e.g., "string", "IList", "Activity").
	Name string

	// Args are generic type arguments (e.g., IList<string> has one).
	Args []TypeRef

	// Nullable marks a nullable value type (e.g., "long?").
	Nullable bool
}

// Type returns a TypeRef for a plain named type.
func Type(name string) TypeRef {
	return TypeRef{Name: name}
}

// NullableType returns a TypeRef for a nullable value type.
func NullableType(name string) TypeRef {
	return TypeRef{Name: name, Nullable: true}
}

// Generic returns a TypeRef for a generic type instantiation.
func Generic(name string, args ...TypeRef) TypeRef {
	return TypeRef{Name: name, Args: args}
}

// IsZero returns true if the reference names no type.
func (t TypeRef) IsZero() bool {
	return t.Name == "" && len(t.Args) == 0 && !t.Nullable
}

// String renders the reference in C#-like syntax, e.g. "IDictionary<string, long?>".
func (t TypeRef) String() string {
	var b strings.Builder
	b.WriteString(t.Name)
	if len(t.Args) > 0 {
		b.WriteByte('<')
		for i, arg := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteByte('>')
	}
	if t.Nullable {
		b.WriteByte('?')
	}
	return b.String()
}

// MemberAttributes is a set of visibility and modifier flags.
type MemberAttributes uint

const (
	AttrPublic MemberAttributes = 1 << iota
	AttrPrivate
	AttrFinal
	AttrVirtual
	AttrStatic
)

// Has reports whether all flags in other are set.
func (a MemberAttributes) Has(other MemberAttributes) bool {
	return a&other == other
}

// String returns the flags as space-separated words, e.g. "private final".
func (a MemberAttributes) String() string {
	var words []string
	if a.Has(AttrPublic) {
		words = append(words, "public")
	}
	if a.Has(AttrPrivate) {
		words = append(words, "private")
	}
	if a.Has(AttrStatic) {
		words = append(words, "static")
	}
	if a.Has(AttrFinal) {
		words = append(words, "final")
	}
	if a.Has(AttrVirtual) {
		words = append(words, "virtual")
	}
	return strings.Join(words, " ")
}

// Documentation holds a doc comment for a generated declaration.
type Documentation struct {
	// Summary is a single-sentence description.
	Summary string

	// Body is the complete text, possibly with several paragraphs.
	Body string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Summary == "" && d.Body == ""
}

// Text returns Body, or Summary when Body is empty.
func (d Documentation) Text() string {
	if d.Body != "" {
		return d.Body
	}
	return d.Summary
}
