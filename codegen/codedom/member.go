package codedom

import "slices"

// MemberKind identifies the category of a class member.
type MemberKind int

const (
	KindField MemberKind = iota
	KindProperty
)

// String returns the string representation of the member kind.
func (k MemberKind) String() string {
	switch k {
	case KindField:
		return "Field"
	case KindProperty:
		return "Property"
	default:
		return "Unknown"
	}
}

// Member is a declaration inside a class. It is implemented only by *Field
// and *Property.
type Member interface {
	// Kind returns the member kind for type switching.
	Kind() MemberKind

	// MemberName returns the declared identifier.
	MemberName() string

	// clone returns a deep copy so accessors never hand out internal state.
	clone() Member
}

// Attribute is a custom attribute (annotation) attached to a member,
// e.g. a serialization attribute naming the wire property.
type Attribute struct {
	// Name is the fully qualified attribute type name.
	Name string

	// Args are the constructor arguments in order.
	Args []AttributeArg
}

// AttributeArg is a single attribute argument. Name is empty for positional
// arguments.
type AttributeArg struct {
	Name  string
	Value Expr
}

func (a Attribute) clone() Attribute {
	a.Args = slices.Clone(a.Args)
	return a
}

// Field is a storage field.
type Field struct {
	Name             string
	Type             TypeRef
	Attributes       MemberAttributes
	CustomAttributes []Attribute
	Doc              Documentation
}

// Kind returns KindField.
func (f *Field) Kind() MemberKind { return KindField }

// MemberName returns the field name.
func (f *Field) MemberName() string { return f.Name }

func (f *Field) clone() Member {
	c := *f
	c.Type = cloneTypeRef(f.Type)
	c.CustomAttributes = cloneAttributes(f.CustomAttributes)
	return &c
}

// Property is an accessor pair. A property without HasSet is read-only.
type Property struct {
	Name             string
	Type             TypeRef
	Attributes       MemberAttributes
	HasGet           bool
	HasSet           bool
	Get              []Statement
	Set              []Statement
	CustomAttributes []Attribute
	Doc              Documentation
}

// Kind returns KindProperty.
func (p *Property) Kind() MemberKind { return KindProperty }

// MemberName returns the property name.
func (p *Property) MemberName() string { return p.Name }

func (p *Property) clone() Member {
	c := *p
	c.Type = cloneTypeRef(p.Type)
	c.Get = slices.Clone(p.Get)
	c.Set = slices.Clone(p.Set)
	c.CustomAttributes = cloneAttributes(p.CustomAttributes)
	return &c
}

var (
	_ Member = (*Field)(nil)
	_ Member = (*Property)(nil)
)

func cloneTypeRef(t TypeRef) TypeRef {
	if t.Args == nil {
		return t
	}
	args := make([]TypeRef, len(t.Args))
	for i, a := range t.Args {
		args[i] = cloneTypeRef(a)
	}
	t.Args = args
	return t
}

func cloneAttributes(attrs []Attribute) []Attribute {
	if attrs == nil {
		return nil
	}
	out := make([]Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = a.clone()
	}
	return out
}
