package codedom

import (
	"github.com/broady/discogen"
)

// Class is one generated class under construction.
//
// A Class is owned by the generation call that created it. Decorators may add
// members and annotate existing ones; nothing can remove or rename a member.
// Adding the class to a Namespace seals it, after which every mutation fails.
// Accessors return copies, so callers cannot alter a class behind its back.
type Class struct {
	name    string
	ordinal int
	doc     Documentation
	members []Member
	index   map[string]int
	sealed  bool
}

// NewClass returns an empty, unsealed class container.
func NewClass(name string) *Class {
	return &Class{
		name:  name,
		index: make(map[string]int),
	}
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Ordinal returns the 1-based position of the resource or schema this class
// was generated for, or 0 when none was recorded.
func (c *Class) Ordinal() int { return c.ordinal }

// SetOrdinal records the ordinal used to derive fallback names.
func (c *Class) SetOrdinal(ordinal int) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	c.ordinal = ordinal
	return nil
}

// Doc returns the class documentation.
func (c *Class) Doc() Documentation { return c.doc }

// SetDoc replaces the class documentation.
func (c *Class) SetDoc(doc Documentation) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	c.doc = doc
	return nil
}

// Sealed reports whether the class has been handed to a Namespace.
func (c *Class) Sealed() bool { return c.sealed }

// AddMember appends m. The class keeps its own copy.
// Member names must be non-empty and unique within the class.
func (c *Class) AddMember(m Member) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if m == nil {
		return discogen.NewError(discogen.CodeInvalidArgument, "member is nil")
	}
	name := m.MemberName()
	if name == "" {
		return discogen.Errorf(discogen.CodeInvalidArgument, "class %s: %s has no name", c.name, m.Kind())
	}
	if _, exists := c.index[name]; exists {
		return discogen.Errorf(discogen.CodeAlreadyExists, "class %s already has a member named %q", c.name, name).
			WithDetail("member", name)
	}
	c.index[name] = len(c.members)
	c.members = append(c.members, m.clone())
	return nil
}

// Annotate appends attr to the custom attributes of the named member.
func (c *Class) Annotate(memberName string, attr Attribute) error {
	m, err := c.mutableMember(memberName)
	if err != nil {
		return err
	}
	switch m := m.(type) {
	case *Field:
		m.CustomAttributes = append(m.CustomAttributes, attr.clone())
	case *Property:
		m.CustomAttributes = append(m.CustomAttributes, attr.clone())
	}
	return nil
}

// Document replaces the documentation of the named member.
func (c *Class) Document(memberName string, doc Documentation) error {
	m, err := c.mutableMember(memberName)
	if err != nil {
		return err
	}
	switch m := m.(type) {
	case *Field:
		m.Doc = doc
	case *Property:
		m.Doc = doc
	}
	return nil
}

// Len returns the number of members.
func (c *Class) Len() int { return len(c.members) }

// Members returns copies of all members in insertion order.
func (c *Class) Members() []Member {
	out := make([]Member, len(c.members))
	for i, m := range c.members {
		out[i] = m.clone()
	}
	return out
}

// HasMember reports whether a member with the given name exists.
func (c *Class) HasMember(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Field returns a copy of the named field.
func (c *Class) Field(name string) (*Field, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	f, ok := c.members[i].(*Field)
	if !ok {
		return nil, false
	}
	return f.clone().(*Field), true
}

// Property returns a copy of the named property.
func (c *Class) Property(name string) (*Property, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	p, ok := c.members[i].(*Property)
	if !ok {
		return nil, false
	}
	return p.clone().(*Property), true
}

func (c *Class) mutableMember(name string) (Member, error) {
	if err := c.checkMutable(); err != nil {
		return nil, err
	}
	i, ok := c.index[name]
	if !ok {
		return nil, discogen.Errorf(discogen.CodeNotFound, "class %s has no member named %q", c.name, name)
	}
	return c.members[i], nil
}

func (c *Class) checkMutable() error {
	if c.sealed {
		return discogen.Errorf(discogen.CodeFailedPrecondition, "class %s is sealed", c.name)
	}
	return nil
}
