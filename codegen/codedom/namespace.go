package codedom

import (
	"slices"

	"github.com/broady/discogen"
)

// Namespace is the output unit: a namespace-scoped set of finished classes
// plus the imports they need.
type Namespace struct {
	name    string
	imports []string
	classes []*Class
	names   map[string]bool
}

// NewNamespace returns an empty namespace.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		name:  name,
		names: make(map[string]bool),
	}
}

// Name returns the namespace name.
func (n *Namespace) Name() string { return n.name }

// AddImport appends an import declaration. Duplicates are ignored.
func (n *Namespace) AddImport(name string) {
	if slices.Contains(n.imports, name) {
		return
	}
	n.imports = append(n.imports, name)
}

// Imports returns the import declarations in insertion order.
func (n *Namespace) Imports() []string {
	return slices.Clone(n.imports)
}

// AddClass seals c and appends it. A class can belong to one namespace only,
// and class names must be unique within the namespace.
func (n *Namespace) AddClass(c *Class) error {
	if c == nil {
		return discogen.NewError(discogen.CodeInvalidArgument, "class is nil")
	}
	if c.sealed {
		return discogen.Errorf(discogen.CodeFailedPrecondition, "class %s is already sealed", c.name)
	}
	if n.names[c.name] {
		return discogen.Errorf(discogen.CodeAlreadyExists, "namespace %s already has a class named %q", n.name, c.name).
			WithDetail("class", c.name)
	}
	c.sealed = true
	n.names[c.name] = true
	n.classes = append(n.classes, c)
	return nil
}

// Classes returns the classes in insertion order. Returned classes are sealed.
func (n *Namespace) Classes() []*Class {
	return slices.Clone(n.classes)
}

// Class returns the named class.
func (n *Namespace) Class(name string) (*Class, bool) {
	for _, c := range n.classes {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}
