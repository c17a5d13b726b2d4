package decorator

import (
	"github.com/broady/discogen/discovery"
)

func resources(names ...string) *discovery.Map[*discovery.Resource] {
	m := discovery.NewMap[*discovery.Resource]()
	for _, name := range names {
		m.Set(name, &discovery.Resource{Name: name})
	}
	return m
}

type prop struct {
	name string
	typ  discovery.TypeRef
	desc string
}

func schemaOf(name string, props ...prop) *discovery.Schema {
	s := &discovery.Schema{Name: name, Properties: discovery.NewMap[*discovery.Property]()}
	for _, p := range props {
		s.Properties.Set(p.name, &discovery.Property{Name: p.name, Type: p.typ, Description: p.desc})
	}
	return s
}

func schemaMap(schemas ...*discovery.Schema) *discovery.Map[*discovery.Schema] {
	m := discovery.NewMap[*discovery.Schema]()
	for _, s := range schemas {
		m.Set(s.Name, s)
	}
	return m
}

// constNamer returns the same identifiers for every input.
type constNamer struct{}

func (constNamer) ClassName(string, int) string { return "Same" }
func (constNamer) FieldName(string, int) string { return "same" }
