package decorator

import (
	"github.com/broady/discogen/codegen/codedom"
	"github.com/broady/discogen/codegen/naming"
	"github.com/broady/discogen/discovery"
)

// JSONPropertyAttribute is the serialization attribute naming the wire property.
const JSONPropertyAttribute = "Newtonsoft.Json.JsonPropertyAttribute"

// PropertyFieldDecorator adds one private storage field per schema property.
type PropertyFieldDecorator struct {
	// Namer derives field names. Defaults to the "Property" fallback namer.
	Namer naming.Namer

	// TypeNamer names referenced schema classes. It must match the namer the
	// schema generator uses for class names.
	TypeNamer naming.Namer
}

// DecoratorName implements Named.
func (d *PropertyFieldDecorator) DecoratorName() string { return "PropertyFieldDecorator" }

// DecorateClass implements SchemaDecorator.
func (d *PropertyFieldDecorator) DecorateClass(schema *discovery.Schema, class *codedom.Class, schemas *discovery.Map[*discovery.Schema]) error {
	if err := checkSchemaArgs(d, schema, class); err != nil {
		return err
	}
	n := namerOr(d.Namer, propertyNamer)

	ordinal := 1
	for _, prop := range schema.Properties.All() {
		typ, err := MapType(prop.Type, schemas, d.TypeNamer)
		if err != nil {
			return preconditionf(d, "schema %s property %q: %v", schema.Name, prop.Name, err)
		}
		field := &codedom.Field{
			Name:       n.FieldName(prop.Name, ordinal),
			Type:       typ,
			Attributes: codedom.AttrPrivate,
		}
		if err := class.AddMember(field); err != nil {
			return err
		}
		ordinal++
	}
	return nil
}

// PropertyDecorator adds one public get/set property per schema property,
// forwarding to the field PropertyFieldDecorator added. It must run after it.
type PropertyDecorator struct {
	// Namer derives property and field names. Defaults to the "Property" fallback namer.
	Namer naming.Namer
}

// DecoratorName implements Named.
func (d *PropertyDecorator) DecoratorName() string { return "PropertyDecorator" }

// DecorateClass implements SchemaDecorator.
func (d *PropertyDecorator) DecorateClass(schema *discovery.Schema, class *codedom.Class, _ *discovery.Map[*discovery.Schema]) error {
	if err := checkSchemaArgs(d, schema, class); err != nil {
		return err
	}
	n := namerOr(d.Namer, propertyNamer)

	ordinal := 1
	for _, prop := range schema.Properties.All() {
		fieldName := n.FieldName(prop.Name, ordinal)
		field, ok := class.Field(fieldName)
		if !ok {
			return preconditionf(d, "schema %s property %q: backing field %q not found", schema.Name, prop.Name, fieldName)
		}
		ref := codedom.FieldRef{Name: fieldName}
		property := &codedom.Property{
			Name:       n.ClassName(prop.Name, ordinal),
			Type:       field.Type,
			Attributes: codedom.AttrPublic | codedom.AttrVirtual,
			HasGet:     true,
			HasSet:     true,
			Get:        []codedom.Statement{codedom.Return{Value: ref}},
			Set:        []codedom.Statement{codedom.Assign{Target: ref, Value: codedom.ValueRef{}}},
		}
		if err := class.AddMember(property); err != nil {
			return err
		}
		ordinal++
	}
	return nil
}

// JSONPropertyAttributeDecorator annotates every schema property with the
// serialization attribute carrying its wire name. It must run after
// PropertyDecorator.
type JSONPropertyAttributeDecorator struct {
	// Namer derives property names. Defaults to the "Property" fallback namer.
	Namer naming.Namer
}

// DecoratorName implements Named.
func (d *JSONPropertyAttributeDecorator) DecoratorName() string {
	return "JSONPropertyAttributeDecorator"
}

// DecorateClass implements SchemaDecorator.
func (d *JSONPropertyAttributeDecorator) DecorateClass(schema *discovery.Schema, class *codedom.Class, _ *discovery.Map[*discovery.Schema]) error {
	if err := checkSchemaArgs(d, schema, class); err != nil {
		return err
	}
	n := namerOr(d.Namer, propertyNamer)

	ordinal := 1
	for _, prop := range schema.Properties.All() {
		name := n.ClassName(prop.Name, ordinal)
		if _, ok := class.Property(name); !ok {
			return preconditionf(d, "schema %s property %q: property %q not found", schema.Name, prop.Name, name)
		}
		attr := codedom.Attribute{
			Name: JSONPropertyAttribute,
			Args: []codedom.AttributeArg{{Value: codedom.Primitive{Value: prop.Name}}},
		}
		if err := class.Annotate(name, attr); err != nil {
			return err
		}
		ordinal++
	}
	return nil
}

// DocumentationDecorator copies schema and property descriptions onto the
// class and onto the members other decorators generated for each property.
// Members that do not exist are skipped, so it can run anywhere in the list.
type DocumentationDecorator struct {
	// Namer derives property and field names. Defaults to the "Property" fallback namer.
	Namer naming.Namer
}

// DecoratorName implements Named.
func (d *DocumentationDecorator) DecoratorName() string { return "DocumentationDecorator" }

// DecorateClass implements SchemaDecorator.
func (d *DocumentationDecorator) DecorateClass(schema *discovery.Schema, class *codedom.Class, _ *discovery.Map[*discovery.Schema]) error {
	if err := checkSchemaArgs(d, schema, class); err != nil {
		return err
	}
	n := namerOr(d.Namer, propertyNamer)

	if schema.Description != "" {
		if err := class.SetDoc(codedom.Documentation{Body: schema.Description}); err != nil {
			return err
		}
	}

	ordinal := 1
	for _, prop := range schema.Properties.All() {
		if prop.Description != "" {
			doc := codedom.Documentation{Body: prop.Description}
			for _, name := range []string{n.ClassName(prop.Name, ordinal), n.FieldName(prop.Name, ordinal)} {
				if !class.HasMember(name) {
					continue
				}
				if err := class.Document(name, doc); err != nil {
					return err
				}
			}
		}
		ordinal++
	}
	return nil
}

var (
	_ SchemaDecorator = (*PropertyFieldDecorator)(nil)
	_ SchemaDecorator = (*PropertyDecorator)(nil)
	_ SchemaDecorator = (*JSONPropertyAttributeDecorator)(nil)
	_ SchemaDecorator = (*DocumentationDecorator)(nil)
)
