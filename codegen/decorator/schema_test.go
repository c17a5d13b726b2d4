package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/discogen"
	"github.com/broady/discogen/codegen/codedom"
	"github.com/broady/discogen/discovery"
)

var stringType = discovery.TypeRef{Kind: discovery.KindString}

func standardChain() []SchemaDecorator {
	return []SchemaDecorator{
		&PropertyFieldDecorator{},
		&PropertyDecorator{},
		&JSONPropertyAttributeDecorator{},
	}
}

func decorate(t *testing.T, schema *discovery.Schema, schemas *discovery.Map[*discovery.Schema], chain ...SchemaDecorator) *codedom.Class {
	t.Helper()
	class := codedom.NewClass(schema.Name)
	for _, d := range chain {
		require.NoError(t, d.DecorateClass(schema, class, schemas), d.DecoratorName())
	}
	return class
}

func TestSchemaDecorators_Standard(t *testing.T) {
	bar := schemaOf("Bar", prop{name: "id", typ: stringType})
	class := decorate(t, bar, schemaMap(bar), standardChain()...)

	require.Equal(t, 2, class.Len())

	field, ok := class.Field("id")
	require.True(t, ok)
	assert.Equal(t, codedom.Type("string"), field.Type)
	assert.Equal(t, codedom.AttrPrivate, field.Attributes)

	p, ok := class.Property("Id")
	require.True(t, ok)
	assert.Equal(t, field.Type, p.Type)
	assert.True(t, p.HasGet)
	assert.True(t, p.HasSet)
	ref := codedom.FieldRef{Name: "id"}
	assert.Equal(t, []codedom.Statement{codedom.Return{Value: ref}}, p.Get)
	assert.Equal(t, []codedom.Statement{codedom.Assign{Target: ref, Value: codedom.ValueRef{}}}, p.Set)

	require.Len(t, p.CustomAttributes, 1)
	assert.Equal(t, JSONPropertyAttribute, p.CustomAttributes[0].Name)
	assert.Equal(t, []codedom.AttributeArg{{Value: codedom.Primitive{Value: "id"}}}, p.CustomAttributes[0].Args)
}

func TestSchemaDecorators_EmptySchema(t *testing.T) {
	foo := schemaOf("Foo")
	class := decorate(t, foo, schemaMap(foo), standardChain()...)
	assert.Equal(t, 0, class.Len())
}

func TestSchemaDecorators_Order(t *testing.T) {
	s := schemaOf("Person",
		prop{name: "displayName", typ: stringType},
		prop{name: "age", typ: discovery.TypeRef{Kind: discovery.KindInteger}},
	)
	class := decorate(t, s, schemaMap(s), standardChain()...)

	var names []string
	for _, m := range class.Members() {
		names = append(names, m.MemberName())
	}
	assert.Equal(t, []string{"displayName", "age", "DisplayName", "Age"}, names)
}

func TestSchemaDecorators_UncasedPropertyNames(t *testing.T) {
	s := schemaOf("Asset",
		prop{name: "3dModel", typ: stringType},
		prop{name: "2fa", typ: discovery.TypeRef{Kind: discovery.KindBoolean}},
		prop{name: "活动", typ: stringType},
	)
	class := decorate(t, s, schemaMap(s), standardChain()...)

	var names []string
	for _, m := range class.Members() {
		names = append(names, m.MemberName())
	}
	assert.Equal(t, []string{"__3dModel", "__2fa", "_活动", "_3dModel", "_2fa", "活动"}, names)

	p, ok := class.Property("_3dModel")
	require.True(t, ok)
	assert.Equal(t, []codedom.Statement{codedom.Return{Value: codedom.FieldRef{Name: "__3dModel"}}}, p.Get)
	require.Len(t, p.CustomAttributes, 1)
	assert.Equal(t, []codedom.AttributeArg{{Value: codedom.Primitive{Value: "3dModel"}}}, p.CustomAttributes[0].Args)
}

func TestPropertyDecorator_RequiresField(t *testing.T) {
	bar := schemaOf("Bar", prop{name: "id", typ: stringType})
	class := codedom.NewClass("Bar")

	err := (&PropertyDecorator{}).DecorateClass(bar, class, schemaMap(bar))
	require.Error(t, err)
	assert.True(t, discogen.IsCode(err, discogen.CodeFailedPrecondition), "got %v", err)
	assert.Contains(t, err.Error(), `backing field "id" not found`)
	assert.Equal(t, 0, class.Len())
}

func TestJSONPropertyAttributeDecorator_RequiresProperty(t *testing.T) {
	bar := schemaOf("Bar", prop{name: "id", typ: stringType})
	class := decorate(t, bar, schemaMap(bar), &PropertyFieldDecorator{})

	err := (&JSONPropertyAttributeDecorator{}).DecorateClass(bar, class, schemaMap(bar))
	require.Error(t, err)
	assert.True(t, discogen.IsCode(err, discogen.CodeFailedPrecondition), "got %v", err)

	var genErr *discogen.Error
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "JSONPropertyAttributeDecorator", genErr.Details["decorator"])
}

func TestPropertyFieldDecorator_UnknownRef(t *testing.T) {
	s := schemaOf("Activity", prop{name: "actor", typ: discovery.TypeRef{Kind: discovery.KindRef, Ref: "Person"}})

	err := (&PropertyFieldDecorator{}).DecorateClass(s, codedom.NewClass("Activity"), schemaMap(s))
	require.Error(t, err)
	assert.True(t, discogen.IsCode(err, discogen.CodeFailedPrecondition), "got %v", err)
	assert.Contains(t, err.Error(), `unknown schema "Person"`)
}

func TestPropertyFieldDecorator_ResolvesRef(t *testing.T) {
	person := schemaOf("person")
	activity := schemaOf("Activity", prop{name: "actor", typ: discovery.TypeRef{Kind: discovery.KindRef, Ref: "person"}})
	class := decorate(t, activity, schemaMap(person, activity), &PropertyFieldDecorator{})

	field, ok := class.Field("actor")
	require.True(t, ok)
	assert.Equal(t, codedom.Type("Person"), field.Type)
}

func TestSchemaDecorators_CollidingPropertyNames(t *testing.T) {
	s := schemaOf("Bar",
		prop{name: "id", typ: stringType},
		prop{name: "Id", typ: stringType},
	)
	err := (&PropertyFieldDecorator{}).DecorateClass(s, codedom.NewClass("Bar"), schemaMap(s))
	assert.True(t, discogen.IsCode(err, discogen.CodeAlreadyExists), "got %v", err)
}

func TestSchemaDecorators_NilArguments(t *testing.T) {
	s := schemaOf("Bar")
	for _, d := range append(standardChain(), &DocumentationDecorator{}) {
		err := d.DecorateClass(nil, codedom.NewClass("X"), nil)
		assert.True(t, discogen.IsCode(err, discogen.CodeInvalidArgument), d.DecoratorName())

		err = d.DecorateClass(s, nil, nil)
		assert.True(t, discogen.IsCode(err, discogen.CodeInvalidArgument), d.DecoratorName())
	}
}

func TestDocumentationDecorator(t *testing.T) {
	s := schemaOf("Person",
		prop{name: "id", typ: stringType, desc: "The ID of the person."},
		prop{name: "age", typ: discovery.TypeRef{Kind: discovery.KindInteger}},
	)
	s.Description = "A person."

	chain := append(standardChain(), &DocumentationDecorator{})
	class := decorate(t, s, schemaMap(s), chain...)

	assert.Equal(t, "A person.", class.Doc().Text())
	p, _ := class.Property("Id")
	assert.Equal(t, "The ID of the person.", p.Doc.Text())
	f, _ := class.Field("id")
	assert.Equal(t, "The ID of the person.", f.Doc.Text())
	age, _ := class.Property("Age")
	assert.True(t, age.Doc.IsZero())
}

func TestDocumentationDecorator_NoMembers(t *testing.T) {
	s := schemaOf("Person", prop{name: "id", typ: stringType, desc: "x"})
	class := decorate(t, s, schemaMap(s), &DocumentationDecorator{})
	assert.Equal(t, 0, class.Len())
}

func TestDecoratorNames(t *testing.T) {
	names := map[string]Named{
		"PropertyFieldDecorator":         &PropertyFieldDecorator{},
		"PropertyDecorator":              &PropertyDecorator{},
		"JSONPropertyAttributeDecorator": &JSONPropertyAttributeDecorator{},
		"DocumentationDecorator":         &DocumentationDecorator{},
	}
	for want, d := range names {
		assert.Equal(t, want, d.DecoratorName())
	}
}
