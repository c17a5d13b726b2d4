package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/discogen"
	"github.com/broady/discogen/codegen/codedom"
	"github.com/broady/discogen/discovery"
)

func TestResourcePropertyDecorator_Order(t *testing.T) {
	svc := &discovery.Service{Name: "plus", Resources: resources("Activities", "Comments")}
	class := codedom.NewClass("PlusService")

	d := &ResourcePropertyDecorator{}
	require.NoError(t, d.DecorateClass(svc, class))

	members := class.Members()
	require.Len(t, members, 4)

	type entry struct {
		kind codedom.MemberKind
		name string
	}
	var got []entry
	for _, m := range members {
		got = append(got, entry{m.Kind(), m.MemberName()})
	}
	assert.Equal(t, []entry{
		{codedom.KindProperty, "Activities"},
		{codedom.KindField, "activities"},
		{codedom.KindProperty, "Comments"},
		{codedom.KindField, "comments"},
	}, got)
}

func TestResourcePropertyDecorator_ReadOnlyForwardingProperty(t *testing.T) {
	svc := &discovery.Service{Resources: resources("activities", "comments", "people")}
	class := codedom.NewClass("Service")
	require.NoError(t, (&ResourcePropertyDecorator{}).DecorateClass(svc, class))

	for _, name := range []string{"activities", "comments", "people"} {
		field, ok := class.Field(name)
		require.True(t, ok, "field %s", name)
		assert.Equal(t, codedom.AttrPrivate|codedom.AttrFinal, field.Attributes)

		propName := field.Type.Name
		p, ok := class.Property(propName)
		require.True(t, ok, "property %s", propName)
		assert.True(t, p.HasGet)
		assert.False(t, p.HasSet, "resource properties are read-only")
		assert.Empty(t, p.Set)
		assert.True(t, p.Attributes.Has(codedom.AttrPublic))
		assert.Equal(t, field.Type, p.Type)
		assert.Equal(t, []codedom.Statement{codedom.Return{Value: codedom.FieldRef{Name: name}}}, p.Get)
	}
}

func TestResourcePropertyDecorator_MemberCount(t *testing.T) {
	for n := 0; n <= 5; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('a'+i)) + "items"
		}
		res := &discovery.Resource{Name: "parent", Resources: resources(names...)}
		class := codedom.NewClass("Parent")

		require.NoError(t, (&ResourcePropertyDecorator{}).DecorateClass(res, class))
		assert.Equal(t, 2*n, class.Len(), "N=%d", n)
	}
}

func TestResourcePropertyDecorator_NoChildren(t *testing.T) {
	class := codedom.NewClass("Empty")
	require.NoError(t, class.AddMember(&codedom.Field{Name: "existing"}))

	for _, container := range []discovery.ResourceContainer{
		&discovery.Service{},
		&discovery.Resource{Resources: discovery.NewMap[*discovery.Resource]()},
	} {
		require.NoError(t, (&ResourcePropertyDecorator{}).DecorateClass(container, class))
	}
	assert.Equal(t, 1, class.Len())
}

func TestResourcePropertyDecorator_OrdinalFallback(t *testing.T) {
	svc := &discovery.Service{Resources: resources("activities", "%%", "")}
	class := codedom.NewClass("Service")
	require.NoError(t, (&ResourcePropertyDecorator{}).DecorateClass(svc, class))

	var names []string
	for _, m := range class.Members() {
		names = append(names, m.MemberName())
	}
	assert.Equal(t, []string{"Activities", "activities", "Resource2", "resource2", "Resource3", "resource3"}, names)
}

func TestResourcePropertyDecorator_OrdinalRestartsPerContainer(t *testing.T) {
	nested := &discovery.Resource{Name: "activities", Resources: resources("@")}
	svc := &discovery.Service{Resources: resources("@", "x")}
	svc.Resources.Set("activities", nested)

	svcClass := codedom.NewClass("Service")
	resClass := codedom.NewClass("Activities")
	d := &ResourcePropertyDecorator{}
	require.NoError(t, d.DecorateClass(svc, svcClass))
	require.NoError(t, d.DecorateClass(nested, resClass))

	assert.True(t, svcClass.HasMember("Resource1"))
	assert.True(t, resClass.HasMember("Resource1"), "ordinals restart at 1 for each container")
}

func TestResourcePropertyDecorator_CollisionFails(t *testing.T) {
	svc := &discovery.Service{Resources: resources("a", "b")}
	class := codedom.NewClass("Service")

	err := (&ResourcePropertyDecorator{Namer: constNamer{}}).DecorateClass(svc, class)
	require.Error(t, err)
	assert.True(t, discogen.IsCode(err, discogen.CodeAlreadyExists), "got %v", err)
}

func TestResourcePropertyDecorator_NilArguments(t *testing.T) {
	d := &ResourcePropertyDecorator{}
	err := d.DecorateClass(nil, codedom.NewClass("X"))
	assert.True(t, discogen.IsCode(err, discogen.CodeInvalidArgument))

	err = d.DecorateClass(&discovery.Service{}, nil)
	assert.True(t, discogen.IsCode(err, discogen.CodeInvalidArgument))
}

func TestResourcePropertyDecorator_Name(t *testing.T) {
	assert.Equal(t, "ResourcePropertyDecorator", (&ResourcePropertyDecorator{}).DecoratorName())
}

func TestResourcePropertyDecorator_UncasedNames(t *testing.T) {
	svc := &discovery.Service{Resources: resources("2fa", "3dModel", "活动")}
	class := codedom.NewClass("Service")
	require.NoError(t, (&ResourcePropertyDecorator{}).DecorateClass(svc, class))

	var got []string
	for _, m := range class.Members() {
		got = append(got, m.MemberName())
	}
	assert.Equal(t, []string{"_2fa", "__2fa", "_3dModel", "__3dModel", "活动", "_活动"}, got)

	p, ok := class.Property("活动")
	require.True(t, ok)
	assert.Equal(t, []codedom.Statement{codedom.Return{Value: codedom.FieldRef{Name: "_活动"}}}, p.Get)
}
