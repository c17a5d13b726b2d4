// Package testfixtures provides service descriptions used by the codegen tests.
package testfixtures

import "github.com/broady/discogen/discovery"

// FooBar returns a service with an empty schema Foo and a schema Bar with a
// single string property id.
func FooBar() *discovery.Service {
	return &discovery.Service{
		Name:      "foobar",
		Resources: discovery.NewMap[*discovery.Resource](),
		Schemas: Schemas(
			Schema("Foo"),
			Schema("Bar", Prop("id", String())),
		),
	}
}

// Plus returns a small social API with nested resources and schemas that
// reference each other.
func Plus() *discovery.Service {
	activities := Resource("activities",
		Method("list", "GET", "people/{userId}/activities/{collection}"),
		Method("get", "GET", "activities/{activityId}"),
	)
	activities.Resources.Set("attachments", Resource("attachments",
		Method("list", "GET", "activities/{activityId}/attachments"),
	))

	resources := discovery.NewMap[*discovery.Resource]()
	resources.Set("activities", activities)
	resources.Set("comments", Resource("comments", Method("list", "GET", "activities/{activityId}/comments")))
	resources.Set("people", Resource("people", Method("get", "GET", "people/{userId}")))

	person := Schema("Person",
		Prop("displayName", String()),
		Prop("id", String()),
		Prop("circledByCount", discovery.TypeRef{Kind: discovery.KindInteger}),
	)
	person.Description = "A person."
	return &discovery.Service{
		Name:      "plus",
		Version:   "v1",
		Title:     "Google+ API",
		Resources: resources,
		Schemas: Schemas(
			Schema("Activity",
				Prop("actor", Ref("Person")),
				Prop("id", String()),
				Prop("published", discovery.TypeRef{Kind: discovery.KindString, Format: "date-time"}),
				Prop("replies", discovery.TypeRef{Kind: discovery.KindString, Format: "int64"}),
			),
			Schema("ActivityFeed",
				Prop("items", Array(Ref("Activity"))),
				Prop("nextPageToken", String()),
				Prop("labels", Map(String())),
			),
			person,
		),
	}
}

// Colliding returns a service whose two resources map to the same class name.
func Colliding() *discovery.Service {
	resources := discovery.NewMap[*discovery.Resource]()
	resources.Set("my-resource", Resource("my-resource"))
	resources.Set("my_resource", Resource("my_resource"))
	return &discovery.Service{Name: "clash", Resources: resources}
}

// Schemas builds an ordered schema map.
func Schemas(schemas ...*discovery.Schema) *discovery.Map[*discovery.Schema] {
	m := discovery.NewMap[*discovery.Schema]()
	for _, s := range schemas {
		m.Set(s.Name, s)
	}
	return m
}

// Schema builds a schema with properties in the given order.
func Schema(name string, props ...*discovery.Property) *discovery.Schema {
	s := &discovery.Schema{Name: name, Properties: discovery.NewMap[*discovery.Property]()}
	for _, p := range props {
		s.Properties.Set(p.Name, p)
	}
	return s
}

// Prop builds a property.
func Prop(name string, typ discovery.TypeRef) *discovery.Property {
	return &discovery.Property{Name: name, Type: typ}
}

// Resource builds a resource with the given methods and no children.
func Resource(name string, methods ...*discovery.Method) *discovery.Resource {
	r := &discovery.Resource{
		Name:      name,
		Methods:   discovery.NewMap[*discovery.Method](),
		Resources: discovery.NewMap[*discovery.Resource](),
	}
	for _, m := range methods {
		r.Methods.Set(m.Name, m)
	}
	return r
}

// Method builds a method.
func Method(name, httpMethod, path string) *discovery.Method {
	return &discovery.Method{Name: name, HTTPMethod: httpMethod, Path: path}
}

// String returns the string type.
func String() discovery.TypeRef { return discovery.TypeRef{Kind: discovery.KindString} }

// Ref returns a reference to the named schema.
func Ref(schema string) discovery.TypeRef {
	return discovery.TypeRef{Kind: discovery.KindRef, Ref: schema}
}

// Array returns an array of elem.
func Array(elem discovery.TypeRef) discovery.TypeRef {
	return discovery.TypeRef{Kind: discovery.KindArray, Items: &elem}
}

// Map returns a string-keyed map of values.
func Map(values discovery.TypeRef) discovery.TypeRef {
	return discovery.TypeRef{Kind: discovery.KindObject, Values: &values}
}
