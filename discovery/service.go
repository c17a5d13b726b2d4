// Package discovery defines the service description model consumed by the
// code generator. A Service groups named resources and named schemas; the
// generator reads it and never mutates it.
package discovery

// Type kinds understood by the generator.
const (
	KindString  = "string"
	KindInteger = "integer"
	KindNumber  = "number"
	KindBoolean = "boolean"
	KindAny     = "any"
	KindArray   = "array"
	KindObject  = "object"
	KindRef     = "ref"
)

// Service is the root of a service description.
type Service struct {
	// Name is the API name (e.g., "plus", "tasks").
	Name string

	// Version is the API version (e.g., "v1").
	Version string

	// Title is the human-readable API title.
	Title string

	// Description documents the API.
	Description string

	// Resources are the top-level resources keyed by name.
	Resources *Map[*Resource]

	// Schemas are the record type definitions keyed by name.
	Schemas *Map[*Schema]
}

// ContainerName returns the service name.
func (s *Service) ContainerName() string {
	if s == nil {
		return ""
	}
	return s.Name
}

// ChildResources returns the top-level resources.
func (s *Service) ChildResources() *Map[*Resource] {
	if s == nil {
		return nil
	}
	return s.Resources
}

// Resource is a named grouping of operations, possibly with nested resources.
type Resource struct {
	// Name is the key of this resource in its parent's map.
	Name string

	// Description documents the resource.
	Description string

	// Methods are the operations of this resource keyed by name.
	Methods *Map[*Method]

	// Resources are nested resources keyed by name.
	Resources *Map[*Resource]
}

// ContainerName returns the resource name.
func (r *Resource) ContainerName() string {
	if r == nil {
		return ""
	}
	return r.Name
}

// ChildResources returns the nested resources.
func (r *Resource) ChildResources() *Map[*Resource] {
	if r == nil {
		return nil
	}
	return r.Resources
}

// Method is a single operation on a resource.
type Method struct {
	Name        string
	HTTPMethod  string
	Path        string
	Description string
}

// ResourceContainer is anything that exposes child resources: the service
// itself or a composite resource.
type ResourceContainer interface {
	ContainerName() string
	ChildResources() *Map[*Resource]
}

var (
	_ ResourceContainer = (*Service)(nil)
	_ ResourceContainer = (*Resource)(nil)
)

// Schema is a named record type definition.
type Schema struct {
	// Name is the key of this schema in the service's schema map.
	Name string

	// Description documents the schema.
	Description string

	// Properties are the record's properties in declaration order.
	Properties *Map[*Property]
}

// Property is a single typed property of a schema.
type Property struct {
	// Name is the serialized property name.
	Name string

	// Description documents the property.
	Description string

	// Type is the declared type of the property.
	Type TypeRef
}

// TypeRef is a declared property type.
type TypeRef struct {
	// Kind is one of the Kind* constants.
	Kind string

	// Format refines Kind (e.g., "int64", "date-time", "float").
	Format string

	// Ref names a sibling schema when Kind is KindRef.
	Ref string

	// Items is the element type when Kind is KindArray.
	Items *TypeRef

	// Values is the value type of a string-keyed map when Kind is KindObject.
	// Nil for a free-form object.
	Values *TypeRef
}
