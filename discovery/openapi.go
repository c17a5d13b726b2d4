package discovery

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/broady/discogen"
)

// LoadOpenAPIFile loads an OpenAPI 3 document and converts it with FromOpenAPI.
func LoadOpenAPIFile(path string) (*Service, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return FromOpenAPI(doc)
}

// FromOpenAPI converts an OpenAPI 3 document into a Service.
//
// Component schemas become schemas, sorted by name. Operation tags become
// top-level resources: tags declared in the document's tag list come first in
// declared order, undeclared tags follow sorted. Untagged operations are
// grouped under a resource named after the first path segment.
func FromOpenAPI(doc *openapi3.T) (*Service, error) {
	if doc == nil {
		return nil, discogen.NewError(discogen.CodeInvalidArgument, "openapi document is nil")
	}
	svc := &Service{
		Resources: NewMap[*Resource](),
		Schemas:   NewMap[*Schema](),
	}
	if doc.Info != nil {
		svc.Name = serviceNameFromTitle(doc.Info.Title)
		svc.Title = doc.Info.Title
		svc.Version = doc.Info.Version
		svc.Description = doc.Info.Description
	}

	if doc.Components != nil {
		for _, name := range sortedKeys(doc.Components.Schemas) {
			ref := doc.Components.Schemas[name]
			if ref == nil || ref.Value == nil {
				return nil, discogen.Errorf(discogen.CodeInvalidArgument, "schema %q has no definition", name)
			}
			schema := &Schema{
				Name:        name,
				Description: ref.Value.Description,
				Properties:  NewMap[*Property](),
			}
			for _, propName := range sortedKeys(ref.Value.Properties) {
				p := ref.Value.Properties[propName]
				prop := &Property{Name: propName, Type: typeFromSchemaRef(p)}
				if p != nil && p.Value != nil {
					prop.Description = p.Value.Description
				}
				schema.Properties.Set(propName, prop)
			}
			svc.Schemas.Set(name, schema)
		}
	}

	for _, tag := range doc.Tags {
		if tag != nil && tag.Name != "" {
			svc.Resources.Set(tag.Name, newOpenAPIResource(tag.Name, tag.Description))
		}
	}

	if doc.Paths == nil {
		return svc, nil
	}
	pending := make(map[string]*Resource)
	paths := doc.Paths.Map()
	for _, path := range sortedKeys(paths) {
		item := paths[path]
		if item == nil {
			continue
		}
		ops := item.Operations()
		for _, httpMethod := range sortedKeys(ops) {
			op := ops[httpMethod]
			group := resourceNameForPath(path)
			if len(op.Tags) > 0 {
				group = op.Tags[0]
			}
			res, ok := svc.Resources.Get(group)
			if !ok {
				// Undeclared tags are added after the pass so they sort after declared ones.
				if res, ok = pending[group]; !ok {
					res = newOpenAPIResource(group, "")
					pending[group] = res
				}
			}
			name := op.OperationID
			if name == "" {
				name = strings.ToLower(httpMethod) + path
			}
			res.Methods.Set(name, &Method{
				Name:        name,
				HTTPMethod:  httpMethod,
				Path:        path,
				Description: op.Summary,
			})
		}
	}
	for _, group := range sortedKeys(pending) {
		svc.Resources.Set(group, pending[group])
	}
	return svc, nil
}

func newOpenAPIResource(name, description string) *Resource {
	return &Resource{
		Name:        name,
		Description: description,
		Methods:     NewMap[*Method](),
		Resources:   NewMap[*Resource](),
	}
}

// resourceNameForPath returns the first non-parameter segment of path.
func resourceNameForPath(path string) string {
	for _, seg := range strings.Split(path, "/") {
		if seg != "" && !strings.HasPrefix(seg, "{") {
			return seg
		}
	}
	return "default"
}

// serviceNameFromTitle lower-cases the title and drops everything but letters and digits.
func serviceNameFromTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func typeFromSchemaRef(ref *openapi3.SchemaRef) TypeRef {
	if ref == nil {
		return TypeRef{Kind: KindAny}
	}
	if ref.Ref != "" {
		return TypeRef{Kind: KindRef, Ref: ref.Ref[strings.LastIndex(ref.Ref, "/")+1:]}
	}
	s := ref.Value
	if s == nil || s.Type == nil || len(s.Type.Slice()) == 0 {
		return TypeRef{Kind: KindAny}
	}
	switch {
	case s.Type.Is(openapi3.TypeArray):
		items := typeFromSchemaRef(s.Items)
		return TypeRef{Kind: KindArray, Items: &items}
	case s.Type.Is(openapi3.TypeObject):
		typ := TypeRef{Kind: KindObject}
		if s.AdditionalProperties.Schema != nil && len(s.Properties) == 0 {
			values := typeFromSchemaRef(s.AdditionalProperties.Schema)
			typ.Values = &values
		}
		return typ
	case s.Type.Is(openapi3.TypeString):
		return TypeRef{Kind: KindString, Format: s.Format}
	case s.Type.Is(openapi3.TypeInteger):
		return TypeRef{Kind: KindInteger, Format: s.Format}
	case s.Type.Is(openapi3.TypeNumber):
		return TypeRef{Kind: KindNumber, Format: s.Format}
	case s.Type.Is(openapi3.TypeBoolean):
		return TypeRef{Kind: KindBoolean}
	default:
		return TypeRef{Kind: KindAny}
	}
}
