package discovery

import (
	"slices"

	discoveryv1 "google.golang.org/api/discovery/v1"
)

// FromRestDescription converts a document fetched with the Google APIs
// Discovery Service client into a Service.
//
// RestDescription stores schemas and resources in Go maps, which carry no
// declaration order. Keys are sorted so generation stays deterministic.
// Use Load when the original document order matters.
func FromRestDescription(desc *discoveryv1.RestDescription) *Service {
	if desc == nil {
		return nil
	}
	svc := &Service{
		Name:        desc.Name,
		Version:     desc.Version,
		Title:       desc.Title,
		Description: desc.Description,
		Resources:   NewMap[*Resource](),
		Schemas:     NewMap[*Schema](),
	}
	for _, name := range sortedKeys(desc.Schemas) {
		js := desc.Schemas[name]
		schema := &Schema{
			Name:        name,
			Description: js.Description,
			Properties:  NewMap[*Property](),
		}
		for _, propName := range sortedKeys(js.Properties) {
			p := js.Properties[propName]
			schema.Properties.Set(propName, &Property{
				Name:        propName,
				Description: p.Description,
				Type:        typeFromJSONSchema(&p),
			})
		}
		svc.Schemas.Set(name, schema)
	}
	addRestResources(desc.Resources, svc.Resources)
	return svc
}

func addRestResources(from map[string]discoveryv1.RestResource, into *Map[*Resource]) {
	for _, name := range sortedKeys(from) {
		rr := from[name]
		res := &Resource{
			Name:      name,
			Methods:   NewMap[*Method](),
			Resources: NewMap[*Resource](),
		}
		for _, methodName := range sortedKeys(rr.Methods) {
			m := rr.Methods[methodName]
			res.Methods.Set(methodName, &Method{
				Name:        methodName,
				HTTPMethod:  m.HttpMethod,
				Path:        m.Path,
				Description: m.Description,
			})
		}
		addRestResources(rr.Resources, res.Resources)
		into.Set(name, res)
	}
}

func typeFromJSONSchema(js *discoveryv1.JsonSchema) TypeRef {
	switch {
	case js.Ref != "":
		return TypeRef{Kind: KindRef, Ref: js.Ref}
	case js.Type == KindArray:
		items := TypeRef{Kind: KindAny}
		if js.Items != nil {
			items = typeFromJSONSchema(js.Items)
		}
		return TypeRef{Kind: KindArray, Items: &items}
	case js.Type == KindObject:
		typ := TypeRef{Kind: KindObject}
		if js.AdditionalProperties != nil && len(js.Properties) == 0 {
			values := typeFromJSONSchema(js.AdditionalProperties)
			typ.Values = &values
		}
		return typ
	case js.Type == "":
		return TypeRef{Kind: KindAny}
	default:
		return TypeRef{Kind: js.Type, Format: js.Format}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
