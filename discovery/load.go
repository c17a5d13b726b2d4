package discovery

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/broady/discogen"
)

// LoadFile reads a discovery-style document (JSON or YAML) from path.
func LoadFile(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	svc, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return svc, nil
}

// Load decodes a discovery-style document from r.
//
// The document is decoded into a yaml.Node tree rather than Go maps so that
// the declaration order of schemas, resources, methods and properties is
// preserved. JSON input works because JSON is valid YAML. Unknown keys are
// ignored.
func Load(r io.Reader) (*Service, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, discogen.NewError(discogen.CodeInvalidArgument, "empty document")
		}
		return nil, discogen.Errorf(discogen.CodeInvalidArgument, "decode document: %v", err)
	}

	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolve(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, nodeError(root, "document must be an object")
	}

	svc := &Service{
		Resources: NewMap[*Resource](),
		Schemas:   NewMap[*Schema](),
	}
	err := eachPair(root, func(key string, value *yaml.Node) error {
		switch key {
		case "name":
			return decodeScalar(value, &svc.Name)
		case "version":
			return decodeScalar(value, &svc.Version)
		case "title":
			return decodeScalar(value, &svc.Title)
		case "description":
			return decodeScalar(value, &svc.Description)
		case "schemas":
			return eachPair(value, func(name string, node *yaml.Node) error {
				schema, err := decodeSchema(name, node)
				if err != nil {
					return err
				}
				svc.Schemas.Set(name, schema)
				return nil
			})
		case "resources":
			return decodeResources(value, svc.Resources)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func decodeResources(node *yaml.Node, into *Map[*Resource]) error {
	return eachPair(node, func(name string, value *yaml.Node) error {
		res := &Resource{
			Name:      name,
			Methods:   NewMap[*Method](),
			Resources: NewMap[*Resource](),
		}
		err := eachPair(value, func(key string, v *yaml.Node) error {
			switch key {
			case "description":
				return decodeScalar(v, &res.Description)
			case "methods":
				return eachPair(v, func(methodName string, m *yaml.Node) error {
					method, err := decodeMethod(methodName, m)
					if err != nil {
						return err
					}
					res.Methods.Set(methodName, method)
					return nil
				})
			case "resources":
				return decodeResources(v, res.Resources)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("resource %q: %w", name, err)
		}
		into.Set(name, res)
		return nil
	})
}

func decodeMethod(name string, node *yaml.Node) (*Method, error) {
	m := &Method{Name: name}
	err := eachPair(node, func(key string, v *yaml.Node) error {
		switch key {
		case "httpMethod":
			return decodeScalar(v, &m.HTTPMethod)
		case "path":
			return decodeScalar(v, &m.Path)
		case "description":
			return decodeScalar(v, &m.Description)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("method %q: %w", name, err)
	}
	return m, nil
}

func decodeSchema(name string, node *yaml.Node) (*Schema, error) {
	schema := &Schema{
		Name:       name,
		Properties: NewMap[*Property](),
	}
	err := eachPair(node, func(key string, v *yaml.Node) error {
		switch key {
		case "description":
			return decodeScalar(v, &schema.Description)
		case "properties":
			return eachPair(v, func(propName string, p *yaml.Node) error {
				prop := &Property{Name: propName}
				if err := eachPair(p, func(k string, pv *yaml.Node) error {
					if k == "description" {
						return decodeScalar(pv, &prop.Description)
					}
					return nil
				}); err != nil {
					return err
				}
				typ, err := decodeTypeRef(p)
				if err != nil {
					return fmt.Errorf("property %q: %w", propName, err)
				}
				prop.Type = typ
				schema.Properties.Set(propName, prop)
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("schema %q: %w", name, err)
	}
	return schema, nil
}

// decodeTypeRef reads the type portion of a JSON schema node.
func decodeTypeRef(node *yaml.Node) (TypeRef, error) {
	var (
		typ     TypeRef
		kind    string
		ref     string
		items   *yaml.Node
		values  *yaml.Node
		hasProp bool
	)
	err := eachPair(node, func(key string, v *yaml.Node) error {
		switch key {
		case "type":
			return decodeScalar(v, &kind)
		case "format":
			return decodeScalar(v, &typ.Format)
		case "$ref":
			return decodeScalar(v, &ref)
		case "items":
			items = v
		case "additionalProperties":
			values = v
		case "properties":
			hasProp = true
		}
		return nil
	})
	if err != nil {
		return TypeRef{}, err
	}

	switch {
	case ref != "":
		typ.Kind = KindRef
		typ.Ref = ref
	case kind == "":
		typ.Kind = KindAny
	case kind == KindArray:
		typ.Kind = KindArray
		if items == nil {
			typ.Items = &TypeRef{Kind: KindAny}
			break
		}
		elem, err := decodeTypeRef(items)
		if err != nil {
			return TypeRef{}, fmt.Errorf("items: %w", err)
		}
		typ.Items = &elem
	case kind == KindObject:
		typ.Kind = KindObject
		// additionalProperties may also be a boolean; only a schema node types the values.
		if values != nil && !hasProp && resolve(values).Kind == yaml.MappingNode {
			elem, err := decodeTypeRef(values)
			if err != nil {
				return TypeRef{}, fmt.Errorf("additionalProperties: %w", err)
			}
			typ.Values = &elem
		}
	case kind == KindString, kind == KindInteger, kind == KindNumber, kind == KindBoolean, kind == KindAny:
		typ.Kind = kind
	default:
		return TypeRef{}, nodeError(node, fmt.Sprintf("unsupported type %q", kind))
	}
	return typ, nil
}

// eachPair calls fn for every key/value pair of a mapping node, in order.
func eachPair(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	node = resolve(node)
	if node.Kind != yaml.MappingNode {
		return nodeError(node, "expected an object")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i])
		if key.Kind != yaml.ScalarNode {
			return nodeError(key, "object keys must be strings")
		}
		if err := fn(key.Value, resolve(node.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

func decodeScalar(node *yaml.Node, into *string) error {
	node = resolve(node)
	if node.Kind != yaml.ScalarNode {
		return nodeError(node, "expected a string")
	}
	if node.Tag == "!!null" {
		*into = ""
		return nil
	}
	*into = node.Value
	return nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func nodeError(node *yaml.Node, msg string) error {
	return discogen.Errorf(discogen.CodeInvalidArgument, "line %d column %d: %s", node.Line, node.Column, msg)
}
