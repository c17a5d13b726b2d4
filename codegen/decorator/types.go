package decorator

import (
	"github.com/broady/discogen"
	"github.com/broady/discogen/codegen/codedom"
	"github.com/broady/discogen/codegen/naming"
	"github.com/broady/discogen/discovery"
)

// MapType converts a declared property type into a type reference.
//
// Value types are nullable so an absent JSON property stays distinguishable
// from its zero value. References resolve against schemas and are named with
// typeNamer (nil means the standard schema namer), using the referenced
// schema's ordinal.
func MapType(t discovery.TypeRef, schemas *discovery.Map[*discovery.Schema], typeNamer naming.Namer) (codedom.TypeRef, error) {
	switch t.Kind {
	case discovery.KindString:
		switch t.Format {
		case "int64":
			return codedom.NullableType("long"), nil
		case "uint64":
			return codedom.NullableType("ulong"), nil
		}
		return codedom.Type("string"), nil
	case discovery.KindInteger:
		switch t.Format {
		case "int64":
			return codedom.NullableType("long"), nil
		case "uint32":
			return codedom.NullableType("uint"), nil
		case "uint64":
			return codedom.NullableType("ulong"), nil
		}
		return codedom.NullableType("int"), nil
	case discovery.KindNumber:
		if t.Format == "float" {
			return codedom.NullableType("float"), nil
		}
		return codedom.NullableType("double"), nil
	case discovery.KindBoolean:
		return codedom.NullableType("bool"), nil
	case discovery.KindAny:
		return codedom.Type("object"), nil
	case discovery.KindArray:
		elem := codedom.Type("object")
		if t.Items != nil {
			var err error
			if elem, err = MapType(*t.Items, schemas, typeNamer); err != nil {
				return codedom.TypeRef{}, err
			}
		}
		return codedom.Generic("IList", elem), nil
	case discovery.KindObject:
		if t.Values == nil {
			return codedom.Type("object"), nil
		}
		value, err := MapType(*t.Values, schemas, typeNamer)
		if err != nil {
			return codedom.TypeRef{}, err
		}
		return codedom.Generic("IDictionary", codedom.Type("string"), value), nil
	case discovery.KindRef:
		ordinal := schemaOrdinal(schemas, t.Ref)
		if ordinal == 0 {
			return codedom.TypeRef{}, discogen.Errorf(discogen.CodeFailedPrecondition, "reference to unknown schema %q", t.Ref)
		}
		return codedom.Type(namerOr(typeNamer, schemaNamer).ClassName(t.Ref, ordinal)), nil
	default:
		return codedom.TypeRef{}, discogen.Errorf(discogen.CodeFailedPrecondition, "unsupported type kind %q", t.Kind)
	}
}

// schemaOrdinal returns the 1-based position of name in schemas, or 0.
func schemaOrdinal(schemas *discovery.Map[*discovery.Schema], name string) int {
	for i, key := range schemas.Keys() {
		if key == name {
			return i + 1
		}
	}
	return 0
}
