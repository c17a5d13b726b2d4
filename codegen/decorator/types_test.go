package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/discogen"
	"github.com/broady/discogen/discovery"
)

func TestMapType(t *testing.T) {
	schemas := schemaMap(schemaOf("Person"), schemaOf("Comment"))

	str := discovery.TypeRef{Kind: discovery.KindString}
	tests := []struct {
		name string
		in   discovery.TypeRef
		want string
	}{
		{"string", str, "string"},
		{"date-time string", discovery.TypeRef{Kind: discovery.KindString, Format: "date-time"}, "string"},
		{"int64 string", discovery.TypeRef{Kind: discovery.KindString, Format: "int64"}, "long?"},
		{"uint64 string", discovery.TypeRef{Kind: discovery.KindString, Format: "uint64"}, "ulong?"},
		{"integer", discovery.TypeRef{Kind: discovery.KindInteger}, "int?"},
		{"int64 integer", discovery.TypeRef{Kind: discovery.KindInteger, Format: "int64"}, "long?"},
		{"uint32 integer", discovery.TypeRef{Kind: discovery.KindInteger, Format: "uint32"}, "uint?"},
		{"number", discovery.TypeRef{Kind: discovery.KindNumber}, "double?"},
		{"float number", discovery.TypeRef{Kind: discovery.KindNumber, Format: "float"}, "float?"},
		{"boolean", discovery.TypeRef{Kind: discovery.KindBoolean}, "bool?"},
		{"any", discovery.TypeRef{Kind: discovery.KindAny}, "object"},
		{"free-form object", discovery.TypeRef{Kind: discovery.KindObject}, "object"},
		{"array of strings", discovery.TypeRef{Kind: discovery.KindArray, Items: &str}, "IList<string>"},
		{"array without items", discovery.TypeRef{Kind: discovery.KindArray}, "IList<object>"},
		{"map", discovery.TypeRef{Kind: discovery.KindObject, Values: &discovery.TypeRef{Kind: discovery.KindInteger, Format: "int64"}}, "IDictionary<string, long?>"},
		{"ref", discovery.TypeRef{Kind: discovery.KindRef, Ref: "Comment"}, "Comment"},
		{"array of refs", discovery.TypeRef{Kind: discovery.KindArray, Items: &discovery.TypeRef{Kind: discovery.KindRef, Ref: "Person"}}, "IList<Person>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapType(tt.in, schemas, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMapType_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   discovery.TypeRef
	}{
		{"unknown ref", discovery.TypeRef{Kind: discovery.KindRef, Ref: "Missing"}},
		{"unknown ref in array", discovery.TypeRef{Kind: discovery.KindArray, Items: &discovery.TypeRef{Kind: discovery.KindRef, Ref: "Missing"}}},
		{"unknown ref in map", discovery.TypeRef{Kind: discovery.KindObject, Values: &discovery.TypeRef{Kind: discovery.KindRef, Ref: "Missing"}}},
		{"unknown kind", discovery.TypeRef{Kind: "tuple"}},
		{"empty kind", discovery.TypeRef{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapType(tt.in, schemaMap(), nil)
			assert.True(t, discogen.IsCode(err, discogen.CodeFailedPrecondition), "got %v", err)
		})
	}
}

func TestMapType_CustomTypeNamer(t *testing.T) {
	got, err := MapType(discovery.TypeRef{Kind: discovery.KindRef, Ref: "Person"}, schemaMap(schemaOf("Person")), constNamer{})
	require.NoError(t, err)
	assert.Equal(t, "Same", got.String())
}
