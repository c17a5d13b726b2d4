// Package codegen turns service descriptions into code models and source files.
//
// A SchemaGenerator builds one class per schema and a ServiceGenerator one
// class for the service plus one per resource; both run ordered decorator
// lists over fresh class containers and return a namespace. Generate and
// GenerateAll drive the whole pipeline, from a loaded service to C# files in
// an output sink.
package codegen

import "github.com/broady/discogen/codegen/decorator"

// DefaultSchemaDecorators returns a new list holding the standard schema
// decorators: storage fields, forwarding properties, then serialization
// attributes.
func DefaultSchemaDecorators() []decorator.SchemaDecorator {
	return []decorator.SchemaDecorator{
		&decorator.PropertyFieldDecorator{},
		&decorator.PropertyDecorator{},
		&decorator.JSONPropertyAttributeDecorator{},
	}
}

// DefaultResourceDecorators returns a new list holding the standard resource
// container decorators.
func DefaultResourceDecorators() []decorator.ResourceContainerDecorator {
	return []decorator.ResourceContainerDecorator{
		&decorator.ResourcePropertyDecorator{},
	}
}

// StandardImports returns the imports every generated namespace starts with.
func StandardImports() []string {
	return []string{
		"System",
		"System.Collections",
		"System.Collections.Generic",
	}
}
