// Package decorator defines the transformation units that build up generated
// classes, and the standard decorators.
//
// A decorator receives one resource container or schema plus the class under
// construction, and adds members to it or annotates members an earlier
// decorator added. Decorators never remove or rename members, hold no state
// beyond their construction-time configuration, and may be shared by
// concurrent generations. A decorator that cannot proceed returns an error;
// generators return it to their caller unchanged.
package decorator

import (
	"github.com/broady/discogen"
	"github.com/broady/discogen/codegen/codedom"
	"github.com/broady/discogen/codegen/naming"
	"github.com/broady/discogen/discovery"
)

// Named is implemented by every decorator.
type Named interface {
	// DecoratorName returns a stable display name for diagnostics.
	DecoratorName() string
}

// ResourceContainerDecorator decorates the class generated for a service or
// a composite resource.
type ResourceContainerDecorator interface {
	Named

	// DecorateClass adds this decorator's contribution to class.
	DecorateClass(container discovery.ResourceContainer, class *codedom.Class) error
}

// SchemaDecorator decorates the class generated for one schema. schemas is
// the full schema map of the service, for resolving references.
type SchemaDecorator interface {
	Named

	// DecorateClass adds this decorator's contribution to class.
	DecorateClass(schema *discovery.Schema, class *codedom.Class, schemas *discovery.Map[*discovery.Schema]) error
}

// Default namers. Schema property members and schema class names must agree
// across decorators, so every standard decorator falls back to these.
var (
	resourceNamer = naming.Standard{Fallback: "Resource"}
	propertyNamer = naming.Standard{Fallback: "Property"}
	schemaNamer   = naming.Standard{Fallback: "Schema"}
)

func namerOr(n, def naming.Namer) naming.Namer {
	if n == nil {
		return def
	}
	return n
}

func checkSchemaArgs(d Named, schema *discovery.Schema, class *codedom.Class) error {
	if schema == nil {
		return discogen.Errorf(discogen.CodeInvalidArgument, "%s: schema is nil", d.DecoratorName())
	}
	if class == nil {
		return discogen.Errorf(discogen.CodeInvalidArgument, "%s: class is nil", d.DecoratorName())
	}
	return nil
}

func preconditionf(d Named, format string, args ...any) *discogen.Error {
	err := discogen.Errorf(discogen.CodeFailedPrecondition, format, args...)
	return err.WithDetail("decorator", d.DecoratorName())
}
