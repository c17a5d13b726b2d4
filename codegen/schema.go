package codegen

import (
	"context"
	"log/slog"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/broady/discogen"
	"github.com/broady/discogen/codegen/codedom"
	"github.com/broady/discogen/codegen/decorator"
	"github.com/broady/discogen/codegen/naming"
	"github.com/broady/discogen/discovery"
	"github.com/broady/discogen/middleware"
)

var (
	validate           = validator.New()
	defaultSchemaNamer = naming.Standard{Fallback: "Schema"}
)

// schemaGenerator holds the validated constructor arguments.
type schemaGenerator struct {
	Decorators []decorator.SchemaDecorator `validate:"required,dive,required"`
	Namespace  string                      `validate:"required"`
}

// SchemaGenerator produces the data namespace of a service: one class per
// schema. It holds no per-call state and may be used concurrently.
type SchemaGenerator struct {
	decorators []decorator.SchemaDecorator
	namespace  string
	logger     *slog.Logger
	namer      naming.Namer
}

// NewSchemaGenerator returns a generator that runs decorators, in order, on
// every schema class and places the classes in namespace.
//
// A nil list, a nil element or an empty namespace is an invalid-argument
// error. An empty list is allowed and yields empty class shells.
func NewSchemaGenerator(decorators []decorator.SchemaDecorator, namespace string, opts ...Option) (*SchemaGenerator, error) {
	args := schemaGenerator{Decorators: decorators, Namespace: namespace}
	if err := validate.Struct(args); err != nil {
		return nil, discogen.FromValidation(err)
	}
	o := buildOptions(defaultSchemaNamer, opts)
	return &SchemaGenerator{
		decorators: slices.Clone(decorators),
		namespace:  namespace,
		logger:     o.logger,
		namer:      o.namer,
	}, nil
}

// Namespace returns the configured namespace name.
func (g *SchemaGenerator) Namespace() string { return g.namespace }

// DecoratorNames returns the display names of the configured decorators.
func (g *SchemaGenerator) DecoratorNames() []string {
	return decoratorNames(g.decorators)
}

// GenerateSchemaClasses builds the namespace for svc's schemas.
//
// Schemas are processed in declaration order; the class for the schema at
// 1-based position i is named ClassName(key, i). Each decorator sees the
// full schema map. The first error aborts generation and is returned
// unchanged; no partial namespace is returned.
func (g *SchemaGenerator) GenerateSchemaClasses(svc *discovery.Service) (*codedom.Namespace, error) {
	return g.GenerateSchemaClassesContext(context.Background(), svc)
}

// GenerateSchemaClassesContext is GenerateSchemaClasses with debug traces
// logged under ctx.
func (g *SchemaGenerator) GenerateSchemaClassesContext(ctx context.Context, svc *discovery.Service) (*codedom.Namespace, error) {
	if svc == nil {
		return nil, discogen.NewError(discogen.CodeInvalidArgument, "service is nil")
	}
	logDecorators(ctx, g.logger, "schema", svc, g.decorators)

	decorators := g.decorators
	if g.logger.Enabled(ctx, slog.LevelDebug) {
		decorators = make([]decorator.SchemaDecorator, len(g.decorators))
		for i, d := range g.decorators {
			decorators[i] = middleware.LoggingSchemaDecorator(ctx, g.logger, d)
		}
	}

	ns := newNamespace(g.namespace)
	ordinal := 1
	for name, schema := range svc.Schemas.All() {
		class := codedom.NewClass(g.namer.ClassName(name, ordinal))
		if err := class.SetOrdinal(ordinal); err != nil {
			return nil, err
		}
		for _, d := range decorators {
			if err := d.DecorateClass(schema, class, svc.Schemas); err != nil {
				return nil, err
			}
		}
		if err := ns.AddClass(class); err != nil {
			return nil, err
		}
		ordinal++
	}
	return ns, nil
}

func newNamespace(name string) *codedom.Namespace {
	ns := codedom.NewNamespace(name)
	for _, imp := range StandardImports() {
		ns.AddImport(imp)
	}
	return ns
}

func decoratorNames[D decorator.Named](decorators []D) []string {
	names := make([]string, len(decorators))
	for i, d := range decorators {
		names[i] = d.DecoratorName()
	}
	return names
}

func logDecorators[D decorator.Named](ctx context.Context, logger *slog.Logger, kind string, svc *discovery.Service, decorators []D) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	if len(decorators) == 0 {
		logger.DebugContext(ctx, "no "+kind+" decorators configured",
			slog.String("service", svc.Name),
		)
		return
	}
	logger.DebugContext(ctx, "running "+kind+" decorators",
		slog.String("service", svc.Name),
		slog.Any("decorators", decoratorNames(decorators)),
	)
}
