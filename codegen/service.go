package codegen

import (
	"context"
	"log/slog"
	"slices"

	"github.com/broady/discogen"
	"github.com/broady/discogen/codegen/codedom"
	"github.com/broady/discogen/codegen/decorator"
	"github.com/broady/discogen/codegen/naming"
	"github.com/broady/discogen/discovery"
	"github.com/broady/discogen/middleware"
)

var defaultResourceNamer = naming.Standard{Fallback: "Resource"}

// serviceGenerator holds the validated constructor arguments.
type serviceGenerator struct {
	Decorators []decorator.ResourceContainerDecorator `validate:"required,dive,required"`
	Namespace  string                                 `validate:"required"`
}

// ServiceGenerator produces the service namespace: a class for the service
// itself and one for every resource, each decorated by the same list of
// resource container decorators.
type ServiceGenerator struct {
	decorators []decorator.ResourceContainerDecorator
	namespace  string
	logger     *slog.Logger
	namer      naming.Namer
}

// NewServiceGenerator returns a generator placing classes in namespace.
// Argument rules match NewSchemaGenerator.
func NewServiceGenerator(decorators []decorator.ResourceContainerDecorator, namespace string, opts ...Option) (*ServiceGenerator, error) {
	args := serviceGenerator{Decorators: decorators, Namespace: namespace}
	if err := validate.Struct(args); err != nil {
		return nil, discogen.FromValidation(err)
	}
	o := buildOptions(defaultResourceNamer, opts)
	return &ServiceGenerator{
		decorators: slices.Clone(decorators),
		namespace:  namespace,
		logger:     o.logger,
		namer:      o.namer,
	}, nil
}

// Namespace returns the configured namespace name.
func (g *ServiceGenerator) Namespace() string { return g.namespace }

// DecoratorNames returns the display names of the configured decorators.
func (g *ServiceGenerator) DecoratorNames() []string {
	return decoratorNames(g.decorators)
}

// ServiceClassName returns the name of the class generated for svc itself,
// e.g. "PlusService" for a service named "plus".
func (g *ServiceGenerator) ServiceClassName(svc *discovery.Service) string {
	return serviceClassName(g.namer, svc)
}

func serviceClassName(n naming.Namer, svc *discovery.Service) string {
	if svc == nil || svc.Name == "" {
		return "Service"
	}
	return n.ClassName(svc.Name, 1) + "Service"
}

// GenerateServiceClasses builds the service namespace for svc.
//
// The service class comes first, followed by the resource classes in depth
// first declaration order. A resource's class is named ClassName(key, i)
// where i is its 1-based position among its siblings, matching the type
// names ResourcePropertyDecorator gives the accessors. Resource classes are
// top-level, so two resources mapping to the same name are an
// already-exists error. The first error aborts generation and is returned
// unchanged.
func (g *ServiceGenerator) GenerateServiceClasses(svc *discovery.Service) (*codedom.Namespace, error) {
	return g.GenerateServiceClassesContext(context.Background(), svc)
}

// GenerateServiceClassesContext is GenerateServiceClasses with debug traces
// logged under ctx.
func (g *ServiceGenerator) GenerateServiceClassesContext(ctx context.Context, svc *discovery.Service) (*codedom.Namespace, error) {
	if svc == nil {
		return nil, discogen.NewError(discogen.CodeInvalidArgument, "service is nil")
	}
	logDecorators(ctx, g.logger, "resource", svc, g.decorators)

	decorators := g.decorators
	if g.logger.Enabled(ctx, slog.LevelDebug) {
		decorators = make([]decorator.ResourceContainerDecorator, len(g.decorators))
		for i, d := range g.decorators {
			decorators[i] = middleware.LoggingResourceDecorator(ctx, g.logger, d)
		}
	}

	ns := newNamespace(g.namespace)
	class := codedom.NewClass(g.ServiceClassName(svc))
	if err := decorateContainer(decorators, svc, class); err != nil {
		return nil, err
	}
	if err := ns.AddClass(class); err != nil {
		return nil, err
	}
	if err := g.addResourceClasses(ns, decorators, svc.Resources); err != nil {
		return nil, err
	}
	return ns, nil
}

func (g *ServiceGenerator) addResourceClasses(ns *codedom.Namespace, decorators []decorator.ResourceContainerDecorator, resources *discovery.Map[*discovery.Resource]) error {
	ordinal := 1
	for name, res := range resources.All() {
		class := codedom.NewClass(g.namer.ClassName(name, ordinal))
		if err := class.SetOrdinal(ordinal); err != nil {
			return err
		}
		if err := decorateContainer(decorators, res, class); err != nil {
			return err
		}
		if err := ns.AddClass(class); err != nil {
			return err
		}
		if err := g.addResourceClasses(ns, decorators, res.ChildResources()); err != nil {
			return err
		}
		ordinal++
	}
	return nil
}

func decorateContainer(decorators []decorator.ResourceContainerDecorator, container discovery.ResourceContainer, class *codedom.Class) error {
	for _, d := range decorators {
		if err := d.DecorateClass(container, class); err != nil {
			return err
		}
	}
	return nil
}
