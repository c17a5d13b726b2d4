package codegen

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/broady/discogen"
	"github.com/broady/discogen/codegen/codedom"
	"github.com/broady/discogen/codegen/csharp"
	"github.com/broady/discogen/codegen/decorator"
	"github.com/broady/discogen/codegen/sink"
	"github.com/broady/discogen/discovery"
)

// Config holds the configuration for a generation run.
type Config struct {
	// OutDir is the directory where generated files are written.
	// Required unless Sink is set.
	OutDir string `validate:"required_without=Sink"`

	// Sink receives the generated files. Defaults to a FilesystemSink on OutDir.
	Sink sink.OutputSink

	// Namespace is the namespace of the service classes.
	// e.g. "Google.Apis.Plus.v1"
	Namespace string `validate:"required"`

	// SchemaNamespace is the namespace of the data classes.
	// Default: Namespace + ".Data"
	SchemaNamespace string

	// SchemaDecorators run on every schema class, in order.
	// Default: DefaultSchemaDecorators()
	SchemaDecorators []decorator.SchemaDecorator `validate:"dive,required"`

	// ResourceDecorators run on the service class and every resource class, in order.
	// Default: DefaultResourceDecorators()
	ResourceDecorators []decorator.ResourceContainerDecorator `validate:"dive,required"`

	// Documentation appends a DocumentationDecorator to SchemaDecorators.
	Documentation bool

	// Format controls source formatting. The zero value selects
	// csharp.DefaultOptions(); anything else must be complete.
	Format csharp.Options

	// Parallelism bounds how many services GenerateAll works on at once.
	// Default: GOMAXPROCS
	Parallelism int `validate:"gte=0"`

	// Logger receives debug traces. Default: discard.
	Logger *slog.Logger
}

// Result describes the output of one service.
type Result struct {
	// Service is the service name.
	Service string

	// Files lists the written files in write order.
	Files []OutputFile

	// ServiceClasses is the number of classes in the service namespace.
	ServiceClasses int

	// SchemaClasses is the number of classes in the data namespace.
	SchemaClasses int
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the sink-relative path.
	Path string

	// Size is the number of bytes written.
	Size int
}

// Generate runs the whole pipeline for svc: it builds the service and data
// namespaces, renders them as C# and writes <Name>Service.cs and
// <Name>Data.cs through the configured sink.
func Generate(ctx context.Context, svc *discovery.Service, cfg Config) (*Result, error) {
	if svc == nil {
		return nil, discogen.NewError(discogen.CodeInvalidArgument, "service is nil")
	}
	c, err := applyConfigDefaults(cfg)
	if err != nil {
		return nil, err
	}
	return generate(ctx, svc, c, "")
}

// GenerateAll generates independent services concurrently, at most
// cfg.Parallelism at a time. Each service goes to its own directory named
// after its class name base (e.g. "Plus/") and to the namespaces
// <Namespace>.<Base> and <Namespace>.<Base>.Data; cfg.SchemaNamespace is
// ignored. Two services mapping to the same directory are an already-exists
// error before anything is written. The first failure cancels the remaining
// work and is returned. Results are in input order.
func GenerateAll(ctx context.Context, services []*discovery.Service, cfg Config) ([]*Result, error) {
	bases := make(map[string]int, len(services))
	for i, svc := range services {
		if svc == nil {
			return nil, discogen.Errorf(discogen.CodeInvalidArgument, "service %d is nil", i)
		}
		base := fileBase(svc)
		if j, dup := bases[base]; dup {
			return nil, discogen.Errorf(discogen.CodeAlreadyExists,
				"services %d and %d both generate into %s/ (service name %q)", j, i, base, svc.Name).
				WithDetail("directory", base)
		}
		bases[base] = i
	}
	cfg.SchemaNamespace = ""
	c, err := applyConfigDefaults(cfg)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, len(services))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Parallelism)
	for i, svc := range services {
		g.Go(func() error {
			base := fileBase(svc)
			sc := c
			sc.Namespace = c.Namespace + "." + base
			sc.SchemaNamespace = sc.Namespace + ".Data"
			res, err := generate(ctx, svc, sc, base)
			if err != nil {
				return fmt.Errorf("service %s: %w", svc.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func generate(ctx context.Context, svc *discovery.Service, c Config, dir string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := []Option{WithLogger(c.Logger)}
	serviceGen, err := NewServiceGenerator(c.ResourceDecorators, c.Namespace, opts...)
	if err != nil {
		return nil, err
	}
	schemaGen, err := NewSchemaGenerator(c.SchemaDecorators, c.SchemaNamespace, opts...)
	if err != nil {
		return nil, err
	}

	services, err := serviceGen.GenerateServiceClassesContext(ctx, svc)
	if err != nil {
		return nil, err
	}
	data, err := schemaGen.GenerateSchemaClassesContext(ctx, svc)
	if err != nil {
		return nil, err
	}

	base := fileBase(svc)
	result := &Result{
		Service:        svc.Name,
		ServiceClasses: len(services.Classes()),
		SchemaClasses:  len(data.Classes()),
	}
	for _, out := range []struct {
		name string
		ns   *codedom.Namespace
	}{
		{base + "Service.cs", services},
		{base + "Data.cs", data},
	} {
		content, err := csharp.Render(out.ns, c.Format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", out.name, err)
		}
		p := out.name
		if dir != "" {
			p = path.Join(dir, p)
		}
		if err := c.Sink.WriteFile(ctx, p, content); err != nil {
			return nil, err
		}
		c.Logger.DebugContext(ctx, "wrote file",
			slog.String("service", svc.Name),
			slog.String("path", p),
			slog.Int("bytes", len(content)),
		)
		result.Files = append(result.Files, OutputFile{Path: p, Size: len(content)})
	}
	return result, nil
}

// fileBase returns the service class name without its "Service" suffix.
func fileBase(svc *discovery.Service) string {
	return strings.TrimSuffix(serviceClassName(defaultResourceNamer, svc), "Service")
}

// applyConfigDefaults returns a copy of cfg with defaults filled in, validated.
func applyConfigDefaults(cfg Config) (Config, error) {
	result := cfg

	if result.SchemaNamespace == "" && result.Namespace != "" {
		result.SchemaNamespace = result.Namespace + ".Data"
	}
	if result.SchemaDecorators == nil {
		result.SchemaDecorators = DefaultSchemaDecorators()
	}
	if result.Documentation {
		result.SchemaDecorators = append(slices.Clone(result.SchemaDecorators), &decorator.DocumentationDecorator{})
	}
	if result.ResourceDecorators == nil {
		result.ResourceDecorators = DefaultResourceDecorators()
	}
	if result.Format == (csharp.Options{}) {
		result.Format = csharp.DefaultOptions()
	}
	if result.Parallelism == 0 {
		result.Parallelism = runtime.GOMAXPROCS(0)
	}
	if result.Logger == nil {
		result.Logger = slog.New(slog.DiscardHandler)
	}

	if err := validate.Struct(result); err != nil {
		return Config{}, discogen.FromValidation(err)
	}
	if result.Sink == nil {
		result.Sink = sink.NewFilesystemSink(result.OutDir)
	}
	return result, nil
}
