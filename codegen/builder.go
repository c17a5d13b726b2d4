package codegen

import (
	"context"
	"log/slog"

	"github.com/broady/discogen/codegen/csharp"
	"github.com/broady/discogen/codegen/decorator"
	"github.com/broady/discogen/codegen/sink"
	"github.com/broady/discogen/discovery"
)

// Builder provides a fluent API over Generate.
// Create one with FromService and configure it with method chaining.
//
// Example:
//
//	codegen.FromService(svc).
//	    Namespace("Google.Apis.Plus.v1").
//	    WithDocumentation().
//	    ToDir(ctx, "./Generated")
type Builder struct {
	svc *discovery.Service
	cfg Config
}

// FromService returns a Builder for svc.
func FromService(svc *discovery.Service) *Builder {
	return &Builder{svc: svc}
}

// Namespace sets the namespace of the service classes.
func (b *Builder) Namespace(ns string) *Builder {
	b.cfg.Namespace = ns
	return b
}

// SchemaNamespace sets the namespace of the data classes.
func (b *Builder) SchemaNamespace(ns string) *Builder {
	b.cfg.SchemaNamespace = ns
	return b
}

// SchemaDecorators replaces the default schema decorators.
func (b *Builder) SchemaDecorators(ds ...decorator.SchemaDecorator) *Builder {
	b.cfg.SchemaDecorators = ds
	return b
}

// ResourceDecorators replaces the default resource container decorators.
func (b *Builder) ResourceDecorators(ds ...decorator.ResourceContainerDecorator) *Builder {
	b.cfg.ResourceDecorators = ds
	return b
}

// WithDocumentation copies descriptions into doc comments.
func (b *Builder) WithDocumentation() *Builder {
	b.cfg.Documentation = true
	return b
}

// Format sets the formatting options.
func (b *Builder) Format(opts csharp.Options) *Builder {
	b.cfg.Format = opts
	return b
}

// Logger sets the logger for debug traces.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.cfg.Logger = l
	return b
}

// ToDir writes the generated files to dir.
func (b *Builder) ToDir(ctx context.Context, dir string) (*Result, error) {
	cfg := b.cfg
	cfg.OutDir = dir
	cfg.Sink = nil
	return Generate(ctx, b.svc, cfg)
}

// ToSink writes the generated files to s.
func (b *Builder) ToSink(ctx context.Context, s sink.OutputSink) (*Result, error) {
	cfg := b.cfg
	cfg.Sink = s
	return Generate(ctx, b.svc, cfg)
}

// Render returns the generated files in memory, keyed by path.
func (b *Builder) Render(ctx context.Context) (map[string][]byte, error) {
	mem := sink.NewMemorySink()
	if _, err := b.ToSink(ctx, mem); err != nil {
		return nil, err
	}
	return mem.Files(), nil
}
