// Package middleware wraps decorators with cross-cutting behavior.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/broady/discogen/codegen/codedom"
	"github.com/broady/discogen/codegen/decorator"
	"github.com/broady/discogen/discovery"
)

// LoggingSchemaDecorator returns a decorator that traces every call to d at
// debug level: one record when it starts and one when it finishes, with the
// duration and the error if it failed. The error itself is returned unchanged.
//
// Records are logged with ctx, the context of the generation call the
// wrapper is built for; a nil ctx means context.Background.
func LoggingSchemaDecorator(ctx context.Context, logger *slog.Logger, d decorator.SchemaDecorator) decorator.SchemaDecorator {
	return &loggingSchema{tracer: newTracer(ctx, logger), next: d}
}

// LoggingResourceDecorator is LoggingSchemaDecorator for resource container decorators.
func LoggingResourceDecorator(ctx context.Context, logger *slog.Logger, d decorator.ResourceContainerDecorator) decorator.ResourceContainerDecorator {
	return &loggingResource{tracer: newTracer(ctx, logger), next: d}
}

type tracer struct {
	ctx    context.Context
	logger *slog.Logger
}

func newTracer(ctx context.Context, logger *slog.Logger) tracer {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return tracer{ctx: ctx, logger: logger}
}

type loggingSchema struct {
	tracer
	next decorator.SchemaDecorator
}

func (l *loggingSchema) DecoratorName() string { return l.next.DecoratorName() }

func (l *loggingSchema) DecorateClass(schema *discovery.Schema, class *codedom.Class, schemas *discovery.Map[*discovery.Schema]) error {
	var target string
	if schema != nil {
		target = schema.Name
	}
	return l.trace(l.next, "schema", target, class, func() error {
		return l.next.DecorateClass(schema, class, schemas)
	})
}

type loggingResource struct {
	tracer
	next decorator.ResourceContainerDecorator
}

func (l *loggingResource) DecoratorName() string { return l.next.DecoratorName() }

func (l *loggingResource) DecorateClass(container discovery.ResourceContainer, class *codedom.Class) error {
	var target string
	if container != nil {
		target = container.ContainerName()
	}
	return l.trace(l.next, "container", target, class, func() error {
		return l.next.DecorateClass(container, class)
	})
}

func (t tracer) trace(d decorator.Named, kind, target string, class *codedom.Class, call func() error) error {
	ctx, logger := t.ctx, t.logger
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return call()
	}

	attrs := []slog.Attr{
		slog.String("decorator", d.DecoratorName()),
		slog.String(kind, target),
	}
	if class != nil {
		attrs = append(attrs, slog.String("class", class.Name()))
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "decorator started", attrs...)

	start := time.Now()
	err := call()
	attrs = append(attrs, slog.Duration("duration", time.Since(start)))
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "decorator failed", append(attrs, slog.Any("error", err))...)
		return err
	}
	if class != nil {
		attrs = append(attrs, slog.Int("members", class.Len()))
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "decorator completed", attrs...)
	return nil
}

var (
	_ decorator.SchemaDecorator            = (*loggingSchema)(nil)
	_ decorator.ResourceContainerDecorator = (*loggingResource)(nil)
)
