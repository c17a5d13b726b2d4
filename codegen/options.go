package codegen

import (
	"log/slog"

	"github.com/broady/discogen/codegen/naming"
)

// Option configures a SchemaGenerator or ServiceGenerator.
type Option func(*options)

type options struct {
	logger *slog.Logger
	namer  naming.Namer
}

// WithLogger sets the logger for debug tracing. Generators never log errors;
// they return them. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithNamer sets the namer that derives class names. Decorators that refer
// to generated classes by name must be configured with an equivalent namer.
func WithNamer(n naming.Namer) Option {
	return func(o *options) {
		if n != nil {
			o.namer = n
		}
	}
}

func buildOptions(defaultNamer naming.Namer, opts []Option) options {
	o := options{
		logger: slog.New(slog.DiscardHandler),
		namer:  defaultNamer,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
