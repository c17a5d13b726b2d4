// Package gen implements the gen command.
package gen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/broady/discogen"
	"github.com/broady/discogen/cmd/discogen/internal/input"
	"github.com/broady/discogen/codegen"
	"github.com/broady/discogen/codegen/csharp"
	"github.com/broady/discogen/codegen/sink"
)

type Cmd struct {
	Inputs          []string `arg:"" name:"input" help:"Service descriptions: files, or api:version to fetch from the Discovery Service."`
	Out             string   `help:"Output directory for generated files." short:"o" required:"" type:"path" env:"DISCOGEN_OUT"`
	Namespace       string   `help:"Namespace of the service classes." short:"n" required:"" env:"DISCOGEN_NAMESPACE"`
	SchemaNamespace string   `help:"Namespace of the data classes (default: <namespace>.Data). Single input only." name:"schema-namespace"`
	Format          string   `help:"Input format (${enum})." short:"f" enum:"auto,discovery,openapi,rest" default:"auto"`
	Endpoint        string   `help:"Discovery Service endpoint for api:version inputs." env:"DISCOGEN_DISCOVERY_ENDPOINT"`
	Set             []string `help:"Formatting option as key=value, e.g. indent_size=2. Repeatable." sep:"none" placeholder:"KEY=VALUE"`
	Docs            bool     `help:"Emit documentation comments from descriptions."`
	NoOverwrite     bool     `help:"Fail instead of replacing existing files." name:"no-overwrite"`
	Parallelism     int      `help:"Services generated at once with multiple inputs (default: GOMAXPROCS)." short:"j"`
	Debug           bool     `help:"Log debug traces to stderr." env:"DISCOGEN_DEBUG"`
}

func (c *Cmd) Run(ctx context.Context, stdout io.Writer) error {
	format, err := ParseSet(c.Set)
	if err != nil {
		return err
	}
	if c.SchemaNamespace != "" && len(c.Inputs) > 1 {
		return discogen.NewError(discogen.CodeInvalidArgument, "--schema-namespace only applies to a single input")
	}

	services, err := input.LoadAll(ctx, c.Inputs, input.Options{Format: c.Format, Endpoint: c.Endpoint})
	if err != nil {
		return err
	}

	out := sink.NewFilesystemSink(c.Out)
	out.Overwrite = !c.NoOverwrite
	cfg := codegen.Config{
		Sink:            out,
		Namespace:       c.Namespace,
		SchemaNamespace: c.SchemaNamespace,
		Documentation:   c.Docs,
		Format:          format,
		Parallelism:     c.Parallelism,
		Logger:          NewLogger(c.Debug, os.Stderr),
	}

	var results []*codegen.Result
	if len(services) == 1 {
		res, err := codegen.Generate(ctx, services[0], cfg)
		if err != nil {
			return err
		}
		results = append(results, res)
	} else {
		if results, err = codegen.GenerateAll(ctx, services, cfg); err != nil {
			return err
		}
	}

	for _, res := range results {
		fmt.Fprintf(stdout, "✓ %s: %d service classes, %d schema classes\n", res.Service, res.ServiceClasses, res.SchemaClasses)
		for _, f := range res.Files {
			fmt.Fprintf(stdout, "  %s (%d bytes)\n", f.Path, f.Size)
		}
	}
	return nil
}

// ParseSet turns repeated key=value flags into formatting options on top of
// csharp.DefaultOptions.
func ParseSet(pairs []string) (csharp.Options, error) {
	values := url.Values{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return csharp.Options{}, discogen.Errorf(discogen.CodeInvalidArgument, "--set %q: expected key=value", pair)
		}
		values.Add(key, value)
	}
	return csharp.ParseOptions(values)
}

// NewLogger returns a text logger on w at debug level, or nil when debug is
// off so the generator discards its traces.
func NewLogger(debug bool, w io.Writer) *slog.Logger {
	if !debug {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
