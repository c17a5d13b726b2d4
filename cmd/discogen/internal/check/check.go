// Package check implements the check command.
package check

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/broady/discogen/cmd/discogen/internal/gen"
	"github.com/broady/discogen/cmd/discogen/internal/input"
	"github.com/broady/discogen/codegen"
	"github.com/broady/discogen/codegen/sink"
)

type Cmd struct {
	Inputs   []string `arg:"" name:"input" help:"Service descriptions: files, or api:version to fetch from the Discovery Service."`
	Format   string   `help:"Input format (${enum})." short:"f" enum:"auto,discovery,openapi,rest" default:"auto"`
	Endpoint string   `help:"Discovery Service endpoint for api:version inputs." env:"DISCOGEN_DISCOVERY_ENDPOINT"`
	Docs     bool     `help:"Include documentation decorators."`
	Debug    bool     `help:"Log debug traces to stderr." env:"DISCOGEN_DEBUG"`
}

// Run generates every input in memory and reports what would be written.
func (c *Cmd) Run(ctx context.Context, stdout io.Writer) error {
	logger := gen.NewLogger(c.Debug, os.Stderr)
	for _, ref := range c.Inputs {
		svc, err := input.Load(ctx, ref, input.Options{Format: c.Format, Endpoint: c.Endpoint})
		if err != nil {
			return err
		}
		res, err := codegen.Generate(ctx, svc, codegen.Config{
			Sink:          sink.NewMemorySink(),
			Namespace:     "Check",
			Documentation: c.Docs,
			Logger:        logger,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ref, err)
		}
		fmt.Fprintf(stdout, "✓ %s: %d resources, %d schemas, %d service classes, %d schema classes\n",
			res.Service, svc.Resources.Len(), svc.Schemas.Len(), res.ServiceClasses, res.SchemaClasses)
	}
	return nil
}
