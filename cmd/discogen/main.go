package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/broady/discogen/cmd/discogen/internal/check"
	"github.com/broady/discogen/cmd/discogen/internal/gen"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate C# client classes from service descriptions."`
	Check   check.Cmd  `cmd:"" help:"Run generation in memory and report what would be written."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(stdout io.Writer) error {
	fmt.Fprintln(stdout, Version())
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("discogen"),
		kong.Description("Generate C# client libraries from API service descriptions."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
