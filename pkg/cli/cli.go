package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/cli/config"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/controller/shell"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/utils/apperr"
	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application on the process standard streams
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdin, os.Stdout)
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	// A missing .env file is fine
	_ = godotenv.Load()

	var (
		loggerCfg config.Logger
		chartCfg  chartConfig
	)
	sh := shell.New(in, out)
	logCtx := ctx

	app := &cli.Command{
		Name:    "staffchart",
		Usage:   "Render staff roster charts from a published spreadsheet",
		Version: "0.1.0",
		Writer:  out,
		Flags:   joinFlags(loggerCfg.Flags(), chartCfg.Flags()),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			logCtx = ctx
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := chartCfg.newUseCase(ctx, sh)
			if err != nil {
				return err
			}
			return sh.Run(ctx, uc)
		},
		Commands: chartCommands(&chartCfg, sh),
	}

	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(logCtx, err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
