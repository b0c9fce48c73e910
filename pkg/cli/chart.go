package cli

import (
	"context"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/cli/config"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/controller/shell"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/interfaces"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

// chartConfig groups every setting a chart pipeline needs
type chartConfig struct {
	source config.Source
	chart  config.Chart
	export config.Export
	slack  config.Slack
}

func (c *chartConfig) Flags() []cli.Flag {
	return joinFlags(
		c.source.Flags(),
		c.chart.Flags(),
		c.export.Flags(),
		c.slack.Flags(),
	)
}

func (c *chartConfig) newUseCase(ctx context.Context, prompter interfaces.Prompter) (*usecase.Chart, error) {
	logger := ctxlog.From(ctx)

	source, err := c.source.Configure()
	if err != nil {
		return nil, err
	}
	settings, err := c.chart.Configure()
	if err != nil {
		return nil, err
	}
	if err := c.export.Validate(); err != nil {
		return nil, err
	}
	slackSvc, err := c.slack.ConfigureOptional(logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("Chart pipeline configured",
		"source", c.source,
		"chart", c.chart,
		"export", c.export,
		"slack", c.slack,
	)

	opts := []usecase.ChartOption{usecase.WithSettings(*settings)}
	if c.export.IsConfigured() {
		opts = append(opts, usecase.WithWorkbook(c.export.XLSXPath))
	}
	if slackSvc != nil {
		opts = append(opts, usecase.WithSlack(slackSvc))
	}
	return usecase.NewChart(source, prompter, opts...), nil
}

// chartCommands returns one subcommand per chart that skips the menu
func chartCommands(cfg *chartConfig, sh *shell.Shell) []*cli.Command {
	var cmds []*cli.Command
	for _, kind := range types.AllChartKinds() {
		cmds = append(cmds, &cli.Command{
			Name:  kind.String(),
			Usage: "Generate the " + kind.Title() + " chart",
			Action: func(ctx context.Context, c *cli.Command) error {
				uc, err := cfg.newUseCase(ctx, sh)
				if err != nil {
					return err
				}
				return sh.RunChart(ctx, uc, kind)
			},
		})
	}
	return cmds
}
