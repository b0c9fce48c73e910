package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/interfaces"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/service/aggregate"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/service/chart"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/service/roster"
	slackSvc "github.com/BobTheSnob1/dominion-staff-timeline/pkg/service/slack"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/service/workbook"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DurationsQuestion is asked before rendering the timeline
const DurationsQuestion = "Would you like to add numbers for time spent in each role? [y/n]: "

// Status lines shown through the prompter
const (
	DownloadingNotice = "Downloading data from %s..."
	DownloadedNotice  = "Download complete."
	ProcessingNotice  = "Processing %d members..."
	ProcessedNotice   = "Processing complete!"
)

// ChartOption is a functional option for configuring Chart
type ChartOption func(*Chart)

// WithSettings overrides the default palette, cutoff and match mode
func WithSettings(settings model.ChartSettings) ChartOption {
	return func(c *Chart) {
		c.settings = settings
	}
}

// WithClock replaces the clock used to drop future rows
func WithClock(now func() time.Time) ChartOption {
	return func(c *Chart) {
		c.now = now
	}
}

// WithWorkbook exports the chart data to an xlsx file at path
func WithWorkbook(path string) ChartOption {
	return func(c *Chart) {
		c.workbookPath = path
	}
}

// WithSlack shares every saved chart through svc
func WithSlack(svc *slackSvc.Service) ChartOption {
	return func(c *Chart) {
		c.slack = svc
	}
}

// Chart implements ChartUseCase
type Chart struct {
	source       interfaces.RosterSource
	prompter     interfaces.Prompter
	settings     model.ChartSettings
	now          func() time.Time
	workbookPath string
	slack        *slackSvc.Service
}

// ChartResult describes a saved chart
type ChartResult struct {
	RunID        types.RunID
	Kind         types.ChartKind
	Path         string
	DPI          int
	Rows         int
	Members      int
	WorkbookPath string
	SlackFileID  string
}

// NewChart creates a new Chart use case
func NewChart(source interfaces.RosterSource, prompter interfaces.Prompter, opts ...ChartOption) *Chart {
	c := &Chart{
		source:   source,
		prompter: prompter,
		settings: model.DefaultChartSettings(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes one chart pipeline. A fetch or parse error stops it before any prompt.
func (c *Chart) Run(ctx context.Context, kind types.ChartKind) (*ChartResult, error) {
	if !kind.IsValid() {
		return nil, goerr.New("unknown chart", goerr.V("chart", kind), goerr.T(model.ErrTagInvalidInput))
	}

	result := &ChartResult{
		RunID: types.NewRunID(),
		Kind:  kind,
	}
	logger := ctxlog.From(ctx).With("run_id", result.RunID, "chart", kind)
	ctx = ctxlog.With(ctx, logger)

	r, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	result.Rows = r.Len()
	result.Members = len(r.Members())

	fig, data, err := c.render(ctx, kind, r)
	if err != nil {
		return nil, err
	}

	filename, err := c.prompter.AskFilename(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read file name")
	}
	dpi, err := c.prompter.AskDPI(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read dpi")
	}

	path, err := chart.Save(fig, filename, dpi)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save chart", goerr.V("chart", kind))
	}
	result.Path = path
	result.DPI = dpi
	logger.Info("Chart saved", "path", path, "dpi", dpi)

	if c.workbookPath != "" {
		if err := workbook.Export(c.workbookPath, r, data); err != nil {
			return nil, goerr.Wrap(err, "failed to export chart data")
		}
		result.WorkbookPath = c.workbookPath
		logger.Info("Chart data exported", "path", c.workbookPath)
	}

	if c.slack != nil {
		last, _ := r.LastDate()
		file, err := c.slack.UploadChart(ctx, slackSvc.Upload{
			Path:     path,
			Kind:     kind,
			RunID:    result.RunID,
			DataDate: last,
		})
		if err != nil {
			return nil, err
		}
		result.SlackFileID = file.ID
		logger.Info("Chart shared to Slack", "channel", c.slack.Channel(), "file_id", file.ID)
	}

	return result, nil
}

// load fetches and parses the roster and drops rows dated after now
func (c *Chart) load(ctx context.Context) (*model.Roster, error) {
	c.prompter.Notify(ctx, fmt.Sprintf(DownloadingNotice, c.source.Location()))
	body, err := c.source.Fetch(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch roster")
	}
	c.prompter.Notify(ctx, DownloadedNotice)

	parsed, err := roster.ParseBytes(body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load roster")
	}

	now := c.now()
	r := parsed.Until(now)
	ctxlog.From(ctx).Debug("Roster loaded",
		"rows", parsed.Len(),
		"kept", r.Len(),
		"members", len(r.Members()),
		"now", now,
	)
	if r.IsEmpty() {
		return nil, goerr.Wrap(model.ErrEmptyRoster, "no rows dated on or before now",
			goerr.V("now", now),
			goerr.V("rows", parsed.Len()))
	}
	return r, nil
}

func (c *Chart) render(ctx context.Context, kind types.ChartKind, r *model.Roster) (chart.Figure, workbook.ChartData, error) {
	var data workbook.ChartData

	switch kind {
	case types.ChartTeamSize:
		data.TeamSize = aggregate.TeamSize(r, c.settings.TeamSizeMatch)
		p, err := chart.TeamSize(data.TeamSize, c.settings.Palette)
		return p, data, err

	case types.ChartTenure:
		data.Tenure = aggregate.Tenure(r)
		p, err := chart.Tenure(data.Tenure, c.settings.Palette)
		return p, data, err

	case types.ChartTenureDistribution:
		data.Tenure = aggregate.Tenure(r)
		data.Distribution = aggregate.TenureDistribution(data.Tenure)
		fig, err := chart.TenureDistribution(data.Distribution, c.settings.Palette)
		return fig, data, err

	case types.ChartTimeline:
		durations, err := c.prompter.AskYesNo(ctx, DurationsQuestion)
		if err != nil {
			return nil, data, goerr.Wrap(err, "failed to read answer")
		}
		c.prompter.Notify(ctx, fmt.Sprintf(ProcessingNotice, len(r.Members())))
		data.Timeline = aggregate.Timeline(r, c.settings)
		c.prompter.Notify(ctx, ProcessedNotice)
		ctxlog.From(ctx).Debug("Timeline built",
			"members", len(data.Timeline.Members),
			"intervals", len(data.Timeline.Intervals),
		)
		p, err := chart.Timeline(data.Timeline, c.settings.Palette, chart.TimelineOptions{Durations: durations})
		return p, data, err
	}

	return nil, data, goerr.New("unknown chart", goerr.V("chart", kind))
}
