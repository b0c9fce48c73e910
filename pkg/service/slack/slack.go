package slack

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/interfaces"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Service shares rendered charts to a Slack channel
type Service struct {
	client  interfaces.SlackClient
	channel string
}

// New creates a new Slack service backed by the Web API
func New(token, channel string) *Service {
	return NewWithClient(slack.New(token), channel)
}

// NewWithClient creates a Slack service on top of an existing client
func NewWithClient(client interfaces.SlackClient, channel string) *Service {
	return &Service{
		client:  client,
		channel: channel,
	}
}

// Channel returns the destination channel ID
func (s *Service) Channel() string {
	return s.channel
}

// Upload is one chart image to share
type Upload struct {
	Path     string
	Kind     types.ChartKind
	RunID    types.RunID
	DataDate time.Time
}

// UploadChart uploads the image at u.Path with a short description of the chart
func (s *Service) UploadChart(ctx context.Context, u Upload) (*slack.FileSummary, error) {
	info, err := os.Stat(u.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stat chart image", goerr.V("path", u.Path))
	}
	if info.Size() == 0 {
		return nil, goerr.New("chart image is empty", goerr.V("path", u.Path))
	}

	params := slack.UploadFileV2Parameters{
		File:           u.Path,
		FileSize:       int(info.Size()),
		Filename:       filepath.Base(u.Path),
		Title:          u.Kind.Title(),
		InitialComment: FormatChartComment(u.Kind, u.DataDate),
		Channel:        s.channel,
	}

	ctxlog.From(ctx).Info("Uploading chart to Slack",
		"channel", s.channel,
		"file", params.Filename,
		"size", params.FileSize,
		"run_id", u.RunID,
	)

	file, err := s.client.UploadFileV2Context(ctx, params)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upload chart to Slack",
			goerr.V("channel", s.channel),
			goerr.V("path", u.Path))
	}
	return file, nil
}

// FormatChartComment builds the message posted with an uploaded chart
func FormatChartComment(kind types.ChartKind, dataDate time.Time) string {
	if dataDate.IsZero() {
		return kind.Title()
	}
	return fmt.Sprintf("%s (data up to %s)", kind.Title(), dataDate.Format(time.DateOnly))
}
