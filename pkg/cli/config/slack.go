package config

import (
	"log/slog"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	slackSvc "github.com/BobTheSnob1/dominion-staff-timeline/pkg/service/slack"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token used to upload charts",
			Category:    "Slack",
			Sources:     cli.EnvVars("STAFFCHART_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID receiving the charts",
			Category:    "Slack",
			Sources:     cli.EnvVars("STAFFCHART_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// ConfigureOptional creates the Slack service if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) (*slackSvc.Service, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !s.IsConfigured() {
		logger.Debug("Slack not configured, charts will not be shared")
		return nil, nil
	}

	logger.Info("Configuring Slack client", "channel", s.Channel)
	return slackSvc.New(s.OAuthToken, s.Channel), nil
}

// IsConfigured checks if both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// Validate rejects a token without a channel and vice versa
func (s *Slack) Validate() error {
	if (s.OAuthToken == "") != (s.Channel == "") {
		return goerr.New("slack token and channel must be set together",
			goerr.V("has_oauth_token", s.OAuthToken != ""),
			goerr.V("channel", s.Channel),
			goerr.T(model.ErrTagInvalidInput))
	}
	return nil
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
