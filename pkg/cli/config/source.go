package config

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// DefaultSourceURL is the published roster sheet
const DefaultSourceURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vQodbH1DyWrvBdsGa_egy98PDxeLoMMu5yw8Bzb2tGUy2i3kE17e0NReWK1d75V9-eHGeiVjUa468dZ/pub?gid=945876828&single=true&output=csv"

// Source holds roster download configuration
type Source struct {
	URL     string
	Timeout time.Duration
}

// Flags returns CLI flags for Source configuration
func (s *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "source-url",
			Usage:       "URL of the roster published as CSV",
			Category:    "Source",
			Value:       DefaultSourceURL,
			Sources:     cli.EnvVars("STAFFCHART_SOURCE_URL"),
			Destination: &s.URL,
		},
		&cli.DurationFlag{
			Name:        "source-timeout",
			Usage:       "Timeout of the roster download",
			Category:    "Source",
			Value:       repository.DefaultTimeout,
			Sources:     cli.EnvVars("STAFFCHART_SOURCE_TIMEOUT"),
			Destination: &s.Timeout,
		},
	}
}

// Configure validates the settings and creates the HTTP roster source
func (s *Source) Configure() (*repository.HTTP, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return repository.NewHTTP(s.URL, s.Timeout), nil
}

// Validate validates the source configuration
func (s *Source) Validate() error {
	if s.URL == "" {
		return goerr.New("source URL is required", goerr.T(model.ErrTagInvalidInput))
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return goerr.Wrap(err, "invalid source URL", goerr.V("url", s.URL), goerr.T(model.ErrTagInvalidInput))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return goerr.New("source URL must be http or https", goerr.V("url", s.URL), goerr.T(model.ErrTagInvalidInput))
	}
	if s.Timeout < 0 {
		return goerr.New("source timeout must not be negative", goerr.V("timeout", s.Timeout), goerr.T(model.ErrTagInvalidInput))
	}
	return nil
}

// LogValue returns structured log value
func (s Source) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", s.URL),
		slog.Duration("timeout", s.Timeout),
	)
}
