package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultTimeout bounds a single roster download
const DefaultTimeout = 10 * time.Second

// maxBodySize caps the downloaded sheet
const maxBodySize = 32 << 20

// HTTP implements RosterSource by downloading a published sheet
type HTTP struct {
	url    string
	client *http.Client
}

// HTTPOption configures the HTTP source
type HTTPOption func(s *HTTP)

// WithHTTPClient replaces the underlying client. The client's own timeout is kept.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTP) {
		if c != nil {
			s.client = c
		}
	}
}

// NewHTTP creates a source that issues one GET to url per Fetch
func NewHTTP(url string, timeout time.Duration, opts ...HTTPOption) *HTTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s := &HTTP{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the source URL
func (s *HTTP) URL() string {
	return s.url
}

// Location implements RosterSource
func (s *HTTP) Location() string {
	return s.url
}

// Fetch downloads the CSV body. No retry and no caching.
func (s *HTTP) Fetch(ctx context.Context) ([]byte, error) {
	logger := ctxlog.From(ctx)
	logger.Info("Downloading roster", slog.String("url", s.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request",
			goerr.V("url", s.url),
			goerr.T(model.ErrTagFetch))
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, goerr.Wrap(err, "the request timed out",
				goerr.V("url", s.url),
				goerr.V("timeout", s.client.Timeout),
				goerr.T(model.ErrTagFetch))
		}
		return nil, goerr.Wrap(err, "failed to download roster",
			goerr.V("url", s.url),
			goerr.T(model.ErrTagFetch))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, goerr.New("unexpected HTTP status",
			goerr.V("url", s.url),
			goerr.V("status", resp.Status),
			goerr.T(model.ErrTagFetch))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body",
			goerr.V("url", s.url),
			goerr.T(model.ErrTagFetch))
	}

	logger.Info("Roster downloaded",
		slog.Int("bytes", len(body)),
		slog.String("content_type", resp.Header.Get("Content-Type")),
	)
	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
