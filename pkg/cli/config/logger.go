package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

var logFormats = map[string]logging.Format{
	"":        logging.FormatAuto,
	"auto":    logging.FormatAuto,
	"console": logging.FormatConsole,
	"json":    logging.FormatJSON,
}

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string

	// Output defaults to stderr; stdout carries the prompts
	Output io.Writer
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "warn",
			Sources:     cli.EnvVars("STAFFCHART_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("STAFFCHART_LOG_FORMAT"),
			Destination: &l.Format,
		},
	}
}

// Configure validates the settings and builds the logger
func (l *Logger) Configure() (*slog.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	w := l.Output
	if w == nil {
		w = os.Stderr
	}
	format := logFormats[strings.ToLower(l.Format)]
	return logging.NewLoggerWithFormat(logging.ParseLogLevel(l.Level), w, format), nil
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
	)
}

// Validate validates the logger configuration
func (l *Logger) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		return goerr.New("invalid log level", goerr.V("level", l.Level))
	}

	if _, ok := logFormats[strings.ToLower(l.Format)]; !ok {
		return goerr.New("invalid log format", goerr.V("format", l.Format))
	}
	return nil
}
