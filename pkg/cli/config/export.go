package config

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Export holds the optional data workbook destination
type Export struct {
	XLSXPath string
}

// Flags returns CLI flags for Export configuration
func (e *Export) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "xlsx",
			Usage:       "Also write the roster and chart data to this .xlsx workbook",
			Category:    "Export",
			Sources:     cli.EnvVars("STAFFCHART_XLSX"),
			Destination: &e.XLSXPath,
			TakesFile:   true,
		},
	}
}

// IsConfigured reports whether a workbook should be written
func (e *Export) IsConfigured() bool {
	return e.XLSXPath != ""
}

// Validate validates the export configuration
func (e *Export) Validate() error {
	if !e.IsConfigured() {
		return nil
	}
	if ext := strings.ToLower(filepath.Ext(e.XLSXPath)); ext != ".xlsx" {
		return goerr.New("workbook path must end with .xlsx",
			goerr.V("path", e.XLSXPath),
			goerr.T(model.ErrTagInvalidInput))
	}
	return nil
}

// LogValue returns structured log value
func (e Export) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("xlsx", e.XLSXPath),
	)
}
