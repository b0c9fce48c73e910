package config

import (
	"log/slog"
	"os"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Chart holds the path of the optional chart configuration file
type Chart struct {
	Path string
}

// Flags returns CLI flags for Chart configuration
func (c *Chart) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "chart-config",
			Usage:       "YAML file overriding role colours, new member cutoff and team size matching",
			Category:    "Chart",
			Sources:     cli.EnvVars("STAFFCHART_CHART_CONFIG"),
			Destination: &c.Path,
			TakesFile:   true,
		},
	}
}

// Configure returns the chart settings, the defaults when no file is set
func (c *Chart) Configure() (*model.ChartSettings, error) {
	if c.Path == "" {
		settings := model.DefaultChartSettings()
		return &settings, nil
	}

	cfg, err := LoadChartConfigFromFile(c.Path)
	if err != nil {
		return nil, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, goerr.Wrap(err, "invalid chart configuration", goerr.V("path", c.Path))
	}
	return settings, nil
}

// LogValue returns structured log value
func (c Chart) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", c.Path),
	)
}

// LoadChartConfigFromFile loads the chart configuration from a YAML file
func LoadChartConfigFromFile(path string) (*model.ChartConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path),
				goerr.T(model.ErrTagInvalidInput))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var config model.ChartConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path),
			goerr.T(model.ErrTagInvalidInput))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return &config, nil
}
