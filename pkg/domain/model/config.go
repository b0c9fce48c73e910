package model

import (
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// MatchMode controls how the team size aggregator compares cells to roles
type MatchMode string

const (
	// MatchExact compares the whole cell with the role label
	MatchExact MatchMode = "exact"
	// MatchSubstring counts a cell when it contains the role label
	MatchSubstring MatchMode = "substring"
)

// IsValid checks if the match mode is known
func (m MatchMode) IsValid() bool {
	return m == MatchExact || m == MatchSubstring
}

// DefaultNewMemberCutoff is the date after which a member's first interval gets a name label
var DefaultNewMemberCutoff = time.Date(2019, 8, 25, 0, 0, 0, 0, time.UTC)

// ChartConfig represents the optional chart configuration file
type ChartConfig struct {
	Palette         map[string]string `yaml:"palette,omitempty"`           // Role label to colour name, #rrggbb or "none"
	NewMemberCutoff string            `yaml:"new_member_cutoff,omitempty"` // YYYY-MM-DD
	TeamSizeMatch   MatchMode         `yaml:"team_size_match,omitempty"`   // exact or substring
}

// Validate validates the chart configuration
func (c *ChartConfig) Validate() error {
	_, err := c.Settings()
	return err
}

// Settings resolves the configuration on top of DefaultChartSettings
func (c *ChartConfig) Settings() (*ChartSettings, error) {
	s := DefaultChartSettings()

	if len(c.Palette) > 0 {
		override := make(Palette, len(c.Palette))
		for role, name := range c.Palette {
			override[types.ParseRole(role)] = name
		}
		s.Palette = s.Palette.Merge(override)
	}
	if err := s.Palette.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid palette", goerr.T(ErrTagInvalidInput))
	}

	if c.NewMemberCutoff != "" {
		cutoff, err := time.Parse(time.DateOnly, c.NewMemberCutoff)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid new member cutoff",
				goerr.V("value", c.NewMemberCutoff),
				goerr.T(ErrTagInvalidInput))
		}
		s.NewMemberCutoff = cutoff
	}

	if c.TeamSizeMatch != "" {
		if !c.TeamSizeMatch.IsValid() {
			return nil, goerr.New("invalid team size match mode",
				goerr.V("mode", c.TeamSizeMatch),
				goerr.T(ErrTagInvalidInput))
		}
		s.TeamSizeMatch = c.TeamSizeMatch
	}

	return &s, nil
}

// ChartSettings are the resolved values used by the aggregators and renderers
type ChartSettings struct {
	Palette         Palette
	NewMemberCutoff time.Time
	TeamSizeMatch   MatchMode
}

// DefaultChartSettings returns the settings used without a configuration file
func DefaultChartSettings() ChartSettings {
	return ChartSettings{
		Palette:         DefaultPalette(),
		NewMemberCutoff: DefaultNewMemberCutoff,
		TeamSizeMatch:   MatchExact,
	}
}
