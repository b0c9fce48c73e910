package model_test

import (
	"testing"
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestChartConfigSettings(t *testing.T) {
	t.Run("empty config yields defaults", func(t *testing.T) {
		cfg := model.ChartConfig{}
		s, err := cfg.Settings()
		gt.NoError(t, err).Required()
		gt.Equal(t, s.TeamSizeMatch, model.MatchExact)
		gt.Equal(t, s.NewMemberCutoff, model.DefaultNewMemberCutoff)
		gt.Equal(t, s.Palette.ColorName(types.RoleAdmin), "red")
		gt.False(t, s.Palette.Visible(types.RoleRetired))
	})

	t.Run("palette override merges with defaults", func(t *testing.T) {
		cfg := model.ChartConfig{
			Palette: map[string]string{
				"Helper":          "#00ff00",
				"Retired/Removed": "gray",
			},
		}
		s, err := cfg.Settings()
		gt.NoError(t, err).Required()
		gt.Equal(t, s.Palette.ColorName(types.RoleHelper), "#00ff00")
		gt.True(t, s.Palette.Visible(types.RoleRetired))
		gt.Equal(t, s.Palette.ColorName(types.RoleModerator), "blue")
	})

	t.Run("cutoff and match mode", func(t *testing.T) {
		cfg := model.ChartConfig{
			NewMemberCutoff: "2021-01-31",
			TeamSizeMatch:   model.MatchSubstring,
		}
		s, err := cfg.Settings()
		gt.NoError(t, err).Required()
		gt.Equal(t, s.NewMemberCutoff, time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC))
		gt.Equal(t, s.TeamSizeMatch, model.MatchSubstring)
	})

	t.Run("error on unknown colour", func(t *testing.T) {
		cfg := model.ChartConfig{Palette: map[string]string{"Admin": "not-a-colour"}}
		err := cfg.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvalidInput)).True()
	})

	t.Run("error on bad cutoff", func(t *testing.T) {
		cfg := model.ChartConfig{NewMemberCutoff: "25/08/2019"}
		gt.Error(t, cfg.Validate())
	})

	t.Run("error on bad match mode", func(t *testing.T) {
		cfg := model.ChartConfig{TeamSizeMatch: "fuzzy"}
		gt.Error(t, cfg.Validate())
	})
}

func TestParseColor(t *testing.T) {
	c, err := model.ParseColor("#ff8000")
	gt.NoError(t, err)
	r, g, b, _ := c.RGBA()
	gt.Equal(t, r>>8, uint32(0xff))
	gt.Equal(t, g>>8, uint32(0x80))
	gt.Equal(t, b>>8, uint32(0x00))

	_, err = model.ParseColor("Teal")
	gt.NoError(t, err)

	_, err = model.ParseColor("#fff")
	gt.Error(t, err)
}

func TestPaletteUnknownRoleIsHidden(t *testing.T) {
	p := model.DefaultPalette()
	gt.False(t, p.Visible(types.Role("Owner")))
	_, ok := p.Color(types.Role("Owner"))
	gt.False(t, ok)
	_, ok = p.Color(types.RoleCurator)
	gt.True(t, ok)
}
