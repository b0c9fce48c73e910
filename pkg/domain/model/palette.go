package model

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/image/colornames"
)

// ColorNone marks roles that are not drawn (gaps, retired periods)
const ColorNone = "none"

// Palette maps a role to a colour name, a #rrggbb value or ColorNone
type Palette map[types.Role]string

// DefaultPalette returns the colours used by the published charts
func DefaultPalette() Palette {
	return Palette{
		types.RoleAdmin:     "red",
		types.RoleModerator: "blue",
		types.RoleCurator:   "purple",
		types.RoleHelper:    "teal",
		types.RoleRetired:   ColorNone,
		types.RoleNone:      ColorNone,
	}
}

// ColorName returns the configured colour for a role. Roles missing from the
// palette are treated as ColorNone.
func (p Palette) ColorName(r types.Role) string {
	if c, ok := p[r]; ok && c != "" {
		return c
	}
	return ColorNone
}

// Visible reports whether bars should be drawn for the role
func (p Palette) Visible(r types.Role) bool {
	return p.ColorName(r) != ColorNone
}

// Color resolves the role colour. ok is false for ColorNone.
func (p Palette) Color(r types.Role) (c color.Color, ok bool) {
	name := p.ColorName(r)
	if name == ColorNone {
		return nil, false
	}
	c, err := ParseColor(name)
	if err != nil {
		return nil, false
	}
	return c, true
}

// Merge returns a copy of p overridden by other
func (p Palette) Merge(other Palette) Palette {
	out := make(Palette, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Validate checks every colour can be resolved
func (p Palette) Validate() error {
	for role, name := range p {
		if name == ColorNone {
			continue
		}
		if _, err := ParseColor(name); err != nil {
			return goerr.Wrap(err, "invalid palette entry", goerr.V("role", role))
		}
	}
	return nil
}

// ParseColor resolves an SVG colour name or a #rrggbb hex value
func ParseColor(name string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(v, "#") {
		if len(v) != 7 {
			return nil, goerr.New("hex colour must be #rrggbb", goerr.V("color", name))
		}
		n, err := strconv.ParseUint(v[1:], 16, 32)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid hex colour", goerr.V("color", name))
		}
		return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
	}
	c, ok := colornames.Map[v]
	if !ok {
		return nil, goerr.New("unknown colour name", goerr.V("color", name))
	}
	return c, nil
}
