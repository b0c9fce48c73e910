package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Tenure draws one stacked bar per member, ranked as in tn
func Tenure(tn *model.Tenure, palette model.Palette) (*plot.Plot, error) {
	if len(tn.Rows) == 0 {
		return nil, goerr.Wrap(model.ErrEmptyRoster, "no member ever held a role")
	}

	p := plot.New()
	p.Title.Text = "Duration in Staff Roles for Each Staff Member"
	p.X.Label.Text = "Staff Member"
	p.Y.Label.Text = "Days in Role"
	p.Y.Min = 0
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)

	width := Width * 0.8 / vg.Length(len(tn.Rows)) * 0.8
	var below *plotter.BarChart
	for _, role := range types.CountableRoles() {
		values := make(plotter.Values, len(tn.Rows))
		for i, v := range tn.Values(role) {
			values[i] = float64(v)
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build bars", goerr.V("role", role))
		}
		c, ok := palette.Color(role)
		if !ok {
			continue
		}
		bars.Color = c
		bars.LineStyle.Width = 0
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		p.Legend.Add(role.String(), bars)
		below = bars
	}

	names := make([]string, len(tn.Rows))
	for i, m := range tn.Members() {
		names[i] = m.String()
	}
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.X.Tick.Label.Font.Size = vg.Points(8)

	return p, nil
}

// grid lays out plots in rows and columns on one canvas
type grid struct {
	plots [][]*plot.Plot
}

// Draw implements Figure
func (g grid) Draw(c draw.Canvas) {
	tiles := draw.Tiles{
		Rows:      len(g.plots),
		Cols:      len(g.plots[0]),
		PadX:      vg.Millimeter * 8,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align(g.plots, tiles, c)
	for j := range g.plots {
		for i := range g.plots[j] {
			g.plots[j][i].Draw(canvases[j][i])
		}
	}
}

// maxBins bounds the number of histogram bars per role
const maxBins = 12

// TenureDistribution draws a 2x2 grid of histograms, one per countable role
func TenureDistribution(dist *model.TenureDistribution, palette model.Palette) (Figure, error) {
	if len(dist.Roles) != 4 {
		return nil, goerr.New("expected four roles", goerr.V("roles", dist.Roles))
	}

	g := grid{plots: [][]*plot.Plot{make([]*plot.Plot, 2), make([]*plot.Plot, 2)}}
	for k, role := range dist.Roles {
		p, err := histogram(role, dist.Values[role], palette)
		if err != nil {
			return nil, err
		}
		g.plots[k/2][k%2] = p
	}
	return g, nil
}

func histogram(role types.Role, values []int, palette model.Palette) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%d members)", role, len(values))
	p.X.Label.Text = "Days in Role"
	p.Y.Label.Text = "Members"
	p.Y.Min = 0

	if len(values) == 0 {
		p.NominalX("no data")
		return p, nil
	}

	labels, counts := bin(values, maxBins)
	bars, err := plotter.NewBarChart(counts, Width/4/vg.Length(len(counts)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build histogram", goerr.V("role", role))
	}
	c, ok := palette.Color(role)
	if !ok {
		c = color.Gray{Y: 0xa0}
	}
	bars.Color = c
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.X.Tick.Label.Font.Size = vg.Points(7)
	return p, nil
}

// bin groups values into at most n equal-width integer bins
func bin(values []int, n int) ([]string, plotter.Values) {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo + 1
	if n > span {
		n = span
	}
	if n > len(values) {
		n = len(values)
	}
	size := (span + n - 1) / n
	n = (span + size - 1) / size

	counts := make(plotter.Values, n)
	labels := make([]string, n)
	for i := range labels {
		from := lo + i*size
		to := from + size - 1
		if size == 1 {
			labels[i] = fmt.Sprintf("%d", from)
		} else {
			labels[i] = fmt.Sprintf("%d-%d", from, to)
		}
	}
	for _, v := range values {
		counts[(v-lo)/size]++
	}
	return labels, counts
}
