package chart

import (
	"image/color"
	"math"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// TeamSize draws the per-role counts as stacked areas with the total as a black line
func TeamSize(ts *model.TeamSize, palette model.Palette) (*plot.Plot, error) {
	if len(ts.Dates) == 0 {
		return nil, goerr.Wrap(model.ErrEmptyRoster, "nothing to plot")
	}

	p := plot.New()
	p.Title.Text = "Team Size Over Time by Role"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Number of Members"
	p.X.Tick.Marker = monthTicks{interval: 1, format: "2006-01"}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.X.Tick.Label.Font.Size = vg.Points(7)
	p.Y.Min = 0
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)

	lower := make([]float64, len(ts.Dates))
	for _, role := range ts.Roles {
		counts := ts.Series(role)
		upper := make([]float64, len(ts.Dates))
		for i := range upper {
			upper[i] = lower[i] + float64(counts[i])
		}

		// the band is the upper edge forward and the lower edge back
		band := make(plotter.XYs, 0, 2*len(ts.Dates))
		for i, d := range ts.Dates {
			band = append(band, plotter.XY{X: unix(d), Y: upper[i]})
		}
		for i := len(ts.Dates) - 1; i >= 0; i-- {
			band = append(band, plotter.XY{X: unix(ts.Dates[i]), Y: lower[i]})
		}

		poly, err := plotter.NewPolygon(band)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build area", goerr.V("role", role))
		}
		c, ok := palette.Color(role)
		if !ok {
			c = color.Gray{Y: 0xa0}
		}
		poly.Color = c
		poly.LineStyle.Width = 0
		p.Add(poly)
		p.Legend.Add(role.String(), poly)

		lower = upper
	}

	total := make(plotter.XYs, len(ts.Dates))
	for i, d := range ts.Dates {
		total[i] = plotter.XY{X: unix(d), Y: float64(ts.Total[i])}
	}
	line, err := plotter.NewLine(total)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build total line")
	}
	line.LineStyle.Color = color.Black
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Total", line)

	return p, nil
}
