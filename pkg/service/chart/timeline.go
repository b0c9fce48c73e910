package chart

import (
	"image/color"
	"math"
	"strconv"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// TimelineOptions control the optional annotations of the timeline
type TimelineOptions struct {
	// Durations writes the length in days at the centre of every bar
	Durations bool
}

var (
	rowShade  = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0x80}
	barHeight = 0.8
	labelSize = vg.Points(4)
)

// Timeline draws one horizontal bar per interval, one row per member
func Timeline(tl *model.Timeline, palette model.Palette, opts TimelineOptions) (*plot.Plot, error) {
	if len(tl.Members) == 0 {
		return nil, goerr.Wrap(model.ErrNoMembers, "nothing to plot")
	}
	if tl.End.IsZero() {
		return nil, goerr.Wrap(model.ErrEmptyRoster, "nothing to plot")
	}

	p := plot.New()
	p.Title.Text = "Staff Timeline"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Staff Members"
	p.X.Tick.Marker = monthTicks{interval: monthInterval(tl.Start, tl.End, 36), format: "2006-01"}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.X.Tick.Label.Font.Size = vg.Points(7)

	p.Add(&rowShading{rows: len(tl.Members), start: unix(tl.Start), end: unix(tl.End)})

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)

	p.Add(&intervalBars{
		intervals: tl.Intervals,
		palette:   palette,
		durations: opts.Durations,
		rows:      len(tl.Members),
		start:     unix(tl.Start),
		end:       unix(tl.End),
	})

	names := make([]string, len(tl.Members))
	for i, m := range tl.Members {
		names[i] = m.String()
	}
	p.NominalY(names...)
	p.Y.Tick.Label.Font.Size = labelSize

	return p, nil
}

// rowShading fills every even member row with a light grey band
type rowShading struct {
	rows       int
	start, end float64
}

// Plot implements plot.Plotter
func (s *rowShading) Plot(c draw.Canvas, plt *plot.Plot) {
	_, trY := plt.Transforms(&c)
	for i := 0; i < s.rows; i += 2 {
		y0 := trY(float64(i) - 0.5)
		y1 := trY(float64(i) + 0.5)
		c.FillPolygon(rowShade, []vg.Point{
			{X: c.Min.X, Y: y0},
			{X: c.Max.X, Y: y0},
			{X: c.Max.X, Y: y1},
			{X: c.Min.X, Y: y1},
		})
	}
}

// DataRange implements plot.DataRanger
func (s *rowShading) DataRange() (xmin, xmax, ymin, ymax float64) {
	return s.start, s.end, -0.5, float64(s.rows) - 0.5
}

// intervalBars draws role intervals with their optional annotations
type intervalBars struct {
	intervals  []model.RoleInterval
	palette    model.Palette
	durations  bool
	rows       int
	start, end float64
}

// Plot implements plot.Plotter
func (b *intervalBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	annotation := text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, labelSize),
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	name := annotation
	name.XAlign = text.XRight

	for _, iv := range b.intervals {
		fill, ok := b.palette.Color(iv.Role)
		if !ok {
			continue
		}
		x0 := trX(unix(iv.Start))
		x1 := trX(unix(iv.End))
		y0 := trY(float64(iv.Row) - barHeight/2)
		y1 := trY(float64(iv.Row) + barHeight/2)
		c.FillPolygon(fill, []vg.Point{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		})

		mid := trY(float64(iv.Row))
		if iv.NewMember {
			c.FillText(name, vg.Point{X: x0, Y: mid}, iv.Member.String()+" ")
		}
		if b.durations {
			c.FillText(annotation, vg.Point{X: trX(unix(iv.Midpoint())), Y: mid}, strconv.Itoa(iv.Days()))
		}
	}
}

// DataRange implements plot.DataRanger
func (b *intervalBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	return b.start, b.end, -0.5, float64(b.rows) - 0.5
}
