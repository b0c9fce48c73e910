package chart

import (
	"time"

	"gonum.org/v1/plot"
)

// monthTicks places a labelled tick on the first day of every interval-th month
type monthTicks struct {
	interval int
	format   string
}

// Ticks implements plot.Ticker
func (m monthTicks) Ticks(min, max float64) []plot.Tick {
	step := m.interval
	if step < 1 {
		step = 1
	}
	format := m.format
	if format == "" {
		format = "2006-01"
	}

	lo := time.Unix(int64(min), 0).UTC()
	t := time.Date(lo.Year(), lo.Month(), 1, 0, 0, 0, 0, time.UTC)
	if t.Before(lo) {
		t = t.AddDate(0, 1, 0)
	}

	var ticks []plot.Tick
	for ; unix(t) <= max; t = t.AddDate(0, step, 0) {
		ticks = append(ticks, plot.Tick{Value: unix(t), Label: t.Format(format)})
	}
	return ticks
}

// monthInterval picks a step that keeps at most limit labels between start and end
func monthInterval(start, end time.Time, limit int) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month()) + 1
	if limit < 1 || months <= limit {
		return 1
	}
	return (months + limit - 1) / limit
}
