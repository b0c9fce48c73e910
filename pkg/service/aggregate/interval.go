// Package aggregate reduces a roster into the series each chart draws.
// Every function is a pure function of its inputs.
package aggregate

import (
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
)

// ExtractIntervals collapses one member column into role intervals.
//
// An interval is closed when the role changes and emitted only if its role is
// visible in the palette; the anchor is reset on every change whether or not
// the closed interval was emitted. An interval still open after the last row
// ends on lastDate. The name label goes on the first visible interval of a stint
// that starts after cutoff; moving into Retired/Removed starts a new stint.
func ExtractIntervals(member types.MemberName, row int, dates []time.Time, roles []types.Role, lastDate time.Time, settings model.ChartSettings) []model.RoleInterval {
	var (
		out      []model.RoleInterval
		current  types.Role
		start    time.Time
		open     bool
		newStaff = true
	)

	emit := func(end time.Time) {
		iv := model.RoleInterval{
			Member: member,
			Row:    row,
			Role:   current,
			Start:  start,
			End:    end,
		}
		if newStaff && start.After(settings.NewMemberCutoff) {
			iv.NewMember = true
			newStaff = false
		}
		out = append(out, iv)
	}

	for i, date := range dates {
		role := roles[i]
		if open && role == current {
			continue
		}
		if open && settings.Palette.Visible(current) {
			emit(date)
		}
		if role == types.RoleRetired {
			newStaff = true
		}
		current = role
		start = date
		open = true
	}

	if open && settings.Palette.Visible(current) {
		emit(lastDate)
	}
	return out
}

// Timeline extracts the intervals of every member, in column order
func Timeline(r *model.Roster, settings model.ChartSettings) *model.Timeline {
	tl := &model.Timeline{
		Members: r.Members(),
	}
	last, ok := r.LastDate()
	if !ok {
		return tl
	}
	tl.Start = r.Date(0)
	tl.End = last

	dates := r.Dates()
	for col, member := range r.Members() {
		tl.Intervals = append(tl.Intervals,
			ExtractIntervals(member, col, dates, r.Column(col), last, settings)...)
	}
	return tl
}
