package model

import (
	"sort"
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Roster is the date by member grid of role assignments. Rows are kept in
// ascending date order.
type Roster struct {
	dates   []time.Time
	members []types.MemberName
	cells   [][]types.Role // [row][member]
}

// NewRoster creates a roster from parsed rows. Rows shorter than the member
// list are padded with empty cells; rows are sorted by date (stable).
func NewRoster(members []types.MemberName, dates []time.Time, cells [][]types.Role) (*Roster, error) {
	if len(dates) != len(cells) {
		return nil, goerr.New("row count mismatch",
			goerr.V("dates", len(dates)),
			goerr.V("rows", len(cells)))
	}

	seen := make(map[types.MemberName]bool, len(members))
	for _, m := range members {
		if seen[m] {
			return nil, goerr.New("duplicate member column", goerr.V("member", m))
		}
		seen[m] = true
	}

	type row struct {
		date  time.Time
		roles []types.Role
	}
	rows := make([]row, len(dates))
	for i := range dates {
		if len(cells[i]) > len(members) {
			return nil, goerr.New("row has more cells than members",
				goerr.V("row", i),
				goerr.V("cells", len(cells[i])),
				goerr.V("members", len(members)))
		}
		roles := make([]types.Role, len(members))
		copy(roles, cells[i])
		rows[i] = row{date: dates[i], roles: roles}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].date.Before(rows[j].date)
	})

	r := &Roster{
		dates:   make([]time.Time, len(rows)),
		members: append([]types.MemberName(nil), members...),
		cells:   make([][]types.Role, len(rows)),
	}
	for i, rw := range rows {
		r.dates[i] = rw.date
		r.cells[i] = rw.roles
	}
	return r, nil
}

// Len returns the number of date rows
func (r *Roster) Len() int {
	return len(r.dates)
}

// IsEmpty reports whether the roster has no rows
func (r *Roster) IsEmpty() bool {
	return len(r.dates) == 0
}

// Dates returns the row dates in ascending order. The slice must not be modified.
func (r *Roster) Dates() []time.Time {
	return r.dates
}

// Members returns member names in column order. The slice must not be modified.
func (r *Roster) Members() []types.MemberName {
	return r.members
}

// Date returns the date of the given row
func (r *Roster) Date(row int) time.Time {
	return r.dates[row]
}

// LastDate returns the latest date in the roster
func (r *Roster) LastDate() (time.Time, bool) {
	if r.IsEmpty() {
		return time.Time{}, false
	}
	return r.dates[len(r.dates)-1], true
}

// Role returns the role held by member col on row
func (r *Roster) Role(row, col int) types.Role {
	return r.cells[row][col]
}

// Row returns all cells of one date row. The slice must not be modified.
func (r *Roster) Row(row int) []types.Role {
	return r.cells[row]
}

// Column returns one member's roles in date order
func (r *Roster) Column(col int) []types.Role {
	out := make([]types.Role, len(r.cells))
	for i, row := range r.cells {
		out[i] = row[col]
	}
	return out
}

// MemberIndex returns the column index of a member
func (r *Roster) MemberIndex(name types.MemberName) (int, error) {
	for i, m := range r.members {
		if m == name {
			return i, nil
		}
	}
	return -1, goerr.Wrap(ErrUnknownMember, "lookup failed", goerr.V("member", name))
}

// Until returns a roster restricted to rows dated on or before the calendar
// date of t, taken in t's own location. Row dates are calendar dates held as
// UTC midnights.
func (r *Roster) Until(t time.Time) *Roster {
	y, m, d := t.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)

	// rows are sorted, so the cut is a prefix
	n := sort.Search(len(r.dates), func(i int) bool {
		return !r.dates[i].Before(next)
	})
	return &Roster{
		dates:   r.dates[:n],
		members: r.members,
		cells:   r.cells[:n],
	}
}
