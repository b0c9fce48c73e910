package aggregate

import (
	"sort"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
)

// Tenure counts the rows each member spent under every non-empty label and
// ranks members by their total, highest first. Members without any label are
// left out; ties keep column order.
func Tenure(r *model.Roster) *model.Tenure {
	t := &model.Tenure{}
	seen := make(map[types.Role]bool)
	for _, role := range types.CountableRoles() {
		t.Roles = append(t.Roles, role)
		seen[role] = true
	}

	for col, member := range r.Members() {
		row := model.TenureRow{
			Member: member,
			Counts: make(map[types.Role]int),
		}
		for i := 0; i < r.Len(); i++ {
			cell := r.Role(i, col)
			if cell.IsEmpty() {
				continue
			}
			row.Counts[cell]++
			row.Total++
			if !seen[cell] {
				seen[cell] = true
				t.Roles = append(t.Roles, cell)
			}
		}
		if row.Total > 0 {
			t.Rows = append(t.Rows, row)
		}
	}

	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].Total > t.Rows[j].Total
	})
	return t
}

// TenureDistribution collects, per countable role, the row counts of members
// who held that role at least once
func TenureDistribution(t *model.Tenure) *model.TenureDistribution {
	roles := types.CountableRoles()
	d := &model.TenureDistribution{
		Roles:  roles,
		Values: make(map[types.Role][]int, len(roles)),
	}
	for _, role := range roles {
		values := []int{}
		for _, row := range t.Rows {
			if n := row.Count(role); n > 0 {
				values = append(values, n)
			}
		}
		d.Values[role] = values
	}
	return d
}
