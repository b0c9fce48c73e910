package aggregate

import (
	"strings"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
)

// TeamSize counts, for each date and countable role, the members holding it
func TeamSize(r *model.Roster, mode model.MatchMode) *model.TeamSize {
	roles := types.CountableRoles()
	ts := &model.TeamSize{
		Dates:  r.Dates(),
		Roles:  roles,
		Counts: make(map[types.Role][]int, len(roles)),
		Total:  make([]int, r.Len()),
	}
	for _, role := range roles {
		ts.Counts[role] = make([]int, r.Len())
	}

	for i := 0; i < r.Len(); i++ {
		for _, cell := range r.Row(i) {
			for _, role := range roles {
				if matches(cell, role, mode) {
					ts.Counts[role][i]++
					ts.Total[i]++
				}
			}
		}
	}
	return ts
}

func matches(cell, role types.Role, mode model.MatchMode) bool {
	if cell.IsEmpty() {
		return false
	}
	if mode == model.MatchSubstring {
		return strings.Contains(string(cell), string(role))
	}
	return cell == role
}
