package model

import (
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
)

// TeamSize holds per-role member counts aligned with Dates
type TeamSize struct {
	Dates  []time.Time
	Roles  []types.Role
	Counts map[types.Role][]int
	Total  []int
}

// Series returns the count series of a role, or nil when the role was not aggregated
func (s *TeamSize) Series(r types.Role) []int {
	return s.Counts[r]
}

// TenureRow is the per-role row count of one member
type TenureRow struct {
	Member types.MemberName
	Counts map[types.Role]int
	Total  int
}

// Count returns the number of rows the member held role r
func (r TenureRow) Count(role types.Role) int {
	return r.Counts[role]
}

// Tenure holds members ranked by total row count, highest first
type Tenure struct {
	Rows []TenureRow
	// Roles lists every label seen: countable roles first, then others by first appearance
	Roles []types.Role
}

// Members returns member names in ranking order
func (t *Tenure) Members() []types.MemberName {
	out := make([]types.MemberName, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row.Member
	}
	return out
}

// Values returns the counts of one role in ranking order
func (t *Tenure) Values(r types.Role) []int {
	out := make([]int, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row.Counts[r]
	}
	return out
}

// TenureDistribution holds, per countable role, the row counts of every member
// who held the role at least once
type TenureDistribution struct {
	Roles  []types.Role
	Values map[types.Role][]int
}

// Timeline is the interval list of every member
type Timeline struct {
	Members   []types.MemberName
	Intervals []RoleInterval
	Start     time.Time
	End       time.Time
}

// ByMember groups intervals by roster column
func (t *Timeline) ByMember() [][]RoleInterval {
	out := make([][]RoleInterval, len(t.Members))
	for _, iv := range t.Intervals {
		out[iv.Row] = append(out[iv.Row], iv)
	}
	return out
}
