package model

import (
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
)

// RoleInterval is a maximal contiguous date range during which a member held one role
type RoleInterval struct {
	Member types.MemberName
	// Row is the member's column index in the roster, used as the timeline row
	Row   int
	Role  types.Role
	Start time.Time
	End   time.Time
	// NewMember is set on the interval that carries the member's name label
	NewMember bool
}

// Duration returns End - Start
func (i RoleInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Days returns the interval length in whole days
func (i RoleInterval) Days() int {
	return int(i.Duration() / (24 * time.Hour))
}

// Midpoint returns the centre of the interval
func (i RoleInterval) Midpoint() time.Time {
	return i.Start.Add(i.Duration() / 2)
}
