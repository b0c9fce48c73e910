package types

import "strings"

// Role represents the label found in a roster cell
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleModerator Role = "Moderator"
	RoleCurator   Role = "Curator"
	RoleHelper    Role = "Helper"
	RoleRetired   Role = "Retired/Removed"
	// RoleNone is an empty cell: no role asserted that day
	RoleNone Role = ""
)

// ParseRole normalizes a raw cell value. Blank and NaN-like cells become RoleNone.
func ParseRole(raw string) Role {
	v := strings.TrimSpace(raw)
	switch strings.ToLower(v) {
	case "", "nan", "null", "none", "n/a", "na", "#n/a":
		return RoleNone
	}
	return Role(v)
}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// IsEmpty reports whether the cell carried no role
func (r Role) IsEmpty() bool {
	return r == RoleNone
}

// IsCountable reports whether the role counts towards team size
func (r Role) IsCountable() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleCurator, RoleHelper:
		return true
	default:
		return false
	}
}

// IsKnown checks if the role belongs to the roster vocabulary
func (r Role) IsKnown() bool {
	return r.IsCountable() || r == RoleRetired || r == RoleNone
}

// CountableRoles returns the staff roles in stacking order (bottom first)
func CountableRoles() []Role {
	return []Role{RoleAdmin, RoleModerator, RoleCurator, RoleHelper}
}
