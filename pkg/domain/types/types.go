package types

import (
	"github.com/google/uuid"
)

// MemberName identifies a staff member by the column header of the roster sheet
type MemberName string

// String returns the string representation
func (n MemberName) String() string {
	return string(n)
}

// RunID identifies a single chart generation run
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

// ChartKind represents one of the charts the tool can generate
type ChartKind string

const (
	ChartTeamSize           ChartKind = "team-size"
	ChartTenure             ChartKind = "tenure"
	ChartTenureDistribution ChartKind = "tenure-distribution"
	ChartTimeline           ChartKind = "timeline"
)

// String returns the string representation
func (k ChartKind) String() string {
	return string(k)
}

// Title returns the human readable chart title
func (k ChartKind) Title() string {
	switch k {
	case ChartTeamSize:
		return "Team Size Over Time by Role"
	case ChartTenure:
		return "Duration in Staff Roles per Member"
	case ChartTenureDistribution:
		return "Tenure Distribution by Role"
	case ChartTimeline:
		return "Staff Timeline"
	default:
		return string(k)
	}
}

// IsValid checks if the chart kind is known
func (k ChartKind) IsValid() bool {
	switch k {
	case ChartTeamSize, ChartTenure, ChartTenureDistribution, ChartTimeline:
		return true
	default:
		return false
	}
}

// AllChartKinds returns the charts in menu order
func AllChartKinds() []ChartKind {
	return []ChartKind{ChartTeamSize, ChartTenure, ChartTenureDistribution, ChartTimeline}
}
