package interfaces

import (
	"context"
)

// RosterSource provides the raw roster CSV
type RosterSource interface {
	// Fetch returns the CSV body. No retry and no caching.
	Fetch(ctx context.Context) ([]byte, error)
	// Location names where the roster is fetched from
	Location() string
}
