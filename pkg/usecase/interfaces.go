package usecase

import (
	"context"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
)

// ChartUseCase defines the interface for generating one chart
type ChartUseCase interface {
	// Run fetches the roster, renders the chart and saves it where the user asks
	Run(ctx context.Context, kind types.ChartKind) (*ChartResult, error)
}

var _ ChartUseCase = (*Chart)(nil)
