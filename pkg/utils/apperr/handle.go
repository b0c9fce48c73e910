package apperr

import (
	"context"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle reports err through the context logger
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error(Describe(err), "error", err)
}

// Describe returns a short summary of the failure class of err
func Describe(err error) string {
	switch {
	case goerr.HasTag(err, model.ErrTagFetch):
		return "failed to download roster"
	case goerr.HasTag(err, model.ErrTagParse):
		return "failed to read roster"
	case goerr.HasTag(err, model.ErrTagInvalidInput):
		return "invalid input"
	default:
		return "application error"
	}
}
