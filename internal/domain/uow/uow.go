package uow

import (
	"context"

	"suremotor-backend/internal/domain/claim"
	"suremotor-backend/internal/domain/policy"
	"suremotor-backend/internal/domain/quote"
)

type Repos struct {
	Quotes   quote.Repository
	Policies policy.Repository
	Claims   claim.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the quote row first, then pass it in — used by the
	// purchase flow so concurrent conversions of one quote serialize.
	WithinQuoteTx(ctx context.Context, quoteID string, fn func(r Repos, q *quote.Quote) error) error
}
