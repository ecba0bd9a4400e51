package quote

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, q *Quote) error
	GetByQuoteID(ctx context.Context, quoteID string) (*Quote, error)
	// GetByQuoteIDForUpdate locks the row (SELECT ... FOR UPDATE); use inside a tx.
	GetByQuoteIDForUpdate(ctx context.Context, quoteID string) (*Quote, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]Quote, error)
	ListAll(ctx context.Context) ([]Quote, error)
	Save(ctx context.Context, q *Quote) error
	Delete(ctx context.Context, q *Quote) error
	// ExpireDue stamps stored-active quotes whose expiry has elapsed; returns rows affected.
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}
