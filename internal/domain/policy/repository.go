package policy

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p *Policy) error
	GetByPolicyID(ctx context.Context, policyID string) (*Policy, error)
	// GetByQuoteID returns the policy issued from a quote, if any.
	GetByQuoteID(ctx context.Context, quoteID string) (*Policy, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]Policy, error)
	ListAll(ctx context.Context) ([]Policy, error)
	Save(ctx context.Context, p *Policy) error
	ExistsByPolicyNumber(ctx context.Context, number string) (bool, error)
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}
