package claim

import "context"

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	GetByClaimID(ctx context.Context, claimID string) (*Claim, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]Claim, error)
	ListAll(ctx context.Context) ([]Claim, error)
	Save(ctx context.Context, c *Claim) error
	Delete(ctx context.Context, c *Claim) error
	ExistsByClaimNumber(ctx context.Context, number string) (bool, error)
}
