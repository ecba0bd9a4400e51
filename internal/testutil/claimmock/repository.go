package claimmock

import (
	"context"
	"errors"

	domain "suremotor-backend/internal/domain/claim"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("claimmock: method not implemented")

// Repo is a function-backed mock that satisfies claim.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, c *domain.Claim) error
	GetByClaimIDFn        func(ctx context.Context, claimID string) (*domain.Claim, error)
	ListByOwnerIDFn       func(ctx context.Context, ownerID string) ([]domain.Claim, error)
	ListAllFn             func(ctx context.Context) ([]domain.Claim, error)
	SaveFn                func(ctx context.Context, c *domain.Claim) error
	DeleteFn              func(ctx context.Context, c *domain.Claim) error
	ExistsByClaimNumberFn func(ctx context.Context, number string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Claim) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByClaimID(ctx context.Context, claimID string) (*domain.Claim, error) {
	if m.GetByClaimIDFn != nil {
		return m.GetByClaimIDFn(ctx, claimID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByOwnerID(ctx context.Context, ownerID string) ([]domain.Claim, error) {
	if m.ListByOwnerIDFn != nil {
		return m.ListByOwnerIDFn(ctx, ownerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Claim, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *domain.Claim) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, c *domain.Claim) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, c)
	}
	return nil
}

func (m *Repo) ExistsByClaimNumber(ctx context.Context, number string) (bool, error) {
	if m.ExistsByClaimNumberFn != nil {
		return m.ExistsByClaimNumberFn(ctx, number)
	}
	return false, nil
}
