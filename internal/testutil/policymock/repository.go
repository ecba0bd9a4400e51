package policymock

import (
	"context"
	"errors"
	"time"

	domain "suremotor-backend/internal/domain/policy"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("policymock: method not implemented")

// Repo is a function-backed mock that satisfies policy.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, p *domain.Policy) error
	GetByPolicyIDFn        func(ctx context.Context, policyID string) (*domain.Policy, error)
	GetByQuoteIDFn         func(ctx context.Context, quoteID string) (*domain.Policy, error)
	ListByOwnerIDFn        func(ctx context.Context, ownerID string) ([]domain.Policy, error)
	ListAllFn              func(ctx context.Context) ([]domain.Policy, error)
	SaveFn                 func(ctx context.Context, p *domain.Policy) error
	ExistsByPolicyNumberFn func(ctx context.Context, number string) (bool, error)
	ExpireDueFn            func(ctx context.Context, now time.Time) (int64, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Policy) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPolicyID(ctx context.Context, policyID string) (*domain.Policy, error) {
	if m.GetByPolicyIDFn != nil {
		return m.GetByPolicyIDFn(ctx, policyID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByQuoteID(ctx context.Context, quoteID string) (*domain.Policy, error) {
	if m.GetByQuoteIDFn != nil {
		return m.GetByQuoteIDFn(ctx, quoteID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByOwnerID(ctx context.Context, ownerID string) ([]domain.Policy, error) {
	if m.ListByOwnerIDFn != nil {
		return m.ListByOwnerIDFn(ctx, ownerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Policy, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, p *domain.Policy) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) ExistsByPolicyNumber(ctx context.Context, number string) (bool, error) {
	if m.ExistsByPolicyNumberFn != nil {
		return m.ExistsByPolicyNumberFn(ctx, number)
	}
	return false, nil
}

func (m *Repo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	if m.ExpireDueFn != nil {
		return m.ExpireDueFn(ctx, now)
	}
	return 0, errUnimplemented
}
