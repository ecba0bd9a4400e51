package quotemock

import (
	"context"
	"errors"
	"time"

	domain "suremotor-backend/internal/domain/quote"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("quotemock: method not implemented")

// Repo is a function-backed mock that satisfies quote.Repository.
// Fill in the function fields a test needs; unfilled ones fail loudly.
type Repo struct {
	CreateFn                func(ctx context.Context, q *domain.Quote) error
	GetByQuoteIDFn          func(ctx context.Context, quoteID string) (*domain.Quote, error)
	GetByQuoteIDForUpdateFn func(ctx context.Context, quoteID string) (*domain.Quote, error)
	ListByOwnerIDFn         func(ctx context.Context, ownerID string) ([]domain.Quote, error)
	ListAllFn               func(ctx context.Context) ([]domain.Quote, error)
	SaveFn                  func(ctx context.Context, q *domain.Quote) error
	DeleteFn                func(ctx context.Context, q *domain.Quote) error
	ExpireDueFn             func(ctx context.Context, now time.Time) (int64, error)
}

func (m *Repo) Create(ctx context.Context, q *domain.Quote) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, q)
	}
	return nil
}

func (m *Repo) GetByQuoteID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	if m.GetByQuoteIDFn != nil {
		return m.GetByQuoteIDFn(ctx, quoteID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByQuoteIDForUpdate(ctx context.Context, quoteID string) (*domain.Quote, error) {
	if m.GetByQuoteIDForUpdateFn != nil {
		return m.GetByQuoteIDForUpdateFn(ctx, quoteID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByOwnerID(ctx context.Context, ownerID string) ([]domain.Quote, error) {
	if m.ListByOwnerIDFn != nil {
		return m.ListByOwnerIDFn(ctx, ownerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Quote, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, q *domain.Quote) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, q)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, q *domain.Quote) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, q)
	}
	return nil
}

func (m *Repo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	if m.ExpireDueFn != nil {
		return m.ExpireDueFn(ctx, now)
	}
	return 0, errUnimplemented
}
