package mysql

import (
	"context"

	"suremotor-backend/internal/domain/quote"
	"suremotor-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Quotes:   &QuoteRepository{db: tx},
		Policies: &PolicyRepository{db: tx},
		Claims:   &ClaimRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinQuoteTx(ctx context.Context, quoteID string, fn func(r uow.Repos, q *quote.Quote) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the quote row up-front so concurrent purchases serialize
		q, err := r.Quotes.GetByQuoteIDForUpdate(ctx, quoteID)
		if err != nil {
			return err
		}
		return fn(r, q)
	})
}
