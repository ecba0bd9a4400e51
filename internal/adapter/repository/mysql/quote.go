package mysql

import (
	"context"
	"time"

	quoteDomain "suremotor-backend/internal/domain/quote"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuoteRepository struct{ db *gorm.DB }

func NewQuoteRepository(db *gorm.DB) *QuoteRepository { return &QuoteRepository{db: db} }

func (r *QuoteRepository) Create(ctx context.Context, q *quoteDomain.Quote) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *QuoteRepository) Save(ctx context.Context, q *quoteDomain.Quote) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *QuoteRepository) Delete(ctx context.Context, q *quoteDomain.Quote) error {
	return r.db.WithContext(ctx).Delete(q).Error
}

func (r *QuoteRepository) GetByQuoteID(ctx context.Context, quoteID string) (*quoteDomain.Quote, error) {
	var out quoteDomain.Quote
	res := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).First(&out)
	return &out, res.Error
}

// GetByQuoteIDForUpdate takes a row lock; only meaningful inside a transaction.
func (r *QuoteRepository) GetByQuoteIDForUpdate(ctx context.Context, quoteID string) (*quoteDomain.Quote, error) {
	tx := r.db.WithContext(ctx)
	// sqlite has no FOR UPDATE; its single-writer lock already covers the tx
	if tx.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out quoteDomain.Quote
	res := tx.Where("quote_id = ?", quoteID).First(&out)
	return &out, res.Error
}

func (r *QuoteRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]quoteDomain.Quote, error) {
	var out []quoteDomain.Quote
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *QuoteRepository) ListAll(ctx context.Context) ([]quoteDomain.Quote, error) {
	var out []quoteDomain.Quote
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *QuoteRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&quoteDomain.Quote{}).
		Where("status = ? AND expires_at < ?", quoteDomain.StatusActive, now).
		Updates(map[string]any{"status": quoteDomain.StatusExpired, "updated_at": now})
	return res.RowsAffected, res.Error
}
