package mysql

import (
	"context"
	"errors"
	"time"

	policyDomain "suremotor-backend/internal/domain/policy"

	"gorm.io/gorm"
)

type PolicyRepository struct{ db *gorm.DB }

func NewPolicyRepository(db *gorm.DB) *PolicyRepository { return &PolicyRepository{db: db} }

func (r *PolicyRepository) Create(ctx context.Context, p *policyDomain.Policy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PolicyRepository) Save(ctx context.Context, p *policyDomain.Policy) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PolicyRepository) GetByPolicyID(ctx context.Context, policyID string) (*policyDomain.Policy, error) {
	var out policyDomain.Policy
	res := r.db.WithContext(ctx).Where("policy_id = ?", policyID).First(&out)
	return &out, res.Error
}

func (r *PolicyRepository) GetByQuoteID(ctx context.Context, quoteID string) (*policyDomain.Policy, error) {
	var out policyDomain.Policy
	res := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).First(&out)
	return &out, res.Error
}

func (r *PolicyRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]policyDomain.Policy, error) {
	var out []policyDomain.Policy
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PolicyRepository) ListAll(ctx context.Context) ([]policyDomain.Policy, error) {
	var out []policyDomain.Policy
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *PolicyRepository) ExistsByPolicyNumber(ctx context.Context, number string) (bool, error) {
	var out policyDomain.Policy
	err := r.db.WithContext(ctx).Select("id").Where("policy_number = ?", number).First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PolicyRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&policyDomain.Policy{}).
		Where("status = ? AND end_date < ?", policyDomain.StatusActive, now).
		Updates(map[string]any{"status": policyDomain.StatusExpired, "updated_at": now})
	return res.RowsAffected, res.Error
}
