package mysql

import (
	"context"
	"errors"

	claimDomain "suremotor-backend/internal/domain/claim"

	"gorm.io/gorm"
)

type ClaimRepository struct{ db *gorm.DB }

func NewClaimRepository(db *gorm.DB) *ClaimRepository { return &ClaimRepository{db: db} }

func (r *ClaimRepository) Create(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClaimRepository) Save(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClaimRepository) Delete(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

func (r *ClaimRepository) GetByClaimID(ctx context.Context, claimID string) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).Where("claim_id = ?", claimID).First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) ListAll(ctx context.Context) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) ExistsByClaimNumber(ctx context.Context, number string) (bool, error) {
	var out claimDomain.Claim
	err := r.db.WithContext(ctx).Select("id").Where("claim_number = ?", number).First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
