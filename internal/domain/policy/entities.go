package policy

import (
	"errors"
	"time"

	"suremotor-backend/internal/domain/quote"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("policy not found")
	ErrNotActive = errors.New("policy is not active")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Policy is a bound, paid coverage contract created from a converted quote.
// Vehicle/coverage fields are copied from the quote at conversion and are
// immutable afterwards.
type Policy struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	PolicyID     string `gorm:"size:32;uniqueIndex:ux_policies_policy_id_active" json:"policy_id"`
	PolicyNumber string `gorm:"size:16;uniqueIndex:ux_policies_number_active" json:"policy_number"`
	QuoteID      string `gorm:"size:32;index:idx_policies_quote_active" json:"quote_id"`
	OwnerID      string `gorm:"size:32;index:idx_policies_owner_active" json:"owner_id"`

	VehicleInfo  string             `gorm:"size:160" json:"vehicle_info"`
	CoverageType quote.CoverageType `gorm:"type:enum('third-party','fire-theft','comprehensive')" json:"coverage_type"`
	Premium      int64              `json:"premium"`

	Status        Status        `gorm:"type:enum('active','expired','cancelled');default:'active'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:enum('pending','paid','failed');default:'pending'" json:"payment_status"`

	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Policy) TableName() string { return "policies" }

// IsActive reports whether the policy counts as active: stored status active
// AND term not yet elapsed.
func IsActive(p *Policy, now time.Time) bool {
	return p.Status == StatusActive && p.EndDate.After(now)
}

// EffectiveStatus: cancelled stays cancelled; active within term stays
// active; everything else reads as expired.
func EffectiveStatus(p *Policy, now time.Time) Status {
	switch {
	case p.Status == StatusCancelled:
		return StatusCancelled
	case IsActive(p, now):
		return StatusActive
	default:
		return StatusExpired
	}
}
