package claim

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("claim not found")
	ErrInvalidInput      = errors.New("invalid claim input")
	ErrInvalidTransition = errors.New("invalid claim status transition")
	ErrNotDraft          = errors.New("only draft claims can be deleted")
)

// MinDescriptionLen is enforced at intake.
const MinDescriptionLen = 20

type Status string

const (
	StatusDraft       Status = "draft"
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under-review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusSettled     Status = "settled"
)

type IncidentType string

const (
	IncidentAccident        IncidentType = "accident"
	IncidentTheft           IncidentType = "theft"
	IncidentFire            IncidentType = "fire"
	IncidentVandalism       IncidentType = "vandalism"
	IncidentNaturalDisaster IncidentType = "natural-disaster"
	IncidentOther           IncidentType = "other"
)

func ValidIncidentType(t IncidentType) bool {
	switch t {
	case IncidentAccident, IncidentTheft, IncidentFire,
		IncidentVandalism, IncidentNaturalDisaster, IncidentOther:
		return true
	}
	return false
}

// transitions is the one-directional review flow. No backward moves.
var transitions = map[Status][]Status{
	StatusSubmitted:   {StatusUnderReview, StatusRejected},
	StatusUnderReview: {StatusApproved, StatusRejected},
	StatusApproved:    {StatusSettled},
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsPending is the single pending-claim predicate used by every caller
// (dashboard counts, admin overview): the claim has been submitted but no
// money has moved and no terminal rejection happened.
func IsPending(c *Claim) bool {
	switch c.Status {
	case StatusSubmitted, StatusUnderReview, StatusApproved:
		return true
	}
	return false
}

// Claim is a request for compensation against an active policy.
type Claim struct {
	ID          uint64 `gorm:"primaryKey;column:id" json:"-"`
	ClaimID     string `gorm:"size:32;uniqueIndex:ux_claims_claim_id_active" json:"claim_id"`
	ClaimNumber string `gorm:"size:16;uniqueIndex:ux_claims_number_active" json:"claim_number"`
	PolicyID    string `gorm:"size:32;index:idx_claims_policy_active" json:"policy_id"`
	OwnerID     string `gorm:"size:32;index:idx_claims_owner_active" json:"owner_id"`

	IncidentDate time.Time    `gorm:"type:date" json:"incident_date"`
	IncidentType IncidentType `gorm:"type:enum('accident','theft','fire','vandalism','natural-disaster','other')" json:"incident_type"`
	Description  string       `gorm:"type:text" json:"description"`

	// EstimatedAmount comes from the claimant; ApprovedAmount from a reviewer
	// and may differ.
	EstimatedAmount int64    `json:"estimated_amount"`
	ApprovedAmount  *int64   `json:"approved_amount,omitempty"`
	EvidenceURLs    []string `gorm:"serializer:json" json:"evidence_urls"`

	Status Status `gorm:"type:enum('draft','submitted','under-review','approved','rejected','settled');default:'submitted'" json:"status"`

	SubmittedAt time.Time      `json:"submitted_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Claim) TableName() string { return "claims" }
