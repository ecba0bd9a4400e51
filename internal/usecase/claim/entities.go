package claim

import "time"

type CreateClaimInput struct {
	PolicyID string `json:"policy_id"`
	OwnerID  string `json:"owner_id"`

	IncidentDate    time.Time `json:"incident_date"`
	IncidentType    string    `json:"incident_type"`
	Description     string    `json:"description"`
	EstimatedAmount int64     `json:"estimated_amount"`
	EvidenceURLs    []string  `json:"evidence_urls"`
}

type ClaimDTO struct {
	ClaimID     string `json:"claim_id"`
	ClaimNumber string `json:"claim_number"`
	PolicyID    string `json:"policy_id"`
	OwnerID     string `json:"owner_id"`

	IncidentDate time.Time `json:"incident_date"`
	IncidentType string    `json:"incident_type"`
	Description  string    `json:"description"`

	EstimatedAmount int64    `json:"estimated_amount"`
	ApprovedAmount  *int64   `json:"approved_amount,omitempty"`
	EvidenceURLs    []string `json:"evidence_urls"`

	Status string `json:"status"`

	SubmittedAt time.Time `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ClaimStats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	UnderReview int `json:"under_review"`
	Approved    int `json:"approved"`
	Rejected    int `json:"rejected"`
	Settled     int `json:"settled"`
}
