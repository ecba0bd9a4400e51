package policy

import "time"

type PolicyDTO struct {
	PolicyID     string `json:"policy_id"`
	PolicyNumber string `json:"policy_number"`
	QuoteID      string `json:"quote_id"`
	OwnerID      string `json:"owner_id"`

	VehicleInfo  string `json:"vehicle_info"`
	CoverageType string `json:"coverage_type"`
	Premium      int64  `json:"premium"`

	// Status is the effective (read-time) status.
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PolicyStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Expired   int `json:"expired"`
	Cancelled int `json:"cancelled"`
}
