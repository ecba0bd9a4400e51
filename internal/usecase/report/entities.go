package report

import "time"

// Recent* are the slim rows the dashboard lists; statuses are effective
// (read-time) statuses.

type RecentQuote struct {
	QuoteID      string    `json:"quote_id"`
	VehicleInfo  string    `json:"vehicle_info"`
	CoverageType string    `json:"coverage_type"`
	Premium      int64     `json:"premium"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type RecentPolicy struct {
	PolicyID     string    `json:"policy_id"`
	PolicyNumber string    `json:"policy_number"`
	VehicleInfo  string    `json:"vehicle_info"`
	Premium      int64     `json:"premium"`
	Status       string    `json:"status"`
	EndDate      time.Time `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
}

type RecentClaim struct {
	ClaimID         string    `json:"claim_id"`
	ClaimNumber     string    `json:"claim_number"`
	IncidentType    string    `json:"incident_type"`
	EstimatedAmount int64     `json:"estimated_amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type DashboardStats struct {
	TotalCoverage  int64 `json:"total_coverage"`
	ActivePolicies int   `json:"active_policies"`
	PendingClaims  int   `json:"pending_claims"`
	TotalQuotes    int   `json:"total_quotes"`
}

type DashboardData struct {
	Stats          DashboardStats `json:"stats"`
	RecentQuotes   []RecentQuote  `json:"recent_quotes"`
	RecentPolicies []RecentPolicy `json:"recent_policies"`
	RecentClaims   []RecentClaim  `json:"recent_claims"`
}

type Overview struct {
	TotalRevenue       int64   `json:"total_revenue"`
	TotalClaimExposure int64   `json:"total_claim_exposure"`
	TotalPolicies      int     `json:"total_policies"`
	TotalClaims        int     `json:"total_claims"`
	AveragePremium     int64   `json:"average_premium"`
	ClaimRatio         float64 `json:"claim_ratio"`
	ConversionRate     float64 `json:"conversion_rate"`
}

type MonthRevenue struct {
	Month    string `json:"month"`
	Revenue  int64  `json:"revenue"`
	Policies int    `json:"policies"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Value int64  `json:"value"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Amount int64  `json:"amount"`
}

type TypeFrequency struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type VehicleCount struct {
	Vehicle  string `json:"vehicle"`
	Policies int    `json:"policies"`
	Premium  int64  `json:"premium"`
}

type MonthGrowth struct {
	Month    string `json:"month"`
	Quotes   int    `json:"quotes"`
	Policies int    `json:"policies"`
	Claims   int    `json:"claims"`
}

type RangeCount struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type AnalyticsData struct {
	Overview            Overview        `json:"overview"`
	RevenueByMonth      []MonthRevenue  `json:"revenue_by_month"`
	PoliciesByType      []TypeCount     `json:"policies_by_type"`
	ClaimsByStatus      []StatusCount   `json:"claims_by_status"`
	TopVehicles         []VehicleCount  `json:"top_vehicles"`
	MonthlyGrowth       []MonthGrowth   `json:"monthly_growth"`
	PremiumDistribution []RangeCount    `json:"premium_distribution"`
	ClaimFrequency      []TypeFrequency `json:"claim_frequency"`
}

// OwnerBreakdown is one owner's slice of the book, for the admin view.
type OwnerBreakdown struct {
	OwnerID    string `json:"owner_id"`
	Policies   int    `json:"policies"`
	Claims     int    `json:"claims"`
	TotalSpent int64  `json:"total_spent"`
}

// AdminOverview aggregates across all owners.
type AdminOverview struct {
	TotalUsers       int     `json:"total_users"`
	TotalQuotes      int     `json:"total_quotes"`
	TotalPolicies    int     `json:"total_policies"`
	TotalClaims      int     `json:"total_claims"`
	ActivePolicies   int     `json:"active_policies"`
	PendingClaims    int     `json:"pending_claims"`
	ApprovedClaims   int     `json:"approved_claims"`
	RejectedClaims   int     `json:"rejected_claims"`
	TotalRevenue     int64   `json:"total_revenue"`
	MonthlyRevenue   int64   `json:"monthly_revenue"`
	TotalClaimAmount int64   `json:"total_claim_amount"`
	ConversionRate   float64 `json:"conversion_rate"`

	TopOwners []OwnerBreakdown `json:"top_owners"`
}
