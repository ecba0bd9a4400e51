package quote

import (
	"time"

	"suremotor-backend/internal/pricing"
)

type CreateQuoteInput struct {
	OwnerID string `json:"owner_id"`

	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	RegistrationNumber string `json:"registration_number"`
	EngineSize         string `json:"engine_size"`
	FuelType           string `json:"fuel_type"`
	VehicleValue       int64  `json:"vehicle_value"`
	Color              string `json:"color"`
	ChassisNumber      string `json:"chassis_number"`

	CoverageType      string    `json:"coverage_type"`
	StartDate         time.Time `json:"start_date"`
	DurationMonths    int       `json:"duration_months"`
	AdditionalDrivers int       `json:"additional_drivers"`
	VoluntaryExcess   int64     `json:"voluntary_excess"`
}

// UpdateQuoteInput carries the user-editable fields only; premium and status
// are derived and cannot be set through this path.
type UpdateQuoteInput struct {
	Make               *string    `json:"make"`
	Model              *string    `json:"model"`
	Year               *int       `json:"year"`
	RegistrationNumber *string    `json:"registration_number"`
	EngineSize         *string    `json:"engine_size"`
	FuelType           *string    `json:"fuel_type"`
	VehicleValue       *int64     `json:"vehicle_value"`
	Color              *string    `json:"color"`
	ChassisNumber      *string    `json:"chassis_number"`
	CoverageType       *string    `json:"coverage_type"`
	StartDate          *time.Time `json:"start_date"`
	DurationMonths     *int       `json:"duration_months"`
	AdditionalDrivers  *int       `json:"additional_drivers"`
	VoluntaryExcess    *int64     `json:"voluntary_excess"`
}

type QuoteDTO struct {
	QuoteID string `json:"quote_id"`
	OwnerID string `json:"owner_id"`

	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	RegistrationNumber string `json:"registration_number"`
	EngineSize         string `json:"engine_size"`
	FuelType           string `json:"fuel_type"`
	VehicleValue       int64  `json:"vehicle_value"`
	Color              string `json:"color"`
	ChassisNumber      string `json:"chassis_number"`

	CoverageType      string    `json:"coverage_type"`
	StartDate         time.Time `json:"start_date"`
	DurationMonths    int       `json:"duration_months"`
	AdditionalDrivers int       `json:"additional_drivers"`
	VoluntaryExcess   int64     `json:"voluntary_excess"`

	Premium int64 `json:"premium"`
	// Status is the effective (read-time) status, not necessarily the stored one.
	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`

	// Breakdown is present on responses where the premium was (re)computed.
	Breakdown *pricing.Breakdown `json:"breakdown,omitempty"`
}

type QuoteStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Expired   int `json:"expired"`
	Converted int `json:"converted"`
}
