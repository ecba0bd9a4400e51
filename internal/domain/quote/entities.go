package quote

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("quote not found")
	ErrInvalidInput = errors.New("invalid quote input")
	// ErrConverted guards operations that are illegal once a quote has
	// produced a policy (delete, update).
	ErrConverted = errors.New("quote already converted")
	ErrNotActive = errors.New("quote is not active")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusConverted Status = "converted"
)

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

type CoverageType string

const (
	CoverageThirdParty    CoverageType = "third-party"
	CoverageFireTheft     CoverageType = "fire-theft"
	CoverageComprehensive CoverageType = "comprehensive"
)

func ValidFuelType(f FuelType) bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid:
		return true
	}
	return false
}

func ValidCoverageType(ct CoverageType) bool {
	switch ct {
	case CoverageThirdParty, CoverageFireTheft, CoverageComprehensive:
		return true
	}
	return false
}

// Quote is a priced, time-limited offer for coverage. Monetary amounts are
// whole currency units ("K").
type Quote struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	QuoteID string `gorm:"size:32;uniqueIndex:ux_quotes_quote_id_active" json:"quote_id"`
	OwnerID string `gorm:"size:32;index:idx_quotes_owner_active" json:"owner_id"`

	// Vehicle
	Make               string   `gorm:"size:64" json:"make"`
	Model              string   `gorm:"size:64" json:"model"`
	Year               int      `json:"year"`
	RegistrationNumber string   `gorm:"size:32" json:"registration_number"`
	EngineSize         string   `gorm:"size:16" json:"engine_size"`
	FuelType           FuelType `gorm:"type:enum('petrol','diesel','electric','hybrid')" json:"fuel_type"`
	VehicleValue       int64    `json:"vehicle_value"`
	Color              string   `gorm:"size:32" json:"color"`
	ChassisNumber      string   `gorm:"size:32" json:"chassis_number"`

	// Coverage
	CoverageType      CoverageType `gorm:"type:enum('third-party','fire-theft','comprehensive')" json:"coverage_type"`
	StartDate         time.Time    `gorm:"type:date" json:"start_date"`
	DurationMonths    int          `json:"duration_months"`
	AdditionalDrivers int          `json:"additional_drivers"`
	VoluntaryExcess   int64        `json:"voluntary_excess"`

	// Derived at creation, never user-supplied.
	Premium int64  `json:"premium"`
	Status  Status `gorm:"type:enum('draft','active','expired','converted');default:'active'" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	ExpiresAt time.Time      `json:"expires_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Quote) TableName() string { return "quotes" }

// EffectiveStatus is the read-time status: a stored-active quote whose
// expiry has elapsed reports expired without a storage mutation.
func EffectiveStatus(q *Quote, now time.Time) Status {
	if q.Status == StatusActive && q.ExpiresAt.Before(now) {
		return StatusExpired
	}
	return q.Status
}
