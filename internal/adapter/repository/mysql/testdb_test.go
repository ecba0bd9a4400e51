package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type quoteSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	QuoteID            string         `gorm:"size:32;column:quote_id"`
	OwnerID            string         `gorm:"size:32;column:owner_id"`
	Make               string         `gorm:"column:make"`
	Model              string         `gorm:"column:model"`
	Year               int            `gorm:"column:year"`
	RegistrationNumber string         `gorm:"column:registration_number"`
	EngineSize         string         `gorm:"column:engine_size"`
	FuelType           string         `gorm:"type:text;column:fuel_type"` // ← no enum
	VehicleValue       int64          `gorm:"column:vehicle_value"`
	Color              string         `gorm:"column:color"`
	ChassisNumber      string         `gorm:"column:chassis_number"`
	CoverageType       string         `gorm:"type:text;column:coverage_type"`
	StartDate          time.Time      `gorm:"column:start_date"`
	DurationMonths     int            `gorm:"column:duration_months"`
	AdditionalDrivers  int            `gorm:"column:additional_drivers"`
	VoluntaryExcess    int64          `gorm:"column:voluntary_excess"`
	Premium            int64          `gorm:"column:premium"`
	Status             string         `gorm:"type:text;column:status"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	ExpiresAt          time.Time      `gorm:"column:expires_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (quoteSQLite) TableName() string { return "quotes" }

type policySQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	PolicyID      string         `gorm:"size:32;column:policy_id"`
	PolicyNumber  string         `gorm:"size:16;column:policy_number"`
	QuoteID       string         `gorm:"size:32;column:quote_id"`
	OwnerID       string         `gorm:"size:32;column:owner_id"`
	VehicleInfo   string         `gorm:"column:vehicle_info"`
	CoverageType  string         `gorm:"type:text;column:coverage_type"`
	Premium       int64          `gorm:"column:premium"`
	Status        string         `gorm:"type:text;column:status"`
	PaymentStatus string         `gorm:"type:text;column:payment_status"`
	StartDate     time.Time      `gorm:"column:start_date"`
	EndDate       time.Time      `gorm:"column:end_date"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (policySQLite) TableName() string { return "policies" }

type claimSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	ClaimID         string         `gorm:"size:32;column:claim_id"`
	ClaimNumber     string         `gorm:"size:16;column:claim_number"`
	PolicyID        string         `gorm:"size:32;column:policy_id"`
	OwnerID         string         `gorm:"size:32;column:owner_id"`
	IncidentDate    time.Time      `gorm:"column:incident_date"`
	IncidentType    string         `gorm:"type:text;column:incident_type"`
	Description     string         `gorm:"type:text;column:description"`
	EstimatedAmount int64          `gorm:"column:estimated_amount"`
	ApprovedAmount  *int64         `gorm:"column:approved_amount"`
	EvidenceURLs    string         `gorm:"type:text;column:evidence_urls"`
	Status          string         `gorm:"type:text;column:status"`
	SubmittedAt     time.Time      `gorm:"column:submitted_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (claimSQLite) TableName() string { return "claims" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, not the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&quoteSQLite{}, &policySQLite{}, &claimSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
