package pricing

import (
	"math"
	"time"

	"suremotor-backend/internal/domain/quote"
)

// All amounts are whole currency units ("K").
const (
	BasePremium          int64 = 500
	VehicleAgeThreshold        = 10
	VehicleAgeAdjustment int64 = 100
	AdditionalDriverFee  int64 = 200
	TaxRate                    = 0.03
)

var coverageFees = map[quote.CoverageType]int64{
	quote.CoverageThirdParty:    1000,
	quote.CoverageFireTheft:     2000,
	quote.CoverageComprehensive: 3000,
}

// Breakdown itemizes a premium so callers can render every line, not just
// the total.
type Breakdown struct {
	BasePremium          int64 `json:"base_premium"`
	CoverageFee          int64 `json:"coverage_fee"`
	VehicleAgeAdjustment int64 `json:"vehicle_age_adjustment"`
	AdditionalDriversFee int64 `json:"additional_drivers_fee"`
	Subtotal             int64 `json:"subtotal"`
	Tax                  int64 `json:"tax"`
	TotalPremium         int64 `json:"total_premium"`
}

// Calculate derives the itemized premium. Pure and deterministic: the caller
// supplies the reference time and pre-validates inputs (positive year,
// non-negative driver count); this function never fails.
//
// Voluntary excess and duration are captured on the quote but do not enter
// the formula.
func Calculate(vehicleYear int, coverageType quote.CoverageType, additionalDrivers int, now time.Time) Breakdown {
	coverageFee := coverageFees[coverageType]

	var ageAdjustment int64
	if now.Year()-vehicleYear > VehicleAgeThreshold {
		ageAdjustment = VehicleAgeAdjustment
	}

	driversFee := int64(additionalDrivers) * AdditionalDriverFee

	subtotal := BasePremium + coverageFee + ageAdjustment + driversFee
	// round-half-up to the nearest whole unit
	tax := int64(math.Round(float64(subtotal) * TaxRate))

	return Breakdown{
		BasePremium:          BasePremium,
		CoverageFee:          coverageFee,
		VehicleAgeAdjustment: ageAdjustment,
		AdditionalDriversFee: driversFee,
		Subtotal:             subtotal,
		Tax:                  tax,
		TotalPremium:         subtotal + tax,
	}
}
