package quote

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	domain "suremotor-backend/internal/domain/quote"
	"suremotor-backend/internal/event"
	"suremotor-backend/internal/pricing"
	"suremotor-backend/pkg/id"

	"gorm.io/gorm"
)

const quoteValidity = 30 * 24 * time.Hour

type Usecase struct {
	repo   domain.Repository
	events event.Publisher
	now    func() time.Time
}

func NewUsecase(r domain.Repository, ev event.Publisher) *Usecase {
	if ev == nil {
		ev = event.Nop{}
	}
	return &Usecase{repo: r, events: ev, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) validate(in *CreateQuoteInput, now time.Time) error {
	if len(in.OwnerID) != 32 {
		return fmt.Errorf("%w: owner_id must be 32-char id", domain.ErrInvalidInput)
	}
	for field, v := range map[string]string{
		"make":                in.Make,
		"model":               in.Model,
		"registration_number": in.RegistrationNumber,
		"engine_size":         in.EngineSize,
		"color":               in.Color,
		"chassis_number":      in.ChassisNumber,
	} {
		if v == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field)
		}
	}
	if in.Year < 1900 || in.Year > now.Year()+1 {
		return fmt.Errorf("%w: year %d out of range [1900, %d]", domain.ErrInvalidInput, in.Year, now.Year()+1)
	}
	if !domain.ValidFuelType(domain.FuelType(in.FuelType)) {
		return fmt.Errorf("%w: unknown fuel type %q", domain.ErrInvalidInput, in.FuelType)
	}
	if !domain.ValidCoverageType(domain.CoverageType(in.CoverageType)) {
		return fmt.Errorf("%w: unknown coverage type %q", domain.ErrInvalidInput, in.CoverageType)
	}
	if in.VehicleValue <= 0 {
		return fmt.Errorf("%w: vehicle_value must be positive", domain.ErrInvalidInput)
	}
	if in.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", domain.ErrInvalidInput)
	}
	if in.DurationMonths != 6 && in.DurationMonths != 12 {
		return fmt.Errorf("%w: duration_months must be 6 or 12", domain.ErrInvalidInput)
	}
	if in.AdditionalDrivers < 0 {
		return fmt.Errorf("%w: additional_drivers must be non-negative", domain.ErrInvalidInput)
	}
	if in.VoluntaryExcess < 0 {
		return fmt.Errorf("%w: voluntary_excess must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}

func (u *Usecase) Create(ctx context.Context, in CreateQuoteInput) (*QuoteDTO, error) {
	now := u.now()
	if err := u.validate(&in, now); err != nil {
		return nil, err
	}

	// Premium is always derived here, never taken from the caller.
	breakdown := pricing.Calculate(in.Year, domain.CoverageType(in.CoverageType), in.AdditionalDrivers, now)

	q := &domain.Quote{
		QuoteID: id.NewID32(),
		OwnerID: in.OwnerID,

		Make:               in.Make,
		Model:              in.Model,
		Year:               in.Year,
		RegistrationNumber: in.RegistrationNumber,
		EngineSize:         in.EngineSize,
		FuelType:           domain.FuelType(in.FuelType),
		VehicleValue:       in.VehicleValue,
		Color:              in.Color,
		ChassisNumber:      in.ChassisNumber,

		CoverageType:      domain.CoverageType(in.CoverageType),
		StartDate:         in.StartDate,
		DurationMonths:    in.DurationMonths,
		AdditionalDrivers: in.AdditionalDrivers,
		VoluntaryExcess:   in.VoluntaryExcess,

		Premium:   breakdown.TotalPremium,
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(quoteValidity),
	}

	if err := u.repo.Create(ctx, q); err != nil {
		return nil, err
	}

	if err := u.events.Publish(ctx, event.TypeQuoteCreated, map[string]any{
		"quote_id": q.QuoteID, "owner_id": q.OwnerID, "premium": q.Premium,
	}); err != nil {
		log.Printf("quote: publish %s: %v", event.TypeQuoteCreated, err)
	}

	dto := toDTO(q, now)
	dto.Breakdown = &breakdown
	return dto, nil
}

func (u *Usecase) List(ctx context.Context, ownerID string) ([]QuoteDTO, error) {
	quotes, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := make([]QuoteDTO, 0, len(quotes))
	for i := range quotes {
		out = append(out, *toDTO(&quotes[i], now))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, quoteID, ownerID string) (*QuoteDTO, error) {
	q, err := u.getOwned(ctx, quoteID, ownerID)
	if err != nil {
		return nil, err
	}
	return toDTO(q, u.now()), nil
}

func (u *Usecase) Update(ctx context.Context, quoteID, ownerID string, in UpdateQuoteInput) (*QuoteDTO, error) {
	q, err := u.getOwned(ctx, quoteID, ownerID)
	if err != nil {
		return nil, err
	}
	if q.Status == domain.StatusConverted {
		return nil, domain.ErrConverted
	}

	merged := CreateQuoteInput{
		OwnerID:            q.OwnerID,
		Make:               q.Make,
		Model:              q.Model,
		Year:               q.Year,
		RegistrationNumber: q.RegistrationNumber,
		EngineSize:         q.EngineSize,
		FuelType:           string(q.FuelType),
		VehicleValue:       q.VehicleValue,
		Color:              q.Color,
		ChassisNumber:      q.ChassisNumber,
		CoverageType:       string(q.CoverageType),
		StartDate:          q.StartDate,
		DurationMonths:     q.DurationMonths,
		AdditionalDrivers:  q.AdditionalDrivers,
		VoluntaryExcess:    q.VoluntaryExcess,
	}
	applyUpdate(&merged, in)

	now := u.now()
	if err := u.validate(&merged, now); err != nil {
		return nil, err
	}

	// Any vehicle/coverage change invalidates the stored premium; recompute.
	breakdown := pricing.Calculate(merged.Year, domain.CoverageType(merged.CoverageType), merged.AdditionalDrivers, now)

	q.Make = merged.Make
	q.Model = merged.Model
	q.Year = merged.Year
	q.RegistrationNumber = merged.RegistrationNumber
	q.EngineSize = merged.EngineSize
	q.FuelType = domain.FuelType(merged.FuelType)
	q.VehicleValue = merged.VehicleValue
	q.Color = merged.Color
	q.ChassisNumber = merged.ChassisNumber
	q.CoverageType = domain.CoverageType(merged.CoverageType)
	q.StartDate = merged.StartDate
	q.DurationMonths = merged.DurationMonths
	q.AdditionalDrivers = merged.AdditionalDrivers
	q.VoluntaryExcess = merged.VoluntaryExcess
	q.Premium = breakdown.TotalPremium
	q.UpdatedAt = now

	if err := u.repo.Save(ctx, q); err != nil {
		return nil, err
	}

	dto := toDTO(q, now)
	dto.Breakdown = &breakdown
	return dto, nil
}

func (u *Usecase) Delete(ctx context.Context, quoteID, ownerID string) error {
	q, err := u.getOwned(ctx, quoteID, ownerID)
	if err != nil {
		return err
	}
	if q.Status == domain.StatusConverted {
		return domain.ErrConverted
	}
	return u.repo.Delete(ctx, q)
}

// Convert flips the quote to converted. Re-converting an already-converted
// quote is a no-op success so retries stay safe. The purchase flow performs
// the same transition inside a transaction together with policy creation.
func (u *Usecase) Convert(ctx context.Context, quoteID string) error {
	q, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if q.Status == domain.StatusConverted {
		return nil
	}
	now := u.now()
	if domain.EffectiveStatus(q, now) != domain.StatusActive {
		return domain.ErrNotActive
	}
	q.Status = domain.StatusConverted
	q.UpdatedAt = now
	return u.repo.Save(ctx, q)
}

func (u *Usecase) Stats(ctx context.Context, ownerID string) (*QuoteStats, error) {
	quotes, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	st := &QuoteStats{Total: len(quotes)}
	for i := range quotes {
		switch domain.EffectiveStatus(&quotes[i], now) {
		case domain.StatusConverted:
			st.Converted++
		case domain.StatusExpired:
			st.Expired++
		default:
			st.Active++
		}
	}
	return st, nil
}

func (u *Usecase) getOwned(ctx context.Context, quoteID, ownerID string) (*domain.Quote, error) {
	q, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	// Owner mismatch reads as not-found: no record disclosure across users.
	if q.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return q, nil
}

func applyUpdate(dst *CreateQuoteInput, in UpdateQuoteInput) {
	if in.Make != nil {
		dst.Make = *in.Make
	}
	if in.Model != nil {
		dst.Model = *in.Model
	}
	if in.Year != nil {
		dst.Year = *in.Year
	}
	if in.RegistrationNumber != nil {
		dst.RegistrationNumber = *in.RegistrationNumber
	}
	if in.EngineSize != nil {
		dst.EngineSize = *in.EngineSize
	}
	if in.FuelType != nil {
		dst.FuelType = *in.FuelType
	}
	if in.VehicleValue != nil {
		dst.VehicleValue = *in.VehicleValue
	}
	if in.Color != nil {
		dst.Color = *in.Color
	}
	if in.ChassisNumber != nil {
		dst.ChassisNumber = *in.ChassisNumber
	}
	if in.CoverageType != nil {
		dst.CoverageType = *in.CoverageType
	}
	if in.StartDate != nil {
		dst.StartDate = *in.StartDate
	}
	if in.DurationMonths != nil {
		dst.DurationMonths = *in.DurationMonths
	}
	if in.AdditionalDrivers != nil {
		dst.AdditionalDrivers = *in.AdditionalDrivers
	}
	if in.VoluntaryExcess != nil {
		dst.VoluntaryExcess = *in.VoluntaryExcess
	}
}

func toDTO(q *domain.Quote, now time.Time) *QuoteDTO {
	return &QuoteDTO{
		QuoteID:            q.QuoteID,
		OwnerID:            q.OwnerID,
		Make:               q.Make,
		Model:              q.Model,
		Year:               q.Year,
		RegistrationNumber: q.RegistrationNumber,
		EngineSize:         q.EngineSize,
		FuelType:           string(q.FuelType),
		VehicleValue:       q.VehicleValue,
		Color:              q.Color,
		ChassisNumber:      q.ChassisNumber,
		CoverageType:       string(q.CoverageType),
		StartDate:          q.StartDate,
		DurationMonths:     q.DurationMonths,
		AdditionalDrivers:  q.AdditionalDrivers,
		VoluntaryExcess:    q.VoluntaryExcess,
		Premium:            q.Premium,
		Status:             string(domain.EffectiveStatus(q, now)),
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
		ExpiresAt:          q.ExpiresAt,
	}
}
