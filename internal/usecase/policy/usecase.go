package policy

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	domain "suremotor-backend/internal/domain/policy"
	quoteDomain "suremotor-backend/internal/domain/quote"
	"suremotor-backend/internal/domain/uow"
	"suremotor-backend/internal/event"
	"suremotor-backend/pkg/id"
	"suremotor-backend/pkg/refnum"

	"gorm.io/gorm"
)

const (
	policyTerm = 365 * 24 * time.Hour
	// attempts at generating a free policy number before giving up
	maxNumberAttempts = 5
)

type Usecase struct {
	repo   domain.Repository
	uow    uow.UnitOfWork
	events event.Publisher
	now    func() time.Time
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, ev event.Publisher) *Usecase {
	if ev == nil {
		ev = event.Nop{}
	}
	return &Usecase{repo: r, uow: tx, events: ev, now: func() time.Time { return time.Now().UTC() }}
}

// Purchase converts an active quote into a bound policy. The quote row is
// locked, the policy insert and the quote's flip to converted commit in one
// transaction, so concurrent purchase attempts cannot double-issue.
// Purchasing an already-converted quote returns its existing policy.
func (u *Usecase) Purchase(ctx context.Context, quoteID, ownerID string) (*PolicyDTO, error) {
	if u.uow == nil {
		return nil, errors.New("policy: unit of work not configured")
	}

	var (
		dto     *PolicyDTO
		created bool
	)
	err := u.uow.WithinQuoteTx(ctx, quoteID, func(r uow.Repos, q *quoteDomain.Quote) error {
		if q.OwnerID != ownerID {
			return quoteDomain.ErrNotFound
		}

		if q.Status == quoteDomain.StatusConverted {
			// Safe retry: surface the policy this quote already produced.
			existing, err := r.Policies.GetByQuoteID(ctx, q.QuoteID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// converted flag without a policy row is an upstream bug
					return fmt.Errorf("quote %s converted but has no policy", q.QuoteID)
				}
				return err
			}
			dto = toDTO(existing, u.now())
			return nil
		}

		now := u.now()
		if quoteDomain.EffectiveStatus(q, now) != quoteDomain.StatusActive {
			return quoteDomain.ErrNotActive
		}

		number, err := u.freeNumber(ctx, r.Policies, now.Year())
		if err != nil {
			return err
		}

		p := &domain.Policy{
			PolicyID:     id.NewID32(),
			PolicyNumber: number,
			QuoteID:      q.QuoteID,
			OwnerID:      q.OwnerID,
			VehicleInfo:  fmt.Sprintf("%d %s %s", q.Year, q.Make, q.Model),
			CoverageType: q.CoverageType,
			Premium:      q.Premium,
			Status:       domain.StatusActive,
			// payment is simulated upstream; by the time we are called it succeeded
			PaymentStatus: domain.PaymentPaid,
			StartDate:     now,
			EndDate:       now.Add(policyTerm),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := r.Policies.Create(ctx, p); err != nil {
			return err
		}

		q.Status = quoteDomain.StatusConverted
		q.UpdatedAt = now
		if err := r.Quotes.Save(ctx, q); err != nil {
			return err
		}

		dto = toDTO(p, now)
		created = true
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// the quote row itself was missing when the tx tried to lock it
			return nil, quoteDomain.ErrNotFound
		}
		return nil, err
	}

	if created {
		if err := u.events.Publish(ctx, event.TypePolicyActivated, map[string]any{
			"policy_id": dto.PolicyID, "policy_number": dto.PolicyNumber,
			"quote_id": dto.QuoteID, "owner_id": dto.OwnerID,
		}); err != nil {
			log.Printf("policy: publish %s: %v", event.TypePolicyActivated, err)
		}
	}
	return dto, nil
}

func (u *Usecase) freeNumber(ctx context.Context, repo domain.Repository, year int) (string, error) {
	for i := 0; i < maxNumberAttempts; i++ {
		n := refnum.New(refnum.PolicyPrefix, year)
		taken, err := repo.ExistsByPolicyNumber(ctx, n)
		if err != nil {
			return "", err
		}
		if !taken {
			return n, nil
		}
	}
	return "", fmt.Errorf("policy: no free policy number after %d attempts", maxNumberAttempts)
}

func (u *Usecase) List(ctx context.Context, ownerID string) ([]PolicyDTO, error) {
	policies, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := make([]PolicyDTO, 0, len(policies))
	for i := range policies {
		out = append(out, *toDTO(&policies[i], now))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, policyID, ownerID string) (*PolicyDTO, error) {
	p, err := u.getOwned(ctx, policyID, ownerID)
	if err != nil {
		return nil, err
	}
	return toDTO(p, u.now()), nil
}

// Cancel moves an active policy to cancelled. Cancelling twice is a no-op
// success; cancelling an expired policy is rejected.
func (u *Usecase) Cancel(ctx context.Context, policyID, ownerID string) (*PolicyDTO, error) {
	p, err := u.getOwned(ctx, policyID, ownerID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	if p.Status == domain.StatusCancelled {
		return toDTO(p, now), nil
	}
	if !domain.IsActive(p, now) {
		return nil, domain.ErrNotActive
	}
	p.Status = domain.StatusCancelled
	p.UpdatedAt = now
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p, now), nil
}

func (u *Usecase) ActiveCount(ctx context.Context, ownerID string) (int, error) {
	policies, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	now := u.now()
	n := 0
	for i := range policies {
		if domain.IsActive(&policies[i], now) {
			n++
		}
	}
	return n, nil
}

func (u *Usecase) Stats(ctx context.Context, ownerID string) (*PolicyStats, error) {
	policies, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	st := &PolicyStats{Total: len(policies)}
	for i := range policies {
		switch domain.EffectiveStatus(&policies[i], now) {
		case domain.StatusCancelled:
			st.Cancelled++
		case domain.StatusActive:
			st.Active++
		default:
			st.Expired++
		}
	}
	return st, nil
}

func (u *Usecase) getOwned(ctx context.Context, policyID, ownerID string) (*domain.Policy, error) {
	p, err := u.repo.GetByPolicyID(ctx, policyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func toDTO(p *domain.Policy, now time.Time) *PolicyDTO {
	return &PolicyDTO{
		PolicyID:      p.PolicyID,
		PolicyNumber:  p.PolicyNumber,
		QuoteID:       p.QuoteID,
		OwnerID:       p.OwnerID,
		VehicleInfo:   p.VehicleInfo,
		CoverageType:  string(p.CoverageType),
		Premium:       p.Premium,
		Status:        string(domain.EffectiveStatus(p, now)),
		PaymentStatus: string(p.PaymentStatus),
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
