package claim

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	domain "suremotor-backend/internal/domain/claim"
	policyDomain "suremotor-backend/internal/domain/policy"
	"suremotor-backend/internal/event"
	"suremotor-backend/pkg/id"
	"suremotor-backend/pkg/refnum"

	"gorm.io/gorm"
)

const maxNumberAttempts = 5

type Usecase struct {
	repo     domain.Repository
	policies policyDomain.Repository
	events   event.Publisher
	now      func() time.Time
}

func NewUsecase(r domain.Repository, policies policyDomain.Repository, ev event.Publisher) *Usecase {
	if ev == nil {
		ev = event.Nop{}
	}
	return &Usecase{repo: r, policies: policies, events: ev, now: func() time.Time { return time.Now().UTC() }}
}

// Create files a claim against an active policy owned by the caller. There is
// no held draft stage: the claim is submitted immediately, submission and
// creation timestamps stamped together.
func (u *Usecase) Create(ctx context.Context, in CreateClaimInput) (*ClaimDTO, error) {
	now := u.now()

	if len(in.OwnerID) != 32 {
		return nil, fmt.Errorf("%w: owner_id must be 32-char id", domain.ErrInvalidInput)
	}
	if !domain.ValidIncidentType(domain.IncidentType(in.IncidentType)) {
		return nil, fmt.Errorf("%w: unknown incident type %q", domain.ErrInvalidInput, in.IncidentType)
	}
	if len(strings.TrimSpace(in.Description)) < domain.MinDescriptionLen {
		return nil, fmt.Errorf("%w: description must be at least %d characters", domain.ErrInvalidInput, domain.MinDescriptionLen)
	}
	if in.EstimatedAmount <= 0 {
		return nil, fmt.Errorf("%w: estimated_amount must be positive", domain.ErrInvalidInput)
	}
	if in.IncidentDate.IsZero() || in.IncidentDate.After(now) {
		return nil, fmt.Errorf("%w: incident_date must be set and not in the future", domain.ErrInvalidInput)
	}

	p, err := u.policies.GetByPolicyID(ctx, in.PolicyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, policyDomain.ErrNotFound
		}
		return nil, err
	}
	if p.OwnerID != in.OwnerID {
		return nil, policyDomain.ErrNotFound
	}
	if !policyDomain.IsActive(p, now) {
		return nil, policyDomain.ErrNotActive
	}

	number, err := u.freeNumber(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	c := &domain.Claim{
		ClaimID:         id.NewID32(),
		ClaimNumber:     number,
		PolicyID:        p.PolicyID,
		OwnerID:         in.OwnerID,
		IncidentDate:    in.IncidentDate,
		IncidentType:    domain.IncidentType(in.IncidentType),
		Description:     in.Description,
		EstimatedAmount: in.EstimatedAmount,
		EvidenceURLs:    in.EvidenceURLs,
		Status:          domain.StatusSubmitted,
		SubmittedAt:     now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	if err := u.events.Publish(ctx, event.TypeClaimSubmitted, map[string]any{
		"claim_id": c.ClaimID, "claim_number": c.ClaimNumber,
		"policy_id": c.PolicyID, "owner_id": c.OwnerID,
	}); err != nil {
		log.Printf("claim: publish %s: %v", event.TypeClaimSubmitted, err)
	}

	return toDTO(c), nil
}

func (u *Usecase) freeNumber(ctx context.Context, year int) (string, error) {
	for i := 0; i < maxNumberAttempts; i++ {
		n := refnum.New(refnum.ClaimPrefix, year)
		taken, err := u.repo.ExistsByClaimNumber(ctx, n)
		if err != nil {
			return "", err
		}
		if !taken {
			return n, nil
		}
	}
	return "", fmt.Errorf("claim: no free claim number after %d attempts", maxNumberAttempts)
}

func (u *Usecase) List(ctx context.Context, ownerID string) ([]ClaimDTO, error) {
	claims, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]ClaimDTO, 0, len(claims))
	for i := range claims {
		out = append(out, *toDTO(&claims[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, claimID, ownerID string) (*ClaimDTO, error) {
	c, err := u.getOwned(ctx, claimID, ownerID)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

// UpdateStatus is a reviewer operation: it advances the claim along the
// one-directional review flow. approvedAmount is recorded only when entering
// approved or settled.
func (u *Usecase) UpdateStatus(ctx context.Context, claimID string, newStatus string, approvedAmount *int64) (*ClaimDTO, error) {
	c, err := u.get(ctx, claimID)
	if err != nil {
		return nil, err
	}
	to := domain.Status(newStatus)
	if !domain.CanTransition(c.Status, to) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, c.Status, to)
	}
	c.Status = to
	if approvedAmount != nil && (to == domain.StatusApproved || to == domain.StatusSettled) {
		c.ApprovedAmount = approvedAmount
	}
	c.UpdatedAt = u.now()
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Delete(ctx context.Context, claimID, ownerID string) error {
	c, err := u.getOwned(ctx, claimID, ownerID)
	if err != nil {
		return err
	}
	if c.Status != domain.StatusDraft {
		return domain.ErrNotDraft
	}
	return u.repo.Delete(ctx, c)
}

func (u *Usecase) Stats(ctx context.Context, ownerID string) (*ClaimStats, error) {
	claims, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	st := &ClaimStats{Total: len(claims)}
	for i := range claims {
		switch claims[i].Status {
		case domain.StatusSubmitted:
			st.Pending++
		case domain.StatusUnderReview:
			st.UnderReview++
		case domain.StatusApproved:
			st.Approved++
		case domain.StatusRejected:
			st.Rejected++
		case domain.StatusSettled:
			st.Settled++
		}
	}
	return st, nil
}

// PendingCount uses the one centralized pending predicate.
func (u *Usecase) PendingCount(ctx context.Context, ownerID string) (int, error) {
	claims, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range claims {
		if domain.IsPending(&claims[i]) {
			n++
		}
	}
	return n, nil
}

func (u *Usecase) get(ctx context.Context, claimID string) (*domain.Claim, error) {
	c, err := u.repo.GetByClaimID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (u *Usecase) getOwned(ctx context.Context, claimID, ownerID string) (*domain.Claim, error) {
	c, err := u.get(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func toDTO(c *domain.Claim) *ClaimDTO {
	return &ClaimDTO{
		ClaimID:         c.ClaimID,
		ClaimNumber:     c.ClaimNumber,
		PolicyID:        c.PolicyID,
		OwnerID:         c.OwnerID,
		IncidentDate:    c.IncidentDate,
		IncidentType:    string(c.IncidentType),
		Description:     c.Description,
		EstimatedAmount: c.EstimatedAmount,
		ApprovedAmount:  c.ApprovedAmount,
		EvidenceURLs:    c.EvidenceURLs,
		Status:          string(c.Status),
		SubmittedAt:     c.SubmittedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
