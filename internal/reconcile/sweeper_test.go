package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"suremotor-backend/internal/testutil/policymock"
	"suremotor-backend/internal/testutil/quotemock"
)

func TestSweep_ReturnsCountsFromBothTables(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)

	var quoteAt, policyAt time.Time
	s := NewSweeper(
		&quotemock.Repo{ExpireDueFn: func(ctx context.Context, now time.Time) (int64, error) {
			quoteAt = now
			return 3, nil
		}},
		&policymock.Repo{ExpireDueFn: func(ctx context.Context, now time.Time) (int64, error) {
			policyAt = now
			return 1, nil
		}},
	)
	s.now = func() time.Time { return fixed }

	nq, np, err := s.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Sweep err: %v", err)
	}
	if nq != 3 || np != 1 {
		t.Fatalf("counts = %d/%d, want 3/1", nq, np)
	}
	// both passes must use the same cutoff instant
	if !quoteAt.Equal(fixed) || !policyAt.Equal(fixed) {
		t.Fatalf("cutoffs differ: quotes=%v policies=%v", quoteAt, policyAt)
	}
}

func TestSweep_StopsOnQuoteError(t *testing.T) {
	boom := errors.New("db down")
	policiesCalled := false
	s := NewSweeper(
		&quotemock.Repo{ExpireDueFn: func(ctx context.Context, now time.Time) (int64, error) {
			return 0, boom
		}},
		&policymock.Repo{ExpireDueFn: func(ctx context.Context, now time.Time) (int64, error) {
			policiesCalled = true
			return 0, nil
		}},
	)

	if _, _, err := s.Sweep(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want db error", err)
	}
	if policiesCalled {
		t.Fatal("policy pass must not run after quote pass failed")
	}
}

func TestStart_RejectsBadSpec(t *testing.T) {
	s := NewSweeper(&quotemock.Repo{}, &policymock.Repo{})
	if err := s.Start("not a cron spec"); err == nil {
		t.Fatal("expected error for malformed spec")
	}
	defer s.Stop()
}
