package reconcile

import (
	"context"
	"log"
	"time"

	"suremotor-backend/internal/domain/policy"
	"suremotor-backend/internal/domain/quote"

	"github.com/robfig/cron/v3"
)

// Sweeper persists quote and policy expiries in the background. Read paths
// derive the effective status themselves, so a missed sweep only leaves
// stale rows, never wrong answers.
type Sweeper struct {
	quotes   quote.Repository
	policies policy.Repository
	now      func() time.Time
	cron     *cron.Cron
}

func NewSweeper(q quote.Repository, p policy.Repository) *Sweeper {
	return &Sweeper{
		quotes:   q,
		policies: p,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Sweep runs one expiry pass over both tables and returns the flipped counts.
func (s *Sweeper) Sweep(ctx context.Context) (quotesExpired, policiesExpired int64, err error) {
	now := s.now()
	quotesExpired, err = s.quotes.ExpireDue(ctx, now)
	if err != nil {
		return 0, 0, err
	}
	policiesExpired, err = s.policies.ExpireDue(ctx, now)
	if err != nil {
		return quotesExpired, 0, err
	}
	return quotesExpired, policiesExpired, nil
}

// Start schedules periodic sweeps with the given cron spec (standard 5-field
// or a descriptor like "@hourly").
func (s *Sweeper) Start(spec string) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		nq, np, err := s.Sweep(ctx)
		if err != nil {
			log.Printf("reconcile: sweep: %v", err)
			return
		}
		if nq > 0 || np > 0 {
			log.Printf("reconcile: expired %d quotes, %d policies", nq, np)
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	s.cron = c
	return nil
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
