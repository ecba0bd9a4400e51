package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	claimDomain "suremotor-backend/internal/domain/claim"
	policyDomain "suremotor-backend/internal/domain/policy"
	quoteDomain "suremotor-backend/internal/domain/quote"
)

const (
	recentLimit     = 5
	topLimit        = 5
	analyticsMonths = 6
)

// Usecase is a read-only fold over the three lifecycles. It never writes.
type Usecase struct {
	quotes   quoteDomain.Repository
	policies policyDomain.Repository
	claims   claimDomain.Repository
	now      func() time.Time
}

func NewUsecase(q quoteDomain.Repository, p policyDomain.Repository, c claimDomain.Repository) *Usecase {
	return &Usecase{quotes: q, policies: p, claims: c, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) Dashboard(ctx context.Context, ownerID string) (*DashboardData, error) {
	quotes, err := u.quotes.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	policies, err := u.policies.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	claims, err := u.claims.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := u.now()

	d := &DashboardData{
		RecentQuotes:   make([]RecentQuote, 0, recentLimit),
		RecentPolicies: make([]RecentPolicy, 0, recentLimit),
		RecentClaims:   make([]RecentClaim, 0, recentLimit),
	}
	d.Stats.TotalQuotes = len(quotes)

	for i := range policies {
		p := &policies[i]
		if policyDomain.IsActive(p, now) {
			d.Stats.ActivePolicies++
			d.Stats.TotalCoverage += p.Premium
		}
	}
	for i := range claims {
		if claimDomain.IsPending(&claims[i]) {
			d.Stats.PendingClaims++
		}
	}

	// repos return newest-first
	for i := range quotes[:min(len(quotes), recentLimit)] {
		q := &quotes[i]
		d.RecentQuotes = append(d.RecentQuotes, RecentQuote{
			QuoteID:      q.QuoteID,
			VehicleInfo:  fmt.Sprintf("%d %s %s", q.Year, q.Make, q.Model),
			CoverageType: string(q.CoverageType),
			Premium:      q.Premium,
			Status:       string(quoteDomain.EffectiveStatus(q, now)),
			CreatedAt:    q.CreatedAt,
			ExpiresAt:    q.ExpiresAt,
		})
	}
	for i := range policies[:min(len(policies), recentLimit)] {
		p := &policies[i]
		d.RecentPolicies = append(d.RecentPolicies, RecentPolicy{
			PolicyID:     p.PolicyID,
			PolicyNumber: p.PolicyNumber,
			VehicleInfo:  p.VehicleInfo,
			Premium:      p.Premium,
			Status:       string(policyDomain.EffectiveStatus(p, now)),
			EndDate:      p.EndDate,
			CreatedAt:    p.CreatedAt,
		})
	}
	for i := range claims[:min(len(claims), recentLimit)] {
		c := &claims[i]
		d.RecentClaims = append(d.RecentClaims, RecentClaim{
			ClaimID:         c.ClaimID,
			ClaimNumber:     c.ClaimNumber,
			IncidentType:    string(c.IncidentType),
			EstimatedAmount: c.EstimatedAmount,
			Status:          string(c.Status),
			CreatedAt:       c.CreatedAt,
		})
	}
	return d, nil
}

func (u *Usecase) Analytics(ctx context.Context, ownerID string) (*AnalyticsData, error) {
	quotes, err := u.quotes.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	policies, err := u.policies.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	claims, err := u.claims.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := u.now()

	a := &AnalyticsData{}
	a.Overview = overview(quotes, policies, claims)
	a.RevenueByMonth = revenueByMonth(policies, now)
	a.PoliciesByType = policiesByType(policies)
	a.ClaimsByStatus = claimsByStatus(claims)
	a.TopVehicles = topVehicles(policies)
	a.MonthlyGrowth = monthlyGrowth(quotes, policies, claims, now)
	a.PremiumDistribution = premiumDistribution(policies)
	a.ClaimFrequency = claimFrequency(claims)
	return a, nil
}

func (u *Usecase) Admin(ctx context.Context) (*AdminOverview, error) {
	quotes, err := u.quotes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	policies, err := u.policies.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := u.claims.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()

	o := &AdminOverview{
		TotalQuotes:   len(quotes),
		TotalPolicies: len(policies),
		TotalClaims:   len(claims),
	}

	owners := map[string]struct{}{}
	for i := range quotes {
		owners[quotes[i].OwnerID] = struct{}{}
	}
	rows := map[string]*OwnerBreakdown{}
	rowFor := func(ownerID string) *OwnerBreakdown {
		r, ok := rows[ownerID]
		if !ok {
			r = &OwnerBreakdown{OwnerID: ownerID}
			rows[ownerID] = r
		}
		return r
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := range policies {
		p := &policies[i]
		owners[p.OwnerID] = struct{}{}
		o.TotalRevenue += p.Premium
		if policyDomain.IsActive(p, now) {
			o.ActivePolicies++
		}
		if !p.CreatedAt.Before(monthStart) {
			o.MonthlyRevenue += p.Premium
		}
		r := rowFor(p.OwnerID)
		r.Policies++
		r.TotalSpent += p.Premium
	}
	for i := range claims {
		c := &claims[i]
		owners[c.OwnerID] = struct{}{}
		o.TotalClaimAmount += c.EstimatedAmount
		if claimDomain.IsPending(c) {
			o.PendingClaims++
		}
		switch c.Status {
		case claimDomain.StatusApproved, claimDomain.StatusSettled:
			o.ApprovedClaims++
		case claimDomain.StatusRejected:
			o.RejectedClaims++
		}
		rowFor(c.OwnerID).Claims++
	}
	o.TotalUsers = len(owners)
	if len(quotes) > 0 {
		o.ConversionRate = round1(float64(len(policies)) / float64(len(quotes)) * 100)
	}
	o.TopOwners = topOwners(rows)
	return o, nil
}

// topOwners ranks owners that hold at least one policy or claim by spend,
// heaviest first.
func topOwners(rows map[string]*OwnerBreakdown) []OwnerBreakdown {
	out := make([]OwnerBreakdown, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSpent != out[j].TotalSpent {
			return out[i].TotalSpent > out[j].TotalSpent
		}
		if out[i].Policies != out[j].Policies {
			return out[i].Policies > out[j].Policies
		}
		return out[i].OwnerID < out[j].OwnerID
	})
	if len(out) > topLimit {
		out = out[:topLimit]
	}
	return out
}

// --- fold helpers ---

func overview(quotes []quoteDomain.Quote, policies []policyDomain.Policy, claims []claimDomain.Claim) Overview {
	o := Overview{TotalPolicies: len(policies), TotalClaims: len(claims)}
	for i := range policies {
		o.TotalRevenue += policies[i].Premium
	}
	for i := range claims {
		o.TotalClaimExposure += claims[i].EstimatedAmount
	}
	// all ratios degrade to 0, never NaN
	if len(policies) > 0 {
		o.AveragePremium = int64(math.Round(float64(o.TotalRevenue) / float64(len(policies))))
	}
	if o.TotalRevenue > 0 {
		o.ClaimRatio = round1(float64(o.TotalClaimExposure) / float64(o.TotalRevenue) * 100)
	}
	if len(quotes) > 0 {
		o.ConversionRate = round1(float64(len(policies)) / float64(len(quotes)) * 100)
	}
	return o
}

// monthStarts yields the first instants of the last n calendar months,
// oldest first.
func monthStarts(now time.Time, n int) []time.Time {
	starts := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		starts = append(starts, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0))
	}
	return starts
}

// monthIndex returns which window month at falls in, or -1 when outside.
func monthIndex(starts []time.Time, at time.Time) int {
	for j := range starts {
		if !at.Before(starts[j]) && at.Before(starts[j].AddDate(0, 1, 0)) {
			return j
		}
	}
	return -1
}

// revenueByMonth groups policy premiums over the last six calendar months,
// oldest first.
func revenueByMonth(policies []policyDomain.Policy, now time.Time) []MonthRevenue {
	starts := monthStarts(now, analyticsMonths)
	out := make([]MonthRevenue, len(starts))
	for j, s := range starts {
		out[j].Month = s.Format("Jan 2006")
	}
	for i := range policies {
		if j := monthIndex(starts, policies[i].CreatedAt); j >= 0 {
			out[j].Revenue += policies[i].Premium
			out[j].Policies++
		}
	}
	return out
}

// monthlyGrowth counts quotes, policies and claims opened per window month.
func monthlyGrowth(quotes []quoteDomain.Quote, policies []policyDomain.Policy, claims []claimDomain.Claim, now time.Time) []MonthGrowth {
	starts := monthStarts(now, analyticsMonths)
	out := make([]MonthGrowth, len(starts))
	for j, s := range starts {
		out[j].Month = s.Format("Jan 2006")
	}
	for i := range quotes {
		if j := monthIndex(starts, quotes[i].CreatedAt); j >= 0 {
			out[j].Quotes++
		}
	}
	for i := range policies {
		if j := monthIndex(starts, policies[i].CreatedAt); j >= 0 {
			out[j].Policies++
		}
	}
	for i := range claims {
		if j := monthIndex(starts, claims[i].CreatedAt); j >= 0 {
			out[j].Claims++
		}
	}
	return out
}

// topVehicles groups policies by vehicle description, busiest first.
func topVehicles(policies []policyDomain.Policy) []VehicleCount {
	idx := map[string]int{}
	out := make([]VehicleCount, 0)
	for i := range policies {
		p := &policies[i]
		j, ok := idx[p.VehicleInfo]
		if !ok {
			j = len(out)
			idx[p.VehicleInfo] = j
			out = append(out, VehicleCount{Vehicle: p.VehicleInfo})
		}
		out[j].Policies++
		out[j].Premium += p.Premium
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Policies != out[j].Policies {
			return out[i].Policies > out[j].Policies
		}
		if out[i].Premium != out[j].Premium {
			return out[i].Premium > out[j].Premium
		}
		return out[i].Vehicle < out[j].Vehicle
	})
	if len(out) > topLimit {
		out = out[:topLimit]
	}
	return out
}

// half-open premium bands, the last one unbounded
var premiumBands = []struct {
	label string
	upper int64
}{
	{"0-2k", 2000},
	{"2k-5k", 5000},
	{"5k-10k", 10000},
	{"10k-20k", 20000},
	{"20k+", math.MaxInt64},
}

func premiumDistribution(policies []policyDomain.Policy) []RangeCount {
	out := make([]RangeCount, len(premiumBands))
	for i, b := range premiumBands {
		out[i].Range = b.label
	}
	for i := range policies {
		for j, b := range premiumBands {
			if policies[i].Premium < b.upper {
				out[j].Count++
				break
			}
		}
	}
	return out
}

func policiesByType(policies []policyDomain.Policy) []TypeCount {
	order := []quoteDomain.CoverageType{
		quoteDomain.CoverageThirdParty,
		quoteDomain.CoverageFireTheft,
		quoteDomain.CoverageComprehensive,
	}
	byType := map[quoteDomain.CoverageType]*TypeCount{}
	out := make([]TypeCount, 0, len(order))
	for _, t := range order {
		out = append(out, TypeCount{Type: string(t)})
		byType[t] = &out[len(out)-1]
	}
	for i := range policies {
		if tc, ok := byType[policies[i].CoverageType]; ok {
			tc.Count++
			tc.Value += policies[i].Premium
		}
	}
	return out
}

func claimsByStatus(claims []claimDomain.Claim) []StatusCount {
	order := []claimDomain.Status{
		claimDomain.StatusSubmitted,
		claimDomain.StatusUnderReview,
		claimDomain.StatusApproved,
		claimDomain.StatusRejected,
		claimDomain.StatusSettled,
	}
	byStatus := map[claimDomain.Status]*StatusCount{}
	out := make([]StatusCount, 0, len(order))
	for _, s := range order {
		out = append(out, StatusCount{Status: string(s)})
		byStatus[s] = &out[len(out)-1]
	}
	for i := range claims {
		if sc, ok := byStatus[claims[i].Status]; ok {
			sc.Count++
			sc.Amount += claims[i].EstimatedAmount
		}
	}
	return out
}

func claimFrequency(claims []claimDomain.Claim) []TypeFrequency {
	order := []claimDomain.IncidentType{
		claimDomain.IncidentAccident,
		claimDomain.IncidentTheft,
		claimDomain.IncidentFire,
		claimDomain.IncidentVandalism,
		claimDomain.IncidentNaturalDisaster,
		claimDomain.IncidentOther,
	}
	byType := map[claimDomain.IncidentType]*TypeFrequency{}
	out := make([]TypeFrequency, 0, len(order))
	for _, t := range order {
		out = append(out, TypeFrequency{Type: string(t)})
		byType[t] = &out[len(out)-1]
	}
	for i := range claims {
		if tf, ok := byType[claims[i].IncidentType]; ok {
			tf.Count++
		}
	}
	if len(claims) > 0 {
		for i := range out {
			out[i].Percentage = round1(float64(out[i].Count) / float64(len(claims)) * 100)
		}
	}
	return out
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
