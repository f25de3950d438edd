package subscription

import (
	"fmt"
	"math"

	"github.com/purrify/pricing_api/internal/currency"
	"github.com/purrify/pricing_api/internal/models"
	"github.com/purrify/pricing_api/internal/pricing"
)

// OptimalPlan recommends a plan for a quiz profile. The decision is a fixed
// rule table, first match wins:
//
//	2+ cats, high budget, high commitment  -> biannual
//	2+ cats                               -> quarterly
//	1 cat, high commitment                -> quarterly
//	otherwise                             -> monthly
func OptimalPlan(profile models.CustomerProfile) models.SubscriptionPlan {
	var id string
	switch {
	case profile.CatCount >= 2 && profile.Budget == models.BudgetHigh && profile.Commitment == models.CommitmentHigh:
		id = "biannual"
	case profile.CatCount >= 2:
		id = "quarterly"
	case profile.Commitment == models.CommitmentHigh:
		id = "quarterly"
	default:
		id = "monthly"
	}
	plan, _ := FindPlan(id)
	return plan
}

// LTV projects total revenue from one subscriber over a horizon of months.
// Each month contributes the plan's monthly-equivalent price weighted by
// cumulative retention; the first month carries full weight and the
// retention rate compounds once per month from then on, regardless of the
// plan's billing period. Decay is deliberately monthly even for quarterly
// and biannual plans. The result is rounded to whole dollars.
func LTV(plan models.SubscriptionPlan, months int) float64 {
	monthly := plan.MonthlyEquivalent()
	retention := 1.0
	total := 0.0
	for m := 1; m <= months; m++ {
		total += monthly * retention
		retention *= plan.RetentionRate
	}
	return math.Round(total)
}

// Churn risk weights. Heuristic scoring, not a statistical model: the
// thresholds and weights are product-chosen and must not drift.
const (
	churnStaleLong    = 0.30 // no interaction in over 30 days
	churnStaleShort   = 0.20 // no interaction in over 14 days
	churnManyTickets  = 0.25 // more than 2 support tickets
	churnPaymentFails = 0.40 // any failed payment
	churnLowUsage     = 0.15 // low usage frequency
)

// ChurnRisk scores a subscriber's cancellation risk in [0,1] from an
// analytics snapshot. The score is additive and clamped.
func ChurnRisk(a models.SubscriptionAnalytics) float64 {
	risk := 0.0
	switch {
	case a.DaysSinceLastInteraction > 30:
		risk += churnStaleLong
	case a.DaysSinceLastInteraction > 14:
		risk += churnStaleShort
	}
	if a.SupportTickets > 2 {
		risk += churnManyTickets
	}
	if a.PaymentFailures > 0 {
		risk += churnPaymentFails
	}
	if a.UsageFrequency == models.UsageLow {
		risk += churnLowUsage
	}
	return math.Min(1.0, math.Max(0.0, risk))
}

// UpgradePath returns the next higher-commitment plan: the lowest-priority
// plan whose priority strictly exceeds the current plan's. Nil when the
// current plan is unknown or already at the top.
func UpgradePath(currentPlanID string) *models.SubscriptionPlan {
	cur, ok := FindPlan(currentPlanID)
	if !ok {
		return nil
	}
	var next *models.SubscriptionPlan
	for i := range Plans {
		p := Plans[i]
		if p.Priority <= cur.Priority {
			continue
		}
		if next == nil || p.Priority < next.Priority {
			next = &p
		}
	}
	return next
}

// UpgradeSavings compares projected LTV between two plans over the same
// horizon. Savings is the drop in projected spend moving from current to
// target; Percentage is that drop relative to the current plan. Unknown
// plan ids produce zeros, never an error.
type UpgradeSavings struct {
	Savings    float64 `json:"savings"`
	Percentage float64 `json:"percentage"`
}

// CalculateUpgradeSavings computes savings for an upgrade between two plans.
func CalculateUpgradeSavings(currentPlanID, targetPlanID string, months int) UpgradeSavings {
	cur, okCur := FindPlan(currentPlanID)
	target, okTarget := FindPlan(targetPlanID)
	if !okCur || !okTarget {
		return UpgradeSavings{}
	}
	curLTV := LTV(cur, months)
	targetLTV := LTV(target, months)
	s := UpgradeSavings{Savings: curLTV - targetLTV}
	if curLTV != 0 {
		s.Percentage = s.Savings / curLTV * 100
	}
	return s
}

// FormatPlanPrice renders the plan's monthly-equivalent price for display.
// Subscription plans are not currency-aware; they always format in CAD.
func FormatPlanPrice(plan models.SubscriptionPlan, locale string) string {
	return pricing.FormatCurrency(plan.MonthlyEquivalent(), currency.CAD, locale)
}

// PaymentLinkKey templates the lookup key used against the external
// payment-link registry: "<period>_<productID>". False for unknown plans;
// the registry owns the URL itself.
func PaymentLinkKey(planID, productID string) (string, bool) {
	plan, ok := FindPlan(planID)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s_%s", plan.Period, productID), true
}
