package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purrify/pricing_api/internal/models"
)

func TestOptimalPlan(t *testing.T) {
	tests := []struct {
		name    string
		profile models.CustomerProfile
		want    string
	}{
		{
			"multi-cat committed high budget",
			models.CustomerProfile{CatCount: 2, Budget: models.BudgetHigh, Commitment: models.CommitmentHigh},
			"biannual",
		},
		{
			"multi-cat without high budget",
			models.CustomerProfile{CatCount: 3, Budget: models.BudgetMedium, Commitment: models.CommitmentHigh},
			"quarterly",
		},
		{
			"multi-cat casual",
			models.CustomerProfile{CatCount: 2, Budget: models.BudgetLow, Commitment: models.CommitmentLow},
			"quarterly",
		},
		{
			"single cat committed",
			models.CustomerProfile{CatCount: 1, Budget: models.BudgetLow, Commitment: models.CommitmentHigh},
			"quarterly",
		},
		{
			"single cat casual",
			models.CustomerProfile{CatCount: 1, Budget: models.BudgetMedium, Commitment: models.CommitmentMedium},
			"monthly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OptimalPlan(tt.profile).ID)
		})
	}
}

func TestLTV(t *testing.T) {
	monthly, _ := FindPlan("monthly")
	quarterly, _ := FindPlan("quarterly")
	biannual, _ := FindPlan("biannual")

	// Zero horizon projects zero revenue.
	assert.Equal(t, 0.0, LTV(monthly, 0))

	// First month carries full weight, so one month is just the
	// monthly-equivalent price rounded to whole dollars.
	assert.Equal(t, 20.0, LTV(monthly, 1))
	assert.Equal(t, 17.0, LTV(quarterly, 1))
	assert.Equal(t, 14.0, LTV(biannual, 1))

	// Twelve-month projections with monthly geometric decay.
	assert.Equal(t, 143.0, LTV(monthly, 12))
	assert.Equal(t, 134.0, LTV(quarterly, 12))
	assert.Equal(t, 122.0, LTV(biannual, 12))
}

func TestLTVMonotonicInHorizon(t *testing.T) {
	for _, plan := range Plans {
		prev := 0.0
		for months := 1; months <= 36; months++ {
			got := LTV(plan, months)
			assert.GreaterOrEqual(t, got, prev, "plan %s months %d", plan.ID, months)
			prev = got
		}
	}
}

func TestChurnRisk(t *testing.T) {
	tests := []struct {
		name string
		in   models.SubscriptionAnalytics
		want float64
	}{
		{"empty snapshot", models.SubscriptionAnalytics{}, 0},
		{"stale over two weeks", models.SubscriptionAnalytics{DaysSinceLastInteraction: 15}, 0.20},
		{"stale over a month", models.SubscriptionAnalytics{DaysSinceLastInteraction: 31}, 0.30},
		{"stale buckets do not stack", models.SubscriptionAnalytics{DaysSinceLastInteraction: 90}, 0.30},
		{"many tickets", models.SubscriptionAnalytics{SupportTickets: 3}, 0.25},
		{"two tickets is fine", models.SubscriptionAnalytics{SupportTickets: 2}, 0},
		{"payment failure", models.SubscriptionAnalytics{PaymentFailures: 1}, 0.40},
		{"low usage", models.SubscriptionAnalytics{UsageFrequency: models.UsageLow}, 0.15},
		{"high usage", models.SubscriptionAnalytics{UsageFrequency: models.UsageHigh}, 0},
		{
			"signals stack",
			models.SubscriptionAnalytics{DaysSinceLastInteraction: 20, PaymentFailures: 2},
			0.60,
		},
		{
			"clamped at one",
			models.SubscriptionAnalytics{
				DaysSinceLastInteraction: 40,
				SupportTickets:           5,
				PaymentFailures:          1,
				UsageFrequency:           models.UsageLow,
			},
			1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ChurnRisk(tt.in), 1e-9)
		})
	}
}

func TestUpgradePath(t *testing.T) {
	next := UpgradePath("monthly")
	require.NotNil(t, next)
	assert.Equal(t, "quarterly", next.ID)

	next = UpgradePath("quarterly")
	require.NotNil(t, next)
	assert.Equal(t, "biannual", next.ID)

	assert.Nil(t, UpgradePath("biannual"), "highest tier has no upgrade")
	assert.Nil(t, UpgradePath("weekly"), "unknown plan has no upgrade")
}

func TestCalculateUpgradeSavings(t *testing.T) {
	s := CalculateUpgradeSavings("monthly", "quarterly", 12)
	assert.Greater(t, s.Savings, 0.0)
	assert.Greater(t, s.Percentage, 0.0)
	assert.InDelta(t, s.Savings/143.0*100, s.Percentage, 1e-9)

	s = CalculateUpgradeSavings("quarterly", "biannual", 12)
	assert.Greater(t, s.Savings, 0.0)

	// Unknown ids produce zeros, never an error.
	assert.Zero(t, CalculateUpgradeSavings("weekly", "quarterly", 12))
	assert.Zero(t, CalculateUpgradeSavings("monthly", "weekly", 12))
}

func TestFormatPlanPrice(t *testing.T) {
	quarterly, _ := FindPlan("quarterly")

	// Plans display their monthly-equivalent price, always in CAD.
	assert.Equal(t, "$16.99", FormatPlanPrice(quarterly, "en-CA"))
	assert.Equal(t, "16,99 $", FormatPlanPrice(quarterly, "fr-CA"))
}

func TestPaymentLinkKey(t *testing.T) {
	key, ok := PaymentLinkKey("monthly", "purrify-50g")
	require.True(t, ok)
	assert.Equal(t, "monthly_purrify-50g", key)

	key, ok = PaymentLinkKey("biannual", "purrify-120g")
	require.True(t, ok)
	assert.Equal(t, "biannual_purrify-120g", key)

	_, ok = PaymentLinkKey("weekly", "purrify-50g")
	assert.False(t, ok)
}
