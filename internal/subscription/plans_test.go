package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purrify/pricing_api/internal/models"
)

func TestFindPlan(t *testing.T) {
	for _, id := range []string{"monthly", "quarterly", "biannual"} {
		plan, ok := FindPlan(id)
		require.True(t, ok, id)
		assert.Equal(t, id, plan.ID)
	}

	_, ok := FindPlan("weekly")
	assert.False(t, ok)
	_, ok = FindPlan("")
	assert.False(t, ok)
}

func TestPlanCatalogInvariants(t *testing.T) {
	require.Len(t, Plans, 3)

	for i := 1; i < len(Plans); i++ {
		assert.Greater(t, Plans[i].Priority, Plans[i-1].Priority,
			"priorities must strictly increase with commitment")
	}

	for _, p := range Plans {
		assert.Greater(t, p.Price, 0.0, p.ID)
		assert.Greater(t, p.RetentionRate, 0.0, p.ID)
		assert.LessOrEqual(t, p.RetentionRate, 1.0, p.ID)
		assert.NotEmpty(t, p.Features, p.ID)
	}
}

func TestMonthlyEquivalent(t *testing.T) {
	monthly, _ := FindPlan("monthly")
	quarterly, _ := FindPlan("quarterly")
	biannual, _ := FindPlan("biannual")

	assert.InDelta(t, 19.99, monthly.MonthlyEquivalent(), 1e-9)
	assert.InDelta(t, 16.99, quarterly.MonthlyEquivalent(), 1e-9)
	assert.InDelta(t, 13.99, biannual.MonthlyEquivalent(), 1e-9)
}

func TestLongerCommitmentCostsLessPerMonth(t *testing.T) {
	for i := 1; i < len(Plans); i++ {
		assert.Less(t, Plans[i].MonthlyEquivalent(), Plans[i-1].MonthlyEquivalent(),
			"%s should undercut %s per month", Plans[i].ID, Plans[i-1].ID)
	}
}

func TestAllPlansSortedByPriority(t *testing.T) {
	plans := AllPlans()
	require.Len(t, plans, len(Plans))
	for i := 1; i < len(plans); i++ {
		assert.Greater(t, plans[i].Priority, plans[i-1].Priority)
	}
}

func TestBillingPeriodMonths(t *testing.T) {
	assert.Equal(t, 1, models.PeriodMonthly.Months())
	assert.Equal(t, 3, models.PeriodQuarterly.Months())
	assert.Equal(t, 6, models.PeriodBiannual.Months())
	assert.Equal(t, 1, models.BillingPeriod("weekly").Months())
}
