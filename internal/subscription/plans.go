package subscription

import (
	"sort"

	"github.com/purrify/pricing_api/internal/models"
)

// Plans is the static subscription tier catalog, ordered by priority.
// Prices are the full charge for each billing period in CAD; retention
// rates are the assumed per-period stay probabilities used by the LTV
// model.
var Plans = []models.SubscriptionPlan{
	{
		ID:             "monthly",
		Name:           "Monthly Refill",
		Description:    "One bag a month, skip or cancel anytime.",
		Period:         models.PeriodMonthly,
		Price:          19.99,
		SavingsPercent: 0,
		RetentionRate:  0.90,
		Features: []string{
			"1× Purrify 50g delivered monthly",
			"Free shipping on all orders",
			"Skip or cancel anytime",
		},
		Priority: 1,
	},
	{
		ID:             "quarterly",
		Name:           "Quarterly Saver",
		Description:    "Three bags every three months with built-in savings.",
		Period:         models.PeriodQuarterly,
		Price:          50.97,
		SavingsPercent: 15,
		RetentionRate:  0.92,
		Features: []string{
			"3× Purrify 50g delivered quarterly",
			"Free shipping and tracking",
			"Member-only discounts",
			"Flexible delivery schedule",
		},
		Priority: 2,
	},
	{
		ID:             "biannual",
		Name:           "Biannual Bundle",
		Description:    "Six months of odor control at the deepest discount.",
		Period:         models.PeriodBiannual,
		Price:          83.94,
		SavingsPercent: 30,
		RetentionRate:  0.94,
		Features: []string{
			"6× Purrify 50g delivered twice a year",
			"Free shipping and tracking",
			"Priority customer support",
			"Locked-in pricing for the full term",
		},
		Priority: 3,
	},
}

// FindPlan returns the plan with the given id, or false if unknown.
func FindPlan(id string) (models.SubscriptionPlan, bool) {
	for _, p := range Plans {
		if p.ID == id {
			return p, true
		}
	}
	return models.SubscriptionPlan{}, false
}

// AllPlans returns a copy of the catalog sorted by priority.
func AllPlans() []models.SubscriptionPlan {
	out := make([]models.SubscriptionPlan, len(Plans))
	copy(out, Plans)
	sort.Slice(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}
