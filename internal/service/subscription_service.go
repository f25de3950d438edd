package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/purrify/pricing_api/internal/cache"
	"github.com/purrify/pricing_api/internal/models"
	"github.com/purrify/pricing_api/internal/subscription"
	"github.com/purrify/pricing_api/internal/utils"
	"github.com/purrify/pricing_api/pkg/paymentlinks"
)

// LinkResolver resolves payment-link keys to checkout URLs. Satisfied by
// the registry client; tests substitute a static map.
type LinkResolver interface {
	Resolve(ctx context.Context, key string) (string, error)
	ResolveAll(ctx context.Context) (map[string]string, error)
}

var _ LinkResolver = (*paymentlinks.Client)(nil)

// SubscriptionService wraps the plan optimizer and payment-link resolution.
type SubscriptionService struct {
	links     LinkResolver
	linkCache *cache.LinkCache
}

// NewSubscriptionService constructs a SubscriptionService. links may be nil
// when no registry is configured; payment-link resolution then reports the
// link as missing rather than failing requests that never ask for one.
func NewSubscriptionService(links LinkResolver, linkCache *cache.LinkCache) *SubscriptionService {
	return &SubscriptionService{links: links, linkCache: linkCache}
}

// Recommendation is the payload returned for a quiz profile.
type Recommendation struct {
	Plan           models.SubscriptionPlan `json:"plan"`
	MonthlyPrice   string                  `json:"monthlyPrice"`
	ProjectedValue float64                 `json:"projectedValue"`
}

// Recommend picks the optimal plan for a profile and projects its value
// over the given horizon.
func (s *SubscriptionService) Recommend(profile models.CustomerProfile, months int, locale string) Recommendation {
	plan := subscription.OptimalPlan(profile)
	return Recommendation{
		Plan:           plan,
		MonthlyPrice:   subscription.FormatPlanPrice(plan, locale),
		ProjectedValue: subscription.LTV(plan, months),
	}
}

// Plans returns the full tier catalog.
func (s *SubscriptionService) Plans() []models.SubscriptionPlan {
	return subscription.AllPlans()
}

// PlanLTV projects revenue for one plan; false when the plan id is unknown.
func (s *SubscriptionService) PlanLTV(planID string, months int) (float64, bool) {
	plan, ok := subscription.FindPlan(planID)
	if !ok {
		return 0, false
	}
	return subscription.LTV(plan, months), true
}

// ChurnRisk scores an analytics snapshot.
func (s *SubscriptionService) ChurnRisk(a models.SubscriptionAnalytics) float64 {
	return subscription.ChurnRisk(a)
}

// Upgrade describes the next higher-commitment plan and the projected
// savings of moving to it.
type Upgrade struct {
	Plan    *models.SubscriptionPlan    `json:"plan"`
	Savings subscription.UpgradeSavings `json:"savings"`
}

// UpgradeFor returns the upgrade path from a plan, or false when the plan
// is unknown or already at the highest commitment.
func (s *SubscriptionService) UpgradeFor(planID string, months int) (Upgrade, bool) {
	next := subscription.UpgradePath(planID)
	if next == nil {
		return Upgrade{}, false
	}
	return Upgrade{
		Plan:    next,
		Savings: subscription.CalculateUpgradeSavings(planID, next.ID, months),
	}, true
}

// PaymentLink resolves the checkout URL for a (plan, product) pair through
// the external registry, caching hits in Redis.
func (s *SubscriptionService) PaymentLink(ctx context.Context, planID, productID string) (string, error) {
	key, ok := subscription.PaymentLinkKey(planID, productID)
	if !ok {
		return "", utils.ErrPlanNotFound
	}

	if s.linkCache != nil {
		if url, err := s.linkCache.GetLink(ctx, key); err == nil && url != "" {
			return url, nil
		}
	}

	if s.links == nil {
		return "", utils.ErrPaymentLinkMissing
	}
	url, err := s.links.Resolve(ctx, key)
	if err != nil {
		return "", err
	}

	if s.linkCache != nil {
		if err := s.linkCache.SetLink(ctx, key, url); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to cache payment link")
		}
	}
	return url, nil
}

// Triggers returns retention triggers due at or before the given day, or
// the full schedule when day is negative.
func (s *SubscriptionService) Triggers(day int) []models.RetentionTrigger {
	if day < 0 {
		return subscription.RetentionTriggers
	}
	return subscription.TriggersDueBy(day)
}
