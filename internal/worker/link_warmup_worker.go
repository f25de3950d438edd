package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/purrify/pricing_api/internal/cache"
	"github.com/purrify/pricing_api/internal/service"
)

// LinkWarmupWorker pre-fetches the payment-link registry into Redis so
// checkout requests rarely block on the external registry.
type LinkWarmupWorker struct {
	links     service.LinkResolver
	linkCache *cache.LinkCache
	interval  time.Duration
}

// NewLinkWarmupWorker constructs a LinkWarmupWorker.
func NewLinkWarmupWorker(links service.LinkResolver, linkCache *cache.LinkCache, interval time.Duration) *LinkWarmupWorker {
	return &LinkWarmupWorker{
		links:     links,
		linkCache: linkCache,
		interval:  interval,
	}
}

// Start begins the periodic warmup loop and listens for context cancellation.
func (w *LinkWarmupWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting link warmup worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Link warmup worker stopped")
			return
		}
	}
}

func (w *LinkWarmupWorker) run(ctx context.Context) {
	start := time.Now()

	links, err := w.links.ResolveAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch payment links")
		return
	}

	warmed := 0
	for key, url := range links {
		if url == "" {
			continue
		}
		if err := w.linkCache.SetLink(ctx, key, url); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to cache payment link")
			continue
		}
		warmed++
	}

	log.Info().
		Int("links", warmed).
		Dur("duration", time.Since(start)).
		Msg("Payment link warmup completed")
}
