package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/purrify/pricing_api/internal/service"
)

// CatalogRefreshWorker periodically reloads the price table from the
// database so price edits made outside this process show up without a
// restart.
type CatalogRefreshWorker struct {
	catalogService *service.CatalogService
	interval       time.Duration
}

// NewCatalogRefreshWorker constructs a CatalogRefreshWorker.
func NewCatalogRefreshWorker(catalogService *service.CatalogService, interval time.Duration) *CatalogRefreshWorker {
	return &CatalogRefreshWorker{
		catalogService: catalogService,
		interval:       interval,
	}
}

// Start begins the periodic refresh loop and listens for context cancellation.
func (w *CatalogRefreshWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting catalog refresh worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Catalog refresh worker stopped")
			return
		}
	}
}

func (w *CatalogRefreshWorker) run(ctx context.Context) {
	start := time.Now()
	if err := w.catalogService.Refresh(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh catalog")
		return
	}

	log.Info().Dur("duration", time.Since(start)).Msg("Catalog refresh completed")
}
