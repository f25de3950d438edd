package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/purrify/pricing_api/internal/cache"
	"github.com/purrify/pricing_api/internal/models"
	"github.com/purrify/pricing_api/internal/pricing"
	"github.com/purrify/pricing_api/internal/repository"
	"github.com/purrify/pricing_api/internal/utils"
)

// CatalogService owns the in-memory serving copy of the price catalog.
// Reads go through Catalog(); writes go to the database and then swap in a
// freshly built catalog, so request handlers never see a half-updated
// table.
type CatalogService struct {
	mu          sync.RWMutex
	catalog     *pricing.Catalog
	productRepo *repository.ProductRepository
	linkCache   *cache.LinkCache
}

// NewCatalogService builds the service and loads the initial catalog. An
// empty products table is seeded from the canonical price table so a fresh
// deployment serves correct prices immediately.
func NewCatalogService(productRepo *repository.ProductRepository, linkCache *cache.LinkCache) (*CatalogService, error) {
	s := &CatalogService{
		productRepo: productRepo,
		linkCache:   linkCache,
	}

	n, err := productRepo.Count()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		log.Info().Msg("products table empty, seeding canonical price table")
		for _, p := range pricing.DefaultProducts() {
			p := p
			if err := productRepo.Upsert(&p); err != nil {
				return nil, err
			}
		}
	}

	if err := s.Refresh(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// Catalog returns the current serving catalog.
func (s *CatalogService) Catalog() *pricing.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Refresh rebuilds the serving catalog from the database. Alias-map
// validation happens inside NewCatalog, so configuration drift (an alias
// pointing at a deactivated product) fails the refresh instead of serving
// wrong prices.
func (s *CatalogService) Refresh(ctx context.Context) error {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return err
	}

	catalog, err := pricing.NewCatalog(products)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	log.Debug().Int("products", len(products)).Msg("price catalog refreshed")
	return nil
}

// UpdatePrices persists new prices for a product, refreshes the serving
// catalog, and drops cached price ranges.
func (s *CatalogService) UpdatePrices(ctx context.Context, catalogID string, cadPrice float64, usdPrice *float64) error {
	if err := s.productRepo.UpdatePrices(catalogID, cadPrice, usdPrice); err != nil {
		return err
	}
	if err := s.Refresh(ctx); err != nil {
		return err
	}
	if s.linkCache != nil {
		if err := s.linkCache.InvalidatePriceRanges(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate cached price ranges")
		}
	}
	return nil
}

// UpdateStatus activates or deactivates a product. Deactivating a product
// the alias map still points at is rejected with ErrProductInUse, because
// the next refresh would fail alias validation and leave the catalog stale.
func (s *CatalogService) UpdateStatus(ctx context.Context, catalogID string, isActive bool) error {
	if _, err := s.productRepo.GetByCatalogID(catalogID); err != nil {
		return err
	}
	if !isActive && s.Catalog().IsAliased(catalogID) {
		return utils.ErrProductInUse
	}
	if err := s.productRepo.UpdateStatus(catalogID, isActive); err != nil {
		return err
	}
	if err := s.Refresh(ctx); err != nil {
		return err
	}
	if s.linkCache != nil {
		if err := s.linkCache.InvalidatePriceRanges(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate cached price ranges")
		}
	}
	return nil
}

// UpsertProduct creates or replaces a product row and refreshes the catalog.
func (s *CatalogService) UpsertProduct(ctx context.Context, product *models.Product) error {
	if err := s.productRepo.Upsert(product); err != nil {
		return err
	}
	if err := s.Refresh(ctx); err != nil {
		return err
	}
	if s.linkCache != nil {
		if err := s.linkCache.InvalidatePriceRanges(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate cached price ranges")
		}
	}
	return nil
}
