package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/purrify/pricing_api/internal/cache"
	"github.com/purrify/pricing_api/internal/currency"
	"github.com/purrify/pricing_api/internal/models"
	"github.com/purrify/pricing_api/internal/pricing"
)

// CatalogProvider supplies the current serving catalog. Satisfied by
// CatalogService; tests substitute a fixed catalog.
type CatalogProvider interface {
	Catalog() *pricing.Catalog
}

// PricingService answers storefront price queries from the serving catalog.
type PricingService struct {
	catalogSvc CatalogProvider
	linkCache  *cache.LinkCache
}

// NewPricingService constructs a PricingService.
func NewPricingService(catalogSvc CatalogProvider, linkCache *cache.LinkCache) *PricingService {
	return &PricingService{catalogSvc: catalogSvc, linkCache: linkCache}
}

// ProductQuote is the outward-facing payload for one priced product.
type ProductQuote struct {
	CatalogID string            `json:"catalogId"`
	Name      string            `json:"name"`
	Size      string            `json:"size"`
	Autoship  bool              `json:"autoship"`
	Currency  currency.Currency `json:"currency"`
	Price     float64           `json:"price"`
	Formatted string            `json:"formatted"`
}

// Quote prices a single product by alias key or catalog id.
func (s *PricingService) Quote(idOrKey string, cur currency.Currency, locale string) (*ProductQuote, error) {
	catalog := s.catalogSvc.Catalog()
	product, err := catalog.Product(idOrKey)
	if err != nil {
		return nil, err
	}
	price, err := catalog.Price(idOrKey, cur)
	if err != nil {
		return nil, err
	}
	return &ProductQuote{
		CatalogID: product.CatalogID,
		Name:      product.Name,
		Size:      product.Size,
		Autoship:  product.Autoship,
		Currency:  cur,
		Price:     price,
		Formatted: pricing.FormatCurrency(price, cur, locale),
	}, nil
}

// QuoteAll prices every product in the catalog.
func (s *PricingService) QuoteAll(cur currency.Currency, locale string) []ProductQuote {
	catalog := s.catalogSvc.Catalog()
	products := catalog.Products()
	quotes := make([]ProductQuote, 0, len(products))
	for _, p := range products {
		price, err := catalog.Price(p.CatalogID, cur)
		if err != nil {
			// Cannot happen for ids straight out of the catalog.
			continue
		}
		quotes = append(quotes, ProductQuote{
			CatalogID: p.CatalogID,
			Name:      p.Name,
			Size:      p.Size,
			Autoship:  p.Autoship,
			Currency:  cur,
			Price:     price,
			Formatted: pricing.FormatCurrency(price, cur, locale),
		})
	}
	return quotes
}

// PriceRange returns the min/max price across the alias set, with the
// formatted string cached in Redis per (currency, locale).
func (s *PricingService) PriceRange(ctx context.Context, cur currency.Currency, locale string) (pricing.PriceRange, error) {
	r, err := s.catalogSvc.Catalog().PriceRange(cur, locale)
	if err != nil {
		return pricing.PriceRange{}, err
	}

	if s.linkCache != nil {
		if cached, err := s.linkCache.GetPriceRange(ctx, string(cur), locale); err == nil && cached != "" {
			r.Formatted = cached
			return r, nil
		}
		if err := s.linkCache.SetPriceRange(ctx, string(cur), locale, r.Formatted); err != nil {
			log.Warn().Err(err).Msg("failed to cache price range")
		}
	}
	return r, nil
}

// FormatValue formats an arbitrary derived amount (e.g. a per-month
// equivalent) through the same formatter products use.
func (s *PricingService) FormatValue(value float64, cur currency.Currency, locale string) string {
	return pricing.FormatCurrency(value, cur, locale)
}

// Aliases returns the alias-to-catalog-id map served on the aliases
// endpoint.
func (s *PricingService) Aliases() map[models.AliasKey]string {
	return s.catalogSvc.Catalog().Aliases()
}
