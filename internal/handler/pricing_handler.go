package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/purrify/pricing_api/internal/currency"
	"github.com/purrify/pricing_api/internal/middleware"
	"github.com/purrify/pricing_api/internal/pricing"
	"github.com/purrify/pricing_api/internal/service"
	"github.com/purrify/pricing_api/internal/utils"
)

// PricingHandler handles product pricing HTTP endpoints.
type PricingHandler struct {
	pricingService *service.PricingService
}

// NewPricingHandler constructs a PricingHandler.
func NewPricingHandler(pricingService *service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// resolveArgs works out the (currency, locale) pair for a request. An
// explicit ?currency= wins and goes through the legacy single-value
// classifier; otherwise the currency frozen by the geo middleware applies.
func resolveArgs(c *gin.Context) (currency.Currency, string) {
	curParam := c.Query("currency")
	locale := c.Query("locale")
	if curParam != "" {
		return pricing.ResolveArgs(curParam, locale)
	}
	if locale == "" {
		locale = pricing.DefaultLocale
	}
	return middleware.RequestCurrency(c), locale
}

// GetProducts handles GET /v1/pricing/products
func (h *PricingHandler) GetProducts(c *gin.Context) {
	cur, locale := resolveArgs(c)

	utils.Success(c, 200, "Products retrieved successfully", gin.H{
		"currency": cur,
		"locale":   locale,
		"products": h.pricingService.QuoteAll(cur, locale),
	})
}

// GetProduct handles GET /v1/pricing/products/:key where :key is either an
// alias (e.g. "standardAutoship") or a catalog id.
func (h *PricingHandler) GetProduct(c *gin.Context) {
	cur, locale := resolveArgs(c)

	quote, err := h.pricingService.Quote(c.Param("key"), cur, locale)
	if err != nil {
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Unknown product or alias")
		return
	}

	utils.Success(c, 200, "Product retrieved successfully", quote)
}

// GetAliases handles GET /v1/pricing/aliases. Storefronts fetch the map
// once and link by alias key, never by raw catalog id.
func (h *PricingHandler) GetAliases(c *gin.Context) {
	utils.Success(c, 200, "Aliases retrieved successfully", gin.H{
		"aliases": h.pricingService.Aliases(),
	})
}

// GetPriceRange handles GET /v1/pricing/range
func (h *PricingHandler) GetPriceRange(c *gin.Context) {
	cur, locale := resolveArgs(c)

	r, err := h.pricingService.PriceRange(c.Request.Context(), cur, locale)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to compute price range")
		return
	}

	utils.Success(c, 200, "Price range retrieved successfully", gin.H{
		"currency": cur,
		"locale":   locale,
		"min":      r.Min,
		"max":      r.Max,
		"display":  r.Formatted,
	})
}

// FormatValue handles GET /v1/pricing/format?value=
func (h *PricingHandler) FormatValue(c *gin.Context) {
	raw := c.Query("value")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_AMOUNT", "value must be a number")
		return
	}

	cur, locale := resolveArgs(c)

	utils.Success(c, 200, "Value formatted successfully", gin.H{
		"currency":  cur,
		"locale":    locale,
		"value":     value,
		"formatted": h.pricingService.FormatValue(value, cur, locale),
	})
}
