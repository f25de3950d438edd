package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/purrify/pricing_api/internal/currency"
)

const currencyContextKey = "currency"

// CurrencyMiddleware resolves the request currency once from the CDN geo
// header and freezes it in the context, so every price rendered for a
// single request uses the same currency even if later lookups would
// disagree.
func CurrencyMiddleware(geoHeader string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(currencyContextKey, currency.Detect(c.GetHeader(geoHeader)))
		c.Next()
	}
}

// RequestCurrency returns the currency frozen for this request. Falls back
// to the reference currency when the middleware did not run.
func RequestCurrency(c *gin.Context) currency.Currency {
	if v, ok := c.Get(currencyContextKey); ok {
		if cur, ok := v.(currency.Currency); ok {
			return cur
		}
	}
	return currency.CAD
}
