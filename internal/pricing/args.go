package pricing

import "github.com/purrify/pricing_api/internal/currency"

// ResolveArgs classifies the storefront's legacy call shape. Older pages
// pass a locale where newer ones pass a currency plus a locale, so a single
// query value must be sniffed by its literal shape: exactly "CAD" or "USD"
// is a currency; anything else (hyphenated tags, bare language codes) is a
// locale and the reference currency is assumed. The rule is reproduced
// exactly — changing it would silently mis-price legacy callers.
func ResolveArgs(currencyOrLocale, locale string) (currency.Currency, string) {
	cur := currency.CAD
	if currencyOrLocale != "" {
		if c, ok := currency.Parse(currencyOrLocale); ok {
			cur = c
		} else if locale == "" {
			locale = currencyOrLocale
		}
	}
	if locale == "" {
		locale = DefaultLocale
	}
	return cur, locale
}
