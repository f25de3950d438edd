package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/purrify/pricing_api/internal/currency"
)

func TestResolveArgs(t *testing.T) {
	tests := []struct {
		name       string
		first      string
		locale     string
		wantCur    currency.Currency
		wantLocale string
	}{
		{"currency only", "USD", "", currency.USD, DefaultLocale},
		{"currency and locale", "USD", "en-US", currency.USD, "en-US"},
		{"reference currency", "CAD", "fr-CA", currency.CAD, "fr-CA"},
		{"legacy locale in first position", "fr-CA", "", currency.CAD, "fr-CA"},
		{"bare language code is a locale", "fr", "", currency.CAD, "fr"},
		{"lowercase code is a locale, not a currency", "usd", "", currency.CAD, "usd"},
		{"both empty", "", "", currency.CAD, DefaultLocale},
		{"locale only", "", "en-US", currency.CAD, "en-US"},
		{"locale in first position keeps explicit second", "fr-CA", "en-CA", currency.CAD, "en-CA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur, locale := ResolveArgs(tt.first, tt.locale)
			assert.Equal(t, tt.wantCur, cur)
			assert.Equal(t, tt.wantLocale, locale)
		})
	}
}
