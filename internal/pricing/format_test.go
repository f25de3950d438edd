package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/purrify/pricing_api/internal/currency"
)

func TestFormatCurrencyEnglish(t *testing.T) {
	assert.Equal(t, "$19.99", FormatCurrency(19.99, currency.CAD, "en-CA"))
	assert.Equal(t, "$19.99", FormatCurrency(19.99, currency.USD, "en-CA"))
	assert.Equal(t, "$4.99", FormatCurrency(4.99, currency.CAD, "en-US"))
}

func TestFormatCurrencyFrench(t *testing.T) {
	// fr-CA convention: comma decimal separator, "$" after the number,
	// joined by a non-breaking space.
	got := FormatCurrency(19.99, currency.CAD, "fr-CA")
	assert.Equal(t, "19,99 $", got)

	// Underscore locale tags come in from older storefront pages.
	assert.Equal(t, got, FormatCurrency(19.99, currency.CAD, "fr_CA"))
}

func TestFormatCurrencyNeverShowsISOCode(t *testing.T) {
	for _, cur := range []currency.Currency{currency.CAD, currency.USD} {
		for _, locale := range []string{"en-CA", "en-US", "fr-CA", ""} {
			got := FormatCurrency(31.99, cur, locale)
			assert.NotContains(t, got, "CAD")
			assert.NotContains(t, got, "USD")
			assert.Contains(t, got, "$")
		}
	}
}

func TestFormatCurrencyPadsFractionDigits(t *testing.T) {
	assert.Equal(t, "$5.00", FormatCurrency(5, currency.CAD, "en-CA"))
	assert.Equal(t, "$14.90", FormatCurrency(14.9, currency.CAD, "en-CA"))
}

func TestFormatCurrencyLocaleFallback(t *testing.T) {
	// Unparseable and empty tags fall back to the reference locale.
	assert.Equal(t, "$19.99", FormatCurrency(19.99, currency.CAD, "not a locale!"))
	assert.Equal(t, "$19.99", FormatCurrency(19.99, currency.CAD, ""))
}

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain run collapses", "19,99   $", "19,99 $"},
		{"single space untouched", "19,99 $", "19,99 $"},
		{"nbsp run survives verbatim", "19,99 $", "19,99 $"},
		{"mixed run with nbsp survives", "19,99   $", "19,99   $"},
		{"no spaces", "$19.99", "$19.99"},
		{"multiple runs", "a  b   c   d", "a b   c d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collapseSpaces(tt.in))
		})
	}
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, "fr-CA", parseLocale("fr_CA").String())
	assert.Equal(t, "en-CA", parseLocale("").String())
	assert.Equal(t, "en-CA", parseLocale("   ").String())
}

func TestFormatCurrencyNoLeadingOrTrailingSpace(t *testing.T) {
	for _, locale := range []string{"en-CA", "fr-CA", "en-US"} {
		got := FormatCurrency(54.99, currency.CAD, locale)
		assert.Equal(t, strings.TrimSpace(got), got, "locale %s", locale)
	}
}
