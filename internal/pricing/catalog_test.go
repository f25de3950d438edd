package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purrify/pricing_api/internal/currency"
	"github.com/purrify/pricing_api/internal/models"
	"github.com/purrify/pricing_api/internal/utils"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(DefaultProducts())
	require.NoError(t, err)
	return c
}

func TestNewCatalogRejectsDanglingAliases(t *testing.T) {
	// Every alias must resolve; a partial product list is configuration
	// drift and has to fail at load time.
	_, err := NewCatalog(DefaultProducts()[:3])
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestResolve(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		in   string
		want string
	}{
		{"trial", "purrify-12g"},
		{"standard", "purrify-50g"},
		{"standardAutoship", "purrify-50g-autoship"},
		{"family", "purrify-120g"},
		{"familyAutoship", "purrify-120g-autoship"},
		{"jumbo", "purrify-240g"},
		{"jumboAutoship", "purrify-240g-autoship"},
		// Catalog ids pass through unchanged.
		{"purrify-120g", "purrify-120g"},
	}

	for _, tt := range tests {
		got, err := c.Resolve(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestResolveUnknownIDFailsLoudly(t *testing.T) {
	c := newTestCatalog(t)

	for _, in := range []string{"", "mega", "purrify-500g", "Trial"} {
		_, err := c.Resolve(in)
		assert.ErrorIs(t, err, utils.ErrProductNotFound, "Resolve(%q)", in)
	}
}

func TestPriceUSDOverrideAndFallback(t *testing.T) {
	c := newTestCatalog(t)

	cad, err := c.Price("standard", currency.CAD)
	require.NoError(t, err)
	assert.Equal(t, 14.99, cad)

	usd, err := c.Price("standard", currency.USD)
	require.NoError(t, err)
	assert.Equal(t, 11.99, usd)

	// A product with no USD override serves its CAD price to USD shoppers.
	products := append(DefaultProducts(), models.Product{
		CatalogID: "purrify-sample",
		Name:      "Purrify Sample",
		PriceCAD:  2.49,
		IsActive:  true,
	})
	c2, err := NewCatalog(products)
	require.NoError(t, err)

	fallback, err := c2.Price("purrify-sample", currency.USD)
	require.NoError(t, err)
	assert.Equal(t, 2.49, fallback)
}

func TestFormatPrice(t *testing.T) {
	c := newTestCatalog(t)

	got, err := c.FormatPrice("family", currency.CAD, "en-CA")
	require.NoError(t, err)
	assert.Equal(t, "$29.99", got)

	got, err = c.FormatPrice("family", currency.USD, "en-US")
	require.NoError(t, err)
	assert.Equal(t, "$22.99", got)

	_, err = c.FormatPrice("nope", currency.CAD, "en-CA")
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestPriceRange(t *testing.T) {
	c := newTestCatalog(t)

	r, err := c.PriceRange(currency.CAD, "en-CA")
	require.NoError(t, err)
	assert.Equal(t, 4.99, r.Min)
	assert.Equal(t, 79.99, r.Max)
	assert.Equal(t, "$4.99 - $79.99", r.Formatted)

	r, err = c.PriceRange(currency.USD, "en-US")
	require.NoError(t, err)
	assert.Equal(t, 3.99, r.Min)
	assert.Equal(t, 64.99, r.Max)
	assert.Equal(t, "$3.99 - $64.99", r.Formatted)
}

func TestProductsOrderedByCatalogID(t *testing.T) {
	c := newTestCatalog(t)

	products := c.Products()
	require.Len(t, products, 7)
	for i := 1; i < len(products); i++ {
		assert.Less(t, products[i-1].CatalogID, products[i].CatalogID)
	}
}

func TestIsAliased(t *testing.T) {
	products := append(DefaultProducts(), models.Product{
		CatalogID: "purrify-sample",
		Name:      "Purrify Sample",
		PriceCAD:  2.49,
		IsActive:  true,
	})
	c, err := NewCatalog(products)
	require.NoError(t, err)

	// Every canonical product is an alias target; the extra one is not.
	for _, p := range DefaultProducts() {
		assert.True(t, c.IsAliased(p.CatalogID), "catalog id %q", p.CatalogID)
	}
	assert.False(t, c.IsAliased("purrify-sample"))
	assert.False(t, c.IsAliased("purrify-500g"))
}

func TestAliasesReturnsCopy(t *testing.T) {
	c := newTestCatalog(t)

	aliases := c.Aliases()
	require.Len(t, aliases, len(models.AliasKeys))
	aliases[models.AliasTrial] = "tampered"

	got, err := c.Resolve("trial")
	require.NoError(t, err)
	assert.Equal(t, "purrify-12g", got)
}
