package pricing

import "github.com/purrify/pricing_api/internal/models"

// defaultAliases is the canonical alias-to-catalog-id map. The set is
// closed; every key must resolve to a product in the table.
var defaultAliases = map[models.AliasKey]string{
	models.AliasTrial:            "purrify-12g",
	models.AliasStandard:         "purrify-50g",
	models.AliasStandardAutoship: "purrify-50g-autoship",
	models.AliasFamily:           "purrify-120g",
	models.AliasFamilyAutoship:   "purrify-120g-autoship",
	models.AliasJumbo:            "purrify-240g",
	models.AliasJumboAutoship:    "purrify-240g-autoship",
}

func usd(v float64) *float64 { return &v }

// DefaultProducts is the canonical price table. It seeds the database
// migration and serves as the boot fallback when the products table is
// empty.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			CatalogID:   "purrify-12g",
			Name:        "Purrify 12g",
			Size:        "12g",
			Description: "Trial size: enough for one litter box change.",
			PriceCAD:    4.99,
			PriceUSD:    usd(3.99),
			IsActive:    true,
		},
		{
			CatalogID:   "purrify-50g",
			Name:        "Purrify 50g",
			Size:        "50g",
			Description: "One month of freshness for single-cat homes.",
			PriceCAD:    14.99,
			PriceUSD:    usd(11.99),
			IsActive:    true,
		},
		{
			CatalogID:   "purrify-50g-autoship",
			Name:        "Purrify 50g Autoship",
			Size:        "3 × 50g (quarterly)",
			Description: "Quarterly autoship of 3×50g bags, shipping included.",
			PriceCAD:    31.99,
			PriceUSD:    usd(24.99),
			Autoship:    true,
			IsActive:    true,
		},
		{
			CatalogID:   "purrify-120g",
			Name:        "Purrify Regular size 120g",
			Size:        "120g",
			Description: "Double the power for multi-cat households.",
			PriceCAD:    29.99,
			PriceUSD:    usd(22.99),
			IsActive:    true,
		},
		{
			CatalogID:   "purrify-120g-autoship",
			Name:        "Purrify 120g Autoship",
			Size:        "3 × 120g (quarterly)",
			Description: "3×120g regular size packs delivered every quarter.",
			PriceCAD:    49.99,
			PriceUSD:    usd(39.99),
			Autoship:    true,
			IsActive:    true,
		},
		{
			CatalogID:   "purrify-240g",
			Name:        "Purrify Large size 240g",
			Size:        "240g",
			Description: "For large multi-cat households or extended supply.",
			PriceCAD:    54.99,
			PriceUSD:    usd(44.99),
			IsActive:    true,
		},
		{
			CatalogID:   "purrify-240g-autoship",
			Name:        "Purrify 240g Autoship",
			Size:        "3 × 240g (quarterly)",
			Description: "3×240g packs delivered every quarter, shipping included.",
			PriceCAD:    79.99,
			PriceUSD:    usd(64.99),
			Autoship:    true,
			IsActive:    true,
		},
	}
}
