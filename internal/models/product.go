package models

import "time"

// Product represents one Purrify SKU/size in the price catalog.
// PriceCAD is the reference-currency price in dollars; PriceUSD is an
// optional override served to shoppers resolved to USD. A nil PriceUSD means
// the CAD price is used for both currencies.
type Product struct {
	ID          int       `db:"id" json:"id"`
	CatalogID   string    `db:"catalog_id" json:"catalogId"`
	Name        string    `db:"name" json:"name"`
	Size        string    `db:"size" json:"size"`
	Description string    `db:"description" json:"description"`
	PriceCAD    float64   `db:"price_cad" json:"priceCad"`
	PriceUSD    *float64  `db:"price_usd" json:"priceUsd,omitempty"`
	Autoship    bool      `db:"autoship" json:"autoship"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// AliasKey is a semantic shorthand used by the storefront for one catalog id
// (e.g. "family" for the 120g size). The set is closed: every alias maps to
// exactly one catalog id.
type AliasKey string

const (
	AliasTrial            AliasKey = "trial"
	AliasStandard         AliasKey = "standard"
	AliasStandardAutoship AliasKey = "standardAutoship"
	AliasFamily           AliasKey = "family"
	AliasFamilyAutoship   AliasKey = "familyAutoship"
	AliasJumbo            AliasKey = "jumbo"
	AliasJumboAutoship    AliasKey = "jumboAutoship"
)

// AliasKeys lists the closed alias set in display order.
var AliasKeys = []AliasKey{
	AliasTrial,
	AliasStandard,
	AliasStandardAutoship,
	AliasFamily,
	AliasFamilyAutoship,
	AliasJumbo,
	AliasJumboAutoship,
}
