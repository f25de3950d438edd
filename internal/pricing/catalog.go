package pricing

import (
	"fmt"
	"sort"

	"github.com/purrify/pricing_api/internal/currency"
	"github.com/purrify/pricing_api/internal/models"
	"github.com/purrify/pricing_api/internal/utils"
)

// Catalog is the in-memory serving copy of the product price table plus the
// alias map. Instances are immutable after construction; the catalog service
// swaps in a fresh Catalog when prices change.
type Catalog struct {
	products map[string]models.Product
	aliases  map[models.AliasKey]string
	ordered  []string
}

// NewCatalog builds a catalog from a product list and the canonical alias
// map. It fails if any alias points at a catalog id missing from the list:
// a request for an unknown id is configuration drift and must surface at
// load time, not as a silently wrong price.
func NewCatalog(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make(map[string]models.Product, len(products)),
		aliases:  defaultAliases,
	}
	for _, p := range products {
		c.products[p.CatalogID] = p
		c.ordered = append(c.ordered, p.CatalogID)
	}
	sort.Strings(c.ordered)

	for alias, id := range c.aliases {
		if _, ok := c.products[id]; !ok {
			return nil, fmt.Errorf("alias %q maps to missing catalog id %q: %w", alias, id, utils.ErrProductNotFound)
		}
	}
	return c, nil
}

// Resolve maps an alias key or catalog id to a catalog id.
func (c *Catalog) Resolve(idOrKey string) (string, error) {
	if id, ok := c.aliases[models.AliasKey(idOrKey)]; ok {
		return id, nil
	}
	if _, ok := c.products[idOrKey]; ok {
		return idOrKey, nil
	}
	return "", utils.ErrProductNotFound
}

// Product returns the product for an alias key or catalog id.
func (c *Catalog) Product(idOrKey string) (models.Product, error) {
	id, err := c.Resolve(idOrKey)
	if err != nil {
		return models.Product{}, err
	}
	return c.products[id], nil
}

// Price returns the raw numeric price for an alias key or catalog id in the
// requested currency. USD falls back to the CAD price when no override
// exists.
func (c *Catalog) Price(idOrKey string, cur currency.Currency) (float64, error) {
	p, err := c.Product(idOrKey)
	if err != nil {
		return 0, err
	}
	if cur == currency.USD && p.PriceUSD != nil {
		return *p.PriceUSD, nil
	}
	return p.PriceCAD, nil
}

// FormatPrice returns the display string for a product price.
func (c *Catalog) FormatPrice(idOrKey string, cur currency.Currency, locale string) (string, error) {
	amount, err := c.Price(idOrKey, cur)
	if err != nil {
		return "", err
	}
	return FormatCurrency(amount, cur, locale), nil
}

// PriceRange spans the minimum and maximum price across the full alias set.
type PriceRange struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Formatted string  `json:"formatted"`
}

// PriceRange computes the min/max price over every alias key in the
// resolved currency. Formatted is "<min> - <max>" with a plain hyphen.
func (c *Catalog) PriceRange(cur currency.Currency, locale string) (PriceRange, error) {
	var r PriceRange
	first := true
	for _, key := range models.AliasKeys {
		price, err := c.Price(string(key), cur)
		if err != nil {
			return PriceRange{}, err
		}
		if first || price < r.Min {
			r.Min = price
		}
		if first || price > r.Max {
			r.Max = price
		}
		first = false
	}
	r.Formatted = FormatCurrency(r.Min, cur, locale) + " - " + FormatCurrency(r.Max, cur, locale)
	return r, nil
}

// Products returns all products ordered by catalog id.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, 0, len(c.ordered))
	for _, id := range c.ordered {
		out = append(out, c.products[id])
	}
	return out
}

// IsAliased reports whether any alias key points at the given catalog id.
// Aliased products cannot be deactivated: every alias must stay resolvable.
func (c *Catalog) IsAliased(catalogID string) bool {
	for _, id := range c.aliases {
		if id == catalogID {
			return true
		}
	}
	return false
}

// Aliases returns a copy of the alias map.
func (c *Catalog) Aliases() map[models.AliasKey]string {
	out := make(map[models.AliasKey]string, len(c.aliases))
	for k, v := range c.aliases {
		out[k] = v
	}
	return out
}
