package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/purrify/pricing_api/internal/models"
)

// ProductRepository handles data access for the product price table.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAll returns all active products ordered by catalog id.
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	const q = `
        SELECT * FROM products
        WHERE is_active = true
        ORDER BY catalog_id`

	var products []models.Product
	if err := r.db.Select(&products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByCatalogID returns a single product by catalog id.
func (r *ProductRepository) GetByCatalogID(catalogID string) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE catalog_id = $1 LIMIT 1`
	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var p models.Product
	if err := stmt.Get(&p, catalogID); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or updates a product by catalog id.
func (r *ProductRepository) Upsert(product *models.Product) error {
	const q = `
        INSERT INTO products (catalog_id, name, size, description, price_cad, price_usd, autoship, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (catalog_id) DO UPDATE SET
            name = EXCLUDED.name,
            size = EXCLUDED.size,
            description = EXCLUDED.description,
            price_cad = EXCLUDED.price_cad,
            price_usd = EXCLUDED.price_usd,
            autoship = EXCLUDED.autoship,
            is_active = EXCLUDED.is_active,
            updated_at = NOW()`

	stmt, err := r.db.Preparex(q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		product.CatalogID,
		product.Name,
		product.Size,
		product.Description,
		product.PriceCAD,
		product.PriceUSD,
		product.Autoship,
		product.IsActive,
	)
	return err
}

// UpdatePrices sets the CAD price and USD override for a product.
// A nil usdPrice clears the override so the CAD price serves both
// currencies again.
func (r *ProductRepository) UpdatePrices(catalogID string, cadPrice float64, usdPrice *float64) error {
	const q = `UPDATE products SET price_cad = $2, price_usd = $3, updated_at = NOW() WHERE catalog_id = $1`
	res, err := r.db.Exec(q, catalogID, cadPrice, usdPrice)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStatus sets the active flag of a product.
func (r *ProductRepository) UpdateStatus(catalogID string, isActive bool) error {
	const q = `UPDATE products SET is_active = $2, updated_at = NOW() WHERE catalog_id = $1`
	_, err := r.db.Exec(q, catalogID, isActive)
	return err
}

// Count returns the number of rows in the products table, active or not.
func (r *ProductRepository) Count() (int, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(1) FROM products`); err != nil {
		return 0, err
	}
	return n, nil
}
