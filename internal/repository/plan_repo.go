package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/purrify/pricing_api/internal/models"
)

// PlanRepository handles data access for subscription plans. The static
// catalog in internal/subscription is the serving copy; this table exists
// so the admin panel can audit and adjust retention assumptions without a
// deploy.
type PlanRepository struct {
	db *sqlx.DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(db *sqlx.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// GetAll returns all plans ordered by priority.
func (r *PlanRepository) GetAll() ([]models.SubscriptionPlan, error) {
	const q = `
        SELECT id, name, description, period, price, savings_percent, retention_rate, features, priority, updated_at
        FROM subscription_plans
        ORDER BY priority`

	rows, err := r.db.Queryx(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.SubscriptionPlan
	for rows.Next() {
		var p models.SubscriptionPlan
		// Explicit scan to use pq.Array for the TEXT[] features column.
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Period,
			&p.Price,
			&p.SavingsPercent,
			&p.RetentionRate,
			pq.Array(&p.Features),
			&p.Priority,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// GetByID returns a single plan by id.
func (r *PlanRepository) GetByID(id string) (*models.SubscriptionPlan, error) {
	const q = `
        SELECT id, name, description, period, price, savings_percent, retention_rate, features, priority, updated_at
        FROM subscription_plans
        WHERE id = $1 LIMIT 1`

	row := r.db.QueryRowx(q, id)
	var p models.SubscriptionPlan
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Period,
		&p.Price,
		&p.SavingsPercent,
		&p.RetentionRate,
		pq.Array(&p.Features),
		&p.Priority,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &p, nil
}

// UpdateRetentionRate adjusts the assumed retention rate for a plan.
func (r *PlanRepository) UpdateRetentionRate(id string, rate float64) error {
	const q = `UPDATE subscription_plans SET retention_rate = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.Exec(q, id, rate)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
