package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/purrify/pricing_api/internal/config"
)

const (
	connectAttempts = 5
	connectBackoff  = 500 * time.Millisecond
	maxBackoff      = 5 * time.Second
	pingTimeout     = 5 * time.Second
)

// Connect opens the PostgreSQL pool and verifies it with a ping, retrying
// with exponential backoff so the API survives the database container
// coming up after it does.
func Connect(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	if cfg == nil {
		return nil, errors.New("nil database config")
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(cfg.User), url.QueryEscape(cfg.Password), cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode,
	)

	var db *sqlx.DB
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, lastErr = sqlx.Open("postgres", dsn)
		if lastErr != nil {
			backoff(attempt)
			continue
		}

		configurePool(db.DB)

		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		lastErr = db.PingContext(ctx)
		cancel()
		if lastErr == nil {
			return db, nil
		}

		_ = db.Close()
		backoff(attempt)
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, lastErr)
}

// configurePool sizes the pool for this service's profile: short read-mostly
// queries from request handlers plus the periodic catalog refresh.
func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
}

// backoff sleeps base*2^(attempt-1), capped.
func backoff(attempt int) {
	d := connectBackoff << (attempt - 1)
	if d > maxBackoff {
		d = maxBackoff
	}
	time.Sleep(d)
}
