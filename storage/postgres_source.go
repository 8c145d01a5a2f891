package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"laptop-dashboard/models"
	"laptop-dashboard/utils"
)

// PostgresSource reads raw listings from a PostgreSQL table populated by the
// scraping jobs. Strictly read-only: no migrations, no inserts.
type PostgresSource struct {
	db *sql.DB
}

// NewPostgresSource opens a connection and verifies it with backoff retries.
func NewPostgresSource(dsn string, maxRetries int, logger *utils.Logger) (*PostgresSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{
		MaxAttempts: maxRetries,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	return &PostgresSource{db: db}, nil
}

// Fetch retrieves every stored listing. Price, rating and date come back as
// text so the cleaner applies the same parsing rules as for the CSV file.
func (s *PostgresSource) Fetch() ([]*models.RawListing, error) {
	rows, err := s.db.Query(`
		SELECT brand, model, platform, price, city,
		       COALESCE(rating, ''), COALESCE(listed_on, '')
		FROM laptop_listings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var listings []*models.RawListing
	for rows.Next() {
		l := &models.RawListing{}
		if err := rows.Scan(
			&l.Brand, &l.Model, &l.Platform, &l.RawPrice,
			&l.City, &l.RawRating, &l.RawDate,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (s *PostgresSource) Close() error {
	return s.db.Close()
}
