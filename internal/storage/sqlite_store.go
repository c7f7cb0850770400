// Package storage keeps observed property prices in SQLite so they can be
// merged into the market tables as exact-match price samples.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/iwvelando/housing-budget/internal/reference"
)

// SQLiteStore is a price-sample store backed by a SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS price_samples (
  city TEXT NOT NULL COLLATE NOCASE,
  district TEXT NOT NULL COLLATE NOCASE,
  property_type TEXT NOT NULL,
  price REAL NOT NULL CHECK (price > 0),
  recorded_at TEXT NOT NULL,
  PRIMARY KEY (city, district, property_type)
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_price_samples_city ON price_samples(city);`); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) CountSamples() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM price_samples`).Scan(&n)
	return n, err
}

// UpsertSamples records samples, replacing the price of an existing
// (city, district, type) entry.
func (s *SQLiteStore) UpsertSamples(samples []reference.PriceSample) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO price_samples (city, district, property_type, price, recorded_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (city, district, property_type)
DO UPDATE SET price = excluded.price, recorded_at = excluded.recorded_at
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, sample := range samples {
		if strings.TrimSpace(sample.City) == "" || strings.TrimSpace(sample.District) == "" {
			return fmt.Errorf("price sample needs a city and district: %+v", sample)
		}
		if _, ok := reference.ParsePropertyType(string(sample.PropertyType)); !ok {
			return fmt.Errorf("price sample for %s/%s: unknown property type %q", sample.City, sample.District, sample.PropertyType)
		}
		if _, err := stmt.Exec(sample.City, sample.District, string(sample.PropertyType), sample.Price, now); err != nil {
			return fmt.Errorf("store price sample %s/%s/%s: %w", sample.City, sample.District, sample.PropertyType, err)
		}
	}
	return tx.Commit()
}

// DeleteSample removes one sample and reports whether it existed.
func (s *SQLiteStore) DeleteSample(city, district string, t reference.PropertyType) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM price_samples WHERE city = ? AND district = ? AND property_type = ?`,
		city, district, string(t))
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

// ListSamples returns every sample ordered by city, district and type.
func (s *SQLiteStore) ListSamples() ([]reference.PriceSample, error) {
	return s.query(`
SELECT city, district, property_type, price FROM price_samples
ORDER BY city, district, property_type
`)
}

// SamplesForCity returns the samples recorded for one city.
func (s *SQLiteStore) SamplesForCity(city string) ([]reference.PriceSample, error) {
	return s.query(`
SELECT city, district, property_type, price FROM price_samples
WHERE city = ?
ORDER BY district, property_type
`, city)
}

func (s *SQLiteStore) query(q string, args ...interface{}) ([]reference.PriceSample, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reference.PriceSample
	for rows.Next() {
		var sample reference.PriceSample
		var propertyType string
		if err := rows.Scan(&sample.City, &sample.District, &propertyType, &sample.Price); err != nil {
			return nil, err
		}
		sample.PropertyType = reference.PropertyType(propertyType)
		out = append(out, sample)
	}
	return out, rows.Err()
}

// MergeInto returns catalog with every stored sample added.
func (s *SQLiteStore) MergeInto(catalog reference.Catalog) (reference.Catalog, error) {
	samples, err := s.ListSamples()
	if err != nil {
		return catalog, fmt.Errorf("list price samples: %w", err)
	}
	return catalog.WithSamples(samples), nil
}
