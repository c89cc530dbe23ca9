package customers

//go:generate mockgen -source store.go -destination store_mock.go -package customers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists customers.
type Store interface {
	// Add inserts c. A duplicate ID surfaces as the driver's constraint error.
	Add(ctx context.Context, c Customer) error
	// SearchByCompany returns customers whose company name contains part.
	SearchByCompany(ctx context.Context, part string) ([]Customer, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	customer_id   TEXT PRIMARY KEY,
	company_name  TEXT NOT NULL,
	contact_name  TEXT NOT NULL DEFAULT '',
	contact_title TEXT NOT NULL DEFAULT ''
)`

var seed = Customer{
	ID:           "ALFKI",
	CompanyName:  "Alfreds Futterkiste",
	ContactName:  "Maria Anders",
	ContactTitle: "Sales Representative",
}

// SQLiteStore keeps customers in a sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens dsn, creates the table and seeds the first customer.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	_, err = db.ExecContext(ctx,
		`INSERT OR IGNORE INTO customers (customer_id, company_name, contact_name, contact_title) VALUES (?, ?, ?, ?)`,
		seed.ID, seed.CompanyName, seed.ContactName, seed.ContactTitle)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed customers: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Add(ctx context.Context, c Customer) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO customers (customer_id, company_name, contact_name, contact_title) VALUES (?, ?, ?, ?)`,
		c.ID, c.CompanyName, c.ContactName, c.ContactTitle)
	return err
}

func (s *SQLiteStore) SearchByCompany(ctx context.Context, part string) ([]Customer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT customer_id, company_name, contact_name, contact_title FROM customers
		 WHERE company_name LIKE ? ESCAPE '\' ORDER BY customer_id`,
		"%"+escapeLike(part)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := []Customer{}
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.ContactName, &c.ContactTitle); err != nil {
			return nil, err
		}
		found = append(found, c)
	}
	return found, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
