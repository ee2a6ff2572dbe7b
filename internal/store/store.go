// Package store provides the SQLite-backed subscription table.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ibskk/subscription-tracker/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

var (
	// ErrNotFound is returned when an operation targets a name that is
	// not in the store. Callers treat it as a notice, never as fatal.
	ErrNotFound = errors.New("subscription not found")

	// ErrNameTaken is returned by Rename when the new name already exists.
	ErrNameTaken = errors.New("subscription name already exists")
)

// Store provides durable CRUD over the subscription table.
type Store struct {
	db *sql.DB
}

// Open opens or creates the subscription database at the given path and
// ensures the schema exists. Safe to call on every process start.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert inserts sub or fully replaces the existing record sharing its name.
// The record is validated before it touches the table, so free-form cycle or
// category values cannot enter the store through any path.
func (s *Store) Upsert(sub model.Subscription) error {
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("invalid subscription: %w", err)
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO subscriptions
		(name, amount, billing_cycle, category, next_payment)
		VALUES (?, ?, ?, ?, ?)`,
		sub.Name, sub.Amount, string(sub.Cycle), string(sub.Category),
		sub.NextPayment.Format(model.DateLayout),
	)
	if err != nil {
		return fmt.Errorf("upserting %q: %w", sub.Name, err)
	}
	return nil
}

// ListAll returns every subscription. No ordering is guaranteed; callers
// that need an order sort themselves.
func (s *Store) ListAll() ([]model.Subscription, error) {
	rows, err := s.db.Query(`SELECT name, amount, billing_cycle, category, next_payment
		FROM subscriptions`)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subs []model.Subscription
	for rows.Next() {
		var sub model.Subscription
		var cycle, category, next string
		if err := rows.Scan(&sub.Name, &sub.Amount, &cycle, &category, &next); err != nil {
			return nil, fmt.Errorf("scanning subscription: %w", err)
		}

		if sub.Cycle, err = model.ParseCycle(cycle); err != nil {
			return nil, fmt.Errorf("row %q: %w", sub.Name, err)
		}
		if sub.Category, err = model.ParseCategory(category); err != nil {
			return nil, fmt.Errorf("row %q: %w", sub.Name, err)
		}
		if sub.NextPayment, err = time.Parse(model.DateLayout, next); err != nil {
			return nil, fmt.Errorf("row %q: parsing next payment: %w", sub.Name, err)
		}

		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// Update replaces all non-key fields of the record identified by sub.Name.
// Returns ErrNotFound if no such record exists.
func (s *Store) Update(sub model.Subscription) error {
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("invalid subscription: %w", err)
	}

	res, err := s.db.Exec(`UPDATE subscriptions
		SET amount = ?, billing_cycle = ?, category = ?, next_payment = ?
		WHERE name = ?`,
		sub.Amount, string(sub.Cycle), string(sub.Category),
		sub.NextPayment.Format(model.DateLayout), sub.Name,
	)
	if err != nil {
		return fmt.Errorf("updating %q: %w", sub.Name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating %q: %w", sub.Name, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Rename changes the primary key from oldName to newName. A rename onto an
// existing name is rejected with ErrNameTaken rather than silently
// overwriting the other record.
func (s *Store) Rename(oldName, newName string) error {
	if newName == "" {
		return model.ErrEmptyName
	}

	var taken int
	err := s.db.QueryRow("SELECT COUNT(*) FROM subscriptions WHERE name = ?", newName).Scan(&taken)
	if err != nil {
		return fmt.Errorf("renaming %q: %w", oldName, err)
	}
	if taken > 0 {
		return ErrNameTaken
	}

	res, err := s.db.Exec("UPDATE subscriptions SET name = ? WHERE name = ?", newName, oldName)
	if err != nil {
		return fmt.Errorf("renaming %q: %w", oldName, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("renaming %q: %w", oldName, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record if present. Deleting an absent name is a no-op.
func (s *Store) Delete(name string) error {
	if _, err := s.db.Exec("DELETE FROM subscriptions WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting %q: %w", name, err)
	}
	return nil
}

// Count returns the number of stored subscriptions.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM subscriptions").Scan(&count)
	return count, err
}
