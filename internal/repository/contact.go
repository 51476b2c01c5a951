// Package repository provides persistence for contact submissions.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/atinyakov/nexus/internal/db"
	"github.com/atinyakov/nexus/internal/models"
)

// ErrNotConfigured is returned when the repository has no open database,
// which happens when the database could not be opened at startup.
var ErrNotConfigured = errors.New("storage is not configured")

// ContactRepository implements contact persistence on top of database/sql.
type ContactRepository struct {
	// DB is the database handle; nil means storage is unavailable.
	DB *sql.DB
	// Dialect selects placeholder style and id retrieval.
	Dialect db.Dialect
}

// NewContactRepository creates a ContactRepository. db may be nil.
func NewContactRepository(sqlDB *sql.DB, dialect db.Dialect) *ContactRepository {
	return &ContactRepository{DB: sqlDB, Dialect: dialect}
}

// InsertContact stores one submission and returns its id.
// created_at is filled in by the database default.
func (r *ContactRepository) InsertContact(ctx context.Context, name, email, message string) (int64, error) {
	if r == nil || r.DB == nil {
		return 0, ErrNotConfigured
	}

	query := `INSERT INTO contacts (name, email, message) VALUES (?, ?, ?)`
	if r.Dialect == db.Postgres {
		var id int64
		err := r.DB.QueryRowContext(ctx, db.Rebind(r.Dialect, query+` RETURNING id`), name, email, message).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("insert contact: %w", err)
		}
		return id, nil
	}

	res, err := r.DB.ExecContext(ctx, query, name, email, message)
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// ListContacts returns up to limit submissions, most recent first.
func (r *ContactRepository) ListContacts(ctx context.Context, limit int) ([]models.Contact, error) {
	if r == nil || r.DB == nil {
		return nil, ErrNotConfigured
	}

	rows, err := r.DB.QueryContext(ctx, db.Rebind(r.Dialect, `
		SELECT id, name, email, message, created_at FROM contacts
		ORDER BY created_at DESC, id DESC LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		var created timestamp
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &created); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		c.CreatedAt = created.Time
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Close releases the database handle.
func (r *ContactRepository) Close() error {
	if r == nil || r.DB == nil {
		return nil
	}
	return r.DB.Close()
}

// timestamp scans created_at whether the driver hands back a time.Time
// or SQLite's CURRENT_TIMESTAMP text.
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	}
	return fmt.Errorf("unsupported created_at type %T", src)
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("parse created_at %q", s)
}
