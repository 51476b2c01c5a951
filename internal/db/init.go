// Package db opens the contacts database and makes sure its schema exists.
package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect identifies the SQL flavour behind a *sql.DB.
type Dialect string

const (
	// SQLite is the embedded default.
	SQLite Dialect = "sqlite"
	// Postgres is selected by postgres:// and postgresql:// URLs.
	Postgres Dialect = "postgres"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS contacts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS contacts (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
);
`

// ParseDSN maps a configured database location to a driver dialect and
// the data source name that driver expects.
//
//	contacts.db                 → sqlite, file:contacts.db?...
//	sqlite:///var/lib/nexus.db  → sqlite, file:/var/lib/nexus.db?...
//	postgres://user@host/db     → postgres, unchanged
func ParseDSN(location string) (Dialect, string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", "", fmt.Errorf("database location is required")
	}

	if u, err := url.Parse(location); err == nil {
		switch u.Scheme {
		case "postgres", "postgresql":
			return Postgres, location, nil
		case "sqlite":
			location = strings.TrimPrefix(location, "sqlite://")
			if strings.HasPrefix(location, "//") {
				location = location[1:]
			}
		}
	}

	path := filepath.Clean(location)
	return SQLite, "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
}

// Open connects to the database at location and creates the contacts table
// if it does not exist yet.
func Open(location string) (*sql.DB, Dialect, error) {
	dialect, dsn, err := ParseDSN(location)
	if err != nil {
		return nil, "", err
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", dialect, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", dialect, err)
	}

	schema := sqliteSchema
	if dialect == Postgres {
		schema = postgresSchema
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("create schema: %w", err)
	}

	return db, dialect, nil
}

// Rebind rewrites '?' placeholders into the form the dialect expects.
func Rebind(dialect Dialect, query string) string {
	if dialect != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
