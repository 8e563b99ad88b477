// Package sqlstore implements the relational store for collections, tasks and
// subtasks on top of database/sql. It speaks Postgres (through pgx) and SQLite
// (through modernc.org/sqlite); every operation is a single parameterized statement
// and cascading deletes are left to the schema's referential actions.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"
)

// Supported driver names, as registered with database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Store implements services.Store against a shared *sql.DB pool.
type Store struct {
	db     *sql.DB
	driver string
}

// New wraps an open pool. driver must be DriverPostgres or DriverSQLite.
func New(db *sql.DB, driver string) (*Store, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
	return &Store{db: db, driver: driver}, nil
}

// Migrate creates the tables and indexes if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	ddl := pgSchemaDDL
	if s.driver == DriverSQLite {
		ddl = sqliteSchemaDDL
	}
	for _, stmt := range append(ddl, indexDDL...) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Now returns the store's clock. Used as a connectivity probe at startup.
func (s *Store) Now(ctx context.Context) (time.Time, error) {
	q := `SELECT NOW()`
	if s.driver == DriverSQLite {
		q = `SELECT strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`
	}
	var now time.Time
	if err := s.db.QueryRowContext(ctx, q).Scan(timeDest(&now)); err != nil {
		return time.Time{}, err
	}
	return now, nil
}

// Ping verifies the pool can reach the database.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying pool.
func (s *Store) Close(context.Context) error {
	return s.db.Close()
}

var pgPlaceholder = regexp.MustCompile(`\$(\d+)`)

// bind rewrites Postgres-style $N placeholders to SQLite's ?N form.
func (s *Store) bind(q string) string {
	if s.driver == DriverSQLite {
		return pgPlaceholder.ReplaceAllString(q, "?$1")
	}
	return q
}

// sqliteTimeLayout is fixed width so lexical and chronological order agree.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// timeArg converts t into the value the driver stores in a date column.
func (s *Store) timeArg(t time.Time) any {
	if s.driver == DriverSQLite {
		return t.UTC().Format(sqliteTimeLayout)
	}
	return t.UTC()
}
