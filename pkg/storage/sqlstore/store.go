// Package sqlstore provides the SQL-backed document store for SQLite and PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nainya/docstore/pkg/storage"
	"github.com/nainya/docstore/pkg/storage/sqlstore/migrations"
)

// Store persists document versions, active tags and tag events in a SQL database.
type Store struct {
	db       *sql.DB
	dialect  dialect
	observer storage.Observer
}

var _ storage.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithObserver reports the duration and outcome of every store operation.
func WithObserver(o storage.Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observer = o
		}
	}
}

// Open opens the database for driver ("sqlite" or "postgres") and applies embedded migrations.
func Open(ctx context.Context, driver, location string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("storage location is required")
	}
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	if err := d.prepare(location); err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(d.sqlDriver, d.dsn(location))
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", d.name, err)
	}
	if d.name == DriverSQLite {
		// One writer connection; concurrent requests queue on the pool instead of SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s db: %w", d.name, err)
	}
	if err := applyMigrations(ctx, sqlDB, d, migrations.FS, d.migrations); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := &Store{db: sqlDB, dialect: d, observer: storage.NopObserver{}}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Driver returns the normalized driver name.
func (s *Store) Driver() string {
	return s.dialect.name
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	var err error
	defer s.track("ping", &err)()
	err = s.db.PingContext(ctx)
	return err
}

// WithTx runs fn inside a transaction. The transaction commits when fn returns nil
// and rolls back otherwise, including on context cancellation.
func (s *Store) WithTx(ctx context.Context, fn func(tx storage.Tx) error) (err error) {
	defer s.track("tx", &err)()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err = fn(&txStore{q: sqlTx, dialect: s.dialect}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err = sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// txStore implements storage.Tx on an open transaction.
type txStore struct {
	q       queryer
	dialect dialect
}

var _ storage.Tx = (*txStore)(nil)

func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

// track reports op to the observer when the returned func runs. Missing rows are not failures.
func (s *Store) track(op string, errp *error) func() {
	start := time.Now()
	return func() {
		err := *errp
		if errors.Is(err, storage.ErrNotFound) {
			err = nil
		}
		s.observer.ObserveQuery(op, time.Since(start), err)
	}
}
