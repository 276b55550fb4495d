package sqlstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	// database/sql driver "pgx"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type dialect struct {
	name       string
	sqlDriver  string
	migrations string // directory inside migrations.FS
}

var (
	sqliteDialect   = dialect{name: DriverSQLite, sqlDriver: "sqlite", migrations: "sqlite"}
	postgresDialect = dialect{name: DriverPostgres, sqlDriver: "pgx", migrations: "postgres"}
)

func dialectFor(driver string) (dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverSQLite, "sqlite3":
		return sqliteDialect, nil
	case DriverPostgres, "postgresql", "pgx":
		return postgresDialect, nil
	default:
		return dialect{}, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// NormalizeDriver maps a driver name or alias (sqlite3, postgresql, pgx) onto
// DriverSQLite or DriverPostgres.
func NormalizeDriver(driver string) (string, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return "", err
	}
	return d.name, nil
}

// prepare creates the parent directory of a SQLite database file.
func (d dialect) prepare(location string) error {
	if d.name != DriverSQLite {
		return nil
	}
	path, _, _ := strings.Cut(location, "?")
	path = strings.TrimPrefix(path, "file:")
	if path == "" || strings.HasPrefix(path, ":memory:") {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory %s: %w", dir, err)
	}
	return nil
}

// dsn turns the configured location into a driver DSN.
func (d dialect) dsn(location string) string {
	if d.name != DriverSQLite {
		return location
	}
	if strings.Contains(location, "?") {
		return location
	}
	return filepath.Clean(location) +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_txlock=immediate"
}

// rebind rewrites ? placeholders into $n for PostgreSQL.
func (d dialect) rebind(query string) string {
	if d.name != DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 16)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// isUniqueViolation reports primary key and unique constraint failures for both backends.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
