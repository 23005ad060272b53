package sqlite

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/sqldb"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const driverName = "sqlite"

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// NewStore opens the database at dsn (a file path, "file:" URI or
// ":memory:"). Foreign keys are enforced and timestamps are written in
// SQLite's own text format.
func NewStore(dsn string) (*sqldb.Store, error) {
	db, err := sqlx.Open(driverName, withDefaults(dsn))
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer. One connection also keeps an in-memory
	// database alive for the life of the pool.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return sqldb.New(db, Dialect()), nil
}

// Dialect describes SQLite to the shared repositories.
func Dialect() sqldb.Dialect {
	return sqldb.Dialect{
		Name:              driverName,
		Migrate:           migrateUp,
		IsUniqueViolation: isUniqueViolation,
	}
}

func withDefaults(dsn string) string {
	if strings.Contains(dsn, "_time_format=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_time_format=sqlite"
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// Extended result codes disabled.
		return strings.Contains(se.Error(), "UNIQUE constraint failed")
	}
	return false
}
