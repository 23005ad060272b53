// Package sqldb holds the repository code shared by the SQL drivers. Queries
// are written with ? placeholders and rebound for the driver in use, so the
// sqlite and postgres packages only supply a Dialect and their migrations.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/jmoiron/sqlx"
)

// Dialect is the driver-specific part of a Store.
type Dialect struct {
	Name string

	// Migrate applies the driver's embedded migrations.
	Migrate func(db *sql.DB) error

	// IsUniqueViolation recognises the driver's unique constraint error.
	IsUniqueViolation func(err error) bool
}

type Store struct {
	db *sqlx.DB
	d  *Dialect
}

var _ store.Store = (*Store)(nil)

func New(db *sqlx.DB, d Dialect) *Store {
	return &Store{db: db, d: &d}
}

// DB exposes the pool for tests and diagnostics.
func (s *Store) DB() *sqlx.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ApplyMigrations() error {
	if s.d.Migrate == nil {
		return nil
	}
	return s.d.Migrate(s.db.DB)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, d: s.d}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback after a successful commit is a no-op returning ErrTxDone.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users                 { return &usersRepo{q: s.db, d: s.d} }
func (s *Store) Tasks() store.Tasks                 { return &tasksRepo{q: s.db} }
func (s *Store) RefreshTokens() store.RefreshTokens { return &refreshTokensRepo{q: s.db, d: s.d} }
func (s *Store) Blacklist() store.Blacklist         { return &blacklistRepo{q: s.db, d: s.d} }
func (s *Store) BackupCodes() store.BackupCodes     { return &backupCodesRepo{q: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func (d *Dialect) mapUnique(err error) error {
	if err != nil && d.IsUniqueViolation != nil && d.IsUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

// expectOne turns a zero-row update or delete into ErrNotFound.
func expectOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func affected(res sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// dbTime normalises timestamps before they are written. SQLite compares
// them as text, so they must share one zone and one precision.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
