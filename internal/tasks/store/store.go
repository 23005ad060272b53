package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and so that a transaction cannot be opened from inside another.
type Store interface {
	Users() Users
	Tasks() Tasks
	RefreshTokens() RefreshTokens
	Blacklist() Blacklist
	BackupCodes() BackupCodes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction. It commits when fn returns nil and
	// rolls back on every other exit, panics included. Only the repos of the
	// Tx handed to fn may be used inside it.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id int64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UsernameOrEmailTaken reports whether either value is already registered.
	UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error)

	// CreateUser inserts u and returns the database-assigned id. A duplicate
	// username or email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// UpdatePasswordHash is used to upgrade legacy hashes on login.
	UpdatePasswordHash(ctx context.Context, userID int64, hash string) error

	// UpdateMFASecret stores a pending TOTP secret without enabling it.
	UpdateMFASecret(ctx context.Context, userID int64, secret string) error
	EnableMFA(ctx context.Context, userID int64, at time.Time) error

	// DisableMFA clears both the secret and the enabled timestamp.
	DisableMFA(ctx context.Context, userID int64) error
}

type Tasks interface {
	// ListTasks returns the user's tasks ordered by id.
	ListTasks(ctx context.Context, userID int64) ([]domain.Task, error)

	// GetTask returns ErrNotFound when the task is absent or owned by
	// someone else.
	GetTask(ctx context.Context, userID, taskID int64) (domain.Task, error)

	CreateTask(ctx context.Context, t domain.Task) (int64, error)

	// UpdateTask writes every mutable field of t, matched on t.ID and
	// t.UserID. ErrNotFound when nothing matched.
	UpdateTask(ctx context.Context, t domain.Task) error

	DeleteTask(ctx context.Context, userID, taskID int64) error
}

type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) (int64, error)

	// GetRefreshToken looks a row up by exact token string.
	GetRefreshToken(ctx context.Context, token string) (domain.RefreshToken, error)

	// RotateRefreshToken overwrites row id with a new token and expiry, but
	// only while it still holds oldToken. ErrNotFound when another rotation
	// got there first.
	RotateRefreshToken(ctx context.Context, id int64, oldToken, newToken string, expiresAt time.Time) error

	// RevokeRefreshToken flips is_revoked. Unknown tokens are not an error.
	RevokeRefreshToken(ctx context.Context, token string) error

	// DeleteUserRefreshTokens ends every session of the user.
	DeleteUserRefreshTokens(ctx context.Context, userID int64) (int64, error)

	// DeleteExpiredRefreshTokens is housekeeping.
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

type Blacklist interface {
	// AddToken is append-only. Blacklisting the same token twice yields
	// ErrAlreadyExists.
	AddToken(ctx context.Context, t domain.BlacklistedToken) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)

	// DeleteExpiredTokens drops rows whose token would be rejected on
	// expiry anyway.
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

type BackupCodes interface {
	// CreateBackupCode stores a backup code hash for a user.
	CreateBackupCode(ctx context.Context, userID int64, codeHash string) error

	// VerifyBackupCode checks if a backup code hash exists for a user.
	VerifyBackupCode(ctx context.Context, userID int64, codeHash string) (bool, error)

	// DeleteBackupCode removes a specific backup code after use.
	DeleteBackupCode(ctx context.Context, userID int64, codeHash string) error

	DeleteAllBackupCodes(ctx context.Context, userID int64) error
	CountUserBackupCodes(ctx context.Context, userID int64) (int, error)
}
