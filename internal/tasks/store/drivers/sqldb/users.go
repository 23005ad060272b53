package sqldb

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/jmoiron/sqlx"
)

const userColumns = `id, username, email, password_hash, mfa_secret, mfa_enabled_at, created_at`

type usersRepo struct {
	q sqlx.ExtContext
	d *Dialect
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.q, &row,
		r.q.Rebind(`SELECT `+userColumns+` FROM users WHERE id = ?`), id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return row.domain(), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.q, &row,
		r.q.Rebind(`SELECT `+userColumns+` FROM users WHERE username = ?`), username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return row.domain(), nil
}

func (r *usersRepo) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error) {
	var n int
	err := sqlx.GetContext(ctx, r.q, &n,
		r.q.Rebind(`SELECT COUNT(*) FROM users WHERE username = ? OR email = ?`), username, email)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, r.q, &id,
		r.q.Rebind(`INSERT INTO users (username, email, password_hash, created_at)
			VALUES (?, ?, ?, ?) RETURNING id`),
		u.Username, u.Email, u.PasswordHash, dbTime(u.CreatedAt))
	if err != nil {
		return 0, r.d.mapUnique(err)
	}
	return id, nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID int64, hash string) error {
	return expectOne(r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE users SET password_hash = ? WHERE id = ?`), hash, userID))
}

func (r *usersRepo) UpdateMFASecret(ctx context.Context, userID int64, secret string) error {
	return expectOne(r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE users SET mfa_secret = ?, mfa_enabled_at = NULL WHERE id = ?`), secret, userID))
}

func (r *usersRepo) EnableMFA(ctx context.Context, userID int64, at time.Time) error {
	return expectOne(r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE users SET mfa_enabled_at = ? WHERE id = ? AND mfa_secret IS NOT NULL`),
		dbTime(at), userID))
}

func (r *usersRepo) DisableMFA(ctx context.Context, userID int64) error {
	return expectOne(r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE users SET mfa_secret = NULL, mfa_enabled_at = NULL WHERE id = ?`), userID))
}
