package sqldb

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/jmoiron/sqlx"
)

type refreshTokensRepo struct {
	q sqlx.ExtContext
	d *Dialect
}

func (r *refreshTokensRepo) CreateRefreshToken(ctx context.Context, t domain.RefreshToken) (int64, error) {
	now := dbTime(t.CreatedAt)
	var id int64
	err := sqlx.GetContext(ctx, r.q, &id,
		r.q.Rebind(`INSERT INTO refresh_tokens (token, user_id, expires_at, is_revoked, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		t.Token, t.UserID, dbTime(t.ExpiresAt), t.Revoked, now, now)
	if err != nil {
		return 0, r.d.mapUnique(err)
	}
	return id, nil
}

func (r *refreshTokensRepo) GetRefreshToken(ctx context.Context, token string) (domain.RefreshToken, error) {
	var row refreshTokenRow
	err := sqlx.GetContext(ctx, r.q, &row,
		r.q.Rebind(`SELECT id, token, user_id, expires_at, is_revoked, created_at, updated_at
			FROM refresh_tokens WHERE token = ?`), token)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	return row.domain(), nil
}

func (r *refreshTokensRepo) RotateRefreshToken(
	ctx context.Context,
	id int64,
	oldToken, newToken string,
	expiresAt time.Time,
) error {
	res, err := r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE refresh_tokens SET token = ?, expires_at = ?, updated_at = ?
			WHERE id = ? AND token = ?`),
		newToken, dbTime(expiresAt), dbTime(time.Now()), id, oldToken)
	return expectOne(res, r.d.mapUnique(err))
}

func (r *refreshTokensRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	_, err := r.q.ExecContext(ctx,
		r.q.Rebind(`UPDATE refresh_tokens SET is_revoked = ?, updated_at = ? WHERE token = ?`),
		true, dbTime(time.Now()), token)
	return err
}

func (r *refreshTokensRepo) DeleteUserRefreshTokens(ctx context.Context, userID int64) (int64, error) {
	return affected(r.q.ExecContext(ctx,
		r.q.Rebind(`DELETE FROM refresh_tokens WHERE user_id = ?`), userID))
}

func (r *refreshTokensRepo) DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	return affected(r.q.ExecContext(ctx,
		r.q.Rebind(`DELETE FROM refresh_tokens WHERE expires_at < ?`), dbTime(now)))
}
