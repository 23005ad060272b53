package sqldb

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/jmoiron/sqlx"
)

type blacklistRepo struct {
	q sqlx.ExtContext
	d *Dialect
}

func (r *blacklistRepo) AddToken(ctx context.Context, t domain.BlacklistedToken) error {
	_, err := r.q.ExecContext(ctx,
		r.q.Rebind(`INSERT INTO blacklisted_tokens (token, user_id, expires_at, blacklisted_at)
			VALUES (?, ?, ?, ?)`),
		t.Token, t.UserID, dbTime(t.ExpiresAt), dbTime(t.BlacklistedAt))
	return r.d.mapUnique(err)
}

func (r *blacklistRepo) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	var n int
	err := sqlx.GetContext(ctx, r.q, &n,
		r.q.Rebind(`SELECT COUNT(*) FROM blacklisted_tokens WHERE token = ?`), token)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *blacklistRepo) DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	return affected(r.q.ExecContext(ctx,
		r.q.Rebind(`DELETE FROM blacklisted_tokens WHERE expires_at < ?`), dbTime(now)))
}
