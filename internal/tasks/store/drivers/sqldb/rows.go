package sqldb

import (
	"database/sql"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
)

type userRow struct {
	ID           int64          `db:"id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	MFASecret    sql.NullString `db:"mfa_secret"`
	MFAEnabledAt sql.NullTime   `db:"mfa_enabled_at"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r userRow) domain() domain.User {
	u := domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UTC(),
	}
	if r.MFASecret.Valid {
		secret := r.MFASecret.String
		u.MFASecret = &secret
	}
	if r.MFAEnabledAt.Valid {
		at := r.MFAEnabledAt.Time.UTC()
		u.MFAEnabledAt = &at
	}
	return u
}

type taskRow struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Deadline  time.Time `db:"deadline"`
	IsDone    bool      `db:"is_done"`
	CreatedAt time.Time `db:"created_at"`
	UserID    int64     `db:"user_id"`
}

func (r taskRow) domain() domain.Task {
	return domain.Task{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Deadline:  r.Deadline.UTC(),
		IsDone:    r.IsDone,
		CreatedAt: r.CreatedAt.UTC(),
		UserID:    r.UserID,
	}
}

type refreshTokenRow struct {
	ID        int64     `db:"id"`
	Token     string    `db:"token"`
	UserID    int64     `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	IsRevoked bool      `db:"is_revoked"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r refreshTokenRow) domain() domain.RefreshToken {
	return domain.RefreshToken{
		ID:        r.ID,
		Token:     r.Token,
		UserID:    r.UserID,
		ExpiresAt: r.ExpiresAt.UTC(),
		Revoked:   r.IsRevoked,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}
