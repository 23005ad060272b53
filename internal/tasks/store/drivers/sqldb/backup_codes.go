package sqldb

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type backupCodesRepo struct {
	q sqlx.ExtContext
}

func (r *backupCodesRepo) CreateBackupCode(ctx context.Context, userID int64, codeHash string) error {
	_, err := r.q.ExecContext(ctx,
		r.q.Rebind(`INSERT INTO backup_codes (user_id, code_hash) VALUES (?, ?)`), userID, codeHash)
	return err
}

func (r *backupCodesRepo) VerifyBackupCode(ctx context.Context, userID int64, codeHash string) (bool, error) {
	var n int
	err := sqlx.GetContext(ctx, r.q, &n,
		r.q.Rebind(`SELECT COUNT(*) FROM backup_codes WHERE user_id = ? AND code_hash = ?`), userID, codeHash)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *backupCodesRepo) DeleteBackupCode(ctx context.Context, userID int64, codeHash string) error {
	return expectOne(r.q.ExecContext(ctx,
		r.q.Rebind(`DELETE FROM backup_codes WHERE user_id = ? AND code_hash = ?`), userID, codeHash))
}

func (r *backupCodesRepo) DeleteAllBackupCodes(ctx context.Context, userID int64) error {
	_, err := r.q.ExecContext(ctx,
		r.q.Rebind(`DELETE FROM backup_codes WHERE user_id = ?`), userID)
	return err
}

func (r *backupCodesRepo) CountUserBackupCodes(ctx context.Context, userID int64) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, r.q, &n,
		r.q.Rebind(`SELECT COUNT(*) FROM backup_codes WHERE user_id = ?`), userID)
	return n, err
}
