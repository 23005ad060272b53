package service

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func TestMFALifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.register(t, "alice")

	_, err := env.MFA.VerifyTOTP(ctx, userID, "123456")
	require.ErrorIs(t, err, ErrMFANotEnrolled)

	require.ErrorIs(t, env.MFA.DisableTOTP(ctx, userID, "123456"), ErrMFANotEnabled)

	enroll, err := env.MFA.EnrollTOTP(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, enroll.Secret)
	require.Contains(t, enroll.URL, "otpauth://totp/")
	require.Equal(t, "alice", enroll.Account)

	u, err := env.Users.GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.False(t, u.MFAEnabled(), "enrolling alone does not enable MFA")

	_, err = env.MFA.VerifyTOTP(ctx, userID, "not-a-code")
	require.ErrorIs(t, err, ErrInvalidTOTPCode)

	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	codes, err := env.MFA.VerifyTOTP(ctx, userID, code)
	require.NoError(t, err)
	require.Len(t, codes, backupCodeCount)

	n, err := env.Store.BackupCodes().CountUserBackupCodes(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, backupCodeCount, n)

	_, err = env.MFA.EnrollTOTP(ctx, userID)
	require.ErrorIs(t, err, ErrMFAAlreadyEnabled)

	require.ErrorIs(t, env.MFA.DisableTOTP(ctx, userID, "000000x"), ErrInvalidTOTPCode)

	code, err = totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, env.MFA.DisableTOTP(ctx, userID, code))

	u, err = env.Users.GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.False(t, u.MFAEnabled())

	n, err = env.Store.BackupCodes().CountUserBackupCodes(ctx, userID)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
	require.NoError(t, err, "password alone works again")
}
