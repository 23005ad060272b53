package tasks_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func TestRegisterTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	c := startService(t, testConfig(t))

	req := tasksdk.RegisterRequest{Username: "alice", Email: "a@x.com", Password: testPassword}
	_, err := c.Register(ctx, req)
	require.NoError(t, err)

	_, err = c.Register(ctx, req)
	requireAPIError(t, err, http.StatusBadRequest, tasksdk.ErrorCodeConflict)

	req.Password = "weak"
	req.Username = "bob"
	req.Email = "b@x.com"
	_, err = c.Register(ctx, req)
	requireAPIError(t, err, http.StatusUnprocessableEntity, tasksdk.ErrorCodeValidation)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	c := startService(t, testConfig(t))
	registerAndLogin(t, c, "alice")

	_, err := c.Login(ctx, "alice", "Wrong123!", "")
	requireAPIError(t, err, http.StatusBadRequest, tasksdk.ErrorCodeInvalidCredentials)

	_, err = c.Login(ctx, "nobody", testPassword, "")
	requireAPIError(t, err, http.StatusBadRequest, tasksdk.ErrorCodeInvalidCredentials)
}

func TestRefreshRotation(t *testing.T) {
	ctx := context.Background()
	c := startService(t, testConfig(t))
	registerAndLogin(t, c, "alice")

	first, err := c.Login(ctx, "alice", testPassword, "")
	require.NoError(t, err)

	second, err := c.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = c.Refresh(ctx, first.RefreshToken)
	requireAPIError(t, err, http.StatusUnauthorized, tasksdk.ErrorCodeUnauthenticated)

	me, err := c.NewSessionFromTokens(second.AccessToken, second.RefreshToken).Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", me.Username)
}

func TestRevokedRefreshTokenIsRejected(t *testing.T) {
	ctx := context.Background()
	c := startService(t, testConfig(t))
	s := registerAndLogin(t, c, "alice")

	refresh := s.RefreshToken()
	require.NoError(t, s.Revoke(ctx))

	_, err := c.Refresh(ctx, refresh)
	requireAPIError(t, err, http.StatusUnauthorized, tasksdk.ErrorCodeUnauthenticated)

	// revoking is idempotent and does not reveal whether a token existed
	require.NoError(t, c.RevokeToken(ctx, refresh))
	require.NoError(t, c.RevokeToken(ctx, "never-issued"))
}

func TestLogoutEndsEverySession(t *testing.T) {
	ctx := context.Background()
	c := startService(t, testConfig(t))
	laptop := registerAndLogin(t, c, "alice")

	phone, err := c.Authenticate(ctx, "alice", testPassword, "")
	require.NoError(t, err)

	access := laptop.AccessToken()
	require.NoError(t, laptop.Logout(ctx))

	_, err = c.NewSessionFromTokens(access, "").ListTasks(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, tasksdk.ErrorCodeUnauthenticated)

	// the other device keeps its access token until expiry but cannot refresh
	_, err = c.Refresh(ctx, phone.RefreshToken())
	requireAPIError(t, err, http.StatusUnauthorized, tasksdk.ErrorCodeUnauthenticated)
}

func TestExpiredAccessTokenIsRefreshed(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.AccessTokenTTL = 5 * time.Second
	c := startService(t, cfg)
	s := registerAndLogin(t, c, "alice")

	refresh := s.RefreshToken()
	_, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.NotEqual(t, refresh, s.RefreshToken(), "token inside the refresh window is rotated before use")
}

func TestMFALogin(t *testing.T) {
	ctx := context.Background()
	c := startService(t, testConfig(t))
	s := registerAndLogin(t, c, "alice")

	enroll, err := s.EnrollTOTP(ctx)
	require.NoError(t, err)
	require.Equal(t, "taskboard-e2e", enroll.Issuer)

	_, err = s.VerifyTOTP(ctx, "000000")
	requireAPIError(t, err, http.StatusBadRequest, tasksdk.ErrorCodeBadRequest)

	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	backup, err := s.VerifyTOTP(ctx, code)
	require.NoError(t, err)
	require.NotEmpty(t, backup.BackupCodes)

	_, err = c.Login(ctx, "alice", testPassword, "")
	require.True(t, tasksdk.IsOTPRequired(err), "got %v", err)

	_, err = c.Login(ctx, "alice", testPassword, code)
	require.NoError(t, err)

	t.Run("backup code is single use", func(t *testing.T) {
		_, err := c.Login(ctx, "alice", testPassword, backup.BackupCodes[0])
		require.NoError(t, err)

		_, err = c.Login(ctx, "alice", testPassword, backup.BackupCodes[0])
		require.True(t, tasksdk.IsOTPRequired(err), "got %v", err)
	})

	t.Run("disable", func(t *testing.T) {
		code, err := totp.GenerateCode(enroll.Secret, time.Now())
		require.NoError(t, err)
		require.NoError(t, s.DisableTOTP(ctx, code))

		me, err := s.Me(ctx)
		require.NoError(t, err)
		require.False(t, me.MFAEnabled)

		_, err = c.Login(ctx, "alice", testPassword, "")
		require.NoError(t, err)
	})
}
