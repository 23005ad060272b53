package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginIssuesPersistedPair(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.register(t, "alice")

	pair, err := env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
	require.NoError(t, err)
	require.Equal(t, "bearer", pair.TokenType)

	access, err := env.HMAC.Verify(pair.AccessToken)
	require.NoError(t, err)
	sub, err := access.UserID()
	require.NoError(t, err)
	require.Equal(t, userID, sub)
	require.False(t, access.IsRefresh())

	refresh, err := env.HMAC.Verify(pair.RefreshToken)
	require.NoError(t, err)
	require.True(t, refresh.IsRefresh())

	row, err := env.Store.RefreshTokens().GetRefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, userID, row.UserID)
	require.True(t, refresh.Expiry().Equal(row.ExpiresAt), "row expiry %v, claim %v", row.ExpiresAt, refresh.Expiry())
	require.False(t, row.Revoked)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.register(t, "alice")

	_, err := env.Sessions.Login(ctx, "alice", "Wrong1!x", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.Sessions.Login(ctx, "mallory", "Abcdef1!", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, "Incorrect username, email or password", Detail(err))
}

func TestLoginUpgradesLegacyBcryptHash(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	legacy, err := bcrypt.GenerateFromPassword([]byte("Abcdef1!"), bcrypt.MinCost)
	require.NoError(t, err)
	userID, err := env.Store.Users().CreateUser(ctx, domain.User{
		Username: "old", Email: "old@x.com", PasswordHash: string(legacy), CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = env.Sessions.Login(ctx, "old", "Abcdef1!", "")
	require.NoError(t, err)

	u, err := env.Store.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.False(t, cryptox.NeedsRehash(u.PasswordHash))
	require.NoError(t, cryptox.VerifyPassword("Abcdef1!", u.PasswordHash))

	_, err = env.Sessions.Login(ctx, "old", "Abcdef1!", "")
	require.NoError(t, err, "upgraded hash still logs in")
}

func TestRefreshRotation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.register(t, "alice")

	first, err := env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
	require.NoError(t, err)

	second, err := env.Sessions.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)
	require.NotEqual(t, first.AccessToken, second.AccessToken)

	_, err = env.Sessions.Refresh(ctx, first.RefreshToken)
	require.ErrorIs(t, err, ErrUnauthenticated, "old refresh token must be dead after rotation")

	third, err := env.Sessions.Refresh(ctx, second.RefreshToken)
	require.NoError(t, err)

	_, err = env.Tokens.Authenticate(ctx, third.AccessToken)
	require.NoError(t, err)
}

func TestRefreshRejections(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.register(t, "alice")

	t.Run("garbage", func(t *testing.T) {
		_, err := env.Sessions.Refresh(ctx, "not-a-jwt")
		require.ErrorIs(t, err, ErrUnauthenticated)
		require.Equal(t, "Invalid refresh token", Detail(err))
	})

	t.Run("access token", func(t *testing.T) {
		pair, err := env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
		require.NoError(t, err)

		_, err = env.Sessions.Refresh(ctx, pair.AccessToken)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("signed but never stored", func(t *testing.T) {
		tok, _, err := env.Tokens.IssueRefresh(userID, time.Now())
		require.NoError(t, err)

		_, err = env.Sessions.Refresh(ctx, tok)
		require.ErrorIs(t, err, ErrUnauthenticated)
		require.Equal(t, "Refresh token expired or invalid", Detail(err))
	})

	t.Run("revoked", func(t *testing.T) {
		pair, err := env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
		require.NoError(t, err)

		require.NoError(t, env.Sessions.Revoke(ctx, pair.RefreshToken))

		_, err = env.Sessions.Refresh(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("row expired", func(t *testing.T) {
		pair, err := env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
		require.NoError(t, err)

		later := &SessionService{
			Store:  env.Store,
			Tokens: env.Tokens,
			Now:    func() time.Time { return time.Now().Add(8 * 24 * time.Hour) },
		}
		_, err = later.Refresh(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("token expired", func(t *testing.T) {
		tok, err := env.HMAC.Sign(jwtx.NewRefreshClaims(userID, time.Minute, time.Now().Add(-time.Hour)))
		require.NoError(t, err)

		_, err = env.Sessions.Refresh(ctx, tok)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestConcurrentRefreshOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.register(t, "alice")

	pair, err := env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
	require.NoError(t, err)

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := env.Sessions.Refresh(ctx, pair.RefreshToken); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, successes)
}

func TestLogoutEndsEverySession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.register(t, "alice")
	env.register(t, "bob")

	laptop, err := env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
	require.NoError(t, err)
	phone, err := env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
	require.NoError(t, err)
	other, err := env.Sessions.Login(ctx, "bob", "Abcdef1!", "")
	require.NoError(t, err)

	require.NoError(t, env.Sessions.Logout(ctx, laptop.AccessToken))

	_, err = env.Tokens.Authenticate(ctx, laptop.AccessToken)
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = env.Sessions.Refresh(ctx, laptop.RefreshToken)
	require.ErrorIs(t, err, ErrUnauthenticated)
	_, err = env.Sessions.Refresh(ctx, phone.RefreshToken)
	require.ErrorIs(t, err, ErrUnauthenticated, "logout ends every session of the user")

	_, err = env.Tokens.Authenticate(ctx, phone.AccessToken)
	require.NoError(t, err, "other access tokens live until they expire")

	_, err = env.Sessions.Refresh(ctx, other.RefreshToken)
	require.NoError(t, err, "other users are unaffected")

	err = env.Sessions.Logout(ctx, laptop.AccessToken)
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.Equal(t, "Invalid token", Detail(err))
}

func TestLogoutRejectsUnverifiableTokens(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.register(t, "alice")

	require.ErrorIs(t, env.Sessions.Logout(ctx, "garbage"), ErrUnauthenticated)

	orphan, _, err := env.Tokens.IssueAccess(999, time.Now())
	require.NoError(t, err)
	require.ErrorIs(t, env.Sessions.Logout(ctx, orphan), ErrUnauthenticated, "subject must be an existing user")

	pair, err := env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
	require.NoError(t, err)
	require.ErrorIs(t, env.Sessions.Logout(ctx, pair.RefreshToken), ErrUnauthenticated)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.register(t, "alice")

	access, _, err := env.Tokens.IssueAccess(userID, time.Now())
	require.NoError(t, err)
	got, err := env.Tokens.Authenticate(ctx, access)
	require.NoError(t, err)
	require.Equal(t, userID, got)

	other, err := jwtx.NewHMAC("HS256", []byte("someone-elses-secret"), 0)
	require.NoError(t, err)
	forged, err := other.Sign(jwtx.NewAccessClaims(userID, time.Hour, time.Now()))
	require.NoError(t, err)
	_, err = env.Tokens.Authenticate(ctx, forged)
	require.ErrorIs(t, err, ErrUnauthenticated)

	noSub := jwtx.NewAccessClaims(userID, time.Hour, time.Now())
	noSub.Subject = ""
	tok, err := env.HMAC.Sign(noSub)
	require.NoError(t, err)
	_, err = env.Tokens.Authenticate(ctx, tok)
	require.ErrorIs(t, err, ErrUnauthenticated)

	expired, err := env.HMAC.Sign(jwtx.NewAccessClaims(userID, time.Minute, time.Now().Add(-2*time.Hour)))
	require.NoError(t, err)
	_, err = env.Tokens.Authenticate(ctx, expired)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestTokensMintedTogetherDiffer(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()

	a, _, err := env.Tokens.IssueAccess(1, now)
	require.NoError(t, err)
	b, _, err := env.Tokens.IssueAccess(1, now)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestLoginWithTOTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.register(t, "alice")

	enroll, err := env.MFA.EnrollTOTP(ctx, userID)
	require.NoError(t, err)

	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	backup, err := env.MFA.VerifyTOTP(ctx, userID, code)
	require.NoError(t, err)
	require.Len(t, backup, backupCodeCount)

	_, err = env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, "OTP code required or invalid", Detail(err))

	_, err = env.Sessions.Login(ctx, "alice", "Abcdef1!", "000000x")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	code, err = totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	_, err = env.Sessions.Login(ctx, "alice", "Abcdef1!", code)
	require.NoError(t, err)

	_, err = env.Sessions.Login(ctx, "alice", "Abcdef1!", backup[0])
	require.NoError(t, err, "backup code works once")
	_, err = env.Sessions.Login(ctx, "alice", "Abcdef1!", backup[0])
	require.ErrorIs(t, err, ErrInvalidCredentials, "backup code is single use")
}
