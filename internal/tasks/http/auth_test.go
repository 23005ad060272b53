package http_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	h := newRouter(t, httpx.Profiles{})

	rec := call(t, h, http.MethodPost, "/api/auth/register", "", tasksdk.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[tasksdk.RegisterResponse](t, rec)
	require.Positive(t, resp.ID)
	require.Equal(t, "User 1 registered", resp.Message)

	t.Run("duplicate", func(t *testing.T) {
		rec := call(t, h, http.MethodPost, "/api/auth/register", "", tasksdk.RegisterRequest{
			Username: "alice", Email: "other@example.com", Password: testPassword,
		})
		requireError(t, rec, http.StatusBadRequest, httpx.CodeConflict, "Username or email already registered")
	})

	t.Run("weak password", func(t *testing.T) {
		rec := call(t, h, http.MethodPost, "/api/auth/register", "", tasksdk.RegisterRequest{
			Username: "bob", Email: "bob@example.com", Password: "short",
		})
		requireError(t, rec, http.StatusUnprocessableEntity, httpx.CodeValidation,
			"Password must be at least 8 characters long")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := call(t, h, http.MethodPost, "/api/auth/register", "", `{"username":`)
		requireError(t, rec, http.StatusUnprocessableEntity, httpx.CodeValidation, "Invalid JSON body")
	})
}

func TestLogin(t *testing.T) {
	h := newRouter(t, httpx.Profiles{})
	pair := signup(t, h, "alice")

	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.Equal(t, "bearer", pair.TokenType)

	rec := call(t, h, http.MethodPost, "/api/auth/login", "", tasksdk.LoginRequest{
		Username: "alice", Password: "Wrong-pass1",
	})
	requireError(t, rec, http.StatusBadRequest, httpx.CodeInvalidCredentials, "Incorrect username, email or password")
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	rec = call(t, h, http.MethodPost, "/api/auth/login", "", tasksdk.LoginRequest{
		Username: "nobody", Password: testPassword,
	})
	requireError(t, rec, http.StatusBadRequest, httpx.CodeInvalidCredentials, "")
}

func TestRefresh(t *testing.T) {
	h := newRouter(t, httpx.Profiles{})
	pair := signup(t, h, "alice")

	rec := call(t, h, http.MethodPost, "/api/auth/refresh", "", tasksdk.RefreshRequest{RefreshToken: pair.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	next := decode[tasksdk.TokenResponse](t, rec)
	require.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	rec = call(t, h, http.MethodGet, "/api/tasks", next.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("old token is spent", func(t *testing.T) {
		rec := call(t, h, http.MethodPost, "/api/auth/refresh", "", tasksdk.RefreshRequest{RefreshToken: pair.RefreshToken})
		requireError(t, rec, http.StatusUnauthorized, httpx.CodeUnauthenticated, "Refresh token expired or invalid")
		require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		rec := call(t, h, http.MethodPost, "/api/auth/refresh", "", tasksdk.RefreshRequest{RefreshToken: next.AccessToken})
		requireError(t, rec, http.StatusUnauthorized, httpx.CodeUnauthenticated, "")
	})

	t.Run("missing token", func(t *testing.T) {
		rec := call(t, h, http.MethodPost, "/api/auth/refresh", "", `{}`)
		requireError(t, rec, http.StatusUnprocessableEntity, httpx.CodeValidation, "refresh_token: Field required")
	})
}

func TestLogout(t *testing.T) {
	h := newRouter(t, httpx.Profiles{})
	pair := signup(t, h, "alice")

	rec := call(t, h, http.MethodPost, "/api/auth/logout", "", nil)
	requireError(t, rec, http.StatusUnauthorized, httpx.CodeUnauthenticated, "Not authenticated")

	rec = call(t, h, http.MethodPost, "/api/auth/logout", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "Successfully logged out", decode[tasksdk.MessageResponse](t, rec).Message)

	rec = call(t, h, http.MethodGet, "/api/tasks", pair.AccessToken, nil)
	requireError(t, rec, http.StatusUnauthorized, httpx.CodeUnauthenticated, "Could not validate credentials")

	rec = call(t, h, http.MethodPost, "/api/auth/refresh", "", tasksdk.RefreshRequest{RefreshToken: pair.RefreshToken})
	requireError(t, rec, http.StatusUnauthorized, httpx.CodeUnauthenticated, "")

	rec = call(t, h, http.MethodPost, "/api/auth/logout", pair.AccessToken, nil)
	requireError(t, rec, http.StatusUnauthorized, httpx.CodeUnauthenticated, "Invalid token")
}

func TestRevoke(t *testing.T) {
	h := newRouter(t, httpx.Profiles{})
	pair := signup(t, h, "alice")

	rec := call(t, h, http.MethodPost, "/api/auth/revoke", "", tasksdk.RevokeRequest{Token: "not-a-token"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{}`, rec.Body.String())

	rec = call(t, h, http.MethodPost, "/api/auth/revoke", "", tasksdk.RevokeRequest{Token: pair.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, h, http.MethodPost, "/api/auth/refresh", "", tasksdk.RefreshRequest{RefreshToken: pair.RefreshToken})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, h, http.MethodPost, "/api/auth/revoke", "", `{"token":""}`)
	requireError(t, rec, http.StatusUnprocessableEntity, httpx.CodeValidation, "token: Field required")
}

func TestMe(t *testing.T) {
	h := newRouter(t, httpx.Profiles{})
	pair := signup(t, h, "alice")

	rec := call(t, h, http.MethodGet, "/api/auth/me", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[tasksdk.UserResponse](t, rec)
	require.Equal(t, "alice", me.Username)
	require.Equal(t, "alice@example.com", me.Email)
	require.False(t, me.MFAEnabled)
	require.False(t, me.CreatedAt.IsZero())

	rec = call(t, h, http.MethodGet, "/api/auth/me", "", nil)
	requireError(t, rec, http.StatusUnauthorized, httpx.CodeUnauthenticated, "Not authenticated")

	rec = call(t, h, http.MethodGet, "/api/auth/me", pair.RefreshToken, nil)
	requireError(t, rec, http.StatusUnauthorized, httpx.CodeUnauthenticated, "Could not validate credentials")
}

func TestMFAEnrollAndVerify(t *testing.T) {
	h := newRouter(t, httpx.Profiles{})
	pair := signup(t, h, "alice")

	rec := call(t, h, http.MethodPost, "/api/auth/mfa/totp/verify", pair.AccessToken, tasksdk.TOTPCodeRequest{Code: "000000"})
	requireError(t, rec, http.StatusBadRequest, httpx.CodeBadRequest, "MFA not enrolled")

	rec = call(t, h, http.MethodPost, "/api/auth/mfa/totp/enroll", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	enroll := decode[tasksdk.TOTPEnrollResponse](t, rec)
	require.NotEmpty(t, enroll.Secret)
	require.Contains(t, enroll.OTPAuthURL, "otpauth://totp/")
	require.Equal(t, "alice", enroll.Account)

	rec = call(t, h, http.MethodDelete, "/api/auth/mfa/totp", pair.AccessToken, tasksdk.TOTPCodeRequest{Code: "000000"})
	requireError(t, rec, http.StatusBadRequest, httpx.CodeBadRequest, "MFA not enabled for this user")

	rec = call(t, h, http.MethodPost, "/api/auth/mfa/totp/enroll", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
