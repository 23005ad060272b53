package tasksdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// refreshBuffer is how long before expiry a session refreshes its access token.
const refreshBuffer = 30 * time.Second

// ErrNoRefreshToken is returned when the access token has expired and the
// session holds nothing to refresh it with.
var ErrNoRefreshToken = errors.New("tasksdk: access token expired and no refresh token available")

// Session represents an authenticated session with automatic token refresh.
// All Session methods refresh the access token shortly before it expires.
// It is safe for concurrent use.
type Session struct {
	client *Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time // zero when the token carries no exp claim
}

// refreshDeadline returns the time at which token should be refreshed.
func refreshDeadline(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Add(-refreshBuffer)
}

// getValidToken returns a valid access token, automatically refreshing if expired.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.accessToken != "" && (s.expiresAt.IsZero() || time.Now().Before(s.expiresAt)) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock (another goroutine may have refreshed)
	if s.accessToken != "" && (s.expiresAt.IsZero() || time.Now().Before(s.expiresAt)) {
		return s.accessToken, nil
	}

	if s.refreshToken == "" {
		return "", ErrNoRefreshToken
	}

	tokens, err := s.client.Refresh(ctx, s.refreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	s.accessToken = tokens.AccessToken
	s.refreshToken = tokens.RefreshToken
	s.expiresAt = refreshDeadline(tokens.AccessToken)

	return s.accessToken, nil
}

// do sends an authenticated request and decodes a 200 body into target.
func (s *Session) do(ctx context.Context, method, path string, body, target any) error {
	token, err := s.getValidToken(ctx)
	if err != nil {
		return err
	}

	resp, err := s.client.doRequest(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target)
}

// AccessToken returns the current access token without checking expiration.
// For most use cases, prefer using the Session methods which handle refresh automatically.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token. It changes on every refresh,
// so persist it after using the session.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Me returns the account the session belongs to.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := s.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout blacklists the access token and ends every session of the user.
// The session is unusable afterwards.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken, s.refreshToken, s.expiresAt = "", "", time.Time{}
	s.mu.Unlock()
	return nil
}

// Revoke revokes the current refresh token, invalidating this session once
// the access token expires.
func (s *Session) Revoke(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.refreshToken
	s.mu.RUnlock()

	if refreshToken == "" {
		return ErrNoRefreshToken
	}
	return s.client.RevokeToken(ctx, refreshToken)
}
