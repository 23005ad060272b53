package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// TokenService is both the token issuer and the access token verifier.
// Everything it needs comes from the immutable app config at construction.
type TokenService struct {
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Store      store.Store
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// IssueAccess signs an access token for userID expiring AccessTTL after now.
func (s *TokenService) IssueAccess(userID int64, now time.Time) (string, jwtx.Claims, error) {
	c := jwtx.NewAccessClaims(userID, s.accessTTL(), now)
	tok, err := s.Signer.Sign(c)
	return tok, c, err
}

// IssueRefresh signs a refresh token for userID expiring RefreshTTL after now.
func (s *TokenService) IssueRefresh(userID int64, now time.Time) (string, jwtx.Claims, error) {
	c := jwtx.NewRefreshClaims(userID, s.refreshTTL(), now)
	tok, err := s.Signer.Sign(c)
	return tok, c, err
}

// issuePair returns a fresh pair and the refresh token's expiry as decoded
// from its claims.
func (s *TokenService) issuePair(userID int64, now time.Time) (domain.TokenPair, time.Time, error) {
	access, _, err := s.IssueAccess(userID, now)
	if err != nil {
		return domain.TokenPair{}, time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, rc, err := s.IssueRefresh(userID, now)
	if err != nil {
		return domain.TokenPair{}, time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    domain.TokenTypeBearer,
	}, rc.Expiry(), nil
}

// VerifyAccess runs the full access token check against st: signature and
// expiry, token kind, subject present, user exists, not blacklisted. Every
// failure is ErrUnauthenticated.
func (s *TokenService) VerifyAccess(ctx context.Context, st store.Store, raw string) (domain.User, jwtx.Claims, error) {
	l := slogx.FromContext(ctx)

	claims, err := s.Verifier.Verify(raw)
	if err != nil {
		l.Debug("access token rejected", "err", err)
		return domain.User{}, jwtx.Claims{}, errBadCredentials
	}
	if claims.IsRefresh() {
		l.Debug("refresh token presented as access token")
		return domain.User{}, jwtx.Claims{}, errBadCredentials
	}

	userID, err := claims.UserID()
	if err != nil {
		return domain.User{}, jwtx.Claims{}, errBadCredentials
	}

	user, err := st.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, jwtx.Claims{}, errBadCredentials
	}
	if err != nil {
		return domain.User{}, jwtx.Claims{}, fmt.Errorf("failed to load token subject: %w", err)
	}

	listed, err := st.Blacklist().IsBlacklisted(ctx, raw)
	if err != nil {
		return domain.User{}, jwtx.Claims{}, fmt.Errorf("failed to check blacklist: %w", err)
	}
	if listed {
		return domain.User{}, jwtx.Claims{}, errBadCredentials
	}

	return user, claims, nil
}

// Authenticate satisfies httpx.Authenticator.
func (s *TokenService) Authenticate(ctx context.Context, raw string) (int64, error) {
	user, _, err := s.VerifyAccess(ctx, s.Store, raw)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL <= 0 {
		return jwtx.DefaultAccessTokenTTL
	}
	return s.AccessTTL
}

func (s *TokenService) refreshTTL() time.Duration {
	if s.RefreshTTL <= 0 {
		return jwtx.DefaultRefreshTokenTTL
	}
	return s.RefreshTTL
}
