package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/pquerna/otp/totp"
)

// SessionService drives a login session through login, refresh and logout.
type SessionService struct {
	Store  store.Store
	Tokens *TokenService

	// Now is the clock used for refresh row expiry; nil means time.Now.
	Now func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login checks the credentials, and the TOTP code when the user enrolled in
// MFA, then issues a token pair and persists the refresh row.
func (s *SessionService) Login(ctx context.Context, username, password, otpCode string) (domain.TokenPair, error) {
	l := slogx.FromContext(ctx)
	now := s.now()

	if err := ValidateLogin(username, password); err != nil {
		return domain.TokenPair{}, err
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		l.Info("login for unknown user", slog.String("username", username))
		return domain.TokenPair{}, errBadLogin
	}
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to load user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash unusable", slog.Int64("user_id", user.ID), "err", err)
		}
		return domain.TokenPair{}, errBadLogin
	}

	if user.MFAEnabled() {
		ok, err := s.checkSecondFactor(ctx, user, otpCode)
		if err != nil {
			return domain.TokenPair{}, err
		}
		if !ok {
			l.Info("login rejected: second factor", slog.Int64("user_id", user.ID))
			return domain.TokenPair{}, errBadOTP
		}
	}

	if cryptox.NeedsRehash(user.PasswordHash) {
		s.rehash(ctx, user.ID, password)
	}

	pair, refreshExp, err := s.Tokens.issuePair(user.ID, now)
	if err != nil {
		return domain.TokenPair{}, err
	}

	_, err = s.Store.RefreshTokens().CreateRefreshToken(ctx, domain.RefreshToken{
		Token:     pair.RefreshToken,
		UserID:    user.ID,
		ExpiresAt: refreshExp,
		CreatedAt: now,
	})
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	l.Info("user logged in", slog.Int64("user_id", user.ID))
	return pair, nil
}

// checkSecondFactor accepts a current TOTP code or an unused backup code.
// A backup code is consumed on success.
func (s *SessionService) checkSecondFactor(ctx context.Context, user domain.User, code string) (bool, error) {
	if code == "" {
		return false, nil
	}
	if totp.Validate(code, *user.MFASecret) {
		return true, nil
	}

	hash := cryptox.FingerprintToken(code)
	ok, err := s.Store.BackupCodes().VerifyBackupCode(ctx, user.ID, hash)
	if err != nil {
		return false, fmt.Errorf("failed to check backup code: %w", err)
	}
	if !ok {
		return false, nil
	}

	err = s.Store.BackupCodes().DeleteBackupCode(ctx, user.ID, hash)
	if errors.Is(err, store.ErrNotFound) {
		// Consumed by a concurrent login.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to consume backup code: %w", err)
	}
	return true, nil
}

// rehash upgrades a legacy or outdated hash. Failure only costs us the
// upgrade, so it is logged and the login proceeds.
func (s *SessionService) rehash(ctx context.Context, userID int64, password string) {
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err == nil {
		err = s.Store.Users().UpdatePasswordHash(ctx, userID, hash)
	}
	if err != nil {
		l.Warn("failed to upgrade password hash", slog.Int64("user_id", userID), "err", err)
		return
	}
	l.Info("upgraded password hash", slog.Int64("user_id", userID))
}

// Refresh rotates a refresh token. The stored row is overwritten in place,
// so the presented token can never be used again. Revoked rows are
// rejected, and of two concurrent rotations of one token only one wins.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	l := slogx.FromContext(ctx)
	now := s.now()

	claims, err := s.Tokens.Verifier.Verify(refreshToken)
	if err != nil {
		l.Debug("refresh token rejected", "err", err)
		return domain.TokenPair{}, errBadRefresh
	}
	if !claims.IsRefresh() {
		return domain.TokenPair{}, errBadRefresh
	}
	userID, err := claims.UserID()
	if err != nil {
		return domain.TokenPair{}, errBadRefresh
	}

	var pair domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		row, err := tx.RefreshTokens().GetRefreshToken(ctx, refreshToken)
		if errors.Is(err, store.ErrNotFound) {
			return errRefreshRejected
		}
		if err != nil {
			return err
		}
		if row.Expired(now) || row.Revoked || row.UserID != userID {
			return errRefreshRejected
		}

		var exp time.Time
		pair, exp, err = s.Tokens.issuePair(userID, now)
		if err != nil {
			return err
		}

		err = tx.RefreshTokens().RotateRefreshToken(ctx, row.ID, refreshToken, pair.RefreshToken, exp)
		if errors.Is(err, store.ErrNotFound) {
			return errRefreshRejected
		}
		return err
	})
	if err != nil {
		return domain.TokenPair{}, err
	}

	l.Info("refresh token rotated", slog.Int64("user_id", userID))
	return pair, nil
}

// Logout blacklists the access token and deletes every refresh row of its
// user, ending all of the user's sessions.
func (s *SessionService) Logout(ctx context.Context, accessToken string) error {
	l := slogx.FromContext(ctx)
	now := s.now()

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, claims, err := s.Tokens.VerifyAccess(ctx, tx, accessToken)
		if errors.Is(err, ErrUnauthenticated) {
			return errBadToken
		}
		if err != nil {
			return err
		}

		err = tx.Blacklist().AddToken(ctx, domain.BlacklistedToken{
			Token:         accessToken,
			UserID:        user.ID,
			ExpiresAt:     claims.Expiry(),
			BlacklistedAt: now,
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			return errBadToken
		}
		if err != nil {
			return fmt.Errorf("failed to blacklist token: %w", err)
		}

		n, err := tx.RefreshTokens().DeleteUserRefreshTokens(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("failed to delete refresh tokens: %w", err)
		}
		l.Info("user logged out", slog.Int64("user_id", user.ID), slog.Int64("sessions_ended", n))
		return nil
	})
	return err
}

// Revoke marks a refresh token revoked. Unknown tokens are ignored so the
// caller learns nothing about which tokens exist.
func (s *SessionService) Revoke(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return invalid("refresh_token", "Field required")
	}
	if err := s.Store.RefreshTokens().RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
