package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	backupCodeCount = 10                   // Number of backup codes to generate
	backupCodeBytes = cryptox.TokenSize128 // 128-bit entropy for backup codes
)

var (
	ErrInvalidTOTPCode   = withDetail(ErrBadRequest, "Invalid TOTP code")
	ErrMFANotEnrolled    = withDetail(ErrBadRequest, "MFA not enrolled")
	ErrMFANotEnabled     = withDetail(ErrBadRequest, "MFA not enabled for this user")
	ErrMFAAlreadyEnabled = withDetail(ErrBadRequest, "MFA already enabled for this user")
)

// MFAService manages the optional TOTP second factor. Users who never
// enroll log in with username and password alone.
type MFAService struct {
	Store  store.Store
	Issuer string // shown in authenticator apps
}

// EnrollTOTP generates a TOTP secret for the user. MFA is not enabled until
// a code is verified, and enrolling again replaces a pending secret.
func (s *MFAService) EnrollTOTP(ctx context.Context, userID int64) (domain.MFAEnrollResponse, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.MFAEnrollResponse{}, fmt.Errorf("failed to load user: %w", err)
	}
	if user.MFAEnabled() {
		return domain.MFAEnrollResponse{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Username,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.MFAEnrollResponse{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, userID, key.Secret()); err != nil {
		return domain.MFAEnrollResponse{}, fmt.Errorf("failed to store MFA secret: %w", err)
	}

	return domain.MFAEnrollResponse{
		Secret:  key.Secret(),
		URL:     key.URL(),
		Issuer:  s.Issuer,
		Account: user.Username,
	}, nil
}

// VerifyTOTP enables MFA once the user proves they hold the secret, and
// returns single-use backup codes. Only their fingerprints are stored.
func (s *MFAService) VerifyTOTP(ctx context.Context, userID int64, code string) ([]string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.MFAEnabled() {
		return nil, ErrMFAAlreadyEnabled
	}
	if user.MFASecret == nil {
		return nil, ErrMFANotEnrolled
	}
	if !totp.Validate(code, *user.MFASecret) {
		return nil, ErrInvalidTOTPCode
	}

	backupCodes := make([]string, backupCodeCount)
	for i := range backupCodeCount {
		c, err := cryptox.GenerateToken(backupCodeBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to generate backup code: %w", err)
		}
		backupCodes[i] = c
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.BackupCodes().DeleteAllBackupCodes(ctx, userID); err != nil {
			return fmt.Errorf("failed to clear backup codes: %w", err)
		}
		for _, c := range backupCodes {
			if err := tx.BackupCodes().CreateBackupCode(ctx, userID, cryptox.FingerprintToken(c)); err != nil {
				return fmt.Errorf("failed to store backup code: %w", err)
			}
		}
		if err := tx.Users().EnableMFA(ctx, userID, time.Now()); err != nil {
			return fmt.Errorf("failed to enable MFA: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return backupCodes, nil
}

// DisableTOTP removes MFA after checking a current code.
func (s *MFAService) DisableTOTP(ctx context.Context, userID int64, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if !user.MFAEnabled() {
		return ErrMFANotEnabled
	}
	if !totp.Validate(code, *user.MFASecret) {
		return ErrInvalidTOTPCode
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.BackupCodes().DeleteAllBackupCodes(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete backup codes: %w", err)
		}
		if err := tx.Users().DisableMFA(ctx, userID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("failed to disable MFA: %w", err)
		}
		return nil
	})
}
