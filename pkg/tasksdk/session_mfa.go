package tasksdk

import (
	"context"
	"net/http"
)

// EnrollTOTP starts TOTP enrollment. MFA is not enabled until VerifyTOTP
// succeeds with a code generated from the returned secret.
func (s *Session) EnrollTOTP(ctx context.Context) (*TOTPEnrollResponse, error) {
	var out TOTPEnrollResponse
	if err := s.do(ctx, http.MethodPost, "/api/auth/mfa/totp/enroll", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyTOTP enables MFA and returns single-use backup codes.
func (s *Session) VerifyTOTP(ctx context.Context, code string) (*BackupCodesResponse, error) {
	var out BackupCodesResponse
	if err := s.do(ctx, http.MethodPost, "/api/auth/mfa/totp/verify", TOTPCodeRequest{Code: code}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DisableTOTP turns MFA off. code must be a current TOTP code.
func (s *Session) DisableTOTP(ctx context.Context, code string) error {
	return s.do(ctx, http.MethodDelete, "/api/auth/mfa/totp", TOTPCodeRequest{Code: code}, nil)
}
