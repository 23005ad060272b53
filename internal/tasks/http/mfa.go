package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// MFAHandler handles all MFA-related endpoints.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll handles POST /api/auth/mfa/totp/enroll
//
//	@Summary		Enroll in TOTP MFA
//	@Description	Generates a TOTP secret for the authenticated user. MFA stays off until a code is verified.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	tasksdk.TOTPEnrollResponse	"TOTP secret and otpauth URL"
//	@Failure		400	{object}	httpx.ErrorResponse			"MFA already enabled"
//	@Failure		401	{object}	httpx.ErrorResponse			"Invalid or missing access token"
//	@Router			/api/auth/mfa/totp/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	enroll, err := h.MFAService.EnrollTOTP(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.TOTPEnrollResponse{
		Secret:     enroll.Secret,
		OTPAuthURL: enroll.URL,
		Issuer:     enroll.Issuer,
		Account:    enroll.Account,
	})
}

// HandleVerify handles POST /api/auth/mfa/totp/verify
//
//	@Summary		Verify TOTP code and enable MFA
//	@Description	Verifies a TOTP code and enables MFA for the user. Returns backup codes.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.TOTPCodeRequest		true	"TOTP code"
//	@Success		200		{object}	tasksdk.BackupCodesResponse	"Backup codes (shown once)"
//	@Failure		400		{object}	httpx.ErrorResponse			"Invalid TOTP code or not enrolled"
//	@Failure		401		{object}	httpx.ErrorResponse			"Invalid or missing access token"
//	@Router			/api/auth/mfa/totp/verify [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req tasksdk.TOTPCodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	codes, err := h.MFAService.VerifyTOTP(r.Context(), userID, req.Code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("mfa enabled")
	httpx.WriteJSON(w, http.StatusOK, tasksdk.BackupCodesResponse{
		Message:     "MFA enabled",
		BackupCodes: codes,
	})
}

// HandleDisable handles DELETE /api/auth/mfa/totp
//
//	@Summary		Disable TOTP MFA
//	@Description	Turns MFA off and discards unused backup codes. Requires a current TOTP code.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.TOTPCodeRequest	true	"TOTP code"
//	@Success		200		{object}	tasksdk.MessageResponse	"MFA disabled"
//	@Failure		400		{object}	httpx.ErrorResponse		"Invalid TOTP code or MFA not enabled"
//	@Failure		401		{object}	httpx.ErrorResponse		"Invalid or missing access token"
//	@Router			/api/auth/mfa/totp [delete].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req tasksdk.TOTPCodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.MFAService.DisableTOTP(r.Context(), userID, req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("mfa disabled")
	httpx.WriteJSON(w, http.StatusOK, tasksdk.MessageResponse{Message: "MFA disabled"})
}
