package http

import (
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// AuthHandler serves /api/auth: account creation and the token lifecycle.
type AuthHandler struct {
	UserService    *service.UserService
	SessionService *service.SessionService
}

// HandleRegister godoc
//
//	@Summary		Register a new user
//	@Description	Creates an account. Usernames and emails are unique.
//	@Tags			Authorization
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.RegisterRequest		true	"New account"
//	@Success		200		{object}	tasksdk.RegisterResponse	"id, message"
//	@Failure		400		{object}	httpx.ErrorResponse			"Username or email already registered"
//	@Failure		422		{object}	httpx.ErrorResponse			"Validation failed"
//	@Failure		429		{object}	httpx.ErrorResponse			"Too many requests"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req tasksdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id, err := h.UserService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", id)
	httpx.WriteJSON(w, http.StatusOK, tasksdk.RegisterResponse{
		ID:      id,
		Message: fmt.Sprintf("User %d registered", id),
	})
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchanges a username and password for an access and refresh token pair.
//	@Description	Users with TOTP enabled must also send otp_code (a backup code works too).
//	@Tags			Authorization
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	tasksdk.TokenResponse	"access_token, refresh_token, token_type"
//	@Failure		400		{object}	httpx.ErrorResponse		"Incorrect username, email or password"
//	@Failure		422		{object}	httpx.ErrorResponse		"Validation failed"
//	@Failure		429		{object}	httpx.ErrorResponse		"Too many requests"
//	@Header			200		{string}	Cache-Control			"no-store"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pair, err := h.SessionService.Login(r.Context(), req.Username, req.Password, req.OTPCode)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
	})
}

// HandleRefresh godoc
//
//	@Summary		Rotate a refresh token
//	@Description	Returns a new token pair. The presented refresh token stops working.
//	@Tags			Authorization
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	tasksdk.TokenResponse	"access_token, refresh_token, token_type"
//	@Failure		401		{object}	httpx.ErrorResponse		"Refresh token expired or invalid"
//	@Failure		422		{object}	httpx.ErrorResponse		"Validation failed"
//	@Router			/api/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.RefreshRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.RefreshToken == "" {
		required(w, "refresh_token")
		return
	}

	pair, err := h.SessionService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
	})
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Blacklists the presented access token and ends every session of the user.
//	@Tags			Authorization
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	tasksdk.MessageResponse	"Successfully logged out"
//	@Failure		401	{object}	httpx.ErrorResponse		"Invalid token"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	// Logout runs its own verification inside the blacklist transaction, so
	// it is not behind AuthnMiddleware.
	token, ok := httpx.BearerToken(r)
	if !ok {
		httpx.WriteUnauthorized(w, "Not authenticated")
		return
	}

	if err := h.SessionService.Logout(r.Context(), token); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.MessageResponse{Message: "Successfully logged out"})
}

// HandleRevoke godoc
//
//	@Summary		Revoke a refresh token
//	@Description	Marks a refresh token as revoked (RFC 7009 semantics).
//	@Description	Answers 200 even for unknown tokens so the endpoint cannot be used to probe them.
//	@Tags			Authorization
//	@Accept			json
//	@Produce		json
//	@Param			request	body	tasksdk.RevokeRequest	true	"Token to revoke"
//	@Success		200		"Token revoked (or was already unknown)"
//	@Failure		422		{object}	httpx.ErrorResponse	"Validation failed"
//	@Router			/api/auth/revoke [post].
func (h *AuthHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req tasksdk.RevokeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Token == "" {
		required(w, "token")
		return
	}

	if err := h.SessionService.Revoke(ctx, req.Token); err != nil {
		slogx.FromContext(ctx).Warn("revoke refresh failed", "err", err)
	}

	httpx.WriteJSON(w, http.StatusOK, struct{}{})
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Description	Returns the account the access token belongs to.
//	@Tags			Authorization
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	tasksdk.UserResponse	"Current user"
//	@Failure		401	{object}	httpx.ErrorResponse		"Could not validate credentials"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		MFAEnabled: user.MFAEnabled(),
		CreatedAt:  user.CreatedAt,
	})
}
