package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// writeServiceError maps service errors onto status codes and error bodies.
// Anything unrecognised is logged and reported as a 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	detail := service.Detail(err)

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusUnprocessableEntity, httpx.CodeValidation, detail)
	case errors.Is(err, service.ErrConflict):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeConflict, detail)
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeInvalidCredentials, detail)
	case errors.Is(err, service.ErrBadRequest):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, detail)
	case errors.Is(err, service.ErrUnauthenticated):
		if detail == "" {
			detail = "Could not validate credentials"
		}
		httpx.WriteUnauthorized(w, detail)
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, detail)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeServerError, "Internal server error")
	}
}

// decodeBody decodes the JSON request body into v, answering 422 itself
// when the body is malformed.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		slogx.FromContext(r.Context()).Debug("malformed request body", "err", err)
		httpx.WriteError(w, http.StatusUnprocessableEntity, httpx.CodeValidation, "Invalid JSON body")
		return false
	}
	return true
}

// required reports a missing field as a 422.
func required(w http.ResponseWriter, field string) {
	httpx.WriteError(w, http.StatusUnprocessableEntity, httpx.CodeValidation, field+": Field required")
}

// currentUser returns the id injected by AuthnMiddleware.
func currentUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.WriteUnauthorized(w, "Not authenticated")
	}
	return userID, ok
}
