package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// Authenticator resolves a bearer token to a user id. Any error means the
// caller is not authenticated.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (int64, error)
}

// AuthenticatorFunc adapts a function to Authenticator.
type AuthenticatorFunc func(ctx context.Context, token string) (int64, error)

func (f AuthenticatorFunc) Authenticate(ctx context.Context, token string) (int64, error) {
	return f(ctx, token)
}

// AuthnMiddleware rejects requests without a valid bearer token and puts the
// user id and raw token into the request context.
func AuthnMiddleware(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, ok := BearerToken(r)
			if !ok {
				WriteUnauthorized(w, "Not authenticated")
				return
			}

			userID, err := a.Authenticate(ctx, raw)
			if err != nil {
				slogx.FromContext(ctx).Info("bearer authentication failed", "err", err)
				WriteUnauthorized(w, "Could not validate credentials")
				return
			}

			ctx = WithUserID(ctx, userID, raw)
			ctx = slogx.With(ctx, "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from "Authorization: Bearer <token>". The
// scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	scheme, tok, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}

// WriteUnauthorized writes a 401 with the RFC 6750 challenge header.
func WriteUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	WriteError(w, http.StatusUnauthorized, CodeUnauthenticated, detail)
}
