package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyToken  ctxKey = "bearer_token"
)

// UserIDFromContext returns the id injected by AuthnMiddleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(int64)
	return id, ok && id > 0
}

// TokenFromContext returns the raw bearer token that authenticated the request.
func TokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(CtxKeyToken).(string)
	return tok, ok && tok != ""
}

// WithUserID is what AuthnMiddleware does; exported for handler tests.
func WithUserID(ctx context.Context, userID int64, token string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	return context.WithValue(ctx, CtxKeyToken, token)
}
