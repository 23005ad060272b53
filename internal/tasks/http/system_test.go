package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	h := newRouter(t, httpx.Profiles{})

	rec := call(t, h, http.MethodGet, "/api", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"Hello":"World"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(slogx.RequestIDHeader))
}

func TestHealth(t *testing.T) {
	h := newRouter(t, httpx.Profiles{})

	rec := call(t, h, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	live := decode[tasksdk.HealthResponse](t, rec)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)
	require.Nil(t, live.Checks)

	rec = call(t, h, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ready := decode[tasksdk.HealthResponse](t, rec)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestSwaggerServed(t *testing.T) {
	h := newRouter(t, httpx.Profiles{})

	rec := call(t, h, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/api/tasks/{id}")
}

func TestLoginIsRateLimited(t *testing.T) {
	h := newRouter(t, httpx.Profiles{
		Strict: httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2},
	})

	login := tasksdk.LoginRequest{Username: "alice", Password: "whatever"}
	for range 2 {
		rec := call(t, h, http.MethodPost, "/api/auth/login", "", login)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	rec := call(t, h, http.MethodPost, "/api/auth/login", "", login)
	requireError(t, rec, http.StatusTooManyRequests, httpx.CodeRateLimited, "")
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// A different username from the same address has its own bucket.
	rec = call(t, h, http.MethodPost, "/api/auth/login", "", tasksdk.LoginRequest{Username: "bob", Password: "whatever"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
