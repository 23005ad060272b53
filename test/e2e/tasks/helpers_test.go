package tasks_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/app"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

/*
 * End-to-end tests drive the full service (config, sqlite file database,
 * middleware, handlers) through the public SDK over real HTTP.
 */

const testPassword = "Abcdef1!"

// relaxedLimits keeps rapid test traffic clear of the production limits.
var relaxedLimits = httpx.Profiles{
	Strict:   httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000},
	Moderate: httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000},
	Lenient:  httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000},
}

func testConfig(t *testing.T) app.Config {
	t.Helper()

	dir := t.TempDir()
	return app.Config{
		SecretKey:           "e2e-secret-key",
		Algorithm:           "HS256",
		AccessTokenTTL:      time.Hour,
		RefreshTokenTTL:     24 * time.Hour,
		DatabaseDriver:      app.DriverSQLite,
		DatabaseFile:        filepath.Join(dir, "tasks.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		TOTPIssuer:          "taskboard-e2e",
		Env:                 "test",
		LogLevel:            "error",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
		RateLimits:          relaxedLimits,
	}
}

// startService runs the service on a random port and returns an SDK client.
func startService(t *testing.T, cfg app.Config) *tasksdk.Client {
	t.Helper()

	a, err := app.New(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = a.Shutdown()
	})

	return tasksdk.NewClient(srv.URL)
}

// registerAndLogin creates a user and returns an authenticated session.
func registerAndLogin(t *testing.T, c *tasksdk.Client, username string) *tasksdk.Session {
	t.Helper()
	ctx := context.Background()

	_, err := c.Register(ctx, tasksdk.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	s, err := c.Authenticate(ctx, username, testPassword, "")
	require.NoError(t, err)
	return s
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *tasksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Error())
	require.Equal(t, code, apiErr.Code, apiErr.Error())
}
