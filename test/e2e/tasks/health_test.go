package tasks_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ctx := context.Background()
	c := startService(t, testConfig(t))

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.NotEmpty(t, live.Version)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestLoginRateLimitWithDefaults(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.RateLimits = httpx.Profiles{
		Strict:   httpx.StrictLimit,
		Moderate: httpx.ModerateLimit,
		Lenient:  httpx.LenientLimit,
	}
	c := startService(t, cfg)

	var err error
	for range httpx.StrictLimit.Burst + 1 {
		_, err = c.Login(ctx, "mallory", "Guess123!", "")
		if tasksdk.IsCode(err, tasksdk.ErrorCodeRateLimited) {
			break
		}
	}
	requireAPIError(t, err, http.StatusTooManyRequests, tasksdk.ErrorCodeRateLimited)

	// a different username is a different bucket
	_, err = c.Login(ctx, "trudy", "Guess123!", "")
	requireAPIError(t, err, http.StatusBadRequest, tasksdk.ErrorCodeInvalidCredentials)
}
