package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/postgres"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a throwaway postgres container and returns a migrated
// store. Skipped in -short mode since it needs docker.
func setupPostgres(t *testing.T) store.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres driver test needs docker")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "tasks",
			"POSTGRES_PASSWORD": "tasks",
			"POSTGRES_DB":       "tasks",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://tasks:tasks@%s:%s/tasks?sslmode=disable", host, port.Port())
	s, err := postgres.NewStore(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestPostgresStore(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	userID, err := s.Users().CreateUser(ctx, domain.User{
		Username: "alice", Email: "a@x.com", PasswordHash: "hash", CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = s.Users().CreateUser(ctx, domain.User{
		Username: "alice", Email: "b@x.com", PasswordHash: "hash", CreatedAt: time.Now(),
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	t.Run("tasks", func(t *testing.T) {
		deadline := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		id, err := s.Tasks().CreateTask(ctx, domain.Task{
			Title: "T", Content: "C", Deadline: deadline, CreatedAt: time.Now(), UserID: userID,
		})
		require.NoError(t, err)

		got, err := s.Tasks().GetTask(ctx, userID, id)
		require.NoError(t, err)
		require.True(t, deadline.Equal(got.Deadline))

		_, err = s.Tasks().GetTask(ctx, userID+1, id)
		require.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, s.Tasks().DeleteTask(ctx, userID, id))
		require.ErrorIs(t, s.Tasks().DeleteTask(ctx, userID, id), store.ErrNotFound)
	})

	t.Run("refresh rotation in tx", func(t *testing.T) {
		exp := time.Now().Add(time.Hour)
		id, err := s.RefreshTokens().CreateRefreshToken(ctx, domain.RefreshToken{
			Token: "old", UserID: userID, ExpiresAt: exp, CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		err = s.WithTx(ctx, func(tx store.Tx) error {
			return tx.RefreshTokens().RotateRefreshToken(ctx, id, "old", "new", exp)
		})
		require.NoError(t, err)

		err = s.WithTx(ctx, func(tx store.Tx) error {
			return tx.RefreshTokens().RotateRefreshToken(ctx, id, "old", "newer", exp)
		})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("housekeeping", func(t *testing.T) {
		require.NoError(t, s.Blacklist().AddToken(ctx, domain.BlacklistedToken{
			Token: "gone", UserID: userID, ExpiresAt: time.Now().Add(-time.Minute), BlacklistedAt: time.Now(),
		}))

		n, err := s.Blacklist().DeleteExpiredTokens(ctx, time.Now())
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
	})
}
