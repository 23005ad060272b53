package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/stretchr/testify/require"
)

// TestRegisterLoginCreateDeleteScenario walks the basic life of a user
// through the services alone.
func TestRegisterLoginCreateDeleteScenario(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.Users.Register(ctx, "alice", "a@x.com", "Abcdef1!")
	require.NoError(t, err)

	pair, err := env.Sessions.Login(ctx, "alice", "Abcdef1!", "")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	userID, err := env.Tokens.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)

	task, err := env.Tasks.Create(ctx, userID, domain.NewTask{Title: "T", Content: "C", Deadline: deadline2030})
	require.NoError(t, err)
	require.False(t, task.IsDone)

	require.NoError(t, env.Tasks.Delete(ctx, userID, task.ID))

	_, err = env.Tasks.Get(ctx, userID, task.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
