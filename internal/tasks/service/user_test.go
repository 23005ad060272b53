package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestRegisterOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	id, err := env.Users.Register(ctx, "alice", "a@x.com", "Abcdef1!")
	require.NoError(t, err)
	require.Positive(t, id)

	t.Run("same username", func(t *testing.T) {
		_, err := env.Users.Register(ctx, "alice", "other@x.com", "Abcdef1!")
		require.ErrorIs(t, err, ErrConflict)
		require.Equal(t, "Username or email already registered", Detail(err))
	})

	t.Run("same email", func(t *testing.T) {
		_, err := env.Users.Register(ctx, "alice2", "a@x.com", "Abcdef1!")
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("password is hashed", func(t *testing.T) {
		u, err := env.Users.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotEqual(t, "Abcdef1!", u.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword("Abcdef1!", u.PasswordHash))
	})
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.Users.Register(ctx, "bob", "b@x.com", "short")
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	require.Equal(t, "password", v.Field)

	_, err = env.Users.Register(ctx, "bob", "nope", "Abcdef1!")
	require.ErrorAs(t, err, &v)
	require.Equal(t, "email", v.Field)

	_, err = env.Users.FindByUsername(ctx, "bob")
	require.ErrorIs(t, err, ErrNotFound, "nothing persisted on validation failure")
}
