package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
)

type UserService struct {
	Store store.Store
}

// Register validates the input, hashes the password and creates the user.
// A username or email that is already taken yields ErrConflict.
func (s *UserService) Register(ctx context.Context, username, email, password string) (int64, error) {
	if err := ValidateUsername(username); err != nil {
		return 0, err
	}
	if err := ValidateEmail(email); err != nil {
		return 0, err
	}
	if err := ValidatePassword(password); err != nil {
		return 0, err
	}

	taken, err := s.Store.Users().UsernameOrEmailTaken(ctx, username, email)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing users: %w", err)
	}
	if taken {
		return 0, errUserTaken
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.Store.Users().CreateUser(ctx, domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// Lost a race with a concurrent registration.
		return 0, errUserTaken
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// FindByUsername returns ErrNotFound when no such user exists.
func (s *UserService) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	return u, err
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	return u, err
}
