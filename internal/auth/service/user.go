package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ferrylane/authkit/internal/auth/domain"
	"github.com/ferrylane/authkit/internal/auth/store"
	"github.com/ferrylane/authkit/pkg/cryptox"
	"github.com/ferrylane/authkit/pkg/idx"
	"github.com/ferrylane/authkit/pkg/slogx"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

type UserService struct {
	Store store.Store
}

// Register hashes the password and creates the user. The early lookup gives
// a friendly duplicate answer; the unique index on email is what actually
// guarantees uniqueness when two registrations race, so a constraint
// violation on insert maps to ErrEmailTaken as well.
func (s *UserService) Register(
	ctx context.Context,
	name, email, password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		return domain.User{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.User{}, err
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the race against a concurrent registration.
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// GetUserByID fetches a user by id. Callers must not expose the password
// hash carried on the returned value.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
