package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ferrylane/authkit/internal/auth/store"
	"github.com/ferrylane/authkit/pkg/cryptox"
	"github.com/ferrylane/authkit/pkg/jwtx"
	"github.com/ferrylane/authkit/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenService authenticates credentials and mints access tokens bound to a
// user id. The signer carries the process-wide secret, injected at
// construction.
type TokenService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string

	// AccessTTL of zero issues tokens without an expiry, matching the
	// historical behaviour of this flow.
	AccessTTL time.Duration
}

// Login verifies the email/password pair and returns a signed token.
// Unknown emails yield ErrUserNotFound and wrong passwords
// ErrInvalidCredentials, so the handler can answer the two differently.
func (s *TokenService) Login(ctx context.Context, email, password string) (string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			log.Info("login rejected", slog.String("user_id", user.ID))
			return "", ErrInvalidCredentials
		}
		// A stored hash that cannot be parsed is an internal fault, not a
		// failed login.
		log.Error("stored password hash is malformed",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("verify password: %w", err)
	}

	claims := jwtx.NewAccessClaims(user.ID, s.Issuer, s.AccessTTL, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign token", slog.Any("error", err))
		return "", err
	}

	log.Info("user authenticated", slog.String("user_id", user.ID))
	return token, nil
}
