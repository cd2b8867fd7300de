package service

import (
	"context"
	"testing"
	"time"

	"github.com/ferrylane/authkit/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "authkit-test"

func newTestTokenService(t *testing.T) (*TokenService, *UserService, *jwtx.HS256) {
	t.Helper()

	st := newTestStore(t)
	tokens, err := jwtx.NewHS256([]byte("test-secret"), testIssuer)
	require.NoError(t, err)

	return &TokenService{
		Store:  st,
		Signer: tokens,
		Issuer: testIssuer,
	}, &UserService{Store: st}, tokens
}

func TestTokenService_Login(t *testing.T) {
	tokenSvc, userSvc, tokens := newTestTokenService(t)
	ctx := context.Background()

	user, err := userSvc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	token, err := tokenSvc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token binds to the user's id and has no expiry by default.
	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Nil(t, claims.ExpiresAt)
}

func TestTokenService_Login_WithTTL(t *testing.T) {
	tokenSvc, userSvc, tokens := newTestTokenService(t)
	tokenSvc.AccessTTL = time.Hour
	ctx := context.Background()

	_, err := userSvc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	token, err := tokenSvc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
}

func TestTokenService_Login_UnknownEmail(t *testing.T) {
	tokenSvc, _, _ := newTestTokenService(t)

	_, err := tokenSvc.Login(context.Background(), "nobody@x.com", "pw123456")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestTokenService_Login_WrongPassword(t *testing.T) {
	tokenSvc, userSvc, _ := newTestTokenService(t)
	ctx := context.Background()

	_, err := userSvc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	token, err := tokenSvc.Login(ctx, "a@x.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Empty(t, token, "no token may be issued on a failed login")
}
