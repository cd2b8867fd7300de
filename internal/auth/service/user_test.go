package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ferrylane/authkit/internal/auth/store"
	"github.com/ferrylane/authkit/internal/auth/store/drivers/sqlite"
	"github.com/ferrylane/authkit/pkg/cryptox"
	"github.com/ferrylane/authkit/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestUserService_Register(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	_, parseErr := idx.Parse(user.ID)
	require.NoError(t, parseErr)

	// The stored record carries a hash, never the plaintext.
	stored, err := st.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEqual(t, "pw123456", stored.PasswordHash)
	require.NoError(t, cryptox.VerifyPassword("pw123456", stored.PasswordHash))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Another Ana", "a@x.com", "different")
	require.ErrorIs(t, err, ErrEmailTaken)

	count, err := st.Users().CountUsersByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.EqualValues(t, 1, count, "exactly one record must exist for the email")
}

func TestUserService_GetUserByID(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	created, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	got, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Ana", got.Name)
	require.Equal(t, "a@x.com", got.Email)

	_, err = svc.GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrUserNotFound)
}
