package store

import (
	"context"
	"errors"

	"github.com/ferrylane/authkit/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and the register duplicate check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// The users table carries a unique index on email; inserting a
	// duplicate returns ErrAlreadyExists. That index, not the caller's
	// lookup, is the real guard against concurrent registrations.
	CreateUser(ctx context.Context, u domain.User) error

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)

	// CountUsersByEmail returns how many rows exist for an email. With the
	// unique index in place this is 0 or 1.
	CountUsersByEmail(ctx context.Context, email string) (int64, error)
}
