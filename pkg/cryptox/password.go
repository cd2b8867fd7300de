package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for all new hashes. Raising it
// only affects new hashes; existing ones keep the cost embedded in them.
const PasswordCost = 12

// ErrMismatch reports that a plaintext password does not match a stored hash.
var ErrMismatch = errors.New("cryptox: password does not match")

// HashPassword derives a bcrypt hash from the plaintext. The returned string
// embeds the cost, a fresh random salt and the digest, so it is all a caller
// needs to store.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash
// in constant time. It returns ErrMismatch for a wrong password and a
// descriptive error for a malformed stored hash, which callers should treat
// as an internal fault rather than a failed login.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("cryptox: malformed password hash: %w", err)
	}
}
