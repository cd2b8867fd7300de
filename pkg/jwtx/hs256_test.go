package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "authkit-test"

func newTestHS256(t *testing.T) *HS256 {
	t.Helper()
	s, err := NewHS256([]byte("test-secret-please-rotate"), testIssuer)
	require.NoError(t, err)
	return s
}

func TestNewHS256_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256(nil, testIssuer)
	require.ErrorIs(t, err, ErrEmptySecret)

	_, err = NewHS256([]byte{}, testIssuer)
	require.ErrorIs(t, err, ErrEmptySecret)
}

func TestHS256_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestHS256(t)

	claims := NewAccessClaims("user-123", testIssuer, 0, time.Now())
	token, err := s.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, testIssuer, got.Issuer)
	require.Nil(t, got.ExpiresAt, "ttl of zero must not set an expiry")
}

func TestHS256_RoundTripWithTTL(t *testing.T) {
	t.Parallel()
	s := newTestHS256(t)

	now := time.Now()
	token, err := s.Sign(NewAccessClaims("user-456", testIssuer, time.Hour, now))
	require.NoError(t, err)

	got, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-456", got.Subject)
	require.NotNil(t, got.ExpiresAt)
	require.WithinDuration(t, now.Add(time.Hour), got.ExpiresAt.Time, 2*time.Second)
}

func TestHS256_Expired(t *testing.T) {
	t.Parallel()
	s := newTestHS256(t)

	token, err := s.Sign(NewAccessClaims("user-789", testIssuer, time.Second, time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256_TamperedToken(t *testing.T) {
	t.Parallel()
	s := newTestHS256(t)

	token, err := s.Sign(NewAccessClaims("user-123", testIssuer, 0, time.Now()))
	require.NoError(t, err)

	// Flip a byte in the payload segment; the signature no longer matches.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = s.Verify(tampered)
	require.Error(t, err)
}

func TestHS256_WrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256([]byte("right-secret"), testIssuer)
	require.NoError(t, err)
	verifier, err := NewHS256([]byte("wrong-secret"), testIssuer)
	require.NoError(t, err)

	token, err := signer.Sign(NewAccessClaims("user-123", testIssuer, 0, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256_IssuerMismatch(t *testing.T) {
	t.Parallel()
	s := newTestHS256(t)

	token, err := s.Sign(NewAccessClaims("user-123", "someone-else", 0, time.Now()))
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestHS256_Malformed(t *testing.T) {
	t.Parallel()
	s := newTestHS256(t)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := s.Verify(tok)
		require.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}
