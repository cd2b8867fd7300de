package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferrylane/authkit/pkg/httpx"
	"github.com/ferrylane/authkit/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newGatedHandler(t *testing.T, v jwtx.Verifier) (http.Handler, *string) {
	t.Helper()

	var gotSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = httpx.SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	return httpx.Chain(next, httpx.AuthnMiddleware(v)), &gotSubject
}

func decodeMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body httpx.MsgResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Msg
}

func TestAuthnMiddleware_MissingToken(t *testing.T) {
	t.Parallel()

	tok, err := jwtx.NewHS256([]byte("secret"), "test")
	require.NoError(t, err)
	handler, _ := newGatedHandler(t, tok)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"bearer without token", "Bearer"},
		{"bearer with spaces only", "Bearer    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user/abc", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Equal(t, "access denied", decodeMsg(t, rec))
			require.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestAuthnMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	tok, err := jwtx.NewHS256([]byte("secret"), "test")
	require.NoError(t, err)
	handler, _ := newGatedHandler(t, tok)

	other, err := jwtx.NewHS256([]byte("another-secret"), "test")
	require.NoError(t, err)
	forged, err := other.Sign(jwtx.NewAccessClaims("user-1", "test", 0, time.Now()))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"signed with a different secret", forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user/abc", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "invalid token", decodeMsg(t, rec))
		})
	}
}

func TestAuthnMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tok, err := jwtx.NewHS256([]byte("secret"), "test")
	require.NoError(t, err)
	handler, gotSubject := newGatedHandler(t, tok)

	token, err := tok.Sign(jwtx.NewAccessClaims("user-42", "test", 0, time.Now()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-42", *gotSubject)
}
