package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/ferrylane/authkit/pkg/jwtx"
	"github.com/ferrylane/authkit/pkg/slogx"
)

// AuthnMiddleware gates private routes behind a bearer token. Requests fall
// into exactly one of three outcomes:
//
//  1. No Authorization header, or no bearer token extractable from it:
//     401 with an access-denied body.
//  2. A token is present but fails verification: 400 with an invalid-token
//     body. Whether the subject still exists is checked downstream.
//  3. The token verifies: claims and subject are attached to the request
//     context and the next handler runs.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := extractBearer(r.Header.Get("Authorization"))
			if raw == "" {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_request"`)
				WriteMsg(w, http.StatusUnauthorized, "access denied")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				WriteMsg(w, http.StatusBadRequest, "invalid token")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearer pulls the token out of an "Authorization: Bearer <token>"
// header value, returning "" when none is present.
func extractBearer(authz string) string {
	const prefix = "Bearer"
	if authz == "" || !strings.HasPrefix(authz, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, prefix))
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
