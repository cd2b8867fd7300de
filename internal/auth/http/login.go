package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ferrylane/authkit/internal/auth/service"
	"github.com/ferrylane/authkit/pkg/httpx"
	"github.com/ferrylane/authkit/pkg/slogx"
)

type LoginHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP authenticates an email/password pair and returns a signed token.
// An unknown email and a wrong password answer differently (404 vs 422).
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.Email == "":
		httpx.WriteMsg(w, http.StatusUnprocessableEntity, "email is required")
		return
	case req.Password == "":
		httpx.WriteMsg(w, http.StatusUnprocessableEntity, "password is required")
		return
	}

	token, err := h.TokenService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteMsg(w, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteMsg(w, http.StatusUnprocessableEntity, "invalid password")
		default:
			log.Error("login failed", "err", err)
			httpx.WriteMsg(w, http.StatusInternalServerError,
				"something went wrong on the server, try again later")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Msg:   "authentication successful",
		Token: token,
	})
}
