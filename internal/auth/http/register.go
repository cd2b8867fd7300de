package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ferrylane/authkit/internal/auth/service"
	"github.com/ferrylane/authkit/pkg/httpx"
	"github.com/ferrylane/authkit/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles user registration. Field checks run in order and the
// first failure answers the request; the response never echoes the password
// or its hash.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.Name == "":
		httpx.WriteMsg(w, http.StatusUnprocessableEntity, "name is required")
		return
	case req.Email == "":
		httpx.WriteMsg(w, http.StatusUnprocessableEntity, "email is required")
		return
	case req.Password == "":
		httpx.WriteMsg(w, http.StatusUnprocessableEntity, "password is required")
		return
	case req.Password != req.ConfirmPassword:
		httpx.WriteMsg(w, http.StatusUnprocessableEntity, "passwords do not match")
		return
	}

	_, err := h.UserService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			httpx.WriteMsg(w, http.StatusUnprocessableEntity,
				"email already registered, use another email")
			return
		}
		log.Error("registration failed", "err", err)
		httpx.WriteMsg(w, http.StatusInternalServerError,
			"something went wrong on the server, try again later")
		return
	}

	httpx.WriteMsg(w, http.StatusCreated, "user created successfully")
}
