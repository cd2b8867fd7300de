package http

import (
	"errors"
	"net/http"

	"github.com/ferrylane/authkit/internal/auth/service"
	"github.com/ferrylane/authkit/pkg/httpx"
	"github.com/ferrylane/authkit/pkg/slogx"
)

type ProfileHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns the profile for the id in the URL path. The id is taken
// from the path, not from the token subject: any authenticated caller may
// read any profile.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")

	user, err := h.UserService.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteMsg(w, http.StatusNotFound, "user not found")
			return
		}
		log.Error("failed to load user", "user_id", id, "err", err)
		httpx.WriteMsg(w, http.StatusInternalServerError,
			"something went wrong on the server, try again later")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, UserResponse{
		User: UserPayload{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}
