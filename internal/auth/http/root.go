package http

import (
	"net/http"

	"github.com/ferrylane/authkit/pkg/httpx"
)

// RootHandler serves the public welcome route.
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMsg(w, http.StatusOK, "welcome to the authkit API")
	}
}
