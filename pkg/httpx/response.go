package httpx

import (
	"encoding/json"
	"net/http"
)

// MsgResponse is the plain `{"msg": ...}` body used by most endpoints.
type MsgResponse struct {
	Msg string `json:"msg"`
}

// WriteJSON writes a JSON response with the given status code. It sets the
// Content-Type and Cache-Control headers automatically.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMsg writes a `{"msg": ...}` body with the given status code.
func WriteMsg(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, MsgResponse{Msg: msg})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
