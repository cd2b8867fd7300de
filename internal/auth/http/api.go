package http

import "time"

// Request bodies are typed and validated at the boundary rather than decoded
// into loose maps.

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// UserPayload is the client-facing shape of a user. It deliberately has no
// password hash field, so the hash can never leak through serialization.
type UserPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type UserResponse struct {
	User UserPayload `json:"user"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
