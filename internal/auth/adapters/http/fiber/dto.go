package fiber

import "time"

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"admin"`
}

type LoginResponse struct {
	Token     string    `json:"token" example:"3f1c2a9e-6b0f-4a0e-9d7e-1c4b5a6d7e8f"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"unauthorized"`
	Message string `json:"message" example:"session is missing or expired"`
}
