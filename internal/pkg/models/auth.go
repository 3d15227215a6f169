package models

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}

// VerifyResponse represents the result of a token validity probe
type VerifyResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
