package auth

import (
	"codeberg.org/foodmap/client/foodmap/users"
	"codeberg.org/foodmap/client/internal/auth"
	"github.com/gorilla/sessions"
)

// dependencies shared by the auth handlers
type Deps struct {
	Users    *users.Repository
	Sessions sessions.Store
	Handoff  *auth.HandoffIssuer

	// browser origins allowed as OAuth return targets
	AllowedOrigins []string
}

// LoginRequest for local email/password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=128"`
}

// RegisterRequest for creating a local account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// HandoffRequest carries a one-time OAuth handoff token
type HandoffRequest struct {
	Token string `json:"token" binding:"required"`
}

// AuthResponse returned after login, register and handoff
type AuthResponse struct {
	Success bool        `json:"success"`
	User    *users.User `json:"user"`
	Message string      `json:"message,omitempty"`
}

// MeResponse wraps the signed-in user
type MeResponse struct {
	Success bool        `json:"success"`
	User    *users.User `json:"user"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ProvidersResponse lists the OAuth providers that can be used
type ProvidersResponse struct {
	Success   bool     `json:"success"`
	Providers []string `json:"providers"`
}
