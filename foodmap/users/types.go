package users

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

const (
	ProviderLocal = "local"
	RoleUser      = "user"
	RoleAdmin     = "admin"
)

// in-memory user store
type Repository struct {
	mu         sync.RWMutex
	byID       map[string]*User
	byEmail    map[string]string
	byProvider map[string]string
}

// represents an account known to the dev API
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Provider     string    `json:"provider"`
	ProviderID   string    `json:"-"`
	Role         string    `json:"userType"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
