package submissions

import (
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("submission not found")

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// in-memory submission store
type Repository struct {
	mu    sync.RWMutex
	byID  map[string]*Submission
	order []string
}

type Submission struct {
	ID              string    `json:"id"`
	RestaurantName  string    `json:"restaurantName"`
	Category        string    `json:"category"`
	Location        string    `json:"location"`
	PriceRange      string    `json:"priceRange,omitempty"`
	RecommendedMenu []string  `json:"recommendedMenu,omitempty"`
	Review          string    `json:"review,omitempty"`
	SubmitterName   string    `json:"submitterName,omitempty"`
	SubmitterEmail  string    `json:"submitterEmail,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// fields supplied by the submitter
type Input struct {
	RestaurantName  string   `json:"restaurantName" binding:"required,max=100"`
	Category        string   `json:"category" binding:"required,max=50"`
	Location        string   `json:"location" binding:"required,max=200"`
	PriceRange      string   `json:"priceRange" binding:"max=50"`
	RecommendedMenu []string `json:"recommendedMenu" binding:"max=20"`
	Review          string   `json:"review" binding:"max=500"`
}
