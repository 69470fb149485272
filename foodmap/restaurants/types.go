package restaurants

import (
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("restaurant not found")

// in-memory restaurant store
type Repository struct {
	mu    sync.RWMutex
	byID  map[string]*Restaurant
	order []string
}

type Restaurant struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Location        string    `json:"location"`
	PriceRange      string    `json:"priceRange,omitempty"`
	Rating          float64   `json:"rating,omitempty"`
	Description     string    `json:"description,omitempty"`
	RecommendedMenu []string  `json:"recommendedMenu,omitempty"`
	Likes           int       `json:"likes"`
	Image           string    `json:"image,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// writable fields of a restaurant
type Input struct {
	Name            string   `json:"name" binding:"required,max=100"`
	Category        string   `json:"category" binding:"required,max=50"`
	Location        string   `json:"location" binding:"required,max=200"`
	PriceRange      string   `json:"priceRange" binding:"max=50"`
	Rating          float64  `json:"rating" binding:"gte=0,lte=5"`
	Description     string   `json:"description" binding:"max=2000"`
	RecommendedMenu []string `json:"recommendedMenu" binding:"max=20"`
	Likes           int      `json:"likes" binding:"gte=0"`
	Image           string   `json:"image" binding:"max=500"`
}
