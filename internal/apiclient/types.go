package apiclient

import (
	"net/http"
	"time"

	"golang.org/x/text/message"
	"golang.org/x/time/rate"
)

// authentication method an account was created with
type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderGoogle Provider = "google"
	ProviderNaver  Provider = "naver"
)

// OAuth providers that expose a browser entry point
var OAuthProviders = []Provider{ProviderGoogle, ProviderNaver}

// account role
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// identity record returned by the auth endpoints
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Provider  Provider  `json:"provider"`
	Role      Role      `json:"userType"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// restaurant listed in the directory
type Restaurant struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Location        string   `json:"location"`
	PriceRange      string   `json:"priceRange,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	Description     string   `json:"description,omitempty"`
	RecommendedMenu []string `json:"recommendedMenu,omitempty"`
	Likes           int      `json:"likes,omitempty"`
	Image           string   `json:"image,omitempty"`
}

// review state of a submission
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// user-reported restaurant awaiting review
type Submission struct {
	ID              string           `json:"id,omitempty"`
	RestaurantName  string           `json:"restaurantName"`
	Category        string           `json:"category"`
	Location        string           `json:"location"`
	PriceRange      string           `json:"priceRange,omitempty"`
	RecommendedMenu []string         `json:"recommendedMenu,omitempty"`
	Review          string           `json:"review,omitempty"`
	SubmitterName   string           `json:"submitterName,omitempty"`
	SubmitterEmail  string           `json:"submitterEmail,omitempty"`
	Status          SubmissionStatus `json:"status,omitempty"`
	CreatedAt       time.Time        `json:"createdAt,omitempty"`
}

// server health probe result
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

// configures a Client
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	Language          string
}

// talks to the foodmap REST API. authed carries the session cookie jar,
// public never sends credentials.
type Client struct {
	baseURL string
	timeout time.Duration
	authed  *http.Client
	public  *http.Client
	limiter *rate.Limiter
	printer *message.Printer
}

type request struct {
	method   string
	path     string
	body     any
	public   bool
	fallback string
}

type authRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type handoffRequest struct {
	Token string `json:"token"`
}

type authResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user"`
	Message string `json:"message"`
}

type usersResponse struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
}

type providersResponse struct {
	Success   bool       `json:"success"`
	Providers []Provider `json:"providers"`
}

type changeRoleRequest struct {
	Role Role `json:"userType"`
}

type statusRequest struct {
	Status SubmissionStatus `json:"status"`
}

type dataResponse[T any] struct {
	Data T `json:"data"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
