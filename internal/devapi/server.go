package devapi

import (
	"context"
	"fmt"
	"net/http"

	"codeberg.org/foodmap/client/foodmap/restaurants"
	"codeberg.org/foodmap/client/foodmap/submissions"
	"codeberg.org/foodmap/client/foodmap/users"
	"codeberg.org/foodmap/client/internal/auth"
	"codeberg.org/foodmap/client/internal/config"
	"codeberg.org/foodmap/client/internal/logger"
	"github.com/gin-gonic/gin"
)

// creates and configures a new dev API instance with seeded data
func NewServer(cfg *config.DevAPIConfig) (*Server, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	handoff, err := auth.NewHandoffIssuer(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create handoff issuer: %w", err)
	}

	auth.ConfigureGothic(cfg.SessionSecret, cfg.BaseURL)

	providers := auth.InitializeProviders(cfg.BaseURL,
		auth.ProviderCredentials{ClientID: cfg.GoogleClientID, ClientSecret: cfg.GoogleClientSecret},
		auth.ProviderCredentials{ClientID: cfg.NaverClientID, ClientSecret: cfg.NaverClientSecret},
	)

	server := &Server{
		config:         cfg,
		userRepo:       users.NewRepository(),
		restaurantRepo: restaurants.NewRepository(),
		submissionRepo: submissions.NewRepository(),
		sessions:       auth.NewSessionStore(cfg.SessionSecret, cfg.BaseURL),
		handoff:        handoff,
		providers:      providers,
	}

	if err := server.seed(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed data: %w", err)
	}

	limit, err := loginLimiter(cfg.LoginRateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to configure rate limit: %w", err)
	}

	router := gin.Default()
	RegisterRoutes(router, server, limit)
	server.router = router

	logger.Info("dev API initialized",
		"oauth_providers", providers,
		"allowed_origins", cfg.AllowedOrigins,
		"login_rate_limit", cfg.LoginRateLimit,
	)

	return server, nil
}

// returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// issues a handoff token for userID, as the OAuth callback would
func (s *Server) IssueHandoff(userID string) (string, error) {
	return s.handoff.Issue(userID)
}

// returns the user repository
func (s *Server) Users() *users.Repository {
	return s.userRepo
}
