package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	developmentAPIURL = "http://localhost:5000"
	productionAPIURL  = "https://pwd-week6-server.onrender.com"
)

// loads client configuration from .env and environment variables
func LoadClientConfig() (*ClientConfig, error) {
	loadDotEnv()

	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loads dev API configuration from .env and environment variables
func LoadDevAPIConfig() (*DevAPIConfig, error) {
	loadDotEnv()

	var cfg DevAPIConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &cfg, nil
}

// reports whether the Google provider has credentials
func (c *DevAPIConfig) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// reports whether the Naver provider has credentials
func (c *DevAPIConfig) NaverEnabled() bool {
	return c.NaverClientID != "" && c.NaverClientSecret != ""
}

func (c *ClientConfig) normalize() error {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL(c.Environment)
	}

	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API URL %q", c.APIURL)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}

	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests per second must be positive, got %v", c.RequestsPerSecond)
	}

	if c.RequestBurst < 1 {
		c.RequestBurst = 1
	}

	return nil
}

// returns the API base URL used when none is configured
func DefaultAPIURL(environment string) string {
	if environment == "production" {
		return productionAPIURL
	}

	return developmentAPIURL
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}
}
