package auth

import (
	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/naver"
)

// credentials for one OAuth provider
type ProviderCredentials struct {
	ClientID     string
	ClientSecret string
}

func (p ProviderCredentials) enabled() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// registers the configured OAuth providers with goth and returns their names.
// providers without credentials are skipped so local setups work without them.
func InitializeProviders(baseURL string, googleCreds, naverCreds ProviderCredentials) []string {
	goth.ClearProviders()

	var (
		providers []goth.Provider
		names     []string
	)

	if googleCreds.enabled() {
		providers = append(providers, google.New(
			googleCreds.ClientID,
			googleCreds.ClientSecret,
			baseURL+"/api/auth/google/callback",
			"email", "profile",
		))
		names = append(names, "google")
	}

	if naverCreds.enabled() {
		providers = append(providers, naver.New(
			naverCreds.ClientID,
			naverCreds.ClientSecret,
			baseURL+"/api/auth/naver/callback",
		))
		names = append(names, "naver")
	}

	goth.UseProviders(providers...)

	return names
}

// reports whether provider was registered
func ProviderEnabled(provider string) bool {
	_, err := goth.GetProvider(provider)
	return err == nil
}
