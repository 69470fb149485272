package auth

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// cookie carrying the signed-in user for the dev API
	SessionName = "foodmap_session"

	// session cookie lifetime in seconds
	sessionMaxAge = 7 * 24 * 60 * 60

	// gothic state cookie lifetime in seconds, enough for an OAuth round trip
	oauthStateMaxAge = 300

	sessionUserKey = "user_id"

	oauthRedirectName = "foodmap_oauth"
	oauthRedirectKey  = "redirect"

	// context key populated by LoadUser
	ContextUserID = "user_id"

	handoffTTL = 2 * time.Minute
)

// claims of a one-time OAuth handoff token
type HandoffClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// signs and redeems one-time handoff tokens. A redeemed token id is
// remembered until the token would have expired anyway.
type HandoffIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu   sync.Mutex
	used map[string]time.Time
}
