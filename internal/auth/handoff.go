package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// creates a handoff issuer signing with secret
func NewHandoffIssuer(secret string) (*HandoffIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	return &HandoffIssuer{
		secret: []byte(secret),
		ttl:    handoffTTL,
		now:    time.Now,
		used:   make(map[string]time.Time),
	}, nil
}

// signs a short-lived token that can be exchanged once for a session
func (h *HandoffIssuer) Issue(userID string) (string, error) {
	now := h.now()

	claims := HandoffClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

// validates a handoff token and marks it used. a second redeem of the same
// token fails.
func (h *HandoffIssuer) Redeem(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &HandoffClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return h.secret, nil
	}, jwt.WithTimeFunc(h.now), jwt.WithExpirationRequired())

	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*HandoffClaims)
	if !ok || !token.Valid || claims.ID == "" || claims.UserID == "" {
		return "", fmt.Errorf("invalid token")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	for id, expiry := range h.used {
		if now.After(expiry) {
			delete(h.used, id)
		}
	}

	if _, seen := h.used[claims.ID]; seen {
		return "", fmt.Errorf("token already used")
	}

	h.used[claims.ID] = claims.ExpiresAt.Time

	return claims.UserID, nil
}
