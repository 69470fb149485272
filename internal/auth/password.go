package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

// hashes a plaintext password with bcrypt
func HashPassword(password string) ([]byte, error) {
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return hash, nil
}

// reports whether password matches hash
func CheckPassword(hash []byte, password string) bool {
	if len(hash) == 0 {
		return false
	}

	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
