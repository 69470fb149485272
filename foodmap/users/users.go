package users

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// creates a new user repository
func NewRepository() *Repository {
	return &Repository{
		byID:       make(map[string]*User),
		byEmail:    make(map[string]string),
		byProvider: make(map[string]string),
	}
}

// creates a local account
func (r *Repository) Create(_ context.Context, name, email string, passwordHash []byte, role string) (*User, error) {
	key := normalizeEmail(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		return nil, ErrEmailTaken
	}

	now := time.Now().UTC()
	user := &User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        key,
		Provider:     ProviderLocal,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.byID[user.ID] = user
	r.byEmail[key] = user.ID

	return clone(user), nil
}

// finds a user by OAuth provider or creates a new one
func (r *Repository) FindOrCreateByProvider(
	_ context.Context,
	provider, providerID, email, name, avatarURL string,
) (*User, error) {
	providerKey := provider + ":" + providerID

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	if id, ok := r.byProvider[providerKey]; ok {
		user := r.byID[id]
		user.Name = name
		user.Avatar = avatarURL
		user.UpdatedAt = now
		return clone(user), nil
	}

	user := &User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      normalizeEmail(email),
		Provider:   provider,
		ProviderID: providerID,
		Role:       RoleUser,
		Avatar:     avatarURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	r.byID[user.ID] = user
	r.byProvider[providerKey] = user.ID

	return clone(user), nil
}

// finds a user by their ID
func (r *Repository) FindByID(_ context.Context, userID string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}

	return clone(user), nil
}

// finds a local account by email
func (r *Repository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}

	return clone(r.byID[id]), nil
}

// lists all users, oldest first
func (r *Repository) List(_ context.Context) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*User, 0, len(r.byID))
	for _, user := range r.byID {
		out = append(out, clone(user))
	}

	sortByCreated(out)
	return out, nil
}

// changes a user's role
func (r *Repository) UpdateRole(_ context.Context, userID, role string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}

	user.Role = role
	user.UpdatedAt = time.Now().UTC()

	return clone(user), nil
}

// reports whether the user holds the admin role
func (r *Repository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}

	return user.Role == RoleAdmin, nil
}
