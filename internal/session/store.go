package session

import (
	"context"

	"codeberg.org/foodmap/client/internal/apiclient"
	"codeberg.org/foodmap/client/internal/logger"
)

// creates a store in the UNINITIALIZED phase
func NewStore(client Client) *Store {
	return &Store{
		client:    client,
		state:     State{Phase: PhaseUninitialized, Loading: true},
		listeners: make(map[int]func(State)),
	}
}

// checks the server for an existing session. called once at startup;
// every failure degrades to anonymous.
func (s *Store) Initialize(ctx context.Context) {
	s.check(ctx, "initialize")
}

// re-checks the session, moving to anonymous when the server no longer
// recognizes it
func (s *Store) Refresh(ctx context.Context) {
	s.check(ctx, "refresh")
}

// authenticates with email and password. on failure the state is left
// unchanged and the *apiclient.AuthError is returned for display.
func (s *Store) Login(ctx context.Context, email, password string) error {
	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.authenticated(user)
	logger.Info("logged in", "user_id", user.ID, "provider", user.Provider)

	return nil
}

// creates a local account; success authenticates immediately
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	user, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	s.authenticated(user)
	logger.Info("registered", "user_id", user.ID)

	return nil
}

// completes an OAuth login from a loopback handoff token
func (s *Store) AdoptHandoff(ctx context.Context, token string) error {
	user, err := s.client.ExchangeHandoff(ctx, token)
	if err != nil {
		return err
	}

	s.authenticated(user)
	logger.Info("logged in", "user_id", user.ID, "provider", user.Provider)

	return nil
}

// ends the session. the local state is always cleared, even when the
// server call fails.
func (s *Store) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		logger.ErrorErr(err, "logout request failed, clearing local session anyway")
	}

	s.anonymous()
}

// reports whether a settled session belongs to an admin
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return isAdmin(s.state)
}

// returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyState(s.state)
}

// returns the current phase
func (s *Store) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Phase
}

// registers fn to receive every new state. the returned func unsubscribes.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) check(ctx context.Context, op string) {
	s.loading()

	// the loading phase always exits, even if the client panics
	settled := false
	defer func() {
		if !settled {
			s.anonymous()
		}
	}()

	user, ok, err := s.client.CurrentSession(ctx)

	switch {
	case err != nil:
		logger.ErrorErr(err, "session check failed", "op", op)
		s.anonymous()
	case !ok:
		logger.Debug("no active session", "op", op)
		s.anonymous()
	default:
		s.authenticated(user)
	}

	settled = true
}

func (s *Store) loading() {
	s.mu.Lock()
	prev := s.state
	s.state = State{
		Phase:         PhaseLoading,
		Loading:       true,
		Authenticated: prev.Authenticated,
		User:          prev.User,
	}
	s.publishLocked()
}

func (s *Store) authenticated(user *apiclient.User) {
	u := *user

	s.mu.Lock()
	s.state = State{
		Phase:         PhaseAuthenticated,
		Authenticated: true,
		User:          &u,
	}
	s.publishLocked()
}

func (s *Store) anonymous() {
	s.mu.Lock()
	s.state = State{Phase: PhaseAnonymous}
	s.publishLocked()
}

// releases the lock taken by the caller, then notifies listeners
func (s *Store) publishLocked() {
	snapshot := copyState(s.state)
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func isAdmin(st State) bool {
	return !st.Loading && st.Authenticated && st.User != nil && st.User.Role == apiclient.RoleAdmin
}

func copyState(st State) State {
	if st.User != nil {
		u := *st.User
		st.User = &u
	}

	return st
}
