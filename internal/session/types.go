package session

import (
	"context"
	"sync"

	"codeberg.org/foodmap/client/internal/apiclient"
)

// lifecycle phase of the session state machine
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseAuthenticated
	PhaseAnonymous
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "UNINITIALIZED"
	case PhaseLoading:
		return "LOADING"
	case PhaseAuthenticated:
		return "AUTHENTICATED"
	case PhaseAnonymous:
		return "ANONYMOUS"
	default:
		return "UNKNOWN"
	}
}

// snapshot of the session. Authenticated is true exactly when User is set.
type State struct {
	Phase         Phase
	Loading       bool
	Authenticated bool
	User          *apiclient.User
}

// the session operations the store depends on
type Client interface {
	Login(ctx context.Context, email, password string) (*apiclient.User, error)
	Register(ctx context.Context, name, email, password string) (*apiclient.User, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*apiclient.User, bool, error)
	ExchangeHandoff(ctx context.Context, token string) (*apiclient.User, error)
}

// read-only view of the store handed to guards and the navigation shell
type Reader interface {
	Snapshot() State
	IsAdmin() bool
}

// single owner of the client's authentication state
type Store struct {
	client Client

	mu        sync.RWMutex
	state     State
	listeners map[int]func(State)
	nextID    int
}
