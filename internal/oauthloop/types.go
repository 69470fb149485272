package oauthloop

import (
	"errors"
	"net"
	"net/http"
	"sync"
)

const callbackPath = "/callback"

var (
	// the browser came back without a token
	ErrNoToken = errors.New("oauth callback carried no token")

	// the listener was closed before a callback arrived
	ErrClosed = errors.New("oauth listener closed")
)

// one-shot loopback receiver for an OAuth handoff token
type Listener struct {
	ln     net.Listener
	server *http.Server
	result chan result
	done   chan struct{}

	closeOnce sync.Once
	closeErr  error
}

type result struct {
	token string
	err   error
}
