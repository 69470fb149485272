// Package oauthloop completes browser OAuth for a terminal client. The API
// redirects the browser to a 127.0.0.1 listener with a one-time token that
// the client then exchanges for a session.
package oauthloop

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"codeberg.org/foodmap/client/internal/logger"
)

const completionPage = `<!doctype html>
<html lang="ko"><meta charset="utf-8"><title>Foodmap</title>
<body style="font-family:sans-serif;text-align:center;padding-top:4rem">
<h2>%s</h2><p>%s</p></body></html>`

// starts listening on an ephemeral loopback port
func Listen() (*Listener, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to listen on loopback: %w", err)
	}

	l := &Listener{
		ln:     ln,
		result: make(chan result, 1),
		done:   make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, l.handleCallback)

	l.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := l.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorErr(err, "oauth loopback server stopped")
		}
	}()

	return l, nil
}

// returns the URL the API should send the browser back to
func (l *Listener) RedirectURL() string {
	return "http://" + l.ln.Addr().String() + callbackPath
}

// blocks until the browser delivers a token, ctx ends, or the listener closes
func (l *Listener) Wait(ctx context.Context) (string, error) {
	select {
	case r := <-l.result:
		return r.token, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	case <-l.done:
		return "", ErrClosed
	}
}

// stops the listener. safe to call more than once.
func (l *Listener) Close() error {
	l.closeOnce.Do(func() {
		close(l.done)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		l.closeErr = l.server.Shutdown(ctx)
	})

	return l.closeErr
}

func (l *Listener) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	res := result{token: q.Get("token")}

	switch {
	case q.Get("error") != "":
		res.err = fmt.Errorf("oauth failed: %s", q.Get("error"))
	case res.token == "":
		res.err = ErrNoToken
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if res.err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, completionPage, "로그인에 실패했습니다.", "터미널로 돌아가 다시 시도해주세요.") //nolint:errcheck
	} else {
		fmt.Fprintf(w, completionPage, "로그인이 완료되었습니다.", "이 창을 닫고 터미널로 돌아가세요.") //nolint:errcheck
	}

	// only the first callback counts
	select {
	case l.result <- res:
	default:
	}
}
