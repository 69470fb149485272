package tui

import (
	"context"
	"errors"
	"time"

	"codeberg.org/foodmap/client/internal/apiclient"
	"codeberg.org/foodmap/client/internal/logger"
	"codeberg.org/foodmap/client/internal/oauthloop"
	"codeberg.org/foodmap/client/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

const healthTimeout = 3 * time.Second

func navigate(location string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Location: location}
	}
}

func replace(location string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Location: location, Replace: true}
	}
}

func back() tea.Msg {
	return backMsg{}
}

func showFlash(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return flashMsg{text: text, isErr: isErr}
	}
}

// blocks until the store publishes, then reports it
func waitForSession(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return SessionChangedMsg{}
	}
}

func initializeSession(store *session.Store) tea.Cmd {
	return func() tea.Msg {
		store.Initialize(context.Background())
		return sessionCheckedMsg{}
	}
}

// re-checks the session after the server rejected a credentialed request
func refreshSession(store *session.Store) tea.Cmd {
	return func() tea.Msg {
		store.Refresh(context.Background())
		return sessionCheckedMsg{}
	}
}

// error carried by the result of a credentialed request
func resultErr(msg tea.Msg) error {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		return msg.err
	case submissionsLoadedMsg:
		return msg.err
	case actionDoneMsg:
		return msg.err
	}
	return nil
}

func checkHealth(api healthChecker) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
		defer cancel()

		h, err := api.Health(ctx)
		return healthMsg{health: h, err: err}
	}
}

type healthChecker interface {
	Health(ctx context.Context) (*apiclient.Health, error)
}

func loadRestaurants(api API) tea.Cmd {
	return func() tea.Msg {
		list, err := api.Restaurants(context.Background())
		return restaurantsLoadedMsg{restaurants: list, err: err}
	}
}

func loadPopular(api API) tea.Cmd {
	return func() tea.Msg {
		list, err := api.PopularRestaurants(context.Background())
		return restaurantsLoadedMsg{restaurants: list, err: err}
	}
}

func loadRestaurant(api API, id string) tea.Cmd {
	return func() tea.Msg {
		r, err := api.Restaurant(context.Background(), id)
		return restaurantLoadedMsg{restaurant: r, err: err}
	}
}

func loadProviders(api API) tea.Cmd {
	return func() tea.Msg {
		providers, err := api.Providers(context.Background())
		if err != nil {
			logger.Warn("failed to load oauth providers", "error", err)
		}
		return providersLoadedMsg{providers: providers}
	}
}

func loadUsers(api API) tea.Cmd {
	return func() tea.Msg {
		users, err := api.ListUsers(context.Background())
		return usersLoadedMsg{users: users, err: err}
	}
}

func loadSubmissions(api API, status apiclient.SubmissionStatus) tea.Cmd {
	return func() tea.Msg {
		list, err := api.ListSubmissions(context.Background(), status)
		return submissionsLoadedMsg{submissions: list, err: err}
	}
}

func login(store *session.Store, email, password string) tea.Cmd {
	return func() tea.Msg {
		return authDoneMsg{err: store.Login(context.Background(), email, password)}
	}
}

func register(store *session.Store, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		return authDoneMsg{err: store.Register(context.Background(), name, email, password)}
	}
}

// logs out and returns to the home screen, replacing the current location
func logout(store *session.Store) tea.Cmd {
	return func() tea.Msg {
		store.Logout(context.Background())
		return NavigateMsg{Location: "/", Replace: true}
	}
}

// opens the loopback listener and hands the provider URL to the browser
func startOAuth(e *env, provider apiclient.Provider) tea.Cmd {
	return func() tea.Msg {
		ln, err := oauthloop.Listen()
		if err != nil {
			return oauthStartedMsg{err: err}
		}

		authURL := e.api.OAuthURL(provider, ln.RedirectURL())
		if e.openURL != nil {
			if err := e.openURL(authURL); err != nil {
				// the URL is still shown for manual copy
				logger.Warn("failed to open browser", "error", err)
			}
		}

		return oauthStartedMsg{listener: ln, url: authURL}
	}
}

// waits for the browser to come back and adopts the handoff token
func finishOAuth(e *env, ln oauthListener) tea.Cmd {
	return func() tea.Msg {
		defer ln.Close() //nolint:errcheck

		ctx := context.Background()
		if e.oauthTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, e.oauthTimeout)
			defer cancel()
		}

		token, err := ln.Wait(ctx)
		if err != nil {
			return authDoneMsg{err: err}
		}

		return authDoneMsg{err: e.store.AdoptHandoff(ctx, token)}
	}
}

// maps an OAuth wait failure onto a display message. cancellation by the
// user yields an empty message.
func oauthFailure(e *env, err error) string {
	switch {
	case errors.Is(err, oauthloop.ErrClosed):
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return e.p.Sprintf("login.oauth_timeout")
	default:
		return apiclient.UserMessage(err, e.p.Sprintf("error.oauth"))
	}
}

// runs a write and reports its outcome as an actionDoneMsg
func act(success string, reload bool, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{success: success, err: fn(context.Background()), reload: reload}
	}
}
