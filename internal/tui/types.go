package tui

import (
	"context"
	"net/url"
	"time"

	"codeberg.org/foodmap/client/internal/apiclient"
	"codeberg.org/foodmap/client/internal/guard"
	"codeberg.org/foodmap/client/internal/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"
)

// REST operations the pages use beyond the session calls owned by the store
type API interface {
	Restaurants(ctx context.Context) ([]apiclient.Restaurant, error)
	PopularRestaurants(ctx context.Context) ([]apiclient.Restaurant, error)
	Restaurant(ctx context.Context, id string) (*apiclient.Restaurant, error)
	CreateRestaurant(ctx context.Context, r apiclient.Restaurant) (*apiclient.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id string, r apiclient.Restaurant) (*apiclient.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id string) error
	CreateSubmission(ctx context.Context, s apiclient.Submission) (*apiclient.Submission, error)
	ListSubmissions(ctx context.Context, status apiclient.SubmissionStatus) ([]apiclient.Submission, error)
	UpdateSubmissionStatus(ctx context.Context, id string, status apiclient.SubmissionStatus) (*apiclient.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error
	ApproveSubmission(ctx context.Context, s apiclient.Submission) (*apiclient.Restaurant, error)
	ListUsers(ctx context.Context) ([]apiclient.User, error)
	ChangeUserRole(ctx context.Context, userID string, role apiclient.Role) (*apiclient.User, error)
	Providers(ctx context.Context) ([]apiclient.Provider, error)
	OAuthURL(provider apiclient.Provider, redirect string) string
}

// everything the application needs, constructed once at the root
type Deps struct {
	Store        *session.Store
	Guard        *guard.Guard
	API          API
	Printer      *message.Printer
	OpenURL      func(string) error
	OAuthTimeout time.Duration

	// location shown first, "/" when empty
	StartLocation string
}

// a routed screen
type Page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Page, tea.Cmd)
	View() string
}

// implemented by pages that consume printable keys (forms, filters)
type inputCapturer interface {
	capturesInput() bool
}

// implemented by pages holding resources that must be released on exit
type pageCloser interface {
	close()
}

// shared by all pages
type env struct {
	store        *session.Store
	api          API
	p            *message.Printer
	openURL      func(string) error
	oauthTimeout time.Duration
	width        int
	height       int
}

// main TUI application model
type Model struct {
	env    *env
	guard  *guard.Guard
	routes []route
	start  string

	location string
	route    route
	params   map[string]string
	query    url.Values
	decision guard.Decision
	page     Page
	pageID   int
	history  []string

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	flash      string
	flashIsErr bool
	health     string

	sessionCh   chan struct{}
	unsubscribe func()
	// a session re-check triggered by a rejected request is in flight
	refreshing bool
}

type route struct {
	pattern string
	policy  guard.Policy
	build   func(e *env, params map[string]string, query url.Values) Page
}

// requests a location change. Replace drops the current location from history.
type NavigateMsg struct {
	Location string
	Replace  bool
}

// sent whenever the session store publishes a new state
type SessionChangedMsg struct{}

// returns to the previous location
type backMsg struct{}

// one-line status shown under the page
type flashMsg struct {
	text  string
	isErr bool
}

// result of an async command, tagged with the page that issued it
type pageMsg struct {
	id  int
	msg tea.Msg
}

type sessionCheckedMsg struct{}

type healthMsg struct {
	health *apiclient.Health
	err    error
}

type restaurantsLoadedMsg struct {
	restaurants []apiclient.Restaurant
	err         error
}

type restaurantLoadedMsg struct {
	restaurant *apiclient.Restaurant
	err        error
}

type providersLoadedMsg struct {
	providers []apiclient.Provider
}

type authDoneMsg struct {
	err error
}

type oauthStartedMsg struct {
	listener oauthListener
	url      string
	err      error
}

type usersLoadedMsg struct {
	users []apiclient.User
	err   error
}

type submissionsLoadedMsg struct {
	submissions []apiclient.Submission
	err         error
}

// outcome of a write; reload asks the page to fetch its data again
type actionDoneMsg struct {
	success string
	err     error
	reload  bool
}

// loopback receiver used by the OAuth login flow
type oauthListener interface {
	RedirectURL() string
	Wait(ctx context.Context) (string, error)
	Close() error
}
