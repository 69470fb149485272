package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"codeberg.org/foodmap/client/internal/apiclient"
	"codeberg.org/foodmap/client/internal/guard"
	"codeberg.org/foodmap/client/internal/i18n"
	"codeberg.org/foodmap/client/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// commands slower than this are treated as background work (ticks, blinks,
// session waits) and abandoned
const cmdDeadline = 50 * time.Millisecond

type fakeSession struct {
	mu sync.Mutex

	user     *apiclient.User
	password string
	gate     chan struct{}

	logoutCalls int
}

func (f *fakeSession) Login(_ context.Context, email, password string) (*apiclient.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if password != f.password {
		return nil, &apiclient.AuthError{Kind: apiclient.KindValidation, Status: 401, Message: "이메일 또는 비밀번호가 올바르지 않습니다."}
	}

	f.user = &apiclient.User{ID: "u-1", Name: "김아주", Email: email, Role: apiclient.RoleUser, Provider: apiclient.ProviderLocal}
	return f.user, nil
}

func (f *fakeSession) Register(_ context.Context, name, email, _ string) (*apiclient.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.user = &apiclient.User{ID: "u-2", Name: name, Email: email, Role: apiclient.RoleUser, Provider: apiclient.ProviderLocal}
	return f.user, nil
}

func (f *fakeSession) ExchangeHandoff(context.Context, string) (*apiclient.User, error) {
	return nil, &apiclient.AuthError{Kind: apiclient.KindValidation, Message: "invalid token"}
}

func (f *fakeSession) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.logoutCalls++
	f.user = nil
	return nil
}

func (f *fakeSession) CurrentSession(context.Context) (*apiclient.User, bool, error) {
	f.mu.Lock()
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.user, f.user != nil, nil
}

type fakeAPI struct {
	mu sync.Mutex

	restaurants []apiclient.Restaurant
	submissions []apiclient.Submission
	users       []apiclient.User

	created  []apiclient.Submission
	deleted  []string
	statuses map[string]apiclient.SubmissionStatus
	roles    map[string]apiclient.Role

	// returned by credentialed calls when set
	credErr   error
	statusErr error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		restaurants: []apiclient.Restaurant{
			{ID: "r-1", Name: "송림식당", Category: "한식", Location: "아주대 정문", Likes: 42, Rating: 4.5},
			{ID: "r-2", Name: "카페 온", Category: "카페", Location: "후문", Likes: 10, Rating: 4.1},
		},
		submissions: []apiclient.Submission{
			{ID: "s-1", RestaurantName: "새 분식집", Category: "분식", Location: "중문", Status: apiclient.StatusPending},
		},
		users: []apiclient.User{
			{ID: "admin-1", Name: "관리자", Email: "admin@ajou.ac.kr", Role: apiclient.RoleAdmin},
			{ID: "u-9", Name: "이학생", Email: "lee@ajou.ac.kr", Role: apiclient.RoleUser},
		},
		statuses: map[string]apiclient.SubmissionStatus{},
		roles:    map[string]apiclient.Role{},
	}
}

func (f *fakeAPI) Restaurants(context.Context) ([]apiclient.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiclient.Restaurant(nil), f.restaurants...), nil
}

func (f *fakeAPI) PopularRestaurants(ctx context.Context) ([]apiclient.Restaurant, error) {
	return f.Restaurants(ctx)
}

func (f *fakeAPI) Restaurant(_ context.Context, id string) (*apiclient.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, r := range f.restaurants {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, &apiclient.AuthError{Kind: apiclient.KindValidation, Status: 404, Message: "맛집을 찾을 수 없습니다."}
}

func (f *fakeAPI) CreateRestaurant(_ context.Context, r apiclient.Restaurant) (*apiclient.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r.ID = "r-new"
	f.restaurants = append(f.restaurants, r)
	return &r, nil
}

func (f *fakeAPI) UpdateRestaurant(_ context.Context, id string, r apiclient.Restaurant) (*apiclient.Restaurant, error) {
	r.ID = id
	return &r, nil
}

func (f *fakeAPI) DeleteRestaurant(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, id)
	for i, r := range f.restaurants {
		if r.ID == id {
			f.restaurants = append(f.restaurants[:i], f.restaurants[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) CreateSubmission(_ context.Context, s apiclient.Submission) (*apiclient.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.created = append(f.created, s)
	return &s, nil
}

func (f *fakeAPI) ListSubmissions(_ context.Context, status apiclient.SubmissionStatus) ([]apiclient.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []apiclient.Submission
	for _, s := range f.submissions {
		if st, ok := f.statuses[s.ID]; ok {
			s.Status = st
		}
		if status == "" || s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeAPI) UpdateSubmissionStatus(_ context.Context, id string, status apiclient.SubmissionStatus) (*apiclient.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.statusErr != nil {
		return nil, f.statusErr
	}
	f.statuses[id] = status
	return &apiclient.Submission{ID: id, Status: status}, nil
}

func (f *fakeAPI) DeleteSubmission(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) ApproveSubmission(ctx context.Context, s apiclient.Submission) (*apiclient.Restaurant, error) {
	r, err := f.CreateRestaurant(ctx, apiclient.Restaurant{Name: s.RestaurantName, Category: s.Category, Location: s.Location})
	if err != nil {
		return nil, err
	}
	if _, err := f.UpdateSubmissionStatus(ctx, s.ID, apiclient.StatusApproved); err != nil {
		return r, &apiclient.ApprovalError{Restaurant: r, Err: err}
	}
	return r, nil
}

func (f *fakeAPI) ListUsers(context.Context) ([]apiclient.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.credErr != nil {
		return nil, f.credErr
	}
	return append([]apiclient.User(nil), f.users...), nil
}

func (f *fakeAPI) ChangeUserRole(_ context.Context, userID string, role apiclient.Role) (*apiclient.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.roles[userID] = role
	return &apiclient.User{ID: userID, Role: role}, nil
}

func (f *fakeAPI) Providers(context.Context) ([]apiclient.Provider, error) {
	return []apiclient.Provider{apiclient.ProviderGoogle}, nil
}

func (f *fakeAPI) OAuthURL(provider apiclient.Provider, redirect string) string {
	return "http://api.test/api/auth/" + string(provider) + "?redirect=" + redirect
}

type harness struct {
	t      *testing.T
	app    *Model
	store  *session.Store
	client *fakeSession
	api    *fakeAPI
}

func anonymous() *fakeSession {
	return &fakeSession{password: "secret1"}
}

func signedIn(role apiclient.Role) *fakeSession {
	return &fakeSession{
		password: "secret1",
		user: &apiclient.User{
			ID:        "u-1",
			Name:      "김아주",
			Email:     "kim@ajou.ac.kr",
			Role:      role,
			Provider:  apiclient.ProviderGoogle,
			CreatedAt: time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	}
}

// starts the app at location with an already initialized store
func newHarness(t *testing.T, client *fakeSession, location string) *harness {
	t.Helper()

	h := setup(t, client, location)
	h.store.Initialize(context.Background())
	h.run(h.app.Init())

	return h
}

func setup(t *testing.T, client *fakeSession, location string) *harness {
	t.Helper()

	store := session.NewStore(client)
	api := newFakeAPI()
	app := NewApp(Deps{
		Store:         store,
		Guard:         guard.New(store, ""),
		API:           api,
		Printer:       i18n.Printer("ko"),
		StartLocation: location,
	})
	t.Cleanup(app.Close)

	return &harness{t: t, app: app, store: store, client: client, api: api}
}

// executes cmd and feeds the resulting messages back into the app until
// nothing but background work remains
func (h *harness) run(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}

	for steps := 0; len(queue) > 0 && steps < 500; steps++ {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := execute(next)
		if !ok {
			continue
		}

		switch msg := msg.(type) {
		case nil, spinner.TickMsg, tea.QuitMsg:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		}

		_, cmd := h.app.Update(msg)
		queue = append(queue, cmd)
	}
}

func execute(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		return msg, true
	case <-time.After(cmdDeadline):
		return nil, false
	}
}

func (h *harness) send(msg tea.Msg) {
	_, cmd := h.app.Update(msg)
	h.run(cmd)
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}

	k, alt := strings.CutPrefix(k, "alt+")
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k), Alt: alt}
}
