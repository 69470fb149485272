package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"codeberg.org/foodmap/client/internal/config"
	"codeberg.org/foodmap/client/internal/devapi"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// records the Cookie header seen per request path
type cookieRecorder struct {
	mu   sync.Mutex
	seen map[string]string
	next http.Handler
}

func (r *cookieRecorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.seen[req.Method+" "+req.URL.Path] = req.Header.Get("Cookie")
	r.mu.Unlock()

	r.next.ServeHTTP(w, req)
}

func (r *cookieRecorder) cookie(key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.seen[key]
}

func newDevAPI(t *testing.T) (*devapi.Server, *cookieRecorder, *httptest.Server) {
	t.Helper()

	server, err := devapi.NewServer(&config.DevAPIConfig{
		Environment:    "test",
		BaseURL:        "http://localhost:5000",
		SessionSecret:  "session-secret-for-tests",
		JWTSecret:      "jwt-secret-for-tests",
		AllowedOrigins: []string{"http://localhost:5173"},
		LoginRateLimit: "1000-M",
		AdminEmail:     "admin@ajou.ac.kr",
		AdminPassword:  "admin1234",
	})
	require.NoError(t, err)

	recorder := &cookieRecorder{seen: make(map[string]string), next: server.Handler()}
	ts := httptest.NewServer(recorder)
	t.Cleanup(ts.Close)

	return server, recorder, ts
}

func newClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(Options{BaseURL: baseURL, Timeout: 5 * time.Second, Language: "ko"})
	require.NoError(t, err)

	return client
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestLogin_SessionCookieRoundTrip(t *testing.T) {
	_, _, ts := newDevAPI(t)
	client := newClient(t, ts.URL)
	ctx := context.Background()

	user, ok, err := client.CurrentSession(ctx)
	require.NoError(t, err, "no session is not an error")
	assert.False(t, ok)
	assert.Nil(t, user)

	user, err = client.Login(ctx, "admin@ajou.ac.kr", "admin1234")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, user.Role)
	assert.Equal(t, ProviderLocal, user.Provider)

	user, ok, err = client.CurrentSession(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "admin@ajou.ac.kr", user.Email)

	require.NoError(t, client.Logout(ctx))

	_, ok, err = client.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogin_BadCredentialsCarriesServerMessage(t *testing.T) {
	_, _, ts := newDevAPI(t)
	client := newClient(t, ts.URL)

	_, err := client.Login(context.Background(), "admin@ajou.ac.kr", "wrong")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, KindValidation, authErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	assert.Equal(t, "이메일 또는 비밀번호가 올바르지 않습니다.", authErr.Message)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, _, ts := newDevAPI(t)
	client := newClient(t, ts.URL)
	ctx := context.Background()

	user, err := client.Register(ctx, "홍길동", "hong@ajou.ac.kr", "secret123")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, user.Role)

	_, err = newClient(t, ts.URL).Register(ctx, "홍길동", "hong@ajou.ac.kr", "secret123")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
	assert.Equal(t, "이미 가입된 이메일입니다.", UserMessage(err, ""))
}

func TestPublicReads_SendNoCookies(t *testing.T) {
	_, recorder, ts := newDevAPI(t)
	client := newClient(t, ts.URL)
	ctx := context.Background()

	_, err := client.Login(ctx, "admin@ajou.ac.kr", "admin1234")
	require.NoError(t, err)

	list, err := client.Restaurants(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Empty(t, recorder.cookie("GET /api/restaurants"))

	detail, err := client.Restaurant(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, list[0].Name, detail.Name)
	assert.Empty(t, recorder.cookie("GET /api/restaurants/"+list[0].ID))

	popular, err := client.PopularRestaurants(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, popular)
	assert.Empty(t, recorder.cookie("GET /api/restaurants/popular"))

	_, _, err = client.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Contains(t, recorder.cookie("GET /api/auth/me"), "foodmap_session=")
}

func TestAdminOperations(t *testing.T) {
	_, _, ts := newDevAPI(t)
	ctx := context.Background()

	student := newClient(t, ts.URL)
	_, err := student.Register(ctx, "학생", "student@ajou.ac.kr", "secret123")
	require.NoError(t, err)

	submission, err := student.CreateSubmission(ctx, Submission{
		RestaurantName:  "새 식당",
		Category:        "한식",
		Location:        "후문",
		RecommendedMenu: []string{"국밥"},
		Review:          "든든함",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, submission.Status)

	_, err = student.ListUsers(ctx)
	assert.True(t, IsKind(err, KindValidation), "non-admins are rejected")

	admin := newClient(t, ts.URL)
	_, err = admin.Login(ctx, "admin@ajou.ac.kr", "admin1234")
	require.NoError(t, err)

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	pending, err := admin.ListSubmissions(ctx, StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	created, err := admin.ApproveSubmission(ctx, pending[0])
	require.NoError(t, err)
	assert.Equal(t, "새 식당", created.Name)

	pending, err = admin.ListSubmissions(ctx, StatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	var studentID string
	for _, u := range users {
		if u.Email == "student@ajou.ac.kr" {
			studentID = u.ID
		}
	}

	promoted, err := admin.ChangeUserRole(ctx, studentID, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, promoted.Role)

	require.NoError(t, admin.DeleteRestaurant(ctx, created.ID))
	_, err = admin.Restaurant(ctx, created.ID)
	assert.True(t, IsKind(err, KindValidation))
}

func TestExchangeHandoff(t *testing.T) {
	server, _, ts := newDevAPI(t)
	ctx := context.Background()

	admin, err := server.Users().FindByEmail(ctx, "admin@ajou.ac.kr")
	require.NoError(t, err)

	token, err := server.IssueHandoff(admin.ID)
	require.NoError(t, err)

	client := newClient(t, ts.URL)
	user, err := client.ExchangeHandoff(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, user.ID)

	_, ok, err := client.CurrentSession(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = newClient(t, ts.URL).ExchangeHandoff(ctx, token)
	assert.True(t, IsKind(err, KindValidation))
}

func TestHealthAndProviders(t *testing.T) {
	_, _, ts := newDevAPI(t)
	client := newClient(t, ts.URL)

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)

	providers, err := client.Providers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, providers)
}

func TestTimeout_IsTransportError(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	client, err := New(Options{BaseURL: slow.URL, Timeout: 50 * time.Millisecond, Language: "en"})
	require.NoError(t, err)

	_, _, err = client.CurrentSession(context.Background())
	require.Error(t, err, "transport failures are not treated as a missing session")
	assert.True(t, IsKind(err, KindTransport))
	assert.Equal(t, "The request timed out.", UserMessage(err, ""))
}

func TestUnreachable_IsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client := newClient(t, url)

	_, err := client.Login(context.Background(), "a@ajou.ac.kr", "secret123")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindTransport))
	assert.Equal(t, "로그인 중 오류가 발생했습니다.", UserMessage(err, ""))
}

func TestStatusError_FallsBackToLocalizedMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := newClient(t, ts.URL)

	_, err := client.Register(context.Background(), "a", "a@ajou.ac.kr", "secret123")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindServer))
	assert.Equal(t, "회원가입 중 오류가 발생했습니다.", UserMessage(err, ""))
}

func TestOAuthURL(t *testing.T) {
	client := newClient(t, "http://localhost:5000/")

	assert.Equal(t, "http://localhost:5000/api/auth/google", client.OAuthURL(ProviderGoogle, ""))
	assert.Equal(t,
		"http://localhost:5000/api/auth/naver?redirect=http%3A%2F%2F127.0.0.1%3A4000%2Fcallback",
		client.OAuthURL(ProviderNaver, "http://127.0.0.1:4000/callback"),
	)
}

func TestCredentialedCallWithoutSession_IsUnauthorized(t *testing.T) {
	_, _, ts := newDevAPI(t)
	client := newClient(t, ts.URL)

	_, err := client.ListUsers(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	_, err = client.Login(context.Background(), "admin@ajou.ac.kr", "admin1234")
	require.NoError(t, err)

	_, err = client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.False(t, IsUnauthorized(nil))
}

func TestApproveSubmission_StatusFailureReportsPublishedRestaurant(t *testing.T) {
	r := gin.New()
	r.POST("/api/restaurants", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": "r-77", "name": "새 식당", "category": "한식", "location": "후문"}})
	})
	r.PUT("/api/submissions/:id", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "db unavailable"})
	})
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	client := newClient(t, ts.URL)
	created, err := client.ApproveSubmission(context.Background(), Submission{ID: "s-1", RestaurantName: "새 식당", Category: "한식", Location: "후문"})
	require.Error(t, err)

	var partial *ApprovalError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "r-77", partial.Restaurant.ID)
	assert.Equal(t, "r-77", created.ID)
	assert.True(t, IsKind(err, KindServer))
}
