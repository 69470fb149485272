package devapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/foodmap/client/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.DevAPIConfig {
	return &config.DevAPIConfig{
		Environment:    "test",
		BaseURL:        "http://localhost:5000",
		SessionSecret:  "session-secret-for-tests",
		JWTSecret:      "jwt-secret-for-tests",
		AllowedOrigins: []string{"http://localhost:5173"},
		LoginRateLimit: "100-M",
		AdminEmail:     "admin@ajou.ac.kr",
		AdminPassword:  "admin1234",
	}
}

type harness struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newHarness(t *testing.T, cfg *config.DevAPIConfig) *harness {
	t.Helper()

	server, err := NewServer(cfg)
	require.NoError(t, err)

	return &harness{t: t, handler: server.Handler()}
}

func (h *harness) do(method, path string, body any) *httptest.ResponseRecorder {
	h.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range h.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			h.cookies = nil
			continue
		}
		h.cookies = []*http.Cookie{c}
	}

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

func TestHealth(t *testing.T) {
	h := newHarness(t, testConfig())

	w := h.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}

func TestAuthFlow(t *testing.T) {
	h := newHarness(t, testConfig())

	w := h.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])

	w = h.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name": "홍길동", "email": "hong@ajou.ac.kr", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "user", body["user"].(map[string]any)["userType"])
	assert.NotContains(t, w.Body.String(), "PasswordHash")

	w = h.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hong@ajou.ac.kr", decode(t, w)["user"].(map[string]any)["email"])

	w = h.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "hong@ajou.ac.kr", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "이메일 또는 비밀번호가 올바르지 않습니다.", decode(t, w)["message"])

	w = h.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name": "홍길동", "email": "hong@ajou.ac.kr", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminRoutes(t *testing.T) {
	h := newHarness(t, testConfig())

	w := h.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name": "학생", "email": "student@ajou.ac.kr", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	studentID := decode(t, w)["user"].(map[string]any)["id"].(string)

	assert.Equal(t, http.StatusForbidden, h.do(http.MethodGet, "/api/users/all", nil).Code)

	w = h.do(http.MethodPost, "/api/submissions", map[string]any{
		"restaurantName": "새 식당", "category": "한식", "location": "후문",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	submission := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "pending", submission["status"])
	assert.Equal(t, "student@ajou.ac.kr", submission["submitterEmail"])

	h.cookies = nil
	w = h.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "admin@ajou.ac.kr", "password": "admin1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodGet, "/api/users/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["users"], 2)

	w = h.do(http.MethodPut, "/api/users/"+studentID+"/type", map[string]string{"userType": "admin"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", decode(t, w)["user"].(map[string]any)["userType"])

	w = h.do(http.MethodGet, "/api/submissions?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"], 1)

	w = h.do(http.MethodPut, "/api/submissions/"+submission["id"].(string), map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodGet, "/api/submissions?status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRestaurants_PublicReadsAdminWrites(t *testing.T) {
	h := newHarness(t, testConfig())

	w := h.do(http.MethodGet, "/api/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)["data"].([]any)
	require.Len(t, list, len(seedRestaurants))

	id := list[0].(map[string]any)["id"].(string)

	w = h.do(http.MethodGet, "/api/restaurants/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/api/restaurants/missing", nil).Code)

	w = h.do(http.MethodGet, "/api/restaurants/popular", nil)
	require.Equal(t, http.StatusOK, w.Code)
	popular := decode(t, w)["data"].([]any)
	assert.Equal(t, "송림식당", popular[0].(map[string]any)["name"])

	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodDelete, "/api/restaurants/"+id, nil).Code)

	h.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@ajou.ac.kr", "password": "admin1234"})
	assert.Equal(t, http.StatusOK, h.do(http.MethodDelete, "/api/restaurants/"+id, nil).Code)
}

func TestLoginRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.LoginRateLimit = "2-M"
	h := newHarness(t, cfg)

	creds := map[string]string{"email": "nobody@ajou.ac.kr", "password": "whatever"}

	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodPost, "/api/auth/login", creds).Code)
	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodPost, "/api/auth/login", creds).Code)

	w := h.do(http.MethodPost, "/api/auth/login", creds)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "too_many_requests", decode(t, w)["error"])
}

func TestHandoff(t *testing.T) {
	server, err := NewServer(testConfig())
	require.NoError(t, err)
	h := &harness{t: t, handler: server.Handler()}

	admin, err := server.Users().FindByEmail(t.Context(), "admin@ajou.ac.kr")
	require.NoError(t, err)

	token, err := server.IssueHandoff(admin.ID)
	require.NoError(t, err)

	w := h.do(http.MethodPost, "/api/auth/handoff", map[string]string{"token": token})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", decode(t, w)["user"].(map[string]any)["userType"])

	h.cookies = nil
	w = h.do(http.MethodPost, "/api/auth/handoff", map[string]string{"token": token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBeginAuth_UnconfiguredProvider(t *testing.T) {
	h := newHarness(t, testConfig())

	w := h.do(http.MethodGet, "/api/auth/google?redirect=http://127.0.0.1:9999/callback", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "provider_unavailable", decode(t, w)["error"])

	w = h.do(http.MethodGet, "/api/auth/providers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["providers"])
}
