package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

func init() {
	gin.SetMode(gin.TestMode)
}

func newIssuer(t *testing.T) *HandoffIssuer {
	t.Helper()

	issuer, err := NewHandoffIssuer(testSecret)
	require.NoError(t, err)

	return issuer
}

func TestHandoff_IssueAndRedeem(t *testing.T) {
	issuer := newIssuer(t)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have 3 parts")

	userID, err := issuer.Redeem(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestHandoff_SingleUse(t *testing.T) {
	issuer := newIssuer(t)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = issuer.Redeem(token)
	require.NoError(t, err)

	_, err = issuer.Redeem(token)
	assert.Error(t, err, "a handoff token must not be redeemable twice")
}

func TestHandoff_MissingSecret(t *testing.T) {
	_, err := NewHandoffIssuer("")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET not set")
}

func TestHandoff_ExpiredToken(t *testing.T) {
	issuer := newIssuer(t)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	issuer.now = func() time.Time { return time.Now().Add(handoffTTL + time.Minute) }

	_, err = issuer.Redeem(token)
	assert.Error(t, err, "expired token should be rejected")
}

func TestHandoff_TamperedToken(t *testing.T) {
	issuer := newIssuer(t)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	tampered := token[:len(token)-5] + "XXXXX"

	_, err = issuer.Redeem(tampered)
	assert.Error(t, err, "tampered token should be rejected")
}

func TestHandoff_WrongSecret(t *testing.T) {
	other, err := NewHandoffIssuer("different-secret-key")
	require.NoError(t, err)

	token, err := other.Issue("user-123")
	require.NoError(t, err)

	_, err = newIssuer(t).Redeem(token)
	assert.Error(t, err, "token signed with different secret should be rejected")
}

func TestHandoff_AlgorithmConfusionAttack(t *testing.T) {
	claims := HandoffClaims{
		UserID: "attacker",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType) //nolint:errcheck // test code

	_, err := newIssuer(t).Redeem(tokenString)
	assert.Error(t, err, "token with 'none' algorithm should be rejected")
}

func TestHandoff_MalformedToken(t *testing.T) {
	issuer := newIssuer(t)

	for _, token := range []string{
		"",
		"not.a.jwt",
		"only.two",
		"too.many.parts.in.this.token",
		"<script>alert('xss')</script>",
	} {
		_, err := issuer.Redeem(token)
		assert.Error(t, err, "malformed token '%s' should be rejected", token)
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "correct-horse"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword(nil, "correct-horse"))

	_, err = HashPassword("short")
	assert.Error(t, err)
}

type stubRoles map[string]bool

func (s stubRoles) IsAdmin(_ context.Context, userID string) (bool, error) {
	isAdmin, ok := s[userID]
	if !ok {
		return false, fmt.Errorf("user not found")
	}

	return isAdmin, nil
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()

	store := NewSessionStore(testSecret, "http://localhost:5000")
	roles := stubRoles{"admin-1": true, "user-1": false}

	r := gin.New()
	r.Use(SessionMiddleware(store))

	r.POST("/signin/:id", func(c *gin.Context) {
		require.NoError(t, SignIn(store, c.Writer, c.Request, c.Param("id")))
		c.Status(http.StatusNoContent)
	})
	r.POST("/signout", func(c *gin.Context) {
		require.NoError(t, SignOut(store, c.Writer, c.Request))
		c.Status(http.StatusNoContent)
	})
	r.GET("/me", RequireUser(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.String(http.StatusOK, userID)
	})
	r.GET("/admin", RequireAdmin(roles), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func signIn(t *testing.T, r *gin.Engine, userID string) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/signin/"+userID, nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	return cookies[0]
}

func get(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestSessionMiddleware(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", nil).Code)

	cookie := signIn(t, r, "user-1")

	w := get(r, "/me", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin", nil).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin", signIn(t, r, "user-1")).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", signIn(t, r, "admin-1")).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin", signIn(t, r, "ghost")).Code)
}

func TestSignOut_ExpiresCookie(t *testing.T) {
	r := newRouter(t)
	cookie := signIn(t, r, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/signout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestInitializeProviders_SkipsUnconfigured(t *testing.T) {
	names := InitializeProviders("http://localhost:5000",
		ProviderCredentials{ClientID: "id", ClientSecret: "secret"},
		ProviderCredentials{},
	)

	assert.Equal(t, []string{"google"}, names)
	assert.True(t, ProviderEnabled("google"))
	assert.False(t, ProviderEnabled("naver"))
}
