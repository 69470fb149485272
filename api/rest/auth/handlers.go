package auth

import (
	stderrors "errors"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"codeberg.org/foodmap/client/foodmap/users"
	"codeberg.org/foodmap/client/internal/auth"
	"codeberg.org/foodmap/client/internal/errors"
	"codeberg.org/foodmap/client/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
)

// RegisterHandler godoc
// @Summary Register a local account
// @Description Create an account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/auth/register [post]
func RegisterHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := deps.Users.Create(c.Request.Context(), req.Name, req.Email, hash, users.RoleUser)
		if stderrors.Is(err, users.ErrEmailTaken) {
			errors.Conflict(c, "이미 가입된 이메일입니다.")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to create user", err)
			return
		}

		if err := auth.SignIn(deps.Sessions, c.Writer, c.Request, user.ID); err != nil {
			errors.InternalError(c, "failed to start session", err)
			return
		}

		logger.Info("user registered", "user_id", user.ID)

		c.JSON(http.StatusCreated, AuthResponse{
			Success: true,
			User:    user,
			Message: "회원가입이 완료되었습니다.",
		})
	}
}

// LoginHandler godoc
// @Summary Local login
// @Description Verify email and password and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/auth/login [post]
func LoginHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := deps.Users.FindByEmail(c.Request.Context(), req.Email)
		if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
			errors.InvalidCredentials(c)
			return
		}

		if err := auth.SignIn(deps.Sessions, c.Writer, c.Request, user.ID); err != nil {
			errors.InternalError(c, "failed to start session", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Success: true,
			User:    user,
			Message: "로그인되었습니다.",
		})
	}
}

// HandoffHandler godoc
// @Summary Exchange an OAuth handoff token
// @Description Redeem a one-time token issued by the OAuth callback for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body HandoffRequest true "Handoff token"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/auth/handoff [post]
func HandoffHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HandoffRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		userID, err := deps.Handoff.Redeem(req.Token)
		if err != nil {
			logger.Warn("handoff token rejected", "error", err)
			errors.Unauthorized(c, "인증 토큰이 유효하지 않습니다.")
			return
		}

		user, err := deps.Users.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.Unauthorized(c, "인증 토큰이 유효하지 않습니다.")
			return
		}

		if err := auth.SignIn(deps.Sessions, c.Writer, c.Request, user.ID); err != nil {
			errors.InternalError(c, "failed to start session", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Success: true,
			User:    user,
			Message: "로그인되었습니다.",
		})
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Get the user bound to the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/auth/me [get]
func GetCurrentUserHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		user, err := deps.Users.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.Unauthorized(c, "")
			return
		}

		c.JSON(http.StatusOK, MeResponse{Success: true, User: user})
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/auth/logout [post]
func LogoutHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.SignOut(deps.Sessions, c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to clear session")
		}

		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to logout user from gothic session")
		}

		c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "로그아웃되었습니다."})
	}
}

// ProvidersHandler godoc
// @Summary List OAuth providers
// @Tags auth
// @Produce json
// @Success 200 {object} ProvidersResponse
// @Router /api/auth/providers [get]
func ProvidersHandler(c *gin.Context) {
	names := make([]string, 0, 2)
	for name := range goth.GetProviders() {
		names = append(names, name)
	}

	slices.Sort(names)

	c.JSON(http.StatusOK, ProvidersResponse{Success: true, Providers: names})
}

// BeginAuthHandler godoc
// @Summary Start OAuth authentication
// @Description Begin OAuth with google or naver. redirect is where the callback returns to.
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google, naver)
// @Param redirect query string false "Return URL (loopback or allowed origin)"
// @Success 307 {string} string "Redirect to OAuth provider"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/auth/{provider} [get]
func BeginAuthHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !auth.ProviderEnabled(provider) {
			errors.ProviderUnavailable(c, provider)
			return
		}

		redirect := c.Query("redirect")
		if redirect != "" && !isAllowedRedirect(redirect, deps.AllowedOrigins) {
			errors.BadRequest(c, "redirect target not allowed", nil)
			return
		}

		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Set("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		if err := auth.RememberRedirect(deps.Sessions, c.Writer, c.Request, redirect); err != nil {
			errors.InternalError(c, "failed to start authentication", err)
			return
		}

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary OAuth callback
// @Description Completes OAuth. Loopback redirects receive a handoff token, browser
// @Description redirects receive the session cookie directly.
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google, naver)
// @Success 302 {string} string "Redirect back to the client"
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/auth/{provider}/callback [get]
func CallbackHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		q := c.Request.URL.Query()
		q.Set("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.InternalError(c, "authentication failed", err)
			return
		}

		user, err := deps.Users.FindOrCreateByProvider(
			c.Request.Context(),
			gothUser.Provider,
			gothUser.UserID,
			gothUser.Email,
			displayName(gothUser),
			gothUser.AvatarURL,
		)

		if err != nil {
			errors.InternalError(c, "failed to create user", err)
			return
		}

		redirect := auth.TakeRedirect(deps.Sessions, c.Writer, c.Request)

		if isLoopback(redirect) {
			token, err := deps.Handoff.Issue(user.ID)
			if err != nil {
				errors.InternalError(c, "failed to issue handoff token", err)
				return
			}

			c.Redirect(http.StatusFound, withQuery(redirect, "token", token))
			return
		}

		if err := auth.SignIn(deps.Sessions, c.Writer, c.Request, user.ID); err != nil {
			errors.InternalError(c, "failed to start session", err)
			return
		}

		if redirect == "" && len(deps.AllowedOrigins) > 0 {
			redirect = deps.AllowedOrigins[0] + "/dashboard"
		}

		if redirect == "" {
			c.JSON(http.StatusOK, AuthResponse{Success: true, User: user})
			return
		}

		c.Redirect(http.StatusFound, redirect)
	}
}

// loopback targets are terminal clients; other targets must be an allowed origin
func isAllowedRedirect(raw string, origins []string) bool {
	if isLoopback(raw) {
		return true
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	origin := strings.ToLower(u.Scheme + "://" + u.Host)
	for _, allowed := range origins {
		if strings.EqualFold(strings.TrimRight(allowed, "/"), origin) {
			return true
		}
	}

	return false
}

func isLoopback(raw string) bool {
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "http" {
		return false
	}

	host := u.Hostname()
	return host == "127.0.0.1" || host == "::1" || host == "localhost"
}

func withQuery(raw, key, value string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()

	return u.String()
}

func displayName(u goth.User) string {
	if u.Name != "" {
		return u.Name
	}

	if u.NickName != "" {
		return u.NickName
	}

	return u.Email
}
