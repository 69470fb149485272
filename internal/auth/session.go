package auth

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth/gothic"
)

// creates the cookie store backing the foodmap session
func NewSessionStore(secret, baseURL string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = sessionOptions(baseURL, sessionMaxAge)

	return store
}

// points gothic at its own short-lived cookie store for OAuth state
func ConfigureGothic(secret, baseURL string) {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = sessionOptions(baseURL, oauthStateMaxAge)

	gothic.Store = store
}

// binds userID to the session cookie
func SignIn(store sessions.Store, w http.ResponseWriter, r *http.Request, userID string) error {
	session, err := store.Get(r, SessionName)
	if err != nil && session == nil {
		return err
	}

	session.Values[sessionUserKey] = userID

	return session.Save(r, w)
}

// expires the session cookie
func SignOut(store sessions.Store, w http.ResponseWriter, r *http.Request) error {
	session, err := store.Get(r, SessionName)
	if err != nil && session == nil {
		return err
	}

	delete(session.Values, sessionUserKey)
	session.Options.MaxAge = -1

	return session.Save(r, w)
}

// returns the user id bound to the request's session, if any
func SessionUserID(store sessions.Store, r *http.Request) (string, bool) {
	session, err := store.Get(r, SessionName)
	if err != nil || session == nil {
		return "", false
	}

	userID, ok := session.Values[sessionUserKey].(string)
	if !ok || userID == "" {
		return "", false
	}

	return userID, true
}

func sessionOptions(baseURL string, maxAge int) *sessions.Options {
	isHTTPS := strings.HasPrefix(baseURL, "https://")

	sameSite := http.SameSiteLaxMode
	if isHTTPS {
		// the deployed frontend lives on another origin
		sameSite = http.SameSiteNoneMode
	}

	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   isHTTPS,
		SameSite: sameSite,
	}
}

// remembers where an OAuth flow should return to
func RememberRedirect(store sessions.Store, w http.ResponseWriter, r *http.Request, redirect string) error {
	session, err := store.Get(r, oauthRedirectName)
	if err != nil && session == nil {
		return err
	}

	session.Values[oauthRedirectKey] = redirect
	session.Options.MaxAge = oauthStateMaxAge

	return session.Save(r, w)
}

// returns and forgets the remembered OAuth return target
func TakeRedirect(store sessions.Store, w http.ResponseWriter, r *http.Request) string {
	session, err := store.Get(r, oauthRedirectName)
	if err != nil || session == nil {
		return ""
	}

	redirect, _ := session.Values[oauthRedirectKey].(string)

	session.Options.MaxAge = -1
	session.Save(r, w) //nolint:errcheck,gosec // best-effort, cookie also expires on its own

	return redirect
}
