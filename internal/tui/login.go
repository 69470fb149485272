package tui

import (
	"net/mail"
	"net/url"
	"strings"

	"codeberg.org/foodmap/client/internal/apiclient"
	"codeberg.org/foodmap/client/internal/guard"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"
)

const (
	loginEmail = iota
	loginPassword
)

// afterLoginPath is used when the login location carries no return path
const afterLoginPath = "/dashboard"

type oauthKey struct {
	key      string
	provider apiclient.Provider
}

var oauthKeys = []oauthKey{
	{key: "ctrl+g", provider: apiclient.ProviderGoogle},
	{key: "ctrl+n", provider: apiclient.ProviderNaver},
}

type loginPage struct {
	env *env

	// the login location itself, consulted for the return path
	location string
	notice   string

	form      form
	providers []apiclient.Provider

	oauth    oauthListener
	oauthURL string
	viaOAuth bool
}

func newLoginPage(e *env, _ map[string]string, query url.Values) Page {
	location := guard.DefaultLoginPath
	if len(query) > 0 {
		location += "?" + query.Encode()
	}

	lp := &loginPage{
		env:      e,
		location: location,
		form: newForm(
			formField{label: e.p.Sprintf("field.email"), placeholder: "you@ajou.ac.kr"},
			formField{label: e.p.Sprintf("field.password"), secret: true},
		),
	}

	if query.Get("error") != "" {
		lp.notice = e.p.Sprintf("error.oauth")
	}

	return lp
}

func (lp *loginPage) Init() tea.Cmd {
	if lp.env.store.Snapshot().Authenticated {
		return replace(lp.destination())
	}

	return tea.Batch(lp.form.setFocus(0), loadProviders(lp.env.api))
}

func (lp *loginPage) capturesInput() bool {
	return true
}

func (lp *loginPage) close() {
	if lp.oauth != nil {
		lp.oauth.Close() //nolint:errcheck
		lp.oauth = nil
	}
}

func (lp *loginPage) destination() string {
	return guard.ReturnLocation(lp.location, afterLoginPath)
}

// leaves the login page for the return location
func (lp *loginPage) finish() tea.Cmd {
	return tea.Batch(replace(lp.destination()), showFlash(lp.env.p.Sprintf("flash.logged_in"), false))
}

func (lp *loginPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	p := lp.env.p

	switch msg := msg.(type) {
	case SessionChangedMsg:
		if lp.env.store.Snapshot().Authenticated {
			return lp, lp.finish()
		}
		return lp, nil

	case providersLoadedMsg:
		lp.providers = msg.providers
		return lp, nil

	case formSubmitMsg:
		return lp, lp.submit()

	case authDoneMsg:
		lp.form.busy = false
		lp.oauth, lp.oauthURL = nil, ""
		viaOAuth := lp.viaOAuth
		lp.viaOAuth = false

		if msg.err != nil {
			if viaOAuth {
				lp.form.err = oauthFailure(lp.env, msg.err)
			} else {
				lp.form.err = apiclient.UserMessage(msg.err, p.Sprintf("error.login"))
			}
			return lp, nil
		}
		return lp, lp.finish()

	case oauthStartedMsg:
		if msg.err != nil {
			lp.form.busy = false
			lp.viaOAuth = false
			lp.form.err = p.Sprintf("error.oauth")
			return lp, nil
		}
		lp.oauth, lp.oauthURL = msg.listener, msg.url
		return lp, finishOAuth(lp.env, msg.listener)

	case tea.KeyMsg:
		if lp.oauth != nil {
			if msg.String() == "esc" {
				lp.close()
			}
			return lp, nil
		}

		if msg.String() == "esc" {
			return lp, back
		}

		if provider, ok := oauthProviderFor(msg.String()); ok && lp.offers(provider) && !lp.form.busy {
			lp.form.err = ""
			lp.form.busy = true
			lp.viaOAuth = true
			return lp, startOAuth(lp.env, provider)
		}
	}

	return lp, lp.form.update(msg)
}

func (lp *loginPage) submit() tea.Cmd {
	p := lp.env.p
	email := lp.form.value(loginEmail)
	password := lp.form.rawValue(loginPassword)

	switch {
	case email == "" || password == "":
		lp.form.err = p.Sprintf("validate.required")
		return nil
	case !validEmail(email):
		lp.form.err = p.Sprintf("validate.email")
		return nil
	}

	lp.form.err = ""
	lp.form.busy = true

	return login(lp.env.store, email, password)
}

func (lp *loginPage) offers(provider apiclient.Provider) bool {
	for _, pr := range lp.providers {
		if pr == provider {
			return true
		}
	}
	return false
}

func (lp *loginPage) View() string {
	p := lp.env.p

	var b strings.Builder
	b.WriteString(headingStyle.Render(p.Sprintf("login.title")))
	b.WriteString("\n")

	if dest := lp.destination(); dest != afterLoginPath {
		b.WriteString(infoStyle.Render(p.Sprintf("login.return_to", dest)))
		b.WriteString("\n\n")
	}

	if lp.notice != "" {
		b.WriteString(errorStyle.Render(lp.notice))
		b.WriteString("\n\n")
	}

	if lp.oauth != nil {
		b.WriteString(valueStyle.Render(p.Sprintf("login.oauth_waiting")))
		b.WriteString("\n\n")
		b.WriteString(infoStyle.Render(lp.oauthURL))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(p.Sprintf("login.oauth_help")))
		return b.String()
	}

	b.WriteString(lp.form.view(p.Sprintf("login.busy")))

	if len(lp.providers) > 0 {
		b.WriteString(subtitleStyle.Render(p.Sprintf("login.oauth_divider")))
		b.WriteString("\n")
		for _, k := range oauthKeys {
			if lp.offers(k.provider) {
				b.WriteString(navKeyStyle.Render(k.key) + " " + navItemStyle.Render(providerLabel(p, k.provider)) + "\n")
			}
		}
	}

	b.WriteString(helpStyle.Render(p.Sprintf("login.help")))

	return b.String()
}

func oauthProviderFor(key string) (apiclient.Provider, bool) {
	for _, k := range oauthKeys {
		if k.key == key {
			return k.provider, true
		}
	}
	return "", false
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

func providerLabel(p *message.Printer, provider apiclient.Provider) string {
	switch provider {
	case apiclient.ProviderGoogle:
		return p.Sprintf("provider.google")
	case apiclient.ProviderNaver:
		return p.Sprintf("provider.naver")
	default:
		return p.Sprintf("provider.local")
	}
}
