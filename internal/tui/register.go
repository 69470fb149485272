package tui

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"codeberg.org/foodmap/client/internal/apiclient"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerConfirm
)

const (
	minNameLength     = 2
	minPasswordLength = 6
)

type registerPage struct {
	env  *env
	form form
	done bool
}

func newRegisterPage(e *env, _ map[string]string, _ url.Values) Page {
	return &registerPage{
		env: e,
		form: newForm(
			formField{label: e.p.Sprintf("field.name"), limit: 50},
			formField{label: e.p.Sprintf("field.email"), placeholder: "you@ajou.ac.kr"},
			formField{label: e.p.Sprintf("field.password"), secret: true},
			formField{label: e.p.Sprintf("field.password_confirm"), secret: true},
		),
	}
}

func (r *registerPage) Init() tea.Cmd {
	if r.env.store.Snapshot().Authenticated {
		return replace(afterLoginPath)
	}
	return r.form.setFocus(0)
}

func (r *registerPage) capturesInput() bool {
	return true
}

func (r *registerPage) finish() tea.Cmd {
	if r.done {
		return nil
	}
	r.done = true

	return tea.Batch(replace(afterLoginPath), showFlash(r.env.p.Sprintf("flash.registered"), false))
}

func (r *registerPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case formSubmitMsg:
		return r, r.submit()

	case authDoneMsg:
		r.form.busy = false
		if msg.err != nil {
			r.form.err = apiclient.UserMessage(msg.err, r.env.p.Sprintf("error.register"))
			return r, nil
		}
		return r, r.finish()

	case SessionChangedMsg:
		if r.form.busy {
			// the pending authDoneMsg navigates
			return r, nil
		}
		if r.env.store.Snapshot().Authenticated {
			return r, replace(afterLoginPath)
		}
		return r, nil

	case tea.KeyMsg:
		if msg.String() == "esc" && !r.form.busy {
			return r, back
		}
	}

	return r, r.form.update(msg)
}

// validates the form and returns the first problem, or "" when valid
func (r *registerPage) validate() string {
	p := r.env.p
	name := r.form.value(registerName)
	email := r.form.value(registerEmail)
	password := r.form.rawValue(registerPassword)
	confirm := r.form.rawValue(registerConfirm)

	switch {
	case name == "" || email == "" || password == "":
		return p.Sprintf("validate.required")
	case utf8.RuneCountInString(name) < minNameLength:
		return p.Sprintf("validate.name_length", minNameLength)
	case !validEmail(email):
		return p.Sprintf("validate.email")
	case utf8.RuneCountInString(password) < minPasswordLength:
		return p.Sprintf("validate.password_length", minPasswordLength)
	case password != confirm:
		return p.Sprintf("validate.password_mismatch")
	}

	return ""
}

func (r *registerPage) submit() tea.Cmd {
	if problem := r.validate(); problem != "" {
		r.form.err = problem
		return nil
	}

	r.form.err = ""
	r.form.busy = true

	return register(r.env.store, r.form.value(registerName), r.form.value(registerEmail), r.form.rawValue(registerPassword))
}

func (r *registerPage) View() string {
	p := r.env.p

	var b strings.Builder
	b.WriteString(headingStyle.Render(p.Sprintf("register.title")))
	b.WriteString("\n")
	b.WriteString(r.form.view(p.Sprintf("register.busy")))
	b.WriteString(helpStyle.Render(p.Sprintf("register.help")))

	return b.String()
}
