package tui

import (
	"strings"

	"codeberg.org/foodmap/client/internal/apiclient"
	"codeberg.org/foodmap/client/internal/guard"
	"codeberg.org/foodmap/client/internal/logger"
	"codeberg.org/foodmap/client/internal/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const maxHistory = 50

func NewApp(deps Deps) *Model {
	e := &env{
		store:        deps.Store,
		api:          deps.API,
		p:            deps.Printer,
		openURL:      deps.OpenURL,
		oauthTimeout: deps.OAuthTimeout,
	}

	start := deps.StartLocation
	if start == "" {
		start = "/"
	}

	m := &Model{
		env:       e,
		guard:     deps.Guard,
		routes:    routeTable(),
		start:     start,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(navKeyStyle)),
		help:      help.New(),
		keys:      newKeyMap(),
		sessionCh: make(chan struct{}, 1),
	}

	// coalesce bursts of state changes into a single pending notification
	ch := m.sessionCh
	m.unsubscribe = deps.Store.Subscribe(func(session.State) {
		select {
		case ch <- struct{}{}:
		default:
		}
	})

	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		waitForSession(m.sessionCh),
		m.navigate(m.start, true),
	}

	if m.env.store.Phase() == session.PhaseUninitialized {
		cmds = append(cmds, initializeSession(m.env.store))
	}

	if hc, ok := m.env.api.(healthChecker); ok {
		cmds = append(cmds, checkHealth(hc))
	}

	return tea.Batch(cmds...)
}

// stops listening to the session store and releases the current page
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.dropPage()
}

// current location, path plus query
func (m *Model) Location() string {
	return m.location
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handle(msg)

	// the guard is re-evaluated after every update so a session change can
	// never leave a protected page on screen
	return m, tea.Batch(cmd, m.enforce())
}

func (m *Model) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pageMsg:
		if msg.id != m.pageID {
			return nil
		}

		switch inner := msg.msg.(type) {
		case tea.BatchMsg:
			cmds := make([]tea.Cmd, 0, len(inner))
			for _, c := range inner {
				cmds = append(cmds, m.wrap(c))
			}
			return tea.Batch(cmds...)
		case NavigateMsg, backMsg, flashMsg:
			return m.handle(inner)
		}

		cmd := m.toPage(msg.msg)

		// a 401 means the cookie died server-side; the refresh moves the
		// store to anonymous and the guard takes it from there
		if err := resultErr(msg.msg); apiclient.IsUnauthorized(err) && !m.refreshing {
			m.refreshing = true
			logger.Info("request rejected as unauthenticated, re-checking session", "location", m.location)
			return tea.Batch(cmd, refreshSession(m.env.store))
		}

		return cmd

	case NavigateMsg:
		return m.navigate(msg.Location, msg.Replace)

	case backMsg:
		return m.back()

	case flashMsg:
		m.flash, m.flashIsErr = msg.text, msg.isErr
		return nil

	case SessionChangedMsg:
		cmd := m.enforce()
		return tea.Batch(waitForSession(m.sessionCh), cmd, m.toPage(msg))

	case sessionCheckedMsg:
		m.refreshing = false
		return nil

	case healthMsg:
		if msg.err != nil {
			logger.Warn("api health check failed", "error", msg.err)
			m.flash, m.flashIsErr = m.env.p.Sprintf("flash.server_unreachable"), true
			return nil
		}
		m.health = msg.health.Service + " " + msg.health.Version
		return nil

	case tea.WindowSizeMsg:
		m.env.width, m.env.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m.toPage(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}

	return m.toPage(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.flash = ""

	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	if link, ok := m.linkFor(msg); ok {
		return m.activate(link)
	}

	// pending and denied screens have no page to receive keys
	if m.page == nil {
		if key.Matches(msg, m.keys.Back) {
			return m.back()
		}
		return nil
	}

	return m.toPage(msg)
}

// resolves a key press to a navigation link. alt+digit always works; a bare
// digit only when the page is not taking text input.
func (m *Model) linkFor(msg tea.KeyMsg) (Link, bool) {
	s := msg.String()

	k, alt := strings.CutPrefix(s, "alt+")
	if !alt {
		if c, ok := m.page.(inputCapturer); ok && c.capturesInput() {
			return Link{}, false
		}
	}

	return linkForKey(Links(m.env.store.Snapshot(), m.env.p), k)
}

func (m *Model) activate(link Link) tea.Cmd {
	switch link.Kind {
	case LinkLogout:
		return tea.Batch(logout(m.env.store), showFlash(m.env.p.Sprintf("flash.logged_out"), false))
	case LinkNavigate:
		return m.navigate(link.Path, false)
	}
	return nil
}

// moves to location. the current location is pushed onto the history
// unless replace is set.
func (m *Model) navigate(location string, replace bool) tea.Cmd {
	if !replace && m.location != "" && m.location != location {
		m.history = append(m.history, m.location)
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
	}

	path, query := splitLocation(location)

	m.dropPage()
	m.location = location
	m.route, m.params = matchRoute(m.routes, path)
	m.query = query
	m.pageID++

	logger.Debug("navigate", "location", location, "replace", replace)

	return m.enforce()
}

func (m *Model) back() tea.Cmd {
	if len(m.history) == 0 {
		return m.navigate("/", true)
	}

	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]

	return m.navigate(prev, true)
}

// applies the guard decision for the current location. the page is built
// only once access is allowed and dropped as soon as it is not.
func (m *Model) enforce() tea.Cmd {
	d := m.guard.Check(m.route.policy, m.location)

	switch d.Outcome {
	case guard.Redirect:
		// the protected location is replaced, so back never returns to it
		return m.navigate(d.Location, true)

	case guard.Allow:
		m.decision = d
		if m.page == nil {
			m.page = m.route.build(m.env, m.params, m.query)
			return m.wrap(m.page.Init())
		}

	default:
		m.decision = d
		m.dropPage()
	}

	return nil
}

func (m *Model) dropPage() {
	if c, ok := m.page.(pageCloser); ok {
		c.close()
	}
	m.page = nil
}

func (m *Model) toPage(msg tea.Msg) tea.Cmd {
	if m.page == nil {
		return nil
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)

	return m.wrap(cmd)
}

// tags the result of cmd with the current page so results for abandoned
// pages are dropped
func (m *Model) wrap(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}

	id := m.pageID
	return func() tea.Msg {
		msg := cmd()
		if msg == nil {
			return nil
		}
		return pageMsg{id: id, msg: msg}
	}
}

func (m *Model) View() string {
	state := m.env.store.Snapshot()
	path, _ := splitLocation(m.location)

	var b strings.Builder
	b.WriteString(renderNav(Links(state, m.env.p), state, path, m.env.p, m.env.width))
	b.WriteString("\n")
	b.WriteString(m.body())
	b.WriteString("\n")

	if m.flash != "" {
		style := successStyle
		if m.flashIsErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.flash))
		b.WriteString("\n")
	}

	footer := m.help.View(m.keys)
	if m.health != "" {
		footer += "  " + infoStyle.Render(m.health)
	}
	b.WriteString(helpStyle.Render(footer))

	return b.String()
}

func (m *Model) body() string {
	// evaluated again at render time; a stale page is never drawn
	d := m.guard.Check(m.route.policy, m.location)

	switch d.Outcome {
	case guard.Pending:
		return pendingView(m.env, m.spinner.View())
	case guard.Deny:
		return deniedView(m.env)
	case guard.Redirect:
		return infoStyle.Render(m.env.p.Sprintf("guard.redirecting"))
	}

	if m.page == nil {
		return ""
	}

	return m.page.View()
}

func pendingView(e *env, spin string) string {
	return cardStyle.Render(spin + " " + e.p.Sprintf("guard.pending"))
}

func deniedView(e *env) string {
	return cardStyle.Render(
		errorStyle.Render(e.p.Sprintf("guard.denied_title")) + "\n\n" +
			e.p.Sprintf("guard.denied_body") + "\n\n" +
			infoStyle.Render(e.p.Sprintf("guard.denied_help")),
	)
}
