package tui

import (
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type homePage struct {
	env *env
}

func newHomePage(e *env, _ map[string]string, _ url.Values) Page {
	return &homePage{env: e}
}

func (h *homePage) Init() tea.Cmd {
	return nil
}

func (h *homePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "l":
			return h, navigate("/list")
		case "p":
			return h, navigate("/popular")
		}
	}
	return h, nil
}

func (h *homePage) View() string {
	p := h.env.p
	state := h.env.store.Snapshot()

	var b strings.Builder
	b.WriteString(navKeyStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(p.Sprintf("home.tagline")))
	b.WriteString("\n")

	if state.Authenticated && state.User != nil {
		b.WriteString(valueStyle.Render(p.Sprintf("home.greeting", state.User.Name)))
		b.WriteString("\n\n")
	}

	b.WriteString(infoStyle.Render(p.Sprintf("home.help")))

	return b.String()
}
