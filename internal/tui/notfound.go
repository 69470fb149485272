package tui

import (
	"net/url"

	tea "github.com/charmbracelet/bubbletea"
)

type notFoundPage struct {
	env *env
}

func newNotFoundPage(e *env, _ map[string]string, _ url.Values) Page {
	return &notFoundPage{env: e}
}

func (n *notFoundPage) Init() tea.Cmd {
	return nil
}

func (n *notFoundPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return n, back
		case "enter":
			return n, replace("/")
		}
	}
	return n, nil
}

func (n *notFoundPage) View() string {
	p := n.env.p
	return cardStyle.Render(
		headingStyle.Render(p.Sprintf("notfound.title")) + "\n" +
			p.Sprintf("notfound.body") + "\n\n" +
			infoStyle.Render(p.Sprintf("notfound.help")),
	)
}
