package tui

import (
	"net/url"
	"strings"

	"codeberg.org/foodmap/client/internal/apiclient"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardPage struct {
	env *env
}

func newDashboardPage(e *env, _ map[string]string, _ url.Values) Page {
	return &dashboardPage{env: e}
}

func (d *dashboardPage) Init() tea.Cmd {
	return nil
}

func (d *dashboardPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	admin := d.env.store.IsAdmin()

	switch msgKey.String() {
	case "l":
		return d, navigate("/list")
	case "s":
		return d, navigate("/submit")
	case "a":
		if admin {
			return d, navigate("/admin")
		}
	case "m":
		if admin {
			return d, navigate("/submissions")
		}
	case "o":
		return d, tea.Batch(logout(d.env.store), showFlash(d.env.p.Sprintf("flash.logged_out"), false))
	case "esc":
		return d, back
	}

	return d, nil
}

func (d *dashboardPage) View() string {
	p := d.env.p
	user := d.env.store.Snapshot().User
	if user == nil {
		return ""
	}

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	role := p.Sprintf("role.user")
	if user.Role == apiclient.RoleAdmin {
		role = p.Sprintf("role.admin")
	}

	joined := "-"
	if !user.CreatedAt.IsZero() {
		joined = user.CreatedAt.Local().Format(p.Sprintf("format.date"))
	}

	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(p.Sprintf("dashboard.greeting", user.Name)),
		row(p.Sprintf("field.email"), user.Email),
		row(p.Sprintf("field.provider"), providerLabel(p, user.Provider)),
		row(p.Sprintf("field.role"), role),
		row(p.Sprintf("field.joined"), joined),
	))

	actions := []string{
		navKeyStyle.Render("l") + " " + p.Sprintf("dashboard.action_list"),
		navKeyStyle.Render("s") + " " + p.Sprintf("dashboard.action_submit"),
	}
	if user.Role == apiclient.RoleAdmin {
		actions = append(actions,
			navKeyStyle.Render("a")+" "+p.Sprintf("dashboard.action_admin"),
			navKeyStyle.Render("m")+" "+p.Sprintf("dashboard.action_submissions"),
		)
	}
	actions = append(actions, navKeyStyle.Render("o")+" "+p.Sprintf("nav.logout"))

	var b strings.Builder
	b.WriteString(headingStyle.Render(p.Sprintf("dashboard.title")))
	b.WriteString("\n")
	b.WriteString(card)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(actions, "\n"))

	return b.String()
}
