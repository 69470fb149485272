package tui

import (
	"strings"

	"codeberg.org/foodmap/client/internal/apiclient"
	"codeberg.org/foodmap/client/internal/session"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"
)

type LinkKind int

const (
	LinkNavigate LinkKind = iota
	LinkLogout
	// shown while the session check runs; not selectable
	LinkPlaceholder
)

// navigation shell entry
type Link struct {
	Key   string
	Label string
	Path  string
	Kind  LinkKind
}

// builds the navigation links for a session state. public links are always
// present; the session-dependent links follow the phase.
func Links(state session.State, p *message.Printer) []Link {
	links := []Link{
		{Key: "1", Label: p.Sprintf("nav.home"), Path: "/"},
		{Key: "2", Label: p.Sprintf("nav.list"), Path: "/list"},
		{Key: "3", Label: p.Sprintf("nav.popular"), Path: "/popular"},
	}

	switch {
	case state.Loading:
		links = append(links, Link{Label: p.Sprintf("nav.checking"), Kind: LinkPlaceholder})
	case state.Authenticated:
		links = append(links,
			Link{Key: "4", Label: p.Sprintf("nav.submit"), Path: "/submit"},
			Link{Key: "5", Label: p.Sprintf("nav.dashboard"), Path: "/dashboard"},
			Link{Key: "0", Label: p.Sprintf("nav.logout"), Kind: LinkLogout},
		)
	default:
		links = append(links,
			Link{Key: "4", Label: p.Sprintf("nav.login"), Path: "/login"},
			Link{Key: "5", Label: p.Sprintf("nav.register"), Path: "/register"},
		)
	}

	return links
}

// finds the selectable link bound to key
func linkForKey(links []Link, key string) (Link, bool) {
	for _, l := range links {
		if l.Kind != LinkPlaceholder && l.Key == key {
			return l, true
		}
	}
	return Link{}, false
}

func renderNav(links []Link, state session.State, currentPath string, p *message.Printer, width int) string {
	items := make([]string, 0, len(links))
	for _, l := range links {
		if l.Kind == LinkPlaceholder {
			items = append(items, infoStyle.Render(l.Label))
			continue
		}

		label := navItemStyle.Render(l.Label)
		if l.Kind == LinkNavigate && l.Path == currentPath {
			label = navActiveStyle.Render(l.Label)
		}
		items = append(items, navKeyStyle.Render(l.Key)+" "+label)
	}

	left := titleStyle.Render(p.Sprintf("app.title")) + "  " + strings.Join(items, "  ")

	right := ""
	if state.Authenticated && state.User != nil {
		right = state.User.Name
		if state.User.Role == apiclient.RoleAdmin {
			right += " " + p.Sprintf("nav.admin_badge")
		}
		right = valueStyle.Render(right)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return navBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}
