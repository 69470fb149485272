package tui

import (
	"fmt"
	"net/url"
	"strings"

	"codeberg.org/foodmap/client/internal/apiclient"
	tea "github.com/charmbracelet/bubbletea"
)

// ranked by likes as returned by the server
type popularPage struct {
	env *env

	restaurants []apiclient.Restaurant
	cursor      int
	loading     bool
	err         string
}

func newPopularPage(e *env, _ map[string]string, _ url.Values) Page {
	return &popularPage{env: e, loading: true}
}

func (pp *popularPage) Init() tea.Cmd {
	return loadPopular(pp.env.api)
}

func (pp *popularPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case restaurantsLoadedMsg:
		pp.loading = false
		if msg.err != nil {
			pp.err = apiclient.UserMessage(msg.err, pp.env.p.Sprintf("list.load_failed"))
			return pp, nil
		}
		pp.restaurants = msg.restaurants
		pp.cursor = 0

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if pp.cursor > 0 {
				pp.cursor--
			}
		case "down", "j":
			if pp.cursor < len(pp.restaurants)-1 {
				pp.cursor++
			}
		case "enter":
			if pp.cursor < len(pp.restaurants) {
				return pp, navigate("/restaurant/" + url.PathEscape(pp.restaurants[pp.cursor].ID))
			}
		case "esc":
			return pp, back
		}
	}

	return pp, nil
}

func (pp *popularPage) View() string {
	p := pp.env.p

	var b strings.Builder
	b.WriteString(headingStyle.Render(p.Sprintf("popular.title")))
	b.WriteString("\n")

	switch {
	case pp.loading:
		b.WriteString(infoStyle.Render(p.Sprintf("common.loading")))
	case pp.err != "":
		b.WriteString(errorStyle.Render(pp.err))
	case len(pp.restaurants) == 0:
		b.WriteString(infoStyle.Render(p.Sprintf("list.empty")))
	default:
		for i, r := range pp.restaurants {
			line := fmt.Sprintf("%d. %s  %s", i+1, r.Name, infoStyle.Render(r.Category+" · "+r.Location))
			likes := p.Sprintf("popular.likes", r.Likes)
			if i == pp.cursor {
				b.WriteString(navActiveStyle.Render("▸ ") + valueStyle.Render(line) + "  " + successStyle.Render(likes))
			} else {
				b.WriteString("  " + navItemStyle.Render(line) + "  " + infoStyle.Render(likes))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(p.Sprintf("popular.help")))

	return b.String()
}
