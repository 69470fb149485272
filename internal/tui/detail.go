package tui

import (
	"fmt"
	"net/url"
	"strings"

	"codeberg.org/foodmap/client/internal/apiclient"
	"codeberg.org/foodmap/client/internal/logger"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"
)

const (
	defaultDetailWidth  = 80
	defaultDetailHeight = 20
	// rows taken by the navigation bar, footer and page chrome
	detailChrome = 8
)

// server-provided text is stripped of markup before rendering
var strictPolicy = bluemonday.StrictPolicy()

type detailPage struct {
	env *env
	id  string

	restaurant *apiclient.Restaurant
	viewport   viewport.Model
	loading    bool
	err        string
}

func newDetailPage(e *env, params map[string]string, _ url.Values) Page {
	d := &detailPage{
		env:      e,
		id:       params["id"],
		viewport: viewport.New(defaultDetailWidth, defaultDetailHeight),
		loading:  true,
	}
	d.resize()

	return d
}

func (d *detailPage) Init() tea.Cmd {
	return loadRestaurant(d.env.api, d.id)
}

func (d *detailPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case restaurantLoadedMsg:
		d.loading = false
		if msg.err != nil {
			d.err = apiclient.UserMessage(msg.err, d.env.p.Sprintf("detail.load_failed"))
			return d, nil
		}
		d.restaurant = msg.restaurant
		d.render()
		return d, nil

	case tea.WindowSizeMsg:
		d.resize()
		d.render()
		return d, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return d, back
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

func (d *detailPage) resize() {
	if d.env.width > 0 {
		d.viewport.Width = d.env.width
	}
	if d.env.height > detailChrome {
		d.viewport.Height = d.env.height - detailChrome
	}
}

func (d *detailPage) render() {
	if d.restaurant == nil {
		return
	}

	md := restaurantMarkdown(d.env, d.restaurant)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(d.viewport.Width-4),
	)
	if err != nil {
		logger.Warn("markdown renderer unavailable", "error", err)
		d.viewport.SetContent(md)
		return
	}

	out, err := r.Render(md)
	if err != nil {
		logger.Warn("failed to render restaurant", "id", d.restaurant.ID, "error", err)
		out = md
	}

	d.viewport.SetContent(out)
}

func restaurantMarkdown(e *env, r *apiclient.Restaurant) string {
	p := e.p
	clean := strictPolicy.Sanitize

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", clean(r.Name))
	fmt.Fprintf(&b, "- **%s** %s\n", p.Sprintf("col.category"), clean(r.Category))
	fmt.Fprintf(&b, "- **%s** %s\n", p.Sprintf("col.location"), clean(r.Location))
	if r.PriceRange != "" {
		fmt.Fprintf(&b, "- **%s** %s\n", p.Sprintf("col.price"), clean(r.PriceRange))
	}
	fmt.Fprintf(&b, "- **%s** %s\n", p.Sprintf("col.rating"), formatRating(r.Rating))
	fmt.Fprintf(&b, "- **%s** %d\n\n", p.Sprintf("col.likes"), r.Likes)

	if r.Description != "" {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", p.Sprintf("detail.description"), clean(r.Description))
	}

	if len(r.RecommendedMenu) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", p.Sprintf("detail.menu"))
		for _, item := range r.RecommendedMenu {
			fmt.Fprintf(&b, "- %s\n", clean(item))
		}
	}

	return b.String()
}

func (d *detailPage) View() string {
	p := d.env.p

	switch {
	case d.loading:
		return infoStyle.Render(p.Sprintf("common.loading"))
	case d.err != "":
		return errorStyle.Render(d.err) + "\n\n" + helpStyle.Render(p.Sprintf("detail.help"))
	}

	return d.viewport.View() + "\n" + helpStyle.Render(p.Sprintf("detail.help"))
}
