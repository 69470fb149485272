package tui

import (
	"net/url"
	"strings"

	"codeberg.org/foodmap/client/internal/apiclient"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type listPage struct {
	env *env

	all   []apiclient.Restaurant
	shown []apiclient.Restaurant

	table     table.Model
	filter    textinput.Model
	filtering bool
	// index into Categories, -1 for all
	category int

	loading bool
	err     string
}

func newListPage(e *env, _ map[string]string, query url.Values) Page {
	f := textinput.New()
	f.Prompt = "/ "
	f.Placeholder = e.p.Sprintf("list.filter_placeholder")
	f.SetValue(query.Get("q"))

	return &listPage{
		env:      e,
		table:    newRestaurantTable(e.p),
		filter:   f,
		category: -1,
		loading:  true,
	}
}

func (l *listPage) Init() tea.Cmd {
	return loadRestaurants(l.env.api)
}

func (l *listPage) capturesInput() bool {
	return l.filtering
}

func (l *listPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case restaurantsLoadedMsg:
		l.loading = false
		if msg.err != nil {
			l.err = apiclient.UserMessage(msg.err, l.env.p.Sprintf("list.load_failed"))
			return l, nil
		}
		l.err = ""
		l.all = msg.restaurants
		l.apply()
		return l, nil

	case tea.KeyMsg:
		if l.filtering {
			return l, l.updateFilter(msg)
		}

		switch msg.String() {
		case "/":
			l.filtering = true
			l.table.Blur()
			return l, l.filter.Focus()
		case "c":
			l.category++
			if l.category >= len(Categories) {
				l.category = -1
			}
			l.apply()
			return l, nil
		case "r":
			l.loading = true
			return l, loadRestaurants(l.env.api)
		case "enter":
			if r, ok := l.selected(); ok {
				return l, navigate("/restaurant/" + url.PathEscape(r.ID))
			}
			return l, nil
		case "esc":
			return l, back
		}
	}

	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	return l, cmd
}

func (l *listPage) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		l.filtering = false
		l.filter.Blur()
		l.table.Focus()
		return nil
	}

	var cmd tea.Cmd
	l.filter, cmd = l.filter.Update(msg)
	l.apply()

	return cmd
}

// recomputes the visible rows from the filter text and category
func (l *listPage) apply() {
	l.shown = l.shown[:0]
	for _, r := range l.all {
		if l.category >= 0 && r.Category != Categories[l.category] {
			continue
		}
		if !matchesQuery(r, l.filter.Value()) {
			continue
		}
		l.shown = append(l.shown, r)
	}

	l.table.SetRows(restaurantRows(l.shown))
	if l.table.Cursor() >= len(l.shown) {
		l.table.SetCursor(0)
	}
}

func (l *listPage) selected() (apiclient.Restaurant, bool) {
	i := l.table.Cursor()
	if i < 0 || i >= len(l.shown) {
		return apiclient.Restaurant{}, false
	}
	return l.shown[i], true
}

func (l *listPage) View() string {
	p := l.env.p

	var b strings.Builder
	b.WriteString(headingStyle.Render(p.Sprintf("list.title")))
	b.WriteString("\n")

	category := p.Sprintf("list.all_categories")
	if l.category >= 0 {
		category = Categories[l.category]
	}
	b.WriteString(labelStyle.Render(p.Sprintf("col.category")) + valueStyle.Render(category) + "\n")

	if l.filtering || l.filter.Value() != "" {
		b.WriteString(l.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case l.loading:
		b.WriteString(infoStyle.Render(p.Sprintf("common.loading")))
	case l.err != "":
		b.WriteString(errorStyle.Render(l.err))
	case len(l.shown) == 0:
		b.WriteString(infoStyle.Render(p.Sprintf("list.empty")))
	default:
		b.WriteString(l.table.View())
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(p.Sprintf("list.count", len(l.shown), len(l.all))))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(p.Sprintf("list.help")))

	return b.String()
}
