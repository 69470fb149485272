package tui

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"codeberg.org/foodmap/client/internal/apiclient"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type adminTab int

const (
	tabRestaurants adminTab = iota
	tabUsers
)

type adminMode int

const (
	modeBrowse adminMode = iota
	modeForm
	modeConfirm
)

const (
	restaurantName = iota
	restaurantCategory
	restaurantLocation
	restaurantPrice
	restaurantRating
	restaurantMenu
	restaurantDescription
)

const maxRating = 5.0

type adminPage struct {
	env *env

	tab  adminTab
	mode adminMode

	restaurants      []apiclient.Restaurant
	users            []apiclient.User
	restaurantsTable table.Model
	usersTable       table.Model

	form    form
	editing string

	confirm string
	onYes   tea.Cmd

	loading int
	err     string
}

func newAdminPage(e *env, _ map[string]string, query url.Values) Page {
	a := &adminPage{
		env:              e,
		restaurantsTable: newRestaurantTable(e.p),
		usersTable:       newUsersTable(e),
	}
	if query.Get("tab") == "users" {
		a.tab = tabUsers
	}

	return a
}

func newUsersTable(e *env) table.Model {
	p := e.p
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: p.Sprintf("field.name"), Width: 14},
			{Title: p.Sprintf("field.email"), Width: 26},
			{Title: p.Sprintf("field.provider"), Width: 10},
			{Title: p.Sprintf("field.role"), Width: 8},
			{Title: p.Sprintf("field.joined"), Width: 12},
		}),
		table.WithHeight(tableHeight),
	)
	t.SetStyles(tableStyles())

	return t
}

func (a *adminPage) Init() tea.Cmd {
	a.focusTab()
	return a.reload()
}

func (a *adminPage) capturesInput() bool {
	return a.mode == modeForm
}

func (a *adminPage) reload() tea.Cmd {
	a.loading = 2
	return tea.Batch(loadRestaurants(a.env.api), loadUsers(a.env.api))
}

func (a *adminPage) focusTab() {
	if a.tab == tabRestaurants {
		a.restaurantsTable.Focus()
		a.usersTable.Blur()
		return
	}
	a.usersTable.Focus()
	a.restaurantsTable.Blur()
}

func (a *adminPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	p := a.env.p

	switch msg := msg.(type) {
	case restaurantsLoadedMsg:
		a.loading--
		if msg.err != nil {
			a.err = apiclient.UserMessage(msg.err, p.Sprintf("list.load_failed"))
			return a, nil
		}
		a.restaurants = msg.restaurants
		a.restaurantsTable.SetRows(restaurantRows(a.restaurants))
		clampCursor(&a.restaurantsTable, len(a.restaurants))
		return a, nil

	case usersLoadedMsg:
		a.loading--
		if msg.err != nil {
			a.err = apiclient.UserMessage(msg.err, p.Sprintf("admin.users_failed"))
			return a, nil
		}
		a.users = msg.users
		a.usersTable.SetRows(userRows(a.env, a.users))
		clampCursor(&a.usersTable, len(a.users))
		return a, nil

	case actionDoneMsg:
		a.form.busy = false
		if msg.err != nil {
			text := apiclient.UserMessage(msg.err, p.Sprintf("admin.action_failed"))
			if a.mode == modeForm {
				a.form.err = text
				return a, nil
			}
			return a, showFlash(text, true)
		}
		a.mode = modeBrowse
		a.err = ""
		cmds := []tea.Cmd{showFlash(msg.success, false)}
		if msg.reload {
			cmds = append(cmds, a.reload())
		}
		return a, tea.Batch(cmds...)

	case formSubmitMsg:
		return a, a.saveRestaurant()

	case tea.KeyMsg:
		switch a.mode {
		case modeConfirm:
			return a, a.answer(msg.String())
		case modeForm:
			if msg.String() == "esc" && !a.form.busy {
				a.mode = modeBrowse
				return a, nil
			}
			return a, a.form.update(msg)
		}

		if cmd, handled := a.browseKey(msg.String()); handled {
			return a, cmd
		}
	}

	var cmd tea.Cmd
	if a.tab == tabRestaurants {
		a.restaurantsTable, cmd = a.restaurantsTable.Update(msg)
	} else {
		a.usersTable, cmd = a.usersTable.Update(msg)
	}
	return a, cmd
}

func (a *adminPage) browseKey(k string) (tea.Cmd, bool) {
	switch k {
	case "tab":
		a.tab = 1 - a.tab
		a.focusTab()
		return nil, true
	case "r":
		return a.reload(), true
	case "esc":
		return back, true
	}

	if a.tab == tabRestaurants {
		switch k {
		case "n":
			return a.openForm(nil), true
		case "e":
			if r, ok := a.selectedRestaurant(); ok {
				return a.openForm(&r), true
			}
			return nil, true
		case "d":
			if r, ok := a.selectedRestaurant(); ok {
				a.askDelete(r)
			}
			return nil, true
		case "enter":
			if r, ok := a.selectedRestaurant(); ok {
				return navigate("/restaurant/" + url.PathEscape(r.ID)), true
			}
			return nil, true
		}
		return nil, false
	}

	if k == "t" {
		if u, ok := a.selectedUser(); ok {
			return a.askToggleRole(u), true
		}
		return nil, true
	}

	return nil, false
}

func (a *adminPage) answer(k string) tea.Cmd {
	switch k {
	case "y", "Y":
		cmd := a.onYes
		a.mode, a.confirm, a.onYes = modeBrowse, "", nil
		return cmd
	case "n", "N", "esc":
		a.mode, a.confirm, a.onYes = modeBrowse, "", nil
	}
	return nil
}

func (a *adminPage) askDelete(r apiclient.Restaurant) {
	p := a.env.p
	api := a.env.api
	id := r.ID

	a.mode = modeConfirm
	a.confirm = p.Sprintf("admin.confirm_delete", r.Name)
	a.onYes = act(p.Sprintf("admin.deleted", r.Name), true, func(ctx context.Context) error {
		return api.DeleteRestaurant(ctx, id)
	})
}

func (a *adminPage) askToggleRole(u apiclient.User) tea.Cmd {
	p := a.env.p

	if self := a.env.store.Snapshot().User; self != nil && self.ID == u.ID {
		return showFlash(p.Sprintf("admin.self_role"), true)
	}

	next := apiclient.RoleAdmin
	label := p.Sprintf("role.admin")
	if u.Role == apiclient.RoleAdmin {
		next = apiclient.RoleUser
		label = p.Sprintf("role.user")
	}

	api := a.env.api
	id := u.ID

	a.mode = modeConfirm
	a.confirm = p.Sprintf("admin.confirm_role", u.Name, label)
	a.onYes = act(p.Sprintf("admin.role_changed", u.Name, label), true, func(ctx context.Context) error {
		_, err := api.ChangeUserRole(ctx, id, next)
		return err
	})

	return nil
}

// opens the restaurant form, prefilled when editing
func (a *adminPage) openForm(r *apiclient.Restaurant) tea.Cmd {
	p := a.env.p

	a.form = newForm(
		formField{label: p.Sprintf("col.name"), limit: 100},
		formField{label: p.Sprintf("col.category"), placeholder: strings.Join(Categories, ", ")},
		formField{label: p.Sprintf("col.location")},
		formField{label: p.Sprintf("col.price")},
		formField{label: p.Sprintf("col.rating"), placeholder: "0.0 - 5.0", limit: 3},
		formField{label: p.Sprintf("detail.menu"), placeholder: p.Sprintf("submit.menu_placeholder")},
		formField{label: p.Sprintf("detail.description"), limit: 1000},
	)
	a.editing = ""

	if r != nil {
		a.editing = r.ID
		a.form.setValue(restaurantName, r.Name)
		a.form.setValue(restaurantCategory, r.Category)
		a.form.setValue(restaurantLocation, r.Location)
		a.form.setValue(restaurantPrice, r.PriceRange)
		if r.Rating > 0 {
			a.form.setValue(restaurantRating, strconv.FormatFloat(r.Rating, 'f', 1, 64))
		}
		a.form.setValue(restaurantMenu, strings.Join(r.RecommendedMenu, ", "))
		a.form.setValue(restaurantDescription, r.Description)
	}

	a.mode = modeForm
	return a.form.setFocus(0)
}

func (a *adminPage) saveRestaurant() tea.Cmd {
	p := a.env.p

	r := apiclient.Restaurant{
		Name:            a.form.value(restaurantName),
		Category:        a.form.value(restaurantCategory),
		Location:        a.form.value(restaurantLocation),
		PriceRange:      a.form.value(restaurantPrice),
		RecommendedMenu: splitMenu(a.form.value(restaurantMenu)),
		Description:     a.form.value(restaurantDescription),
	}

	switch {
	case r.Name == "" || r.Category == "" || r.Location == "":
		a.form.err = p.Sprintf("validate.required")
		return nil
	case !isCategory(r.Category):
		a.form.err = p.Sprintf("validate.category", strings.Join(Categories, ", "))
		return nil
	}

	if raw := a.form.value(restaurantRating); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > maxRating {
			a.form.err = p.Sprintf("validate.rating")
			return nil
		}
		r.Rating = rating
	}

	a.form.err = ""
	a.form.busy = true

	api := a.env.api
	if a.editing == "" {
		return act(p.Sprintf("admin.created", r.Name), true, func(ctx context.Context) error {
			_, err := api.CreateRestaurant(ctx, r)
			return err
		})
	}

	id := a.editing
	return act(p.Sprintf("admin.updated", r.Name), true, func(ctx context.Context) error {
		_, err := api.UpdateRestaurant(ctx, id, r)
		return err
	})
}

func (a *adminPage) selectedRestaurant() (apiclient.Restaurant, bool) {
	i := a.restaurantsTable.Cursor()
	if i < 0 || i >= len(a.restaurants) {
		return apiclient.Restaurant{}, false
	}
	return a.restaurants[i], true
}

func (a *adminPage) selectedUser() (apiclient.User, bool) {
	i := a.usersTable.Cursor()
	if i < 0 || i >= len(a.users) {
		return apiclient.User{}, false
	}
	return a.users[i], true
}

func userRows(e *env, users []apiclient.User) []table.Row {
	p := e.p
	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		role := p.Sprintf("role.user")
		if u.Role == apiclient.RoleAdmin {
			role = p.Sprintf("role.admin")
		}

		joined := "-"
		if !u.CreatedAt.IsZero() {
			joined = u.CreatedAt.Local().Format("2006-01-02")
		}

		rows = append(rows, table.Row{u.Name, u.Email, providerLabel(p, u.Provider), role, joined})
	}
	return rows
}

func clampCursor(t *table.Model, n int) {
	if t.Cursor() >= n {
		t.SetCursor(max(n-1, 0))
	}
}

func (a *adminPage) View() string {
	p := a.env.p

	var b strings.Builder
	b.WriteString(headingStyle.Render(p.Sprintf("admin.title")))
	b.WriteString("\n")

	tabs := []string{p.Sprintf("admin.tab_restaurants", len(a.restaurants)), p.Sprintf("admin.tab_users", len(a.users))}
	for i, t := range tabs {
		if adminTab(i) == a.tab {
			tabs[i] = navActiveStyle.Render(t)
		} else {
			tabs[i] = navItemStyle.Render(t)
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")

	if a.mode == modeForm {
		title := p.Sprintf("admin.form_create")
		if a.editing != "" {
			title = p.Sprintf("admin.form_edit")
		}
		b.WriteString(subtitleStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(a.form.view(p.Sprintf("common.saving")))
		b.WriteString(helpStyle.Render(p.Sprintf("admin.form_help")))
		return b.String()
	}

	switch {
	case a.loading > 0:
		b.WriteString(infoStyle.Render(p.Sprintf("common.loading")))
	case a.err != "":
		b.WriteString(errorStyle.Render(a.err))
	case a.tab == tabRestaurants:
		b.WriteString(a.restaurantsTable.View())
	default:
		b.WriteString(a.usersTable.View())
	}
	b.WriteString("\n")

	if a.mode == modeConfirm {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(a.confirm))
		b.WriteString(" ")
		b.WriteString(infoStyle.Render("(y/n)"))
		b.WriteString("\n")
		return b.String()
	}

	help := p.Sprintf("admin.help_restaurants")
	if a.tab == tabUsers {
		help = p.Sprintf("admin.help_users")
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}
