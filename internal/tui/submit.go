package tui

import (
	"context"
	"net/url"
	"strings"

	"codeberg.org/foodmap/client/internal/apiclient"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	submitName = iota
	submitCategory
	submitLocation
	submitPrice
	submitMenu
	submitReview
)

type submitPage struct {
	env  *env
	form form
	sent int
}

func newSubmitPage(e *env, _ map[string]string, _ url.Values) Page {
	p := e.p
	return &submitPage{
		env: e,
		form: newForm(
			formField{label: p.Sprintf("field.restaurant_name"), limit: 100},
			formField{label: p.Sprintf("col.category"), placeholder: strings.Join(Categories, ", ")},
			formField{label: p.Sprintf("col.location"), placeholder: p.Sprintf("submit.location_placeholder")},
			formField{label: p.Sprintf("col.price"), placeholder: "8,000 - 12,000원"},
			formField{label: p.Sprintf("detail.menu"), placeholder: p.Sprintf("submit.menu_placeholder")},
			formField{label: p.Sprintf("field.review"), limit: 500},
		),
	}
}

func (s *submitPage) Init() tea.Cmd {
	return s.form.setFocus(0)
}

func (s *submitPage) capturesInput() bool {
	return true
}

func (s *submitPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case formSubmitMsg:
		return s, s.submit()

	case actionDoneMsg:
		s.form.busy = false
		if msg.err != nil {
			s.form.err = apiclient.UserMessage(msg.err, s.env.p.Sprintf("submit.failed"))
			return s, nil
		}
		s.sent++
		return s, tea.Batch(s.form.reset(), showFlash(msg.success, false))

	case tea.KeyMsg:
		if msg.String() == "esc" && !s.form.busy {
			return s, back
		}
	}

	return s, s.form.update(msg)
}

func (s *submitPage) submit() tea.Cmd {
	p := s.env.p

	sub := apiclient.Submission{
		RestaurantName:  s.form.value(submitName),
		Category:        s.form.value(submitCategory),
		Location:        s.form.value(submitLocation),
		PriceRange:      s.form.value(submitPrice),
		RecommendedMenu: splitMenu(s.form.value(submitMenu)),
		Review:          s.form.value(submitReview),
	}

	switch {
	case sub.RestaurantName == "" || sub.Category == "" || sub.Location == "":
		s.form.err = p.Sprintf("validate.required")
		return nil
	case !isCategory(sub.Category):
		s.form.err = p.Sprintf("validate.category", strings.Join(Categories, ", "))
		return nil
	}

	s.form.err = ""
	s.form.busy = true

	api := s.env.api
	return act(p.Sprintf("submit.done"), false, func(ctx context.Context) error {
		_, err := api.CreateSubmission(ctx, sub)
		return err
	})
}

func (s *submitPage) View() string {
	p := s.env.p

	var b strings.Builder
	b.WriteString(headingStyle.Render(p.Sprintf("submit.title")))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(p.Sprintf("submit.subtitle")))
	b.WriteString("\n")
	b.WriteString(s.form.view(p.Sprintf("common.saving")))
	if s.sent > 0 {
		b.WriteString(infoStyle.Render(p.Sprintf("submit.sent_count", s.sent)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(p.Sprintf("submit.help")))

	return b.String()
}
