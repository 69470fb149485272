package tui

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"codeberg.org/foodmap/client/internal/apiclient"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// filter order cycled with tab; the empty status lists everything
var submissionFilters = []apiclient.SubmissionStatus{
	apiclient.StatusPending,
	apiclient.StatusApproved,
	apiclient.StatusRejected,
	"",
}

type submissionsPage struct {
	env *env

	filter      int
	submissions []apiclient.Submission
	table       table.Model

	confirm string
	onYes   tea.Cmd

	loading bool
	err     string
}

func newSubmissionsPage(e *env, _ map[string]string, query url.Values) Page {
	p := e.p
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: p.Sprintf("field.restaurant_name"), Width: 18},
			{Title: p.Sprintf("col.category"), Width: 8},
			{Title: p.Sprintf("col.location"), Width: 20},
			{Title: p.Sprintf("field.submitter"), Width: 12},
			{Title: p.Sprintf("field.status"), Width: 8},
			{Title: p.Sprintf("field.submitted"), Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
	t.SetStyles(tableStyles())

	s := &submissionsPage{env: e, table: t, loading: true}
	if query.Has("status") {
		for i, f := range submissionFilters {
			if string(f) == query.Get("status") {
				s.filter = i
			}
		}
	}

	return s
}

func (s *submissionsPage) Init() tea.Cmd {
	return s.reload()
}

func (s *submissionsPage) status() apiclient.SubmissionStatus {
	return submissionFilters[s.filter]
}

func (s *submissionsPage) reload() tea.Cmd {
	s.loading = true
	return loadSubmissions(s.env.api, s.status())
}

func (s *submissionsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	p := s.env.p

	switch msg := msg.(type) {
	case submissionsLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.err = apiclient.UserMessage(msg.err, p.Sprintf("submissions.load_failed"))
			return s, nil
		}
		s.err = ""
		s.submissions = msg.submissions
		s.table.SetRows(submissionRows(s.env, s.submissions))
		clampCursor(&s.table, len(s.submissions))
		return s, nil

	case actionDoneMsg:
		var partial *apiclient.ApprovalError
		if errors.As(msg.err, &partial) {
			name := ""
			if partial.Restaurant != nil {
				name = partial.Restaurant.Name
			}
			return s, tea.Batch(showFlash(p.Sprintf("submissions.approve_partial", name), true), s.reload())
		}
		if msg.err != nil {
			return s, showFlash(apiclient.UserMessage(msg.err, p.Sprintf("admin.action_failed")), true)
		}
		return s, tea.Batch(showFlash(msg.success, false), s.reload())

	case tea.KeyMsg:
		if s.confirm != "" {
			return s, s.answer(msg.String())
		}

		switch msg.String() {
		case "tab", "right":
			s.filter = (s.filter + 1) % len(submissionFilters)
			return s, s.reload()
		case "shift+tab", "left":
			s.filter = (s.filter + len(submissionFilters) - 1) % len(submissionFilters)
			return s, s.reload()
		case "a":
			if sub, ok := s.selected(); ok && sub.Status != apiclient.StatusApproved {
				s.ask(p.Sprintf("submissions.confirm_approve", sub.RestaurantName), s.approve(sub))
			}
			return s, nil
		case "x":
			if sub, ok := s.selected(); ok && sub.Status == apiclient.StatusPending {
				s.ask(p.Sprintf("submissions.confirm_reject", sub.RestaurantName), s.reject(sub))
			}
			return s, nil
		case "d":
			if sub, ok := s.selected(); ok {
				s.ask(p.Sprintf("submissions.confirm_delete", sub.RestaurantName), s.remove(sub))
			}
			return s, nil
		case "r":
			return s, s.reload()
		case "esc":
			return s, back
		}
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s *submissionsPage) ask(prompt string, onYes tea.Cmd) {
	s.confirm, s.onYes = prompt, onYes
}

func (s *submissionsPage) answer(k string) tea.Cmd {
	switch k {
	case "y", "Y":
		cmd := s.onYes
		s.confirm, s.onYes = "", nil
		return cmd
	case "n", "N", "esc":
		s.confirm, s.onYes = "", nil
	}
	return nil
}

// approving publishes the submission as a restaurant
func (s *submissionsPage) approve(sub apiclient.Submission) tea.Cmd {
	api := s.env.api
	return act(s.env.p.Sprintf("submissions.approved", sub.RestaurantName), true, func(ctx context.Context) error {
		_, err := api.ApproveSubmission(ctx, sub)
		return err
	})
}

func (s *submissionsPage) reject(sub apiclient.Submission) tea.Cmd {
	api := s.env.api
	return act(s.env.p.Sprintf("submissions.rejected", sub.RestaurantName), true, func(ctx context.Context) error {
		_, err := api.UpdateSubmissionStatus(ctx, sub.ID, apiclient.StatusRejected)
		return err
	})
}

func (s *submissionsPage) remove(sub apiclient.Submission) tea.Cmd {
	api := s.env.api
	return act(s.env.p.Sprintf("submissions.deleted", sub.RestaurantName), true, func(ctx context.Context) error {
		return api.DeleteSubmission(ctx, sub.ID)
	})
}

func (s *submissionsPage) selected() (apiclient.Submission, bool) {
	i := s.table.Cursor()
	if i < 0 || i >= len(s.submissions) {
		return apiclient.Submission{}, false
	}
	return s.submissions[i], true
}

func statusLabel(e *env, status apiclient.SubmissionStatus) string {
	switch status {
	case apiclient.StatusPending:
		return e.p.Sprintf("status.pending")
	case apiclient.StatusApproved:
		return e.p.Sprintf("status.approved")
	case apiclient.StatusRejected:
		return e.p.Sprintf("status.rejected")
	default:
		return e.p.Sprintf("status.all")
	}
}

func submissionRows(e *env, list []apiclient.Submission) []table.Row {
	rows := make([]table.Row, 0, len(list))
	for _, sub := range list {
		submitted := "-"
		if !sub.CreatedAt.IsZero() {
			submitted = sub.CreatedAt.Local().Format("2006-01-02")
		}
		rows = append(rows, table.Row{
			sub.RestaurantName,
			sub.Category,
			sub.Location,
			sub.SubmitterName,
			statusLabel(e, sub.Status),
			submitted,
		})
	}
	return rows
}

func (s *submissionsPage) View() string {
	p := s.env.p

	var b strings.Builder
	b.WriteString(headingStyle.Render(p.Sprintf("submissions.title")))
	b.WriteString("\n")

	filters := make([]string, len(submissionFilters))
	for i, f := range submissionFilters {
		label := statusLabel(s.env, f)
		if i == s.filter {
			filters[i] = navActiveStyle.Render(label)
		} else {
			filters[i] = navItemStyle.Render(label)
		}
	}
	b.WriteString(strings.Join(filters, "  "))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString(infoStyle.Render(p.Sprintf("common.loading")))
	case s.err != "":
		b.WriteString(errorStyle.Render(s.err))
	case len(s.submissions) == 0:
		b.WriteString(infoStyle.Render(p.Sprintf("submissions.empty")))
	default:
		b.WriteString(s.table.View())
		if sub, ok := s.selected(); ok && sub.Review != "" {
			b.WriteString("\n")
			b.WriteString(labelStyle.Render(p.Sprintf("field.review")) + valueStyle.Render(strictPolicy.Sanitize(sub.Review)))
		}
	}
	b.WriteString("\n")

	if s.confirm != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(s.confirm) + " " + infoStyle.Render("(y/n)"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(helpStyle.Render(p.Sprintf("submissions.help")))

	return b.String()
}
