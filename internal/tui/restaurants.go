package tui

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/foodmap/client/internal/apiclient"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"
)

// Categories offered by the submission and admin forms
var Categories = []string{"한식", "중식", "일식", "양식", "아시안", "분식", "카페", "기타"}

const tableHeight = 12

func newRestaurantTable(p *message.Printer) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: p.Sprintf("col.name"), Width: 20},
			{Title: p.Sprintf("col.category"), Width: 8},
			{Title: p.Sprintf("col.location"), Width: 22},
			{Title: p.Sprintf("col.price"), Width: 14},
			{Title: p.Sprintf("col.rating"), Width: 6},
			{Title: p.Sprintf("col.likes"), Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
	t.SetStyles(tableStyles())

	return t
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorDarkGray).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorPurple).
		Bold(false)

	return s
}

func restaurantRows(list []apiclient.Restaurant) []table.Row {
	rows := make([]table.Row, 0, len(list))
	for _, r := range list {
		rows = append(rows, table.Row{
			r.Name,
			r.Category,
			r.Location,
			r.PriceRange,
			formatRating(r.Rating),
			strconv.Itoa(r.Likes),
		})
	}
	return rows
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", rating)
}

// case-insensitive match on name, category, location and description
func matchesQuery(r apiclient.Restaurant, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	for _, field := range []string{r.Name, r.Category, r.Location, r.Description} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}

// splits a comma separated menu list, dropping blanks
func splitMenu(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func isCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}
