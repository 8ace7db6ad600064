package ui

import (
	"fmt"
	"sort"
	"strings"

	"eatgo/internal/model"
	"eatgo/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// maxReviewsShown bounds the review list on the detail screen.
const maxReviewsShown = 10

// RestaurantDetailModel represents the restaurant detail screen.
type RestaurantDetailModel struct {
	restaurantID int64
}

// NewRestaurantDetailModel creates a new restaurant detail model.
func NewRestaurantDetailModel(restaurantID int64) *RestaurantDetailModel {
	return &RestaurantDetailModel{
		restaurantID: restaurantID,
	}
}

// View renders the restaurant detail. loading is shown while the detail is
// unset.
func (m *RestaurantDetailModel) View(state model.State, loading string, width, height int) string {
	detail := state.Restaurant
	switch {
	case detail == nil:
		return EmptyStateStyle.Render(loading + " Loading restaurant...")
	case detail.IsEmpty():
		return EmptyStateStyle.Render("Could not load this restaurant. Press R to retry.")
	}

	shortcut := "3 log in to review  b back"
	if state.LoggedIn() {
		shortcut = "w write review  b back"
	}
	header := lipgloss.NewStyle().
		Width(width - 4).
		Align(lipgloss.Right).
		Render(HelpDescStyle.Render(shortcut))

	var sections []string

	fields := []string{
		renderField("Name", util.SanitizeText(detail.Name)),
		renderField("Address", util.SanitizeText(detail.Address)),
	}
	if detail.Information != "" {
		fields = append(fields, renderField("Information", util.SanitizeText(detail.Information)))
	}
	sections = append(sections, strings.Join(fields, "\n"))

	if len(detail.MenuItems) > 0 {
		menu := make([]string, len(detail.MenuItems))
		for i, item := range detail.MenuItems {
			menu[i] = "· " + util.SanitizeText(item.Name)
		}
		sections = append(sections, LabelStyle.Render("Menu:")+"\n"+NormalRowStyle.Render(strings.Join(menu, "\n")))
	}

	divider := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render(strings.Repeat("─", max(0, width-8)))
	sections = append(sections, divider)

	sections = append(sections, LabelStyle.Render("Reviews: ")+HelpDescStyle.Render(util.FormatReviewCount(len(detail.Reviews))))
	if len(detail.Reviews) > 0 {
		sections = append(sections, renderReviews(detail.Reviews, width-8))
	}

	info := PanelStyle.
		Width(width - 4).
		Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, info)
}

// renderReviews lists reviews newest first.
func renderReviews(reviews []model.Review, width int) string {
	sorted := make([]model.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID > sorted[j].ID
	})

	var entries []string
	for i, r := range sorted {
		if i >= maxReviewsShown {
			entries = append(entries, HelpDescStyle.Render(fmt.Sprintf("… %d more", len(sorted)-maxReviewsShown)))
			break
		}
		score := lipgloss.NewStyle().Foreground(ColorYellow).Render(util.FormatScore(r.Score))
		author := LabelStyle.Render(util.SanitizeText(r.Name))
		text := util.TruncateString(util.SanitizeText(r.Description), max(10, width))
		entries = append(entries, author+"  "+score+"\n"+NormalRowStyle.Render(text))
	}

	return strings.Join(entries, "\n\n")
}

func renderField(label, value string) string {
	if value == "" {
		value = "—"
	}
	return LabelStyle.Render(label+":") + " " + NormalRowStyle.Render(value)
}
