package ui

import (
	"strings"

	"eatgo/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// navItem is one entry of the navigation bar.
type navItem struct {
	label  string
	screen model.Screen
}

func navItems(loggedIn bool) []navItem {
	account := "Log in"
	if loggedIn {
		account = "Log out"
	}
	return []navItem{
		{"Home", model.ScreenHome},
		{"Restaurants", model.ScreenRestaurants},
		{account, model.ScreenLogin},
	}
}

// RenderNavList lays labels out in a single row of the given width with
// equal space around each label. The active label is highlighted; pass -1
// for none. Labels that do not fit are placed with a single space between.
func RenderNavList(labels []string, active, width int) string {
	if len(labels) == 0 {
		return NavListStyle.Width(width).Render("")
	}

	rendered := make([]string, len(labels))
	used := 0
	for i, label := range labels {
		style := NavItemStyle
		if i == active {
			style = NavActiveItemStyle
		}
		rendered[i] = style.Render(label)
		used += lipgloss.Width(rendered[i])
	}

	free := width - used
	if free < len(labels) {
		free = len(labels)
	}
	share := free / len(labels)
	extra := free - share*len(labels)

	var b strings.Builder
	for i, item := range rendered {
		around := share
		if i == len(rendered)-1 {
			around += extra
		}
		left := around / 2
		b.WriteString(NavItemStyle.Render(strings.Repeat(" ", left)))
		b.WriteString(item)
		b.WriteString(NavItemStyle.Render(strings.Repeat(" ", around-left)))
	}

	return NavListStyle.Render(b.String())
}

func renderNav(screen model.Screen, loggedIn bool, width int) string {
	items := navItems(loggedIn)
	labels := make([]string, len(items))
	active := -1
	for i, item := range items {
		labels[i] = item.label
		if item.screen == screen || (screen == model.ScreenRestaurantDetail && item.screen == model.ScreenRestaurants) {
			active = i
		}
	}
	return RenderNavList(labels, active, width)
}
