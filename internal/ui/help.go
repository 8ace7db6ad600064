package ui

import (
	"strings"

	"eatgo/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders context-sensitive help footer.
func RenderHelp(screen model.Screen, mode model.Mode, loggedIn bool, width int) string {
	if mode == model.ModeInsert {
		return renderFormHelp(width)
	}

	switch screen {
	case model.ScreenHome:
		return renderHomeHelp(width)
	case model.ScreenRestaurants:
		return renderRestaurantsHelp(width)
	case model.ScreenRestaurantDetail:
		return renderRestaurantDetailHelp(loggedIn, width)
	case model.ScreenLogin:
		return renderLoginHelp(loggedIn, width)
	default:
		return renderDefaultHelp(width)
	}
}

func renderHomeHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("tab", "switch list"),
		helpKey("enter", "select"),
		helpKey("2", "restaurants"),
		helpKey("3", "log in"),
		helpKey("?", "help"),
	}
	return renderHelpLine(keys, width)
}

func renderRestaurantsHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("enter", "details"),
		helpKey("R", "reload"),
		helpKey("b", "back"),
		helpKey("?", "help"),
	}
	return renderHelpLine(keys, width)
}

func renderRestaurantDetailHelp(loggedIn bool, width int) string {
	keys := []string{
		helpKey("b/esc", "back"),
		helpKey("R", "reload"),
	}
	if loggedIn {
		keys = append(keys, helpKey("w", "write review"))
	} else {
		keys = append(keys, helpKey("3", "log in to review"))
	}
	return renderHelpLine(keys, width)
}

func renderLoginHelp(loggedIn bool, width int) string {
	if !loggedIn {
		return renderFormHelp(width)
	}
	keys := []string{
		helpKey("enter", "log out"),
		helpKey("b/esc", "back"),
	}
	return renderHelpLine(keys, width)
}

func renderFormHelp(width int) string {
	keys := []string{
		helpKey("tab", "next field"),
		helpKey("shift+tab", "prev field"),
		helpKey("ctrl+s", "submit"),
		helpKey("esc", "cancel"),
	}
	return renderHelpLine(keys, width)
}

func renderDefaultHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("enter", "select"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(max(0, height-6)).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation"),
		helpSection([]helpItem{
			{"j / ↓", "Move down"},
			{"k / ↑", "Move up"},
			{"g / G", "Jump to top / bottom"},
			{"enter", "Open / select"},
			{"b / esc", "Go back"},
			{"1 / 2 / 3", "Home / restaurants / log in or out"},
			{"q", "Quit"},
			{"?", "Toggle help"},
		}),
		titleSection("Home Screen"),
		helpSection([]helpItem{
			{"tab / h / l", "Switch between regions and categories"},
			{"enter", "Select region or category"},
		}),
		titleSection("Restaurants"),
		helpSection([]helpItem{
			{"enter", "Open restaurant detail"},
			{"R", "Reload"},
			{"w", "Write a review (logged in)"},
		}),
		titleSection("Forms"),
		helpSection([]helpItem{
			{"tab", "Next field"},
			{"shift+tab", "Previous field"},
			{"ctrl+s", "Submit"},
			{"esc", "Cancel"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
