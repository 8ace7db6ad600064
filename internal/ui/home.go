package ui

import (
	"fmt"
	"strings"

	"eatgo/internal/model"
	"eatgo/internal/util"

	"github.com/charmbracelet/lipgloss"
)

const (
	homeListRegions = iota
	homeListCategories
)

// HomeModel is the region and category picker.
type HomeModel struct {
	focus          int
	regionCursor   int
	categoryCursor int
}

// NewHomeModel creates a new home screen model.
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SwitchList moves focus between the region and category lists.
func (m *HomeModel) SwitchList() {
	if m.focus == homeListRegions {
		m.focus = homeListCategories
	} else {
		m.focus = homeListRegions
	}
}

// MoveDown moves the cursor of the focused list down.
func (m *HomeModel) MoveDown(state model.State) {
	cursor, n := m.cursor(), m.listLen(state)
	if *cursor < n-1 {
		*cursor++
	}
}

// MoveUp moves the cursor of the focused list up.
func (m *HomeModel) MoveUp() {
	cursor := m.cursor()
	if *cursor > 0 {
		*cursor--
	}
}

// JumpToTop jumps to the first item of the focused list.
func (m *HomeModel) JumpToTop() {
	*m.cursor() = 0
}

// JumpToBottom jumps to the last item of the focused list.
func (m *HomeModel) JumpToBottom(state model.State) {
	if n := m.listLen(state); n > 0 {
		*m.cursor() = n - 1
	}
}

// Clamp keeps both cursors inside their lists after the lists changed.
func (m *HomeModel) Clamp(state model.State) {
	m.regionCursor = clampIndex(m.regionCursor, len(state.Regions))
	m.categoryCursor = clampIndex(m.categoryCursor, len(state.Categories))
}

// Selected returns which list has focus and the id under its cursor.
// ok is false when the focused list is empty.
func (m *HomeModel) Selected(state model.State) (list int, id int64, ok bool) {
	switch m.focus {
	case homeListRegions:
		if m.regionCursor < len(state.Regions) {
			return homeListRegions, state.Regions[m.regionCursor].ID, true
		}
	case homeListCategories:
		if m.categoryCursor < len(state.Categories) {
			return homeListCategories, state.Categories[m.categoryCursor].ID, true
		}
	}
	return m.focus, 0, false
}

func (m *HomeModel) cursor() *int {
	if m.focus == homeListCategories {
		return &m.categoryCursor
	}
	return &m.regionCursor
}

func (m *HomeModel) listLen(state model.State) int {
	if m.focus == homeListCategories {
		return len(state.Categories)
	}
	return len(state.Regions)
}

// View renders both lists side by side.
func (m *HomeModel) View(state model.State, width, height int) string {
	colWidth := max(20, (width-6)/2)

	regionNames := make([]string, len(state.Regions))
	for i, r := range state.Regions {
		regionNames[i] = util.SanitizeText(r.Name)
		if state.SelectedRegion != nil && state.SelectedRegion.ID == r.ID {
			regionNames[i] += " (V)"
		}
	}
	categoryNames := make([]string, len(state.Categories))
	for i, c := range state.Categories {
		categoryNames[i] = util.SanitizeText(c.Name)
		if state.SelectedCategory != nil && state.SelectedCategory.ID == c.ID {
			categoryNames[i] += " (V)"
		}
	}

	regions := renderPickList("Regions", regionNames, m.regionCursor, m.focus == homeListRegions, colWidth, height-4)
	categories := renderPickList("Categories", categoryNames, m.categoryCursor, m.focus == homeListCategories, colWidth, height-4)

	status := StatusBarStyle.Render(selectionSummary(state))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, regions, categories),
		status,
	)
}

func renderPickList(title string, items []string, cursor int, focused bool, width, height int) string {
	style := BorderStyle
	if focused {
		style = ActiveBorderStyle
	}

	lines := []string{LabelStyle.Render(title), ""}
	if len(items) == 0 {
		lines = append(lines, HelpDescStyle.Render("Nothing here yet"))
	}

	// Keep the cursor visible when the list is taller than the panel.
	visible := max(1, height-4)
	offset := 0
	if cursor >= visible {
		offset = cursor - visible + 1
	}
	for i := offset; i < len(items) && i < offset+visible; i++ {
		rowStyle := NormalRowStyle
		if focused && i == cursor {
			rowStyle = SelectedRowStyle
		}
		lines = append(lines, rowStyle.Width(width-6).Render(util.TruncateString(items[i], width-6)))
	}

	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func selectionSummary(state model.State) string {
	region, category := "—", "—"
	if state.SelectedRegion != nil {
		region = state.SelectedRegion.Name
	}
	if state.SelectedCategory != nil {
		category = state.SelectedCategory.Name
	}
	return fmt.Sprintf("region: %s  ·  category: %s", region, category)
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
