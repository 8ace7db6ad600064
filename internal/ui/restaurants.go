package ui

import (
	"fmt"
	"strings"

	"eatgo/internal/model"
	"eatgo/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// RestaurantsModel is the filtered restaurant listing.
type RestaurantsModel struct {
	cursor         int
	offset         int
	viewportHeight int
}

// NewRestaurantsModel creates a new restaurants screen model.
func NewRestaurantsModel() *RestaurantsModel {
	return &RestaurantsModel{}
}

// Reset moves the cursor back to the first row.
func (m *RestaurantsModel) Reset() {
	m.cursor = 0
	m.offset = 0
}

// Clamp keeps the cursor inside the listing after it changed.
func (m *RestaurantsModel) Clamp(rows []model.RestaurantSummary) {
	m.cursor = clampIndex(m.cursor, len(rows))
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
}

// Selected returns the restaurant under the cursor.
func (m *RestaurantsModel) Selected(rows []model.RestaurantSummary) (model.RestaurantSummary, bool) {
	if m.cursor < 0 || m.cursor >= len(rows) {
		return model.RestaurantSummary{}, false
	}
	return rows[m.cursor], true
}

// MoveDown moves the cursor down.
func (m *RestaurantsModel) MoveDown(rows []model.RestaurantSummary) {
	if m.cursor < len(rows)-1 {
		m.cursor++
		vh := m.viewportHeight
		if vh == 0 {
			vh = 10
		}
		if m.cursor >= m.offset+vh {
			m.offset++
		}
	}
}

// MoveUp moves the cursor up.
func (m *RestaurantsModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		if m.cursor < m.offset {
			m.offset--
		}
	}
}

// JumpToTop jumps to the first item.
func (m *RestaurantsModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last item.
func (m *RestaurantsModel) JumpToBottom(rows []model.RestaurantSummary) {
	if len(rows) > 0 {
		m.cursor = len(rows) - 1
		vh := m.viewportHeight
		if vh == 0 {
			vh = 10
		}
		if m.cursor >= vh {
			m.offset = m.cursor - vh + 1
		}
	}
}

// View renders the listing.
func (m *RestaurantsModel) View(state model.State, width, height int) string {
	rows := state.Restaurants
	status := StatusBarStyle.Render(fmt.Sprintf("%d restaurants  ·  %s", len(rows), selectionSummary(state)))

	if state.SelectedRegion == nil || state.SelectedCategory == nil {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			EmptyStateStyle.Render("Pick a region and a category on the home screen (1)."),
			status,
		)
	}
	if len(rows) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			EmptyStateStyle.Render("No restaurants found."),
			status,
		)
	}

	nameWidth := max(16, width/3)
	addressWidth := max(16, width-nameWidth-4)
	widths := []int{nameWidth, addressWidth}

	header := renderTableRow([]string{"name", "address"}, widths, TableHeaderStyle)
	divider := lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Repeat("─", nameWidth+addressWidth))

	m.viewportHeight = max(1, height-4)
	var lines []string
	for i := m.offset; i < len(rows) && i < m.offset+m.viewportHeight; i++ {
		row := rows[i]
		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}
		cells := []string{
			util.TruncateString(util.SanitizeText(row.Name), nameWidth-2),
			util.TruncateString(util.SanitizeText(row.Address), addressWidth-2),
		}
		lines = append(lines, renderTableRow(cells, widths, style))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, divider, strings.Join(lines, "\n"))
	spacer := lipgloss.NewStyle().Height(max(0, height-lipgloss.Height(content)-lipgloss.Height(status))).Render("")

	return lipgloss.JoinVertical(lipgloss.Left, content, spacer, status)
}

func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Width(widths[i]).Padding(0, 1).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}
