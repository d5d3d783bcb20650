package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/familyledger/finance-backend/internal/admin/entity"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorDanger  = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorText    = lipgloss.Color("#F3F4F6")
	colorBorder  = lipgloss.Color("#4B5563")
	colorRow     = lipgloss.Color("#312E81")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	dangerStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Underline(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(colorRow)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorPrimary).
			Padding(0, 2).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Background(lipgloss.Color("#1F2937")).
				Padding(0, 2)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	activeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Width(28).
			Foreground(colorMuted)

	focusedLabelStyle = labelStyle.
				Foreground(colorPrimary).
				Bold(true)
)

// renderCell pads or cuts the cell to width. Negative amounts are red.
func renderCell(cell entity.Cell, width int, selected bool) string {
	style := lipgloss.NewStyle().Inline(true).Width(width).MaxWidth(width)
	if cell.Negative {
		style = style.Foreground(colorDanger)
	}
	if selected {
		style = style.Inherit(selectedRowStyle)
	}
	return style.Render(cell.Text)
}
