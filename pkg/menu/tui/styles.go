package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary = lipgloss.Color("212")
	Muted   = lipgloss.Color("241")
	Border  = lipgloss.Color("240")
)

// List styles
var (
	ListBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	ItemNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// ItemHovered marks the mouse selection.
	ItemHovered = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255"))

	// ItemSelected marks the keyboard selection.
	ItemSelected = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	Cursor = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	SectionHeader = lipgloss.NewStyle().
			Foreground(Muted).
			Bold(true)

	MutedText = lipgloss.NewStyle().Foreground(Muted)
)

// ItemLine renders label with the cursor and highlight used by the default
// item renderer.
func ItemLine(label string, keySelected, mouseSelected bool) string {
	style := ItemNormal
	if keySelected {
		style = ItemSelected
	} else if mouseSelected {
		style = ItemHovered
	}

	cursor := "  "
	if keySelected {
		cursor = Cursor.Render("> ")
	}
	return cursor + style.Render(label)
}
