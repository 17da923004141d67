package styles

import "github.com/charmbracelet/lipgloss"

// PopupStyle returns the bordered box style for floating overlays such as
// the help screen, tinted with the active accent color.
func PopupStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(T().Accent).
		Padding(0, 1)
}
