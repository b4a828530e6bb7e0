package report

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorRed    = lipgloss.Color("#FF5555")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")
	colorYellow = lipgloss.Color("#F1FA8C")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	failStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
)

// verdict renders the report's YES/NO line value.
func verdict(ok bool) string {
	if ok {
		return okStyle.Render("✅ YES")
	}
	return failStyle.Render("❌ NO")
}

// checkmark renders a bare pass/fail icon.
func checkmark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
