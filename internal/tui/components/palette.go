package components

import (
	"github.com/Veraticus/the-fine-print/internal/tui/themes"
	"github.com/Veraticus/the-fine-print/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// riskColor resolves a colour class against the theme.
func riskColor(theme themes.Theme, c viewmodel.RiskColor) lipgloss.Color {
	switch c {
	case viewmodel.ColorHigh:
		return theme.RiskHigh
	case viewmodel.ColorMedium:
		return theme.RiskMedium
	case viewmodel.ColorLow:
		return theme.RiskLow
	default:
		return theme.RiskUnknown
	}
}

// riskBadge renders label as a filled badge in the colour class.
func riskBadge(theme themes.Theme, c viewmodel.RiskColor, label string) string {
	return theme.Badge.
		Background(riskColor(theme, c)).
		Foreground(lipgloss.Color("#ffffff")).
		Render(label)
}
