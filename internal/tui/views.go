package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/the-fine-print/internal/session"
	"github.com/Veraticus/the-fine-print/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants.
const (
	compactWidth = 100
	headerHeight = 3
	footerHeight = 12
	frameWidth   = 6
	separator    = " │ "
)

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	av := viewmodel.NewAppView(m.session, m.config.SetupRequired)

	if av.Phase == session.PhaseUpgrade {
		return m.upgrade.View()
	}

	return m.wrapWithBorder(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(av),
		m.renderBody(av),
	))
}

// renderHeader renders the title row and the usage counter.
func (m Model) renderHeader(av viewmodel.AppView) string {
	title := m.theme.Title.UnsetMarginBottom().Render(viewmodel.AppTitle)
	usage := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(av.Usage)

	gap := max(m.innerWidth()-lipgloss.Width(title)-lipgloss.Width(usage), 1)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title+strings.Repeat(" ", gap)+usage,
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(viewmodel.AppTagline),
		"",
	)
}

// renderBody lays out the input and report columns.
func (m Model) renderBody(av viewmodel.AppView) string {
	left := lipgloss.JoinVertical(
		lipgloss.Left,
		m.input.View(),
		m.renderControls(av),
	)
	right := m.report.View()

	if m.isCompact() {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.NewStyle().Width(m.innerWidth()).Render(left),
			"",
			right,
		)
	}

	inputWidth, reportWidth := m.columnWidths()

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(inputWidth).Render(left),
		m.theme.Normal.Render(separator),
		lipgloss.NewStyle().Width(reportWidth).Render(right),
	)
}

// renderControls renders the error banner, analyze button, notices and help.
func (m Model) renderControls(av viewmodel.AppView) string {
	var rows []string

	if av.HasError() {
		rows = append(rows, m.theme.StatusError.Render("✗ "+av.Error))
	}

	rows = append(rows, m.renderAnalyzeButton(av))

	if m.status != "" {
		rows = append(rows, m.theme.StatusInfo.Render(m.status))
	}

	if av.ShowSetupNotice {
		rows = append(rows, m.theme.StatusWarning.Render(
			lipgloss.NewStyle().Width(m.leftWidth()).Render(viewmodel.SetupNotice),
		))
	}

	rows = append(rows, m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderAnalyzeButton renders the trigger control in its current state.
func (m Model) renderAnalyzeButton(av viewmodel.AppView) string {
	button := lipgloss.NewStyle().Padding(0, 2).Bold(true)

	switch {
	case av.Phase == session.PhaseAnalyzing:
		return button.
			Foreground(m.theme.Foreground).
			Background(m.theme.Secondary).
			Render(m.spinner.View() + " Analyzing with AI Models...")

	case !av.CanTrigger:
		return button.
			Foreground(m.theme.Muted).
			Background(m.theme.Border).
			Render("Analyze Contract Risks")

	default:
		return button.
			Foreground(m.theme.Foreground).
			Background(m.theme.Primary).
			Render(fmt.Sprintf("Analyze Contract Risks (%s)", m.keymap.Analyze.Help().Key))
	}
}

// wrapWithBorder adds a border around content.
func (m Model) wrapWithBorder(content string) string {
	return m.theme.BorderedBox.
		Width(max(m.width-2, 0)).
		MaxHeight(max(m.height, 1)).
		Render(content)
}
