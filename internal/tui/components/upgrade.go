package components

import (
	"strings"

	"github.com/Veraticus/the-fine-print/internal/tui/themes"
	"github.com/Veraticus/the-fine-print/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Upgrade view actions, in cursor order.
const (
	upgradeActionBack = iota
	upgradeActionUpgrade
	upgradeActionCount
)

// UpgradeModel shows the plan comparison once the free limit is used up.
type UpgradeModel struct {
	theme  themes.Theme
	view   viewmodel.UpgradeView
	cursor int
	width  int
	height int
}

// NewUpgradeModel creates a new upgrade view.
func NewUpgradeModel(view viewmodel.UpgradeView, theme themes.Theme) UpgradeModel {
	return UpgradeModel{
		view:  view,
		theme: theme,
	}
}

// Update handles messages.
func (m UpgradeModel) Update(msg tea.Msg) (UpgradeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "shift+tab":
			m.cursor = (m.cursor + upgradeActionCount - 1) % upgradeActionCount
		case "right", "l", "tab":
			m.cursor = (m.cursor + 1) % upgradeActionCount
		case "b", "esc":
			return m, backToAnalyzer
		case "u":
			return m, m.upgradeRequested
		case "enter":
			if m.cursor == upgradeActionBack {
				return m, backToAnalyzer
			}
			return m, m.upgradeRequested
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func backToAnalyzer() tea.Msg {
	return BackToAnalyzerMsg{}
}

func (m UpgradeModel) upgradeRequested() tea.Msg {
	for _, plan := range m.view.Plans {
		if plan.Suggested {
			return UpgradeRequestedMsg{Plan: plan.Name}
		}
	}
	return UpgradeRequestedMsg{}
}

// Resize updates the view dimensions.
func (m *UpgradeModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the upgrade prompt.
func (m UpgradeModel) View() string {
	title := m.theme.Title.Render("⚡ " + m.view.Title)
	message := m.theme.Normal.Width(min(max(m.width-4, 30), 70)).Align(lipgloss.Center).Render(m.view.Message)

	cards := make([]string, 0, len(m.view.Plans))
	for _, plan := range m.view.Plans {
		cards = append(cards, m.renderPlan(plan.Name, plan.Price+plan.Period, plan.Features, plan.Suggested))
	}
	plans := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	help := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[←→] Choose | [Enter] Confirm | [b/Esc] Back | [u] Upgrade")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		message,
		"",
		plans,
		"",
		m.renderActions(),
		"",
		help,
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m UpgradeModel) renderPlan(name, price string, features []string, suggested bool) string {
	border := m.theme.Border
	if suggested {
		border = m.theme.Primary
	}

	bullets := make([]string, 0, len(features))
	for _, f := range features {
		bullets = append(bullets, "• "+f)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Bold.Render(name),
		lipgloss.NewStyle().Bold(true).Foreground(border).Render(price),
		"",
		m.theme.Normal.Render(strings.Join(bullets, "\n")),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Margin(0, 1).
		Width(36).
		Render(body)
}

func (m UpgradeModel) renderActions() string {
	labels := []string{"Back to Analyzer", "Upgrade to Pro"}
	buttons := make([]string, 0, len(labels))
	for i, label := range labels {
		style := m.theme.Normal.Padding(0, 2)
		if i == m.cursor {
			style = m.theme.Selected.Padding(0, 2)
		}
		buttons = append(buttons, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons[0], "   ", buttons[1])
}
