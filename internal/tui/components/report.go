package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/the-fine-print/internal/tui/themes"
	"github.com/Veraticus/the-fine-print/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ReportPanelModel displays an analysis report, or the ready panel when no
// report exists yet. Reports taller than the panel scroll.
type ReportPanelModel struct {
	theme    themes.Theme
	report   *viewmodel.ReportView
	viewport viewport.Model
	width    int
	height   int
}

// NewReportPanelModel creates a new report panel.
func NewReportPanelModel(theme themes.Theme) ReportPanelModel {
	m := ReportPanelModel{
		theme:    theme,
		viewport: viewport.New(40, 0),
		width:    40,
	}
	m.refresh()
	return m
}

// SetReport replaces the displayed report and scrolls to its top. A nil
// report shows the ready panel.
func (m *ReportPanelModel) SetReport(report *viewmodel.ReportView) {
	m.report = report
	m.refresh()
	m.viewport.GotoTop()
}

// Resize updates the panel dimensions.
func (m *ReportPanelModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.refresh()
}

// Update handles resize and scroll messages.
func (m ReportPanelModel) Update(msg tea.Msg) (ReportPanelModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.Resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// ScrollPercent reports how far the report is scrolled, from 0 to 1.
func (m ReportPanelModel) ScrollPercent() float64 {
	return m.viewport.ScrollPercent()
}

// View renders the visible part of the panel.
func (m ReportPanelModel) View() string {
	if m.height <= 0 {
		return m.content()
	}
	return m.viewport.View()
}

func (m *ReportPanelModel) refresh() {
	m.viewport.SetContent(m.content())
}

// content renders the whole panel.
func (m ReportPanelModel) content() string {
	if m.report == nil {
		return m.renderReady()
	}

	sections := []string{
		m.theme.Title.Render("AI Risk Analysis Results"),
		m.renderMeta(),
		m.renderConfidence(),
		m.renderOverall(),
		m.renderSources(),
		m.renderCounts(),
		m.renderIssues(),
	}

	if m.report.HasSummary() {
		sections = append(sections, m.renderSummary())
	}

	sections = append(sections, m.renderNextSteps())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ReportPanelModel) contentWidth() int {
	return max(m.width-2, 20)
}

func (m ReportPanelModel) renderReady() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	features := []string{
		"🧠 GPT-4 + Gemini + Claude analysis",
		"🗄  Legal database verification",
		"✉  Email notifications (optional)",
		"✔ Confidence scoring & recommendations",
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Ready for AI Analysis"),
		m.theme.Normal.Width(m.contentWidth()).Render(
			"Upload or paste your contract to get started with our multi-AI powered risk analysis.",
		),
		"",
		muted.Render(strings.Join(features, "\n")),
	)
}

func (m ReportPanelModel) renderMeta() string {
	meta := fmt.Sprintf("Analyzed %s · %s characters",
		m.report.AnalysisDate,
		viewmodel.FormatLength(m.report.ContractLength),
	)
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(meta) + "\n"
}

func (m ReportPanelModel) renderConfidence() string {
	line := fmt.Sprintf("%-24s %s",
		"AI Confidence",
		m.theme.StatusInfo.Render(m.report.Confidence),
	)
	note := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(viewmodel.ConfidenceNote)
	return lipgloss.JoinVertical(lipgloss.Left, line, note, "")
}

func (m ReportPanelModel) renderOverall() string {
	header := fmt.Sprintf("%-24s %s",
		"Overall Risk Level",
		riskBadge(m.theme, m.report.OverallColor, m.report.OverallLabel),
	)

	bar := progress.New(
		progress.WithSolidFill(string(riskColor(m.theme, m.report.OverallColor))),
		progress.WithoutPercentage(),
		progress.WithWidth(m.contentWidth()),
	)

	caption := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.report.ScoreCaption)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		bar.ViewAs(m.report.ScoreFill/100),
		caption,
		"",
	)
}

func (m ReportPanelModel) renderSources() string {
	lines := make([]string, 0, len(viewmodel.AnalysisSources))
	for _, source := range viewmodel.AnalysisSources {
		icon := m.theme.StatusSuccess.Render("✔")
		if source.Kind == viewmodel.SourceDatabase {
			icon = m.theme.StatusInfo.Render("◆")
		}
		lines = append(lines, icon+" "+source.Label)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("AI Analysis Sources:"),
		strings.Join(lines, "\n"),
		"",
	)
}

func (m ReportPanelModel) renderCounts() string {
	high := lipgloss.NewStyle().Bold(true).Foreground(m.theme.RiskHigh).
		Render(fmt.Sprintf("%d", m.report.HighCount))
	medium := lipgloss.NewStyle().Bold(true).Foreground(m.theme.RiskMedium).
		Render(fmt.Sprintf("%d", m.report.MediumCount))

	return fmt.Sprintf("%s High Risk   %s Medium Risk\n", high, medium)
}

func (m ReportPanelModel) renderIssues() string {
	title := m.theme.Subtitle.Render("Detected Issues:")

	if m.report.NoRisks {
		ok := lipgloss.NewStyle().Foreground(m.theme.RiskLow).
			Render("✔ " + viewmodel.NoRisksMessage)
		return lipgloss.JoinVertical(lipgloss.Left, title, ok, "")
	}

	cards := []string{title}
	for _, issue := range m.report.Issues {
		cards = append(cards, m.renderIssue(issue))
	}

	if m.report.HasMore() {
		more := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
			m.report.MoreLabel() + "\n" + viewmodel.UpsellMessage,
		)
		cards = append(cards, more)
	}

	cards = append(cards, "")
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m ReportPanelModel) renderIssue(issue viewmodel.IssueView) string {
	color := riskColor(m.theme, issue.Color)
	width := m.contentWidth() - 2

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(color).Render("⚠ " + viewmodel.SanitizeForDisplay(issue.Name)),
		m.theme.Normal.Width(width).Render(viewmodel.SanitizeForDisplay(issue.Description)),
	}
	if issue.HasMitigation() {
		lines = append(lines, lipgloss.NewStyle().Foreground(color).Width(width).Render(
			"Recommendation: "+viewmodel.SanitizeForDisplay(issue.Mitigation),
		))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1).
		MarginBottom(1).
		Render(strings.Join(lines, "\n"))
}

func (m ReportPanelModel) renderSummary() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("AI Summary:"),
		m.theme.Normal.Width(m.contentWidth()).Render(m.report.Summary),
		"",
	)
}

func (m ReportPanelModel) renderNextSteps() string {
	return m.theme.StatusInfo.UnsetBold().Width(m.contentWidth()).Render(
		"ℹ Next Steps: " + viewmodel.NextStepsNote,
	)
}
