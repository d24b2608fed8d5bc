package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/the-fine-print/internal/model"
	"github.com/Veraticus/the-fine-print/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format selects how an analysis is written.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Renderer writes analysis results for the non-interactive commands.
type Renderer struct {
	writer io.Writer
	format Format
	width  int
}

// NewRenderer creates a renderer writing format to w.
func NewRenderer(w io.Writer, format Format) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{
		writer: w,
		format: format,
		width:  76,
	}
}

// Render writes result in the configured format.
func (r *Renderer) Render(result model.AnalysisResult) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode analysis as json: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(r.writer)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode analysis as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
		return nil

	default:
		if _, err := fmt.Fprintln(r.writer, r.renderText(viewmodel.NewReportView(result))); err != nil {
			return fmt.Errorf("failed to write analysis: %w", err)
		}
		return nil
	}
}

func (r *Renderer) renderText(report viewmodel.ReportView) string {
	sections := []string{
		fmt.Sprintf("%s %s  %s",
			BoldStyle.Render("Overall Risk Level:"),
			RiskStyle(report.OverallColor).Render(report.OverallLabel),
			SubtleStyle.Render(report.ScoreCaption),
		),
		fmt.Sprintf("%s %s  %s",
			BoldStyle.Render("AI Confidence:"),
			InfoStyle.Render(report.Confidence),
			SubtleStyle.Render(viewmodel.ConfidenceNote),
		),
		SubtleStyle.Render(fmt.Sprintf("Analyzed %s · %s characters",
			report.AnalysisDate,
			viewmodel.FormatLength(report.ContractLength),
		)),
		"",
		fmt.Sprintf("%s High Risk   %s Medium Risk",
			RiskStyle(viewmodel.ColorHigh).Render(fmt.Sprintf("%d", report.HighCount)),
			RiskStyle(viewmodel.ColorMedium).Render(fmt.Sprintf("%d", report.MediumCount)),
		),
		"",
		BoldStyle.Render("Detected Issues:"),
	}

	if report.NoRisks {
		sections = append(sections, FormatSuccess(viewmodel.NoRisksMessage))
	}

	for _, issue := range report.Issues {
		sections = append(sections, r.renderIssue(issue))
	}

	if report.HasMore() {
		sections = append(sections, SubtleStyle.Render(report.MoreLabel()+" "+viewmodel.UpsellMessage))
	}

	if report.HasSummary() {
		sections = append(sections,
			"",
			BoldStyle.Render("AI Summary:"),
			lipgloss.NewStyle().Width(r.width).Render(report.Summary),
		)
	}

	sections = append(sections,
		"",
		lipgloss.NewStyle().Width(r.width).Render(FormatInfo("Next Steps: "+viewmodel.NextStepsNote)),
	)

	return RenderBox(ContractIcon+" AI Risk Analysis Results", strings.Join(sections, "\n"))
}

func (r *Renderer) renderIssue(issue viewmodel.IssueView) string {
	lines := []string{
		RiskStyle(issue.Color).Render(WarningIcon + " " + viewmodel.SanitizeForDisplay(issue.Name)),
	}
	if issue.Description != "" {
		lines = append(lines, "   "+viewmodel.SanitizeForDisplay(issue.Description))
	}
	if issue.HasMitigation() {
		lines = append(lines, "   "+SuccessStyle.Render("Recommendation: "+viewmodel.SanitizeForDisplay(issue.Mitigation)))
	}
	return strings.Join(lines, "\n")
}
