package viewmodel

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/the-fine-print/internal/model"
)

// MaxVisibleIssues is how many detected risks the report lists.
const MaxVisibleIssues = 3

// Static report copy.
const (
	NoRisksMessage = "No major risks detected by AI analysis!"
	UpsellMessage  = "Upgrade for full analysis."
	NextStepsNote  = "This analysis used advanced AI models for comprehensive risk assessment. " +
		"Consider consulting with legal counsel for contracts with high-risk scores."
	ConfidenceNote = "Based on multi-AI consensus"
)

// AnalysisSources are the provenance lines shown under every report.
var AnalysisSources = []SourceView{
	{Label: "OpenAI GPT-4 Legal Analysis", Kind: SourceModel},
	{Label: "Google Gemini Pro Review", Kind: SourceModel},
	{Label: "Claude Legal Expertise", Kind: SourceModel},
	{Label: "Legal Database Verification", Kind: SourceDatabase},
}

// RiskColor is the colour class applied to badges, bars and issue cards.
type RiskColor int

const (
	// ColorDefault is used for unknown or missing levels.
	ColorDefault RiskColor = iota
	// ColorLow marks low risk.
	ColorLow
	// ColorMedium marks medium risk.
	ColorMedium
	// ColorHigh marks high risk.
	ColorHigh
)

// String returns a string representation of the colour class.
func (c RiskColor) String() string {
	switch c {
	case ColorLow:
		return "low"
	case ColorMedium:
		return "medium"
	case ColorHigh:
		return "high"
	default:
		return "default"
	}
}

// RiskColorFor classifies a risk level.
func RiskColorFor(level model.RiskLevel) RiskColor {
	switch level {
	case model.RiskHigh:
		return ColorHigh
	case model.RiskMedium:
		return ColorMedium
	case model.RiskLow:
		return ColorLow
	default:
		return ColorDefault
	}
}

// SourceKind distinguishes AI model sources from database sources.
type SourceKind int

const (
	// SourceModel is an AI model review.
	SourceModel SourceKind = iota
	// SourceDatabase is a legal database lookup.
	SourceDatabase
)

// SourceView is one line of the analysis sources list.
type SourceView struct {
	Label string
	Kind  SourceKind
}

// IssueView is one detected risk as displayed.
type IssueView struct {
	Name        string
	Description string
	Mitigation  string
	Severity    model.RiskLevel
	Color       RiskColor
}

// HasMitigation returns true if the issue carries a recommendation.
func (i IssueView) HasMitigation() bool {
	return i.Mitigation != ""
}

// ReportView is the display form of an AnalysisResult.
type ReportView struct {
	OverallLabel   string
	ScoreCaption   string
	Confidence     string
	Summary        string
	AnalysisDate   string
	Issues         []IssueView
	ScoreFill      float64
	ContractLength int
	HighCount      int
	MediumCount    int
	Remaining      int
	OverallColor   RiskColor
	NoRisks        bool
}

// NewReportView maps a result onto the report vocabulary.
func NewReportView(result model.AnalysisResult) ReportView {
	label := strings.ToUpper(string(result.OverallRisk))
	if label == "" {
		label = "UNKNOWN"
	}

	visible := result.DetectedRisks
	if len(visible) > MaxVisibleIssues {
		visible = visible[:MaxVisibleIssues]
	}

	issues := make([]IssueView, 0, len(visible))
	for _, risk := range visible {
		issues = append(issues, IssueView{
			Name:        risk.Name,
			Description: risk.Description,
			Mitigation:  risk.Mitigation,
			Severity:    risk.Severity,
			Color:       issueColor(risk.Severity),
		})
	}

	return ReportView{
		OverallLabel:   label,
		OverallColor:   RiskColorFor(result.OverallRisk),
		ScoreFill:      ScoreFill(result.TotalRiskScore),
		ScoreCaption:   fmt.Sprintf("Score: %s/10", FormatNumber(result.TotalRiskScore)),
		Confidence:     FormatNumber(result.ConfidenceScore) + "%",
		HighCount:      result.CountBySeverity(model.RiskHigh),
		MediumCount:    result.CountBySeverity(model.RiskMedium),
		Issues:         issues,
		Remaining:      max(len(result.DetectedRisks)-MaxVisibleIssues, 0),
		NoRisks:        len(result.DetectedRisks) == 0,
		Summary:        result.Summary,
		AnalysisDate:   result.AnalysisDate,
		ContractLength: result.ContractLength,
	}
}

// issueColor highlights high risks and shows everything else as a warning.
func issueColor(level model.RiskLevel) RiskColor {
	if level == model.RiskHigh {
		return ColorHigh
	}
	return ColorMedium
}

// ScoreFill converts a 0-10 risk score into a bar fill percentage, capped at 100.
// Negative scores pass through unchanged.
func ScoreFill(score float64) float64 {
	return math.Min(score/10*100, 100)
}

// HasMore returns true if risks were left out of the issue list.
func (v ReportView) HasMore() bool {
	return v.Remaining > 0
}

// MoreLabel returns the "+N more" line for hidden risks.
func (v ReportView) MoreLabel() string {
	if !v.HasMore() {
		return ""
	}
	return fmt.Sprintf("+%d more risks detected.", v.Remaining)
}

// HasSummary returns true if the workflow produced a summary.
func (v ReportView) HasSummary() bool {
	return v.Summary != ""
}
