package model

import (
	"encoding/json"
	"log/slog"
	"time"
	"unicode/utf8"
)

// AnalysisTypeComprehensive is the only analysis type the workflow accepts.
const AnalysisTypeComprehensive = "comprehensive"

// AnalysisDateLayout mirrors the en-US short date used in reports.
const AnalysisDateLayout = "1/2/2006"

// AnalysisRequest is the JSON body posted to the analysis webhook.
type AnalysisRequest struct {
	ContractText string `json:"contractText"`
	UserID       string `json:"userId"`
	AnalysisType string `json:"analysisType"`
	UserEmail    string `json:"userEmail,omitempty"`
}

// WebhookRisk is a risk entry as returned by the workflow.
type WebhookRisk struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Severity    RiskLevel `json:"severity"`
	Mitigation  string    `json:"mitigation,omitempty"`
}

// WebhookResponse is the raw JSON body returned by the workflow.
// DetectedRisks is a pointer so an absent field can be told apart from an
// empty one.
type WebhookResponse struct {
	DetectedRisks   *[]WebhookRisk    `json:"detectedRisks"`
	OverallRisk     RiskLevel         `json:"overallRisk"`
	Summary         string            `json:"summary,omitempty"`
	PatternMatches  []json.RawMessage `json:"patternMatches,omitempty"`
	AIAnalyses      json.RawMessage   `json:"aiAnalyses,omitempty"`
	Recommendations json.RawMessage   `json:"recommendations,omitempty"`
	RiskScore       float64           `json:"riskScore"`
	ConfidenceScore float64           `json:"confidenceScore"`
}

// AnalysisResult is a webhook response enriched with locally derived fields.
type AnalysisResult struct {
	OverallRisk     RiskLevel         `json:"overallRisk" yaml:"overallRisk"`
	AnalysisDate    string            `json:"analysisDate" yaml:"analysisDate"`
	Summary         string            `json:"summary,omitempty" yaml:"summary,omitempty"`
	DetectedRisks   []Risk            `json:"detectedRisks" yaml:"detectedRisks"`
	PatternMatches  []json.RawMessage `json:"patternMatches" yaml:"-"`
	AIAnalyses      json.RawMessage   `json:"aiAnalyses,omitempty" yaml:"-"`
	Recommendations json.RawMessage   `json:"recommendations,omitempty" yaml:"-"`
	TotalRiskScore  float64           `json:"totalRiskScore" yaml:"totalRiskScore"`
	ConfidenceScore float64           `json:"confidenceScore" yaml:"confidenceScore"`
	RiskCount       int               `json:"riskCount" yaml:"riskCount"`
	ContractLength  int               `json:"contractLength" yaml:"contractLength"`
}

// Materialize converts a webhook response into an AnalysisResult for the
// submitted contract text. A missing detectedRisks array is treated as empty
// and logged.
func Materialize(resp WebhookResponse, contractText string, receivedAt time.Time) AnalysisResult {
	var raw []WebhookRisk
	if resp.DetectedRisks == nil {
		slog.Warn("Webhook response has no detectedRisks, treating as empty")
	} else {
		raw = *resp.DetectedRisks
	}

	risks := make([]Risk, 0, len(raw))
	for _, r := range raw {
		risks = append(risks, Risk{
			Name:          r.Name,
			Description:   r.Description,
			Severity:      r.Severity,
			Mitigation:    r.Mitigation,
			Matched:       true,
			SeverityScore: r.Severity.Score(),
		})
	}

	patterns := resp.PatternMatches
	if patterns == nil {
		patterns = []json.RawMessage{}
	}

	return AnalysisResult{
		OverallRisk:     resp.OverallRisk,
		TotalRiskScore:  resp.RiskScore,
		ConfidenceScore: resp.ConfidenceScore,
		DetectedRisks:   risks,
		PatternMatches:  patterns,
		AIAnalyses:      resp.AIAnalyses,
		RiskCount:       len(risks),
		ContractLength:  utf8.RuneCountInString(contractText),
		AnalysisDate:    receivedAt.Format(AnalysisDateLayout),
		Summary:         resp.Summary,
		Recommendations: resp.Recommendations,
	}
}

// CountBySeverity returns how many detected risks carry the given severity.
func (r AnalysisResult) CountBySeverity(level RiskLevel) int {
	count := 0
	for _, risk := range r.DetectedRisks {
		if risk.Severity == level {
			count++
		}
	}
	return count
}
