// Package model defines the core domain models used throughout the application.
package model

// RiskLevel is the overall or per-risk severity reported by the analysis workflow.
type RiskLevel string

// Risk levels understood by the renderer. Any other value is rendered with
// the neutral default style.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Score maps a severity onto the 1-3 scale used for ordering and display.
// Unknown severities score as low.
func (l RiskLevel) Score() int {
	switch l {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	default:
		return 1
	}
}

// IsKnown reports whether the level is one of low, medium or high.
func (l RiskLevel) IsKnown() bool {
	return l == RiskLow || l == RiskMedium || l == RiskHigh
}

// Risk is a single issue detected in a contract.
type Risk struct {
	Name          string    `json:"name" yaml:"name"`
	Description   string    `json:"description" yaml:"description"`
	Severity      RiskLevel `json:"severity" yaml:"severity"`
	Mitigation    string    `json:"mitigation,omitempty" yaml:"mitigation,omitempty"`
	SeverityScore int       `json:"severityScore" yaml:"severityScore"`
	Matched       bool      `json:"matched" yaml:"matched"`
}
