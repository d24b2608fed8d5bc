// Package viewmodel holds pure display models derived from session state.
// Nothing here renders; components turn these values into styled text.
package viewmodel

import (
	"fmt"

	"github.com/Veraticus/the-fine-print/internal/session"
)

// Static header copy.
const (
	AppTitle    = "AI Contract Risk Analyzer"
	AppTagline  = "Powered by GPT-4, Gemini Pro, and Claude for comprehensive legal analysis"
	SetupNotice = "Setup Required: configure the workflow with your API keys for OpenAI, Google Gemini, " +
		"Anthropic Claude, legal databases and email services, then set webhook.url to your deployed instance."
)

// AppView represents the entire application view model.
type AppView struct {
	Report          *ReportView
	Upgrade         *UpgradeView
	Usage           string
	Error           string
	SelectedFile    string
	Phase           session.Phase
	ContractLength  int
	CanTrigger      bool
	ShowSetupNotice bool
}

// NewAppView derives the screen model from the session.
func NewAppView(s session.State, setupRequired bool) AppView {
	view := AppView{
		Phase:           s.Phase(),
		Usage:           UsageLabel(s.AnalysisCount, s.Gate.Limit),
		Error:           s.LastError,
		SelectedFile:    s.SelectedFile,
		ContractLength:  len([]rune(s.ContractText)),
		CanTrigger:      s.CanTrigger(),
		ShowSetupNotice: setupRequired,
	}

	if s.CurrentAnalysis != nil {
		report := NewReportView(*s.CurrentAnalysis)
		view.Report = &report
	}

	if s.ShowUpgrade {
		upgrade := NewUpgradeView(s.Gate.Limit)
		view.Upgrade = &upgrade
	}

	return view
}

// UsageLabel formats the free-analysis counter shown in the header.
func UsageLabel(count, limit int) string {
	return fmt.Sprintf("%d/%d free analyses used", count, limit)
}

// HasError returns true if the last analysis failed.
func (av AppView) HasError() bool {
	return av.Error != ""
}

// HasReport returns true if a result is available to display.
func (av AppView) HasReport() bool {
	return av.Report != nil
}

// UpgradeView is the upgrade prompt shown once the free limit is used.
type UpgradeView struct {
	Title   string
	Message string
	Plans   []session.Plan
}

// NewUpgradeView builds the upgrade prompt for the given limit.
func NewUpgradeView(limit int) UpgradeView {
	return UpgradeView{
		Title: "Upgrade to Continue",
		Message: fmt.Sprintf(
			"You've used your %d free contract analyses this month. Upgrade to Pro for unlimited access with AI-powered analysis!",
			limit,
		),
		Plans: session.Plans,
	}
}
