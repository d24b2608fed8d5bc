package components

// BackToAnalyzerMsg requests leaving the upgrade view.
type BackToAnalyzerMsg struct{}

// UpgradeRequestedMsg is sent when the user picks the paid plan.
type UpgradeRequestedMsg struct {
	Plan string
}
