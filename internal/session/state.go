// Package session holds the volatile per-run state of the analyzer: the
// collected input, the usage gate, the in-flight flag and the last result.
//
// State is changed only through its transition methods. The TUI calls them
// from its Update loop, so every change happens on one goroutine.
package session

import (
	"log/slog"

	"github.com/Veraticus/the-fine-print/internal/common"
	"github.com/Veraticus/the-fine-print/internal/model"
)

// Phase is the view-level state derived from State.
type Phase int

const (
	// PhaseIdle means no analysis has completed yet and nothing is running.
	PhaseIdle Phase = iota
	// PhaseAnalyzing means a request is in flight.
	PhaseAnalyzing
	// PhaseResult means the last request succeeded.
	PhaseResult
	// PhaseError means the last request failed; the view stays interactive.
	PhaseError
	// PhaseUpgrade means the gate denied a trigger and the upgrade prompt is shown.
	PhaseUpgrade
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAnalyzing:
		return "Analyzing"
	case PhaseResult:
		return "Result"
	case PhaseError:
		return "Error"
	case PhaseUpgrade:
		return "Upgrade"
	default:
		return "Unknown"
	}
}

// TriggerOutcome is the decision taken when the user asks for an analysis.
type TriggerOutcome int

const (
	// TriggerDisabled means the trigger control is inactive: no text, or a request is running.
	TriggerDisabled TriggerOutcome = iota
	// TriggerUpgrade means the gate denied the request and the upgrade view is shown.
	TriggerUpgrade
	// TriggerStart means the caller must issue exactly one analysis request.
	TriggerStart
)

// State is the session state of one analyzer run.
type State struct {
	CurrentAnalysis *model.AnalysisResult
	ContractText    string
	SelectedFile    string
	UserEmail       string
	LastError       string
	Gate            Gate
	AnalysisCount   int
	IsAnalyzing     bool
	ShowUpgrade     bool
}

// New creates an empty session guarded by gate.
func New(gate Gate) State {
	return State{Gate: gate}
}

// SetTextInput replaces the contract text.
func (s *State) SetTextInput(text string) {
	s.ContractText = text
}

// SetFileInput records the chosen file. The text is replaced once the read
// completes via FileLoaded.
func (s *State) SetFileInput(path string) {
	s.SelectedFile = path
}

// FileLoaded replaces the contract text with the contents read from path.
func (s *State) FileLoaded(path, text string) {
	slog.Debug("Contract file loaded", "path", path, "length", len(text))
	s.ContractText = text
}

// FileFailed records a failed file read.
func (s *State) FileFailed(path string, err error) {
	slog.Warn("Failed to read contract file", "path", path, "error", err)
	s.LastError = common.UserMessage(err)
}

// SetEmail replaces the optional notification address.
func (s *State) SetEmail(email string) {
	s.UserEmail = email
}

// CanTrigger reports whether the analyze control is enabled.
func (s State) CanTrigger() bool {
	return s.ContractText != "" && !s.IsAnalyzing
}

// CanAnalyze reports whether the gate still permits an analysis.
func (s State) CanAnalyze() bool {
	return s.Gate.CanAnalyze(s.AnalysisCount)
}

// Trigger decides what happens when the user asks for an analysis. The gate
// is checked here, before any request can be issued.
func (s *State) Trigger() TriggerOutcome {
	if !s.CanTrigger() {
		return TriggerDisabled
	}

	if !s.CanAnalyze() {
		s.ShowUpgrade = true
		slog.Info("Free analysis limit reached", "count", s.AnalysisCount, "limit", s.Gate.Limit)
		return TriggerUpgrade
	}

	s.IsAnalyzing = true
	s.LastError = ""
	return TriggerStart
}

// Succeeded stores result and counts the analysis.
func (s *State) Succeeded(result model.AnalysisResult) {
	s.CurrentAnalysis = &result
	s.AnalysisCount++
	s.IsAnalyzing = false
}

// Failed records err for display. The previous result, if any, stays visible.
func (s *State) Failed(err error) {
	s.LastError = common.UserMessage(err)
	if s.LastError == "" {
		s.LastError = "Analysis failed"
	}
	s.IsAnalyzing = false
}

// Back leaves the upgrade view without touching anything else.
func (s *State) Back() {
	s.ShowUpgrade = false
}

// Phase derives the view-level state.
func (s State) Phase() Phase {
	switch {
	case s.ShowUpgrade:
		return PhaseUpgrade
	case s.IsAnalyzing:
		return PhaseAnalyzing
	case s.LastError != "":
		return PhaseError
	case s.CurrentAnalysis != nil:
		return PhaseResult
	default:
		return PhaseIdle
	}
}
