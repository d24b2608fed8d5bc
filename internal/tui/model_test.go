package tui_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Veraticus/the-fine-print/internal/common"
	"github.com/Veraticus/the-fine-print/internal/model"
	"github.com/Veraticus/the-fine-print/internal/session"
	"github.com/Veraticus/the-fine-print/internal/tui"
	tuitest "github.com/Veraticus/the-fine-print/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	err    error
	calls  []string
	emails []string
	result model.AnalysisResult
	mu     sync.Mutex
}

func (f *fakeAnalyzer) Analyze(_ context.Context, contractText, userEmail string) (model.AnalysisResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, contractText)
	f.emails = append(f.emails, userEmail)
	if f.err != nil {
		return model.AnalysisResult{}, f.err
	}
	return f.result, nil
}

func (f *fakeAnalyzer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func sampleResult() model.AnalysisResult {
	return model.AnalysisResult{
		OverallRisk:     model.RiskHigh,
		TotalRiskScore:  8.5,
		ConfidenceScore: 92,
		AnalysisDate:    "3/7/2024",
		Summary:         "Several one-sided clauses.",
		DetectedRisks: []model.Risk{
			{Name: "Unlimited Liability", Description: "No cap on damages.", Severity: model.RiskHigh, Mitigation: "Add a cap."},
			{Name: "Auto Renewal", Description: "Renews silently.", Severity: model.RiskMedium},
		},
		RiskCount:      2,
		ContractLength: 11,
	}
}

func newTestModel(t *testing.T, analyzer *fakeAnalyzer, opts ...tui.Option) tea.Model {
	t.Helper()
	opts = append([]tui.Option{tui.WithAnalyzer(analyzer), tui.WithSize(120, 60)}, opts...)
	return tui.NewModel(context.Background(), opts...)
}

func sessionOf(t *testing.T, m tea.Model) session.State {
	t.Helper()
	tm, ok := m.(tui.Model)
	require.True(t, ok)
	return tm.Session()
}

// analyzeOnce triggers an analysis and feeds the resulting messages back.
func analyzeOnce(t *testing.T, r *tuitest.TestRenderer, m tea.Model) tea.Model {
	t.Helper()
	m, cmd := r.Update(m, tuitest.KeyAnalyze())
	require.NotNil(t, cmd)
	assert.True(t, sessionOf(t, m).IsAnalyzing)

	return r.Send(m, tuitest.Run(cmd)...)
}

func TestModelTypingUpdatesSession(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, &fakeAnalyzer{})

	m = r.Send(m, tuitest.Typed("Pay $5")...)

	s := sessionOf(t, m)
	assert.Equal(t, "Pay $5", s.ContractText)
	assert.True(t, s.CanTrigger())
	assert.Contains(t, r.PlainOutput(), "6 characters")
}

func TestModelAnalyzeSuccess(t *testing.T) {
	analyzer := &fakeAnalyzer{result: sampleResult()}
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, analyzer)

	m = r.Send(m, tuitest.Typed("Contract")...)
	m = analyzeOnce(t, r, m)

	s := sessionOf(t, m)
	assert.Equal(t, 1, analyzer.callCount())
	assert.Equal(t, []string{"Contract"}, analyzer.calls)
	assert.Equal(t, 1, s.AnalysisCount)
	assert.False(t, s.IsAnalyzing)
	require.NotNil(t, s.CurrentAnalysis)
	assert.Equal(t, session.PhaseResult, s.Phase())

	out := r.PlainOutput()
	assert.Contains(t, out, "1/2 free analyses used")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "Score: 8.5/10")
	assert.Contains(t, out, "Unlimited Liability")
}

func TestModelPassesEmail(t *testing.T) {
	analyzer := &fakeAnalyzer{result: sampleResult()}
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, analyzer)

	m = r.Send(m, tuitest.Typed("Contract")...)
	// Contract -> Email wraps around.
	m = r.Send(m, tuitest.KeyTab())
	m = r.Send(m, tuitest.Typed("me@example.com")...)
	assert.Equal(t, "me@example.com", sessionOf(t, m).UserEmail)

	analyzeOnce(t, r, m)
	assert.Equal(t, []string{"me@example.com"}, analyzer.emails)
}

func TestModelTriggerDisabledWithoutText(t *testing.T) {
	analyzer := &fakeAnalyzer{result: sampleResult()}
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, analyzer)

	m, cmd := r.Update(m, tuitest.KeyAnalyze())

	assert.Nil(t, cmd)
	assert.Equal(t, 0, analyzer.callCount())
	assert.Equal(t, session.PhaseIdle, sessionOf(t, m).Phase())
}

func TestModelTriggerIgnoredWhileAnalyzing(t *testing.T) {
	analyzer := &fakeAnalyzer{result: sampleResult()}
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, analyzer)

	m = r.Send(m, tuitest.Typed("Contract")...)
	m, first := r.Update(m, tuitest.KeyAnalyze())
	require.NotNil(t, first)

	m, second := r.Update(m, tuitest.KeyAnalyze())
	assert.Nil(t, second)
	assert.Contains(t, r.PlainOutput(), "Analyzing with AI Models...")
	assert.True(t, sessionOf(t, m).IsAnalyzing)
}

func TestModelGateBlocksWithoutNetwork(t *testing.T) {
	analyzer := &fakeAnalyzer{result: sampleResult()}
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, analyzer)

	m = r.Send(m, tuitest.Typed("Contract")...)
	m = analyzeOnce(t, r, m)
	m = analyzeOnce(t, r, m)
	require.Equal(t, 2, sessionOf(t, m).AnalysisCount)

	m, cmd := r.Update(m, tuitest.KeyAnalyze())

	assert.Nil(t, cmd)
	assert.Equal(t, 2, analyzer.callCount())
	s := sessionOf(t, m)
	assert.True(t, s.ShowUpgrade)
	assert.Equal(t, 2, s.AnalysisCount)
	assert.False(t, s.IsAnalyzing)

	out := r.PlainOutput()
	assert.Contains(t, out, "Back to Analyzer")
	assert.Contains(t, out, "Upgrade to Pro")
}

func TestModelBackFromUpgrade(t *testing.T) {
	analyzer := &fakeAnalyzer{result: sampleResult()}
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, analyzer, tui.WithFreeAnalyses(0))

	m = r.Send(m, tuitest.Typed("Contract")...)
	m, cmd := r.Update(m, tuitest.KeyAnalyze())
	assert.Nil(t, cmd)
	require.True(t, sessionOf(t, m).ShowUpgrade)

	// Typing in the upgrade view does not reach the contract field.
	m = r.Send(m, tuitest.KeyPress("x"))
	m, cmd = r.Update(m, tuitest.KeyEsc())
	require.NotNil(t, cmd)
	m = r.Send(m, tuitest.Run(cmd)...)

	s := sessionOf(t, m)
	assert.False(t, s.ShowUpgrade)
	assert.Equal(t, "Contract", s.ContractText)
	assert.Equal(t, 0, s.AnalysisCount)
	assert.Nil(t, s.CurrentAnalysis)
	assert.Equal(t, 0, analyzer.callCount())
	assert.Contains(t, r.PlainOutput(), "0/0 free analyses used")
}

func TestModelFailureKeepsStaleResult(t *testing.T) {
	analyzer := &fakeAnalyzer{result: sampleResult()}
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, analyzer, tui.WithFreeAnalyses(5))

	m = r.Send(m, tuitest.Typed("Contract")...)
	m = analyzeOnce(t, r, m)

	analyzer.err = common.NewUserError("Analysis failed: Internal Server Error", common.ErrAnalysisFailed)
	m = analyzeOnce(t, r, m)

	s := sessionOf(t, m)
	assert.Equal(t, "Analysis failed: Internal Server Error", s.LastError)
	assert.Equal(t, 1, s.AnalysisCount)
	require.NotNil(t, s.CurrentAnalysis)
	assert.Equal(t, session.PhaseError, s.Phase())

	out := r.PlainOutput()
	assert.Contains(t, out, "Analysis failed: Internal Server Error")
	assert.Contains(t, out, "Unlimited Liability")
}

func TestModelFailureWithPlainError(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("boom")}
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, analyzer)

	m = r.Send(m, tuitest.Typed("Contract")...)
	m = analyzeOnce(t, r, m)

	s := sessionOf(t, m)
	assert.Equal(t, "boom", s.LastError)
	assert.Equal(t, 0, s.AnalysisCount)
	assert.Nil(t, s.CurrentAnalysis)
}

func TestModelWithoutAnalyzer(t *testing.T) {
	r := tuitest.NewTestRenderer()
	var m tea.Model = tui.NewModel(context.Background(), tui.WithSize(120, 60))

	m = r.Send(m, tuitest.Typed("Contract")...)
	m = analyzeOnce(t, r, m)

	s := sessionOf(t, m)
	assert.Contains(t, s.LastError, "no analysis service configured")
	assert.Equal(t, 0, s.AnalysisCount)
}

func TestModelLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lease.txt")
	content := "Tenant\tshall pay\r\nrent monthly."
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	analyzer := &fakeAnalyzer{result: sampleResult()}
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, analyzer)

	m = r.Send(m, tuitest.Typed("typed first")...)
	m = r.Send(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	m = r.Send(m, tuitest.Typed(path)...)

	m, cmd := r.Update(m, tuitest.KeyEnter())
	require.NotNil(t, cmd)
	assert.Equal(t, path, sessionOf(t, m).SelectedFile)

	m = r.Send(m, tuitest.Run(cmd)...)

	s := sessionOf(t, m)
	assert.Equal(t, content, s.ContractText)
	assert.Empty(t, s.LastError)

	analyzeOnce(t, r, m)
	require.Equal(t, 1, analyzer.callCount())
	assert.Equal(t, content, analyzer.calls[0])
}

func TestModelFileReadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, &fakeAnalyzer{})

	m = r.Send(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	m = r.Send(m, tuitest.Typed(path)...)
	m, cmd := r.Update(m, tuitest.KeyEnter())
	require.NotNil(t, cmd)
	m = r.Send(m, tuitest.Run(cmd)...)

	s := sessionOf(t, m)
	assert.Equal(t, "Could not read "+path, s.LastError)
	assert.Empty(t, s.ContractText)
}

func TestModelSetupNotice(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, &fakeAnalyzer{}, tui.WithSetupNotice(true))

	r.Send(m, tuitest.WindowSize(140, 50))

	assert.Contains(t, r.PlainOutput(), "Setup Required")
}

func TestModelQuit(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := newTestModel(t, &fakeAnalyzer{})

	m, cmd := r.Update(m, tuitest.KeyQuit())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}
