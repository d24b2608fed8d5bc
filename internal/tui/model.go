package tui

import (
	"context"
	"log/slog"

	"github.com/Veraticus/the-fine-print/internal/session"
	"github.com/Veraticus/the-fine-print/internal/tui/components"
	"github.com/Veraticus/the-fine-print/internal/tui/themes"
	"github.com/Veraticus/the-fine-print/internal/tui/viewmodel"
	"github.com/Veraticus/the-fine-print/internal/webhook"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model holds the main TUI state.
type Model struct {
	ctx      context.Context
	theme    themes.Theme
	analyzer webhook.Analyzer
	session  session.State
	input    components.InputPanelModel
	report   components.ReportPanelModel
	upgrade  components.UpgradeModel
	spinner  spinner.Model
	help     help.Model
	keymap   KeyMap
	status   string
	config   Config
	width    int
	height   int
	quitting bool
}

// NewModel creates the analyzer model. Most callers want Run instead.
func NewModel(ctx context.Context, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	m := Model{
		ctx:      ctx,
		theme:    cfg.Theme,
		analyzer: cfg.Analyzer,
		session:  session.New(cfg.gate()),
		input:    components.NewInputPanelModel(cfg.Theme),
		report:   components.NewReportPanelModel(cfg.Theme),
		spinner:  s,
		help:     help.New(),
		keymap:   DefaultKeyMap(),
		config:   cfg,
		width:    cfg.Width,
		height:   cfg.Height,
	}
	m.handleResize()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case fileLoadedMsg:
		m.session.FileLoaded(msg.path, msg.text)
		m.input.SetContract(msg.text)
		m.status = "Loaded " + msg.path
		return m, nil

	case fileLoadFailedMsg:
		m.session.FileFailed(msg.path, msg.err)
		m.status = ""
		return m, nil

	case analysisCompleteMsg:
		m.session.Succeeded(msg.result)
		m.report.SetReport(m.reportView())
		m.status = ""
		return m, nil

	case analysisFailedMsg:
		m.session.Failed(msg.err)
		m.status = ""
		return m, nil

	case components.BackToAnalyzerMsg:
		m.session.Back()
		return m, nil

	case components.UpgradeRequestedMsg:
		slog.Info("Upgrade requested", "plan", msg.Plan)
		m.status = "Upgrades are not available yet"
		return m, nil

	case spinner.TickMsg:
		if !m.session.IsAnalyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen
	}

	if m.session.ShowUpgrade {
		var cmd tea.Cmd
		m.upgrade, cmd = m.upgrade.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Analyze):
		return m, m.trigger()

	case key.Matches(msg, m.keymap.NextField):
		m.input.NextField()
		return m, nil

	case key.Matches(msg, m.keymap.PrevField):
		m.input.PrevField()
		return m, nil

	case key.Matches(msg, m.keymap.ScrollUp, m.keymap.ScrollDown):
		var cmd tea.Cmd
		m.report, cmd = m.report.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keymap.OpenFile):
		m.input.SetFocus(components.FieldFile)
		return m, nil

	case key.Matches(msg, m.keymap.LoadFile) && m.input.Focus() == components.FieldFile:
		return m, m.loadFile()

	case key.Matches(msg, m.keymap.LoadFile) && m.input.Focus() == components.FieldEmail:
		m.input.NextField()
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput forwards a key to the focused field and copies any edit into
// the session.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	contract := m.input.Contract()
	email := m.input.Email()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if text := m.input.Contract(); text != contract {
		m.session.SetTextInput(text)
	}
	if addr := m.input.Email(); addr != email {
		m.session.SetEmail(addr)
	}

	return m, cmd
}

// trigger runs the gate and, when allowed, starts an analysis.
func (m *Model) trigger() tea.Cmd {
	switch m.session.Trigger() {
	case session.TriggerDisabled:
		return nil

	case session.TriggerUpgrade:
		m.upgrade = components.NewUpgradeModel(viewmodel.NewUpgradeView(m.session.Gate.Limit), m.theme)
		m.upgrade.Resize(m.width, m.height)
		return nil

	case session.TriggerStart:
		m.status = ""
		return tea.Batch(
			m.spinner.Tick,
			analyze(m.ctx, m.analyzer, m.session.ContractText, m.session.UserEmail),
		)
	}

	return nil
}

// loadFile records the chosen path and reads it.
func (m *Model) loadFile() tea.Cmd {
	path := m.input.FilePath()
	if path == "" {
		return nil
	}

	m.session.SetFileInput(path)
	m.status = "Reading " + path + "..."

	return readFile(path)
}

// reportView derives the report for the current analysis.
func (m Model) reportView() *viewmodel.ReportView {
	return viewmodel.NewAppView(m.session, m.config.SetupRequired).Report
}

// handleResize updates component sizes based on window dimensions.
func (m *Model) handleResize() {
	inputWidth, reportWidth := m.columnWidths()
	bodyHeight := max(m.height-headerHeight-footerHeight, 10)

	if m.isCompact() {
		m.input.Resize(m.innerWidth(), bodyHeight/2)
		m.report.Resize(m.innerWidth(), bodyHeight/2)
	} else {
		m.input.Resize(inputWidth, bodyHeight)
		m.report.Resize(reportWidth, bodyHeight)
	}
	m.upgrade.Resize(m.width, m.height)
	m.help.Width = m.width
}

// isCompact reports whether the columns should stack.
func (m Model) isCompact() bool {
	return m.width < compactWidth
}

// innerWidth is the usable width inside the bordered frame.
func (m Model) innerWidth() int {
	return max(m.width-frameWidth, 20)
}

// leftWidth is the width available to the input column.
func (m Model) leftWidth() int {
	if m.isCompact() {
		return m.innerWidth()
	}
	left, _ := m.columnWidths()
	return left
}

func (m Model) columnWidths() (int, int) {
	usable := m.innerWidth() - len([]rune(separator))
	inputWidth := usable / 2
	return inputWidth, usable - inputWidth
}

// Session returns a copy of the current session state.
func (m Model) Session() session.State {
	return m.session
}
