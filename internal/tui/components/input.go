package components

import (
	"fmt"

	"github.com/Veraticus/the-fine-print/internal/tui/themes"
	"github.com/Veraticus/the-fine-print/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AcceptedExtensions is the file type hint shown next to the file prompt.
// It is advisory; any file is read as text.
const AcceptedExtensions = ".txt,.pdf,.doc,.docx"

// Field identifies an input on the panel.
type Field int

const (
	// FieldEmail is the optional notification address.
	FieldEmail Field = iota
	// FieldFile is the path of a contract file to load.
	FieldFile
	// FieldContract is the contract text area.
	FieldContract
	fieldCount
)

// InputPanelModel collects the contract text, a file path and an email.
type InputPanelModel struct {
	theme    themes.Theme
	email    textinput.Model
	file     textinput.Model
	contract textarea.Model
	focus    Field
	width    int
	height   int
}

// NewInputPanelModel creates a new input panel with the contract area focused.
func NewInputPanelModel(theme themes.Theme) InputPanelModel {
	email := textinput.New()
	email.Placeholder = "your@email.com"
	email.Prompt = ""
	email.CharLimit = 254

	file := textinput.New()
	file.Placeholder = "~/contracts/agreement.txt"
	file.Prompt = ""

	contract := textarea.New()
	contract.Placeholder = "Paste your contract text here..."
	contract.ShowLineNumbers = false
	contract.CharLimit = 0
	contract.MaxHeight = 0

	m := InputPanelModel{
		theme:    theme,
		email:    email,
		file:     file,
		contract: contract,
		width:    60,
		height:   20,
	}
	m.Resize(m.width, m.height)
	m.SetFocus(FieldContract)
	return m
}

// Focus returns the focused field.
func (m InputPanelModel) Focus() Field {
	return m.focus
}

// SetFocus moves keyboard focus to field.
func (m *InputPanelModel) SetFocus(field Field) {
	m.focus = field
	m.email.Blur()
	m.file.Blur()
	m.contract.Blur()

	switch field {
	case FieldEmail:
		m.email.Focus()
	case FieldFile:
		m.file.Focus()
	case FieldContract:
		m.contract.Focus()
	}
}

// NextField cycles focus forward.
func (m *InputPanelModel) NextField() {
	m.SetFocus((m.focus + 1) % fieldCount)
}

// PrevField cycles focus backward.
func (m *InputPanelModel) PrevField() {
	m.SetFocus((m.focus + fieldCount - 1) % fieldCount)
}

// Contract returns the text area contents.
func (m InputPanelModel) Contract() string {
	return m.contract.Value()
}

// SetContract replaces the text area contents.
func (m *InputPanelModel) SetContract(text string) {
	m.contract.SetValue(text)
}

// Email returns the email field contents.
func (m InputPanelModel) Email() string {
	return m.email.Value()
}

// FilePath returns the file field contents.
func (m InputPanelModel) FilePath() string {
	return m.file.Value()
}

// Resize updates the panel dimensions.
func (m *InputPanelModel) Resize(width, height int) {
	m.width = width
	m.height = height

	inner := max(width-4, 10)
	m.email.Width = inner
	m.file.Width = inner
	m.contract.SetWidth(inner)
	// Labels, two single-line inputs and the hint take ten rows.
	m.contract.SetHeight(max(height-10, 3))
}

// Update forwards messages to the focused field.
func (m InputPanelModel) Update(msg tea.Msg) (InputPanelModel, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case FieldEmail:
		m.email, cmd = m.email.Update(msg)
	case FieldFile:
		m.file, cmd = m.file.Update(msg)
	case FieldContract:
		m.contract, cmd = m.contract.Update(msg)
	}

	return m, cmd
}

// View renders the panel.
func (m InputPanelModel) View() string {
	label := func(field Field, text string) string {
		style := lipgloss.NewStyle().Foreground(m.theme.Muted)
		if m.focus == field {
			style = lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
		fmt.Sprintf("Supports PDF, Word, and text files (%s), read as plain text. Enter loads the file.", AcceptedExtensions),
	)

	chars := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
		viewmodel.FormatLength(len([]rune(m.contract.Value()))) + " characters",
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Upload Your Contract"),
		label(FieldEmail, "Email (optional - for notifications):"),
		m.email.View(),
		"",
		label(FieldFile, "Contract file:"),
		m.file.View(),
		hint,
		"",
		label(FieldContract, "Or paste your contract text:"),
		m.contract.View(),
		chars,
	)
}
