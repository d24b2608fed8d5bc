package components

import (
	"testing"

	"github.com/Veraticus/the-fine-print/internal/tui/themes"
	"github.com/Veraticus/the-fine-print/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradeModelView(t *testing.T) {
	m := NewUpgradeModel(viewmodel.NewUpgradeView(2), themes.Default)

	view := m.View()

	assert.Contains(t, view, "Upgrade to Continue")
	assert.Contains(t, view, "Free Plan")
	assert.Contains(t, view, "$79/month")
	assert.Contains(t, view, "Back to Analyzer")
	assert.Contains(t, view, "Upgrade to Pro")
}

func TestUpgradeModelKeys(t *testing.T) {
	tests := []struct {
		want tea.Msg
		name string
		keys []tea.KeyMsg
	}{
		{
			name: "escape goes back",
			keys: []tea.KeyMsg{{Type: tea.KeyEsc}},
			want: BackToAnalyzerMsg{},
		},
		{
			name: "b goes back",
			keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("b")}},
			want: BackToAnalyzerMsg{},
		},
		{
			name: "enter on default action goes back",
			keys: []tea.KeyMsg{{Type: tea.KeyEnter}},
			want: BackToAnalyzerMsg{},
		},
		{
			name: "u requests the suggested plan",
			keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("u")}},
			want: UpgradeRequestedMsg{Plan: "Pro Plan"},
		},
		{
			name: "enter after moving right upgrades",
			keys: []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEnter}},
			want: UpgradeRequestedMsg{Plan: "Pro Plan"},
		},
		{
			name: "cursor wraps",
			keys: []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyLeft}, {Type: tea.KeyEnter}},
			want: BackToAnalyzerMsg{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewUpgradeModel(viewmodel.NewUpgradeView(2), themes.Default)

			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = m.Update(k)
			}

			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}

func TestUpgradeModelIgnoresOtherKeys(t *testing.T) {
	m := NewUpgradeModel(viewmodel.NewUpgradeView(2), themes.Default)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Nil(t, cmd)
}
