package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/Veraticus/the-fine-print/internal/common"
	"github.com/Veraticus/the-fine-print/internal/config"
	"github.com/Veraticus/the-fine-print/internal/webhook"
	tea "github.com/charmbracelet/bubbletea"
)

// readFile loads a contract file as text. Binary formats are not decoded;
// their bytes are passed through as-is.
func readFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(config.ExpandPath(path)) //nolint:gosec // user-chosen contract file
		if err != nil {
			return fileLoadFailedMsg{
				path: path,
				err:  common.NewUserError(fmt.Sprintf("Could not read %s", path), err),
			}
		}

		return fileLoadedMsg{
			path: path,
			text: string(data),
		}
	}
}

// analyze runs one analysis request.
func analyze(ctx context.Context, analyzer webhook.Analyzer, contractText, email string) tea.Cmd {
	return func() tea.Msg {
		if analyzer == nil {
			return analysisFailedMsg{
				err: common.NewUserError("Analysis failed: no analysis service configured", common.ErrMissingConfig),
			}
		}

		result, err := analyzer.Analyze(ctx, contractText, email)
		if err != nil {
			return analysisFailedMsg{err: err}
		}

		return analysisCompleteMsg{result: result}
	}
}
