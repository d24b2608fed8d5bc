package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// New creates a new TUI program.
func New(ctx context.Context, opts ...Option) *tea.Program {
	m := NewModel(ctx, opts...)

	teaOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.config.AltScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}
	if m.config.MouseSupport {
		teaOpts = append(teaOpts, tea.WithMouseCellMotion())
	}

	return tea.NewProgram(m, teaOpts...)
}

// Run starts the analyzer and blocks until the user quits.
func Run(ctx context.Context, opts ...Option) error {
	if _, err := New(ctx, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run analyzer: %w", err)
	}
	return nil
}
