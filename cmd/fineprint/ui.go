package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/the-fine-print/internal/common"
	"github.com/Veraticus/the-fine-print/internal/tui"
	"github.com/Veraticus/the-fine-print/internal/tui/themes"
	"github.com/Veraticus/the-fine-print/internal/webhook"
	"github.com/spf13/cobra"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive contract analyzer",
		Long: `Open the full-screen analyzer.

Paste a contract into the text area or type a file path and press Enter to
load it, then press Ctrl+R to analyze. Logs are written to logging.file while
the UI is open.`,
		RunE: runUI,
	}
}

func runUI(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	level, err := common.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	closer, err := common.SetupFileLogger(settings.LogFile, level, settings.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			slog.Warn("Failed to close log file", "error", cerr)
		}
	}()

	client, err := webhook.New(webhook.Config{
		URL:     settings.WebhookURL,
		Headers: settings.WebhookHeaders,
		Timeout: settings.WebhookTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create webhook client: %w", err)
	}

	common.LogInfo("Starting analyzer", common.Fields{
		"webhook":       client.URL(),
		"free_analyses": settings.FreeAnalyses,
		"theme":         settings.Theme,
	})

	return tui.Run(cmd.Context(),
		tui.WithAnalyzer(client),
		tui.WithTheme(themes.GetTheme(settings.Theme)),
		tui.WithFreeAnalyses(settings.FreeAnalyses),
		tui.WithSetupNotice(settings.IsPlaceholderWebhook()),
	)
}
