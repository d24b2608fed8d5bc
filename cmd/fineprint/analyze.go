package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/the-fine-print/internal/cli"
	"github.com/Veraticus/the-fine-print/internal/common"
	"github.com/Veraticus/the-fine-print/internal/config"
	"github.com/Veraticus/the-fine-print/internal/session"
	"github.com/Veraticus/the-fine-print/internal/tui/viewmodel"
	"github.com/Veraticus/the-fine-print/internal/webhook"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one contract and print the risk report",
		Long: `Send a contract to the analysis webhook once and print the report.

The contract is read from --file, or from standard input when no file is given.
Files are sent as-is: PDF and Word documents are not converted to text.

Examples:
  # Analyze a text file
  fineprint analyze --file ~/contracts/lease.txt

  # Pipe a contract in and get JSON back
  pbpaste | fineprint analyze --output json

  # Ask the workflow to email the report
  fineprint analyze --file nda.txt --email me@example.com`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("file", "f", "", "Contract file to analyze (default: stdin)")
	cmd.Flags().String("email", "", "Email address for report notifications")
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	filePath, _ := cmd.Flags().GetString("file")
	email, _ := cmd.Flags().GetString("email")
	outputFlag, _ := cmd.Flags().GetString("output")

	format, err := cli.ParseFormat(outputFlag)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	interruptHandler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := interruptHandler.HandleInterrupts(cmd.Context(), true)

	text, err := readContract(ctx, cmd, filePath)
	if err != nil {
		return err
	}

	state := session.New(session.NewGate(settings.FreeAnalyses))
	state.SetTextInput(text)
	state.SetEmail(email)
	if filePath != "" {
		state.SetFileInput(filePath)
	}

	switch state.Trigger() {
	case session.TriggerDisabled:
		return common.NewUserError("No contract text to analyze", common.ErrEmptyContract)
	case session.TriggerUpgrade:
		upgrade := viewmodel.NewUpgradeView(settings.FreeAnalyses)
		return common.NewUserError(upgrade.Message, common.ErrQuotaExceeded)
	case session.TriggerStart:
	}

	if settings.IsPlaceholderWebhook() {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning(viewmodel.SetupNotice))
	}

	client, err := webhook.New(webhook.Config{
		URL:     settings.WebhookURL,
		Headers: settings.WebhookHeaders,
		Timeout: settings.WebhookTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create webhook client: %w", err)
	}

	spinner := cli.StartSpinner(cmd.ErrOrStderr(), "Analyzing with AI Models...")
	result, err := client.Analyze(ctx, state.ContractText, state.UserEmail)
	spinner.Stop()

	if err != nil {
		state.Failed(err)
		if interruptHandler.WasInterrupted() {
			return common.NewUserError("Analysis canceled", err)
		}
		return common.NewUserError(state.LastError, err)
	}
	state.Succeeded(result)

	slog.Debug("Analysis complete",
		"overall", result.OverallRisk,
		"risks", len(result.DetectedRisks),
		"count", state.AnalysisCount,
	)

	return cli.NewRenderer(cmd.OutOrStdout(), format).Render(*state.CurrentAnalysis)
}

func readContract(ctx context.Context, cmd *cobra.Command, path string) (string, error) {
	if path == "" {
		text, err := cli.ReadContract(ctx, cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read contract from stdin: %w", err)
		}
		return text, nil
	}

	data, err := os.ReadFile(config.ExpandPath(path)) //nolint:gosec // user-chosen contract file
	if err != nil {
		return "", common.NewUserError(fmt.Sprintf("Could not read %s", path), err)
	}
	return string(data), nil
}
