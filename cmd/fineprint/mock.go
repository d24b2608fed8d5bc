package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Veraticus/the-fine-print/internal/cli"
	"github.com/Veraticus/the-fine-print/internal/config"
	"github.com/Veraticus/the-fine-print/internal/mockhook"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func mockWebhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock-webhook",
		Short: "Serve a local stand-in for the analysis webhook",
		Long: `Serve a keyword-based stand-in for the analysis workflow.

Useful for trying the analyzer without a deployed workflow:

  fineprint mock-webhook &
  fineprint ui --webhook-url http://127.0.0.1:5678/webhook/analyze-contract`,
		RunE: runMockWebhook,
	}

	cmd.Flags().String("addr", "127.0.0.1:5678", "Address to listen on")
	cmd.Flags().String("rules", "", "YAML rule file (default: built-in rules)")
	cmd.Flags().Duration("delay", 1500*time.Millisecond, "Artificial response delay")

	return cmd
}

func runMockWebhook(cmd *cobra.Command, _ []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	rulesPath, _ := cmd.Flags().GetString("rules")
	delay, _ := cmd.Flags().GetDuration("delay")

	cfg := mockhook.Config{Delay: delay}
	if rulesPath != "" {
		data, err := os.ReadFile(config.ExpandPath(rulesPath)) //nolint:gosec // user-chosen rule file
		if err != nil {
			return fmt.Errorf("failed to read rules: %w", err)
		}
		rules, err := mockhook.ParseRules(data)
		if err != nil {
			return err
		}
		cfg.Rules = rules
	}

	gin.SetMode(gin.ReleaseMode)
	shutdown, url, err := mockhook.Start(addr, cfg)
	if err != nil {
		return fmt.Errorf("failed to start mock webhook: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Mock webhook listening on "+url))
	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Press Ctrl+C to stop"))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(shutdownCtx); err != nil {
		slog.Warn("Mock webhook shutdown failed", "error", err)
	}
	return nil
}
