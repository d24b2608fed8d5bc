// Package main runs the analyzer against a built-in stand-in webhook.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Veraticus/the-fine-print/internal/mockhook"
	"github.com/Veraticus/the-fine-print/internal/tui"
	"github.com/Veraticus/the-fine-print/internal/webhook"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	// Keep server logs off the screen
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	gin.SetMode(gin.ReleaseMode)

	shutdown, url, err := mockhook.Start("127.0.0.1:0", mockhook.Config{Delay: time.Second})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error starting mock webhook: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = shutdown(ctx) }()

	client, err := webhook.New(webhook.Config{URL: url})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error creating client: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(ctx, tui.WithAnalyzer(client), tui.WithSize(120, 40)); err != nil {
		// Use explicit error check to satisfy forbidigo
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
