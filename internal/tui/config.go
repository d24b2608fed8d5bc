package tui

import (
	"github.com/Veraticus/the-fine-print/internal/session"
	"github.com/Veraticus/the-fine-print/internal/tui/themes"
	"github.com/Veraticus/the-fine-print/internal/webhook"
)

// Config holds TUI configuration.
type Config struct {
	Analyzer      webhook.Analyzer
	Theme         themes.Theme
	Width         int
	Height        int
	FreeAnalyses  int
	SetupRequired bool
	AltScreen     bool
	MouseSupport  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Width:        120,
		Height:       40,
		FreeAnalyses: 2,
		AltScreen:    true,
		MouseSupport: false,
	}
}

// WithAnalyzer sets the analysis client.
func WithAnalyzer(analyzer webhook.Analyzer) Option {
	return func(c *Config) {
		c.Analyzer = analyzer
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithFreeAnalyses sets how many analyses the session allows.
func WithFreeAnalyses(limit int) Option {
	return func(c *Config) {
		c.FreeAnalyses = limit
	}
}

// WithSetupNotice shows the configuration notice, used while the webhook
// still points at the sample URL.
func WithSetupNotice(required bool) Option {
	return func(c *Config) {
		c.SetupRequired = required
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

func (c Config) gate() session.Gate {
	return session.NewGate(c.FreeAnalyses)
}
