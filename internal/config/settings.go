package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/Veraticus/the-fine-print/internal/common"
	"github.com/spf13/viper"
)

// PlaceholderWebhookURL is the endpoint shipped in the sample config. It
// never resolves, so the UI shows a setup notice while it is in use.
const PlaceholderWebhookURL = "https://your-n8n-instance.com/webhook/analyze-contract"

// DefaultFreeAnalyses is the number of analyses allowed per session.
const DefaultFreeAnalyses = 2

// Settings holds everything the application reads from configuration.
type Settings struct {
	WebhookHeaders map[string]string
	WebhookURL     string
	Theme          string
	LogFile        string
	LogLevel       string
	LogFormat      string
	WebhookTimeout time.Duration
	FreeAnalyses   int
}

// Defaults returns Settings with sensible defaults.
func Defaults() Settings {
	return Settings{
		WebhookURL:   PlaceholderWebhookURL,
		FreeAnalyses: DefaultFreeAnalyses,
		Theme:        "default",
		LogFile:      "~/.local/state/fineprint/fineprint.log",
		LogLevel:     "info",
		LogFormat:    "console",
	}
}

// IsPlaceholderWebhook reports whether the webhook still points at the sample URL.
func (s Settings) IsPlaceholderWebhook() bool {
	return s.WebhookURL == PlaceholderWebhookURL
}

// Validate checks that the settings can be used to run an analysis.
func (s Settings) Validate() error {
	if s.WebhookURL == "" {
		return fmt.Errorf("%w: webhook.url is required", common.ErrMissingConfig)
	}
	u, err := url.Parse(s.WebhookURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: webhook.url must be an absolute http(s) URL, got %q", common.ErrInvalidConfig, s.WebhookURL)
	}
	if s.FreeAnalyses < 0 {
		return fmt.Errorf("%w: limits.free_analyses must not be negative", common.ErrInvalidConfig)
	}
	if s.WebhookTimeout < 0 {
		return fmt.Errorf("%w: webhook.timeout must not be negative", common.ErrInvalidConfig)
	}
	return nil
}

// Load reads Settings from v.
// It follows this precedence:
// 1. Viper configuration (from config file or FINEPRINT_ env vars)
// 2. Direct environment variables (N8N_WEBHOOK_URL)
// 3. Default values.
func Load(v *viper.Viper) (Settings, error) {
	settings := Defaults()

	if s := v.GetString("webhook.url"); s != "" {
		settings.WebhookURL = s
	} else if s := os.Getenv("N8N_WEBHOOK_URL"); s != "" {
		settings.WebhookURL = s
	}
	if v.IsSet("webhook.timeout") {
		settings.WebhookTimeout = v.GetDuration("webhook.timeout")
	}
	if headers := v.GetStringMapString("webhook.headers"); len(headers) > 0 {
		settings.WebhookHeaders = headers
	}
	if v.IsSet("limits.free_analyses") {
		settings.FreeAnalyses = v.GetInt("limits.free_analyses")
	}
	if s := v.GetString("ui.theme"); s != "" {
		settings.Theme = s
	}
	if s := v.GetString("logging.file"); s != "" {
		settings.LogFile = s
	}
	if s := v.GetString("logging.level"); s != "" {
		settings.LogLevel = s
	}
	if s := v.GetString("logging.format"); s != "" {
		settings.LogFormat = s
	}
	settings.LogFile = ExpandPath(settings.LogFile)

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}
