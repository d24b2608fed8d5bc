package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/the-fine-print/internal/common"
	"github.com/Veraticus/the-fine-print/internal/model"
	"github.com/google/uuid"
)

// Analyzer runs a risk analysis for a contract.
type Analyzer interface {
	Analyze(ctx context.Context, contractText, userEmail string) (model.AnalysisResult, error)
}

// Config configures the webhook client.
type Config struct {
	HTTPClient *http.Client
	Headers    map[string]string
	Now        func() time.Time
	NewUserID  func() string
	URL        string
	Timeout    time.Duration
}

// Client implements Analyzer against an HTTP webhook.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	now        func() time.Time
	newUserID  func() string
	url        string
}

// Ensure we implement the interface.
var _ Analyzer = (*Client)(nil)

// New creates a webhook client.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: webhook URL is required", common.ErrMissingConfig)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	newUserID := cfg.NewUserID
	if newUserID == nil {
		newUserID = NewUserID
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &Client{
		httpClient: httpClient,
		headers:    headers,
		now:        now,
		newUserID:  newUserID,
		url:        cfg.URL,
	}, nil
}

// NewUserID returns a fresh per-request user identifier.
func NewUserID() string {
	return "user_" + uuid.New().String()
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.url
}

// Analyze posts the contract to the webhook and returns the enriched result.
func (c *Client) Analyze(ctx context.Context, contractText, userEmail string) (model.AnalysisResult, error) {
	if contractText == "" {
		return model.AnalysisResult{}, common.ErrEmptyContract
	}

	request := model.AnalysisRequest{
		ContractText: contractText,
		UserID:       c.newUserID(),
		AnalysisType: model.AnalysisTypeComprehensive,
		UserEmail:    strings.TrimSpace(userEmail),
	}

	jsonBody, err := json.Marshal(request)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonBody))
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	slog.Info("Submitting contract for analysis",
		"user_id", request.UserID,
		"contract_length", len(contractText),
		"has_email", request.UserEmail != "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.AnalysisResult{}, failure("Analysis failed: could not reach the analysis service", fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.AnalysisResult{}, failure("Analysis failed: could not read the analysis response", fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.AnalysisResult{}, failure(
			"Analysis failed: "+statusText(resp),
			fmt.Errorf("webhook error (status %d): %s", resp.StatusCode, truncateBody(body)),
		)
	}

	var response model.WebhookResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return model.AnalysisResult{}, failure("Analysis failed: the analysis service returned an invalid response", fmt.Errorf("failed to parse response: %w", err))
	}

	result := model.Materialize(response, contractText, c.now())

	slog.Info("Contract analysis complete",
		"user_id", request.UserID,
		"overall_risk", result.OverallRisk,
		"risk_count", result.RiskCount)

	return result, nil
}

// failure logs the cause and wraps it in a UserError carrying message.
func failure(message string, cause error) error {
	err := fmt.Errorf("%w: %w", common.ErrAnalysisFailed, cause)
	common.LogError(err, "Analysis error", nil)
	return common.NewUserError(message, err)
}

func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}

func truncateBody(b []byte) string {
	const limit = 200
	if len(b) <= limit {
		return string(b)
	}
	return string(b[:limit]) + "..."
}
