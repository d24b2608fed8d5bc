package mockhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Veraticus/the-fine-print/internal/model"
	"github.com/Veraticus/the-fine-print/internal/webhook"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func post(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeHandler(t *testing.T) {
	router := NewRouter(Config{})

	w := post(t, router, DefaultPath, model.AnalysisRequest{
		ContractText: "The Supplier shall indemnify the Client. This agreement will automatically renew.",
		UserID:       "user_test",
		AnalysisType: model.AnalysisTypeComprehensive,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp model.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.DetectedRisks)
	assert.Len(t, *resp.DetectedRisks, 2)
	assert.Equal(t, model.RiskHigh, resp.OverallRisk)
	assert.InDelta(t, 7.5, resp.RiskScore, 0.001)
	assert.Contains(t, resp.Summary, "Broad Indemnification")
}

func TestAnalyzeHandlerRejectsBadRequests(t *testing.T) {
	router := NewRouter(Config{})

	tests := []struct {
		body any
		name string
	}{
		{name: "empty contract", body: model.AnalysisRequest{UserID: "user_test"}},
		{name: "whitespace contract", body: model.AnalysisRequest{ContractText: "  \n"}},
		{name: "not an object", body: []string{"nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, router, DefaultPath, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRouterCustomPath(t *testing.T) {
	router := NewRouter(Config{Path: "/hook"})

	assert.Equal(t, http.StatusOK, post(t, router, "/hook", model.AnalysisRequest{ContractText: "x"}).Code)
	assert.Equal(t, http.StatusNotFound, post(t, router, DefaultPath, model.AnalysisRequest{ContractText: "x"}).Code)
}

func TestHealthz(t *testing.T) {
	router := NewRouter(Config{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestStart(t *testing.T) {
	shutdown, url, err := Start("127.0.0.1:0", Config{})
	require.NoError(t, err)
	defer func() { _ = shutdown(context.Background()) }()

	assert.Contains(t, url, DefaultPath)

	body, err := json.Marshal(model.AnalysisRequest{ContractText: "Late fee of 5% applies."})
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body)) //nolint:noctx // test
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWebhookClientRoundTrip(t *testing.T) {
	srv := httptest.NewServer(NewRouter(Config{}))
	defer srv.Close()

	client, err := webhook.New(webhook.Config{URL: srv.URL + DefaultPath})
	require.NoError(t, err)

	result, err := client.Analyze(context.Background(), "Either party may terminate at any time.", "")
	require.NoError(t, err)

	require.Len(t, result.DetectedRisks, 1)
	assert.Equal(t, "Termination for Convenience", result.DetectedRisks[0].Name)
	assert.Equal(t, 2, result.DetectedRisks[0].SeverityScore)
	assert.True(t, result.DetectedRisks[0].Matched)
	assert.Equal(t, model.RiskMedium, result.OverallRisk)
	assert.Equal(t, len([]rune("Either party may terminate at any time.")), result.ContractLength)
}
