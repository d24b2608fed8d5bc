package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskLevel_Score(t *testing.T) {
	tests := []struct {
		level RiskLevel
		want  int
	}{
		{RiskHigh, 3},
		{RiskMedium, 2},
		{RiskLow, 1},
		{RiskLevel("critical"), 1},
		{RiskLevel(""), 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.Score())
		})
	}
}

func TestMaterialize(t *testing.T) {
	receivedAt := time.Date(2024, 3, 7, 15, 4, 0, 0, time.UTC)
	body := `{
		"overallRisk": "high",
		"riskScore": 7.5,
		"confidenceScore": 92,
		"detectedRisks": [
			{"name": "Unlimited Liability", "description": "No cap", "severity": "high", "mitigation": "Add a cap"},
			{"name": "Auto Renewal", "description": "Renews yearly", "severity": "medium"},
			{"name": "Odd Clause", "description": "Unusual", "severity": "weird"}
		],
		"aiAnalyses": {"gpt": "ok"},
		"summary": "Risky contract",
		"recommendations": ["negotiate"]
	}`

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	result := Materialize(resp, "Contract – text", receivedAt)

	assert.Equal(t, RiskHigh, result.OverallRisk)
	assert.InDelta(t, 7.5, result.TotalRiskScore, 0.001)
	assert.InDelta(t, 92, result.ConfidenceScore, 0.001)
	require.Len(t, result.DetectedRisks, 3)
	assert.Equal(t, 3, result.RiskCount)
	assert.Equal(t, 15, result.ContractLength)
	assert.Equal(t, "3/7/2024", result.AnalysisDate)
	assert.Equal(t, "Risky contract", result.Summary)
	assert.NotNil(t, result.PatternMatches)
	assert.Empty(t, result.PatternMatches)
	assert.JSONEq(t, `{"gpt": "ok"}`, string(result.AIAnalyses))
	assert.JSONEq(t, `["negotiate"]`, string(result.Recommendations))

	assert.Equal(t, "Unlimited Liability", result.DetectedRisks[0].Name)
	assert.Equal(t, "Add a cap", result.DetectedRisks[0].Mitigation)
	assert.Equal(t, 3, result.DetectedRisks[0].SeverityScore)
	assert.Equal(t, 2, result.DetectedRisks[1].SeverityScore)
	assert.Equal(t, 1, result.DetectedRisks[2].SeverityScore)
	for _, risk := range result.DetectedRisks {
		assert.True(t, risk.Matched)
	}
}

func TestMaterialize_MissingDetectedRisks(t *testing.T) {
	var resp WebhookResponse
	require.NoError(t, json.Unmarshal([]byte(`{"overallRisk":"low","riskScore":1,"confidenceScore":50}`), &resp))
	assert.Nil(t, resp.DetectedRisks)

	result := Materialize(resp, "abc", time.Now())

	assert.NotNil(t, result.DetectedRisks)
	assert.Empty(t, result.DetectedRisks)
	assert.Equal(t, 0, result.RiskCount)
}

func TestAnalysisRequest_OmitsEmptyEmail(t *testing.T) {
	data, err := json.Marshal(AnalysisRequest{
		ContractText: "text",
		UserID:       "user_1",
		AnalysisType: AnalysisTypeComprehensive,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"contractText":"text","userId":"user_1","analysisType":"comprehensive"}`, string(data))

	data, err = json.Marshal(AnalysisRequest{
		ContractText: "text",
		UserID:       "user_1",
		AnalysisType: AnalysisTypeComprehensive,
		UserEmail:    "a@b.c",
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"userEmail":"a@b.c"`)
}

func TestAnalysisResult_CountBySeverity(t *testing.T) {
	result := AnalysisResult{DetectedRisks: []Risk{
		{Severity: RiskHigh, SeverityScore: 1},
		{Severity: RiskMedium},
		{Severity: RiskHigh},
		{Severity: RiskLow, SeverityScore: 3},
	}}

	assert.Equal(t, 2, result.CountBySeverity(RiskHigh))
	assert.Equal(t, 1, result.CountBySeverity(RiskMedium))
	assert.Equal(t, 1, result.CountBySeverity(RiskLow))
}
