package fra

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsPrefersGeneratedDocument(t *testing.T) {
	analyticsPath := filepath.Join(t.TempDir(), "analytics.json")
	doc := map[string]interface{}{"summary": map[string]interface{}{"total_claims": 999.0}}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(analyticsPath, data, 0o644))

	m := NewManager(writeFixture(t), analyticsPath)
	analytics := m.Analytics()
	summary := analytics["summary"].(map[string]interface{})
	assert.Equal(t, 999.0, summary["total_claims"])
}

func TestAnalyticsFallbackSummary(t *testing.T) {
	m := newTestManager(t)
	analytics := m.Analytics()
	summary := analytics["summary"].(map[string]interface{})
	assert.Equal(t, 4, summary["total_claims"])

	byState := summary["claims_by_state"].(map[string]int)
	assert.Equal(t, 1, byState["Odisha"])
	assert.Equal(t, 1, byState["Telangana"])

	byType := summary["claims_by_type"].(map[string]int)
	assert.Equal(t, 2, byType["Individual Forest Rights"])
}

func TestStateSummary(t *testing.T) {
	m := newTestManager(t)
	summary := m.StateSummary()
	require.Contains(t, summary, "Odisha")
	assert.Equal(t, 1, summary["Odisha"].TotalClaims)
	assert.Equal(t, 850.5, summary["Odisha"].ClaimAreaHa)
	assert.Equal(t, 1, summary["Odisha"].ApprovedClaims)
	assert.Equal(t, 1, summary["Odisha"].FRATypes["Community Forest Resource Rights"])

	assert.Equal(t, 0, summary["Tripura"].ApprovedClaims)
	assert.Len(t, summary, 4)
}

func TestTribalAnalysisSkipsMissingCommunity(t *testing.T) {
	m := newTestManager(t)
	analysis := m.TribalAnalysis()
	// Two fixture claims carry no tribal_community and form no group.
	assert.Len(t, analysis, 2)
	require.Contains(t, analysis, "Kondh")
	assert.Equal(t, 1, analysis["Kondh"].TotalClaims)
}

func TestPerformanceMetrics(t *testing.T) {
	m := newTestManager(t)
	metrics := m.PerformanceMetrics()

	assert.Equal(t, 4, metrics["total_claims"])
	assert.Equal(t, 1, metrics["approved_claims"])
	assert.Equal(t, 2, metrics["pending_claims"]) // under review + submitted
	assert.Equal(t, 1, metrics["rejected_claims"])
	assert.Equal(t, 25.0, metrics["approval_rate"])
	assert.Equal(t, 50.0, metrics["pending_rate"])
	assert.Equal(t, 864.9, metrics["total_area_ha"])
	assert.Equal(t, 216.23, metrics["average_claim_size_ha"])
	assert.Equal(t, 25.0, metrics["field_verification_rate"])
	assert.Equal(t, 25.0, metrics["gps_verification_rate"])
}

func TestPerformanceMetricsEmpty(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.geojson"), filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, map[string]interface{}{}, m.PerformanceMetrics())
	assert.Equal(t, map[string]interface{}{}, m.Timeline())
}
