package jsonreport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")

	summary := domain.ExecutiveSummary{
		ReportTimestamp: time.Date(2024, 11, 3, 12, 30, 0, 0, time.UTC),
		ComplianceScore: "50.00%",
		TotalControls:   4,
		HighRiskServices: map[string]float64{
			"EC2": 30.0,
		},
		TopRecommendations: []domain.Recommendation{
			{Title: "EC2", ControlTitle: "A", Recommendation: "patch", RiskScore: 15.0},
		},
	}

	require.NoError(t, Write(path, summary))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded domain.ExecutiveSummary
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, summary, decoded)
}

func TestWrite_BadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "summary.json"), domain.ExecutiveSummary{})
	assert.Error(t, err)
}
