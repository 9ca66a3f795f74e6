package pdf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.pdf")

	summary := domain.ExecutiveSummary{
		ReportTimestamp: time.Date(2024, 11, 3, 12, 30, 0, 0, time.UTC),
		ComplianceScore: "50.00%",
		TotalControls:   4,
		HighRiskServices: map[string]float64{
			"EC2": 30.0,
			"IAM": 7.5,
		},
		TopRecommendations: []domain.Recommendation{
			{Title: "EC2", ControlTitle: "A", Recommendation: "patch the fleet", RiskScore: 15.0},
		},
	}

	require.NoError(t, NewGenerator().Generate(path, summary))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(raw), 4)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestGenerate_EmptySections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.pdf")

	summary := domain.ExecutiveSummary{
		ReportTimestamp: time.Now(),
		ComplianceScore: "100.00%",
		TotalControls:   1,
	}

	require.NoError(t, NewGenerator().Generate(path, summary))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
