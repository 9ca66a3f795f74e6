package excel

import (
	"path/filepath"
	"testing"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteComplianceWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	controls := []domain.EnrichedControl{
		{
			Control: domain.Control{
				Title: "EC2", ControlTitle: "A", Description: "desc",
				Status: domain.StatusAlarm, Region: "us-east-1",
			},
			Priority:       domain.PriorityHigh,
			Recommendation: "fix it",
			RiskScore:      15.0,
		},
	}
	counts := []domain.PriorityCount{
		{Priority: domain.PriorityHigh, Count: 1},
	}

	require.NoError(t, WriteComplianceWorkbook(path, controls, counts))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Compliance Data", "Priority Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Compliance Data")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "title", rows[0][0])
	assert.Equal(t, "EC2", rows[1][0])
	assert.Equal(t, "High", rows[1][8])
	assert.Equal(t, "15", rows[1][10])

	rows, err = f.GetRows("Priority Summary")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"High", "1"}, rows[1])
}

func TestWritePivotWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "final.xlsx")

	safe := []domain.EnrichedControl{
		{Control: domain.Control{Title: "S3", ControlTitle: "B", Status: domain.StatusOK}, Priority: domain.PriorityLow},
	}
	unsafe := []domain.EnrichedControl{
		{Control: domain.Control{Title: "EC2", ControlTitle: "A", Status: domain.StatusAlarm}, Priority: domain.PriorityHigh},
	}
	table := domain.CategorySummary{Rows: []domain.CategoryRow{
		{SrNo: 1, Service: "EC2", ControlTitle: "A", OpenIssues: 1, Priority: domain.PriorityHigh},
		{},
	}}
	tableSafe := domain.CategorySummary{Rows: []domain.CategoryRow{
		{SrNo: 1, Service: "S3", ControlTitle: "B", OpenIssues: 0, Priority: domain.PriorityLow},
		{},
	}}

	require.NoError(t, WritePivotWorkbook(path, safe, unsafe, table, tableSafe))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"safe", "unsafe", "table", "table_safe", "experiment"},
		f.GetSheetList())

	rows, err := f.GetRows("unsafe")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "EC2", rows[1][0])
	assert.Equal(t, "1", rows[1][9]) // is_open_issue

	rows, err = f.GetRows("table")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "Sr No", rows[0][0])
	assert.Equal(t, "EC2", rows[1][1])

	rows, err = f.GetRows("experiment")
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}
