package adapters

import (
	"testing"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/store/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTableToControls(t *testing.T) {
	table := tabular.NewTable(
		[]string{"title", "control_title", "control_description", "status", "region", "account_id", "resource", "reason"},
		[][]string{
			{"EC2", "A", "desc", "alarm", "us-east-1", "123", "arn:aws:ec2:", "reason"},
		},
	)

	controls, err := MapTableToControls(table)
	require.NoError(t, err)
	require.Len(t, controls, 1)

	assert.Equal(t, domain.Control{
		Title:        "EC2",
		ControlTitle: "A",
		Description:  "desc",
		Status:       domain.StatusAlarm,
		Region:       "us-east-1",
		AccountID:    "123",
		Resource:     "arn:aws:ec2:",
		Reason:       "reason",
	}, controls[0])
}

func TestMapTableToControls_MissingRequiredColumn(t *testing.T) {
	table := tabular.NewTable([]string{"title", "status"}, nil)

	_, err := MapTableToControls(table)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestMapTableToControls_OptionalColumnsDefaultEmpty(t *testing.T) {
	table := tabular.NewTable(
		[]string{"control_title", "status"},
		[][]string{{"A", "ok"}},
	)

	controls, err := MapTableToControls(table)
	require.NoError(t, err)
	assert.Equal(t, "", controls[0].Title)
	assert.Equal(t, "", controls[0].Region)
}

func TestMapTableToPriorityRecords(t *testing.T) {
	t.Run("reads the original recommendation header", func(t *testing.T) {
		table := tabular.NewTable(
			[]string{"control_title", "priority", "Recommendation Steps/Approach"},
			[][]string{{"A", "High", "fix it"}},
		)

		records, err := MapTableToPriorityRecords(table)
		require.NoError(t, err)
		assert.Equal(t, domain.PriorityRecord{
			ControlTitle:   "A",
			Priority:       domain.PriorityHigh,
			Recommendation: "fix it",
		}, records[0])
	})

	t.Run("falls back to a plain recommendation header", func(t *testing.T) {
		table := tabular.NewTable(
			[]string{"control_title", "priority", "recommendation"},
			[][]string{{"A", "Low", "tidy up"}},
		)

		records, err := MapTableToPriorityRecords(table)
		require.NoError(t, err)
		assert.Equal(t, "tidy up", records[0].Recommendation)
	})

	t.Run("tolerates a missing recommendation column", func(t *testing.T) {
		table := tabular.NewTable(
			[]string{"control_title", "priority"},
			[][]string{{"A", "Medium"}},
		)

		records, err := MapTableToPriorityRecords(table)
		require.NoError(t, err)
		assert.Equal(t, "", records[0].Recommendation)
	})

	t.Run("rejects a table without a priority column", func(t *testing.T) {
		table := tabular.NewTable([]string{"control_title"}, nil)
		_, err := MapTableToPriorityRecords(table)
		assert.ErrorIs(t, err, ErrMissingColumn)
	})
}

func TestMapTableToAnnotatedControls(t *testing.T) {
	table := tabular.NewTable(
		[]string{"title", "control_title", "status", "priority"},
		[][]string{
			{"EC2", "A", "alarm", "1"},
			{"S3", "B", "ok", "2"},
			{"RDS", "C", "ok", "3"},
			{"VPC", "D", "ok", "9"},
		},
	)

	controls, err := MapTableToAnnotatedControls(table)
	require.NoError(t, err)
	require.Len(t, controls, 4)

	assert.Equal(t, domain.PriorityHigh, controls[0].Priority)
	assert.Equal(t, domain.PriorityMed, controls[1].Priority)
	assert.Equal(t, domain.PriorityLow, controls[2].Priority)
	assert.Equal(t, domain.PriorityNone, controls[3].Priority)
	assert.Zero(t, controls[0].RiskScore)
}
