package summary

import (
	"testing"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/services/enrich"
	"github.com/stretchr/testify/assert"
)

func pivotFixture() []domain.EnrichedControl {
	return []domain.EnrichedControl{
		{Control: domain.Control{Title: "EC2", ControlTitle: "A", Description: "desc A", Status: domain.StatusAlarm}, Priority: domain.PriorityHigh},
		{Control: domain.Control{Title: "EC2", ControlTitle: "A", Description: "desc A", Status: domain.StatusAlarm}, Priority: domain.PriorityHigh},
		{Control: domain.Control{Title: "EC2", ControlTitle: "A", Description: "desc A", Status: domain.StatusOK}, Priority: domain.PriorityHigh},
		{Control: domain.Control{Title: "S3", ControlTitle: "B", Description: "desc B", Status: domain.StatusOK}, Priority: domain.PriorityLow},
		{Control: domain.Control{Title: "IAM", ControlTitle: "C", Description: "desc C", Status: domain.StatusAlarm}, Priority: domain.PriorityMed},
	}
}

func TestCategoryPivot(t *testing.T) {
	categories := enrich.DefaultSettings().Categories
	summary := CategoryPivot(pivotFixture(), categories)

	// IAM (Security and Identity), EC2 (Compute), S3 (Storage): one group
	// each plus a separator per category.
	assert.Len(t, summary.Rows, 6)

	assert.Equal(t, domain.CategoryRow{
		SrNo: 1, Service: "IAM", ControlTitle: "C", Description: "desc C",
		OpenIssues: 1, Priority: domain.PriorityMed,
	}, summary.Rows[0])
	assert.True(t, summary.Rows[1].Separator())

	assert.Equal(t, domain.CategoryRow{
		SrNo: 2, Service: "EC2", ControlTitle: "A", Description: "desc A",
		OpenIssues: 2, Priority: domain.PriorityHigh,
	}, summary.Rows[2])
	assert.True(t, summary.Rows[3].Separator())

	assert.Equal(t, domain.CategoryRow{
		SrNo: 3, Service: "S3", ControlTitle: "B", Description: "desc B",
		OpenIssues: 0, Priority: domain.PriorityLow,
	}, summary.Rows[4])
	assert.True(t, summary.Rows[5].Separator())
}

func TestCategoryPivot_SkipsEmptyCategories(t *testing.T) {
	categories := enrich.DefaultSettings().Categories
	summary := CategoryPivot([]domain.EnrichedControl{
		{Control: domain.Control{Title: "RDS", ControlTitle: "D", Status: domain.StatusAlarm}, Priority: domain.PriorityHigh},
	}, categories)

	// Only the Database category emits rows; no separators for empty ones.
	assert.Len(t, summary.Rows, 2)
	assert.Equal(t, "RDS", summary.Rows[0].Service)
	assert.True(t, summary.Rows[1].Separator())
}

func TestCategoryPivot_UncategorizedServiceIgnored(t *testing.T) {
	categories := enrich.DefaultSettings().Categories
	summary := CategoryPivot([]domain.EnrichedControl{
		{Control: domain.Control{Title: "Unknown Service", ControlTitle: "X", Status: domain.StatusAlarm}},
	}, categories)

	assert.Empty(t, summary.Rows)
}

func TestCategoryPivot_DistinctPrioritiesSplitGroups(t *testing.T) {
	categories := enrich.DefaultSettings().Categories
	summary := CategoryPivot([]domain.EnrichedControl{
		{Control: domain.Control{Title: "EC2", ControlTitle: "A", Status: domain.StatusAlarm}, Priority: domain.PriorityHigh},
		{Control: domain.Control{Title: "EC2", ControlTitle: "A", Status: domain.StatusAlarm}, Priority: domain.PriorityLow},
	}, categories)

	// Same control title but different priorities -> two groups + separator.
	assert.Len(t, summary.Rows, 3)
	assert.Equal(t, 1, summary.Rows[0].OpenIssues)
	assert.Equal(t, 1, summary.Rows[1].OpenIssues)
}
