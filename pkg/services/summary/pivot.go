package summary

import (
	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/services/enrich"
)

type pivotKey struct {
	title        string
	controlTitle string
	description  string
	priority     domain.Priority
}

// CategoryPivot groups controls per fixed service category, then per
// (service, control title, description, priority) combination, summing open
// issues. Groups keep first-encounter order within a category, and a blank
// separator row trails every category that produced rows. Serial numbers run
// across the whole summary.
func CategoryPivot(controls []domain.EnrichedControl, categories []enrich.Category) domain.CategorySummary {
	var summary domain.CategorySummary
	srNo := 0

	for _, category := range categories {
		members := make(map[string]bool, len(category.Services))
		for _, s := range category.Services {
			members[s] = true
		}

		totals := make(map[pivotKey]int)
		var order []pivotKey

		for _, c := range controls {
			if !members[c.Title] {
				continue
			}
			key := pivotKey{
				title:        c.Title,
				controlTitle: c.ControlTitle,
				description:  c.Description,
				priority:     c.Priority,
			}
			if _, seen := totals[key]; !seen {
				order = append(order, key)
				totals[key] = 0
			}
			if c.Status.IsOpenIssue() {
				totals[key]++
			}
		}

		for _, key := range order {
			srNo++
			summary.Rows = append(summary.Rows, domain.CategoryRow{
				SrNo:         srNo,
				Service:      key.title,
				ControlTitle: key.controlTitle,
				Description:  key.description,
				OpenIssues:   totals[key],
				Priority:     key.priority,
			})
		}

		if len(order) > 0 {
			summary.Rows = append(summary.Rows, domain.CategoryRow{})
		}
	}

	return summary
}
