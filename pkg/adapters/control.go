package adapters

import (
	"errors"
	"fmt"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/store/tabular"
)

// ErrMissingColumn is returned when a table lacks a column the pipeline
// cannot work without.
var ErrMissingColumn = errors.New("required column missing")

// recommendationColumns are the header spellings accepted for the
// recommendation text, most specific first.
var recommendationColumns = []string{"Recommendation Steps/Approach", "recommendation"}

// MapTableToControls converts a compliance export into domain controls.
// control_title and status must be present; every other column degrades to
// an empty value when absent.
func MapTableToControls(t *tabular.Table) ([]domain.Control, error) {
	for _, required := range []string{"control_title", "status"} {
		if !t.HasColumn(required) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	controls := make([]domain.Control, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		controls = append(controls, domain.Control{
			Title:        t.Get(i, "title"),
			ControlTitle: t.Get(i, "control_title"),
			Description:  t.Get(i, "control_description"),
			Status:       domain.Status(t.Get(i, "status")),
			Region:       t.Get(i, "region"),
			AccountID:    t.Get(i, "account_id"),
			Resource:     t.Get(i, "resource"),
			Reason:       t.Get(i, "reason"),
		})
	}
	return controls, nil
}

// MapTableToPriorityRecords converts the priority annotations table into
// reference records, in table order.
func MapTableToPriorityRecords(t *tabular.Table) ([]domain.PriorityRecord, error) {
	for _, required := range []string{"control_title", "priority"} {
		if !t.HasColumn(required) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	recommendationColumn := ""
	for _, c := range recommendationColumns {
		if t.HasColumn(c) {
			recommendationColumn = c
			break
		}
	}

	records := make([]domain.PriorityRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		recommendation := ""
		if recommendationColumn != "" {
			recommendation = t.Get(i, recommendationColumn)
		}
		records = append(records, domain.PriorityRecord{
			ControlTitle:   t.Get(i, "control_title"),
			Priority:       domain.Priority(t.Get(i, "priority")),
			Recommendation: recommendation,
		})
	}
	return records, nil
}

// MapTableToAnnotatedControls converts a pivot-pipeline export, where each
// row already carries a numeric priority code, into enriched controls with
// the code mapped to its word form. Risk scores stay zero; the pivot
// pipeline does not score.
func MapTableToAnnotatedControls(t *tabular.Table) ([]domain.EnrichedControl, error) {
	for _, required := range []string{"control_title", "status", "priority"} {
		if !t.HasColumn(required) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	controls := make([]domain.EnrichedControl, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		controls = append(controls, domain.EnrichedControl{
			Control: domain.Control{
				Title:        t.Get(i, "title"),
				ControlTitle: t.Get(i, "control_title"),
				Description:  t.Get(i, "control_description"),
				Status:       domain.Status(t.Get(i, "status")),
				Region:       t.Get(i, "region"),
				AccountID:    t.Get(i, "account_id"),
				Resource:     t.Get(i, "resource"),
				Reason:       t.Get(i, "reason"),
			},
			Priority: domain.PriorityFromCode(t.Get(i, "priority")),
		})
	}
	return controls, nil
}
