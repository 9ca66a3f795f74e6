package enrich

import (
	"context"
	"math"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

const noRecommendation = "No recommendation available"

// Index is a control_title lookup over the priority annotations table.
// When the table holds duplicate titles, the first row encountered wins.
type Index struct {
	records map[string]domain.PriorityRecord
}

// NewIndex builds the lookup from the reference records in table order.
func NewIndex(records []domain.PriorityRecord) *Index {
	index := make(map[string]domain.PriorityRecord, len(records))
	for _, r := range records {
		if _, exists := index[r.ControlTitle]; !exists {
			index[r.ControlTitle] = r
		}
	}
	return &Index{records: index}
}

// Lookup returns the annotation for a control title, if any.
func (i *Index) Lookup(controlTitle string) (domain.PriorityRecord, bool) {
	r, ok := i.records[controlTitle]
	return r, ok
}

// Len returns the number of distinct control titles in the index.
func (i *Index) Len() int {
	return len(i.records)
}

// RiskScore derives the numeric severity of a control from its priority
// annotation and current status, rounded to two decimal places.
func RiskScore(settings Settings, priority domain.Priority, status domain.Status) float64 {
	impact := settings.PriorityImpact[priority]

	multiplier, ok := settings.StatusMultiplier[status]
	if !ok {
		multiplier = settings.DefaultStatusMultiplier
	}

	return math.Round(impact*multiplier*100) / 100
}

// Enrich joins every control against the priority index and attaches the
// priority, recommendation and risk score. Controls without a matching
// annotation degrade to "No Priority" with a zero score rather than failing.
func Enrich(ctx context.Context, controls []domain.Control, index *Index, settings Settings) []domain.EnrichedControl {
	logger := zerolog.Ctx(ctx)

	enriched := make([]domain.EnrichedControl, 0, len(controls))
	unmatched := 0

	for _, c := range controls {
		record, ok := index.Lookup(c.ControlTitle)
		if !ok {
			unmatched++
			enriched = append(enriched, domain.EnrichedControl{
				Control:        c,
				Priority:       domain.PriorityNone,
				Recommendation: noRecommendation,
				RiskScore:      0,
			})
			continue
		}

		enriched = append(enriched, domain.EnrichedControl{
			Control:        c,
			Priority:       record.Priority,
			Recommendation: record.Recommendation,
			RiskScore:      RiskScore(settings, record.Priority, c.Status),
		})
	}

	logger.Info().
		Int("controls", len(controls)).
		Int("unmatched", unmatched).
		Msg("enriched compliance controls")

	return enriched
}
