package summary

import (
	"errors"
	"math"
	"sort"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/services/enrich"
)

// ErrEmptyTable is returned when a score is requested for zero controls.
var ErrEmptyTable = errors.New("no controls to score")

// ComplianceScore is the percentage of controls whose status counts as
// passed (ok, info or skip). An empty input has no meaningful score.
func ComplianceScore(controls []domain.EnrichedControl) (float64, error) {
	if len(controls) == 0 {
		return 0, ErrEmptyTable
	}

	passed := 0
	for _, c := range controls {
		if c.Status.Passed() {
			passed++
		}
	}
	return float64(passed) / float64(len(controls)) * 100, nil
}

// TopRiskServices ranks services by cumulative risk score, descending.
// Services at or below the risk threshold are dropped; ties keep the order
// services were first seen in.
func TopRiskServices(controls []domain.EnrichedControl, settings enrich.Settings) []domain.ServiceRisk {
	totals := make(map[string]float64)
	var order []string

	for _, c := range controls {
		if _, seen := totals[c.Title]; !seen {
			order = append(order, c.Title)
		}
		totals[c.Title] += c.RiskScore
	}

	var ranked []domain.ServiceRisk
	for _, service := range order {
		score := math.Round(totals[service]*100) / 100
		if score > settings.RiskThreshold {
			ranked = append(ranked, domain.ServiceRisk{Service: service, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > settings.TopN {
		ranked = ranked[:settings.TopN]
	}
	return ranked
}

// TopRecommendations picks the highest-risk controls and projects their
// remediation guidance. Controls with a zero score carry no actionable
// recommendation and are skipped.
func TopRecommendations(controls []domain.EnrichedControl, settings enrich.Settings) []domain.Recommendation {
	var risky []domain.EnrichedControl
	for _, c := range controls {
		if c.RiskScore > 0 {
			risky = append(risky, c)
		}
	}

	sort.SliceStable(risky, func(i, j int) bool {
		return risky[i].RiskScore > risky[j].RiskScore
	})

	if len(risky) > settings.TopN {
		risky = risky[:settings.TopN]
	}

	recommendations := make([]domain.Recommendation, 0, len(risky))
	for _, c := range risky {
		recommendations = append(recommendations, domain.Recommendation{
			Title:          c.Title,
			ControlTitle:   c.ControlTitle,
			Recommendation: c.Recommendation,
			RiskScore:      c.RiskScore,
		})
	}
	return recommendations
}

// priorityOrder fixes the emission order of the priority distribution.
var priorityOrder = []domain.Priority{
	domain.PriorityHigh,
	domain.PriorityMed,
	domain.PriorityLow,
	domain.PrioritySafe,
	domain.PriorityNone,
}

// PriorityCounts tallies controls per priority class, highest first.
// Priorities outside the known classes are appended in encounter order.
func PriorityCounts(controls []domain.EnrichedControl) []domain.PriorityCount {
	counts := make(map[domain.Priority]int)
	var extras []domain.Priority

	known := make(map[domain.Priority]bool, len(priorityOrder))
	for _, p := range priorityOrder {
		known[p] = true
	}

	for _, c := range controls {
		if counts[c.Priority] == 0 && !known[c.Priority] {
			extras = append(extras, c.Priority)
		}
		counts[c.Priority]++
	}

	var result []domain.PriorityCount
	for _, p := range append(append([]domain.Priority{}, priorityOrder...), extras...) {
		if counts[p] > 0 {
			result = append(result, domain.PriorityCount{Priority: p, Count: counts[p]})
		}
	}
	return result
}

// SafeUnsafeSplit partitions controls into non-alarm and alarm subsets,
// preserving row order in both.
func SafeUnsafeSplit(controls []domain.EnrichedControl) (safe, unsafe []domain.EnrichedControl) {
	for _, c := range controls {
		if c.Status.IsOpenIssue() {
			unsafe = append(unsafe, c)
		} else {
			safe = append(safe, c)
		}
	}
	return safe, unsafe
}
