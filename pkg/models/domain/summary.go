package domain

import "time"

// ServiceRisk is a service with its cumulative risk score.
type ServiceRisk struct {
	Service string
	Score   float64
}

// Recommendation is one entry of the top-recommendations ranking.
type Recommendation struct {
	Title          string  `json:"title"`
	ControlTitle   string  `json:"control_title"`
	Recommendation string  `json:"recommendation"`
	RiskScore      float64 `json:"risk_score"`
}

// ExecutiveSummary is the machine-readable digest of one report run.
type ExecutiveSummary struct {
	ReportTimestamp    time.Time          `json:"report_timestamp"`
	ComplianceScore    string             `json:"overall_compliance_score"`
	TotalControls      int                `json:"total_controls"`
	HighRiskServices   map[string]float64 `json:"top_high_risk_services"`
	TopRecommendations []Recommendation   `json:"top_recommendations"`
}

// PriorityCount is one row of the priority distribution summary.
type PriorityCount struct {
	Priority Priority
	Count    int
}

// CategoryRow is one row of a per-category pivot summary. A zero SrNo marks
// the blank separator emitted after each category's rows.
type CategoryRow struct {
	SrNo         int
	Service      string
	ControlTitle string
	Description  string
	OpenIssues   int
	Priority     Priority
}

// Separator reports whether the row is a blank category separator.
func (r CategoryRow) Separator() bool {
	return r.SrNo == 0
}

// CategorySummary is the ordered pivot of controls grouped per service
// category, separators included.
type CategorySummary struct {
	Rows []CategoryRow
}
