package domain

// Status is the state a compliance check finished in, as reported by the
// benchmark export (ok/alarm/info/skip plus whatever else the scanner emits).
type Status string

const (
	StatusOK    Status = "ok"
	StatusAlarm Status = "alarm"
	StatusInfo  Status = "info"
	StatusSkip  Status = "skip"
)

// Passed reports whether the control counts towards the compliance score.
func (s Status) Passed() bool {
	return s == StatusOK || s == StatusInfo || s == StatusSkip
}

// IsOpenIssue reports whether the control is an open issue (alarm state).
func (s Status) IsOpenIssue() bool {
	return s == StatusAlarm
}

type Priority string

const (
	PriorityHigh Priority = "High"
	PriorityMed  Priority = "Medium"
	PriorityLow  Priority = "Low"
	PrioritySafe Priority = "Safe"
	PriorityNone Priority = "No Priority"
)

// PriorityFromCode maps the numeric priority codes used by some benchmark
// exports (1/2/3) to their word form. Unknown codes map to PriorityNone.
func PriorityFromCode(code string) Priority {
	switch code {
	case "1":
		return PriorityHigh
	case "2":
		return PriorityMed
	case "3":
		return PriorityLow
	default:
		return PriorityNone
	}
}

// Control is a single compliance check result for one AWS resource.
type Control struct {
	Title        string // service name, e.g. "EC2"
	ControlTitle string
	Description  string
	Status       Status
	Region       string
	AccountID    string
	Resource     string
	Reason       string
}

// PriorityRecord is one row of the priority annotations reference table.
// ControlTitle is the join key; duplicates may exist, first row wins.
type PriorityRecord struct {
	ControlTitle   string
	Priority       Priority
	Recommendation string
}

// EnrichedControl is a Control with the priority annotation joined in and a
// risk score derived from priority and status.
type EnrichedControl struct {
	Control
	Priority       Priority
	Recommendation string
	RiskScore      float64
}
