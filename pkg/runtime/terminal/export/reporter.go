package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
)

// Reporter outputs the executive summary to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(summary domain.ExecutiveSummary) error {
	funcMap := template.FuncMap{
		"rankedServices": func(services map[string]float64) []domain.ServiceRisk {
			ranked := make([]domain.ServiceRisk, 0, len(services))
			for s, score := range services {
				ranked = append(ranked, domain.ServiceRisk{Service: s, Score: score})
			}
			sort.SliceStable(ranked, func(i, j int) bool {
				return ranked[i].Score > ranked[j].Score
			})
			return ranked
		},
	}

	tmpl := `
AWS Compliance Executive Summary ({{.ReportTimestamp.Format "2006-01-02 15:04:05"}})
Overall Compliance Score: {{.ComplianceScore}}
Total Controls: {{.TotalControls}}

=== High Risk Services ===
{{range rankedServices .HighRiskServices}}
- {{.Service}}: {{printf "%.2f" .Score}}
{{else}}
(none above threshold)
{{end}}
=== Top Recommendations ===
{{range .TopRecommendations}}
- [{{.Title}}] {{.ControlTitle}} (risk {{printf "%.2f" .RiskScore}})
  {{.Recommendation}}
{{else}}
(no open recommendations)
{{end}}
`
	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summary)
}
