package pdf

import (
	"fmt"
	"sort"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/go-pdf/fpdf"
)

var (
	colorPrimary  = [3]int{30, 58, 95}
	colorDanger   = [3]int{231, 76, 60}
	colorAccent   = [3]int{46, 204, 113}
	colorTextDark = [3]int{44, 62, 80}
	colorHeader   = [3]int{30, 58, 95}
	colorRowAlt   = [3]int{241, 245, 249}
)

// Generator renders the executive summary as a PDF document.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes the summary PDF to path.
func (g *Generator) Generate(path string, summary domain.ExecutiveSummary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	pdf.SetFillColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.Rect(0, 0, pageWidth, 8, "F")

	pdf.SetY(25)
	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.CellFormat(0, 12, "AWS Compliance Executive Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(colorTextDark[0], colorTextDark[1], colorTextDark[2])
	pdf.CellFormat(0, 6, summary.ReportTimestamp.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	g.writeScore(pdf, summary)
	g.writeHighRiskServices(pdf, summary)
	g.writeRecommendations(pdf, summary)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", path, err)
	}
	return nil
}

func (g *Generator) writeScore(pdf *fpdf.Fpdf, summary domain.ExecutiveSummary) {
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Overall Compliance", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 28)
	pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.CellFormat(60, 14, summary.ComplianceScore, "", 0, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(colorTextDark[0], colorTextDark[1], colorTextDark[2])
	pdf.CellFormat(0, 14, fmt.Sprintf("across %d controls", summary.TotalControls), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func (g *Generator) writeHighRiskServices(pdf *fpdf.Fpdf, summary domain.ExecutiveSummary) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(colorTextDark[0], colorTextDark[1], colorTextDark[2])
	pdf.CellFormat(0, 10, "High Risk Services", "", 1, "L", false, 0, "")

	if len(summary.HighRiskServices) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 8, "No services above the risk threshold.", "", 1, "L", false, 0, "")
		pdf.Ln(4)
		return
	}

	services := make([]string, 0, len(summary.HighRiskServices))
	for s := range summary.HighRiskServices {
		services = append(services, s)
	}
	sort.SliceStable(services, func(i, j int) bool {
		return summary.HighRiskServices[services[i]] > summary.HighRiskServices[services[j]]
	})

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(colorHeader[0], colorHeader[1], colorHeader[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(120, 8, "Service", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, "Cumulative Risk", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for i, s := range services {
		fill := i%2 == 1
		pdf.SetFillColor(colorRowAlt[0], colorRowAlt[1], colorRowAlt[2])
		pdf.SetTextColor(colorTextDark[0], colorTextDark[1], colorTextDark[2])
		pdf.CellFormat(120, 8, s, "1", 0, "L", fill, 0, "")
		pdf.SetTextColor(colorDanger[0], colorDanger[1], colorDanger[2])
		pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", summary.HighRiskServices[s]), "1", 1, "R", fill, 0, "")
	}
	pdf.Ln(6)
}

func (g *Generator) writeRecommendations(pdf *fpdf.Fpdf, summary domain.ExecutiveSummary) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(colorTextDark[0], colorTextDark[1], colorTextDark[2])
	pdf.CellFormat(0, 10, "Top Recommendations", "", 1, "L", false, 0, "")

	if len(summary.TopRecommendations) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 8, "No open recommendations.", "", 1, "L", false, 0, "")
		return
	}

	for i, rec := range summary.TopRecommendations {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. [%s] %s (risk %.2f)", i+1, rec.Title, rec.ControlTitle, rec.RiskScore), "", "L", false)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(colorTextDark[0], colorTextDark[1], colorTextDark[2])
		pdf.MultiCell(0, 5, rec.Recommendation, "", "L", false)
		pdf.Ln(2)
	}
}
