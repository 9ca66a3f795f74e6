package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/de-tools/compliance-atlas/pkg/adapters"
	"github.com/de-tools/compliance-atlas/pkg/export/charts"
	"github.com/de-tools/compliance-atlas/pkg/export/excel"
	"github.com/de-tools/compliance-atlas/pkg/export/jsonreport"
	"github.com/de-tools/compliance-atlas/pkg/export/pdf"
	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/services/enrich"
	"github.com/de-tools/compliance-atlas/pkg/services/summary"
	"github.com/de-tools/compliance-atlas/pkg/store/tabular"
	"github.com/rs/zerolog"
)

const timestampLayout = "20060102_150405"

// Artifacts lists the files one pipeline run produced, along with the
// executive summary the run computed.
type Artifacts struct {
	Workbook  string
	Summary   string
	PDF       string
	Charts    []string
	Executive domain.ExecutiveSummary
}

// Controller runs the enrichment pipeline: load, enrich, summarize, export.
type Controller struct {
	settings enrich.Settings
	renderer *charts.Renderer
	pdf      *pdf.Generator
	now      func() time.Time
}

// NewController creates the enrichment pipeline controller.
func NewController(settings enrich.Settings) *Controller {
	return &Controller{
		settings: settings,
		renderer: charts.NewRenderer(settings),
		pdf:      pdf.NewGenerator(),
		now:      time.Now,
	}
}

// Run executes one enrichment pipeline pass over the given compliance export
// and priority annotations file, and writes the workbook, executive summary
// and charts under the configured output directory.
func (c *Controller) Run(ctx context.Context, inputPath, priorityPath string) (*Artifacts, error) {
	logger := zerolog.Ctx(ctx)

	inputTable, err := tabular.ReadFile(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load input file: %w", err)
	}
	priorityTable, err := tabular.ReadFile(ctx, priorityPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load priority annotations: %w", err)
	}

	controls, err := adapters.MapTableToControls(inputTable)
	if err != nil {
		return nil, err
	}
	records, err := adapters.MapTableToPriorityRecords(priorityTable)
	if err != nil {
		return nil, err
	}

	index := enrich.NewIndex(records)
	logger.Info().
		Int("annotations", len(records)).
		Int("distinct_titles", index.Len()).
		Msg("built priority index")

	enriched := enrich.Enrich(ctx, controls, index, c.settings)

	score, err := summary.ComplianceScore(enriched)
	if err != nil {
		return nil, err
	}
	topServices := summary.TopRiskServices(enriched, c.settings)
	topRecommendations := summary.TopRecommendations(enriched, c.settings)
	priorityCounts := summary.PriorityCounts(enriched)

	highRisk := make(map[string]float64, len(topServices))
	for _, s := range topServices {
		highRisk[s.Service] = s.Score
	}

	exec := domain.ExecutiveSummary{
		ReportTimestamp:    c.now(),
		ComplianceScore:    fmt.Sprintf("%.2f%%", score),
		TotalControls:      len(enriched),
		HighRiskServices:   highRisk,
		TopRecommendations: topRecommendations,
	}

	logger.Info().
		Str("compliance_score", exec.ComplianceScore).
		Int("total_controls", exec.TotalControls).
		Int("high_risk_services", len(highRisk)).
		Msg("executive summary computed")

	if err := os.MkdirAll(c.settings.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	ts := exec.ReportTimestamp.Format(timestampLayout)

	artifacts := &Artifacts{
		Workbook:  filepath.Join(c.settings.OutputDir, fmt.Sprintf("%s_compliance_report_%s.xlsx", base, ts)),
		Summary:   filepath.Join(c.settings.OutputDir, fmt.Sprintf("%s_executive_summary_%s.json", base, ts)),
		PDF:       filepath.Join(c.settings.OutputDir, fmt.Sprintf("%s_executive_summary_%s.pdf", base, ts)),
		Executive: exec,
	}

	if err := excel.WriteComplianceWorkbook(artifacts.Workbook, enriched, priorityCounts); err != nil {
		return nil, err
	}
	logger.Info().Str("path", artifacts.Workbook).Msg("workbook written")

	if err := jsonreport.Write(artifacts.Summary, exec); err != nil {
		return nil, err
	}
	logger.Info().Str("path", artifacts.Summary).Msg("executive summary written")

	heatmap := filepath.Join(c.settings.OutputDir, "priority_heatmap.png")
	written, err := c.renderer.PriorityDistribution(heatmap, enriched)
	if err != nil {
		return nil, err
	}
	if written {
		artifacts.Charts = append(artifacts.Charts, heatmap)
	}
	riskChart := filepath.Join(c.settings.OutputDir, "risk_score_chart.png")
	written, err = c.renderer.RiskByService(riskChart, enriched)
	if err != nil {
		return nil, err
	}
	if written {
		artifacts.Charts = append(artifacts.Charts, riskChart)
	}
	logger.Info().Strs("paths", artifacts.Charts).Msg("charts rendered")

	if err := c.pdf.Generate(artifacts.PDF, exec); err != nil {
		return nil, err
	}
	logger.Info().Str("path", artifacts.PDF).Msg("PDF summary written")

	return artifacts, nil
}
