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
	"github.com/de-tools/compliance-atlas/pkg/services/enrich"
	"github.com/de-tools/compliance-atlas/pkg/services/summary"
	"github.com/de-tools/compliance-atlas/pkg/store/tabular"
	"github.com/rs/zerolog"
)

// PivotController runs the category pivot pipeline: load, map numeric
// priorities, split safe/unsafe, pivot per category, export.
type PivotController struct {
	settings enrich.Settings
	renderer *charts.Renderer
	now      func() time.Time
}

// NewPivotController creates the pivot pipeline controller.
func NewPivotController(settings enrich.Settings) *PivotController {
	return &PivotController{
		settings: settings,
		renderer: charts.NewRenderer(settings),
		now:      time.Now,
	}
}

// Run executes one pivot pipeline pass over the given compliance export and
// writes the category workbook and its charts under the configured output
// directory.
func (c *PivotController) Run(ctx context.Context, inputPath string) (*Artifacts, error) {
	logger := zerolog.Ctx(ctx)

	table, err := tabular.ReadFile(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load input file: %w", err)
	}

	controls, err := adapters.MapTableToAnnotatedControls(table)
	if err != nil {
		return nil, err
	}
	if len(controls) == 0 {
		return nil, summary.ErrEmptyTable
	}

	safe, unsafe := summary.SafeUnsafeSplit(controls)
	categoryTable := summary.CategoryPivot(controls, c.settings.Categories)
	categoryTableSafe := summary.CategoryPivot(safe, c.settings.Categories)

	logger.Info().
		Int("controls", len(controls)).
		Int("safe", len(safe)).
		Int("unsafe", len(unsafe)).
		Int("summary_rows", len(categoryTable.Rows)).
		Msg("category pivot computed")

	if err := os.MkdirAll(c.settings.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	ts := c.now().Format(timestampLayout)
	workbook := filepath.Join(c.settings.OutputDir, fmt.Sprintf("final_report_%s.xlsx", ts))

	if err := excel.WritePivotWorkbook(workbook, safe, unsafe, categoryTable, categoryTableSafe); err != nil {
		return nil, err
	}
	logger.Info().Str("path", workbook).Msg("workbook written")

	artifacts := &Artifacts{Workbook: workbook}

	chartBase := strings.TrimSuffix(workbook, ".xlsx")
	renderers := []struct {
		path   string
		render func(string) (bool, error)
	}{
		{chartBase + "_open_issues_by_service.png", func(p string) (bool, error) {
			return c.renderer.OpenIssuesByService(p, controls)
		}},
		{chartBase + "_safe_controls_by_service.png", func(p string) (bool, error) {
			return c.renderer.SafeControlsByService(p, controls)
		}},
		{chartBase + "_priority_breakdown.png", func(p string) (bool, error) {
			return c.renderer.PriorityBreakdown(p, controls)
		}},
		{chartBase + "_safe_vs_unsafe_controls.png", func(p string) (bool, error) {
			return c.renderer.SafeVsUnsafe(p, len(safe), len(unsafe))
		}},
	}
	for _, r := range renderers {
		written, err := r.render(r.path)
		if err != nil {
			return nil, err
		}
		if written {
			artifacts.Charts = append(artifacts.Charts, r.path)
		}
	}
	logger.Info().Strs("paths", artifacts.Charts).Msg("charts rendered")

	return artifacts, nil
}
