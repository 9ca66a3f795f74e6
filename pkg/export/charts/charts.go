package charts

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/services/enrich"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Renderer draws report charts as PNG files.
type Renderer struct {
	settings enrich.Settings
}

func NewRenderer(settings enrich.Settings) *Renderer {
	return &Renderer{settings: settings}
}

func (r *Renderer) priorityColor(p domain.Priority) drawing.Color {
	hex, ok := r.settings.PriorityColors[p]
	if !ok {
		hex = "#C0C0C0"
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// hasData reports whether any bar carries a positive value. go-chart rejects
// an all-zero series ("invalid data range"), so such charts are skipped.
func hasData(bars []chart.Value) bool {
	for _, b := range bars {
		if b.Value > 0 {
			return true
		}
	}
	return false
}

// PriorityDistribution renders a stacked bar per service, one segment per
// priority class, colored from the priority color map. This is the chart
// equivalent of a service-by-priority heatmap. It reports whether a chart
// file was written.
func (r *Renderer) PriorityDistribution(path string, controls []domain.EnrichedControl) (bool, error) {
	perService := make(map[string]map[domain.Priority]int)
	var services []string
	for _, c := range controls {
		if _, seen := perService[c.Title]; !seen {
			services = append(services, c.Title)
			perService[c.Title] = make(map[domain.Priority]int)
		}
		perService[c.Title][c.Priority]++
	}

	priorities := []domain.Priority{
		domain.PriorityHigh, domain.PriorityMed, domain.PriorityLow,
		domain.PrioritySafe, domain.PriorityNone,
	}

	var bars []chart.StackedBar
	for _, service := range services {
		var values []chart.Value
		for _, p := range priorities {
			count := perService[service][p]
			if count == 0 {
				continue
			}
			values = append(values, chart.Value{
				Value: float64(count),
				Label: fmt.Sprintf("%s (%d)", p, count),
				Style: chart.Style{FillColor: r.priorityColor(p)},
			})
		}
		if len(values) == 0 {
			continue
		}
		bars = append(bars, chart.StackedBar{Name: service, Values: values})
	}
	if len(bars) == 0 {
		return false, nil
	}

	graph := chart.StackedBarChart{
		Title:      "AWS Compliance Priority Distribution",
		TitleStyle: chart.Shown(),
		Width:      1200,
		Height:     800,
		XAxis:      chart.Shown(),
		YAxis:      chart.Shown(),
		BarSpacing: 40,
		Bars:       bars,
	}
	return true, renderPNG(path, graph.Render)
}

// RiskByService renders the cumulative risk score per service, descending.
// It reports whether a chart file was written.
func (r *Renderer) RiskByService(path string, controls []domain.EnrichedControl) (bool, error) {
	totals := make(map[string]float64)
	var services []string
	for _, c := range controls {
		if _, seen := totals[c.Title]; !seen {
			services = append(services, c.Title)
		}
		totals[c.Title] += c.RiskScore
	}
	sort.SliceStable(services, func(i, j int) bool {
		return totals[services[i]] > totals[services[j]]
	})

	var bars []chart.Value
	for _, service := range services {
		bars = append(bars, chart.Value{Value: totals[service], Label: service})
	}
	if !hasData(bars) {
		return false, nil
	}

	graph := chart.BarChart{
		Title:      "Cumulative Risk Score by AWS Service",
		TitleStyle: chart.Shown(),
		Width:      1200,
		Height:     600,
		BarWidth:   40,
		XAxis:      chart.Shown(),
		YAxis:      chart.YAxis{Style: chart.Shown()},
		Bars:       bars,
	}
	return true, renderPNG(path, graph.Render)
}

// OpenIssuesByService renders the count of alarm controls per service. It
// reports whether a chart file was written.
func (r *Renderer) OpenIssuesByService(path string, controls []domain.EnrichedControl) (bool, error) {
	totals := make(map[string]int)
	var services []string
	for _, c := range controls {
		if _, seen := totals[c.Title]; !seen {
			services = append(services, c.Title)
			totals[c.Title] = 0
		}
		if c.Status.IsOpenIssue() {
			totals[c.Title]++
		}
	}

	var bars []chart.Value
	for _, service := range services {
		bars = append(bars, chart.Value{Value: float64(totals[service]), Label: service})
	}
	if !hasData(bars) {
		return false, nil
	}

	graph := chart.BarChart{
		Title:      "Open Issues by Service",
		TitleStyle: chart.Shown(),
		Width:      1000,
		Height:     600,
		BarWidth:   40,
		XAxis:      chart.Shown(),
		YAxis:      chart.YAxis{Style: chart.Shown()},
		Bars:       bars,
	}
	return true, renderPNG(path, graph.Render)
}

// SafeControlsByService renders the count of non-alarm controls per service.
// It reports whether a chart file was written.
func (r *Renderer) SafeControlsByService(path string, controls []domain.EnrichedControl) (bool, error) {
	totals := make(map[string]int)
	var services []string
	for _, c := range controls {
		if c.Status.IsOpenIssue() {
			continue
		}
		if _, seen := totals[c.Title]; !seen {
			services = append(services, c.Title)
		}
		totals[c.Title]++
	}

	var bars []chart.Value
	for _, service := range services {
		bars = append(bars, chart.Value{Value: float64(totals[service]), Label: service})
	}
	if !hasData(bars) {
		return false, nil
	}

	graph := chart.BarChart{
		Title:      "Safe Controls by Service",
		TitleStyle: chart.Shown(),
		Width:      1000,
		Height:     600,
		BarWidth:   40,
		XAxis:      chart.Shown(),
		YAxis:      chart.YAxis{Style: chart.Shown()},
		Bars:       bars,
	}
	return true, renderPNG(path, graph.Render)
}

// PriorityBreakdown renders open issues per priority class as a pie chart.
// It reports whether a chart file was written.
func (r *Renderer) PriorityBreakdown(path string, controls []domain.EnrichedControl) (bool, error) {
	totals := make(map[domain.Priority]int)
	var order []domain.Priority
	for _, c := range controls {
		if _, seen := totals[c.Priority]; !seen {
			order = append(order, c.Priority)
			totals[c.Priority] = 0
		}
		if c.Status.IsOpenIssue() {
			totals[c.Priority]++
		}
	}

	var values []chart.Value
	for _, p := range order {
		if totals[p] == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(totals[p]),
			Label: string(p),
			Style: chart.Style{FillColor: r.priorityColor(p)},
		})
	}
	if len(values) == 0 {
		return false, nil
	}

	graph := chart.PieChart{
		Title:  "Open Issues by Priority",
		Width:  800,
		Height: 800,
		Values: values,
	}
	return true, renderPNG(path, graph.Render)
}

// SafeVsUnsafe renders the safe/unsafe control split as a pie chart. It
// reports whether a chart file was written.
func (r *Renderer) SafeVsUnsafe(path string, safeCount, unsafeCount int) (bool, error) {
	if safeCount == 0 && unsafeCount == 0 {
		return false, nil
	}
	graph := chart.PieChart{
		Title:  "Safe vs Unsafe Controls",
		Width:  800,
		Height: 800,
		Values: []chart.Value{
			{Value: float64(safeCount), Label: "Safe Controls", Style: chart.Style{FillColor: drawing.ColorFromHex("00FF00")}},
			{Value: float64(unsafeCount), Label: "Unsafe Controls", Style: chart.Style{FillColor: drawing.ColorFromHex("FF0000")}},
		},
	}
	return true, renderPNG(path, graph.Render)
}

func renderPNG(path string, render func(chart.RendererProvider, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %w", path, err)
	}
	if err := render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render chart %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close chart file %s: %w", path, err)
	}
	return nil
}
