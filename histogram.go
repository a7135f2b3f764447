package qsim

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// NamedResult pairs a run label with its outcome distribution.
type NamedResult struct {
	Title  string
	Result *Result
}

// NewCountsChart builds a bar chart of one run's measurement outcomes,
// ordered by bit-string.
func NewCountsChart(title string, res *Result) *charts.Bar {
	outcomes := make([]string, 0, len(res.Counts))
	for outcome := range res.Counts {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)

	items := make([]opts.BarData, len(outcomes))
	for i, outcome := range outcomes {
		items[i] = opts.BarData{Value: res.Counts[outcome]}
	}

	bar := charts.NewBar()
	subtitle := fmt.Sprintf("backend=%s, shots=%d", res.Backend, res.Shots)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(outcomes).
		AddSeries("count", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar
}

// RenderCountsPage writes a single HTML page with one histogram per run.
func RenderCountsPage(w io.Writer, runs ...NamedResult) error {
	page := components.NewPage()
	for _, run := range runs {
		if run.Result == nil {
			continue
		}
		page.AddCharts(NewCountsChart(run.Title, run.Result))
	}
	return page.Render(w)
}
