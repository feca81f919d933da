package util

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// TrueFrontSamples is the number of points drawn for a problem's true front.
const TrueFrontSamples = 200

// FrontChart creates a scatter plot comparing the true Pareto front of the
// given Problem with the front found by the algorithm. problem may be nil, in
// which case only the found front is drawn.
func FrontChart(front []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string) (*charts.Scatter, error) {
	name := "custom"
	if problem != nil {
		name = problem.Name()
	}
	if len(front) == 0 {
		return nil, fmt.Errorf("front is empty for %s", name)
	}
	for _, p := range front {
		if len(p) != 2 {
			return nil, fmt.Errorf("can only plot 2 objectives for %s, got %d", name, len(p))
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s results for %s", algorithmName, name),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "f1(x)",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "f2(x)",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}))

	if problem != nil {
		if trueFront := problem.TrueParetoFront(TrueFrontSamples); len(trueFront) > 0 {
			scatter.AddSeries("True Pareto Front", scatterData(trueFront, "circle", 3))
		}
	}
	scatter.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), scatterData(front, "triangle", 8)).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)
	return scatter, nil
}

func scatterData(points []framework.ObjectiveSpacePoint, symbol string, size int) []opts.ScatterData {
	data := make([]opts.ScatterData, len(points))
	for i, p := range points {
		data[i] = opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     symbol,
			SymbolSize: size,
		}
	}
	return data
}

// ConvergenceChart plots every objective of the best member of each generation.
func ConvergenceChart(best []framework.ObjectiveSpacePoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Best member per generation"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "generation"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "objective"}),
	)

	generations := make([]int, len(best))
	for i := range best {
		generations[i] = i
	}
	line.SetXAxis(generations)

	if len(best) == 0 {
		return line
	}
	for m := range best[0] {
		data := make([]opts.LineData, len(best))
		for i, p := range best {
			data[i] = opts.LineData{Value: p[m]}
		}
		line.AddSeries(fmt.Sprintf("f%d(x)", m+1), data)
	}
	return line
}

// RenderReport writes an HTML page holding the front chart and, when best is
// non-empty, the convergence chart.
func RenderReport(w io.Writer, front []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string, best []framework.ObjectiveSpacePoint) error {
	scatter, err := FrontChart(front, problem, algorithmName)
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s results", algorithmName)
	page.AddCharts(scatter)
	if len(best) > 0 {
		page.AddCharts(ConvergenceChart(best))
	}
	return page.Render(w)
}

// PlotResults renders the report into the file at path.
func PlotResults(path string, front []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string, best []framework.ObjectiveSpacePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return RenderReport(f, front, problem, algorithmName, best)
}
