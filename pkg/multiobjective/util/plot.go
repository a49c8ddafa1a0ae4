package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"sigs.k8s.io/moo-indicators/pkg/multiobjective/framework"
)

// PlotFront renders a scatter plot of a 2-D front as an HTML page. The
// optional reference front (e.g. the true Pareto front) and reference point
// are drawn as separate series.
func PlotFront(w io.Writer, title string, front, referenceFront framework.ObjectiveMatrix, refPoint []float64) error {
	if len(front) == 0 {
		return fmt.Errorf("front is empty for %s", title)
	}

	if front.NumObjectives() != 2 {
		return fmt.Errorf("can only plot 2D for %s", title)
	}

	// Create scatter chart
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	if len(referenceFront) > 0 {
		scatter.AddSeries("Reference Front", scatterData(referenceFront, "circle"))
	}
	scatter.AddSeries("Front", scatterData(front, "triangle"))
	if len(refPoint) == 2 {
		scatter.AddSeries("Reference Point", scatterData(framework.ObjectiveMatrix{refPoint}, "diamond"))
	}
	scatter.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(false),
		}),
		charts.WithEmphasisOpts(opts.Emphasis{}),
	)

	return scatter.Render(w)
}

func scatterData(points framework.ObjectiveMatrix, symbol string) []opts.ScatterData {
	data := make([]opts.ScatterData, len(points))
	for i, p := range points {
		data[i] = opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     symbol,
			SymbolSize: 10,
		}
	}
	return data
}
