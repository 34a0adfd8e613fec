package analysis

import (
	"fmt"
	"os"
	"path"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotComparison draws the aggregated column of every experiment as one
// line per experiment and saves the figure as a png
func PlotComparison(experiments []*ExperimentData, column, plotPath string) error {
	if _, err := os.Stat(plotPath); err != nil {
		os.Mkdir(plotPath, os.ModePerm)
	}

	p := plot.New()
	p.Title.Text = "Comparison"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = column
	p.Legend.Top = true

	for i, e := range experiments {
		means, _, err := e.MeanCurve(column)
		if err != nil {
			return err
		}
		points := make(plotter.XYs, len(means))
		for j, v := range means {
			points[j] = plotter.XY{
				X: float64(j),
				Y: v,
			}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			continue
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(e.Name, line)
		fmt.Printf("Final %s: %f for experiment: %s\n", column, means[len(means)-1], e.Name)
	}

	return p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, column+"_comparison.png"))
}
