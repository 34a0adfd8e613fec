package sweeps

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wy/pgsweep/analysis"
)

func Report(dataDir, column, plotPath string) error {
	experiments, err := analysis.LoadDataDir(dataDir)
	if err != nil {
		return fmt.Errorf("loading %s (sweeps:report.go:Report:1):\n%s", dataDir, err)
	}
	if len(experiments) == 0 {
		return fmt.Errorf("no experiment data under %s (sweeps:report.go:Report:2)", dataDir)
	}

	for _, e := range experiments {
		means, stds, err := e.MeanCurve(column)
		if err != nil {
			return err
		}
		last := len(means) - 1
		fmt.Printf("%s: %d seeds, %d iterations, final %s %.3f (std %.3f)\n",
			e.Name, len(e.Seeds), len(means), column, means[last], stds[last])
	}

	return analysis.PlotComparison(experiments, column, plotPath)
}

// ReportCommand aggregates the log files the trainer wrote and plots a
// comparison of the experiments found in the data directory.
func ReportCommand() *cobra.Command {
	var dataDir string
	var column string
	var plotPath string

	cmd := &cobra.Command{
		Use: "report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Report(dataDir, column, plotPath)
		},
	}
	cmd.PersistentFlags().StringVar(&dataDir, "data", "data", "Directory with the trainer output")
	cmd.PersistentFlags().StringVar(&column, "column", "AverageReturn", "Log column to aggregate")
	cmd.PersistentFlags().StringVar(&plotPath, "plot", "plots", "Directory to store the comparison plot")
	return cmd
}
