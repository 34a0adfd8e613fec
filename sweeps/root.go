package sweeps

import "github.com/spf13/cobra"

var (
	pythonBinary string
	scriptPath   string
	workingDir   string
	savePath     string
	listenAddr   string
	dryRun       bool
	recordLogs   bool
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{Use: "pgsweep"}
	rootCommand.PersistentFlags().StringVar(&pythonBinary, "python", "python", "Interpreter used to run the trainer")
	rootCommand.PersistentFlags().StringVar(&scriptPath, "script", "train_pg.py", "Path to the trainer script")
	rootCommand.PersistentFlags().StringVar(&workingDir, "workdir", "", "Working directory for the trainer")
	rootCommand.PersistentFlags().StringVarP(&savePath, "save", "s", "results", "Save the run logs and config in the specified folder")
	rootCommand.PersistentFlags().StringVar(&listenAddr, "listen", "", "Address of the sweep status endpoint, disabled when empty")
	rootCommand.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the trainer invocations without executing them")
	rootCommand.PersistentFlags().BoolVar(&recordLogs, "record-logs", true, "Write captured trainer output to files")
	// adding the subcommands here
	rootCommand.AddCommand(CartPoleCommand())
	rootCommand.AddCommand(RunCommand())
	rootCommand.AddCommand(ReportCommand())
	return rootCommand
}
