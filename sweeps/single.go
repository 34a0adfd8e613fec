package sweeps

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wy/pgsweep/server"
	"github.com/wy/pgsweep/types"
)

// RunCommand launches a single trainer run built from command line flags.
// The flag surface mirrors the trainer's own, including the optional flags
// the fixed sweeps never pass.
func RunCommand() *cobra.Command {
	run := &types.RunConfig{}

	cmd := &cobra.Command{
		Use:  "run [env]",
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				run.EnvName = args[0]
			}
			run.SetDefaults()

			ctx := context.Background()
			s := types.NewSweep(&types.SweepConfig{
				PythonBinary: pythonBinary,
				ScriptPath:   scriptPath,
				WorkingDir:   workingDir,
				SavePath:     savePath,
				DryRun:       dryRun,
				RecordLogs:   recordLogs,
			})
			s.AddRun(run)

			if listenAddr != "" {
				server.NewStatusServer(ctx, listenAddr, s.Status()).Start()
			}

			s.Run(ctx)
		},
	}

	cmd.PersistentFlags().IntVarP(&run.Iterations, "n_iter", "n", 100, "Number of training iterations")
	cmd.PersistentFlags().IntVarP(&run.BatchSize, "batch_size", "b", 1000, "Batch size per iteration")
	cmd.PersistentFlags().IntVarP(&run.Experiments, "n_experiments", "e", 1, "Number of repeated experiments/seeds")
	cmd.PersistentFlags().BoolVar(&run.RewardToGo, "rtg", false, "Enable reward-to-go return estimation")
	cmd.PersistentFlags().BoolVar(&run.DontNormalizeAdvantages, "dna", false, "Disable advantage normalization")
	cmd.PersistentFlags().StringVar(&run.ExpName, "exp_name", "vpg", "Experiment label for output artifacts")
	cmd.PersistentFlags().IntVar(&run.NLayers, "n_layers", 1, "Policy network depth")
	cmd.PersistentFlags().IntVar(&run.Size, "size", 32, "Policy network hidden width")
	cmd.PersistentFlags().Float64Var(&run.Discount, "discount", 0, "Discount factor, trainer default when 0")
	cmd.PersistentFlags().IntVar(&run.EpLen, "ep_len", 0, "Maximum episode length, trainer default when 0")
	cmd.PersistentFlags().Float64Var(&run.LearningRate, "learning_rate", 0, "Learning rate, trainer default when 0")
	cmd.PersistentFlags().BoolVar(&run.NNBaseline, "nn_baseline", false, "Use a neural network baseline")
	cmd.PersistentFlags().IntVar(&run.Seed, "seed", 0, "Base random seed, trainer default when 0")
	return cmd
}
