package sweeps

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wy/pgsweep/server"
	"github.com/wy/pgsweep/types"
)

// CartPoleRuns is the fixed batch-size / reward-to-go / advantage
// normalization sweep over CartPole-v0. Six runs: small and large batch,
// each with no-rtg+dna, rtg+dna and rtg with normalization. The order and
// the argument values are fixed, each run is passed verbatim to the trainer.
func CartPoleRuns() []*types.RunConfig {
	return []*types.RunConfig{
		{
			EnvName:                 "CartPole-v0",
			Iterations:              100,
			BatchSize:               1000,
			Experiments:             5,
			DontNormalizeAdvantages: true,
			ExpName:                 "sb_no_rtg_dna_scale_std",
			NLayers:                 1,
			Size:                    32,
		},
		{
			EnvName:                 "CartPole-v0",
			Iterations:              100,
			BatchSize:               1000,
			Experiments:             5,
			RewardToGo:              true,
			DontNormalizeAdvantages: true,
			ExpName:                 "sb_rtg_dna_scale_std",
			NLayers:                 1,
			Size:                    32,
		},
		{
			EnvName:     "CartPole-v0",
			Iterations:  100,
			BatchSize:   1000,
			Experiments: 5,
			RewardToGo:  true,
			ExpName:     "sb_rtg_na_scale_std",
			NLayers:     1,
			Size:        32,
		},
		{
			EnvName:                 "CartPole-v0",
			Iterations:              100,
			BatchSize:               5000,
			Experiments:             5,
			DontNormalizeAdvantages: true,
			ExpName:                 "lb_no_rtg_dna_scale_std",
			NLayers:                 1,
			Size:                    32,
		},
		{
			EnvName:                 "CartPole-v0",
			Iterations:              100,
			BatchSize:               5000,
			Experiments:             5,
			RewardToGo:              true,
			DontNormalizeAdvantages: true,
			ExpName:                 "lb_rtg_dna_scale_std",
			NLayers:                 1,
			Size:                    32,
		},
		{
			EnvName:     "CartPole-v0",
			Iterations:  100,
			BatchSize:   5000,
			Experiments: 5,
			RewardToGo:  true,
			ExpName:     "lb_rtg_na_scale_std",
			NLayers:     1,
			Size:        32,
		},
	}
}

func CartPole(pythonBinary, scriptPath, workingDir, savePath, listenAddr string, dryRun, recordLogs bool, ctx context.Context) {
	s := types.NewSweep(&types.SweepConfig{
		PythonBinary: pythonBinary,
		ScriptPath:   scriptPath,
		WorkingDir:   workingDir,
		SavePath:     savePath,
		DryRun:       dryRun,
		RecordLogs:   recordLogs,
	})
	for _, run := range CartPoleRuns() {
		s.AddRun(run)
	}

	if listenAddr != "" {
		server.NewStatusServer(ctx, listenAddr, s.Status()).Start()
	}

	s.Run(ctx)
}

func CartPoleCommand() *cobra.Command {
	return &cobra.Command{
		Use: "cartpole",
		Run: func(cmd *cobra.Command, args []string) {
			CartPole(pythonBinary, scriptPath, workingDir, savePath, listenAddr, dryRun, recordLogs, context.Background())
		},
	}
}
