package types

import (
	"strings"
	"testing"
)

func TestRunConfigArgsOmitOptional(t *testing.T) {
	cfg := &RunConfig{
		EnvName:     "CartPole-v0",
		Iterations:  100,
		BatchSize:   1000,
		Experiments: 5,
		RewardToGo:  true,
		ExpName:     "sb_rtg_na_scale_std",
		NLayers:     1,
		Size:        32,
	}
	args := strings.Join(cfg.Args(), " ")
	expected := "CartPole-v0 -n 100 -b 1000 -e 5 -rtg --exp_name sb_rtg_na_scale_std --n_layers 1 --size 32"
	if args != expected {
		t.Errorf("incorrect args\ngot:      %s\nexpected: %s", args, expected)
	}
	if strings.Contains(args, "-dna") {
		t.Errorf("unset -dna flag emitted")
	}
	if strings.Contains(args, "--discount") || strings.Contains(args, "--seed") {
		t.Errorf("unset optional flags emitted")
	}
}

func TestRunConfigArgsOptional(t *testing.T) {
	cfg := &RunConfig{
		EnvName:      "InvertedPendulum-v1",
		Iterations:   100,
		BatchSize:    5000,
		Experiments:  3,
		RewardToGo:   true,
		ExpName:      "ip",
		NLayers:      2,
		Size:         64,
		Discount:     0.9,
		EpLen:        1000,
		LearningRate: 0.005,
		NNBaseline:   true,
		Seed:         17,
	}
	args := strings.Join(cfg.Args(), " ")
	expected := "InvertedPendulum-v1 -n 100 -b 5000 -e 3 -rtg --exp_name ip --n_layers 2 --size 64" +
		" --discount 0.9 -ep 1000 --learning_rate 0.005 --nn_baseline --seed 17"
	if args != expected {
		t.Errorf("incorrect args\ngot:      %s\nexpected: %s", args, expected)
	}
}

func TestRunConfigArgsIdempotent(t *testing.T) {
	cfg := &RunConfig{
		EnvName:                 "CartPole-v0",
		Iterations:              100,
		BatchSize:               1000,
		Experiments:             5,
		DontNormalizeAdvantages: true,
		ExpName:                 "sb_no_rtg_dna_scale_std",
		NLayers:                 1,
		Size:                    32,
	}
	first := strings.Join(cfg.Args(), " ")
	second := strings.Join(cfg.Args(), " ")
	if first != second {
		t.Errorf("args differ between calls")
	}
}

func TestRunConfigCopy(t *testing.T) {
	cfg := &RunConfig{EnvName: "CartPole-v0", Iterations: 100, BatchSize: 1000, Experiments: 5, ExpName: "a", NLayers: 1, Size: 32}
	cp := cfg.Copy()
	cp.BatchSize = 5000
	cp.ExpName = "b"
	if cfg.BatchSize != 1000 || cfg.ExpName != "a" {
		t.Errorf("copy shares state with original")
	}
}

func TestRunConfigSetDefaults(t *testing.T) {
	cfg := &RunConfig{ExpName: "defaults"}
	cfg.SetDefaults()
	if cfg.EnvName != "CartPole-v0" {
		t.Errorf("incorrect default env: %s", cfg.EnvName)
	}
	if cfg.Iterations != 100 || cfg.BatchSize != 1000 || cfg.Experiments != 1 {
		t.Errorf("incorrect execution defaults")
	}
	if cfg.NLayers != 1 || cfg.Size != 32 {
		t.Errorf("incorrect network defaults")
	}
}
