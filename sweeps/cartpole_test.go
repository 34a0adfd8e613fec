package sweeps

import (
	"strings"
	"testing"
)

func TestCartPoleRunsOrder(t *testing.T) {
	runs := CartPoleRuns()
	if len(runs) != 6 {
		t.Fatalf("incorrect number of runs: %d", len(runs))
	}

	expectedNames := []string{
		"sb_no_rtg_dna_scale_std",
		"sb_rtg_dna_scale_std",
		"sb_rtg_na_scale_std",
		"lb_no_rtg_dna_scale_std",
		"lb_rtg_dna_scale_std",
		"lb_rtg_na_scale_std",
	}
	for i, r := range runs {
		if r.ExpName != expectedNames[i] {
			t.Errorf("run %d: incorrect name %s, expected %s", i+1, r.ExpName, expectedNames[i])
		}
		if r.EnvName != "CartPole-v0" {
			t.Errorf("run %d: incorrect env %s", i+1, r.EnvName)
		}
		if r.Iterations != 100 || r.Experiments != 5 || r.NLayers != 1 || r.Size != 32 {
			t.Errorf("run %d: incorrect common parameters", i+1)
		}
	}

	for i, r := range runs[:3] {
		if r.BatchSize != 1000 {
			t.Errorf("run %d: incorrect batch size %d", i+1, r.BatchSize)
		}
	}
	for i, r := range runs[3:] {
		if r.BatchSize != 5000 {
			t.Errorf("run %d: incorrect batch size %d", i+4, r.BatchSize)
		}
	}
}

func TestCartPoleRunArgs(t *testing.T) {
	runs := CartPoleRuns()

	expected := map[int]string{
		0: "CartPole-v0 -n 100 -b 1000 -e 5 -dna --exp_name sb_no_rtg_dna_scale_std --n_layers 1 --size 32",
		1: "CartPole-v0 -n 100 -b 1000 -e 5 -rtg -dna --exp_name sb_rtg_dna_scale_std --n_layers 1 --size 32",
		2: "CartPole-v0 -n 100 -b 1000 -e 5 -rtg --exp_name sb_rtg_na_scale_std --n_layers 1 --size 32",
		3: "CartPole-v0 -n 100 -b 5000 -e 5 -dna --exp_name lb_no_rtg_dna_scale_std --n_layers 1 --size 32",
		4: "CartPole-v0 -n 100 -b 5000 -e 5 -rtg -dna --exp_name lb_rtg_dna_scale_std --n_layers 1 --size 32",
		5: "CartPole-v0 -n 100 -b 5000 -e 5 -rtg --exp_name lb_rtg_na_scale_std --n_layers 1 --size 32",
	}

	for i, want := range expected {
		got := strings.Join(runs[i].Args(), " ")
		if got != want {
			t.Errorf("run %d: incorrect args\ngot:      %s\nexpected: %s", i+1, got, want)
		}
	}
}
