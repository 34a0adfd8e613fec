package types

import (
	"strconv"
)

// configuration of a single trainer run
// the fields map 1:1 to the command line flags of the trainer script
type RunConfig struct {
	EnvName                 string // positional environment name
	Iterations              int    // -n
	BatchSize               int    // -b
	Experiments             int    // -e, number of repeated experiments/seeds
	RewardToGo              bool   // -rtg
	DontNormalizeAdvantages bool   // -dna
	ExpName                 string // --exp_name
	NLayers                 int    // --n_layers
	Size                    int    // --size

	// optional trainer flags, zero values are not passed
	Discount     float64 // --discount
	EpLen        int     // -ep
	LearningRate float64 // --learning_rate
	NNBaseline   bool    // --nn_baseline
	Seed         int     // --seed
}

func (c *RunConfig) Copy() *RunConfig {
	return &RunConfig{
		EnvName:                 c.EnvName,
		Iterations:              c.Iterations,
		BatchSize:               c.BatchSize,
		Experiments:             c.Experiments,
		RewardToGo:              c.RewardToGo,
		DontNormalizeAdvantages: c.DontNormalizeAdvantages,
		ExpName:                 c.ExpName,
		NLayers:                 c.NLayers,
		Size:                    c.Size,

		Discount:     c.Discount,
		EpLen:        c.EpLen,
		LearningRate: c.LearningRate,
		NNBaseline:   c.NNBaseline,
		Seed:         c.Seed,
	}
}

func (c *RunConfig) SetDefaults() {
	if c.EnvName == "" {
		c.EnvName = "CartPole-v0"
	}
	if c.Iterations == 0 {
		c.Iterations = 100
	}
	if c.BatchSize == 0 {
		c.BatchSize = 1000
	}
	if c.Experiments == 0 {
		c.Experiments = 1
	}
	if c.NLayers == 0 {
		c.NLayers = 1
	}
	if c.Size == 0 {
		c.Size = 32
	}
}

// Args builds the trainer argument list exactly as it appears on the
// command line, starting with the positional environment name.
// Optional fields are appended after --size and omitted when unset.
func (c *RunConfig) Args() []string {
	args := []string{
		c.EnvName,
		"-n", strconv.Itoa(c.Iterations),
		"-b", strconv.Itoa(c.BatchSize),
		"-e", strconv.Itoa(c.Experiments),
	}
	if c.RewardToGo {
		args = append(args, "-rtg")
	}
	if c.DontNormalizeAdvantages {
		args = append(args, "-dna")
	}
	args = append(args,
		"--exp_name", c.ExpName,
		"--n_layers", strconv.Itoa(c.NLayers),
		"--size", strconv.Itoa(c.Size),
	)

	if c.Discount != 0 {
		args = append(args, "--discount", strconv.FormatFloat(c.Discount, 'g', -1, 64))
	}
	if c.EpLen != 0 {
		args = append(args, "-ep", strconv.Itoa(c.EpLen))
	}
	if c.LearningRate != 0 {
		args = append(args, "--learning_rate", strconv.FormatFloat(c.LearningRate, 'g', -1, 64))
	}
	if c.NNBaseline {
		args = append(args, "--nn_baseline")
	}
	if c.Seed != 0 {
		args = append(args, "--seed", strconv.Itoa(c.Seed))
	}
	return args
}

func (c *RunConfig) Printable() string {
	result := "RunConfig: \n"
	result += " Env: " + c.EnvName + "\n"
	result += " Iterations: " + strconv.Itoa(c.Iterations) + "\n"
	result += " BatchSize: " + strconv.Itoa(c.BatchSize) + "\n"
	result += " Experiments: " + strconv.Itoa(c.Experiments) + "\n"
	result += " RewardToGo: " + strconv.FormatBool(c.RewardToGo) + "\n"
	result += " DontNormalizeAdvantages: " + strconv.FormatBool(c.DontNormalizeAdvantages) + "\n"
	result += " ExpName: " + c.ExpName + "\n"
	return result
}
