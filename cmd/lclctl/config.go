package main

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// MoveConfig describes the neighborhood a run explores.
type MoveConfig struct {
	Kind string `mapstructure:"kind"` // "swap", "reverse", or "tsp"
	Seed *int64 `mapstructure:"seed"`
}

// AnnealingConfig holds the parameters unique to Simulated Annealing.
type AnnealingConfig struct {
	StartTemp         float64 `mapstructure:"start_temp"`
	Alpha             float64 `mapstructure:"alpha"`
	IterationsPerTemp uint64  `mapstructure:"iterations_per_temp"`
	MinTemperature    float64 `mapstructure:"min_temperature"`
	AcceptSeed        *int64  `mapstructure:"accept_seed"`
}

// TabuConfig holds the parameters unique to Tabu Search.
type TabuConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// TerminationConfig composes the stopping criteria for a run; zero-valued
// fields are left out of the combinator.
type TerminationConfig struct {
	MaxIterations uint64  `mapstructure:"max_iterations"`
	MaxSeconds    float64 `mapstructure:"max_seconds"`
}

// ProblemConfig names the input file and the format it is encoded in.
type ProblemConfig struct {
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"` // "dist", "coord2d", or "dms"
}

// RunConfig is the full configuration for a single "run" invocation,
// unmarshaled from a viper-backed config file.
type RunConfig struct {
	Problem     ProblemConfig     `mapstructure:"problem"`
	Move        MoveConfig        `mapstructure:"move"`
	Algo        string            `mapstructure:"algo"` // "sd", "sa", "tabu", or "vns"
	Minimize    bool              `mapstructure:"minimize"`
	Annealing   AnnealingConfig   `mapstructure:"annealing"`
	Tabu        TabuConfig        `mapstructure:"tabu"`
	Termination TerminationConfig `mapstructure:"termination"`
}

// loadRunConfig reads and unmarshals a run configuration file. The format
// (YAML, JSON, or TOML) is inferred from the file extension by viper.
func loadRunConfig(path string) (*RunConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &RunConfig{Minimize: true}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
