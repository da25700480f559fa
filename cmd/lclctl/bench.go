package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"gonum.org/v1/gonum/stat"
)

// BenchCommand runs the same algorithm over a problem file across several
// seeds and reports the mean and standard deviation of the best score and
// wall-clock time, using gonum/stat.
type BenchCommand struct{}

func (c *BenchCommand) Help() string {
	return strings.TrimSpace(`
Usage: lclctl bench -config=<path> -seeds=<n>

  Runs the algorithm described by the config file once per seed in
  [0,n), and reports the mean and standard deviation of the best score
  and elapsed wall-clock time across seeds.
`)
}

func (c *BenchCommand) Synopsis() string {
	return "Run a configured search across a range of seeds and summarize"
}

func (c *BenchCommand) Run(args []string) int {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a run config file (yaml/json/toml)")
	seeds := fs.Int("seeds", 10, "number of seeds to run, starting at 0")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *configPath == "" {
		fmt.Println("lclctl bench: -config is required")
		return 1
	}

	logger := hclog.New(&hclog.LoggerOptions{Name: "lclctl-bench", Level: hclog.Warn})

	bestScores := make([]float64, 0, *seeds)
	elapsedMS := make([]float64, 0, *seeds)

	for s := 0; s < *seeds; s++ {
		cfg, err := loadRunConfig(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			return 1
		}
		seedVal := int64(s)
		cfg.Move.Seed = &seedVal
		cfg.Annealing.AcceptSeed = &seedVal

		driver, err := buildDriver(cfg, logger)
		if err != nil {
			logger.Error("failed to build driver", "seed", s, "error", err)
			return 1
		}

		start := time.Now()
		trace := driver.Run()
		elapsed := time.Since(start)

		if len(trace) == 0 {
			continue
		}
		bestScores = append(bestScores, trace[len(trace)-1].Best)
		elapsedMS = append(elapsedMS, float64(elapsed.Milliseconds()))
	}

	if len(bestScores) == 0 {
		fmt.Println("lclctl bench: no successful runs")
		return 1
	}

	meanBest, stdBest := stat.MeanStdDev(bestScores, nil)
	meanMS, stdMS := stat.MeanStdDev(elapsedMS, nil)

	fmt.Printf("seeds=%d best_score: mean=%.4f stddev=%.4f elapsed_ms: mean=%.2f stddev=%.2f\n",
		len(bestScores), meanBest, stdBest, meanMS, stdMS)
	return 0
}
