package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// RunCommand loads a problem and algorithm from a config file, runs it to
// completion, and prints one JSON object per trace record to stdout.
type RunCommand struct{}

func (c *RunCommand) Help() string {
	return strings.TrimSpace(`
Usage: lclctl run -config=<path>

  Loads a problem, move type, and algorithm from the config file and runs
  the configured search to completion, printing one JSON-encoded trace
  record per line.
`)
}

func (c *RunCommand) Synopsis() string {
	return "Run a single configured local search"
}

func (c *RunCommand) Run(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a run config file (yaml/json/toml)")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *configPath == "" {
		fmt.Println("lclctl run: -config is required")
		return 1
	}

	level := hclog.Info
	if *verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{Name: "lclctl", Level: level})

	cfg, err := loadRunConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}

	driver, err := buildDriver(cfg, logger)
	if err != nil {
		logger.Error("failed to build driver", "error", err)
		return 1
	}

	trace := driver.Run()
	enc := json.NewEncoder(os.Stdout)
	for _, rec := range trace {
		if err := enc.Encode(rec); err != nil {
			logger.Error("failed to encode trace record", "error", err)
			return 1
		}
	}
	return 0
}
