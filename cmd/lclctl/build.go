package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/milannvidia/lclgo/cooling"
	"github.com/milannvidia/lclgo/eval"
	"github.com/milannvidia/lclgo/move"
	"github.com/milannvidia/lclgo/parse"
	"github.com/milannvidia/lclgo/problem"
	"github.com/milannvidia/lclgo/search"
	"github.com/milannvidia/lclgo/termination"
)

func loadEvaluation(cfg ProblemConfig) (*eval.Evaluation, error) {
	f, err := os.Open(cfg.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch cfg.Format {
	case "dist":
		m, err := parse.DistanceMatrix(f)
		if err != nil {
			return nil, err
		}
		return eval.NewTspAuto(m)
	case "coord2d":
		m, _, err := parse.Coord2D(f)
		if err != nil {
			return nil, err
		}
		return eval.NewTspAuto(m)
	case "dms":
		m, _, err := parse.DMS(f)
		if err != nil {
			return nil, err
		}
		return eval.NewTspAuto(m)
	default:
		return nil, fmt.Errorf("lclctl: unknown problem format %q", cfg.Format)
	}
}

func buildMoveType(cfg MoveConfig, size int) (*move.MoveType, error) {
	switch cfg.Kind {
	case "swap", "":
		return move.NewSwap(size, cfg.Seed), nil
	case "reverse":
		return move.NewReverse(size, cfg.Seed), nil
	case "tsp":
		return move.NewTsp(size, cfg.Seed), nil
	default:
		return nil, fmt.Errorf("lclctl: unknown move kind %q", cfg.Kind)
	}
}

func buildTermination(cfg TerminationConfig) *termination.TerminationFunction {
	var criteria []*termination.TerminationFunction
	if cfg.MaxIterations > 0 {
		criteria = append(criteria, termination.NewMaxIterations(cfg.MaxIterations))
	}
	if cfg.MaxSeconds > 0 {
		criteria = append(criteria, termination.NewMaxSeconds(cfg.MaxSeconds))
	}
	switch len(criteria) {
	case 0:
		return termination.NewAlwaysTrue()
	case 1:
		return criteria[0]
	default:
		or, err := termination.NewOr(criteria...)
		if err != nil {
			return termination.NewAlwaysTrue()
		}
		return or
	}
}

func buildProblem(cfg *RunConfig) (*problem.Problem, error) {
	ev, err := loadEvaluation(cfg.Problem)
	if err != nil {
		return nil, err
	}
	mt, err := buildMoveType(cfg.Move, ev.Length())
	if err != nil {
		return nil, err
	}
	return problem.NewArrayProblem(mt, ev)
}

func buildDriver(cfg *RunConfig, logger hclog.Logger) (search.Driver, error) {
	p, err := buildProblem(cfg)
	if err != nil {
		return nil, err
	}
	term := buildTermination(cfg.Termination)

	switch cfg.Algo {
	case "sd":
		return search.NewSteepestDescent(p, term, cfg.Minimize, true, logger)
	case "sa":
		cool := cooling.NewGeometricCooling(cfg.Annealing.Alpha)
		iterTemp := cooling.NewConstIterTemp(cfg.Annealing.IterationsPerTemp)
		if cfg.Annealing.MinTemperature > 0 {
			// MinTemperature must be the driver's own termination, not
			// nested under And/Or: CheckVariable(temp) is called directly
			// on it each cooling step and is never propagated to children.
			term = termination.NewMinTemperature(cfg.Annealing.MinTemperature)
		}
		return search.NewSimulatedAnnealing(p, term, cfg.Annealing.StartTemp, cool, iterTemp, cfg.Minimize, cfg.Annealing.AcceptSeed, true, logger)
	case "tabu":
		return search.NewTabuSearch(p, term, cfg.Minimize, cfg.Tabu.Capacity, true, logger)
	case "vns":
		return search.NewVariableNeighborhood(p, term, cfg.Minimize, true, logger), nil
	default:
		return nil, fmt.Errorf("lclctl: unknown algorithm %q", cfg.Algo)
	}
}
