package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	uuid "github.com/hashicorp/go-uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/milannvidia/lclgo/cooling"
	"github.com/milannvidia/lclgo/eval"
	"github.com/milannvidia/lclgo/move"
	"github.com/milannvidia/lclgo/problem"
	"github.com/milannvidia/lclgo/search"
	"github.com/milannvidia/lclgo/termination"
)

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func denseFromRows(rows [][]float64) *mat.Dense {
	n := len(rows)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, rows[i][j])
		}
	}
	return m
}

func buildEvaluation(spec evalSpec) (*eval.Evaluation, error) {
	switch spec.Kind {
	case "empty_bins":
		return eval.NewEmptyBins(spec.Weights, spec.MaxFill), nil
	case "empty_space":
		return eval.NewEmptySpace(spec.Weights, spec.MaxFill), nil
	case "empty_space_exp":
		return eval.NewEmptySpaceExp(spec.Weights, spec.MaxFill), nil
	case "tsp":
		return eval.NewTsp(denseFromRows(spec.Distance), spec.Symmetric)
	case "qap":
		return eval.NewQAP(denseFromRows(spec.Distance), denseFromRows(spec.Flow))
	default:
		return nil, fmt.Errorf("lclserver: unknown eval kind %q", spec.Kind)
	}
}

func buildMove(spec moveSpec) (*move.MoveType, error) {
	switch spec.Kind {
	case "swap":
		return move.NewSwap(spec.Size, spec.Seed), nil
	case "reverse":
		return move.NewReverse(spec.Size, spec.Seed), nil
	case "tsp":
		return move.NewTsp(spec.Size, spec.Seed), nil
	default:
		return nil, fmt.Errorf("lclserver: unknown move kind %q", spec.Kind)
	}
}

func (s *server) createProblem(w http.ResponseWriter, r *http.Request) {
	var req createProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ev, err := buildEvaluation(req.Eval)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	mt, err := buildMove(req.Move)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := problem.NewArrayProblem(mt, ev)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := uuid.GenerateUUID()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.putProblem(id, p)
	s.logger.Info("created problem", "id", id)

	json.NewEncoder(w).Encode(createProblemResponse{ID: id})
}

func buildTerminationFromSpec(spec terminationSpec) *termination.TerminationFunction {
	if spec.MinTemperature > 0 {
		return termination.NewMinTemperature(spec.MinTemperature)
	}
	var criteria []*termination.TerminationFunction
	if spec.MaxIterations > 0 {
		criteria = append(criteria, termination.NewMaxIterations(spec.MaxIterations))
	}
	if spec.MaxSeconds > 0 {
		criteria = append(criteria, termination.NewMaxSeconds(spec.MaxSeconds))
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

func (s *server) runSearch(w http.ResponseWriter, r *http.Request) {
	var req createSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p, ok := s.getProblem(req.ProblemID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("lclserver: no problem with id %q", req.ProblemID))
		return
	}

	term := buildTerminationFromSpec(req.Termination)

	var driver search.Driver
	var err error
	switch req.Algo {
	case "sd":
		driver, err = search.NewSteepestDescent(p, term, req.Minimize, true, s.logger)
	case "sa":
		cool := cooling.NewGeometricCooling(req.Annealing.Alpha)
		iterTemp := cooling.NewConstIterTemp(req.Annealing.IterationsPerTemp)
		driver, err = search.NewSimulatedAnnealing(p, term, req.Annealing.StartTemp, cool, iterTemp, req.Minimize, req.Annealing.AcceptSeed, true, s.logger)
	case "tabu":
		driver, err = search.NewTabuSearch(p, term, req.Minimize, req.TabuCap, true, s.logger)
	case "vns":
		driver = search.NewVariableNeighborhood(p, term, req.Minimize, true, s.logger)
	default:
		err = fmt.Errorf("lclserver: unknown algorithm %q", req.Algo)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	trace := driver.Run()

	id, err := uuid.GenerateUUID()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.putSearch(id, driver)
	s.logger.Info("ran search", "id", id, "algo", req.Algo, "records", len(trace))

	records := make([]traceRecord, len(trace))
	for i, rec := range trace {
		records[i] = traceRecord{ElapsedNS: rec.ElapsedNS, Best: rec.Best, Current: rec.Current, Iterations: rec.Iterations}
	}
	json.NewEncoder(w).Encode(createSearchResponse{ID: id, Trace: records})
}

func (s *server) resetSearch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	driver, ok := s.getSearch(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("lclserver: no search with id %q", id))
		return
	}
	driver.Reset()
	s.logger.Info("reset search", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
