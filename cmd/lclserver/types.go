package main

// moveSpec describes the neighborhood requested when building a problem
// handle over HTTP.
type moveSpec struct {
	Kind string `json:"kind"` // "swap", "reverse", or "tsp"
	Size int    `json:"size"`
	Seed *int64 `json:"seed,omitempty"`
}

// evalSpec describes the objective requested when building a problem
// handle over HTTP.
type evalSpec struct {
	Kind      string      `json:"kind"` // "empty_bins", "empty_space", "empty_space_exp", "tsp", or "qap"
	Weights   []float64   `json:"weights,omitempty"`
	MaxFill   float64     `json:"max_fill,omitempty"`
	Distance  [][]float64 `json:"distance,omitempty"`
	Flow      [][]float64 `json:"flow,omitempty"`
	Symmetric bool        `json:"symmetric,omitempty"`
}

// createProblemRequest is the POST /problems request body.
type createProblemRequest struct {
	Move moveSpec `json:"move"`
	Eval evalSpec `json:"eval"`
}

// createProblemResponse is the POST /problems response body.
type createProblemResponse struct {
	ID string `json:"id"`
}

// terminationSpec describes the stopping criterion for a search. A non-zero
// MinTemperature is used on its own and the other fields are then ignored;
// otherwise the non-zero MaxIterations and MaxSeconds are combined with Or,
// and with neither set the search uses AlwaysTrue.
type terminationSpec struct {
	MaxIterations  uint64  `json:"max_iterations,omitempty"`
	MaxSeconds     float64 `json:"max_seconds,omitempty"`
	MinTemperature float64 `json:"min_temperature,omitempty"`
}

// annealingSpec holds the parameters unique to Simulated Annealing.
type annealingSpec struct {
	StartTemp         float64 `json:"start_temp"`
	Alpha             float64 `json:"alpha"`
	IterationsPerTemp uint64  `json:"iterations_per_temp"`
	AcceptSeed        *int64  `json:"accept_seed,omitempty"`
}

// createSearchRequest is the POST /searches request body: attach a driver
// to an existing problem handle and run it to completion.
type createSearchRequest struct {
	ProblemID   string           `json:"problem_id"`
	Algo        string           `json:"algo"` // "sd", "sa", "tabu", or "vns"
	Minimize    bool             `json:"minimize"`
	Termination terminationSpec  `json:"termination"`
	Annealing   annealingSpec    `json:"annealing,omitempty"`
	TabuCap     int              `json:"tabu_capacity,omitempty"`
}

// createSearchResponse is the POST /searches response body.
type createSearchResponse struct {
	ID    string        `json:"id"`
	Trace []traceRecord `json:"trace"`
}

// traceRecord mirrors search.Record for JSON encoding.
type traceRecord struct {
	ElapsedNS  int64   `json:"elapsed_ns"`
	Best       float64 `json:"best"`
	Current    float64 `json:"current"`
	Iterations uint64  `json:"iterations"`
}
